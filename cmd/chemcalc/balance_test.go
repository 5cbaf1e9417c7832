/*
 * balance_test.go, part of chemcalc.
 *
 * Copyright 2024 Marcela Leiva <mleivas{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"reflect"
	"testing"
)

func TestSplitEquation(Te *testing.T) {
	cases := []struct {
		in         string
		reactants  []string
		products   []string
		reversible bool
	}{
		{"H2 + O2 -> H2O", []string{"H2", "O2"}, []string{"H2O"}, false},
		{"H2+O2=H2O", []string{"H2", "O2"}, []string{"H2O"}, false},
		{"N2 + H2 <=> NH3", []string{"N2", "H2"}, []string{"NH3"}, true},
		{"Ag+ + Cl- -> AgCl", []string{"Ag+", "Cl-"}, []string{"AgCl"}, false},
		{"Fe+3 + H2O -> FeO + H+", []string{"Fe+3", "H2O"}, []string{"FeO", "H+"}, false},
	}
	for _, c := range cases {
		R, err := splitEquation(c.in)
		if err != nil {
			Te.Errorf("splitEquation(%q): %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(R.Reactants, c.reactants) || !reflect.DeepEqual(R.Products, c.products) {
			Te.Errorf("splitEquation(%q) = %v -> %v, want %v -> %v",
				c.in, R.Reactants, R.Products, c.reactants, c.products)
		}
		if R.Reversible != c.reversible {
			Te.Errorf("splitEquation(%q): reversible = %v", c.in, R.Reversible)
		}
	}
	if _, err := splitEquation("H2 O2 H2O"); err == nil {
		Te.Error("missing arrow did not fail")
	}
}
