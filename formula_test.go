/*
 * formula_test.go, part of chemcalc.
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

package chemcalc

import (
	"math"
	"testing"
)

func checkCounts(Te *testing.T, formula string, want map[string]float64) {
	F, err := ParseFormula(formula)
	if err != nil {
		Te.Errorf("ParseFormula(%q): %v", formula, err)
		return
	}
	got := F.Counts()
	if len(got) != len(want) {
		Te.Errorf("%q: got %d elements %v, want %d %v", formula, len(got), got, len(want), want)
		return
	}
	for sym, n := range want {
		if math.Abs(got[sym]-n) > 1e-12 {
			Te.Errorf("%q: element %s count %g, want %g", formula, sym, got[sym], n)
		}
	}
}

func TestParseSimple(Te *testing.T) {
	checkCounts(Te, "H2O", map[string]float64{"H": 2, "O": 1})
	checkCounts(Te, "C6H12O6", map[string]float64{"C": 6, "H": 12, "O": 6})
	checkCounts(Te, "NaCl", map[string]float64{"Na": 1, "Cl": 1})
	//a one-letter element followed by a two-letter one
	checkCounts(Te, "CCl4", map[string]float64{"C": 1, "Cl": 4})
}

func TestParseGroups(Te *testing.T) {
	checkCounts(Te, "(NH4)2SO4", map[string]float64{"N": 2, "H": 8, "S": 1, "O": 4})
	checkCounts(Te, "Ca(OH)2", map[string]float64{"Ca": 1, "O": 2, "H": 2})
	checkCounts(Te, "K4[Fe(CN)6]", map[string]float64{"K": 4, "Fe": 1, "C": 6, "N": 6})
	checkCounts(Te, "Al2(SO4)3", map[string]float64{"Al": 2, "S": 3, "O": 12})
}

func TestParseHydrates(Te *testing.T) {
	checkCounts(Te, "Na2CO3·10H2O", map[string]float64{"Na": 2, "C": 1, "O": 13, "H": 20})
	checkCounts(Te, "CuSO4*5H2O", map[string]float64{"Cu": 1, "S": 1, "O": 9, "H": 10})
	checkCounts(Te, "CuSO4.5H2O", map[string]float64{"Cu": 1, "S": 1, "O": 9, "H": 10})
	//fractional hydrate count
	checkCounts(Te, "CaSO4·0.5H2O", map[string]float64{"Ca": 1, "S": 1, "O": 4.5, "H": 1})
}

func TestParseCharge(Te *testing.T) {
	cases := []struct {
		formula string
		charge  int
	}{
		{"Na+", 1},
		{"Cl-", -1},
		{"SO42-", -2},
		{"Ca2+", 2},
		{"Fe+3", 3},
		{"PO43-", -3},
		{"H2O", 0},
	}
	for _, c := range cases {
		F, err := ParseFormula(c.formula)
		if err != nil {
			Te.Errorf("ParseFormula(%q): %v", c.formula, err)
			continue
		}
		if F.Charge() != c.charge {
			Te.Errorf("%q: charge %d, want %d", c.formula, F.Charge(), c.charge)
		}
	}
	//the charge must not leak into the element counts
	checkCounts(Te, "SO42-", map[string]float64{"S": 1, "O": 4})
}

func TestParseFailures(Te *testing.T) {
	cases := []struct {
		formula string
		kind    Kind
	}{
		{"", ErrSyntax},
		{"H2O)", ErrSyntax},
		{"(H2O", ErrSyntax},
		{"K4[Fe(CN)6)", ErrSyntax},
		{"H0", ErrSyntax},
		{"(OH)0", ErrSyntax},
		{"H2O!", ErrSyntax},
		{"Xx2", ErrUnknownElement},
		{"J", ErrUnknownElement},
	}
	for _, c := range cases {
		_, err := ParseFormula(c.formula)
		if err == nil {
			Te.Errorf("ParseFormula(%q) did not fail", c.formula)
			continue
		}
		cerr, ok := err.(Error)
		if !ok {
			Te.Errorf("ParseFormula(%q): error does not implement chemcalc.Error", c.formula)
			continue
		}
		if cerr.Kind() != c.kind {
			Te.Errorf("ParseFormula(%q): kind %v, want %v", c.formula, cerr.Kind(), c.kind)
		}
	}
}
