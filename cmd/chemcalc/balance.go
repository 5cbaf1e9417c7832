/*
 * balance.go, part of chemcalc.
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
	"fmt"
	"os"
	"strings"

	chem "github.com/mleivas/chemcalc"
	"github.com/mleivas/chemcalc/chemjson"
	"github.com/spf13/cobra"
)

var balanceLatex bool

var balanceCmd = &cobra.Command{
	Use:   "balance \"EQUATION\"",
	Short: "Balance a chemical equation",
	Long: `balance takes an equation such as "H2 + O2 -> H2O" and prints it with
the minimal integer coefficients. Species are separated by "+"; the sides
by "->", "=" or "→". Writing "<=>" (or "⇌") marks the reaction
reversible, which only changes the arrow in the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&balanceLatex, "latex", false, "print the mhchem LaTeX form instead of plain text")
}

//arrows understood between the two sides, longest first so "->" never
//shadows "<->".
var arrows = []struct {
	text       string
	reversible bool
}{
	{"<=>", true},
	{"<->", true},
	{"⇌", true},
	{"->", false},
	{"→", false},
	{"=", false},
}

func splitEquation(s string) (*chem.ReactionEquation, error) {
	for _, a := range arrows {
		i := strings.Index(s, a.text)
		if i < 0 {
			continue
		}
		R := &chem.ReactionEquation{
			Reactants:  splitSpecies(s[:i]),
			Products:   splitSpecies(s[i+len(a.text):]),
			Reversible: a.reversible,
		}
		return R, nil
	}
	return nil, fmt.Errorf("no reaction arrow found in %q", s)
}

//splitSpecies separates the species of one equation side. The separator
//is " + "; a bare "+" also separates when it cannot be an ionic charge,
//i.e. when it is neither at the end of a species nor followed by a
//digit (so "H2+O2" splits but "Na+ + Cl-" and "Fe+3" keep their charges).
func splitSpecies(side string) []string {
	var out []string
	for _, f := range strings.Split(side, " + ") {
		for _, g := range splitBarePlus(f) {
			if g = strings.TrimSpace(g); g != "" {
				out = append(out, g)
			}
		}
	}
	return out
}

func splitBarePlus(s string) []string {
	var out []string
	start := 0
	runes := []rune(s)
	for i, r := range runes {
		if r != '+' || i == len(runes)-1 || runes[i+1] == ' ' {
			continue
		}
		if runes[i+1] >= '0' && runes[i+1] <= '9' {
			continue
		}
		out = append(out, string(runes[start:i]))
		start = i + 1
	}
	return append(out, string(runes[start:]))
}

func runBalance(cmd *cobra.Command, args []string) error {
	R, err := splitEquation(args[0])
	if err != nil {
		return err
	}
	B, err := R.Balance()
	if err != nil {
		return emitError(err)
	}
	if jsonOut {
		chemjson.Send(chemjson.NewBalanceResult(B), os.Stdout)
		return nil
	}
	if balanceLatex {
		fmt.Println(B.LaTeX())
	} else {
		fmt.Println(B.String())
	}
	return nil
}
