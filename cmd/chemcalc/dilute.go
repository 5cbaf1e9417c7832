/*
 * dilute.go, part of chemcalc.
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
	"strconv"

	chem "github.com/mleivas/chemcalc"
	"github.com/mleivas/chemcalc/chemjson"
	"github.com/mleivas/chemcalc/chemplot"
	"github.com/spf13/cobra"
)

var diluteFlags struct {
	c1, v1, c2, v2                string //empty string marks the unknown slot
	c1u, v1u, c2u, v2u            string
	mw                            float64
	solute, want, plotfile, title string
}

var diluteCmd = &cobra.Command{
	Use:   "dilute",
	Short: "Solve C1V1 = C2V2 for the missing quantity",
	Long: `dilute solves the dilution relation. Give exactly three of --c1, --v1,
--c2 and --v2; the fourth is computed. Units default to mol/L and L.
With --mw (or --solute, a formula to derive the weight from) the solute
mass in grams is reported as well.`,
	RunE: runDilute,
}

func init() {
	f := diluteCmd.Flags()
	f.StringVar(&diluteFlags.c1, "c1", "", "initial concentration (empty to solve for it)")
	f.StringVar(&diluteFlags.v1, "v1", "", "initial volume (empty to solve for it)")
	f.StringVar(&diluteFlags.c2, "c2", "", "final concentration (empty to solve for it)")
	f.StringVar(&diluteFlags.v2, "v2", "", "final volume (empty to solve for it)")
	f.StringVar(&diluteFlags.c1u, "c1-unit", "mol/L", "unit of --c1")
	f.StringVar(&diluteFlags.v1u, "v1-unit", "L", "unit of --v1")
	f.StringVar(&diluteFlags.c2u, "c2-unit", "mol/L", "unit of --c2")
	f.StringVar(&diluteFlags.v2u, "v2-unit", "L", "unit of --v2")
	f.Float64Var(&diluteFlags.mw, "mw", 0, "molecular weight of the solute in g/mol")
	f.StringVar(&diluteFlags.solute, "solute", "", "solute formula, used to derive the molecular weight")
	f.StringVar(&diluteFlags.want, "unit", "", "unit to report the solved quantity in (default: its base unit)")
	f.StringVar(&diluteFlags.plotfile, "plot", "", "write a dilution-curve plot to this file (.png is appended)")
	f.StringVar(&diluteFlags.title, "plot-title", "Dilution", "title of the plot")
}

func quantity(value, unit string) (*chem.Quantity, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("bad quantity %q: %v", value, err)
	}
	return &chem.Quantity{Value: v, Unit: unit}, nil
}

func runDilute(cmd *cobra.Command, args []string) error {
	P := &chem.DilutionProblem{
		MolecularWeight: diluteFlags.mw,
		SoluteFormula:   diluteFlags.solute,
		Want:            diluteFlags.want,
	}
	var err error
	if P.C1, err = quantity(diluteFlags.c1, diluteFlags.c1u); err != nil {
		return err
	}
	if P.V1, err = quantity(diluteFlags.v1, diluteFlags.v1u); err != nil {
		return err
	}
	if P.C2, err = quantity(diluteFlags.c2, diluteFlags.c2u); err != nil {
		return err
	}
	if P.V2, err = quantity(diluteFlags.v2, diluteFlags.v2u); err != nil {
		return err
	}
	res, err := P.Solve()
	if err != nil {
		return emitError(err)
	}
	if diluteFlags.plotfile != "" {
		if err := plotDilution(P, res); err != nil {
			return err
		}
	}
	if jsonOut {
		chemjson.Send(chemjson.NewDilutionResult(res), os.Stdout)
		return nil
	}
	fmt.Printf("%s = %g %s\n", res.Target, res.Value, res.Unit)
	if res.HasSoluteMass {
		fmt.Printf("solute mass = %g g\n", res.SoluteMass)
	}
	return nil
}

//plotDilution reconstructs all four quantities in base units and hands
//them to chemplot.
func plotDilution(P *chem.DilutionProblem, res *chem.DilutionResult) error {
	base := make([]float64, 4)
	for i, q := range []*chem.Quantity{P.C1, P.V1, P.C2, P.V2} {
		if q == nil {
			b, err := chem.ToBase(res.Value, res.Unit)
			if err != nil {
				return err
			}
			base[i] = b
			continue
		}
		b, err := chem.ToBase(q.Value, q.Unit)
		if err != nil {
			return err
		}
		base[i] = b
	}
	return chemplot.DilutionCurve(base[0], base[1], base[2], base[3], diluteFlags.title, diluteFlags.plotfile)
}
