/*
 * weight.go, part of chemcalc.
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

	chem "github.com/mleivas/chemcalc"
	"github.com/mleivas/chemcalc/chemjson"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight FORMULA",
	Short: "Compute the molecular weight of a chemical formula",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeight,
}

func runWeight(cmd *cobra.Command, args []string) error {
	w, err := chem.MolecularWeight(args[0])
	if err != nil {
		return emitError(err)
	}
	if jsonOut {
		chemjson.Send(chemjson.NewWeightResult(args[0], w), os.Stdout)
		return nil
	}
	fmt.Printf("%.2f g/mol\n", chem.RoundWeight(w))
	return nil
}

//emitError prints the error as a JSON envelope when --json is set and
//returns it either way so the process exits nonzero.
func emitError(err error) error {
	if jsonOut {
		fmt.Println(string(chemjson.NewError(err).Marshal()))
	}
	return err
}
