/*
 * main.go, part of chemcalc.
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

//chemcalc is the command-line front end of the chemcalc engine: molecular
//weights, dilution solving and equation balancing from the shell.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var jsonOut bool

var rootCmd = &cobra.Command{
	Use:   "chemcalc",
	Short: "Bench-chemistry calculations: molecular weight, dilution, balancing",
	Long: `chemcalc computes molecular weights from chemical formulas, solves the
dilution relation C1V1 = C2V2 for a missing quantity, and balances
chemical equations with exact integer arithmetic.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit results as JSON")
	rootCmd.AddCommand(weightCmd, diluteCmd, balanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
