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

package chemcalc

import "math"

//WeightPrecision is the number of decimals used when a molecular weight
//is rounded for display. The full float64 value should be kept for any
//further computation.
const WeightPrecision = 2

//MolecularWeight parses the given formula and returns its molecular
//weight in g/mol at full precision. It propagates parse and element-table
//failures and adds no failure modes of its own.
func MolecularWeight(formula string) (float64, error) {
	F, err := ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "MolecularWeight")
	}
	return F.Weight()
}

//Weight returns the molecular weight in g/mol of an already parsed
//formula, at full precision. The sum runs in sorted element order:
//float addition is not associative, and a map-ordered sum would make
//repeated calls disagree in the last bits.
func (F *Formula) Weight() (float64, error) {
	var total float64
	for _, sym := range F.Elements() {
		w, err := AtomicWeight(sym)
		if err != nil {
			return 0, errDecorate(err, "Weight")
		}
		c, _ := F.counts[sym].Float64()
		total += c * w
	}
	return total, nil
}

//RoundWeight rounds a molecular weight to the display precision.
func RoundWeight(w float64) float64 {
	pow := math.Pow(10, WeightPrecision)
	return math.Round(w*pow) / pow
}
