/*
 * units.go, part of chemcalc.
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

//Dimension identifies the physical dimension a unit belongs to. Every
//unit in the registry belongs to exactly one dimension.
type Dimension int

const (
	Concentration Dimension = iota + 1
	Volume
	Mass
)

//String returns the name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Concentration:
		return "concentration"
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	}
	return "unknown"
}

//BaseUnit returns the canonical unit all values of the dimension are
//converted to internally.
func (d Dimension) BaseUnit() string {
	switch d {
	case Concentration:
		return "mol/L"
	case Volume:
		return "L"
	case Mass:
		return "g"
	}
	return ""
}

//unitDef ties a unit to its dimension and to the multiplicative factor
//taking a value in that unit to the dimension's base unit. Conversions in
//this domain are pure linear scales; the table has no room for an
//additive offset, which keeps the invariant by construction.
type unitDef struct {
	dim    Dimension
	factor float64
}

//The unit registry. Built once, never written afterwards.
var unitTable = map[string]unitDef{
	//concentration, base mol/L
	"mol/L":  {Concentration, 1},
	"mmol/L": {Concentration, 1e-3},
	"µmol/L": {Concentration, 1e-6},
	"nmol/L": {Concentration, 1e-9},
	"pmol/L": {Concentration, 1e-12},
	//volume, base L
	"L":  {Volume, 1},
	"mL": {Volume, 1e-3},
	"µL": {Volume, 1e-6},
	"nL": {Volume, 1e-9},
	"pL": {Volume, 1e-12},
	//mass, base g
	"kg": {Mass, 1e3},
	"g":  {Mass, 1},
	"mg": {Mass, 1e-3},
	"µg": {Mass, 1e-6},
}

//Alternative spellings accepted on input. Molarity shorthands and the
//ASCII "u" for micro all map to one canonical name.
var unitAliases = map[string]string{
	"M":      "mol/L",
	"mM":     "mmol/L",
	"µM":     "µmol/L",
	"uM":     "µmol/L",
	"nM":     "nmol/L",
	"pM":     "pmol/L",
	"umol/L": "µmol/L",
	"uL":     "µL",
	"ug":     "µg",
	"l":      "L",
	"ml":     "mL",
	"ul":     "µL",
	"µl":     "µL",
}

//CanonicalUnit resolves aliases and returns the canonical spelling of the
//unit, or an ErrUnknownUnit error.
func CanonicalUnit(unit string) (string, error) {
	if a, ok := unitAliases[unit]; ok {
		unit = a
	}
	if _, ok := unitTable[unit]; !ok {
		return "", newError(ErrUnknownUnit, "chemcalc: unknown unit: %q", unit)
	}
	return unit, nil
}

//UnitDimension returns the dimension the unit belongs to.
func UnitDimension(unit string) (Dimension, error) {
	u, err := CanonicalUnit(unit)
	if err != nil {
		return 0, errDecorate(err, "UnitDimension")
	}
	return unitTable[u].dim, nil
}

//ToBase converts a value in the given unit to the base unit of the
//unit's dimension.
func ToBase(value float64, unit string) (float64, error) {
	u, err := CanonicalUnit(unit)
	if err != nil {
		return 0, errDecorate(err, "ToBase")
	}
	return value * unitTable[u].factor, nil
}

//FromBase converts a value expressed in the base unit of the given
//unit's dimension back into that unit.
func FromBase(value float64, unit string) (float64, error) {
	u, err := CanonicalUnit(unit)
	if err != nil {
		return 0, errDecorate(err, "FromBase")
	}
	return value / unitTable[u].factor, nil
}
