/*
 * dilution.go, part of chemcalc.
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

//Quantity is a magnitude paired with a unit string from the registry.
type Quantity struct {
	Value float64
	Unit  string
}

//Target names the dilution slot being solved for.
type Target int

const (
	TargetC1 Target = iota
	TargetV1
	TargetC2
	TargetV2
)

//String returns the conventional name of the slot.
func (t Target) String() string {
	return [...]string{"C1", "V1", "C2", "V2"}[t]
}

//Dim returns the physical dimension of the slot.
func (t Target) Dim() Dimension {
	if t == TargetC1 || t == TargetC2 {
		return Concentration
	}
	return Volume
}

//DefaultTolerance is the relative tolerance used to decide whether four
//fully supplied dilution quantities are mutually consistent.
const DefaultTolerance = 1e-6

//DilutionProblem is one instance of the relation C1V1 = C2V2. Exactly one
//of the four slots must be nil; that is the quantity solved for. A
//molecular weight (directly, or derived from SoluteFormula when the
//weight is zero) enables the secondary solute-mass output. Want, when
//non-empty, selects the unit the solved value is reported in; otherwise
//the base unit of the missing slot's dimension is used.
type DilutionProblem struct {
	C1, V1, C2, V2  *Quantity
	MolecularWeight float64 //g/mol, optional
	SoluteFormula   string  //optional, used when MolecularWeight is zero
	Want            string  //optional output unit for the solved slot
	Tolerance       float64 //optional, DefaultTolerance when zero
}

//DilutionResult is the outcome of a solved dilution.
type DilutionResult struct {
	Target        Target
	Value         float64
	Unit          string
	SoluteMass    float64 //grams of solute, only meaningful when HasSoluteMass
	HasSoluteMass bool
}

//Solve determines the single missing quantity of the problem. All known
//quantities are normalized to base units, the missing one follows from
//the same symmetric rearrangement of C1V1 = C2V2 whichever slot it is,
//and the result is converted to the requested unit. Supplying fewer than
//three quantities is an ErrUnderdetermined failure; supplying all four is
//ErrOverdetermined, with the message telling whether the four values were
//at least mutually consistent within the tolerance.
func (P *DilutionProblem) Solve() (*DilutionResult, error) {
	slots := []*Quantity{P.C1, P.V1, P.C2, P.V2}
	missing := -1
	for i, q := range slots {
		if q != nil {
			continue
		}
		if missing >= 0 {
			return nil, newError(ErrUnderdetermined, "chemcalc: dilution needs three known quantities, %s and %s are both missing", Target(missing), Target(i))
		}
		missing = i
	}
	base := make([]float64, 4)
	for i, q := range slots {
		if q == nil {
			continue
		}
		d, err := UnitDimension(q.Unit)
		if err != nil {
			return nil, errDecorate(err, "Solve")
		}
		if d != Target(i).Dim() {
			return nil, newError(ErrInvalidUnit, "chemcalc: %s expects a %s unit, got %q (%s)", Target(i), Target(i).Dim(), q.Unit, d)
		}
		if q.Value < 0 {
			return nil, newError(ErrBadQuantity, "chemcalc: %s must be non-negative, got %g", Target(i), q.Value)
		}
		base[i], _ = ToBase(q.Value, q.Unit) //unit already validated
	}
	if missing < 0 {
		tol := P.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		lhs, rhs := base[0]*base[1], base[2]*base[3]
		if math.Abs(lhs-rhs) <= tol*math.Max(math.Abs(lhs), math.Abs(rhs)) {
			return nil, newError(ErrOverdetermined, "chemcalc: all four dilution quantities supplied (they are consistent); mark one unknown")
		}
		return nil, newError(ErrOverdetermined, "chemcalc: all four dilution quantities supplied and C1V1 = %g differs from C2V2 = %g beyond tolerance", lhs, rhs)
	}
	target := Target(missing)
	//the missing slot is the product of the opposite pair over the
	//remaining known quantity; the pairing is symmetric in all four cases
	var num1, num2, den float64
	var denName Target
	switch target {
	case TargetC1:
		num1, num2, den, denName = base[2], base[3], base[1], TargetV1
	case TargetV1:
		num1, num2, den, denName = base[2], base[3], base[0], TargetC1
	case TargetC2:
		num1, num2, den, denName = base[0], base[1], base[3], TargetV2
	case TargetV2:
		num1, num2, den, denName = base[0], base[1], base[2], TargetC2
	}
	if den == 0 {
		return nil, newError(ErrBadQuantity, "chemcalc: %s must be positive to solve for %s", denName, target)
	}
	solved := num1 * num2 / den
	base[missing] = solved
	unit := P.Want
	if unit == "" {
		unit = target.Dim().BaseUnit()
	}
	d, err := UnitDimension(unit)
	if err != nil {
		return nil, errDecorate(err, "Solve")
	}
	if d != target.Dim() {
		return nil, newError(ErrInvalidUnit, "chemcalc: requested output unit %q is a %s unit, %s is a %s", unit, d, target, target.Dim())
	}
	value, _ := FromBase(solved, unit)
	res := &DilutionResult{Target: target, Value: value, Unit: unit}
	mw := P.MolecularWeight
	if mw == 0 && P.SoluteFormula != "" {
		mw, err = MolecularWeight(P.SoluteFormula)
		if err != nil {
			return nil, errDecorate(err, "Solve")
		}
	}
	if mw > 0 {
		//moles are the conserved quantity, either side gives the same number
		res.SoluteMass = base[2] * base[3] * mw
		res.HasSoluteMass = true
	}
	return res, nil
}
