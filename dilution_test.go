/*
 * dilution_test.go, part of chemcalc.
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

func kindOf(err error) Kind {
	cerr, ok := err.(Error)
	if !ok {
		return 0
	}
	return cerr.Kind()
}

//The worked example from the lab bench: diluting 10 mL of a 1 mol/L
//stock to 0.1 mol/L needs a final volume of 100 mL.
func TestSolveV2(Te *testing.T) {
	P := &DilutionProblem{
		C1:   &Quantity{1, "mol/L"},
		V1:   &Quantity{10, "mL"},
		C2:   &Quantity{0.1, "mol/L"},
		Want: "mL",
	}
	res, err := P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	if res.Target != TargetV2 || res.Unit != "mL" {
		Te.Fatalf("solved %v in %q", res.Target, res.Unit)
	}
	if math.Abs(res.Value-100) > 1e-9 {
		Te.Errorf("V2 = %g mL, want 100", res.Value)
	}
}

//Every slot must be solvable by the same rearrangement. Solve each one
//from the other three and compare against the consistent set
//C1=2 mol/L, V1=50 mL, C2=0.5 mol/L, V2=200 mL.
func TestSolveAllTargets(Te *testing.T) {
	known := []*Quantity{
		{2, "mol/L"},
		{50, "mL"},
		{0.5, "mol/L"},
		{200, "mL"},
	}
	wantBase := []float64{2, 0.05, 0.5, 0.2}
	for missing := 0; missing < 4; missing++ {
		P := &DilutionProblem{}
		slots := []**Quantity{&P.C1, &P.V1, &P.C2, &P.V2}
		for i, q := range known {
			if i != missing {
				*slots[i] = q
			}
		}
		res, err := P.Solve()
		if err != nil {
			Te.Errorf("solving for %v: %v", Target(missing), err)
			continue
		}
		base, err := ToBase(res.Value, res.Unit)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(base-wantBase[missing]) > 1e-9 {
			Te.Errorf("%v = %g (base), want %g", res.Target, base, wantBase[missing])
		}
	}
}

//Solving for V2 and then re-solving for C2 from the result must return
//the original concentration.
func TestSolveSelfConsistent(Te *testing.T) {
	P := &DilutionProblem{
		C1: &Quantity{0.75, "mol/L"},
		V1: &Quantity{30, "mL"},
		C2: &Quantity{0.3, "mol/L"},
	}
	res, err := P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	back := &DilutionProblem{
		C1: P.C1,
		V1: P.V1,
		V2: &Quantity{res.Value, res.Unit},
	}
	res2, err := back.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(res2.Value-0.3) > 1e-9 {
		Te.Errorf("re-solved C2 = %g mol/L, want 0.3", res2.Value)
	}
}

func TestSoluteMass(Te *testing.T) {
	//0.1 mol/L * 1 L of NaCl is 0.1 mol = 5.844 g
	P := &DilutionProblem{
		V1:            &Quantity{10, "mL"},
		C2:            &Quantity{0.1, "mol/L"},
		V2:            &Quantity{1, "L"},
		SoluteFormula: "NaCl",
	}
	res, err := P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	if res.Target != TargetC1 {
		Te.Fatalf("solved %v, want C1", res.Target)
	}
	if !res.HasSoluteMass {
		Te.Fatal("no solute mass derived")
	}
	if math.Abs(res.SoluteMass-5.844) > 1e-6 {
		Te.Errorf("solute mass = %g g, want 5.844", res.SoluteMass)
	}
	//an explicit molecular weight takes precedence over the formula
	P.MolecularWeight = 100
	res, err = P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(res.SoluteMass-10) > 1e-9 {
		Te.Errorf("solute mass = %g g, want 10", res.SoluteMass)
	}
}

func TestSolveFailures(Te *testing.T) {
	//two unknowns
	P := &DilutionProblem{C1: &Quantity{1, "mol/L"}, V1: &Quantity{1, "L"}}
	if _, err := P.Solve(); kindOf(err) != ErrUnderdetermined {
		Te.Errorf("two unknowns: %v", err)
	}
	//all four known, consistent
	P = &DilutionProblem{
		C1: &Quantity{1, "mol/L"}, V1: &Quantity{1, "L"},
		C2: &Quantity{0.5, "mol/L"}, V2: &Quantity{2, "L"},
	}
	if _, err := P.Solve(); kindOf(err) != ErrOverdetermined {
		Te.Errorf("four knowns: %v", err)
	}
	//all four known, inconsistent
	P.V2 = &Quantity{3, "L"}
	if _, err := P.Solve(); kindOf(err) != ErrOverdetermined {
		Te.Errorf("inconsistent four knowns: %v", err)
	}
	//volume unit in a concentration slot
	P = &DilutionProblem{
		C1: &Quantity{1, "mL"}, V1: &Quantity{1, "L"}, C2: &Quantity{0.5, "mol/L"},
	}
	if _, err := P.Solve(); kindOf(err) != ErrInvalidUnit {
		Te.Errorf("wrong dimension: %v", err)
	}
	//unknown unit
	P = &DilutionProblem{
		C1: &Quantity{1, "drops"}, V1: &Quantity{1, "L"}, C2: &Quantity{0.5, "mol/L"},
	}
	if _, err := P.Solve(); kindOf(err) != ErrUnknownUnit {
		Te.Errorf("unknown unit: %v", err)
	}
	//negative magnitude
	P = &DilutionProblem{
		C1: &Quantity{-1, "mol/L"}, V1: &Quantity{1, "L"}, C2: &Quantity{0.5, "mol/L"},
	}
	if _, err := P.Solve(); kindOf(err) != ErrBadQuantity {
		Te.Errorf("negative magnitude: %v", err)
	}
	//zero divisor: V1 = C2V2/C1 with C1 = 0
	P = &DilutionProblem{
		C1: &Quantity{0, "mol/L"}, C2: &Quantity{0.5, "mol/L"}, V2: &Quantity{1, "L"},
	}
	if _, err := P.Solve(); kindOf(err) != ErrBadQuantity {
		Te.Errorf("zero divisor: %v", err)
	}
	//output unit of the wrong dimension
	P = &DilutionProblem{
		C1: &Quantity{1, "mol/L"}, V1: &Quantity{1, "L"}, C2: &Quantity{0.5, "mol/L"},
		Want: "mol/L",
	}
	if _, err := P.Solve(); kindOf(err) != ErrInvalidUnit {
		Te.Errorf("wrong output unit: %v", err)
	}
}
