/*
 * json_test.go, part of chemcalc.
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

package chemjson

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	chem "github.com/mleivas/chemcalc"
)

func TestErrorEnvelope(Te *testing.T) {
	_, err := chem.MolecularWeight("Xx2")
	if err == nil {
		Te.Fatal("expected a parse failure")
	}
	J := NewError(err)
	if !J.IsError || J.Kind != "unknown-element" {
		Te.Errorf("envelope %+v", J)
	}
	var back Error
	if err := json.Unmarshal(J.Marshal(), &back); err != nil {
		Te.Fatal(err)
	}
	if back.Kind != J.Kind || back.Message != J.Message {
		Te.Errorf("round trip changed the envelope: %+v", back)
	}
}

func TestWeightEnvelope(Te *testing.T) {
	w, err := chem.MolecularWeight("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	J := NewWeightResult("H2O", w)
	if J.Weight != 18.02 || J.Unit != "g/mol" {
		Te.Errorf("envelope %+v", J)
	}
	var buf bytes.Buffer
	if serr := Send(J, &buf); serr != nil {
		Te.Fatal(serr)
	}
	if !strings.Contains(buf.String(), "18.02") {
		Te.Errorf("sent %q", buf.String())
	}
}

func TestDilutionEnvelopeOmitsMass(Te *testing.T) {
	P := &chem.DilutionProblem{
		C1: &chem.Quantity{Value: 1, Unit: "mol/L"},
		V1: &chem.Quantity{Value: 10, Unit: "mL"},
		C2: &chem.Quantity{Value: 0.1, Unit: "mol/L"},
	}
	res, err := P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if serr := Send(NewDilutionResult(res), &buf); serr != nil {
		Te.Fatal(serr)
	}
	if strings.Contains(buf.String(), "SoluteMassG") {
		Te.Errorf("mass present without a molecular weight: %q", buf.String())
	}
	P.SoluteFormula = "NaCl"
	res, err = P.Solve()
	if err != nil {
		Te.Fatal(err)
	}
	J := NewDilutionResult(res)
	if J.SoluteMassG == nil {
		Te.Fatal("mass missing despite a solute formula")
	}
}

func TestBalanceEnvelope(Te *testing.T) {
	R := &chem.ReactionEquation{Reactants: []string{"H2", "O2"}, Products: []string{"H2O"}}
	B, err := R.Balance()
	if err != nil {
		Te.Fatal(err)
	}
	J := NewBalanceResult(B)
	if len(J.Coefficients) != 3 || J.Coefficients[0] != 2 {
		Te.Errorf("envelope %+v", J)
	}
	if !strings.Contains(J.LaTeX, "\\ce{") {
		Te.Errorf("LaTeX %q", J.LaTeX)
	}
}
