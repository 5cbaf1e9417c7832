/*
 * json.go, part of chemcalc.
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
	"encoding/json"
	"io"
	"strings"

	chem "github.com/mleivas/chemcalc"
)

//An easily JSON-serializable error type.
type Error struct {
	IsError bool     //If this is false (no error) all other fields are at their zero values.
	Kind    string   //stable kind name from the chemcalc taxonomy, "" for foreign errors
	Message string   //the error itself
	Deco    []string //call-stack decorations collected while the error was passed up
}

//implements the error interface
func (J *Error) Error() string { return J.Message }

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Message, err2.Error()}, " - ")) //well, shit.
	}
	return ret
}

//NewError wraps any error into the envelope. Errors from the chemcalc
//taxonomy keep their kind and decorations.
func NewError(err error) *Error {
	J := &Error{IsError: true, Message: err.Error()}
	if cerr, ok := err.(chem.Error); ok {
		J.Kind = cerr.Kind().String()
		J.Deco = cerr.Decorate("")
	}
	return J
}

//WeightResult is the envelope for a molecular weight computation.
type WeightResult struct {
	Formula string
	Weight  float64
	Unit    string
}

//NewWeightResult builds the envelope for a formula and its weight in
//g/mol, rounded to the display precision.
func NewWeightResult(formula string, weight float64) *WeightResult {
	return &WeightResult{Formula: formula, Weight: chem.RoundWeight(weight), Unit: "g/mol"}
}

//DilutionResult is the envelope for a solved dilution. SoluteMassG is
//present only when the solver could derive the solute mass.
type DilutionResult struct {
	Property    string
	Value       float64
	Unit        string
	SoluteMassG *float64 `json:",omitempty"`
}

//NewDilutionResult builds the envelope from a solver result.
func NewDilutionResult(r *chem.DilutionResult) *DilutionResult {
	J := &DilutionResult{Property: r.Target.String(), Value: r.Value, Unit: r.Unit}
	if r.HasSoluteMass {
		m := r.SoluteMass
		J.SoluteMassG = &m
	}
	return J
}

//BalanceResult is the envelope for a balanced equation.
type BalanceResult struct {
	Equation     string
	LaTeX        string
	Coefficients []int
}

//NewBalanceResult builds the envelope from a balanced equation.
func NewBalanceResult(b *chem.BalancedEquation) *BalanceResult {
	return &BalanceResult{Equation: b.String(), LaTeX: b.LaTeX(), Coefficients: b.Coeffs}
}

//Send encodes any of the envelopes onto out.
func Send(v interface{}, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(v); err != nil {
		return &Error{IsError: true, Message: err.Error()}
	}
	return nil
}
