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

package chemcalc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mleivas/chemcalc/ratmat"
	"gonum.org/v1/gonum/mat"
)

//ReactionEquation is an unbalanced reaction: the reactant and product
//species as formula strings, in the order the caller wrote them. The
//Reversible flag only affects rendering, never the balancing itself.
type ReactionEquation struct {
	Reactants  []string
	Products   []string
	Reversible bool
}

//BalancedEquation pairs the species of a reaction with the minimal
//positive integer coefficients satisfying mass (and, for ionic species,
//charge) balance. Coeffs holds the reactant coefficients followed by the
//product coefficients, in input order.
type BalancedEquation struct {
	Reactants  []string
	Products   []string
	Coeffs     []int
	Reversible bool

	species []*Formula //parsed species, reactants then products
	matrix  *ratmat.Matrix
}

//Balance computes the stoichiometric coefficients of the reaction. It
//parses every species, builds the element-by-species stoichiometric
//matrix (reactants positive, products negative, so a balanced equation is
//exactly a null vector), and takes the integer generator of the matrix's
//null space, computed with exact rational elimination. Reactions whose
//null space is empty, or whose solution is not strictly positive, fail
//with ErrUnbalanceable; a null space of dimension greater than one means
//several independent balances exist and fails with ErrDegenerate rather
//than guessing one of them.
func (R *ReactionEquation) Balance() (*BalancedEquation, error) {
	if len(R.Reactants) == 0 || len(R.Products) == 0 {
		return nil, newError(ErrSyntax, "chemcalc: a reaction needs at least one reactant and one product")
	}
	nspecies := len(R.Reactants) + len(R.Products)
	species := make([]*Formula, 0, nspecies)
	charged := false
	elemSet := make(map[string]bool)
	for _, text := range append(append([]string{}, R.Reactants...), R.Products...) {
		F, err := ParseFormula(text)
		if err != nil {
			return nil, errDecorate(err, "Balance")
		}
		if F.Charge() != 0 {
			charged = true
		}
		for _, e := range F.Elements() {
			elemSet[e] = true
		}
		species = append(species, F)
	}
	elements := make([]string, 0, len(elemSet))
	for e := range elemSet {
		elements = append(elements, e)
	}
	sort.Strings(elements)
	rows := len(elements)
	if charged {
		rows++ //extra row balancing net charge
	}
	M := ratmat.New(rows, nspecies)
	for col, F := range species {
		sign := int64(1)
		if col >= len(R.Reactants) {
			sign = -1
		}
		for row, e := range elements {
			if c := F.CountRat(e); c != nil {
				if sign < 0 {
					c.Neg(c)
				}
				M.Set(row, col, c)
			}
		}
		if charged {
			M.SetInt64(rows-1, col, sign*int64(F.Charge()))
		}
	}
	basis := M.NullSpace()
	switch {
	case len(basis) == 0:
		return nil, newError(ErrUnbalanceable, "chemcalc: reaction cannot be balanced: the stoichiometric system only admits the zero solution")
	case len(basis) > 1:
		return nil, newError(ErrDegenerate, "chemcalc: reaction is ambiguous: %d independent balanced forms exist", len(basis))
	}
	ints := ratmat.Integerize(basis[0])
	//fix the overall sign from the first nonzero entry
	for _, n := range ints {
		if s := n.Sign(); s != 0 {
			if s < 0 {
				for _, m := range ints {
					m.Neg(m)
				}
			}
			break
		}
	}
	coeffs := make([]int, nspecies)
	for i, n := range ints {
		if n.Sign() <= 0 {
			return nil, newError(ErrUnbalanceable, "chemcalc: reaction cannot be balanced: species %q would need a non-positive coefficient", speciesText(R, i))
		}
		coeffs[i] = int(n.Int64())
	}
	return &BalancedEquation{
		Reactants:  R.Reactants,
		Products:   R.Products,
		Coeffs:     coeffs,
		Reversible: R.Reversible,
		species:    species,
		matrix:     M,
	}, nil
}

func speciesText(R *ReactionEquation, i int) string {
	if i < len(R.Reactants) {
		return R.Reactants[i]
	}
	return R.Products[i-len(R.Reactants)]
}

//Matrix returns the signed stoichiometric matrix of the balanced
//reaction: one row per element (plus a charge row for ionic reactions),
//one column per species, reactants positive.
func (B *BalancedEquation) Matrix() *ratmat.Matrix {
	return B.matrix
}

//Check verifies the balance numerically: it multiplies the float64 view
//of the stoichiometric matrix by the coefficient vector and reports
//whether every element (and the charge, if present) sums to zero within
//a small tolerance. The coefficients come from an exact computation, so
//Check failing would indicate a bug rather than rounding trouble.
func (B *BalancedEquation) Check() bool {
	const tol = 1e-9
	rows, cols := B.matrix.Dims()
	x := mat.NewVecDense(cols, nil)
	for i, c := range B.Coeffs {
		x.SetVec(i, float64(c))
	}
	res := mat.NewVecDense(rows, nil)
	res.MulVec(B.matrix.Dense(), x)
	return mat.Norm(res, 1) < tol
}

//String renders the balanced equation in plain text, e.g.
//"2H2 + O2 → 2H2O", with ⇌ for reversible reactions. Unit coefficients
//are omitted.
func (B *BalancedEquation) String() string {
	arrow := " → "
	if B.Reversible {
		arrow = " ⇌ "
	}
	return B.side(B.Reactants, 0) + arrow + B.side(B.Products, len(B.Reactants))
}

//LaTeX renders the balanced equation as a mhchem \ce expression, the
//format the original ChemicAlly front end consumed.
func (B *BalancedEquation) LaTeX() string {
	arrow := " \\rightarrow "
	if B.Reversible {
		arrow = " \\rightleftharpoons "
	}
	return "$$ \\ce{" + B.side(B.Reactants, 0) + arrow + B.side(B.Products, len(B.Reactants)) + "} $$"
}

func (B *BalancedEquation) side(formulas []string, offset int) string {
	parts := make([]string, len(formulas))
	for i, f := range formulas {
		if c := B.Coeffs[offset+i]; c != 1 {
			parts[i] = fmt.Sprintf("%d%s", c, f)
		} else {
			parts[i] = f
		}
	}
	return strings.Join(parts, " + ")
}
