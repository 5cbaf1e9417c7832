/*
 * ratmat.go, part of chemcalc.
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

package ratmat

import (
	"math/big"

	"gonum.org/v1/gonum/mat"
)

//PanicMsg is a message used for panics on programmer errors such as
//out-of-range indices or impossible shapes. Recoverable conditions are
//expressed through the return values instead.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape           = PanicMsg("chemcalc/ratmat: dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("chemcalc/ratmat: index out of range")
	ErrNonPositiveDims = PanicMsg("chemcalc/ratmat: rows and cols must be positive")
)

//Matrix is a dense rows x cols matrix of exact rationals. The zero value
//is not usable; build matrices with New or NewFromInts.
type Matrix struct {
	rows, cols int
	data       []*big.Rat
}

//New returns a zero-filled rows x cols Matrix. It panics on non-positive
//dimensions.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrNonPositiveDims)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

//NewFromInts builds a Matrix from a row-major slice of integers. The
//slice length must be rows*cols.
func NewFromInts(rows, cols int, vals []int64) *Matrix {
	if len(vals) != rows*cols {
		panic(ErrShape)
	}
	M := New(rows, cols)
	for i, v := range vals {
		M.data[i].SetInt64(v)
	}
	return M
}

//Dims returns the dimensions of the matrix.
func (M *Matrix) Dims() (int, int) { return M.rows, M.cols }

func (M *Matrix) index(i, j int) int {
	if i < 0 || i >= M.rows || j < 0 || j >= M.cols {
		panic(ErrIndexOutOfRange)
	}
	return i*M.cols + j
}

//At returns a copy of the element at row i, column j.
func (M *Matrix) At(i, j int) *big.Rat {
	return new(big.Rat).Set(M.data[M.index(i, j)])
}

//Set stores a copy of v at row i, column j.
func (M *Matrix) Set(i, j int, v *big.Rat) {
	M.data[M.index(i, j)].Set(v)
}

//SetInt64 stores the integer v at row i, column j.
func (M *Matrix) SetInt64(i, j int, v int64) {
	M.data[M.index(i, j)].SetInt64(v)
}

//at gives access to the stored element itself, for in-place work within
//the package.
func (M *Matrix) at(i, j int) *big.Rat {
	return M.data[M.index(i, j)]
}

//Copy returns a deep copy of the matrix.
func (M *Matrix) Copy() *Matrix {
	N := &Matrix{rows: M.rows, cols: M.cols, data: make([]*big.Rat, len(M.data))}
	for i, v := range M.data {
		N.data[i] = new(big.Rat).Set(v)
	}
	return N
}

//Dense returns a float64 view of the matrix as a gonum Dense, for callers
//that continue with approximate linear algebra or just want gonum's
//formatting and operations. Exactness is of course lost in the
//conversion.
func (M *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(M.rows, M.cols, nil)
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			f, _ := M.data[i*M.cols+j].Float64()
			d.Set(i, j, f)
		}
	}
	return d
}

//rref reduces a copy of the matrix to reduced row-echelon form and
//returns it together with the pivot column of every pivot row.
func (M *Matrix) rref() (*Matrix, []int) {
	R := M.Copy()
	var pivots []int
	r := 0
	for c := 0; c < R.cols && r < R.rows; c++ {
		p := -1
		for i := r; i < R.rows; i++ {
			if R.at(i, c).Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != r {
			for j := 0; j < R.cols; j++ {
				R.at(p, j).Set(swapRats(R.at(r, j), R.at(p, j)))
			}
		}
		inv := new(big.Rat).Inv(R.at(r, c))
		for j := c; j < R.cols; j++ {
			R.at(r, j).Mul(R.at(r, j), inv)
		}
		for i := 0; i < R.rows; i++ {
			if i == r || R.at(i, c).Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(R.at(i, c))
			for j := c; j < R.cols; j++ {
				t := new(big.Rat).Mul(f, R.at(r, j))
				R.at(i, j).Sub(R.at(i, j), t)
			}
		}
		pivots = append(pivots, c)
		r++
	}
	return R, pivots
}

//swapRats exchanges the values of a and b and returns a's old value, so
//callers can write the three-way swap in one line.
func swapRats(a, b *big.Rat) *big.Rat {
	old := new(big.Rat).Set(a)
	a.Set(b)
	return old
}

//Rank returns the rank of the matrix.
func (M *Matrix) Rank() int {
	_, pivots := M.rref()
	return len(pivots)
}

//NullSpace returns a basis of the null space of the matrix, one vector
//(of length cols) per free column of the reduced system. A full-rank
//matrix yields an empty basis.
func (M *Matrix) NullSpace() [][]*big.Rat {
	R, pivots := M.rref()
	pivotRow := make(map[int]int, len(pivots))
	for r, c := range pivots {
		pivotRow[c] = r
	}
	var basis [][]*big.Rat
	for c := 0; c < M.cols; c++ {
		if _, ok := pivotRow[c]; ok {
			continue
		}
		v := make([]*big.Rat, M.cols)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[c].SetInt64(1)
		for pc, pr := range pivotRow {
			v[pc].Neg(R.at(pr, c))
		}
		basis = append(basis, v)
	}
	return basis
}

//Integerize scales a rational vector to the smallest integer vector with
//the same direction: multiply by the LCM of the denominators, then divide
//by the GCD of the results. A nil or empty input returns nil.
func Integerize(v []*big.Rat) []*big.Int {
	if len(v) == 0 {
		return nil
	}
	lcm := big.NewInt(1)
	for _, r := range v {
		d := r.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Div(new(big.Int).Mul(lcm, d), g)
	}
	ints := make([]*big.Int, len(v))
	gcd := new(big.Int)
	for i, r := range v {
		n := new(big.Int).Mul(r.Num(), new(big.Int).Div(lcm, r.Denom()))
		ints[i] = n
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(n))
	}
	if gcd.Sign() > 0 {
		for _, n := range ints {
			n.Div(n, gcd)
		}
	}
	return ints
}
