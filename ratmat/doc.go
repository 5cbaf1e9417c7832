/*
 * doc.go, part of chemcalc.
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

//Package ratmat implements a small dense matrix over exact rationals
//(math/big.Rat) with Gauss-Jordan elimination, rank and null-space
//computation. The equation balancer needs exact arithmetic: the
//stoichiometric systems it solves are integer systems, and floating-point
//elimination can mis-detect whether such a system balances at all. A
//float64 view of any matrix is available through Dense() for callers that
//want to keep working with gonum.
package ratmat
