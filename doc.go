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

/*Package chemcalc is a small engine for everyday bench-chemistry calculations.


	**chemcalc Capabilities**


    Parses chemical formulas, including nested groups, hydrates
	(e.g. Na2CO3·10H2O) and trailing ionic charges, into element-count
	maps with exact rational multiplicities.

    Computes molecular weights from formulas against a built-in table of
	standard atomic weights.

    Solves the dilution relation C1V1 = C2V2 for whichever of the four
	quantities is missing, converting between the common concentration and
	volume units, and optionally deriving the solute mass when a molecular
	weight (or a solute formula) is available.

    Balances chemical equations by computing the integer null space of the
	stoichiometric matrix with exact rational Gaussian elimination, so an
	exactly balanceable system is never missed to floating-point noise.
	Ionic species are balanced for charge as well as mass.

All operations are pure functions over their inputs. The element table and
the unit registry are built at init time and never written afterwards, so
every entry point is safe for concurrent use. Errors implement the Error
interface of this package, which carries a Kind so callers can tell a
malformed formula from, say, an unbalanceable reaction without matching on
message text.

The subpackage ratmat holds the exact rational matrix used by the
balancer, chemjson provides JSON envelopes for external callers, and
chemplot renders dilution curves. The cmd/chemcalc command exposes the
three calculations on the command line.
*/
package chemcalc
