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

//Package chemjson defines JSON envelopes for the results and errors of
//the chemcalc engine, so external callers (a web front end, a shell
//pipeline) get structured output without depending on the Go types.
package chemjson
