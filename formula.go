/*
 * formula.go, part of chemcalc.
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
	"math/big"
	"sort"
	"strings"
	"unicode"
)

//Formula is the parsed composition of one chemical species: a map from
//element symbols to multiplicities, plus the net ionic charge. The
//multiplicities are kept as exact rationals so hydrates with fractional
//counts (e.g. CaSO4·0.5H2O) survive a later exact computation.
type Formula struct {
	text   string
	counts map[string]*big.Rat
	charge int
}

//Text returns the original formula string.
func (F *Formula) Text() string { return F.text }

//Charge returns the net ionic charge of the species.
func (F *Formula) Charge() int { return F.charge }

//Count returns the multiplicity of the given element as a float64, or 0
//for elements not present in the formula.
func (F *Formula) Count(symbol string) float64 {
	r, ok := F.counts[symbol]
	if !ok {
		return 0
	}
	f, _ := r.Float64()
	return f
}

//CountRat returns a copy of the exact multiplicity of the given element,
//or nil for elements not present in the formula.
func (F *Formula) CountRat(symbol string) *big.Rat {
	r, ok := F.counts[symbol]
	if !ok {
		return nil
	}
	return new(big.Rat).Set(r)
}

//Counts returns a fresh element-to-multiplicity map in float64.
func (F *Formula) Counts() map[string]float64 {
	m := make(map[string]float64, len(F.counts))
	for k, v := range F.counts {
		f, _ := v.Float64()
		m[k] = f
	}
	return m
}

//Elements returns the element symbols of the formula, sorted.
func (F *Formula) Elements() []string {
	els := make([]string, 0, len(F.counts))
	for k := range F.counts {
		els = append(els, k)
	}
	sort.Strings(els)
	return els
}

//hydrate separators recognized between the anhydrous part and the water
//(or other) part of a formula, as in CuSO4·5H2O.
func isHydrateSep(r rune) bool {
	return r == '·' || r == '*' || r == '.' || r == '∙'
}

//ParseFormula parses a textual chemical formula into a Formula. It
//understands nested groups in () and [], integer multiplicities, hydrate
//notation with a (possibly decimal) multiplier, and a trailing net charge
//written either as "2+"/"-" or as "+2". Unknown element symbols, unbalanced
//groups, zero multiplicities and stray characters all produce errors; an
//unknown symbol is never silently counted.
func ParseFormula(text string) (*Formula, error) {
	clean := strings.Join(strings.Fields(text), "")
	if clean == "" {
		return nil, newError(ErrSyntax, "chemcalc: empty formula")
	}
	body, charge, err := splitCharge(clean)
	if err != nil {
		return nil, errDecorate(err, "ParseFormula")
	}
	total := make(map[string]*big.Rat)
	for _, seg := range splitHydrate(body) {
		if seg == "" {
			return nil, newError(ErrSyntax, "chemcalc: empty hydrate segment in formula %q", text)
		}
		counts, err := parseSegment(seg)
		if err != nil {
			return nil, errDecorate(err, "ParseFormula")
		}
		for sym, n := range counts {
			addRat(total, sym, n)
		}
	}
	if len(total) == 0 {
		return nil, newError(ErrSyntax, "chemcalc: formula %q contains no elements", text)
	}
	return &Formula{text: text, counts: total, charge: charge}, nil
}

//splitCharge strips a trailing ionic charge from the formula and returns
//the remaining body plus the signed charge. Recognized spellings are a
//numeral followed by a sign ("SO42-", "Ca2+") and a sign followed by a
//numeral ("Fe+3"); a bare sign means charge one.
func splitCharge(s string) (string, int, error) {
	runes := []rune(s)
	n := len(runes)
	sign := 0
	switch runes[n-1] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	}
	if sign != 0 { //numeral-then-sign, or bare sign
		//only one digit can belong to the charge: in "PO43-" the 4 is a
		//subscript of O and the 3 is the charge
		i := n - 1
		if i > 0 && unicode.IsDigit(runes[i-1]) {
			i--
		}
		mag := 1
		if i < n-1 {
			mag = atoi(runes[i : n-1])
			if mag == 0 {
				return "", 0, newError(ErrSyntax, "chemcalc: zero charge magnitude in %q", s)
			}
		}
		return string(runes[:i]), sign * mag, nil
	}
	//sign-then-numeral
	if unicode.IsDigit(runes[n-1]) {
		i := n - 1
		for i > 0 && unicode.IsDigit(runes[i-1]) {
			i--
		}
		if i > 0 && (runes[i-1] == '+' || runes[i-1] == '-') {
			mag := atoi(runes[i:n])
			if mag == 0 {
				return "", 0, newError(ErrSyntax, "chemcalc: zero charge magnitude in %q", s)
			}
			if runes[i-1] == '-' {
				mag = -mag
			}
			return string(runes[:i-1]), mag, nil
		}
	}
	return s, 0, nil
}

//splitHydrate splits the formula on hydrate separators found outside any
//group. A '.' between a hydrate multiplier and its formula (as in the
//decimal "0.5H2O") is not a separator because the multiplier, decimal
//point included, is consumed by parseSegment.
func splitHydrate(s string) []string {
	var segs []string
	depth := 0
	start := 0
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			depth--
		case depth == 0 && isHydrateSep(r):
			//a '.' inside a decimal number stays put
			if r == '.' && i > start && unicode.IsDigit(runes[i-1]) && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				//only possible right after a segment-leading multiplier
				if allDigits(runes[start:i]) {
					continue
				}
			}
			segs = append(segs, string(runes[start:i]))
			start = i + 1
		}
	}
	segs = append(segs, string(runes[start:]))
	return segs
}

//parseSegment parses one hydrate segment: an optional leading multiplier
//(integer or decimal) followed by a group/element body. It returns the
//element counts of the segment already scaled by the multiplier.
func parseSegment(seg string) (map[string]*big.Rat, error) {
	runes := []rune(seg)
	i := 0
	mult := big.NewRat(1, 1)
	if unicode.IsDigit(runes[0]) {
		j := 0
		for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
			j++
		}
		if _, ok := mult.SetString(string(runes[:j])); !ok {
			return nil, newError(ErrSyntax, "chemcalc: bad multiplier %q in segment %q", string(runes[:j]), seg)
		}
		if mult.Sign() <= 0 {
			return nil, newError(ErrSyntax, "chemcalc: multiplier in segment %q must be positive", seg)
		}
		i = j
	}
	counts, err := parseBody(runes[i:])
	if err != nil {
		return nil, err
	}
	for _, v := range counts {
		v.Mul(v, mult)
	}
	return counts, nil
}

//parseBody is the single left-to-right scan over a formula body. It keeps
//a stack of partial element-count maps, one per open group, and merges a
//group into its parent (scaled by the trailing multiplier) when the group
//closes. On completion the stack must hold exactly one map.
func parseBody(runes []rune) (map[string]*big.Rat, error) {
	stack := []map[string]*big.Rat{make(map[string]*big.Rat)}
	var openers []rune
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '(' || r == '[':
			stack = append(stack, make(map[string]*big.Rat))
			openers = append(openers, r)
			i++
		case r == ')' || r == ']':
			if len(openers) == 0 {
				return nil, newError(ErrSyntax, "chemcalc: unmatched %q in formula", string(r))
			}
			want := ')'
			if openers[len(openers)-1] == '[' {
				want = ']'
			}
			if r != want {
				return nil, newError(ErrSyntax, "chemcalc: mismatched group delimiters in formula")
			}
			openers = openers[:len(openers)-1]
			i++
			n, w := readInt(runes[i:])
			i += w
			if w > 0 && n == 0 {
				return nil, newError(ErrSyntax, "chemcalc: zero group multiplicity in formula")
			}
			if n == 0 {
				n = 1
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			scale := new(big.Rat).SetInt64(int64(n))
			for sym, v := range group {
				addRat(parent, sym, new(big.Rat).Mul(v, scale))
			}
		case unicode.IsUpper(r):
			sym := string(r)
			i++
			if i < len(runes) && unicode.IsLower(runes[i]) {
				sym += string(runes[i])
				i++
			}
			if !KnownElement(sym) {
				return nil, newError(ErrUnknownElement, "chemcalc: unknown element symbol: %q", sym)
			}
			n, w := readInt(runes[i:])
			i += w
			if w > 0 && n == 0 {
				return nil, newError(ErrSyntax, "chemcalc: zero multiplicity for element %s", sym)
			}
			if n == 0 {
				n = 1
			}
			addRat(stack[len(stack)-1], sym, new(big.Rat).SetInt64(int64(n)))
		default:
			return nil, newError(ErrSyntax, "chemcalc: unexpected character %q in formula", string(r))
		}
	}
	if len(openers) != 0 {
		return nil, newError(ErrSyntax, "chemcalc: unclosed group in formula")
	}
	return stack[0], nil
}

//readInt reads a run of digits from the front of runes, returning the
//value and how many runes were consumed. No digits means width 0.
func readInt(runes []rune) (int, int) {
	i := 0
	for i < len(runes) && unicode.IsDigit(runes[i]) {
		i++
	}
	if i == 0 {
		return 0, 0
	}
	return atoi(runes[:i]), i
}

func atoi(runes []rune) int {
	n := 0
	for _, r := range runes {
		n = n*10 + int(r-'0')
	}
	return n
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return len(runes) > 0
}

func addRat(m map[string]*big.Rat, sym string, v *big.Rat) {
	if cur, ok := m[sym]; ok {
		cur.Add(cur, v)
		return
	}
	m[sym] = v
}
