/*
 * formula.go, part of gomol.
 *
 * Copyright 2026 The gomol developers
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

package mol

import (
	"sort"
	"strconv"
	"strings"
)

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

var subscriptDigits = map[rune]rune{
	'₀': '0', '₁': '1', '₂': '2', '₃': '3', '₄': '4',
	'₅': '5', '₆': '6', '₇': '7', '₈': '8', '₉': '9',
}

// DigitsToSubscript replaces every ASCII digit in s with the matching
// Unicode subscript digit.
func DigitsToSubscript(s string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := subscripts[r]; ok {
			return sub
		}
		return r
	}, s)
}

// SubscriptToDigits is the inverse of DigitsToSubscript, for editing and
// redisplay contexts.
func SubscriptToDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := subscriptDigits[r]; ok {
			return d
		}
		return r
	}, s)
}

// Formula counts atoms per element and renders the molecular formula in
// Hill order: Carbon first, Hydrogen second, then the remaining elements
// alphabetically. Counts of 1 are omitted; larger counts are rendered as
// Unicode subscripts.
func Formula(atoms []*Atom) string {
	counts := make(map[string]int)
	for _, at := range atoms {
		counts[at.Symbol]++
	}
	rest := make([]string, 0, len(counts))
	for sym := range counts {
		if sym != "C" && sym != "H" {
			rest = append(rest, sym)
		}
	}
	sort.Strings(rest)
	var b strings.Builder
	for _, sym := range append([]string{"C", "H"}, rest...) {
		n := counts[sym]
		if n == 0 {
			continue
		}
		b.WriteString(sym)
		if n > 1 {
			b.WriteString(DigitsToSubscript(strconv.Itoa(n)))
		}
	}
	return b.String()
}

// Weight sums the atomic masses of the atoms, in g/mol, looked up per
// element in elems. Unknown elements contribute 0, they are not an error.
func Weight(atoms []*Atom, elems ElementTable) float64 {
	var w float64
	for _, at := range atoms {
		w += elems.Mass(at.Symbol)
	}
	return w
}
