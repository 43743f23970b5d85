/*
 * atomicdata.go, part of gomol.
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

// Element holds the per-element constants used by the library: atomic mass,
// covalent and van der Waals radii (Angstrom) and the CPK display color.
// Radii from Cordero et al., 2008 (DOI:10.1039/B801115J) and 10.1021/j100785a001.
type Element struct {
	Mass   float64
	Covrad float64
	Vdwrad float64
	Color  string
}

// ElementTable maps element symbols to their constants. Tables are read-only
// once built; the functions that take one never modify it.
type ElementTable map[string]Element

// Mass returns the atomic mass for the symbol, or 0 if the element is not
// in the table.
func (t ElementTable) Mass(symbol string) float64 {
	return t[symbol].Mass
}

// Elements is the default element table.
// Note that just common "bio-elements" are present.
var Elements = ElementTable{
	"H":  {1.008, 0.31, 1.10, "#FFFFFF"},
	"C":  {12.011, 0.76, 1.70, "#909090"}, //the sp3 radius
	"N":  {14.007, 0.71, 1.55, "#3050F8"},
	"O":  {15.999, 0.66, 1.52, "#FF0D0D"},
	"F":  {18.998, 0.57, 1.47, "#90E050"},
	"P":  {30.974, 1.07, 1.80, "#FF8000"},
	"S":  {32.06, 1.05, 1.80, "#FFFF30"},
	"Cl": {35.45, 1.02, 1.75, "#1FF01F"},
	"Br": {79.904, 1.20, 1.83, "#A62929"},
	"I":  {126.90, 1.39, 1.98, "#940094"},
	"B":  {10.81, 0.84, 1.92, "#FFB5B5"},
	"Si": {28.085, 1.11, 2.10, "#F0C8A0"},
	"Se": {78.971, 1.20, 1.90, "#FFA100"},
	"Li": {6.94, 1.28, 1.82, "#CC80FF"},
	"Na": {22.990, 1.66, 2.27, "#AB5CF2"},
	"K":  {39.098, 2.03, 2.75, "#8F40D4"},
	"Mg": {24.305, 1.41, 1.73, "#8AFF00"},
	"Ca": {40.078, 1.76, 2.31, "#3DFF00"},
	"Mn": {54.938, 1.61, 1.96, "#9C7AC7"}, //hs
	"Fe": {55.845, 1.52, 1.96, "#E06633"}, //hs
	"Co": {58.933, 1.50, 1.95, "#F090A0"}, //hs
	"Cu": {63.546, 1.32, 2.00, "#C88033"},
	"Zn": {65.38, 1.22, 2.02, "#7D80B0"},
}

// BondLengths maps unordered element pairs, keyed "A-B", to the expected
// single-bond distance in Angstrom. Pairs absent from the table fall back
// to DefaultBondLength.
type BondLengths map[string]float64

const (
	//DefaultBondLength is the expected distance for element pairs not in the table.
	DefaultBondLength = 1.6
	//BondTolerance is how much longer than its expected distance a pair may
	//be while still counting as bonded.
	BondTolerance = 0.4
)

// Expected returns the expected single-bond distance for the unordered pair
// (a, b). The lookup is symmetric: "A-B" is tried first, then "B-A", then
// DefaultBondLength.
func (bl BondLengths) Expected(a, b string) float64 {
	if d, ok := bl[a+"-"+b]; ok {
		return d
	}
	if d, ok := bl[b+"-"+a]; ok {
		return d
	}
	return DefaultBondLength
}

// Max returns the largest distance in the table, or DefaultBondLength if
// that is larger. It sizes the cells of the neighbor grid in InferBonds.
func (bl BondLengths) Max() float64 {
	max := DefaultBondLength
	for _, d := range bl {
		if d > max {
			max = d
		}
	}
	return max
}

// TypicalBondLengths is the default pair table, with textbook equilibrium
// single-bond distances.
var TypicalBondLengths = BondLengths{
	"H-H":   0.74,
	"C-H":   1.09,
	"N-H":   1.01,
	"O-H":   0.96,
	"S-H":   1.34,
	"P-H":   1.42,
	"C-C":   1.54,
	"C-N":   1.47,
	"C-O":   1.43,
	"C-S":   1.82,
	"C-F":   1.35,
	"C-Cl":  1.77,
	"C-Br":  1.94,
	"C-I":   2.14,
	"N-N":   1.45,
	"N-O":   1.40,
	"O-O":   1.48,
	"O-P":   1.63,
	"O-S":   1.57,
	"S-S":   2.05,
	"Si-H":  1.48,
	"Si-C":  1.85,
	"Si-O":  1.63,
	"Si-Si": 2.33,
}
