/*
 * xyz.go, part of gomol.
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParseXYZ reads an XYZ-format string: an integer atom count, a free-text
// comment line used as the molecule name, then one "element x y z" line per
// atom. Data lines with fewer than four tokens or non-numeric coordinates
// are skipped; only a non-integer count header or a file of fewer than
// three lines is fatal. XYZ files carry no topology, so bonds are always
// synthesized with InferBonds. The optional fallback name is used when the
// comment line is empty.
func ParseXYZ(content string, fallback ...string) (*Molecule, error) {
	lines := splitLines(content)
	if len(lines) < 3 {
		return nil, CError{ErrTooFewLines, []string{"ParseXYZ"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, CError{ErrBadHeader, []string{"ParseXYZ"}}
	}
	name := pickName(append([]string{strings.TrimSpace(lines[1]), "Imported Molecule"}, fallback...)...)
	atoms := make([]*Atom, 0, natoms)
	for i := 2; i < len(lines) && i < 2+natoms; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 4 {
			continue
		}
		x, err1 := strconv.ParseFloat(fields[1], 64)
		y, err2 := strconv.ParseFloat(fields[2], 64)
		z, err3 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		atoms = append(atoms, &Atom{
			ID:       fields[0] + strconv.Itoa(i-1),
			Symbol:   fields[0],
			Position: r3.Vec{X: x, Y: y, Z: z},
		})
	}
	return NewMolecule(name, atoms, InferBonds(atoms, TypicalBondLengths)), nil
}

// pickName is the ordered fallback chain for molecule names: the first
// candidate that is not empty after trimming wins.
func pickName(candidates ...string) string {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
