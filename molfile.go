/*
 * molfile.go, part of gomol.
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

// ParseMOL reads a MOL-V2000 string: name line, two ignored metadata lines,
// a counts line whose first two tokens are the atom and bond counts, then
// the atom block ("x y z element ...") and the bond block
// ("atom1 atom2 order ...", 1-based indices). Malformed individual atom or
// bond lines are skipped; a missing or non-numeric counts line is fatal.
// Bond orders of zero, or ones that fail to parse, default to single. MOL
// carries explicit topology, so no bond inference ever runs here.
func ParseMOL(content string) (*Molecule, error) {
	lines := splitLines(content)
	if len(lines) < 4 {
		return nil, CError{ErrTooFewLines, []string{"ParseMOL"}}
	}
	counts := strings.Fields(lines[3])
	if len(counts) < 2 {
		return nil, CError{ErrBadHeader, []string{"ParseMOL"}}
	}
	natoms, err1 := strconv.Atoi(counts[0])
	nbonds, err2 := strconv.Atoi(counts[1])
	if err1 != nil || err2 != nil || natoms < 0 || nbonds < 0 {
		return nil, CError{ErrBadHeader, []string{"ParseMOL"}}
	}
	name := pickName(lines[0], "Imported Molecule")
	atoms := make([]*Atom, 0, natoms)
	for i := 4; i < len(lines) && i < 4+natoms; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 4 {
			continue
		}
		//position columns precede the element symbol, unlike XYZ
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		z, errz := strconv.ParseFloat(fields[2], 64)
		if errx != nil || erry != nil || errz != nil {
			continue
		}
		atoms = append(atoms, &Atom{
			ID:       fields[3] + strconv.Itoa(len(atoms)+1),
			Symbol:   fields[3],
			Position: r3.Vec{X: x, Y: y, Z: z},
		})
	}
	bonds := make([]Bond, 0, nbonds)
	for i := 4 + natoms; i < len(lines) && i < 4+natoms+nbonds; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 2 {
			continue
		}
		a1, erra := strconv.Atoi(fields[0])
		a2, errb := strconv.Atoi(fields[1])
		if erra != nil || errb != nil {
			continue
		}
		a1-- //1-based in the file
		a2--
		if a1 < 0 || a1 >= len(atoms) || a2 < 0 || a2 >= len(atoms) || a1 == a2 {
			continue
		}
		order := Single
		if len(fields) >= 3 {
			if o, err := strconv.Atoi(fields[2]); err == nil && o >= 1 && o <= 4 {
				order = BondOrder(o)
			}
		}
		bonds = append(bonds, Bond{At1: a1, At2: a2, Order: order})
	}
	return NewMolecule(name, atoms, bonds), nil
}
