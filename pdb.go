/*
 * pdb.go, part of gomol.
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
	"unicode"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParsePDB reads a PDB-format string, taking atoms from the fixed columns
// of ATOM and HETATM records and bonds from CONECT records. Records with
// unparsable coordinates are skipped. CONECT pairs are deduplicated across
// the whole file; when the file has no CONECT records at all, bonds are
// synthesized with InferBonds instead. The molecule name comes from the
// first HEADER record, else from a COMPND MOLECULE: entry, else from the
// optional fallback.
func ParsePDB(content string, fallback ...string) (*Molecule, error) {
	lines := splitLines(content)
	var header, compnd string
	atoms := make([]*Atom, 0)
	serial2idx := make(map[int]int)
	pairs := make(map[[2]int]bool)
	conectSeen := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "HEADER"):
			if header == "" && len(line) > 10 {
				header = strings.TrimSpace(line[10:min(50, len(line))])
			}
		case strings.HasPrefix(line, "COMPND"):
			if compnd == "" {
				if idx := strings.Index(line, "MOLECULE:"); idx >= 0 {
					compnd = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[idx+len("MOLECULE:"):]), ";"))
				}
			}
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, serial, ok := readPDBAtom(line)
			if !ok {
				continue
			}
			serial2idx[serial] = len(atoms)
			atoms = append(atoms, at)
		case strings.HasPrefix(line, "CONECT"):
			conectSeen = true
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			src, err := strconv.Atoi(fields[1])
			if err != nil {
				continue
			}
			for _, f := range fields[2:] {
				tgt, err := strconv.Atoi(f)
				if err != nil {
					continue
				}
				i, ok1 := serial2idx[src]
				j, ok2 := serial2idx[tgt]
				if !ok1 || !ok2 || i == j {
					continue
				}
				if i > j {
					i, j = j, i
				}
				pairs[[2]int{i, j}] = true
			}
		}
	}
	if len(atoms) == 0 {
		return nil, CError{ErrNoAtomRecords, []string{"ParsePDB"}}
	}
	name := pickName(append([]string{header, compnd, "Imported Molecule"}, fallback...)...)
	var bonds []Bond
	if conectSeen {
		bonds = make([]Bond, 0, len(pairs))
		for pair := range pairs {
			bonds = append(bonds, Bond{At1: pair[0], At2: pair[1], Order: Single})
		}
		sort.Slice(bonds, func(a, b int) bool {
			if bonds[a].At1 != bonds[b].At1 {
				return bonds[a].At1 < bonds[b].At1
			}
			return bonds[a].At2 < bonds[b].At2
		})
	} else {
		bonds = InferBonds(atoms, TypicalBondLengths)
	}
	return NewMolecule(name, atoms, bonds), nil
}

// readPDBAtom parses one ATOM/HETATM record. Columns (1-based, inclusive):
// serial 7-11, atom name 13-16, x 31-38, y 39-46, z 47-54, element 77-78.
// When the element columns are absent or blank, the element is derived from
// the atom name by stripping digits and keeping the first character.
func readPDBAtom(line string) (*Atom, int, bool) {
	if len(line) < 54 {
		return nil, 0, false
	}
	serial, err := strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, 0, false
	}
	name := strings.TrimSpace(line[12:16])
	x, err1 := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	z, err3 := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, 0, false
	}
	symbol := ""
	if len(line) >= 78 {
		symbol = strings.TrimSpace(line[76:78])
	}
	if symbol == "" {
		symbol = symbolFromName(name)
	}
	if symbol == "" {
		return nil, 0, false
	}
	at := &Atom{
		ID:       symbol + strconv.Itoa(serial),
		Symbol:   symbol,
		Position: r3.Vec{X: x, Y: y, Z: z},
		Label:    name,
	}
	return at, serial, true
}

// symbolFromName guesses a chemical element symbol from a PDB atom name:
// digits are stripped and the first remaining character kept. Two-letter
// elements in files without element columns will be misread as their first
// letter; the 77-78 columns always win when present.
func symbolFromName(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, name)
	if stripped == "" {
		return ""
	}
	return strings.ToUpper(stripped[:1])
}
