/*
 * sdf.go, part of gomol.
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

import "strings"

// ParseSDF reads an SDF string: one or more MOL-V2000 blocks separated by
// lines containing exactly "$$$$". Only the first block is read; the rest
// of the deck is ignored. An empty or whitespace-only first block is fatal.
func ParseSDF(content string) (*Molecule, error) {
	first := firstSDFRecord(content)
	if strings.TrimSpace(first) == "" {
		return nil, CError{ErrEmptyRecord, []string{"ParseSDF"}}
	}
	mol, err := ParseMOL(first)
	return mol, errDecorate(err, "ParseSDF")
}

// firstSDFRecord returns the text before the first "$$$$" separator line,
// or the whole content if there is none.
func firstSDFRecord(content string) string {
	lines := splitLines(content)
	for i, line := range lines {
		if strings.TrimSpace(line) == "$$$$" {
			return strings.Join(lines[:i], "\n")
		}
	}
	return content
}
