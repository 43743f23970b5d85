/*
 * parse.go, part of gomol.
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

// Parse is the public entry point of the parsing machinery: it detects the
// format of content (the filename, which may be empty, is used only as an
// extension hint) and dispatches to the matching parser. The returned
// Format is meaningful even when parsing fails, as the best guess of what
// the content was, or FormatUnknown; it is meant for diagnostics. No code
// path panics; every outcome is a molecule or an error.
func Parse(content, filename string) (*Molecule, Format, error) {
	format := DetectFormat(content, filename)
	var mol *Molecule
	var err error
	switch format {
	case FormatXYZ:
		mol, err = ParseXYZ(content)
	case FormatMOL:
		mol, err = ParseMOL(content)
	case FormatPDB:
		mol, err = ParsePDB(content)
	case FormatSDF:
		mol, err = ParseSDF(content)
	default:
		return nil, FormatUnknown, CError{ErrUnknownFormat, []string{"Parse"}}
	}
	if err != nil {
		return nil, format, errDecorate(err, "Parse")
	}
	return mol, format, nil
}
