/*
 * detect.go, part of gomol.
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
	"path/filepath"
	"strconv"
	"strings"
)

// Format identifies one of the chemistry file formats the library reads.
type Format int

const (
	FormatUnknown Format = iota
	FormatXYZ
	FormatMOL
	FormatPDB
	FormatSDF
)

func (f Format) String() string {
	switch f {
	case FormatXYZ:
		return "xyz"
	case FormatMOL:
		return "mol"
	case FormatPDB:
		return "pdb"
	case FormatSDF:
		return "sdf"
	}
	return "unknown"
}

// FormatFromExtension maps a filename extension (case-insensitive) to a
// format. Both .mol and .mol2 map to FormatMOL.
func FormatFromExtension(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mol", ".mol2":
		return FormatMOL
	case ".pdb":
		return FormatPDB
	case ".xyz":
		return FormatXYZ
	case ".sdf":
		return FormatSDF
	}
	return FormatUnknown
}

// DetectFormat classifies raw file content, plus an optional filename hint,
// into a Format. A recognized filename extension wins outright; content
// sniffing is a fallback for when no filename is given or its extension is
// unrecognized, never a verifier. A mislabeled file is therefore parsed
// with the grammar its extension names and will fail with that format's
// error rather than a format-mismatch diagnostic.
func DetectFormat(content, filename string) Format {
	if filename != "" {
		if f := FormatFromExtension(filename); f != FormatUnknown {
			return f
		}
	}
	lines := splitLines(content)
	for _, line := range lines {
		if strings.HasPrefix(line, "HEADER") || strings.HasPrefix(line, "ATOM") ||
			strings.HasPrefix(line, "HETATM") || strings.HasPrefix(line, "CRYST1") {
			return FormatPDB
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, err := strconv.Atoi(trimmed); err == nil {
			return FormatXYZ //an atom-count header line
		}
		break
	}
	if len(lines) >= 4 {
		fields := strings.Fields(lines[3])
		if len(fields) >= 2 && isInt(fields[0]) && isInt(fields[1]) {
			if strings.Contains(content, "$$$$") {
				return FormatSDF
			}
			return FormatMOL
		}
	}
	return FormatUnknown
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// splitLines splits content into lines, tolerating both \n and \r\n
// endings.
func splitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
