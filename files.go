/*
 * files.go, part of gomol.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ReadFile opens a molecule file and parses it according to its extension
// and content. Files ending in .gz or .zst are decompressed transparently,
// and the format hint is taken from the extension underneath (so
// "caffeine.sdf.gz" parses as SDF).
func ReadFile(path string) (*Molecule, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FormatUnknown, CError{err.Error(), []string{"os.Open", "ReadFile"}}
	}
	defer f.Close()
	var r io.Reader = f
	hint := path
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, FormatUnknown, CError{err.Error(), []string{"gzip.NewReader", "ReadFile"}}
		}
		defer gz.Close()
		r = gz
		hint = strings.TrimSuffix(path, filepath.Ext(path))
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, FormatUnknown, CError{err.Error(), []string{"zstd.NewReader", "ReadFile"}}
		}
		defer zr.Close()
		r = zr
		hint = strings.TrimSuffix(path, filepath.Ext(path))
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, FormatUnknown, CError{err.Error(), []string{"io.ReadAll", "ReadFile"}}
	}
	mol, format, err := Parse(string(content), hint)
	return mol, format, errDecorate(err, "ReadFile")
}

// XYZWrite writes mol to out in XYZ format: atom count, the molecule name
// as the comment line, then one element/coordinates line per atom.
func XYZWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	if _, err := fmt.Fprintf(out, "%d\n%s\n", mol.Len(), mol.Name); err != nil {
		return CError{ErrUnwritableFile, []string{"XYZWrite"}}
	}
	for _, at := range mol.Atoms {
		p := at.Position
		if _, err := fmt.Fprintf(out, "%-2s  %12.6f  %12.6f  %12.6f\n", at.Symbol, p.X, p.Y, p.Z); err != nil {
			return CError{ErrUnwritableFile, []string{"XYZWrite"}}
		}
	}
	return nil
}

// XYZFileWrite writes mol in XYZ format to a file with the given name,
// overwriting it if it exists.
func XYZFileWrite(name string, mol *Molecule) error {
	out, err := os.Create(name)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZFileWrite"}}
	}
	defer out.Close()
	return errDecorate(XYZWrite(out, mol), "XYZFileWrite")
}

// PDBWrite writes mol to out in PDB format: a HEADER record with the
// molecule name, HETATM records for every atom, CONECT records for every
// bond, and END. Serials are the 1-based atom positions.
func PDBWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	var err error
	_, err = fmt.Fprintf(out, "HEADER    %-40s\nREMARK   1 WRITTEN WITH GOMOL\n", mol.Name)
	if err != nil {
		return CError{ErrUnwritableFile, []string{"PDBWrite"}}
	}
	for i, at := range mol.Atoms {
		name := at.Label
		if name == "" {
			name = at.Symbol
		}
		p := at.Position
		_, err = fmt.Fprintf(out, "HETATM%5d %-4s UNL     1    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			i+1, name, p.X, p.Y, p.Z, 1.0, 0.0, at.Symbol)
		if err != nil {
			return CError{ErrUnwritableFile, []string{"PDBWrite"}}
		}
	}
	//one CONECT record per bond is valid, if more verbose than grouping
	//the neighbors of each atom.
	for _, b := range mol.Bonds {
		if _, err = fmt.Fprintf(out, "CONECT%5d%5d\n", b.At1+1, b.At2+1); err != nil {
			return CError{ErrUnwritableFile, []string{"PDBWrite"}}
		}
	}
	if _, err = fmt.Fprint(out, "END\n"); err != nil {
		return CError{ErrUnwritableFile, []string{"PDBWrite"}}
	}
	return nil
}

// PDBFileWrite writes mol in PDB format to a file with the given name,
// overwriting it if it exists.
func PDBFileWrite(name string, mol *Molecule) error {
	out, err := os.Create(name)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "PDBFileWrite"}}
	}
	defer out.Close()
	return errDecorate(PDBWrite(out, mol), "PDBFileWrite")
}
