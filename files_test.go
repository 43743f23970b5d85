/*
 * files_test.go, part of gomol.
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
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestReadFilePlain(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "water.xyz")
	if err := os.WriteFile(path, []byte(waterXYZ), 0o644); err != nil {
		Te.Fatal(err)
	}
	mol, format, err := ReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	if format != FormatXYZ || mol.Len() != 3 {
		Te.Errorf("got format %v with %d atoms", format, mol.Len())
	}
}

func TestReadFileGzip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "water.xyz.gz")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(waterXYZ)); err != nil {
		Te.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	mol, format, err := ReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	//the format hint must come from the extension under the .gz
	if format != FormatXYZ {
		Te.Errorf("got format %v, want xyz", format)
	}
	if mol.Name != "water" {
		Te.Errorf("got name %q", mol.Name)
	}
}

func TestReadFileZstd(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "deck.sdf.zst")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := zw.Write([]byte(ethanolMOL + "$$$$\n")); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	mol, format, err := ReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	if format != FormatSDF {
		Te.Errorf("got format %v, want sdf", format)
	}
	if mol.Name != "ethanol" {
		Te.Errorf("got name %q", mol.Name)
	}
}

func TestReadFileMissing(Te *testing.T) {
	if _, _, err := ReadFile(filepath.Join(Te.TempDir(), "nope.xyz")); err == nil {
		Te.Error("missing file should fail")
	}
}

func TestXYZWriteRoundTrip(Te *testing.T) {
	mol, err := ParseXYZ(waterXYZ)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := XYZWrite(&buf, mol); err != nil {
		Te.Fatal(err)
	}
	again, err := ParseXYZ(buf.String())
	if err != nil {
		Te.Fatal(err)
	}
	if again.Len() != 3 || again.Name != "water" {
		Te.Errorf("round trip lost data: %d atoms, name %q", again.Len(), again.Name)
	}
	for i := range mol.Atoms {
		if d := Distance(mol.Atom(i).Position, again.Atom(i).Position); d > 1e-5 {
			Te.Errorf("atom %d moved %g on round trip", i, d)
		}
	}
}

func TestPDBWriteRoundTrip(Te *testing.T) {
	mol, err := ParseXYZ(waterXYZ)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PDBWrite(&buf, mol); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "HEADER    water") {
		Te.Errorf("missing HEADER record: %q", out[:20])
	}
	again, err := ParsePDB(out)
	if err != nil {
		Te.Fatal(err)
	}
	if again.Len() != 3 {
		Te.Fatalf("round trip lost atoms: %d", again.Len())
	}
	//written CONECT records carry the inferred topology across
	if len(again.Bonds) != len(mol.Bonds) {
		Te.Errorf("bonds: got %d, want %d", len(again.Bonds), len(mol.Bonds))
	}
	for i := range mol.Atoms {
		if again.Atom(i).Symbol != mol.Atom(i).Symbol {
			Te.Errorf("atom %d symbol: %q vs %q", i, again.Atom(i).Symbol, mol.Atom(i).Symbol)
		}
	}
}
