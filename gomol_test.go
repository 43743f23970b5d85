/*
 * gomol_test.go, part of gomol.
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
	"strings"
	"testing"
)

const waterXYZ = "3\nwater\nO 0 0 0\nH 0.96 0 0\nH -0.24 0.93 0"

const ethanolMOL = `ethanol
  written by hand
 comment
  3  2  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0
    1.5400    0.0000    0.0000 C   0  0
    2.1000    1.3000    0.0000 O   0  0
  1  2  1  0
  2  3  1  0
M  END
`

func TestXYZParse(Te *testing.T) {
	mol, err := ParseXYZ(waterXYZ)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "water" {
		Te.Errorf("name: got %q, want \"water\"", mol.Name)
	}
	if mol.Len() != 3 {
		Te.Fatalf("got %d atoms, want 3", mol.Len())
	}
	if len(mol.Bonds) != 2 {
		Te.Errorf("got %d inferred bonds, want 2", len(mol.Bonds))
	}
	if mol.Atom(0).ID != "O1" || mol.Atom(2).ID != "H3" {
		Te.Errorf("unexpected atom IDs %q %q", mol.Atom(0).ID, mol.Atom(2).ID)
	}
	if err := mol.Corrupted(); err != nil {
		Te.Error(err)
	}
}

func TestXYZSkipsMalformedLines(Te *testing.T) {
	//second atom line has a non-numeric coordinate, third too few tokens
	mol, err := ParseXYZ("3\n\nO 0 0 0\nH x 0 0\nH 0.96\n")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 1 {
		Te.Errorf("got %d atoms, want 1 after skipping malformed lines", mol.Len())
	}
	if mol.Name != "Imported Molecule" {
		Te.Errorf("name fallback: got %q", mol.Name)
	}
}

func TestXYZFatalCases(Te *testing.T) {
	if _, err := ParseXYZ("not a count\n\nO 0 0 0\n"); err == nil {
		Te.Error("non-integer count header should be fatal")
	}
	if _, err := ParseXYZ("2\ntoo short"); err == nil {
		Te.Error("fewer than 3 lines should be fatal")
	}
}

func TestMOLParse(Te *testing.T) {
	mol, err := ParseMOL(ethanolMOL)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "ethanol" {
		Te.Errorf("name: got %q", mol.Name)
	}
	if mol.Len() != 3 {
		Te.Fatalf("got %d atoms, want 3", mol.Len())
	}
	if len(mol.Bonds) != 2 {
		Te.Fatalf("got %d bonds, want 2", len(mol.Bonds))
	}
	//1-based in the file, 0-based in the molecule
	if mol.Bonds[0].At1 != 0 || mol.Bonds[0].At2 != 1 {
		Te.Errorf("bond 0 endpoints: got %d-%d, want 0-1", mol.Bonds[0].At1, mol.Bonds[0].At2)
	}
	if mol.Bonds[1].At1 != 1 || mol.Bonds[1].At2 != 2 {
		Te.Errorf("bond 1 endpoints: got %d-%d, want 1-2", mol.Bonds[1].At1, mol.Bonds[1].At2)
	}
	if err := mol.Corrupted(); err != nil {
		Te.Error(err)
	}
}

func TestMOLBadCounts(Te *testing.T) {
	bad := "name\n\n\n  x  2  0  0999 V2000\n"
	if _, err := ParseMOL(bad); err == nil {
		Te.Error("non-numeric counts line should be fatal")
	}
}

func TestMOLZeroOrderDefaultsToSingle(Te *testing.T) {
	molblock := strings.Replace(ethanolMOL, "  1  2  1  0", "  1  2  0  0", 1)
	mol, err := ParseMOL(molblock)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Bonds[0].Order != Single {
		Te.Errorf("zero bond order should default to single, got %v", mol.Bonds[0].Order)
	}
}

func TestPDBParse(Te *testing.T) {
	pdb := "HEADER    WATER FROM SOMEWHERE                    01-JAN-01   1ABC\n" +
		"HETATM    1  O   HOH     1       0.000   0.000   0.000  1.00  0.00           O\n" +
		"HETATM    2  H1  HOH     1       0.960   0.000   0.000  1.00  0.00           H\n" +
		"HETATM    3  H2  HOH     1      -0.240   0.930   0.000  1.00  0.00           H\n" +
		"CONECT    1    2    3\n" +
		"CONECT    2    1\n" + //duplicate pair, must be collapsed
		"END\n"
	mol, err := ParsePDB(pdb)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "WATER FROM SOMEWHERE" {
		Te.Errorf("HEADER name: got %q", mol.Name)
	}
	if mol.Len() != 3 {
		Te.Fatalf("got %d atoms, want 3", mol.Len())
	}
	if len(mol.Bonds) != 2 {
		Te.Errorf("CONECT dedup: got %d bonds, want 2", len(mol.Bonds))
	}
	if mol.Atom(0).Symbol != "O" || mol.Atom(0).ID != "O1" {
		Te.Errorf("atom 0: got %q %q", mol.Atom(0).Symbol, mol.Atom(0).ID)
	}
	if err := mol.Corrupted(); err != nil {
		Te.Error(err)
	}
}

func TestPDBElementFromName(Te *testing.T) {
	//no element columns: symbol must come from the atom name, digits stripped
	pdb := "HETATM    1 1HB  ALA     1       0.000   0.000   0.000\n"
	mol, err := ParsePDB(pdb)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Symbol != "H" {
		Te.Errorf("derived symbol: got %q, want \"H\"", mol.Atom(0).Symbol)
	}
}

func TestPDBInfersWithoutConect(Te *testing.T) {
	pdb := "COMPND    MOLECULE: WATER;\n" +
		"HETATM    1  O   HOH     1       0.000   0.000   0.000  1.00  0.00           O\n" +
		"HETATM    2  H1  HOH     1       0.960   0.000   0.000  1.00  0.00           H\n" +
		"HETATM    3  H2  HOH     1      -0.240   0.930   0.000  1.00  0.00           H\n"
	mol, err := ParsePDB(pdb)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "WATER" {
		Te.Errorf("COMPND name: got %q", mol.Name)
	}
	if len(mol.Bonds) != 2 {
		Te.Errorf("got %d inferred bonds, want 2", len(mol.Bonds))
	}
}

func TestSDFFirstRecordOnly(Te *testing.T) {
	sdf := ethanolMOL + "$$$$\n" + strings.Replace(ethanolMOL, "ethanol", "second", 1) + "$$$$\n"
	mol, format, err := Parse(sdf, "deck.sdf")
	if err != nil {
		Te.Fatal(err)
	}
	if format != FormatSDF {
		Te.Errorf("format: got %v, want sdf", format)
	}
	if mol.Name != "ethanol" {
		Te.Errorf("should read only the first record, got %q", mol.Name)
	}
}

func TestSDFEmptyRecord(Te *testing.T) {
	if _, err := ParseSDF("   \n\n$$$$\n" + ethanolMOL); err == nil {
		Te.Error("empty first record should be fatal")
	}
}

func TestParseUnknown(Te *testing.T) {
	mol, format, err := Parse("this is not a molecule at all", "")
	if err == nil || mol != nil {
		Te.Error("unrecognized content should fail")
	}
	if format != FormatUnknown {
		Te.Errorf("format: got %v, want unknown", format)
	}
}

// No bond may reference an atom that is not in the molecule, whatever the
// format and however noisy the file.
func TestNoDanglingBondReferences(Te *testing.T) {
	//MOL file whose bond block references atom 9, which doesn't exist
	bad := "name\n\n\n  2  2  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0\n" +
		"    1.5400    0.0000    0.0000 C   0  0\n" +
		"  1  2  1  0\n" +
		"  1  9  1  0\n" +
		"M  END\n"
	mol, err := ParseMOL(bad)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mol.Bonds) != 1 {
		Te.Errorf("out-of-range bond should be dropped, got %d bonds", len(mol.Bonds))
	}
	if err := mol.Corrupted(); err != nil {
		Te.Error(err)
	}
}

func TestImmutableDerivations(Te *testing.T) {
	mol, err := ParseXYZ(waterXYZ)
	if err != nil {
		Te.Fatal(err)
	}
	centered := mol.Centered()
	if mol.Atom(1).Position == centered.Atom(1).Position {
		Te.Error("Centered should not return the original positions")
	}
	if mol.Atom(1).Position.X != 0.96 {
		Te.Error("Centered must not mutate the original molecule")
	}
	com := CenterOfMass(centered.Atoms, Elements)
	if Distance(com, centered.Atom(0).Position) > 2 { //sanity only
		Te.Error("suspicious center of mass after centering")
	}
}
