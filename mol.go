/*
 * mol.go, part of gomol.
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
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// BondOrder classifies a bond as single, double, triple or aromatic.
type BondOrder int

const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return "unknown"
}

// Atom contains one atom read from a file: its element symbol, its Cartesian
// position in Angstrom, and an ID unique within the molecule, built from the
// symbol and the atom's index in the source file.
type Atom struct {
	ID       string
	Symbol   string
	Position r3.Vec
	Charge   int //formal charge
	Label    string
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

// Bond joins the atoms at positions At1 and At2 of the molecule's atom
// slice. Positions, not IDs, are stored, as bond blocks in the supported
// formats reference atoms by their order in the file.
type Bond struct {
	At1   int
	At2   int
	Order BondOrder
}

// Molecule is an ordered set of atoms plus the bonds between them. The atom
// order is the order in the source file, and is significant: bonds reference
// atoms by their position in the slice. A Molecule returned by a parser is
// meant to be treated as an immutable snapshot; the methods that modify
// geometry (Centered, Translated, Scaled) return a new value.
type Molecule struct {
	ID    string
	Name  string
	Atoms []*Atom
	Bonds []Bond
}

// NewMolecule assembles a molecule from parsed atoms and bonds and gives it
// a fresh unique ID.
func NewMolecule(name string, atoms []*Atom, bonds []Bond) *Molecule {
	return &Molecule{ID: uuid.NewString(), Name: name, Atoms: atoms, Bonds: bonds}
}

// Atom returns the Atom corresponding to the index i of the Atom slice in
// the molecule. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("molecule: requested atom out of bounds")
	}
	return M.Atoms[i]
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Copy returns a deep copy of the molecule, with the same ID.
func (M *Molecule) Copy() *Molecule {
	mol := &Molecule{ID: M.ID, Name: M.Name}
	mol.Atoms = make([]*Atom, M.Len())
	for i, at := range M.Atoms {
		mol.Atoms[i] = at.Copy()
	}
	mol.Bonds = make([]Bond, len(M.Bonds))
	copy(mol.Bonds, M.Bonds)
	return mol
}

// Corrupted checks the structural invariants of the molecule: every bond
// must reference two distinct atoms that exist in the atom slice. It returns
// nil if the molecule is sound.
func (M *Molecule) Corrupted() error {
	for i, b := range M.Bonds {
		if b.At1 == b.At2 {
			return CError{fmt.Sprintf("bond %d joins atom %d to itself", i, b.At1), []string{"Corrupted"}}
		}
		if b.At1 < 0 || b.At1 >= M.Len() || b.At2 < 0 || b.At2 >= M.Len() {
			return CError{fmt.Sprintf("bond %d references a non-existent atom (%d-%d, %d atoms)", i, b.At1, b.At2, M.Len()), []string{"Corrupted"}}
		}
	}
	return nil
}

// Formula returns the molecular formula with Unicode subscript counts,
// using the default element table.
func (M *Molecule) Formula() string {
	return Formula(M.Atoms)
}

// Weight returns the molecular weight in g/mol, using the default element
// table.
func (M *Molecule) Weight() float64 {
	return Weight(M.Atoms, Elements)
}

// Translated returns a copy of the molecule with delta added to every atom
// position.
func (M *Molecule) Translated(delta r3.Vec) *Molecule {
	mol := M.Copy()
	for _, at := range mol.Atoms {
		at.Position = r3.Add(at.Position, delta)
	}
	return mol
}

// Centered returns a copy of the molecule translated so its center of mass
// sits at the origin.
func (M *Molecule) Centered() *Molecule {
	com := CenterOfMass(M.Atoms, Elements)
	return M.Translated(r3.Scale(-1, com))
}

// Scaled returns a copy of the molecule with every atom position scaled by
// f about the origin.
func (M *Molecule) Scaled(f float64) *Molecule {
	mol := M.Copy()
	for _, at := range mol.Atoms {
		at.Position = r3.Scale(f, at.Position)
	}
	return mol
}
