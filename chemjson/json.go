/*
 * json.go, part of gomol.
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

//Package chemjson moves molecules in and out of the library as JSON, for
//the display and info-panel layers that consume them.
package chemjson

import (
	"encoding/json"
	"io"
	"strings"

	mol "github.com/molforge/gomol"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is the wire shape of one atom.
type Atom struct {
	ID     string     `json:"id"`
	Symbol string     `json:"symbol"`
	XYZ    [3]float64 `json:"xyz"`
	Charge int        `json:"charge,omitempty"`
	Label  string     `json:"label,omitempty"`
}

// Bond is the wire shape of one bond. Order uses the numeric convention of
// MOL files (1-3, 4 for aromatic).
type Bond struct {
	At1   int `json:"at1"`
	At2   int `json:"at2"`
	Order int `json:"order"`
}

// Molecule is the wire shape of a whole molecule. Formula is included
// precomputed so consumers don't need an element table.
type Molecule struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Formula string  `json:"formula"`
	Weight  float64 `json:"weight"`
	Atoms   []Atom  `json:"atoms"`
	Bonds   []Bond  `json:"bonds"`
}

// Error is an easily JSON-serializable error type. It fulfills mol.Error.
type Error struct {
	Function string `json:"function"` //which Go function gave the error
	Message  string `json:"message"`  //the error itself
	deco     []string
}

func (J *Error) Error() string { return J.Message }

// Decorate adds new information to the error, and returns the current
// decoration.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

// Marshal serializes the error itself. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //well, shit.
	}
	return ret
}

// FromMol converts a molecule to its wire shape.
func FromMol(m *mol.Molecule) *Molecule {
	J := &Molecule{
		ID:      m.ID,
		Name:    m.Name,
		Formula: m.Formula(),
		Weight:  m.Weight(),
		Atoms:   make([]Atom, m.Len()),
		Bonds:   make([]Bond, len(m.Bonds)),
	}
	for i, at := range m.Atoms {
		J.Atoms[i] = Atom{
			ID:     at.ID,
			Symbol: at.Symbol,
			XYZ:    [3]float64{at.Position.X, at.Position.Y, at.Position.Z},
			Charge: at.Charge,
			Label:  at.Label,
		}
	}
	for i, b := range m.Bonds {
		J.Bonds[i] = Bond{At1: b.At1, At2: b.At2, Order: int(b.Order)}
	}
	return J
}

// ToMol converts the wire shape back to a molecule, checking its structural
// invariants on the way.
func (J *Molecule) ToMol() (*mol.Molecule, *Error) {
	atoms := make([]*mol.Atom, len(J.Atoms))
	for i, at := range J.Atoms {
		atoms[i] = &mol.Atom{
			ID:       at.ID,
			Symbol:   at.Symbol,
			Position: r3.Vec{X: at.XYZ[0], Y: at.XYZ[1], Z: at.XYZ[2]},
			Charge:   at.Charge,
			Label:    at.Label,
		}
	}
	bonds := make([]mol.Bond, len(J.Bonds))
	for i, b := range J.Bonds {
		bonds[i] = mol.Bond{At1: b.At1, At2: b.At2, Order: mol.BondOrder(b.Order)}
	}
	m := &mol.Molecule{ID: J.ID, Name: J.Name, Atoms: atoms, Bonds: bonds}
	if err := m.Corrupted(); err != nil {
		return nil, NewError("ToMol", err)
	}
	return m, nil
}

// NewError takes an error and the function it came from and builds an
// Error.
func NewError(function string, err error) *Error {
	return &Error{Function: function, Message: err.Error()}
}

// Encode writes the molecule to out as one JSON document.
func Encode(out io.Writer, m *mol.Molecule) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromMol(m)); err != nil {
		return NewError("Encode", err)
	}
	return nil
}

// Decode reads one JSON document from in and rebuilds the molecule.
func Decode(in io.Reader) (*mol.Molecule, *Error) {
	dec := json.NewDecoder(in)
	J := new(Molecule)
	if err := dec.Decode(J); err != nil {
		return nil, NewError("Decode", err)
	}
	return J.ToMol()
}
