/*
 * geometric.go, part of gomol.
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
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

/*These are "fundamental" functions called opportunistically from display
code that cannot always guarantee well-formed state, so, unlike the parsers,
they never return errors: degenerate input (zero vectors, empty slices,
out-of-range indices) yields a well-defined fallback value instead.*/

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Distance returns the Euclidean distance between p1 and p2, in Angstrom.
func Distance(p1, p2 r3.Vec) float64 {
	return r3.Norm(r3.Sub(p1, p2))
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(p1, p2))
}

// Angle returns the angle at p2 formed by p1-p2 and p3-p2, in degrees, in
// the range [0,180]. The cosine is clamped to [-1,1] before the acos to
// absorb floating-point overshoot. If either arm has zero length the angle
// is 0.
func Angle(p1, p2, p3 r3.Vec) float64 {
	v1 := r3.Sub(p1, p2)
	v2 := r3.Sub(p3, p2)
	normprod := r3.Norm(v1) * r3.Norm(v2)
	if normprod <= appzero {
		return 0
	}
	argument := r3.Dot(v1, v2) / normprod
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return math.Acos(argument) * Rad2Deg
}

// Dihedral returns the torsion angle about the p2-p3 axis for the four
// sequential points given, in degrees, in (-180,180]. The sign encodes the
// handedness of the torsion. Degenerate input (any zero-length bond vector)
// yields 0.
func Dihedral(p1, p2, p3, p4 r3.Vec) float64 {
	b1 := r3.Sub(p2, p1)
	b2 := r3.Sub(p3, p2)
	b3 := r3.Sub(p4, p3)
	if r3.Norm(b1) <= appzero || r3.Norm(b2) <= appzero || r3.Norm(b3) <= appzero {
		return 0
	}
	n1 := r3.Cross(b1, b2)
	n2 := r3.Cross(b2, b3)
	m1 := r3.Cross(n1, r3.Unit(b2))
	x := r3.Dot(n1, n2)
	y := r3.Dot(m1, n2)
	return math.Atan2(y, x) * Rad2Deg
}

// CenterOfMass returns the mass-weighted average position of the atoms,
// with masses looked up per element in elems. If the total mass is zero
// (empty slice, or only unknown elements) the origin is returned.
func CenterOfMass(atoms []*Atom, elems ElementTable) r3.Vec {
	var sum r3.Vec
	var total float64
	for _, at := range atoms {
		m := elems.Mass(at.Symbol)
		sum = r3.Add(sum, r3.Scale(m, at.Position))
		total += m
	}
	if total <= appzero {
		return r3.Vec{}
	}
	return r3.Scale(1/total, sum)
}

// BoundingBox is the axis-aligned box enclosing a set of atoms.
type BoundingBox struct {
	Min    r3.Vec
	Max    r3.Vec
	Size   r3.Vec
	Center r3.Vec
}

// BoundBox returns the bounding box of the atoms. An empty slice yields the
// all-zero box; no Inf ever escapes.
func BoundBox(atoms []*Atom) BoundingBox {
	if len(atoms) == 0 {
		return BoundingBox{}
	}
	min := atoms[0].Position
	max := atoms[0].Position
	for _, at := range atoms[1:] {
		p := at.Position
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return BoundingBox{
		Min:    min,
		Max:    max,
		Size:   r3.Sub(max, min),
		Center: Midpoint(min, max),
	}
}

// BondLength returns the distance between the two endpoint atoms of b.
// Returns 0 if either endpoint index is out of range.
func BondLength(atoms []*Atom, b Bond) float64 {
	if b.At1 < 0 || b.At1 >= len(atoms) || b.At2 < 0 || b.At2 >= len(atoms) {
		return 0
	}
	return Distance(atoms[b.At1].Position, atoms[b.At2].Position)
}

// MomentTensor returns the moment of inertia tensor of the atoms about
// their center of mass, with masses from elems. Atoms of unknown elements
// contribute nothing.
func MomentTensor(atoms []*Atom, elems ElementTable) *mat.SymDense {
	com := CenterOfMass(atoms, elems)
	I := mat.NewSymDense(3, nil)
	for _, at := range atoms {
		m := elems.Mass(at.Symbol)
		p := r3.Sub(at.Position, com)
		I.SetSym(0, 0, I.At(0, 0)+m*(p.Y*p.Y+p.Z*p.Z))
		I.SetSym(1, 1, I.At(1, 1)+m*(p.X*p.X+p.Z*p.Z))
		I.SetSym(2, 2, I.At(2, 2)+m*(p.X*p.X+p.Y*p.Y))
		I.SetSym(0, 1, I.At(0, 1)-m*p.X*p.Y)
		I.SetSym(0, 2, I.At(0, 2)-m*p.X*p.Z)
		I.SetSym(1, 2, I.At(1, 2)-m*p.Y*p.Z)
	}
	return I
}

// PrincipalMoments returns the three principal moments of inertia of the
// atoms, in ascending order. It returns an error if the eigendecomposition
// fails to converge.
func PrincipalMoments(atoms []*Atom, elems ElementTable) ([]float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(MomentTensor(atoms, elems), false); !ok {
		return nil, CError{"eigendecomposition of the moment tensor failed", []string{"PrincipalMoments"}}
	}
	return eig.Values(nil), nil
}
