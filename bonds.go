/*
 * bonds.go, part of gomol.
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
	"sort"
)

// InferBonds synthesizes bonds for formats that carry no explicit topology,
// with a distance criterium similar to that of DOI:10.1186/1758-2946-3-33:
// an unordered pair of atoms is bonded if its distance does not exceed the
// expected single-bond distance for the element pair, from table, plus
// BondTolerance. Geometry alone cannot tell bond orders apart, so every
// inferred bond is a single bond. No unordered pair is ever emitted twice.
//
// Internally the atoms are binned into a cubic grid with cells as wide as
// the largest bondable distance, so only the 27 cells around an atom are
// scanned; candidate molecules large enough to hurt should be size-capped
// by the caller before parsing.
func InferBonds(atoms []*Atom, table BondLengths) []Bond {
	if len(atoms) == 0 {
		return nil
	}
	cell := table.Max() + BondTolerance
	grid := make(map[[3]int][]int, len(atoms))
	bin := func(at *Atom) [3]int {
		return [3]int{
			int(math.Floor(at.Position.X / cell)),
			int(math.Floor(at.Position.Y / cell)),
			int(math.Floor(at.Position.Z / cell)),
		}
	}
	for i, at := range atoms {
		c := bin(at)
		grid[c] = append(grid[c], i)
	}
	bonds := make([]Bond, 0, len(atoms))
	for i, at := range atoms {
		c := bin(at)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					neighbors := grid[[3]int{c[0] + dx, c[1] + dy, c[2] + dz}]
					for _, j := range neighbors {
						if j <= i {
							continue //each unordered pair is visited once, as (i<j)
						}
						d := Distance(at.Position, atoms[j].Position)
						if d <= table.Expected(at.Symbol, atoms[j].Symbol)+BondTolerance {
							bonds = append(bonds, Bond{At1: i, At2: j, Order: Single})
						}
					}
				}
			}
		}
	}
	//The grid visits pairs in cell order; put them back in file order so the
	//result matches what the plain O(n^2) scan would give.
	sort.Slice(bonds, func(a, b int) bool {
		if bonds[a].At1 != bonds[b].At1 {
			return bonds[a].At1 < bonds[b].At1
		}
		return bonds[a].At2 < bonds[b].At2
	})
	return bonds
}
