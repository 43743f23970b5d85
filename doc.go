/*
 * doc.go, part of gomol.
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

/*
Package mol turns raw text in one of several chemistry file formats into a
canonical in-memory molecule, and answers the geometric queries a molecular
viewer or editor asks of it.

	**Capabilities**

    Detects and reads XYZ, MOL-V2000, PDB and SDF files, from strings or
	from (optionally gzip- or zstd-compressed) files.

    Synthesizes bonds from interatomic distances for the formats that carry
	no topology.

    Writes XYZ and PDB files.

    Calculates distances, angles and dihedrals, bounding boxes, centers of
	mass, moments of inertia, molecular formulas and weights.

    Translates, centers and scales molecules, always producing new values.

The whole package is synchronous and free of shared mutable state: every
function is a pure transformation of its inputs, so concurrent invocations
on different inputs need no locking. Parsers are lenient with malformed
individual records, which are dropped, and fail only on broken structure;
geometry functions do not fail at all, returning fallback values on
degenerate input.
*/
package mol
