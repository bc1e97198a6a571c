/*
 * doc.go, part of gocube.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package cube reads Gaussian cube files: a molecule plus a scalar field
(or several, stacked) sampled on a regular, possibly non-orthogonal, grid.

The readers (Read, ReadString, ReadBytes and FileRead) return either a complete,
immutable Cubefile or an *Error, never a partially filled object.
All lengths returned are in Angstrom.

******************** Format ***********************************************************

line 1-2  free text
line 3    natoms  ox oy oz  [nvals]
line 4    nx  sx.x sx.y sx.z
line 5    ny  sy.x sy.y sy.z
line 6    nz  sz.x sz.y sz.z
          |natoms| lines: Z  charge  x y z
          if natoms < 0: m  id_1 ... id_m   (m == nvals)
          nx*ny*nz*nvals values, x outermost, value index innermost,
          with any line wrapping.

A negative nx means that all lengths in the file (origin, steps and atom
positions) are in Angstrom. Otherwise they are in Bohr, and are multiplied by
BohrToAngstrom. Only the x-axis line decides this; the signs of ny and nz are
ignored, except for a warning in the log when they disagree.

Some programs write two numbers with no space between them when the second is
negative (1.2345E-05-6.7890E-01). Such fields are split.

Values after the last voxel are never read.

****************************************************************************************/
package cube
