/*
 * cube.go, part of gocube.
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

package cube

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	v3 "github.com/rmera/gocube/v3"
)

//Tolerance for the cosine between two step vectors for them to be
//considered orthogonal.
const orthoEpsilon = 1e-8

//Cubefile is the content of a cube file. It is created by one of the readers
//in this package and can't be modified afterwards. All lengths are in Angstrom.
type Cubefile struct {
	filename string
	comments [2]string
	origin   [3]float64
	unit     Unit
	orbitals bool
	ids      []int
	axes     [3]AxisSpec
	mol      *Molecule
	grid     *Grid
}

//Read reads a cube file from r. It returns either a complete Cubefile
//or an error, never both.
func Read(r io.Reader, opts ...*Options) (*Cubefile, error) {
	o := pickOptions(opts)
	C, err := read(r, o)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return C, nil
}

//ReadString reads a cube file from its content.
func ReadString(s string, opts ...*Options) (*Cubefile, error) {
	C, err := Read(strings.NewReader(s), opts...)
	return C, errDecorate(err, "ReadString")
}

//ReadBytes reads a cube file from its content.
func ReadBytes(b []byte, opts ...*Options) (*Cubefile, error) {
	C, err := Read(bytes.NewReader(b), opts...)
	return C, errDecorate(err, "ReadBytes")
}

//read runs the whole pipeline: header, atoms, the optional orbital
//line, and the voxels.
func read(r io.Reader, o *Options) (*Cubefile, error) {
	log := o.logger
	T := newTokens(r)

	h, err := readHeader(T, log)
	if err != nil {
		return nil, errDecorate(err, "readHeader")
	}
	log.Debug("cube header parsed",
		zap.Int("atoms", h.atoms.count),
		zap.Bool("orbitals", h.atoms.hasOrbitals),
		zap.Int("nx", h.axes[0].count), zap.Int("ny", h.axes[1].count), zap.Int("nz", h.axes[2].count),
		zap.Int("nvals", h.nvals),
		zap.Stringer("unit", h.unit))

	atoms, err := readAtoms(T, h.atoms.count, h.unit.factor())
	if err != nil {
		return nil, errDecorate(err, "readAtoms")
	}
	log.Debug("cube atoms parsed", zap.Int("atoms", len(atoms)))

	var ids []int
	if h.atoms.hasOrbitals {
		expect := h.nvals
		if o.inferValues && !h.nvalsGiven {
			expect = 0
		}
		ids, err = readOrbitals(T, expect)
		if err != nil {
			return nil, errDecorate(err, "readOrbitals")
		}
		h.nvals = len(ids)
		log.Debug("cube orbital line parsed", zap.Ints("ids", ids))
	}

	dims := [4]int{h.axes[0].count, h.axes[1].count, h.axes[2].count, h.nvals}
	total, err := gridSize(dims, o.maxValues)
	if err != nil {
		return nil, errDecorate(err, "gridSize")
	}
	data, err := readVoxels(T, total)
	if err != nil {
		return nil, errDecorate(err, "readVoxels")
	}
	log.Debug("cube voxels parsed", zap.Int("values", len(data)))

	C := &Cubefile{
		comments: h.comments,
		origin:   h.origin,
		unit:     h.unit,
		orbitals: h.atoms.hasOrbitals,
		ids:      ids,
		axes:     h.axes,
		mol:      newMolecule(atoms),
		grid:     newGrid(data, dims[0], dims[1], dims[2], dims[3]),
	}
	return C, nil
}

//FileName returns the name of the file the data was read from, or the
//empty string if it was read from memory.
func (C *Cubefile) FileName() string { return C.filename }

//Comments returns the two comment lines of the file, verbatim.
func (C *Cubefile) Comments() [2]string { return C.comments }

//Header returns both comment lines, separated by a newline.
func (C *Cubefile) Header() string { return C.comments[0] + "\n" + C.comments[1] }

//Origin returns the position of the voxel 0,0,0.
func (C *Cubefile) Origin() [3]float64 { return C.origin }

//Unit returns the unit in which the lengths were written in the file.
//The values returned by Cubefile are always in Angstrom regardless.
func (C *Cubefile) Unit() Unit { return C.unit }

//HasOrbitals returns true if the file had an orbital-index line
//(i.e. a negative atom number).
func (C *Cubefile) HasOrbitals() bool { return C.orbitals }

//ValueIDs returns a copy of the identifiers of the values stored per voxel,
//usually molecular orbital numbers, or nil if the file had no orbital-index line.
func (C *Cubefile) ValueIDs() []int {
	if C.ids == nil {
		return nil
	}
	ret := make([]int, len(C.ids))
	copy(ret, C.ids)
	return ret
}

//Axes returns the three axes of the grid, x, y and z.
func (C *Cubefile) Axes() [3]AxisSpec { return C.axes }

//Axis returns the ith axis of the grid. It panics if i is not 0, 1 or 2.
func (C *Cubefile) Axis(i int) AxisSpec { return C.axes[i] }

//Steps returns a new 3x3 matrix with the step vectors of the three axes as rows.
func (C *Cubefile) Steps() *v3.Matrix {
	flat := make([]float64, 0, 9)
	for _, a := range C.axes {
		flat = append(flat, a.step[:]...)
	}
	return v3.NewMatrix(flat)
}

//Shape returns the number of voxels along x, y and z, and the number of values per voxel.
func (C *Cubefile) Shape() (nx, ny, nz, nvals int) { return C.grid.Dims() }

//VoxelTotal returns the total number of values in the grid.
func (C *Cubefile) VoxelTotal() int { return C.grid.Len() }

//Molecule returns the atoms of the file.
func (C *Cubefile) Molecule() *Molecule { return C.mol }

//Grid returns the volumetric data of the file.
func (C *Cubefile) Grid() *Grid { return C.grid }

//Len returns the number of atoms.
func (C *Cubefile) Len() int { return C.mol.Len() }

//Atom returns the ith atom.
func (C *Cubefile) Atom(i int) Atom { return C.mol.Atom(i) }

//At returns the first value of voxel i,j,k.
func (C *Cubefile) At(i, j, k int) float64 { return C.grid.At(i, j, k) }

//AtValue returns the value v of voxel i,j,k.
func (C *Cubefile) AtValue(i, j, k, v int) float64 { return C.grid.AtValue(i, j, k, v) }

//Position returns the cartesian position of voxel i,j,k:
//origin + i*step_x + j*step_y + k*step_z. The indexes are not checked.
func (C *Cubefile) Position(i, j, k int) [3]float64 {
	p := C.origin
	n := [3]float64{float64(i), float64(j), float64(k)}
	for a, axis := range C.axes {
		for d := 0; d < 3; d++ {
			p[d] += n[a] * axis.step[d]
		}
	}
	return p
}

//Scale returns the length of the step vector of each axis.
func (C *Cubefile) Scale() [3]float64 {
	return [3]float64{C.axes[0].Length(), C.axes[1].Length(), C.axes[2].Length()}
}

//Orthogonal returns true if the three step vectors are mutually orthogonal.
func (C *Cubefile) Orthogonal() bool {
	return C.Steps().Orthogonal(orthoEpsilon)
}

//VoxelVolume returns the volume of one voxel, in cubic Angstrom.
func (C *Cubefile) VoxelVolume() float64 {
	return math.Abs(C.Steps().Det())
}

//Integral returns the sum of the value v over all voxels, times the voxel volume.
//For a density in e/A^3 it is the number of electrons in the box.
func (C *Cubefile) Integral(v int) float64 {
	return C.grid.Sum(v) * C.VoxelVolume()
}

func (C *Cubefile) String() string {
	nx, ny, nz, nvals := C.grid.Dims()
	s := fmt.Sprintf("Cubefile with %dx%dx%d voxels", nx, ny, nz)
	if nvals > 1 {
		s += fmt.Sprintf(" (%d values each)", nvals)
	}
	s += fmt.Sprintf(" and %d atoms", C.mol.Len())
	if C.filename != "" {
		s += ", loaded from " + C.filename
	}
	return s + "."
}
