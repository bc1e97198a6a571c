/*
 * header.go, part of gocube.
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

package cube

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

//BohrToAngstrom is the length of the Bohr radius in Angstrom (CODATA 2018).
const BohrToAngstrom = 0.529177210903

//Unit is the length unit in which the spatial quantities of a cube file were written.
//goCube always returns lengths in Angstrom.
type Unit int

const (
	Bohr Unit = iota
	Angstrom
)

func (u Unit) String() string {
	if u == Angstrom {
		return "Angstrom"
	}
	return "Bohr"
}

//factor is the number the quantities written in u must be multiplied
//by to get Angstrom.
func (u Unit) factor() float64 {
	if u == Angstrom {
		return 1.0
	}
	return BohrToAngstrom
}

//AxisSpec describes one axis of the grid: how many voxels it has, and the
//displacement, in Angstrom, between two consecutive voxels along it.
type AxisSpec struct {
	count int
	step  [3]float64
}

//Count returns the number of voxels along the axis.
func (A AxisSpec) Count() int { return A.count }

//Step returns the step vector of the axis, in Angstrom.
func (A AxisSpec) Step() [3]float64 { return A.step }

//Length returns the norm of the step vector, in Angstrom.
func (A AxisSpec) Length() float64 { return floats.Norm(A.step[:], 2) }

func (A AxisSpec) String() string {
	return fmt.Sprintf("%d x (%.6f %.6f %.6f)", A.count, A.step[0], A.step[1], A.step[2])
}

//atomCount is the sign-free reading of the atom number field. A negative
//number in the file means that an orbital-index line follows the atoms.
type atomCount struct {
	count       int
	hasOrbitals bool
}

func newAtomCount(raw int) atomCount {
	if raw < 0 {
		return atomCount{-raw, true}
	}
	return atomCount{raw, false}
}

//axisCount is the sign-free reading of a voxel number field. A negative
//number means the file is in Angstrom, a positive one (or zero) means Bohr.
type axisCount struct {
	count int
	unit  Unit
}

func newAxisCount(raw int) axisCount {
	if raw < 0 {
		return axisCount{-raw, Angstrom}
	}
	return axisCount{raw, Bohr}
}

//header holds the first six lines of a cube file, already converted to Angstrom.
type header struct {
	comments   [2]string
	atoms      atomCount
	origin     [3]float64
	nvals      int
	nvalsGiven bool
	axes       [3]AxisSpec
	unit       Unit
}

//readHeader reads the comment lines, the atom/origin line and the three
//axis lines. The unit of the whole file is taken from the x-axis line.
func readHeader(T *tokens, log *zap.Logger) (*header, error) {
	h := new(header)
	for i := range h.comments {
		s, _, err := T.line()
		if err == io.EOF {
			return nil, newError(StructuralError, secComments, i+1, "missing comment line")
		} else if err != nil {
			return nil, err
		}
		h.comments[i] = s
	}

	s, n, err := T.line()
	if err == io.EOF {
		return nil, newError(StructuralError, secHeader, 3, "missing atom number and origin line")
	} else if err != nil {
		return nil, err
	}
	fields := lineTokens(s, n)
	if len(fields) != 4 && len(fields) != 5 {
		return nil, newError(StructuralError, secHeader, n, "expected 4 or 5 fields, found %d", len(fields))
	}
	natoms, err := parseInt(fields[0], secHeader)
	if err != nil {
		return nil, err
	}
	h.atoms = newAtomCount(natoms)
	for i := 0; i < 3; i++ {
		if h.origin[i], err = parseFloat(fields[i+1], secHeader); err != nil {
			return nil, err
		}
	}
	h.nvals = 1
	if len(fields) == 5 {
		if h.nvals, err = parseInt(fields[4], secHeader); err != nil {
			return nil, err
		}
		if h.nvals < 1 {
			return nil, newError(NumericError, secHeader, n, "the number of values per voxel must be at least 1, got %d", h.nvals)
		}
		h.nvalsGiven = true
	}

	var counts [3]axisCount
	for i := range h.axes {
		s, n, err := T.line()
		if err == io.EOF {
			return nil, newError(StructuralError, secAxes, 4+i, "missing axis line %d", i+1)
		} else if err != nil {
			return nil, err
		}
		fields := lineTokens(s, n)
		if len(fields) != 4 {
			return nil, newError(StructuralError, secAxes, n, "expected 4 fields, found %d", len(fields))
		}
		raw, err := parseInt(fields[0], secAxes)
		if err != nil {
			return nil, err
		}
		counts[i] = newAxisCount(raw)
		h.axes[i].count = counts[i].count
		for j := 0; j < 3; j++ {
			if h.axes[i].step[j], err = parseFloat(fields[j+1], secAxes); err != nil {
				return nil, err
			}
		}
	}
	h.unit = counts[0].unit
	for i := 1; i < 3; i++ {
		if counts[i].unit != h.unit {
			log.Warn("axis lines disagree on the length unit, using the x axis",
				zap.Int("axis", i), zap.Stringer("x_unit", h.unit), zap.Stringer("axis_unit", counts[i].unit))
		}
	}
	f := h.unit.factor()
	floats.Scale(f, h.origin[:])
	for i := range h.axes {
		floats.Scale(f, h.axes[i].step[:])
	}
	return h, nil
}
