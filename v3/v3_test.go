/*
 * v3_test.go, part of gocube.
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
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

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrix(Te *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	A := NewMatrix(data)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))
	data[3] = 40
	assert.Equal(Te, 40.0, A.At(1, 0), "NewMatrix must not copy its data")

	assert.PanicsWithValue(Te, ErrNotXx3Matrix, func() { NewMatrix([]float64{1, 2, 3, 4}) })
	assert.Equal(Te, 0, NewMatrix(nil).NVecs())
	assert.Equal(Te, 0, Zeros(0).NVecs())
	assert.Equal(Te, [3]float64{0, 0, 0}, Zeros(2).Vec(1))
}

func TestViewsAndCopies(Te *testing.T) {
	A := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "a view should alias its parent")

	C := A.Copy()
	C.SetVec(0, [3]float64{-1, -1, -1})
	assert.Equal(Te, 1.0, A.At(0, 0), "a copy should not alias its parent")
	assert.Equal(Te, 0, Zeros(0).Copy().NVecs())
}

func TestCentroid(Te *testing.T) {
	A := NewMatrix([]float64{1, 2, 3, 3, 4, 5})
	assert.Equal(Te, [3]float64{2, 3, 4}, A.Centroid())
	assert.Equal(Te, [3]float64{0, 0, 0}, Zeros(0).Centroid())
}

func TestDetOrthogonal(Te *testing.T) {
	S := NewMatrix([]float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	assert.InDelta(Te, 24.0, S.Det(), 1e-12)
	assert.True(Te, S.Orthogonal(1e-9))
	assert.InDelta(Te, 3.0, S.VecNorm(1), 1e-12)

	T := NewMatrix([]float64{1, 0, 0, 1, 1, 0, 0, 0, 1})
	assert.False(Te, T.Orthogonal(1e-9))
	assert.InDelta(Te, 1.0, T.Det(), 1e-12)

	assert.PanicsWithValue(Te, ErrDeterminant, func() { Zeros(2).Det() })
}
