/*
 * gonum.go, part of gocube.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//All the *Vec functions operate on row vectors, i.e. the cartesian
//coordinates of one point in 3D space.

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a row-major gonum Dense.
//Within the package a "vector" is a row vector.
type Matrix struct {
	*mat.Dense
}

//NewMatrix returns a Matrix with 3 columns over data, which is not copied.
//It panics if the length of data is not a multiple of 3.
func NewMatrix(data []float64) *Matrix {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		panic(ErrNotXx3Matrix)
	}
	if rows == 0 {
		return &Matrix{new(mat.Dense)}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return NewMatrix(make([]float64, 3*vecs))
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec copies the ith vector of F into a fixed array.
func (F *Matrix) Vec(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	for j, val := range v {
		F.Set(i, j, val)
	}
}

//Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	if F.IsEmpty() {
		return Zeros(0)
	}
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() [3]float64 {
	var c [3]float64
	n := F.NVecs()
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c[j] += F.At(i, j)
		}
	}
	for j := range c {
		c[j] /= float64(n)
	}
	return c
}

//VecNorm returns the euclidean norm of the ith vector of F.
func (F *Matrix) VecNorm(i int) float64 {
	return floats.Norm(F.RawRowView(i), 2)
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

//Orthogonal returns true if all pairs of vectors in F have a dot product whose
//absolute value is not larger than epsilon times the product of their norms.
func (F *Matrix) Orthogonal(epsilon float64) bool {
	n := F.NVecs()
	for i := 0; i < n; i++ {
		vi := F.VecView(i)
		for j := i + 1; j < n; j++ {
			vj := F.VecView(j)
			dot := floats.Dot(vi.RawRowView(0), vj.RawRowView(0))
			if math.Abs(dot) > epsilon*F.VecNorm(i)*F.VecNorm(j) {
				return false
			}
		}
	}
	return true
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	n := F.NVecs()
	if n == 0 {
		return "[ ]"
	}
	v := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v = append(v, fmt.Sprintf("%9.4f %9.4f %9.4f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return "[" + strings.Join(v, "\n ") + " ]"
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//Nothing in this package returns errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goCube/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("goCube/v3: Determinants are only available for 3x3 matrices")
)
