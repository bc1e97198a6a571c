/*
 * grid.go, part of gocube.
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

	"gonum.org/v1/gonum/mat"
)

//Grid is the volumetric data of a cube file. It is stored in one flat,
//row-major slice, with the value index varying fastest, then z, then y, then x.
type Grid struct {
	data              []float64
	nx, ny, nz, nvals int
	sx, sy, sz        int //strides of the x, y and z indexes. The value stride is 1.
}

func newGrid(data []float64, nx, ny, nz, nvals int) *Grid {
	G := &Grid{data: data, nx: nx, ny: ny, nz: nz, nvals: nvals}
	G.sz = nvals
	G.sy = nz * nvals
	G.sx = ny * nz * nvals
	return G
}

//Dims returns the number of voxels along x, y and z, and the number of values per voxel.
func (G *Grid) Dims() (nx, ny, nz, nvals int) {
	return G.nx, G.ny, G.nz, G.nvals
}

//Len returns the total number of values in the grid, nx*ny*nz*nvals.
func (G *Grid) Len() int { return len(G.data) }

//Index returns the position in the flat data of the value v of voxel i,j,k.
//It panics if any index is out of range.
func (G *Grid) Index(i, j, k, v int) int {
	if uint(i) >= uint(G.nx) || uint(j) >= uint(G.ny) || uint(k) >= uint(G.nz) || uint(v) >= uint(G.nvals) {
		panic(fmt.Sprintf("goCube: grid index (%d,%d,%d,%d) out of range for a %dx%dx%dx%d grid", i, j, k, v, G.nx, G.ny, G.nz, G.nvals))
	}
	return i*G.sx + j*G.sy + k*G.sz + v
}

//At returns the first value of voxel i,j,k.
func (G *Grid) At(i, j, k int) float64 {
	return G.data[G.Index(i, j, k, 0)]
}

//AtValue returns the value v of voxel i,j,k.
func (G *Grid) AtValue(i, j, k, v int) float64 {
	return G.data[G.Index(i, j, k, v)]
}

//Values returns a copy of all the values of voxel i,j,k.
func (G *Grid) Values(i, j, k int) []float64 {
	s := G.Index(i, j, k, 0)
	ret := make([]float64, G.nvals)
	copy(ret, G.data[s:s+G.nvals])
	return ret
}

//RawData returns the flat data of the grid. The slice is shared with the Grid
//and must not be modified.
func (G *Grid) RawData() []float64 {
	return G.data
}

//Slab returns a ny x (nz*nvals) matrix with the values of the plane x=i.
//The matrix shares its data with the Grid and must not be modified.
//It panics if i is out of range or if the plane is empty.
func (G *Grid) Slab(i int) *mat.Dense {
	if uint(i) >= uint(G.nx) {
		panic(fmt.Sprintf("goCube: slab %d out of range for a grid with %d x planes", i, G.nx))
	}
	return mat.NewDense(G.ny, G.sy, G.data[i*G.sx:(i+1)*G.sx])
}

func (G *Grid) String() string {
	return fmt.Sprintf("%dx%dx%d grid, %d value(s) per voxel", G.nx, G.ny, G.nz, G.nvals)
}
