/*
 * stats.go, part of gocube.
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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//All the statistics below refer to one of the values stored per voxel,
//given by its index v. They panic if v is out of range. The ones
//that have no meaning for an empty grid return NaN in that case.

//field returns all the values with index v. For single-valued
//grids this is the grid's own data, not a copy.
func (G *Grid) field(v int) []float64 {
	if uint(v) >= uint(G.nvals) {
		panic(fmt.Sprintf("goCube: value index %d out of range for a grid with %d values per voxel", v, G.nvals))
	}
	if G.nvals == 1 {
		return G.data
	}
	ret := make([]float64, 0, len(G.data)/G.nvals)
	for i := v; i < len(G.data); i += G.nvals {
		ret = append(ret, G.data[i])
	}
	return ret
}

//Min returns the smallest value.
func (G *Grid) Min(v int) float64 {
	f := G.field(v)
	if len(f) == 0 {
		return math.NaN()
	}
	return floats.Min(f)
}

//Max returns the largest value.
func (G *Grid) Max(v int) float64 {
	f := G.field(v)
	if len(f) == 0 {
		return math.NaN()
	}
	return floats.Max(f)
}

//MaxAbs returns the largest absolute value, which is what is usually
//needed to pick isosurface levels.
func (G *Grid) MaxAbs(v int) float64 {
	f := G.field(v)
	if len(f) == 0 {
		return math.NaN()
	}
	return math.Max(math.Abs(floats.Min(f)), math.Abs(floats.Max(f)))
}

//Sum returns the sum of all values. It is 0 for an empty grid.
func (G *Grid) Sum(v int) float64 {
	return floats.Sum(G.field(v))
}

//Mean returns the average of the values.
func (G *Grid) Mean(v int) float64 {
	f := G.field(v)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.Mean(f, nil)
}

//StdDev returns the sample standard deviation of the values.
func (G *Grid) StdDev(v int) float64 {
	f := G.field(v)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.StdDev(f, nil)
}

//Histogram counts the values falling between consecutive dividers, which
//must be sorted in increasing order and at least 2. The last bin includes
//its upper limit. Values outside the dividers are not counted.
func (G *Grid) Histogram(v int, dividers []float64) []float64 {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("goCube: Histogram needs at least 2 dividers in increasing order")
	}
	f := G.field(v)
	x := make([]float64, 0, len(f))
	for _, val := range f {
		if val >= dividers[0] && val <= dividers[len(dividers)-1] {
			x = append(x, val)
		}
	}
	sort.Float64s(x)
	//stat.Histogram treats the last divider as exclusive.
	d := make([]float64, len(dividers))
	copy(d, dividers)
	d[len(d)-1] = math.Nextafter(d[len(d)-1], math.Inf(1))
	return stat.Histogram(nil, d, x, nil)
}
