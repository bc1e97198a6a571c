/*
 * voxels.go, part of gocube.
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
	"io"
	"math"
)

//Above this many values the buffer is grown as the data comes in,
//instead of trusting the header with the whole allocation.
const preallocLimit = 1 << 24

//gridSize returns nx*ny*nz*nvals, or an error if the product overflows
//or goes beyond max (when max > 0).
func gridSize(dims [4]int, max int) (int, error) {
	total := 1
	for _, d := range dims {
		if d == 0 {
			return 0, nil
		}
		if total > math.MaxInt/d {
			return 0, newError(ConsistencyError, secVoxels, 0, "grid of %dx%dx%dx%d values is too large", dims[0], dims[1], dims[2], dims[3])
		}
		total *= d
	}
	if max > 0 && total > max {
		return 0, newError(ConsistencyError, secVoxels, 0, "grid of %d values exceeds the limit of %d", total, max)
	}
	return total, nil
}

//readVoxels reads exactly total values, in the order they are in the file
//(x outermost, then y, then z, then the value index). Whatever comes after
//them is never read.
func readVoxels(T *tokens, total int) ([]float64, error) {
	data := make([]float64, 0, min(total, preallocLimit))
	for len(data) < total {
		t, err := T.next()
		if err == io.EOF {
			return nil, newError(TruncationError, secVoxels, T.lineNo, "%d values expected, only %d found", total, len(data))
		} else if err != nil {
			return nil, err
		}
		f, err := parseFloat(t, secVoxels)
		if err != nil {
			return nil, err
		}
		data = append(data, f)
	}
	return data, nil
}
