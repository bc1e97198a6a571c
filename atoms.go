/*
 * atoms.go, part of gocube.
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
)

//Fields per atom record: atomic number, charge, x, y, z.
const atomFields = 5

//Gaussian writes the orbital-index line as 10I5: the count and the
//identifiers, 10 fields per line.
const orbitalFieldsPerLine = 10

//nextIn returns the next token, turning the end of the input into a
//truncation error for the given section.
func nextIn(T *tokens, section, what string) (token, error) {
	t, err := T.next()
	if err == io.EOF {
		return t, newError(TruncationError, section, T.lineNo, "file ended while reading %s", what)
	}
	return t, err
}

//readAtoms reads exactly n atom records, 5 fields each, regardless of how
//they are distributed in lines. Coordinates are multiplied by factor.
func readAtoms(T *tokens, n int, factor float64) ([]Atom, error) {
	atoms := make([]Atom, n)
	var raw [atomFields]token
	var err error
	for i := 0; i < n; i++ {
		for j := range raw {
			raw[j], err = nextIn(T, secAtoms, "atom records")
			if err != nil {
				if IsKind(err, TruncationError) {
					return nil, newError(TruncationError, secAtoms, T.lineNo, "%d atoms declared, only %d complete records found", n, i)
				}
				return nil, err
			}
		}
		a := &atoms[i]
		if a.z, err = parseInt(raw[0], secAtoms); err != nil {
			return nil, err
		}
		if a.z < 0 {
			return nil, newError(NumericError, secAtoms, raw[0].line, "negative atomic number %d", a.z)
		}
		if a.charge, err = parseFloat(raw[1], secAtoms); err != nil {
			return nil, err
		}
		for j := 0; j < 3; j++ {
			var c float64
			if c, err = parseFloat(raw[j+2], secAtoms); err != nil {
				return nil, err
			}
			a.pos[j] = c * factor
		}
	}
	return atoms, nil
}

//readOrbitals reads the value-index line that follows the atoms when the
//atom number is negative: a count m followed by m integer identifiers.
//The identifiers continue on the following line only if the current one
//is full (10 fields), and the line holding the last one must not have
//anything else. If nvals is 0, m is accepted as is; otherwise m must
//equal nvals.
func readOrbitals(T *tokens, nvals int) ([]int, error) {
	t, err := nextIn(T, secOrbitals, "the orbital-index line")
	if err != nil {
		return nil, err
	}
	m, err := parseInt(t, secOrbitals)
	if err != nil {
		return nil, err
	}
	if m < 1 {
		return nil, newError(ConsistencyError, secOrbitals, t.line, "the orbital-index line declares %d values", m)
	}
	if nvals > 0 && m != nvals {
		return nil, newError(ConsistencyError, secOrbitals, t.line, "the orbital-index line declares %d values, the header %d", m, nvals)
	}
	ids := make([]int, m)
	fields := 1 //on the current line, including the count
	for i := range ids {
		if T.pendingOnLine() == 0 {
			if fields != orbitalFieldsPerLine {
				return nil, newError(ConsistencyError, secOrbitals, t.line, "%d values declared but %d listed", m, i)
			}
			fields = 0
		}
		t, err = nextIn(T, secOrbitals, "the orbital-index line")
		if err != nil {
			return nil, err
		}
		fields++
		if ids[i], err = parseInt(t, secOrbitals); err != nil {
			return nil, err
		}
	}
	if extra := T.pendingOnLine(); extra > 0 {
		return nil, newError(ConsistencyError, secOrbitals, t.line, "%d values declared but %d listed", m, m+extra)
	}
	return ids, nil
}
