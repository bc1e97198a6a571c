/*
 * molecule_test.go, part of gocube.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMolecule(Te *testing.T) {
	M := newMolecule([]Atom{
		{z: 8, charge: -0.8, pos: [3]float64{0, 0, 0}},
		{z: 1, charge: 0.4, pos: [3]float64{1, 0, 0}},
		{z: 1, charge: 0.4, pos: [3]float64{0, 1, 0}},
		{z: 0, charge: 0, pos: [3]float64{2, 2, 0}},
	})
	assert.Equal(Te, 4, M.Len())
	assert.InDelta(Te, 0.0, M.Charge(), 1e-12)
	assert.Equal(Te, [3]float64{0.75, 0.75, 0}, M.Centroid())
	assert.Equal(Te, "X", M.Atom(3).Symbol())

	c := M.Coords()
	c.SetVec(0, [3]float64{5, 5, 5})
	assert.Equal(Te, [3]float64{0, 0, 0}, M.Coords().Vec(0), "Coords must return a copy")
	ats := M.Atoms()
	ats[0] = Atom{}
	assert.Equal(Te, 8, M.Atom(0).AtomicNumber(), "Atoms must return a copy")

	water := newMolecule(M.Atoms()[:3])
	assert.Equal(Te, 3, water.Coords().NVecs())
	assert.Equal(Te, [3]float64{0, 1, 0}, water.Coords().Vec(2))
	assert.Equal(Te, [3]float64{0, 0, 0}, newMolecule(nil).Centroid())
	fmt.Println(water.Atom(0))
}

func TestSymbols(Te *testing.T) {
	assert.Equal(Te, "H", symbolFromNumber(1))
	assert.Equal(Te, "Fe", symbolFromNumber(26))
	assert.Equal(Te, "Au", symbolFromNumber(79))
	assert.Equal(Te, "U", symbolFromNumber(92))
	assert.Equal(Te, "Og", symbolFromNumber(118))
	assert.Equal(Te, "", symbolFromNumber(119))
	assert.Equal(Te, "", symbolFromNumber(-1))
}
