/*
 * molecule.go, part of gocube.
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
	"fmt"

	v3 "github.com/rmera/gocube/v3"
)

//Atom is one of the atom records of a cube file.
type Atom struct {
	z      int
	charge float64
	pos    [3]float64
}

//AtomicNumber returns the atomic number of the atom. 0 means a ghost center.
func (A Atom) AtomicNumber() int { return A.z }

//Charge returns the partial charge written for the atom.
func (A Atom) Charge() float64 { return A.charge }

//Position returns the cartesian coordinates of the atom, in Angstrom.
func (A Atom) Position() [3]float64 { return A.pos }

//Symbol returns the element symbol of the atom, "X" for ghost centers, or
//the empty string if the atomic number is beyond the periodic table.
func (A Atom) Symbol() string { return symbolFromNumber(A.z) }

func (A Atom) String() string {
	return fmt.Sprintf("%-2s %8.4f %10.5f %10.5f %10.5f", A.Symbol(), A.charge, A.pos[0], A.pos[1], A.pos[2])
}

//Molecule is the ordered list of atoms of a cube file. The order is the one
//in the file.
type Molecule struct {
	atoms  []Atom
	coords *v3.Matrix
}

func newMolecule(atoms []Atom) *Molecule {
	flat := make([]float64, 0, 3*len(atoms))
	for _, a := range atoms {
		flat = append(flat, a.pos[:]...)
	}
	return &Molecule{atoms: atoms, coords: v3.NewMatrix(flat)}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.atoms) }

//Atom returns the ith atom. It panics if i is out of range.
func (M *Molecule) Atom(i int) Atom { return M.atoms[i] }

//Atoms returns a copy of the atom list.
func (M *Molecule) Atoms() []Atom {
	ret := make([]Atom, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

//Coords returns a copy of the coordinates of all atoms, as a Nx3 matrix, in Angstrom.
func (M *Molecule) Coords() *v3.Matrix {
	return M.coords.Copy()
}

//Charge returns the sum of the partial charges of all atoms.
func (M *Molecule) Charge() float64 {
	var q float64
	for _, a := range M.atoms {
		q += a.charge
	}
	return q
}

//Centroid returns the geometric center of the molecule, in Angstrom.
func (M *Molecule) Centroid() [3]float64 {
	return M.coords.Centroid()
}
