/*
 * bonds.go, part of gonci.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package nci

//Neighbours returns the indexes of the atoms bonded to atom i, sorted.
func (M *Molecule) Neighbours(i int) []int {
	ret := make([]int, len(M.nbrs[i]))
	for j, v := range M.nbrs[i] {
		ret[j] = v.Atom
	}
	return ret
}

//BondsOf returns the atoms bonded to i, with the bond orders.
func (M *Molecule) BondsOf(i int) []Neighbour {
	return M.nbrs[i]
}

//NBonds returns the number of bonds of atom i.
func (M *Molecule) NBonds(i int) int {
	return len(M.nbrs[i])
}

//Hydrogens returns the hydrogen atoms bonded to atom i.
func (M *Molecule) Hydrogens(i int) []int {
	ret := make([]int, 0, 3)
	for _, v := range M.nbrs[i] {
		if M.Atoms[v.Atom].Symbol == "H" {
			ret = append(ret, v.Atom)
		}
	}
	return ret
}

//Heavy returns the non-hydrogen atoms bonded to atom i.
func (M *Molecule) Heavy(i int) []int {
	ret := make([]int, 0, 3)
	for _, v := range M.nbrs[i] {
		if M.Atoms[v.Atom].Symbol != "H" {
			ret = append(ret, v.Atom)
		}
	}
	return ret
}

//IsH returns true if atom i is a hydrogen.
func (M *Molecule) IsH(i int) bool {
	return M.Atoms[i].Symbol == "H"
}

//Bonded returns true if atoms a and b are bonded.
func (M *Molecule) Bonded(a, b int) bool {
	return M.bonded(a, b)
}

func (M *Molecule) bonded(a, b int) bool {
	for _, v := range M.nbrs[a] {
		if v.Atom == b {
			return true
		}
	}
	return false
}

//WithinBonds returns the atoms (including i) at most hops bonds away from atom i.
func (M *Molecule) WithinBonds(i, hops int) []int {
	return M.topology.Within(i, hops)
}

//BondPath returns the number of bonds between a and b, if they are at most
//max bonds apart, or -1.
func (M *Molecule) BondPath(a, b, max int) int {
	return M.topology.Hops(a, b, max)
}
