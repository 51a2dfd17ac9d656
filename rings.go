/*
 * rings.go, part of gonci.
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

import (
	"strings"

	"github.com/rmera/gonci/chemgraph"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Ring is a 5- or 6-membered cycle of pi-capable atoms in one residue.
//Centroid and Normal are computed when the ring is found.
type Ring struct {
	Atoms      []int //ordered along the ring
	Residue    int
	Centroid   r3.Vec
	Normal     r3.Vec //unit normal of the best plane through the ring atoms
	Aromatic   bool   //all members have ".ar" types
	Degenerate bool   //the atoms do not define a plane
}

//Contains returns true if atom i is a member of the ring.
func (R *Ring) Contains(i int) bool {
	return isInInt(R.Atoms, i)
}

//Radius returns the largest distance between the centroid and a ring atom.
func (R *Ring) Radius(M *Molecule) float64 {
	var r float64
	for _, a := range R.Atoms {
		if d := Distance(M.Coord(a), R.Centroid); d > r {
			r = d
		}
	}
	return r
}

//findRings returns the rings of each residue of M.
func findRings(M *Molecule) []Ring {
	var ret []Ring
	for ri, res := range M.Residues {
		members := make(map[int]bool, len(res.Atoms))
		for _, a := range res.Atoms {
			if PiTypes.Has(M.Atoms[a].Type) {
				members[a] = true
			}
		}
		if len(members) < 5 {
			continue
		}
		T := chemgraph.New(M, func(i int) bool { return members[i] })
		for _, c := range T.Cycles() {
			if len(c) < 5 || len(c) > 6 {
				continue
			}
			ret = append(ret, newRing(M, c, ri))
		}
	}
	return ret
}

func newRing(M *Molecule, atoms []int, residue int) Ring {
	R := Ring{Atoms: atoms, Residue: residue, Aromatic: true}
	coords := make([]r3.Vec, len(atoms))
	for i, a := range atoms {
		coords[i] = M.Coord(a)
		if !strings.HasSuffix(M.Atoms[a].Type, ".ar") {
			R.Aromatic = false
		}
	}
	R.Centroid = Centroid(coords...)
	n, ok := bestPlaneNormal(coords, R.Centroid)
	R.Normal = n
	R.Degenerate = !ok
	return R
}

//bestPlaneNormal returns the normal of the least-squares plane of the points,
//the right singular vector with the smallest singular value of the centered coordinates.
//It returns false if the points are (nearly) collinear.
func bestPlaneNormal(points []r3.Vec, center r3.Vec) (r3.Vec, bool) {
	data := make([]float64, 0, 3*len(points))
	for _, p := range points {
		c := r3.Sub(p, center)
		data = append(data, c.X, c.Y, c.Z)
	}
	A := mat.NewDense(len(points), 3, data)
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return r3.Vec{}, false
	}
	vals := svd.Values(nil)
	if len(vals) < 3 || vals[1] <= appzero {
		return r3.Vec{}, false
	}
	var V mat.Dense
	svd.VTo(&V)
	n := r3.Vec{X: V.At(0, 2), Y: V.At(1, 2), Z: V.At(2, 2)}
	if r3.Norm(n) <= appzero {
		return r3.Vec{}, false
	}
	return r3.Unit(n), true
}
