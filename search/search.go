/*
 * search.go, part of gonci.
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

//Package search generates the candidate atom pairs for the interaction criteria.
//Partner atoms are kept in a k-d tree, and each query atom collects the partners
//within a coarse cutoff.
package search

import (
	"math"
	"sort"

	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/kdtree"
)

//Pair is a candidate pair of atom indexes. A is the query atom (a ligand atom or
//a water atom), B its partner.
type Pair struct {
	A, B int
}

//point is an atom in the tree.
type point struct {
	x     [3]float64
	index int
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	return p.x[d] - q.x[d]
}

func (p point) Dims() int { return 3 }

//Distance returns the squared distance between p and c.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var sum float64
	for i, v := range p.x {
		d := v - q.x[i]
		sum += d * d
	}
	return sum
}

type points []point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p points) Pivot(d kdtree.Dim) int {
	return plane{points: p, dim: d}.pivot()
}

//plane sorts points along one dimension.
type plane struct {
	points
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.points[i].x[p.dim] < p.points[j].x[p.dim]
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func newPoint(M *nci.Molecule, i int) point {
	c := M.Coord(i)
	return point{x: [3]float64{c.X, c.Y, c.Z}, index: i}
}

func newTree(M *nci.Molecule, atoms []int) *kdtree.Tree {
	if len(atoms) == 0 {
		return nil
	}
	p := make(points, 0, len(atoms))
	for _, v := range atoms {
		p = append(p, newPoint(M, v))
	}
	return kdtree.New(p, false)
}

//Generator produces candidate pairs for one molecule.
type Generator struct {
	M        *nci.Molecule
	cutoff   float64
	partners *kdtree.Tree //protein and solvent atoms
	protein  *kdtree.Tree
}

//New returns a Generator for M that keeps pairs closer than or at cutoff.
func New(M *nci.Molecule, cutoff float64) *Generator {
	G := &Generator{M: M, cutoff: cutoff}
	partners := M.ByClass(func(c nci.Class) bool { return c == nci.Protein || c.IsSolvent() })
	G.partners = newTree(M, partners)
	G.protein = newTree(M, M.Protein())
	return G
}

//Cutoff returns the distance cutoff of the generator.
func (G *Generator) Cutoff() float64 {
	return G.cutoff
}

//LigandPartners returns the pairs between ligand atoms and protein or solvent atoms.
func (G *Generator) LigandPartners() []Pair {
	return G.query(G.partners, G.M.Ligand())
}

//WaterProtein returns the pairs between the given solvent atoms and protein atoms.
//Atoms in waters that are not solvent are ignored.
func (G *Generator) WaterProtein(waters []int) []Pair {
	w := make([]int, 0, len(waters))
	for _, v := range waters {
		if G.M.Class(v).IsSolvent() {
			w = append(w, v)
		}
	}
	return G.query(G.protein, w)
}

func (G *Generator) query(T *kdtree.Tree, atoms []int) []Pair {
	if T == nil || len(atoms) == 0 {
		return nil
	}
	ret := make([]Pair, 0, 8*len(atoms))
	//a little slack, the exact test is done on the distance.
	r2 := G.cutoff * G.cutoff * (1 + 1e-9)
	for _, a := range atoms {
		keep := kdtree.NewDistKeeper(r2)
		T.NearestSet(keep, newPoint(G.M, a))
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue //the sentinel
			}
			b := c.Comparable.(point).index
			if G.excluded(a, b) || nci.Distance(G.M.Coord(a), G.M.Coord(b)) > G.cutoff {
				continue
			}
			ret = append(ret, Pair{a, b})
		}
	}
	Sort(ret)
	return ret
}

func (G *Generator) excluded(a, b int) bool {
	return a == b || G.M.SameResidue(a, b) || G.M.Bonded(a, b)
}

//Sort sorts pairs by their first and then their second index.
func Sort(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}

//All returns every pair between the atoms in from and the atoms in to within
//cutoff, with the same exclusions as a Generator, without a tree.
func All(M *nci.Molecule, from, to []int, cutoff float64) []Pair {
	G := &Generator{M: M, cutoff: cutoff}
	ret := make([]Pair, 0)
	for _, a := range from {
		for _, b := range to {
			if G.excluded(a, b) || nci.Distance(M.Coord(a), M.Coord(b)) > cutoff {
				continue
			}
			ret = append(ret, Pair{a, b})
		}
	}
	Sort(ret)
	return ret
}

//Chunks splits pairs into at most n contiguous chunks of similar size.
func Chunks(pairs []Pair, n int) [][]Pair {
	if n < 1 {
		n = 1
	}
	if len(pairs) == 0 {
		return nil
	}
	size := int(math.Ceil(float64(len(pairs)) / float64(n)))
	ret := make([][]Pair, 0, n)
	for i := 0; i < len(pairs); i += size {
		end := i + size
		if end > len(pairs) {
			end = len(pairs)
		}
		ret = append(ret, pairs[i:end])
	}
	return ret
}
