/*
 * graph.go, part of gonci.
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

//Package chemgraph exposes the bond graph of a molecule as a gonum graph,
//for ring perception and bond-path distances.
package chemgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

//Bonded is the minimal view of a molecule needed to build its graph.
//Atoms are identified by their index, from 0 to Len()-1.
type Bonded interface {
	Len() int
	Neighbours(i int) []int
}

//Topology is the undirected bond graph of a set of atoms.
//Node IDs are the atom indexes.
type Topology struct {
	g *simple.UndirectedGraph
}

//New builds the graph of the atoms in mol for which keep returns true.
//Bonds to atoms that are not kept are ignored. A nil keep keeps all atoms.
func New(mol Bonded, keep func(int) bool) *Topology {
	g := simple.NewUndirectedGraph()
	for i := 0; i < mol.Len(); i++ {
		if keep != nil && !keep(i) {
			continue
		}
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < mol.Len(); i++ {
		if g.Node(int64(i)) == nil {
			continue
		}
		for _, j := range mol.Neighbours(i) {
			if j <= i || g.Node(int64(j)) == nil {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	return &Topology{g: g}
}

//Len returns the number of atoms in the graph.
func (T *Topology) Len() int {
	return T.g.Nodes().Len()
}

//Graph returns the underlying gonum graph.
func (T *Topology) Graph() graph.Undirected {
	return T.g
}

//Cycles returns a cycle basis of the graph. Each cycle is given as the
//ordered atom indexes along the ring, without repeating the first one.
//Cycles are sorted by their smallest index, so the result is deterministic.
func (T *Topology) Cycles() [][]int {
	raw := topo.UndirectedCyclesIn(T.g)
	ret := make([][]int, 0, len(raw))
	for _, c := range raw {
		ring := make([]int, 0, len(c))
		seen := make(map[int64]bool, len(c))
		for _, n := range c {
			if seen[n.ID()] {
				continue
			}
			seen[n.ID()] = true
			ring = append(ring, int(n.ID()))
		}
		if len(ring) < 3 {
			continue
		}
		ret = append(ret, rotateToMin(ring))
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i][0] != ret[j][0] {
			return ret[i][0] < ret[j][0]
		}
		return len(ret[i]) < len(ret[j])
	})
	return ret
}

//rotateToMin rotates the ring so it starts at its smallest index, keeping the order.
func rotateToMin(ring []int) []int {
	min := 0
	for i, v := range ring {
		if v < ring[min] {
			min = i
		}
	}
	ret := make([]int, 0, len(ring))
	ret = append(ret, ring[min:]...)
	return append(ret, ring[:min]...)
}

//Within returns the atoms that are at most hops bonds away from the atom from,
//including from itself, sorted by index.
func (T *Topology) Within(from, hops int) []int {
	start := T.g.Node(int64(from))
	if start == nil {
		return nil
	}
	ret := make([]int, 0, 8)
	var bf traverse.BreadthFirst
	bf.Walk(T.g, start, func(n graph.Node, d int) bool {
		if d > hops {
			return true
		}
		ret = append(ret, int(n.ID()))
		return false
	})
	sort.Ints(ret)
	return ret
}

//Hops returns the number of bonds on the shortest path between a and b,
//if there is one with at most max bonds. Otherwise, it returns -1.
func (T *Topology) Hops(a, b, max int) int {
	start := T.g.Node(int64(a))
	if start == nil || T.g.Node(int64(b)) == nil {
		return -1
	}
	if a == b {
		return 0
	}
	found := -1
	var bf traverse.BreadthFirst
	bf.Walk(T.g, start, func(n graph.Node, d int) bool {
		if d > max {
			return true
		}
		if n.ID() == int64(b) {
			found = d
			return true
		}
		return false
	})
	return found
}
