/*
 * bridge.go, part of gonci.
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

package engine

import (
	"fmt"
	"sort"

	"github.com/rmera/gonci/internal/logging"
	"github.com/rmera/gonci/search"
)

//bridges composes the water bridges from the ligand-water instances in direct.
//It evaluates the water-protein pairs of the water atoms in those instances, and
//joins every ligand-side half with every protein-side half on the same water.
func (E *Engine) bridges(G *search.Generator, direct []Instance, R *Result) []Instance {
	M := E.M
	var lhalves []Instance
	waters := make(map[int]bool) //residue indexes
	for _, v := range direct {
		if M.Class(v.Atoms[1]).IsSolvent() {
			lhalves = append(lhalves, v)
			waters[M.Atoms[v.Atoms[1]].Residue] = true
		}
	}
	if len(lhalves) == 0 {
		return nil
	}
	//only the water atoms that interact with the ligand are searched. The mediate
	//position is applied when the halves are joined.
	var watoms []int
	seen := make(map[int]bool)
	for _, v := range lhalves {
		if w := v.Atoms[1]; !seen[w] {
			seen[w] = true
			watoms = append(watoms, w)
		}
	}
	sort.Ints(watoms)
	pairs := G.WaterProtein(watoms)
	R.WaterPairs = len(pairs)
	E.log.Info("bridge phase started", logging.Int("waters", len(waters)), logging.Int("pairs", len(pairs)))
	phalves := uniqueHalves(E.merge(E.evaluate(pairs, false), R))
	byRes := make(map[int][]Instance)
	for _, v := range phalves {
		r := M.Atoms[v.Atoms[0]].Residue
		byRes[r] = append(byRes[r], v)
	}
	ret := make([]Instance, 0)
	bridged := make(map[int]bool)
	for _, l := range lhalves {
		w1 := l.Atoms[1]
		r := M.Atoms[w1].Residue
		for _, p := range byRes[r] {
			w2 := p.Atoms[0]
			if l.Atoms[0] == p.Atoms[1] || !E.mediates(w1, w2) {
				continue
			}
			ret = append(ret, Instance{
				Type:    BridgeType(l.Type, p.Type),
				Label1:  l.Label1,
				Label2:  p.Label1,
				Pair:    fmt.Sprintf("%s-%s", l.Pair, M.Class(p.Atoms[1])),
				Atoms:   [4]int{l.Atoms[0], w1, w2, p.Atoms[1]},
				Values1: l.Values1,
				Values2: p.Values1,
				Family1: l.Family1,
				Family2: p.Family1,
				Water:   r,
				Passed:  true,
			})
			bridged[r] = true
		}
	}
	warned := make(map[int]bool)
	for _, l := range lhalves {
		r := M.Atoms[l.Atoms[1]].Residue
		if bridged[r] || warned[r] {
			continue
		}
		warned[r] = true
		R.Warnings = append(R.Warnings, Warning{Kind: NoBridge, A: l.Atoms[1], B: -1, Water: r,
			Msg: fmt.Sprintf("water %s interacts with the ligand but bridges to no protein atom", M.Residues[r].Label())})
	}
	return ret
}

//mediates returns true if the protein-side water atom w2 can be joined with
//the ligand-side water atom w1.
func (E *Engine) mediates(w1, w2 int) bool {
	n := E.O.MediatePosition()
	switch {
	case n == 0:
		return true
	case n == 1:
		return w1 == w2
	}
	return E.M.BondPath(w1, w2, n-1) >= 0
}

type halfKey struct {
	w, p  int
	label string
}

//uniqueHalves drops the protein-side halves that repeat a water atom, protein atom and label.
func uniqueHalves(halves []Instance) []Instance {
	seen := make(map[halfKey]bool)
	ret := halves[:0:0]
	for _, v := range halves {
		k := halfKey{v.Atoms[0], v.Atoms[1], v.Label1}
		if seen[k] {
			continue
		}
		seen[k] = true
		ret = append(ret, v)
	}
	return ret
}

//Waters returns the residue indexes of the waters in the bridges of instances, sorted.
func Waters(instances []Instance) []int {
	seen := make(map[int]bool)
	ret := make([]int, 0)
	for _, v := range instances {
		if v.Bridged() && !seen[v.Water] {
			seen[v.Water] = true
			ret = append(ret, v.Water)
		}
	}
	sort.Ints(ret)
	return ret
}
