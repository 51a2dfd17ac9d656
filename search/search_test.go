/*
 * search_test.go, part of gonci.
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

package search

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/rmera/gonci/internal/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGenerator(Te *testing.T) {
	B := fixture.New()
	c := B.Methane(r3.Vec{})
	B.Residue("HOH", 2)
	w := B.Water(r3.Vec{X: 3}, r3.Vec{X: -1})
	B.Residue("ALA", 3)
	p := B.Methane(r3.Vec{X: 6})
	B.Residue("GLY", 4)
	far := B.Methane(r3.Vec{X: 30})
	M := B.MustBuild()
	G := New(M, 4.0)
	pairs := G.LigandPartners()
	fmt.Println(pairs)
	for _, v := range pairs {
		if M.Class(v.A) != "L" {
			Te.Errorf("the first atom must be a ligand atom: %v", v)
		}
		if v.B >= far {
			Te.Errorf("atom %d is too far", v.B)
		}
	}
	if !contains(pairs, Pair{c, w}) {
		Te.Errorf("the ligand carbon and the water oxygen should be a pair")
	}
	if contains(pairs, Pair{c, p}) {
		Te.Errorf("the carbons are 6 A apart")
	}
	wp := G.WaterProtein([]int{w, w + 1, w + 2, c})
	if !contains(wp, Pair{w, p}) {
		Te.Errorf("the water oxygen and the protein carbon should be a pair: %v", wp)
	}
	for _, v := range wp {
		if v.A == c {
			Te.Errorf("ligand atoms are not water: %v", v)
		}
	}
}

func TestBoundary(Te *testing.T) {
	B := fixture.New()
	c := B.Methane(r3.Vec{})
	B.Residue("ALA", 2)
	p := B.Methane(r3.Vec{X: 4})
	M := B.MustBuild()
	if !contains(New(M, 4).LigandPartners(), Pair{c, p}) {
		Te.Error("the cutoff must be inclusive")
	}
	if contains(New(M, 3.999).LigandPartners(), Pair{c, p}) {
		Te.Error("pairs beyond the cutoff must be excluded")
	}
}

//The tree must give the same pairs as comparing every atom with every other.
func TestPruning(Te *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	B := fixture.New()
	for i := 0; i < 5; i++ {
		B.Methane(r3.Vec{X: rnd.Float64() * 8, Y: rnd.Float64() * 8, Z: rnd.Float64() * 8})
	}
	for i := 0; i < 40; i++ {
		B.Residue("ALA", 2+i)
		B.Methane(r3.Vec{X: rnd.Float64()*20 - 6, Y: rnd.Float64()*20 - 6, Z: rnd.Float64()*20 - 6})
	}
	M := B.MustBuild()
	for _, cutoff := range []float64{2, 4.4, 7} {
		tree := New(M, cutoff).LigandPartners()
		brute := All(M, M.Ligand(), M.Protein(), cutoff)
		if len(tree) == 0 && len(brute) == 0 {
			continue
		}
		if !reflect.DeepEqual(tree, brute) {
			Te.Errorf("cutoff %v: the tree gave %d pairs, the brute force %d", cutoff, len(tree), len(brute))
		}
	}
}

func TestChunks(Te *testing.T) {
	pairs := make([]Pair, 10)
	for i := range pairs {
		pairs[i] = Pair{i, i}
	}
	ch := Chunks(pairs, 3)
	if len(ch) != 3 || len(ch[0]) != 4 || len(ch[2]) != 2 {
		Te.Errorf("unexpected chunks %v", ch)
	}
	if len(Chunks(pairs, 20)) != 10 || Chunks(nil, 4) != nil {
		Te.Error("wrong number of chunks")
	}
}

func contains(pairs []Pair, p Pair) bool {
	for _, v := range pairs {
		if v == p {
			return true
		}
	}
	return false
}
