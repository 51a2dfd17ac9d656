/*
 * descriptor.go, part of gonci.
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

//Package descriptor folds the interaction instances of a run into count,
//one-hot and sum descriptors. All the functions are pure; they depend only on
//the instances and the molecule they refer to.
package descriptor

import (
	"fmt"
	"sort"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/engine"
	"gonum.org/v1/gonum/floats"
)

//Solvents returns the names of the solvent classes of M, or "S" if there are none.
func Solvents(M *nci.Molecule) []string {
	s := M.Sel.SolventNames()
	if len(s) == 0 {
		return []string{"S"}
	}
	return s
}

//Entry is one keyed value of a descriptor.
type Entry struct {
	Key   string
	Value int
}

//countKey builds L#label1#Pro, L#label1#S1 or L#label1#S1#label2#Pro.
func countKey(I *engine.Instance) string {
	key := strings.Replace(I.Pair, "-", "#"+I.Type1()+"#", 1)
	if I.Bridged() {
		key = strings.Replace(key, "-", "#"+I.Type2()+"#", 1)
	}
	return key
}

//Count returns the number of instances of each ligand-protein, ligand-solvent and
//bridged canonical type, for all the labels in G and all the solvents of M, sorted
//by key. Dipole-dipole interactions register two instances each, so their counts
//are halved.
func Count(M *nci.Molecule, instances []engine.Instance, G *Groups) []Entry {
	labels := G.Labels()
	counts := make(map[string]int)
	for _, l := range labels {
		counts["L#"+l+"#"+string(nci.Protein)] = 0
	}
	for _, s := range Solvents(M) {
		for _, l1 := range labels {
			counts["L#"+l1+"#"+s] = 0
			for _, l2 := range labels {
				counts["L#"+l1+"#"+s+"#"+l2+"#"+string(nci.Protein)] = 0
			}
		}
	}
	for i := range instances {
		counts[countKey(&instances[i])]++
	}
	ret := make([]Entry, 0, len(counts))
	for k, v := range counts {
		if strings.Contains(k, criteria.DipolePrefix) {
			v /= 2
		}
		ret = append(ret, Entry{k, v})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Key < ret[j].Key })
	return ret
}

//half is one row of the one-hot and sum lists: a direct instance, or the
//water-protein half of a bridge.
type half struct {
	prefix string //LP, LS1, S1P...
	label  string //canonical
	dist   float64
	a, b   int
	water  bool
}

//sidePrefix returns the prefix of a pair of classes: LP, LS1 or S1P.
func sidePrefix(a, b string) string {
	if b == string(nci.Protein) {
		b = "P"
	}
	return a + b
}

//halves returns the direct instances, then each distinct water-protein half of the bridges.
func halves(instances []engine.Instance) (direct, water []half) {
	type key struct {
		label string
		a, b  int
	}
	seen := make(map[key]bool)
	for _, v := range instances {
		p := strings.Split(v.Pair, "-")
		if !v.Bridged() {
			direct = append(direct, half{prefix: sidePrefix(p[0], p[1]), label: v.Type1(), dist: v.Values1[0], a: v.Atoms[0], b: v.Atoms[1]})
			continue
		}
		k := key{v.Label2, v.Atoms[2], v.Atoms[3]}
		if seen[k] {
			continue
		}
		seen[k] = true
		water = append(water, half{prefix: sidePrefix(p[1], p[2]), label: v.Type2(), dist: v.Values2[0], a: v.Atoms[2], b: v.Atoms[3], water: true})
	}
	return direct, water
}

//Table is a CSV table.
type Table struct {
	Header []string
	Rows   [][]string
}

var oneHotInfo = []string{"dist", "interaction_label", "molcular_type", "chain", "residue", "residue_number", "atom_name", "atom_number", "atom_type",
	"partner_molcular_type", "partner_chain", "partner_residue", "partner_residue_number", "partner_atom_name", "partner_atom_number", "partner_atom_type"}

func molType(c nci.Class) string {
	switch {
	case c == nci.Ligand:
		return "ligand"
	case c.IsSolvent():
		return "solvent"
	}
	return "protein"
}

func atomInfo(M *nci.Molecule, i int) []string {
	at := M.Atom(i)
	return []string{at.Chain, at.ResName, fmt.Sprint(at.ResNumber), at.Name, fmt.Sprint(at.ID), at.Type}
}

//OneHot returns the one-hot list. There is one row for each direct instance and
//each distinct water-protein half of a bridge. Label columns are LP_<label>, and
//L<S>_<label> and <S>P_<label> for each solvent; the columns that are 0 in every
//row are left out.
func OneHot(M *nci.Molecule, instances []engine.Instance, G *Groups) *Table {
	labels := G.Labels()
	var columns []string
	for _, l := range labels {
		columns = append(columns, "LP_"+l)
	}
	solvents := M.Sel.SolventNames()
	if len(solvents) == 0 {
		for _, l := range labels {
			columns = append(columns, "LS_"+l)
		}
		for _, l := range labels {
			columns = append(columns, "SP_"+l)
		}
	}
	for _, s := range solvents {
		for _, l := range labels {
			columns = append(columns, "L"+s+"_"+l)
		}
		for _, l := range labels {
			columns = append(columns, s+"P_"+l)
		}
	}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	direct, water := halves(instances)
	rows := append(direct, water...)
	hot := make([][]float64, len(columns)) //by column
	for i := range hot {
		hot[i] = make([]float64, len(rows))
	}
	info := make([][]string, len(rows))
	for r, h := range rows {
		if c, ok := index[h.prefix+"_"+h.label]; ok {
			hot[c][r] = 1
		}
		info[r] = append([]string{fmt.Sprintf("%.4f", h.dist), h.label, molType(M.Class(h.a))}, atomInfo(M, h.a)...)
		info[r] = append(info[r], molType(M.Class(h.b)))
		info[r] = append(info[r], atomInfo(M, h.b)...)
	}
	T := new(Table)
	var used []int
	for c, col := range columns {
		if floats.Sum(hot[c]) != 0 {
			used = append(used, c)
			T.Header = append(T.Header, col)
		}
	}
	T.Header = append(T.Header, oneHotInfo...)
	for r := range rows {
		row := make([]string, 0, len(T.Header))
		for _, c := range used {
			row = append(row, fmt.Sprint(hot[c][r]))
		}
		T.Rows = append(T.Rows, append(row, info[r]...))
	}
	return T
}

//Sum returns the number of interactions of each group, keyed <prefix>_<group>,
//where the prefix is LP, L<S> or <S>P. The distinct water-protein halves of the
//bridges come first, then the direct instances, each key in the order it is first seen.
func Sum(instances []engine.Instance, G *Groups) []Entry {
	direct, water := halves(instances)
	var ret []Entry
	index := make(map[string]int)
	for _, h := range append(water, direct...) {
		k := h.prefix + "_" + G.Group(h.label)
		i, ok := index[k]
		if !ok {
			i = len(ret)
			index[k] = i
			ret = append(ret, Entry{Key: k})
		}
		ret[i].Value++
	}
	return ret
}

//Record is the fold of all the interactions of one type between a ligand
//residue and a partner residue. For bridges, the partner is the protein residue.
type Record struct {
	Ligand  string
	Partner string
	Type    string
	Count   int
	OneHot  int
	Sum     float64 //summed distances
}

func resLabel(R *nci.Residue) string {
	return fmt.Sprintf("%s%d:%s", R.Name, R.Number, R.Chain)
}

//Fold returns one record per (ligand residue, partner residue, type), sorted by
//those three fields. The result doesn't depend on the order of instances.
func Fold(M *nci.Molecule, instances []engine.Instance) []Record {
	type key struct {
		lig, partner, typ string
	}
	dists := make(map[key][]float64)
	for i := range instances {
		I := &instances[i]
		p := I.Atoms[1]
		if I.Bridged() {
			p = I.Atoms[3]
		}
		k := key{resLabel(M.Res(I.Atoms[0])), resLabel(M.Res(p)), I.Type}
		dists[k] = append(dists[k], I.Distance())
	}
	ret := make([]Record, 0, len(dists))
	for k, d := range dists {
		//the sum must not depend on the order of the instances.
		sort.Float64s(d)
		ret = append(ret, Record{Ligand: k.lig, Partner: k.partner, Type: k.typ, Count: len(d), OneHot: 1, Sum: floats.Sum(d)})
	}
	sort.Slice(ret, func(i, j int) bool {
		a, b := ret[i], ret[j]
		if a.Ligand != b.Ligand {
			return a.Ligand < b.Ligand
		}
		if a.Partner != b.Partner {
			return a.Partner < b.Partner
		}
		return a.Type < b.Type
	})
	return ret
}
