/*
 * pymol.go, part of gonci.
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

//Package pymol writes PyMOL scripts that show the interactions of a run as
//distance objects, grouped by pair type and label.
package pymol

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/engine"
)

//colors are applied in order, so later patterns win.
var colors = [][2]string{
	{"marine", "*_HB_*"},
	{"marine", "*_SH_N*"},
	{"marine", "*_SH_O*"},
	{"cyan", "*_Elec_*"},
	{"pink", "*_CH_O*"},
	{"pink", "*_CH_N*"},
	{"warmpink", "*_PI_PI*"},
	{"brown", "*_vdW*"},
	{"violet", "*_Dipo*"},
	{"yelloworange", "*_OMulPol*"},
	{"orange", "*_CH_PI*"},
	{"brightorange", "*_OH_PI*"},
	{"tv_orange", "*_NH_PI*"},
	{"tv_orange", "*_SH_PI*"},
	{"lightorange", "*_S_PI*"},
	{"palegreen", "*H_F*"},
	{"Splitpea", "*H_Hal_*"},
	{"Splitpea", "*_S_O*"},
	{"chocolate", "*H_S*"},
	{"sand", "*_NH_S*"},
	{"sand", "*_CH_S*"},
	{"sand", "*_S_F*"},
	{"sand", "*_S_S*"},
	{"deeppurple", "*_Hal_PI_*"},
	{"violetpurple", "*_Hal_Cl_*"},
	{"violetpurple", "*_Hal_Br_*"},
	{"violetpurple", "*_Hal_I_*"},
	{"purple", "*_Fe_X*"},
	{"purple", "*_Zn_X*"},
	{"purple", "*_Ca_X*"},
	{"purple", "*_Mg_X*"},
	{"purple", "*_Ni_X*"},
	{"lightteal", "*_Na_X*"},
	{"lightteal", "*_K_X*"},
	{"lightteal", "*_Cl_X*"},
}

//pairLabels returns the object prefixes for the halves of an instance with
//the given pair type: LP for L-Pro, LS1 for L-S1, LS1 and S1P for L-S1-Pro.
func pairLabels(pair string) []string {
	p := strings.Split(pair, "-")
	short := func(c string) string {
		if strings.HasPrefix(c, "S") {
			return c
		}
		return c[:1]
	}
	ret := []string{short(p[0]) + short(p[1])}
	if len(p) == 3 {
		ret = append(ret, p[1]+short(p[2]))
	}
	return ret
}

type object struct {
	name   string
	a1, a2 int //file IDs
}

//Write writes a PyMOL script for the instances of M. model is the name of the
//structure object in PyMOL. suffix is appended to the names of all the objects
//and groups, so scripts for several structures can be loaded in the same session.
func Write(w io.Writer, M *nci.Molecule, instances []engine.Instance, model, suffix string) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "hide everything, %s\n", model)
	sorted := make([]*engine.Instance, len(instances))
	for i := range instances {
		sorted[i] = &instances[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pair < sorted[j].Pair })
	objects := make(map[string]map[object]bool)
	groups := make(map[string]map[string]bool)
	shown := make(map[int]bool) //file IDs
	for _, I := range sorted {
		pl := pairLabels(I.Pair)
		type half struct {
			label  string
			a1, a2 int //indexes
			pair   string
		}
		halves := []half{{I.Label1, I.Atoms[0], I.Atoms[1], pl[0]}}
		if I.Bridged() && len(pl) > 1 {
			halves = append(halves, half{I.Label2, I.Atoms[3], I.Atoms[2], pl[1]})
		}
		for _, h := range halves {
			label := criteria.Normalize(h.label)
			if criteria.IsDipole(h.label) && M.Atom(h.a1).Charge*M.Atom(h.a2).Charge > 0 {
				continue
			}
			id1, id2 := M.Atom(h.a1).ID, M.Atom(h.a2).ID
			ids := fmt.Sprintf("%d_%d", id1, id2)
			if strings.HasPrefix(h.pair, "S") {
				ids = fmt.Sprintf("%d_%d", id2, id1)
			}
			if objects[h.pair] == nil {
				objects[h.pair] = make(map[object]bool)
				groups[h.pair] = make(map[string]bool)
			}
			objects[h.pair][object{fmt.Sprintf("%s_%s_%s", h.pair, label, ids), id1, id2}] = true
			groups[h.pair][h.pair+"_"+label] = true
			shown[id1] = true
			shown[id2] = true
		}
	}
	pairs := make([]string, 0, len(objects))
	for p := range objects {
		pairs = append(pairs, p)
	}
	sort.Strings(pairs)
	for _, p := range pairs {
		fmt.Fprintf(b, "group %s_%s\n", p, suffix)
		objs := make([]object, 0, len(objects[p]))
		for o := range objects[p] {
			objs = append(objs, o)
		}
		sort.Slice(objs, func(i, j int) bool {
			a, c := objs[i], objs[j]
			if a.name != c.name {
				return a.name < c.name
			}
			if a.a1 != c.a1 {
				return a.a1 < c.a1
			}
			return a.a2 < c.a2
		})
		for _, o := range objs {
			fmt.Fprintf(b, "distance %s_%s, id %d & %s, id %d & %s\n", o.name, suffix, o.a1, model, o.a2, model)
		}
		for _, g := range sortedKeys(groups[p]) {
			fmt.Fprintf(b, "group %s_%s, %s_*_%s, add\n", g, suffix, g, suffix)
			fmt.Fprintf(b, "group %s_%s, %s_%s, add\n", p, suffix, g, suffix)
		}
	}
	for _, c := range colors {
		fmt.Fprintf(b, "color %s, %s\n", c[0], c[1])
	}
	var lines, sticks []int
	for _, i := range M.Ligand() {
		sticks = append(sticks, M.Atom(i).ID)
	}
	lig := make(map[int]bool, len(sticks))
	for _, id := range sticks {
		lig[id] = true
	}
	for id := range shown {
		if !lig[id] {
			lines = append(lines, id)
		}
	}
	sort.Ints(lines)
	sort.Ints(sticks)
	fmt.Fprintf(b, "show lines, byres (id %s & %s)\n", joinInts(lines), model)
	fmt.Fprintf(b, "show sticks, id %s & %s\n", joinInts(sticks), model)
	fmt.Fprintf(b, "util.cbas id %s & %s\n", joinInts(sticks), model)
	fmt.Fprintf(b, "hide labels, *_%s\n", suffix)
	return b.Flush()
}

func sortedKeys(m map[string]bool) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, "+")
}
