/*
 * filter.go, part of gonci.
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
	"math"
	"sort"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
)

//Priority maps interaction labels to scores. When several interactions are found
//on the same atoms, only those with the highest score are kept. Keys may be
//specific labels ("Zn_O"), canonical types ("Zn_X"), or, for van der Waals
//contacts, element pairs as "C_O_vdW".
type Priority map[string]int

//DefaultPriority returns the built-in priorities: hydrogen bonds first, then
//electrostatic contacts, metal and halogen bonds, and van der Waals contacts last.
func DefaultPriority() Priority {
	levels := []struct {
		score int
		match func(string) bool
	}{
		{100, func(l string) bool { return strings.HasPrefix(l, "HB_") }},
		{95, func(l string) bool { return strings.HasSuffix(l, "_X") }},
		{90, func(l string) bool { return strings.HasPrefix(l, "Elec_") }},
		{85, func(l string) bool { return strings.HasPrefix(l, "Hal_PI") }},
		{80, func(l string) bool { return strings.HasPrefix(l, "Hal_") }},
		{75, func(l string) bool { return l == "PI_PI" }},
		{70, func(l string) bool { return strings.HasSuffix(l, "H_PI") }},
		{65, func(l string) bool { return strings.HasPrefix(l, "S_") || (strings.HasSuffix(l, "H_S") && l != "CH_S") }},
		{60, func(l string) bool { return strings.Contains(l, "H_Hal_") || strings.HasSuffix(l, "H_F") }},
		{55, func(l string) bool { return l == "SH_N" || l == "SH_O" }},
		{50, func(l string) bool { return strings.HasPrefix(l, "CH_") }},
		{40, func(l string) bool { return l == "OMulPol" }},
		{10, func(l string) bool { return l == "vdW" }},
	}
	ret := make(Priority)
	for _, label := range criteria.Labels() {
		for _, v := range levels {
			if v.match(label) {
				ret[label] = v.score
				break
			}
		}
	}
	return ret
}

//score returns the score of the interaction with label between the atoms a and b.
//vdW contacts first try the element pair, in either order.
func (P Priority) score(M *nci.Molecule, label string, a, b int) float64 {
	if label == "vdW" {
		s1, s2 := M.Atoms[a].Symbol, M.Atoms[b].Symbol
		for _, k := range []string{s1 + "_" + s2 + "_vdW", s2 + "_" + s1 + "_vdW"} {
			if v, ok := P[k]; ok {
				return float64(v)
			}
		}
	}
	if v, ok := P[label]; ok {
		return float64(v)
	}
	if v, ok := P[criteria.Normalize(label)]; ok && !criteria.IsDipole(label) {
		return float64(v)
	}
	return math.NaN()
}

//PriorityError is returned when several interactions on the same atoms can't be
//ranked, because none of their labels has a priority.
type PriorityError struct {
	atoms  []int //file IDs
	labels []string
	deco   []string
}

func (err *PriorityError) Error() string {
	return fmt.Sprintf("overlapping interactions %v between atoms %v have no defined priority", err.labels, err.atoms)
}

//Decorate adds new information to the error
func (err *PriorityError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true.
func (err *PriorityError) Critical() bool { return true }

//Atoms returns the file IDs of the atoms involved.
func (err *PriorityError) Atoms() []int { return err.atoms }

//Labels returns the labels that could not be ranked.
func (err *PriorityError) Labels() []string { return err.labels }

//Drop13And14 removes the interactions whose second atom is 2 or 3 bonds away from
//the first one. Dipole-dipole interactions are then only kept if the other
//interaction with the same tag survived.
func Drop13And14(M *nci.Molecule, instances []Instance) []Instance {
	kept := make([]Instance, 0, len(instances))
	tags := make(map[string]int)
	for _, v := range instances {
		if h := M.BondPath(v.Atoms[0], v.Atoms[1], 3); h == 2 || h == 3 {
			continue
		}
		kept = append(kept, v)
		if criteria.IsDipole(v.Label1) {
			tags[v.Label1]++
		}
	}
	ret := make([]Instance, 0, len(kept))
	for _, v := range kept {
		if criteria.IsDipole(v.Label1) && tags[v.Label1] < 2 {
			continue
		}
		ret = append(ret, v)
	}
	return ret
}

type group struct {
	atoms   [4]int
	members []int
}

//groupBy returns the groups of instance indexes with the same key, in order of
//first appearance.
func groupBy(instances []Instance, use []bool, key func(*Instance) [4]int) []*group {
	index := make(map[[4]int]*group)
	var ret []*group
	for i := range instances {
		if use != nil && !use[i] {
			continue
		}
		k := key(&instances[i])
		g, ok := index[k]
		if !ok {
			g = &group{atoms: k}
			index[k] = g
			ret = append(ret, g)
		}
		g.members = append(g.members, i)
	}
	return ret
}

//DropDuplicates keeps, among the interactions on the same pair of atoms, those with
//the highest priority. Dipole-dipole interactions are always kept. The same is then
//done for the water bridges through the same four atoms, ranked by their protein-side
//label. It returns a *PriorityError if interactions on the same atoms have
//different labels and none of them has a priority.
func DropDuplicates(M *nci.Molecule, instances []Instance, P Priority) ([]Instance, error) {
	keep := make([]bool, len(instances))
	pairs := groupBy(instances, nil, func(I *Instance) [4]int { return [4]int{I.Atoms[0], I.Atoms[1], -1, -1} })
	for _, g := range pairs {
		if len(g.members) == 1 {
			keep[g.members[0]] = true
			continue
		}
		max := math.NaN()
		scores := make([]float64, len(g.members))
		for j, i := range g.members {
			I := &instances[i]
			if criteria.IsDipole(I.Label1) {
				keep[i] = true
			}
			scores[j] = P.score(M, I.Label1, I.Atoms[0], I.Atoms[1])
			if !math.IsNaN(scores[j]) && (math.IsNaN(max) || scores[j] > max) {
				max = scores[j]
			}
		}
		if math.IsNaN(max) {
			if labels := distinctLabels(instances, g.members, false); len(labels) > 1 {
				return nil, priorityError(M, g.atoms[:2], labels)
			}
			for _, i := range g.members {
				keep[i] = true
			}
			continue
		}
		for j, i := range g.members {
			if scores[j] == max {
				keep[i] = true
			}
		}
	}
	bridges := make([]bool, len(instances))
	for i := range instances {
		bridges[i] = keep[i] && instances[i].Bridged()
	}
	quads := groupBy(instances, bridges, func(I *Instance) [4]int { return I.Atoms })
	for _, g := range quads {
		if len(g.members) == 1 {
			continue
		}
		max := math.NaN()
		scores := make([]float64, len(g.members))
		for j, i := range g.members {
			I := &instances[i]
			scores[j] = P.score(M, I.Label2, I.Atoms[2], I.Atoms[3])
			if !math.IsNaN(scores[j]) && (math.IsNaN(max) || scores[j] > max) {
				max = scores[j]
			}
		}
		if math.IsNaN(max) {
			if labels := distinctLabels(instances, g.members, true); len(labels) > 1 {
				return nil, priorityError(M, g.atoms[2:], labels)
			}
			continue
		}
		for j, i := range g.members {
			if scores[j] != max && !criteria.IsDipole(instances[i].Label2) {
				keep[i] = false
			}
		}
	}
	ret := make([]Instance, 0, len(instances))
	for i, v := range instances {
		if keep[i] {
			ret = append(ret, v)
		}
	}
	return ret, nil
}

func distinctLabels(instances []Instance, members []int, second bool) []string {
	seen := make(map[string]bool)
	var ret []string
	for _, i := range members {
		l := instances[i].Label1
		if second {
			l = instances[i].Label2
		}
		if criteria.IsDipole(l) || seen[l] {
			continue
		}
		seen[l] = true
		ret = append(ret, l)
	}
	sort.Strings(ret)
	return ret
}

func priorityError(M *nci.Molecule, atoms []int, labels []string) *PriorityError {
	ids := make([]int, 0, len(atoms))
	for _, a := range atoms {
		ids = append(ids, M.Atoms[a].ID)
	}
	return &PriorityError{atoms: ids, labels: labels, deco: []string{"DropDuplicates"}}
}
