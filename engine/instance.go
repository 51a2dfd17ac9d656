/*
 * instance.go, part of gonci.
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
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
)

//Pair types.
const (
	LigandProtein = "L-Pro"
)

//Instance is one interaction. Direct interactions use the first two slots of
//Atoms, bridged ones all four: ligand atom, ligand-side water atom, protein-side
//water atom and protein atom. The two water slots hold the same atom when both
//halves use it. Instances are not modified after they are created.
type Instance struct {
	Type    string //canonical type, "A+B" for bridges
	Label1  string //specific label of the direct interaction or of the ligand-side half
	Label2  string //specific label of the protein-side half, bridges only
	Pair    string //L-Pro, L-S1, L-S1-Pro...
	Atoms   [4]int //arena indexes, -1 for unused slots
	Values1 []float64
	Values2 []float64
	Family1 criteria.FamilyID
	Family2 criteria.FamilyID
	Water   int //residue index of the bridging water, -1 for direct interactions
	Passed  bool
}

//Bridged returns true if the instance is a water bridge.
func (I *Instance) Bridged() bool {
	return I.Water >= 0
}

//NAtoms returns the number of atom slots used, 2 or 4.
func (I *Instance) NAtoms() int {
	if I.Bridged() {
		return 4
	}
	return 2
}

//Distance returns the first measured distance, summed over both halves for bridges.
func (I *Instance) Distance() float64 {
	d := I.Values1[0]
	if I.Bridged() {
		d += I.Values2[0]
	}
	return d
}

//Type1 and Type2 return the canonical types of the halves.
func (I *Instance) Type1() string { return criteria.Normalize(I.Label1) }
func (I *Instance) Type2() string { return criteria.Normalize(I.Label2) }

func (I *Instance) String() string {
	if I.Bridged() {
		return fmt.Sprintf("%s %s %s+%s %v", I.Pair, I.Type, I.Label1, I.Label2, I.Atoms)
	}
	return fmt.Sprintf("%s %s %d-%d", I.Pair, I.Label1, I.Atoms[0], I.Atoms[1])
}

//BridgeType returns the type of a bridge made of halves of types a and b. It
//doesn't depend on the order of the halves.
func BridgeType(a, b string) string {
	t := []string{a, b}
	sort.Strings(t)
	return strings.Join(t, "+")
}

//WarningKind tells what a Warning is about.
type WarningKind int

const (
	NoMatch    WarningKind = iota //a pair with role overlap satisfied no criterion
	NoBridge                      //a water with a ligand-side half got no protein-side half
)

//Warning is a non-fatal observation made during classification. Warnings are
//values, and never stop a run.
type Warning struct {
	Kind  WarningKind
	A, B  int //atom indexes, B is -1 for NoBridge
	Water int //residue index, NoBridge only
	Msg   string
}

func (W Warning) String() string {
	return "classification warning: " + W.Msg
}

//Skipped is one criterion that could not be evaluated on one oriented pair.
type Skipped struct {
	A, B   int
	Family criteria.FamilyID
	Reason string
}

//Result is the output of a run.
type Result struct {
	Instances  []Instance
	Warnings   []Warning
	Skipped    []Skipped
	Pairs      int //direct candidate pairs
	WaterPairs int //water-protein candidate pairs
}

//Count returns the number of instances for each canonical type.
func (R *Result) Count() map[string]int {
	ret := make(map[string]int)
	for _, v := range R.Instances {
		ret[v.Type]++
	}
	return ret
}

//pairType returns the pair label for atoms a and b, already oriented.
func pairType(M *nci.Molecule, a, b int) string {
	return fmt.Sprintf("%s-%s", M.Class(a), M.Class(b))
}
