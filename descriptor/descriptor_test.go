/*
 * descriptor_test.go, part of gonci.
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

package descriptor

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/engine"
	"github.com/rmera/gonci/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

//sample returns a ligand N-H, a water and a protein O=P, with a few
//interactions between them.
func sample(Te *testing.T) (*nci.Molecule, []engine.Instance) {
	B := fixture.New()
	N := B.Add("N1", "N.3", 0, 0, 0, -0.5)
	H := B.Add("H1", "H", 1.01, 0, 0, 0.3)
	B.Bond(N, H)
	B.Residue("HOH", 10)
	W := B.Water(r3.Vec{X: 2.9}, r3.Vec{X: -1})
	B.Residue("ALA", 2)
	O := B.Add("O", "O.2", 4, 2, 0, -0.5)
	P := B.Add("P", "P.3", 5, 3, 0, 0.5)
	B.Bond(O, P)
	M, err := B.Build()
	require.NoError(Te, err)
	d := func(label, pair string, a, b int, v float64) engine.Instance {
		return engine.Instance{Type: criteria.Normalize(label), Label1: label, Pair: pair, Atoms: [4]int{a, b, -1, -1}, Values1: []float64{v}, Family2: -1, Water: -1, Passed: true}
	}
	inst := []engine.Instance{
		d("HB_NH_O", "L-S1", N, W, 2.9),
		{Type: engine.BridgeType("HB_NH_O", "HB_OH_O"), Label1: "HB_NH_O", Label2: "HB_OH_O", Pair: "L-S1-Pro", Atoms: [4]int{N, W, W, O},
			Values1: []float64{2.9}, Values2: []float64{2.8}, Water: M.Atoms[W].Residue, Passed: true},
		d("vdW", engine.LigandProtein, N, O, 3.5),
		d("Dipo_1_6", engine.LigandProtein, N, O, 3.0),
		d("Dipo_1_6", engine.LigandProtein, H, P, 3.2),
	}
	return M, inst
}

func TestGroups(Te *testing.T) {
	G := DefaultGroups()
	assert.Equal(Te, 65, G.Len())
	assert.ElementsMatch(Te, criteria.Labels(), G.Labels())
	assert.Equal(Te, "HB", G.Group("HB_NH_O"))
	assert.Equal(Te, "Metal", G.Group("Zn_X"))
	assert.Equal(Te, "nope", G.Group("nope"))

	G, err := ParseGroups([]byte("b: x\na: y\n"))
	require.NoError(Te, err)
	assert.Equal(Te, []string{"b", "a"}, G.Labels())
	_, err = ParseGroups([]byte("- a\n- b\n"))
	assert.Error(Te, err)
	_, err = ParseGroups([]byte("a: x\na: y\n"))
	assert.Error(Te, err)
	_, err = ParseGroups([]byte(""))
	assert.Error(Te, err)
}

func TestCount(Te *testing.T) {
	M, inst := sample(Te)
	G := DefaultGroups()
	C := Count(M, inst, G)
	assert.Len(Te, C, 65+65+65*65)
	assert.True(Te, sort.SliceIsSorted(C, func(i, j int) bool { return C[i].Key < C[j].Key }))
	got := make(map[string]int)
	for _, e := range C {
		got[e.Key] = e.Value
	}
	assert.Equal(Te, 1, got["L#HB_NH_O#S1"])
	assert.Equal(Te, 1, got["L#HB_NH_O#S1#HB_OH_O#Pro"])
	assert.Equal(Te, 1, got["L#vdW#Pro"])
	assert.Equal(Te, 1, got["L#Dipo#Pro"], "dipoles count once per pair of bonds")
	assert.Equal(Te, 0, got["L#HB_NH_N#Pro"])

	var b1, b2 bytes.Buffer
	require.NoError(Te, WriteCount(&b1, C))
	require.NoError(Te, WriteCount(&b2, Count(M, inst, G)))
	assert.Equal(Te, b1.String(), b2.String())
	assert.Contains(Te, b1.String(), "L#vdW#Pro,1\n")
}

func TestOneHot(Te *testing.T) {
	M, inst := sample(Te)
	T := OneHot(M, inst, DefaultGroups())
	require.Len(Te, T.Rows, 5)
	assert.Equal(Te, []string{"LP_vdW", "LP_Dipo", "LS1_HB_NH_O", "S1P_HB_OH_O"}, T.Header[:4])
	assert.Equal(Te, oneHotInfo, T.Header[4:])
	assert.Equal(Te, []string{"0", "0", "1", "0", "2.9000", "HB_NH_O", "ligand", "A", "LIG", "1", "N1", "1", "N.3",
		"solvent", "A", "HOH", "10", "O", "3", "O.3"}, T.Rows[0])
	last := T.Rows[4]
	assert.Equal(Te, []string{"0", "0", "0", "1", "2.8000", "HB_OH_O", "solvent"}, last[:7])
	assert.Equal(Te, "protein", last[13])
	assert.Equal(Te, "Dipo", T.Rows[2][5])
	for _, r := range T.Rows {
		assert.Len(Te, r, len(T.Header))
	}
	var b bytes.Buffer
	require.NoError(Te, WriteTable(&b, T))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Len(Te, lines, 6)
	assert.True(Te, strings.HasPrefix(lines[0], "LP_vdW,LP_Dipo,LS1_HB_NH_O,S1P_HB_OH_O,dist,"))
}

func TestSum(Te *testing.T) {
	_, inst := sample(Te)
	S := Sum(inst, DefaultGroups())
	assert.Equal(Te, []Entry{{"S1P_HB", 1}, {"LS1_HB", 1}, {"LP_vdW", 1}, {"LP_Dipo", 2}}, S)
	var b bytes.Buffer
	require.NoError(Te, WriteSum(&b, S))
	assert.Equal(Te, "S1P_HB,LS1_HB,LP_vdW,LP_Dipo\n1,1,1,2\n", b.String())
	//the same water-protein half is counted once
	S = Sum(append(inst, inst[1]), DefaultGroups())
	assert.Equal(Te, 1, S[0].Value)
}

func TestFold(Te *testing.T) {
	M, inst := sample(Te)
	F := Fold(M, inst)
	require.Len(Te, F, 4)
	assert.Equal(Te, Record{"LIG1:A", "ALA2:A", "Dipo", 2, 1, 6.2}, roundSum(F[0]))
	assert.Equal(Te, Record{"LIG1:A", "ALA2:A", "HB_NH_O+HB_OH_O", 1, 1, 5.7}, roundSum(F[1]))
	assert.Equal(Te, Record{"LIG1:A", "ALA2:A", "vdW", 1, 1, 3.5}, roundSum(F[2]))
	assert.Equal(Te, Record{"LIG1:A", "HOH10:A", "HB_NH_O", 1, 1, 2.9}, roundSum(F[3]))
	rev := make([]engine.Instance, len(inst))
	for i, v := range inst {
		rev[len(inst)-1-i] = v
	}
	assert.Equal(Te, F, Fold(M, rev), "the fold doesn't depend on the order of the instances")
	assert.Equal(Te, F, Fold(M, inst))
	T := FoldTable(F)
	assert.Equal(Te, []string{"LIG1:A", "ALA2:A", "Dipo", "2", "1", "6.2000"}, T.Rows[0])
	assert.Empty(Te, Fold(M, nil))
}

func roundSum(r Record) Record {
	r.Sum = float64(int(r.Sum*1e6+0.5)) / 1e6
	return r
}

func TestNoSolvents(Te *testing.T) {
	B := fixture.New()
	C := B.Methane(r3.Vec{})
	B.Residue("ALA", 2)
	B.Methane(r3.Vec{X: 4})
	M, err := nci.NewMolecule("t", B.Atoms(), B.Bonds(), nci.Selection{Ligand: []string{"LIG"}})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"S"}, Solvents(M))
	got := make(map[string]bool)
	for _, e := range Count(M, nil, DefaultGroups()) {
		got[e.Key] = true
	}
	assert.True(Te, got["L#vdW#S"])
	assert.True(Te, got["L#vdW#S#HB_OH_O#Pro"])
	inst := []engine.Instance{{Type: "vdW", Label1: "vdW", Pair: engine.LigandProtein, Atoms: [4]int{C, 5, -1, -1}, Values1: []float64{4}, Water: -1}}
	T := OneHot(M, inst, DefaultGroups())
	assert.Equal(Te, "LP_vdW", T.Header[0])
	assert.Equal(Te, "dist", T.Header[1])
}
