/*
 * eval_test.go, part of gonci.
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

package criteria

import (
	"errors"
	"fmt"
	"math"
	"testing"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/internal/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func evaluate(Te *testing.T, M *nci.Molecule, C *Config, id FamilyID, a, b int) []Hit {
	Te.Helper()
	E := &Env{M: M, Radii: nci.DefaultRadii()}
	hits, err := Get(id).Evaluate(E, C.Params(id), a, b)
	if err != nil {
		Te.Fatalf("%s: %v", Get(id).Key, err)
	}
	return hits
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

//hbondPair builds an N-H donor in the ligand and a carbonyl-like O acceptor in
//the protein, with the acceptor at distance d on the X axis and a D-H...A angle theta.
func hbondPair(d, theta float64) (*nci.Molecule, int, int) {
	B := fixture.New()
	N := B.Add("N1", "N.3", 0, 0, 0, -0.5)
	//triangle N, H, O with the angle theta at H
	t := nci.Deg2Rad(theta)
	aO := math.Asin(1.01 * math.Sin(t) / d)
	aN := math.Pi - t - aO
	H := B.Add("H1", "H", 1.01*math.Cos(aN), 1.01*math.Sin(aN), 0, 0.3)
	C := B.Add("C1", "C.cat", -1.0, -1.0, 0, 0.2)
	B.Bond(N, H)
	B.Bond(N, C)
	B.Residue("ALA", 2)
	O := B.Add("O", "O.2", d, 0, 0, -0.5)
	P := B.Add("P", "P.3", d+1.5, 0, 0, 0.5)
	B.Bond(O, P)
	return B.MustBuild(), N, O
}

func TestHBondScenario(Te *testing.T) {
	M, N, O := hbondPair(2.9, 165)
	C := DefaultConfig()
	hits := evaluate(Te, M, C, HBNH, N, O)
	if len(hits) != 1 {
		Te.Fatalf("expected exactly one hit, got %d", len(hits))
	}
	h := hits[0]
	fmt.Println(h.Label, h.Values)
	if h.Label != "HB_NH_O" || h.Type() != "HB_NH_O" {
		Te.Errorf("wrong label %s", h.Label)
	}
	if !near(h.Values[0], 2.9) || !near(h.Values[1], 165) {
		Te.Errorf("expected distance 2.9 and angle 165, got %v", h.Values)
	}
	//reversed roles, hydroxyl acceptors and the electrostatic window give nothing.
	for _, id := range []FamilyID{HBNHOH, HBOH, ElecXH, ElecXHOH} {
		if hits := evaluate(Te, M, C, id, N, O); len(hits) != 0 {
			Te.Errorf("%s should not match: %v", Get(id).Key, hits)
		}
	}
	if hits := evaluate(Te, M, C, HBNH, O, N); len(hits) != 0 {
		Te.Errorf("the reversed pair should not match: %v", hits)
	}
	//the donor angle is out of range
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"angle_min": 170}); err != nil {
		Te.Fatal(err)
	}
	if hits := evaluate(Te, M, C, HBNH, N, O); len(hits) != 0 {
		Te.Errorf("a 165 degree angle should fail a 170 degree minimum: %v", hits)
	}
}

func TestHBondBoundary(Te *testing.T) {
	M, N, O := hbondPair(3.0, 160)
	C := DefaultConfig()
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"dist": 3.0}); err != nil {
		Te.Fatal(err)
	}
	if hits := evaluate(Te, M, C, HBNH, N, O); len(hits) != 1 {
		Te.Errorf("an inclusive bound should pass at the bound, got %d hits", len(hits))
	}
	if err := C.SetStrict("HB_NH_(N,O)", []string{"dist"}); err != nil {
		Te.Fatal(err)
	}
	if hits := evaluate(Te, M, C, HBNH, N, O); len(hits) != 0 {
		Te.Errorf("a strict bound should fail at the bound, got %d hits", len(hits))
	}
	M, N, O = hbondPair(3.0+1e-7, 160)
	C = DefaultConfig()
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"dist": 3.0}); err != nil {
		Te.Fatal(err)
	}
	if hits := evaluate(Te, M, C, HBNH, N, O); len(hits) != 0 {
		Te.Errorf("bound+epsilon should fail, got %d hits", len(hits))
	}
}

func TestVdW(Te *testing.T) {
	B := fixture.New()
	c1 := B.Methane(r3.Vec{})
	B.Residue("ALA", 2)
	c2 := B.Methane(r3.Vec{X: 3.8})
	M := B.MustBuild()
	hits := evaluate(Te, M, DefaultConfig(), VdW, c1, c2)
	if len(hits) != 1 || hits[0].Label != "vdW" {
		Te.Fatalf("expected one vdW hit, got %v", hits)
	}
	v := hits[0].Values
	fmt.Println("vdW", v)
	if !near(v[0], 3.8) || v[1] >= v[0] || !near(v[2], 3.8-3.4) {
		Te.Errorf("unexpected values %v", v)
	}
	//hydrogens are never vdW partners
	if hits := evaluate(Te, M, DefaultConfig(), VdW, c1+4, c2); len(hits) != 0 {
		Te.Errorf("a hydrogen should not give a vdW hit: %v", hits)
	}
	//missing radii can't be evaluated
	E := &Env{M: M, Radii: nci.Radii{"H": 1.1}}
	_, err := Get(VdW).Evaluate(E, DefaultConfig().Params(VdW), c1, c2)
	var eerr *EvalError
	if !errors.As(err, &eerr) {
		Te.Errorf("expected an EvalError, got %v", err)
	}
}

//upMethane adds a methane whose first hydrogen points along +Z.
func upMethane(B *fixture.Builder, c r3.Vec) int {
	C := B.AddVec("C", "C.3", c, -0.2)
	dirs := []r3.Vec{
		{X: 0, Y: 0, Z: 1},
		{X: 0.9428, Y: 0, Z: -0.3333},
		{X: -0.4714, Y: 0.8165, Z: -0.3333},
		{X: -0.4714, Y: -0.8165, Z: -0.3333},
	}
	for _, d := range dirs {
		h := B.AddVec("H", "H", r3.Add(c, r3.Scale(1.09, d)), 0.05)
		B.Bond(C, h)
	}
	return C
}

func TestPi(Te *testing.T) {
	B := fixture.New()
	ring1 := B.Benzene(r3.Vec{})
	B.Residue("PHE", 2)
	ring2 := B.Benzene(r3.Vec{Z: 3.7})
	B.Residue("ALA", 3)
	c := upMethane(B, r3.Vec{Z: -3.5})
	M := B.MustBuild()
	C := DefaultConfig()

	hits := evaluate(Te, M, C, PiPi, ring1[0], ring2[0])
	if len(hits) != 1 {
		Te.Fatalf("expected a stacking hit, got %v", hits)
	}
	fmt.Println("PI_PI", hits[0].Values)
	if !near(hits[0].Values[0], 3.7) || !near(hits[0].Values[2], 90) {
		Te.Errorf("unexpected stacking values %v", hits[0].Values)
	}
	//a methane below the first ring, pointing one hydrogen to the ring centroid
	hits = evaluate(Te, M, C, CHPi, c, ring1[0])
	if len(hits) != 1 || hits[0].Label != "CH_PI" {
		Te.Fatalf("expected a CH_PI hit, got %v", hits)
	}
	fmt.Println("CH_PI", hits[0].Values)
	if !near(hits[0].Values[5], 0) || !near(hits[0].Values[6], 0) {
		Te.Errorf("the donor should project on the centroid, got %v", hits[0].Values)
	}
	//NH_PI does not take carbon donors
	if hits := evaluate(Te, M, C, NHPi, c, ring1[0]); len(hits) != 0 {
		Te.Errorf("NH_PI should not match a carbon donor: %v", hits)
	}
}

func TestHalogenAndMetals(Te *testing.T) {
	B := fixture.New()
	c := B.Add("C1", "C.cat", 0, 0, 0, 0.1)
	cl := B.Add("CL1", "Cl", 1.75, 0, 0, -0.1)
	B.Bond(c, cl)
	zn := B.Add("ZN", "Zn", -5, 5, 0, 2)
	na := B.Add("NA", "Na", 5, 5, 0, 1)
	B.Residue("ALA", 2)
	o := B.Add("O", "O.2", 4.75, 0, 0, -0.5)
	p := B.Add("P", "P.3", 6.25, 0, 0, 0.5)
	B.Bond(o, p)
	o2 := B.Add("O2", "O.2", -5, 3, 0, -0.5)
	p2 := B.Add("P2", "P.3", -5, 1.5, 0, 0.5)
	B.Bond(o2, p2)
	B.Residue("GLY", 3)
	B.Methane(r3.Vec{Y: -20})
	M := B.MustBuild()
	C := DefaultConfig()

	hits := evaluate(Te, M, C, HalO, cl, o)
	if len(hits) != 1 || hits[0].Label != "Hal_Cl_O" {
		Te.Fatalf("expected a Hal_Cl_O hit, got %v", hits)
	}
	if !near(hits[0].Values[0], 3.0) || !near(hits[0].Values[3], 0) {
		Te.Errorf("unexpected halogen bond values %v", hits[0].Values)
	}
	if hits := evaluate(Te, M, C, HalN, cl, o); len(hits) != 0 {
		Te.Errorf("Hal_(X)_N should not take an oxygen: %v", hits)
	}
	hits = evaluate(Te, M, C, Metal, zn, o2)
	if len(hits) != 1 || hits[0].Label != "Zn_O" || hits[0].Type() != "Zn_X" {
		Te.Fatalf("expected a Zn_O hit, got %v", hits)
	}
	//the closest oxygen is 5 A away from the sodium
	if hits := evaluate(Te, M, C, Ion, na, o); len(hits) != 0 {
		Te.Errorf("the ion is too far: %v", hits)
	}
	if err := C.Set("(Ion)_(X)", []float64{2}); err != nil {
		Te.Fatal(err)
	}
	hits = evaluate(Te, M, C, Ion, na, o)
	if len(hits) != 1 || hits[0].Type() != "Na_X" {
		Te.Errorf("expected a Na_X hit with a larger buffer, got %v", hits)
	}
}
