/*
 * pymol_test.go, part of gonci.
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

package pymol

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/engine"
	"github.com/rmera/gonci/internal/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func sample() (*nci.Molecule, []engine.Instance) {
	B := fixture.New()
	N := B.Add("N1", "N.3", 0, 0, 0, -0.5)
	H := B.Add("H1", "H", 1.01, 0, 0, 0.3)
	B.Bond(N, H)
	B.Residue("HOH", 10)
	W := B.Water(r3.Vec{X: 2.9}, r3.Vec{X: -1})
	B.Residue("ALA", 2)
	O := B.Add("O", "O.2", 4, 2, 0, -0.5)
	P := B.Add("P", "P.3", 5, 3, 0, 0.5)
	B.BondOrder(O, P, "2")
	M := B.MustBuild()
	inst := []engine.Instance{
		{Type: "vdW", Label1: "vdW", Pair: engine.LigandProtein, Atoms: [4]int{N, O, -1, -1}, Values1: []float64{3.5}, Water: -1},
		{Type: "HB_NH_O+HB_OH_O", Label1: "HB_NH_O", Label2: "HB_OH_O", Pair: "L-S1-Pro", Atoms: [4]int{N, W, W, O},
			Values1: []float64{2.9}, Values2: []float64{2.8}, Water: 1},
		{Type: "Dipo", Label1: "Dipo_1_6", Pair: engine.LigandProtein, Atoms: [4]int{H, P, -1, -1}, Values1: []float64{3}, Water: -1},
		{Type: "Dipo", Label1: "Dipo_1_7", Pair: engine.LigandProtein, Atoms: [4]int{N, P, -1, -1}, Values1: []float64{3}, Water: -1},
	}
	return M, inst
}

func TestPairLabels(Te *testing.T) {
	for in, out := range map[string]string{"L-Pro": "LP", "L-S1": "LS1", "L-S1-Pro": "LS1 S1P", "S2-Pro": "S2P"} {
		if got := strings.Join(pairLabels(in), " "); got != out {
			Te.Errorf("%s gave %s, expected %s", in, got, out)
		}
	}
}

func TestWrite(Te *testing.T) {
	M, inst := sample()
	var b bytes.Buffer
	if err := Write(&b, M, inst, "cplx", "x"); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	fmt.Print(out)
	head := `hide everything, cplx
group LP_x
distance LP_Dipo_1_7_x, id 1 & cplx, id 7 & cplx
distance LP_vdW_1_6_x, id 1 & cplx, id 6 & cplx
group LP_Dipo_x, LP_Dipo_*_x, add
group LP_x, LP_Dipo_x, add
group LP_vdW_x, LP_vdW_*_x, add
group LP_x, LP_vdW_x, add
group LS1_x
distance LS1_HB_NH_O_1_3_x, id 1 & cplx, id 3 & cplx
group LS1_HB_NH_O_x, LS1_HB_NH_O_*_x, add
group LS1_x, LS1_HB_NH_O_x, add
group S1P_x
distance S1P_HB_OH_O_3_6_x, id 6 & cplx, id 3 & cplx
group S1P_HB_OH_O_x, S1P_HB_OH_O_*_x, add
group S1P_x, S1P_HB_OH_O_x, add
color marine, *_HB_*
`
	if !strings.HasPrefix(out, head) {
		Te.Errorf("wrong script head, expected:\n%s", head)
	}
	tail := `color lightteal, *_Cl_X*
show lines, byres (id 3+6+7 & cplx)
show sticks, id 1+2 & cplx
util.cbas id 1+2 & cplx
hide labels, *_x
`
	if !strings.HasSuffix(out, tail) {
		Te.Errorf("wrong script tail, expected:\n%s", tail)
	}
	if n := strings.Count(out, "\ncolor "); n != len(colors) || n != 35 {
		Te.Errorf("expected 35 color lines, got %d", n)
	}
	if strings.Contains(out, "_2_7") {
		Te.Error("a repulsive dipole pair should not be shown")
	}
}

func TestMetalLabel(Te *testing.T) {
	B := fixture.New()
	zn := B.Add("ZN", "Zn", 0, 0, 0, 2)
	B.Residue("HIS", 5)
	n := B.Add("NE2", "N.ar", 2.1, 0, 0, -0.4)
	B.Bond(n, B.Add("HE2", "H", 3.1, 0, 0, 0.3))
	M := B.MustBuild()
	inst := []engine.Instance{{Type: "Zn_X", Label1: "Zn_N", Pair: engine.LigandProtein, Atoms: [4]int{zn, n, -1, -1}, Values1: []float64{2.1}, Water: -1}}
	var b bytes.Buffer
	if err := Write(&b, M, inst, "m", "1"); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(b.String(), "distance LP_Zn_X_1_2_1, id 1 & m, id 2 & m\n") {
		Te.Errorf("no metal distance object in:\n%s", b.String())
	}
}
