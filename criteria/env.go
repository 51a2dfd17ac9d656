/*
 * env.go, part of gonci.
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
	"fmt"
	"strings"

	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/r3"
)

//Env is the read-only data shared by all evaluations of a run.
type Env struct {
	M     *nci.Molecule
	Radii nci.Radii
}

//Hit is one passed criterion. A and B are atom indexes, in the order in which
//the criterion was evaluated. Values are the measured quantities, in the order
//defined by each criterion; NaN for terms that were not measured.
type Hit struct {
	Family *Family
	Label  string
	A, B   int
	Values []float64
}

//Type returns the canonical interaction type of the hit.
func (H Hit) Type() string {
	return Normalize(H.Label)
}

//ctx holds the state of a single evaluation.
type ctx struct {
	*Env
	P   *Params
	F   *Family
	G   nci.Geom
	err error
}

func (c *ctx) pos(i int) r3.Vec {
	return c.M.Atoms[i].Coord
}

func (c *ctx) typ(i int) string {
	return c.M.Atoms[i].Type
}

func (c *ctx) sym(i int) string {
	return c.M.Atoms[i].Symbol
}

func (c *ctx) q(i int) float64 {
	return c.M.Atoms[i].Charge
}

func (c *ctx) isH(i int) bool {
	return c.M.IsH(i)
}

func (c *ctx) dist(a, b int) float64 {
	return nci.Distance(c.pos(a), c.pos(b))
}

//angle returns the angle a-b-cc, with vertex at b.
func (c *ctx) angle(a, b, cc int) float64 {
	return c.G.Angle(c.pos(a), c.pos(b), c.pos(cc))
}

//vdw returns the sum of the van der Waals radii of a and b. If one of them is
//missing, it records an error and returns NaN, so any comparison fails.
func (c *ctx) vdw(a, b int) float64 {
	s, ok := c.Radii.Sum(c.sym(a), c.sym(b))
	if !ok {
		if c.err == nil {
			c.err = &EvalError{message: fmt.Sprintf("%s: no van der Waals radius for %s or %s", c.F.Key, c.sym(a), c.sym(b))}
		}
		return nan
	}
	return s
}

//within checks the pair distance against the buffer threshold i plus the
//van der Waals radii of a and b, and returns the distance.
func (c *ctx) within(i, a, b int) (float64, bool) {
	d := c.dist(a, b)
	return d, c.P.Within(i, d, c.vdw(a, b))
}

func (c *ctx) hit(label string, a, b int, values ...float64) []Hit {
	return []Hit{{Family: c.F, Label: label, A: a, B: b, Values: values}}
}

//others returns the neighbours of i other than the excluded atoms.
func (c *ctx) others(i int, exclude ...int) []int {
	ret := make([]int, 0, 3)
	for _, v := range c.M.Neighbours(i) {
		if !isIn(exclude, v) {
			ret = append(ret, v)
		}
	}
	return ret
}

//hasHeavy returns true if any of the atoms is not a hydrogen.
func (c *ctx) hasHeavy(atoms []int) bool {
	for _, v := range atoms {
		if !c.isH(v) {
			return true
		}
	}
	return false
}

//pairs calls fn on every ordered pair (x, y) of different atoms in atoms, where
//x is a heavy atom whenever there is at least one in atoms, until fn returns true.
//It returns true if fn did.
func (c *ctx) pairs(atoms []int, fn func(x, y int) bool) bool {
	heavyFirst := c.hasHeavy(atoms)
	for _, x := range atoms {
		if heavyFirst && c.isH(x) {
			continue
		}
		for _, y := range atoms {
			if x == y {
				continue
			}
			if fn(x, y) {
				return true
			}
		}
	}
	return false
}

//heavyPairs is like pairs, but x is always a heavy atom.
func (c *ctx) heavyPairs(atoms []int, fn func(x, y int) bool) bool {
	for _, x := range atoms {
		if c.isH(x) {
			continue
		}
		for _, y := range atoms {
			if x != y && fn(x, y) {
				return true
			}
		}
	}
	return false
}

//ringsOf returns the 5- and 6-membered rings that contain atom i.
func (c *ctx) ringsOf(i int) []*nci.Ring {
	idx := c.M.RingsOf(i)
	ret := make([]*nci.Ring, 0, len(idx))
	for _, r := range idx {
		ret = append(ret, &c.M.Rings[r])
	}
	return ret
}

//ringNormal returns the normal of R, recording a degenerate geometry if R has none.
func (c *ctx) ringNormal(R *nci.Ring) r3.Vec {
	if R.Degenerate {
		c.G.Degenerate("ring without a defined plane")
	}
	return R.Normal
}

//ringFoot returns the projection of p on the plane of R.
func (c *ctx) ringFoot(R *nci.Ring, p r3.Vec) r3.Vec {
	return c.G.PlaneFoot(p, R.Centroid, c.ringNormal(R))
}

//elevation returns the angle between the line vertex-p and the plane of R, in degrees.
//It equals the angle p-vertex-f, where f is the projection of p on the plane,
//and is 90 when f is the vertex itself.
func (c *ctx) elevation(R *nci.Ring, p, vertex r3.Vec) float64 {
	a := c.G.VecAngle(r3.Sub(p, vertex), c.ringNormal(R))
	return 90 - nci.Fold90(a)
}

//axialDihedral returns the dihedral a-b-cc-d, or NaN if it is not defined,
//without recording a degenerate geometry. It is used for dihedrals that lose
//their meaning when a partner sits on the axis of a ring.
func (c *ctx) axialDihedral(a, b, cc, d r3.Vec) (float64, bool) {
	var g nci.Geom
	v := g.Dihedral(a, b, cc, d)
	return v, g.Err() == nil
}

//donorSym returns the element of the donor in the first label of the family,
//"C" for "CH_PI" or "CH_Hal_Cl".
func (c *ctx) donorSym() string {
	l := c.F.Labels[0]
	if i := strings.Index(l, "H_"); i > 0 {
		return l[:i]
	}
	return ""
}

func isIn(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

//prefix returns the part of a Tripos type before the dot.
func prefix(typ string) string {
	if i := strings.Index(typ, "."); i >= 0 {
		return typ[:i]
	}
	return typ
}
