/*
 * dipole.go, part of gonci.
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
	"math"

	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/r3"
)

//dipoleNeighbours returns the neighbours of i that can close a dipole with it.
func dipoleNeighbours(c *ctx, i int) []int {
	nb := c.M.Neighbours(i)
	if c.P.Hydrogens != HydrogenExcept {
		return nb
	}
	return c.M.Heavy(i)
}

//dipoleVector returns the vector of the bond i-j, pointing from the positive to
//the negative end.
func dipoleVector(c *ctx, i, j int) r3.Vec {
	if c.q(i) > 0 {
		return r3.Sub(c.pos(j), c.pos(i))
	}
	return r3.Sub(c.pos(i), c.pos(j))
}

//polarBond returns true if the bond i-j has opposite (or zero) charges at its
//ends, differing by at least the threshold ci.
func polarBond(c *ctx, ci, i, j int) bool {
	return c.q(i)*c.q(j) <= 0 && c.P.Min(ci, math.Abs(c.q(i)-c.q(j)))
}

//dipole evaluates a dipole-dipole contact between the bond a-Y, where a is the
//head, and the bond b-Z. On success it emits two hits, one for (a, b) and one
//for (Y, Z), both labelled with the file IDs of a and b.
//Values: d(a,b), distance between the bond midpoints, angle between the dipoles,
//angle a-Z-b, angle Z-b-Y, and the charges of the two atoms of the hit.
func dipole(c *ctx, a, b int) []Hit {
	P := c.P
	aok := nci.DipoleHeadTypes.Has(c.typ(a)) || (P.Hydrogens == HydrogenAdd && c.isH(a))
	bok := nci.DipoleTailTypes.Has(c.typ(b)) || (P.Hydrogens == HydrogenAdd && c.isH(b))
	if !aok || !bok {
		return nil
	}
	vdwsum := c.vdw(a, b)
	d1 := c.dist(a, b)
	if !P.Within(0, d1, vdwsum) {
		return nil
	}
	n1, n2 := dipoleNeighbours(c, a), dipoleNeighbours(c, b)
	if len(n1) == 0 || len(n2) == 0 {
		return nil
	}
	for _, y := range n1 {
		if !polarBond(c, 4, a, y) {
			continue
		}
		c1 := nci.Centroid(c.pos(a), c.pos(y))
		v1 := dipoleVector(c, a, y)
		for _, z := range n2 {
			if y == z || !polarBond(c, 4, b, z) {
				continue
			}
			d2 := nci.Distance(c1, nci.Centroid(c.pos(b), c.pos(z)))
			if !P.Within(0, d2, vdwsum) {
				continue
			}
			a1 := c.G.VecAngle(v1, dipoleVector(c, b, z))
			a2 := c.angle(a, z, b)
			a3 := c.angle(z, b, y)
			if P.Min(1, a1) && P.Max(2, a2) && P.Max(3, a3) {
				label := fmt.Sprintf("%s_%d_%d", DipolePrefix, c.M.Atoms[a].ID, c.M.Atoms[b].ID)
				return []Hit{
					{Family: c.F, Label: label, A: a, B: b, Values: []float64{d1, d2, a1, a2, a3, c.q(a), c.q(b)}},
					{Family: c.F, Label: label, A: y, B: z, Values: []float64{d1, d2, a1, a2, a3, c.q(y), c.q(z)}},
				}
			}
		}
	}
	return nil
}

//multipolar evaluates an orthogonal multipolar contact between the negative end
//a of a polar bond a-Y and the positive, trigonal or linear atom b. The line
//a-b must be close to the normal of the plane of b.
//Values: d(a,b), d(Y,b), angle a-b-Z, angle normal-a-b, angle normal-a-Y,
//charge difference of a-Y, charge difference of b-Z.
func multipolar(c *ctx, a, b int) []Hit {
	P := c.P
	if !mulpolHeads.Has(c.typ(a)) || !mulpolTails.Has(c.typ(b)) {
		return nil
	}
	if c.q(a) > 0 || c.q(b) < 0 {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	n1 := c.M.Heavy(a)
	if len(n1) != 1 {
		return nil
	}
	y := n1[0]
	e1 := math.Abs(c.q(a) - c.q(y))
	d2 := c.dist(b, y)
	if c.q(a)*c.q(y) > 0 || !P.Min(5, e1) || d1 > d2 {
		return nil
	}
	pa, pb, py := c.pos(a), c.pos(b), c.pos(y)
	//np is the projection of a on the plane of b, defined by the points p, q and r.
	test := func(z int, p, q, r r3.Vec) ([]Hit, bool) {
		a1 := c.angle(a, b, z)
		np := c.G.PlaneFoot3(pa, p, q, r)
		a2 := c.G.Angle(np, pa, pb)
		a3 := c.G.Angle(np, pa, py)
		if P.Range(1, 2, a1) && P.Max(3, a2) && P.Min(4, a3) {
			e2 := math.Abs(c.q(b) - c.q(z))
			return c.hit(c.F.Labels[0], a, b, d1, d2, a1, a2, a3, e1, e2), true
		}
		return nil, false
	}
	n2 := c.M.Heavy(b)
	if len(n2) == 1 {
		z := n2[0]
		if !polarBond(c, 5, b, z) {
			return nil
		}
		pz := c.pos(z)
		for _, w := range c.M.Heavy(z) {
			if w == b {
				continue
			}
			if h, ok := test(z, c.pos(w), pz, pb); ok {
				return h
			}
		}
		return nil
	}
	for _, z := range n2 {
		if !polarBond(c, 5, b, z) {
			continue
		}
		for _, w := range n2 {
			if w == z {
				continue
			}
			if h, ok := test(z, c.pos(z), pb, c.pos(w)); ok {
				return h
			}
		}
	}
	return nil
}
