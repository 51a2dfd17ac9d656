/*
 * pi.go, part of gonci.
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
	"strings"

	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/r3"
)

//piPi evaluates a stacking contact between two ring atoms. For some ring of a,
//b must be elevated from the ring plane by at least angle2 (as seen from a), and
//for some ring of b, the angle between both ring planes must not exceed angle1.
//Values: distance, angle between the ring normals (not folded), elevation.
func piPi(c *ctx, a, b int) []Hit {
	P := c.P
	if !nci.PiTypes.Has(c.typ(a)) || !nci.PiTypes.Has(c.typ(b)) {
		return nil
	}
	d, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	rb := c.ringsOf(b)
	for _, R1 := range c.ringsOf(a) {
		elev := c.elevation(R1, c.pos(b), c.pos(a))
		if !P.Min(2, elev) {
			continue
		}
		for _, R2 := range rb {
			raw := c.G.VecAngle(c.ringNormal(R1), c.ringNormal(R2))
			if P.Max(1, nci.Fold90(raw)) {
				return c.hit(c.F.Labels[0], a, b, d, raw, elev)
			}
		}
	}
	return nil
}

//xhPi evaluates an X-H...pi contact between the donor a and the ring atom b.
//The hydrogen must be closer to b than the donor, and the donor closer than
//the other neighbour of the donor. The projection of the donor on the ring
//plane must be close enough to the ring centroid, and the D-H bond must point
//to the plane.
//Values: d(D,A), d(X,A), d(H,A), d(centroid,A), the same times coef,
//d(projection, centroid), angle projection-D-H, angle D-H...A.
func xhPi(c *ctx, a, b int) []Hit {
	P := c.P
	sym := c.donorSym()
	if !xhPiDonors.Has(c.typ(a)) || c.sym(a) != sym || !nci.PiTypes.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(b) < 2 {
		return nil
	}
	d2, d3, a2 := nan, nan, nan
	h := -1
	nb := c.M.Neighbours(a)
search:
	for _, x := range nb {
		if sym == "S" && c.isH(x) {
			continue
		}
		for _, hc := range nb {
			if hc == x || !c.isH(hc) {
				continue
			}
			d2 = c.dist(x, b)
			d3 = c.dist(hc, b)
			a2 = c.angle(a, hc, b)
			if !(d3 <= d1 && d1 <= d2) {
				continue
			}
			if P.Max(2, d3) || (d3 > P.V(2) && P.Max(3, d3) && P.Min(5, a2)) {
				h = hc
				break search
			}
		}
	}
	if h < 0 {
		return nil
	}
	for _, R := range c.ringsOf(b) {
		d4 := nci.Distance(R.Centroid, c.pos(b))
		nrm := c.ringFoot(R, c.pos(a))
		dnrm := nci.Distance(nrm, R.Centroid)
		a1 := c.G.Angle(nrm, c.pos(a), c.pos(h))
		if dnrm <= d4*P.V(1) && P.Max(4, a1) {
			return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d4*P.V(1), dnrm, a1, a2)
		}
	}
	return nil
}

//xhPiLegacy evaluates an X-H...pi contact between the aromatic atom a and the
//donor b, with the older definition based on the normal of the ring through a.
//Values: distance, angle normal-D-H, angle a-centroid-D, dihedral a-normal-D-H,
//dihedral centroid-a-normal-D. The last two are NaN when the donor projects
//within the ring radius.
func xhPiLegacy(c *ctx, a, b int) []Hit {
	P := c.P
	if !strings.HasSuffix(c.typ(a), ".ar") || !legacyPiDonors.Has(c.typ(b)) || c.sym(b) != c.donorSym() {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	hs := c.M.Hydrogens(b)
	if len(hs) == 0 {
		return nil
	}
	pa, pb := c.pos(a), c.pos(b)
	for _, R := range c.ringsOf(a) {
		if !R.Aromatic {
			continue
		}
		r := R.Radius(c.M) + P.V(0)
		d2 := nci.Distance(R.Centroid, c.ringFoot(R, pb))
		if d2 > 2*r {
			continue
		}
		p2 := c.G.LineFoot(pb, pa, c.ringNormal(R))
		for _, h := range hs {
			ph := c.pos(h)
			a1 := c.G.Angle(p2, pb, ph)
			if !P.Range(1, 2, a1) {
				continue
			}
			dh1 := c.G.Dihedral(pa, p2, pb, ph)
			if !P.Max(3, dh1) {
				continue
			}
			a2, dh2 := nan, nan
			if r < d2 {
				a2 = c.G.Angle(pa, R.Centroid, pb)
				dh2 = c.G.Dihedral(R.Centroid, pa, p2, pb)
				if !(a2 > 45 && P.Min(4, dh2)) {
					continue
				}
			}
			return c.hit(c.F.Labels[0], a, b, d1, a1, a2, dh1, dh2)
		}
	}
	return nil
}

//axialOK applies a minimum dihedral threshold. An undefined dihedral means the
//partner lies on the ring axis, and passes.
func axialOK(P *Params, i int, v float64, defined bool) bool {
	return !defined || P.Min(i, v)
}

//halogenPi evaluates a C-X...pi contact between the halogen a and the ring atom b.
//Values: d(X,A), d(C,A), d(centroid,A), the same times coef, d(projection,centroid),
//d(centroid,X), d(centroid,C), angle projection-X-C, dihedral centroid-projection-X-C.
func halogenPi(c *ctx, a, b int) []Hit {
	P := c.P
	if !nci.Halogens.Has(c.typ(a)) || !nci.PiTypes.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	nb := c.M.Neighbours(a)
	if len(nb) != 1 || c.isH(nb[0]) {
		return nil
	}
	x := nb[0]
	d2 := c.dist(x, b)
	if d1 > d2 || c.M.NBonds(b) < 2 {
		return nil
	}
	pa, px := c.pos(a), c.pos(x)
	for _, R := range c.ringsOf(b) {
		cn := R.Centroid
		d3 := nci.Distance(cn, c.pos(b))
		d5 := nci.Distance(cn, pa)
		d6 := nci.Distance(cn, px)
		nrm := c.ringFoot(R, pa)
		dnrm := nci.Distance(nrm, cn)
		a1 := c.G.Angle(nrm, pa, px)
		dih, defined := c.axialDihedral(cn, nrm, pa, px)
		if dnrm <= d3*P.V(1) && d5 <= d6 && P.Min(2, a1) && axialOK(P, 3, dih, defined) {
			return c.hit("Hal_PI_"+c.sym(a), a, b, d1, d2, d3, d3*P.V(1), dnrm, d5, d6, a1, dih)
		}
	}
	return nil
}

//sPi evaluates a sulfur...pi contact. A sulfur with two or more neighbours is
//tested by the angle between its own plane and the ring plane, a thioketone-like
//S.2 with a single heavy neighbour by the orientation of its bond.
func sPi(c *ctx, a, b int) []Hit {
	if !sAcceptors.Has(c.typ(a)) || !nci.PiTypes.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(b) < 2 {
		return nil
	}
	if c.M.NBonds(a) >= 2 {
		return sPiPlanar(c, a, b, d1)
	}
	if c.typ(a) == "S.2" {
		return sPiTerminal(c, a, b, d1)
	}
	return nil
}

//Values: d(S,A), d(X,A), d(W,A), d(centroid,A), the same times coef,
//d(projection,centroid), angle between the X-S-W and ring planes.
func sPiPlanar(c *ctx, a, b int, d1 float64) []Hit {
	P := c.P
	var nvs r3.Vec
	d2, d3 := nan, nan
	ok := c.heavyPairs(c.M.Neighbours(a), func(x, w int) bool {
		d2 = c.dist(x, b)
		d3 = c.dist(w, b)
		if d1 <= d2 && d1 <= d3 {
			nvs = c.G.Normal(c.pos(x), c.pos(a), c.pos(w))
			return true
		}
		return false
	})
	if !ok {
		return nil
	}
	for _, R := range c.ringsOf(b) {
		d4 := nci.Distance(R.Centroid, c.pos(b))
		dnrm := nci.Distance(c.ringFoot(R, c.pos(a)), R.Centroid)
		a1 := nci.Fold90(c.G.VecAngle(nvs, c.ringNormal(R)))
		if dnrm <= d4*P.V(1) && P.Min(2, a1) {
			return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d4*P.V(1), dnrm, a1)
		}
	}
	return nil
}

//Values: d(S,A), d(X,A), d(centroid,A), the same times coef, d(projection,centroid),
//d(centroid,S), d(centroid,X), angle projection-S-X, dihedral centroid-projection-S-X.
func sPiTerminal(c *ctx, a, b int, d1 float64) []Hit {
	P := c.P
	nb := c.M.Neighbours(a)
	if len(nb) != 1 || c.isH(nb[0]) {
		return nil
	}
	x := nb[0]
	d2 := c.dist(x, b)
	if d1 > d2 {
		return nil
	}
	pa, px := c.pos(a), c.pos(x)
	for _, R := range c.ringsOf(b) {
		cn := R.Centroid
		d4 := nci.Distance(cn, c.pos(b))
		d6 := nci.Distance(cn, pa)
		d7 := nci.Distance(cn, px)
		nrm := c.ringFoot(R, pa)
		dnrm := nci.Distance(nrm, cn)
		a2 := c.G.Angle(nrm, pa, px)
		dih, defined := c.axialDihedral(cn, nrm, pa, px)
		if dnrm <= d4*P.V(1) && d6 <= d7 && P.Min(3, a2) && axialOK(P, 4, dih, defined) {
			return c.hit(c.F.Labels[0], a, b, d1, d2, d4, d4*P.V(1), dnrm, d6, d7, a2, dih)
		}
	}
	return nil
}
