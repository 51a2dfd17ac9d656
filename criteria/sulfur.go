/*
 * sulfur.go, part of gonci.
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

//Criteria for the contacts of divalent sulfur.

//farther returns true if all the atoms are farther from ref than d.
func farther(c *ctx, ref int, d float64, atoms ...int) bool {
	for _, v := range atoms {
		if c.dist(ref, v) <= d {
			return false
		}
	}
	return true
}

//nhS evaluates an N-H...S contact. The donor must have exactly two neighbours.
//Values: d(N,S), d(X,S), d(H,S), d(Y,N), d(Z,N), angle N-H...S.
func nhS(c *ctx, a, b int) []Hit {
	P := c.P
	if !nhsDonors.Has(c.typ(a)) || !sAcceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	nb := c.M.Neighbours(a)
	if len(nb) != 2 {
		return nil
	}
	var d2, d3, a1 float64
	ok = c.heavyPairs(nb, func(x, h int) bool {
		if !c.isH(h) {
			return false
		}
		d2 = c.dist(x, b)
		d3 = c.dist(h, b)
		a1 = c.angle(a, h, b)
		if !(d3 <= d1 && d1 <= d2) {
			return false
		}
		return (P.Max(1, d3) && P.Range(3, 4, a1)) || (d3 > P.V(1) && P.Max(2, d3) && P.Range(5, 6, a1))
	})
	if !ok {
		return nil
	}
	d4, d5 := nan, nan
	switch c.typ(b) {
	case "S.2":
		y := singleHeavy(c, b)
		if y < 0 {
			return nil
		}
		d4 = c.dist(y, a)
		if d1 > d4 {
			return nil
		}
	default:
		ok = c.heavyPairs(c.M.Neighbours(b), func(y, z int) bool {
			d4 = c.dist(y, a)
			d5 = c.dist(z, a)
			return d1 <= d4 && d1 <= d5
		})
		if !ok {
			return nil
		}
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5, a1)
}

//xhS evaluates O-H...S and S-H...S contacts, selected by the family.
//Values: d(D,S), d(X,S), d(H,S), d(D,Y), d(D,Z), angle X-D...S.
func xhS(c *ctx, a, b int) []Hit {
	P := c.P
	donors := ohsDonors
	if c.F.ID == SHS {
		donors = shsDonors
	}
	if !donors.Has(c.typ(a)) || !sAcceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	xs, hs := c.M.Heavy(a), c.M.Hydrogens(a)
	if len(xs) == 0 || len(hs) == 0 || c.M.NBonds(b) == 0 {
		return nil
	}
	d2, ang := nan, nan
	found := false
	for _, x := range xs {
		d2 = c.dist(x, b)
		if d1 >= d2 {
			continue
		}
		ang = c.angle(x, a, b)
		if P.Max(1, ang) {
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	d3 := nan
	found = false
	for _, h := range hs {
		d3 = c.dist(h, b)
		if d3 < d1 {
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	d4, d5 := nan, nan
	nb := c.M.Neighbours(b)
	if len(nb) == 1 {
		if c.isH(nb[0]) {
			return nil
		}
		d4 = c.dist(a, nb[0])
		if d1 >= d4 {
			return nil
		}
	} else {
		ok = c.heavyPairs(nb, func(z, y int) bool {
			d4 = c.dist(a, z)
			d5 = c.dist(a, y)
			return d1 < d4 && d1 < d5
		})
		if !ok {
			return nil
		}
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5, ang)
}

//sO evaluates a sulfur...oxygen contact.
//Values: d(S,O), d(X,O), d(W,O), d(Y,S), d(Z,S).
func sO(c *ctx, a, b int) []Hit {
	if !soDonors.Has(c.typ(a)) || !soAcceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(a) < 2 {
		return nil
	}
	nb := c.M.Neighbours(b)
	if c.typ(b) == "O.3" {
		if len(nb) != 2 {
			return nil
		}
	} else if singleHeavy(c, b) < 0 {
		return nil
	}
	var d2, d3 float64
	ok = c.heavyPairs(c.M.Neighbours(a), func(x, w int) bool {
		d2 = c.dist(x, b)
		d3 = c.dist(w, b)
		return d1 <= d2 && d1 <= d3
	})
	if !ok {
		return nil
	}
	d4, d5 := nan, nan
	if len(nb) == 1 {
		d4 = c.dist(nb[0], a)
		if d1 > d4 {
			return nil
		}
		return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5)
	}
	ok = c.pairs(nb, func(y, z int) bool {
		d4 = c.dist(y, a)
		d5 = c.dist(z, a)
		return d1 <= d4 && d1 <= d5
	})
	if !ok {
		return nil
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5)
}

//sN evaluates a contact between a thioether-like sulfur and a two-coordinated nitrogen.
//Values: d(S,N), d(X,N), d(Y,N), d(Z,S), d(W,S).
func sN(c *ctx, a, b int) []Hit {
	if c.typ(a) != "S.3" || !snAcceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(a) != 2 || c.M.NBonds(b) != 2 {
		return nil
	}
	var d2, d3, d4, d5 float64
	ok = c.heavyPairs(c.M.Neighbours(a), func(x, y int) bool {
		d2 = c.dist(x, b)
		d3 = c.dist(y, b)
		return d1 <= d2 && d1 <= d3
	})
	if !ok {
		return nil
	}
	ok = c.heavyPairs(c.M.Neighbours(b), func(z, w int) bool {
		d4 = c.dist(z, a)
		d5 = c.dist(w, a)
		return d1 <= d4 && d1 <= d5
	})
	if !ok {
		return nil
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5)
}

//sS evaluates a sulfur...sulfur contact.
//Values: d(S1,S2), d(X,S2), d(W,S2), d(S1,Z), d(S1,Y), angle X-S1...S2.
func sS(c *ctx, a, b int) []Hit {
	P := c.P
	if !sAcceptors.Has(c.typ(a)) || !sAcceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	d2, d3, ang := nan, nan, nan
	if x := singleHeavy(c, a); x >= 0 {
		d2 = c.dist(b, x)
		ang = c.angle(x, a, b)
		if !(d1 < d2 && P.Max(1, ang)) {
			return nil
		}
	} else {
		ok = c.heavyPairs(c.M.Neighbours(a), func(x, w int) bool {
			d2 = c.dist(b, x)
			d3 = c.dist(b, w)
			ang = c.angle(x, a, b)
			return d1 < d2 && d1 < d3 && P.Max(1, ang)
		})
		if !ok {
			return nil
		}
	}
	d4, d5 := nan, nan
	if y := singleHeavy(c, b); y >= 0 {
		d4 = c.dist(a, y)
		if d1 >= d4 {
			return nil
		}
	} else {
		ok = c.heavyPairs(c.M.Neighbours(b), func(y, z int) bool {
			d4 = c.dist(a, z)
			d5 = c.dist(a, y)
			return d1 < d4 && d1 < d5
		})
		if !ok {
			return nil
		}
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5, ang)
}

//sF evaluates a sulfur...organic fluorine contact. All heavy neighbours of the
//sulfur must be farther from F than the sulfur, and one of them, X, must make
//an X-S...F angle within the threshold with some other neighbour W also farther.
//Values: d(S,F), d(X,F), d(W,F), d(S,C), angle X-S...F, C being bonded to F.
func sF(c *ctx, a, b int) []Hit {
	P := c.P
	if !sAcceptors.Has(c.typ(a)) || c.typ(b) != "F" {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(a) == 0 {
		return nil
	}
	cf := singleHeavy(c, b)
	if cf < 0 {
		return nil
	}
	d4 := c.dist(a, cf)
	if d1 >= d4 {
		return nil
	}
	xs := c.M.Heavy(a)
	if !farther(c, b, d1, xs...) {
		return nil
	}
	for _, x := range xs {
		a1 := c.angle(x, a, b)
		if !P.Max(1, a1) {
			continue
		}
		for _, w := range c.others(a, x) {
			if d3 := c.dist(w, b); d1 < d3 {
				return c.hit(c.F.Labels[0], a, b, d1, c.dist(x, b), d3, d4, a1)
			}
		}
	}
	return nil
}
