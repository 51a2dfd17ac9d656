/*
 * chx.go, part of gonci.
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

import nci "github.com/rmera/gonci"

func chN(c *ctx, a, b int) []Hit {
	return chX(c, a, b, chNAcceptor)
}

func chS(c *ctx, a, b int) []Hit {
	return chX(c, a, b, chSAcceptor)
}

//chX evaluates a C-H...N or C-H...S contact.
//Values: d(C,A), d(X,A), d(H,A), d(Y,C), d(Z,C), angle X-C...A, angle C-H...A,
//where X is a heavy neighbour of C and Y, Z are neighbours of A.
func chX(c *ctx, a, b int, acceptors nci.TypeSet) []Hit {
	P := c.P
	if !chDonors.Has(c.typ(a)) || !acceptors.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(b) == 0 {
		return nil
	}
	d2, d3, a1, a2 := nan, nan, nan, nan
	found := false
	for _, x := range c.M.Heavy(a) {
		for _, h := range c.M.Hydrogens(a) {
			d2 = c.dist(x, b)
			d3 = c.dist(h, b)
			a1 = c.angle(x, a, b)
			a2 = c.angle(a, h, b)
			if d1 < d2 && d3 < d1 && P.Max(3, a1) && (P.Max(1, d3) || (P.Max(2, d3) && P.Min(4, a2))) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil
	}
	return chAcceptorSide(c, a, b, d1, d2, d3, a1, a2, true)
}

//chAcceptorSide checks that the neighbours of the acceptor b are farther from the
//donor a than b is. If oneHeavy is true, a single neighbour must be a heavy atom,
//and so must be the first atom of a pair of neighbours.
func chAcceptorSide(c *ctx, a, b int, d1, d2, d3, a1, a2 float64, oneHeavy bool) []Hit {
	nb := c.M.Neighbours(b)
	d4, d5 := nan, nan
	if len(nb) == 1 && (!oneHeavy || !c.isH(nb[0])) {
		d4 = c.dist(nb[0], a)
		if d1 < d4 {
			return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5, a1, a2)
		}
		return nil
	}
	if len(nb) < 2 {
		return nil
	}
	iter := c.pairs
	if oneHeavy {
		iter = c.heavyPairs
	}
	ok := iter(nb, func(x, y int) bool {
		d4 = c.dist(x, a)
		d5 = c.dist(y, a)
		return d1 < d4 && d1 < d5
	})
	if !ok {
		return nil
	}
	return c.hit(c.F.Labels[0], a, b, d1, d2, d3, d4, d5, a1, a2)
}

//chO evaluates a C-H...O contact. Values as in chX.
func chO(c *ctx, a, b int) []Hit {
	P := c.P
	if !chDonors.Has(c.typ(a)) || !chOAcceptor.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok || c.M.NBonds(b) == 0 {
		return nil
	}
	d2, d3, a1, a2 := nan, nan, nan, nan
	found := false
	for _, x := range c.M.Heavy(a) {
		for _, h := range c.M.Hydrogens(a) {
			d2 = c.dist(x, b)
			d3 = c.dist(h, b)
			a1 = c.angle(x, a, b)
			a2 = c.angle(a, h, b)
			if d1 < d2 && d3 < d1 && P.Max(1, d3) && P.Max(2, a1) && P.Min(3, a2) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil
	}
	return chAcceptorSide(c, a, b, d1, d2, d3, a1, a2, false)
}

//shX evaluates S-H...N and S-H...O contacts, selected by the family.
//Values: d(S,A), d(X,A), d(H,A), d(S,Y), d(S,Z), angle X-S...A.
func shX(c *ctx, a, b int) []Hit {
	P := c.P
	accs := shOAcceptors
	if c.F.ID == SHN {
		accs = shNAcceptors
	}
	if !shDonors.Has(c.typ(a)) || !accs.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	xs, hs := c.M.Heavy(a), c.M.Hydrogens(a)
	nb := c.M.Neighbours(b)
	if len(xs) == 0 || len(hs) == 0 || len(nb) == 0 {
		return nil
	}
	if c.typ(b) == "N.ar" && len(c.M.Hydrogens(b)) > 0 {
		return nil
	}
	d2, ang := nan, nan
	found := false
	for _, x := range xs {
		ang = c.angle(x, a, b)
		d2 = c.dist(x, b)
		if P.Max(1, ang) && d1 < d2 {
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
	if len(nb) == 1 {
		d4 = c.dist(a, nb[0])
		if d1 >= d4 {
			return nil
		}
	} else {
		ok := c.pairs(nb, func(z, y int) bool {
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
