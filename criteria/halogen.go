/*
 * halogen.go, part of gonci.
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

//singleHeavy returns the only neighbour of i, or -1 if i does not have
//exactly one neighbour, or the neighbour is a hydrogen.
func singleHeavy(c *ctx, i int) int {
	nb := c.M.Neighbours(i)
	if len(nb) != 1 || c.isH(nb[0]) {
		return -1
	}
	return nb[0]
}

//halogenBond evaluates a C-X...A halogen bond. The acceptor element is given by
//the family (O, N or S).
//Values: d(X,A), d(X,Y), d(C,A), angle X-C...A, and, for acceptors with two
//neighbours, d(X,Z) and d(C,Z), where Y and Z are neighbours of A.
func halogenBond(c *ctx, a, b int) []Hit {
	P := c.P
	want := map[FamilyID]string{HalO: "O", HalN: "N", HalS: "S"}[c.F.ID]
	one, two := halAcceptors1.Has(c.typ(b)), halAcceptors2.Has(c.typ(b))
	if !nci.Halogens.Has(c.typ(a)) || c.sym(b) != want || !(one || two) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	x := singleHeavy(c, a)
	if x < 0 {
		return nil
	}
	d3 := c.dist(x, b)
	a1 := c.angle(a, x, b)
	if d1 > d3 || !P.Max(1, a1) {
		return nil
	}
	nb := c.M.Neighbours(b)
	if (one && len(nb) != 1) || (two && len(nb) != 2) {
		return nil
	}
	label := "Hal_" + c.sym(a) + "_" + c.sym(b)
	if len(nb) == 1 {
		if c.isH(nb[0]) {
			return nil
		}
		d2 := c.dist(a, nb[0])
		if d1 <= d2 {
			return c.hit(label, a, b, d1, d2, d3, a1)
		}
		return nil
	}
	var d2, d4, d5 float64
	ok = c.pairs(nb, func(y, z int) bool {
		d2 = c.dist(a, y)
		d4 = c.dist(a, z)
		d5 = c.dist(x, z)
		return d1 <= d2 && d4 <= d5
	})
	if !ok {
		return nil
	}
	return c.hit(label, a, b, d1, d2, d3, a1, d4, d5)
}

//xhF evaluates an X-H...F contact between the donor a and an organic fluorine b.
//A water oxygen donor uses its own distance threshold.
//Values: d(D,F), d(X,F), d(H,F), angle X-D...F, angle D-H...F.
func xhF(c *ctx, a, b int) []Hit {
	P := c.P
	if !xhFDonors.Has(c.typ(a)) || c.sym(a) != c.donorSym() || c.typ(b) != "F" {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	nb := c.M.Neighbours(a)
	if len(nb) < 2 || singleHeavy(c, b) < 0 {
		return nil
	}
	water := c.sym(a) == "O" && len(c.M.Hydrogens(a)) == 2
	di := 1
	if water {
		di = 4
	}
	for _, x := range nb {
		if !water && c.isH(x) {
			continue
		}
		for _, h := range nb {
			if h == x || !c.isH(h) {
				continue
			}
			d2 := c.dist(x, b)
			d3 := c.dist(h, b)
			a1 := c.angle(x, a, b)
			a2 := c.angle(a, h, b)
			if d1 <= d2 && d3 <= d1 && P.Max(2, a1) && (P.Max(di, d3) || P.Min(3, a2)) {
				return c.hit(c.F.Labels[0], a, b, d1, d2, d3, a1, a2)
			}
		}
	}
	return nil
}

//xhHalogen evaluates an X-H...Hal contact between the donor a and the halogen b.
//Among the passing neighbour pairs (X, H) of the donor, the one with X closest
//to the halogen is reported.
//Values: d(D,Hal), d(X,Hal), d(H,Hal), angle C-Hal...H, angle C-Hal...D,
//angle Hal...D-H, angle C...D-H, where C is the atom bonded to the halogen.
func xhHalogen(c *ctx, a, b int) []Hit {
	P := c.P
	if !xhHalDonors.Has(c.typ(a)) || c.sym(a) != c.donorSym() || !nci.Halogens.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	nb := c.M.Neighbours(a)
	if len(nb) < 2 {
		return nil
	}
	x := singleHeavy(c, b)
	if x < 0 {
		return nil
	}
	a2 := c.angle(x, b, a)
	if !P.Max(2, a2) {
		return nil
	}
	var found []float64
	c.pairs(nb, func(y, h int) bool {
		if !c.isH(h) {
			return false
		}
		d2 := c.dist(y, b)
		if found != nil && d2 >= found[0] {
			return false
		}
		d3 := c.dist(h, b)
		a1 := c.angle(x, b, h)
		a3 := c.angle(b, a, h)
		a4 := c.angle(x, a, h)
		if d1 <= d2 && d3 <= d1 && P.Max(1, a1) && P.Max(3, a3) && P.Max(4, a4) {
			found = []float64{d2, d3, a1, a3, a4}
		}
		return false
	})
	if found == nil {
		return nil
	}
	return c.hit(c.sym(a)+"H_Hal_"+c.sym(b), a, b, d1, found[0], found[1], found[2], a2, found[3], found[4])
}
