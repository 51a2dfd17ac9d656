/*
 * metal.go, part of gonci.
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

//metal evaluates the coordination of an acceptor b by the metal a. The heavy
//neighbours of the acceptor must be farther from the metal than the acceptor.
//The label names the metal and the element of the acceptor, as in "Zn_O".
//Values: d(M,A), d(M,X), d(M,Y).
func metal(c *ctx, a, b int) []Hit {
	if !nci.Metals.Has(c.typ(a)) || !metalLigands.Has(c.typ(b)) {
		return nil
	}
	d1, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	label := c.sym(a) + "_" + c.sym(b)
	xs := c.M.Heavy(b)
	if len(xs) == 1 {
		d2 := c.dist(a, xs[0])
		if d1 <= d2 {
			return c.hit(label, a, b, d1, d2, nan)
		}
		return nil
	}
	var d2, d3 float64
	ok = c.heavyPairs(xs, func(x, y int) bool {
		d2 = c.dist(a, x)
		d3 = c.dist(a, y)
		return d1 <= d2 && d1 <= d3
	})
	if !ok {
		return nil
	}
	return c.hit(label, a, b, d1, d2, d3)
}

//ion evaluates a contact between a free monoatomic ion a and any heavy atom b.
//Values: distance.
func ion(c *ctx, a, b int) []Hit {
	if !nci.Ions.Has(c.typ(a)) || c.isH(b) || c.M.NBonds(a) != 0 {
		return nil
	}
	d, ok := c.within(0, a, b)
	if !ok {
		return nil
	}
	return c.hit(c.sym(a)+"_"+c.sym(b), a, b, d)
}
