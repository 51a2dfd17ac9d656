/*
 * vdw.go, part of gonci.
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

import "math"

//vdw evaluates a van der Waals contact between two heavy atoms. The closest
//approach is taken over each atom and its hydrogens.
//Values: distance, closest distance, distance minus the sum of radii.
func vdw(c *ctx, a, b int) []Hit {
	P := c.P
	if vdwExcluded.Has(c.sym(a)) || vdwExcluded.Has(c.sym(b)) {
		return nil
	}
	vdwsum := c.vdw(a, b)
	d := c.dist(a, b)
	if !P.Within(0, d, vdwsum) {
		return nil
	}
	as := append([]int{a}, c.M.Hydrogens(a)...)
	bs := append([]int{b}, c.M.Hydrogens(b)...)
	near := math.Inf(1)
	for _, i := range as {
		for _, j := range bs {
			near = math.Min(near, c.dist(i, j))
		}
	}
	diff := d - vdwsum
	switch {
	case P.Max(2, near):
	case P.Min(3, near) && P.Max(4, near):
	case near > P.V(4) && P.Max(1, diff):
	default:
		return nil
	}
	return c.hit(c.F.Labels[0], a, b, d, near, diff)
}
