/*
 * hbond.go, part of gonci.
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

//indexes of the thresholds used by the hydrogen bond and electrostatic families.
//dmin is -1 for families without a minimum distance.
type hbIndex struct {
	dmin, dmax, amin, amax, an4, acc1, acc2 int
	elec                                    bool
}

var (
	hbNIdx  = hbIndex{dmin: -1, dmax: 0, amin: 1, amax: 2, an4: 3, acc1: 4, acc2: 5}
	hbOIdx  = hbIndex{dmin: -1, dmax: 0, amin: 1, amax: 2, an4: -1, acc1: 3, acc2: 4}
	elecIdx = hbIndex{dmin: 0, dmax: 1, amin: 2, amax: 3, an4: 4, acc1: 5, acc2: 6, elec: true}
)

func hbondNH(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, nDonorTypes, hbNIdx, false)
}

func hbondNHOH(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, nDonorTypes, hbNIdx, true)
}

func hbondOH(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, oDonorTypes, hbOIdx, false)
}

func hbondOHOH(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, oDonorTypes, hbOIdx, true)
}

func elec(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, elecDonorTypes, elecIdx, false)
}

func elecOH(c *ctx, a, b int) []Hit {
	return hbond(c, a, b, elecDonorTypes, elecIdx, true)
}

//hydroxylAcceptor returns true for an oxygen with exactly two bonds.
func hydroxylAcceptor(c *ctx, i int) bool {
	return c.sym(i) == "O" && c.M.NBonds(i) == 2
}

//hbond evaluates a D-H...A contact between the donor a and the acceptor b.
//The D-H...A angle (vertex at H) must be within the angle thresholds. For hydroxyl
//acceptors (an O with exactly two bonds, one to H) the H...O-H and H...O-X angles
//are tested, otherwise the H...A-X angle for some neighbour X of A.
//Values: distance D-A, angle D-H...A, acceptor angle(s).
func hbond(c *ctx, a, b int, donorTypes nci.TypeSet, I hbIndex, hydroxyl bool) []Hit {
	P := c.P
	if !donorTypes.Has(c.typ(a)) {
		return nil
	}
	if hydroxyl {
		if !hydroxylAcceptor(c, b) {
			return nil
		}
	} else if !hbAcceptors.Has(c.typ(b)) {
		return nil
	}
	d := c.dist(a, b)
	if I.elec {
		if !P.Min(I.dmin, d) || !P.Within(I.dmax, d, c.vdw(a, b)) {
			return nil
		}
	} else if !P.Max(I.dmax, d) {
		return nil
	}
	hs := c.M.Hydrogens(a)
	if len(hs) == 0 {
		return nil
	}
	lo := I.amin
	if I.an4 >= 0 && c.typ(a) == "N.4" {
		lo = I.an4
	}
	label := "HB_"
	if I.elec {
		label = "Elec_"
	}
	label += c.sym(a) + "H_"
	if hydroxyl {
		label += "O"
	} else {
		label += c.sym(b)
	}
	acc := c.M.Neighbours(b)
	for _, h := range hs {
		theta := c.angle(a, h, b)
		if !P.Min(lo, theta) || !P.Max(I.amax, theta) {
			continue
		}
		if !hydroxyl {
			for _, x := range acc {
				if !acceptorNeighbours.Has(c.typ(x)) && !c.isH(x) {
					continue
				}
				a2 := c.angle(h, b, x)
				if P.Range(I.acc1, I.acc2, a2) {
					return c.hit(label, a, b, d, theta, a2)
				}
			}
			continue
		}
		for _, x := range acc {
			for _, hw := range acc {
				if x == hw || !c.isH(hw) {
					continue
				}
				if !acceptorNeighbours.Has(c.typ(x)) && !c.isH(x) {
					continue
				}
				a2 := c.angle(h, b, hw)
				a3 := c.angle(h, b, x)
				if P.Min(I.acc1, a2) && P.Min(I.acc2, a3) {
					return c.hit(label, a, b, d, theta, a2, a3)
				}
			}
		}
	}
	return nil
}
