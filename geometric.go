/*
 * geometric.go, part of gonci.
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

package nci

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 1e-9

//Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//Centroid returns the geometric center of the given points.
func Centroid(points ...r3.Vec) r3.Vec {
	var c r3.Vec
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(points)), c)
}

//Fold90 maps an angle between two lines (0-180 degrees) to the 0-90 range.
func Fold90(angle float64) float64 {
	if angle > 90 {
		return 180 - angle
	}
	return angle
}

//Geom performs geometric measurements and remembers the first degenerate one.
//Measurements on degenerate input return NaN (or a zero vector), so comparisons
//against them are always false. The zero value is ready to use.
type Geom struct {
	err error
}

//Err returns the first degenerate measurement found, or nil.
func (G *Geom) Err() error {
	return G.err
}

//Degenerate records a degenerate measurement found by the caller.
func (G *Geom) Degenerate(what string) {
	G.fail(what)
}

func (G *Geom) fail(what string) {
	if G.err == nil {
		G.err = &DegenerateError{what: what}
	}
}

//VecAngle returns the angle between the vectors u and v, in degrees.
func (G *Geom) VecAngle(u, v r3.Vec) float64 {
	normproduct := r3.Norm(u) * r3.Norm(v)
	if normproduct <= appzero {
		G.fail("angle with a zero-length vector")
		return math.NaN()
	}
	argument := r3.Dot(u, v) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return Rad2Deg(math.Acos(argument))
}

//Angle returns the angle a-b-c, with vertex at b, in degrees.
func (G *Geom) Angle(a, b, c r3.Vec) float64 {
	return G.VecAngle(r3.Sub(a, b), r3.Sub(c, b))
}

//Normal returns the unit normal of the plane through a, b and c,
//as the cross product of (a-b) and (c-b).
func (G *Geom) Normal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(a, b), r3.Sub(c, b))
	if r3.Norm(n) <= appzero {
		G.fail("plane through collinear points")
		return r3.Vec{}
	}
	return r3.Unit(n)
}

//PlaneFoot returns the orthogonal projection of p on the plane that
//contains origin and has the given normal.
func (G *Geom) PlaneFoot(p, origin, normal r3.Vec) r3.Vec {
	if r3.Norm(normal) <= appzero {
		G.fail("projection on a plane without normal")
		return r3.Vec{}
	}
	n := r3.Unit(normal)
	return r3.Sub(p, r3.Scale(r3.Dot(r3.Sub(p, origin), n), n))
}

//PlaneFoot3 returns the orthogonal projection of p on the plane through a, b and c.
func (G *Geom) PlaneFoot3(p, a, b, c r3.Vec) r3.Vec {
	return G.PlaneFoot(p, b, G.Normal(a, b, c))
}

//LineFoot returns the orthogonal projection of p on the line that goes through origin
//along dir.
func (G *Geom) LineFoot(p, origin, dir r3.Vec) r3.Vec {
	if r3.Norm(dir) <= appzero {
		G.fail("projection on a line without direction")
		return r3.Vec{}
	}
	d := r3.Unit(dir)
	return r3.Add(origin, r3.Scale(r3.Dot(r3.Sub(p, origin), d), d))
}

//Dihedral returns the angle between the planes a-b-c and b-c-d, in degrees (0 to 180).
func (G *Geom) Dihedral(a, b, c, d r3.Vec) float64 {
	b1 := r3.Sub(b, a)
	b2 := r3.Sub(c, b)
	b3 := r3.Sub(d, c)
	n1 := r3.Cross(b1, b2)
	n2 := r3.Cross(b2, b3)
	if r3.Norm(n1) <= appzero || r3.Norm(n2) <= appzero {
		G.fail("dihedral with collinear points")
		return math.NaN()
	}
	return G.VecAngle(n1, n2)
}
