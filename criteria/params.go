/*
 * params.go, part of gonci.
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
	"strings"
)

//Kind is the domain of a threshold.
type Kind int

const (
	Buffer Kind = iota //added to a sum of van der Waals radii, may be negative
	Dist               //absolute distance, A, not negative
	Angle              //degrees, 0 to 180
	Coef               //positive factor
	Charge             //partial charge difference, not negative
)

func (K Kind) String() string {
	switch K {
	case Buffer:
		return "buffer"
	case Dist:
		return "distance"
	case Angle:
		return "angle"
	case Coef:
		return "coefficient"
	case Charge:
		return "charge"
	}
	return "unknown"
}

//ParamSpec describes one threshold of a criterion.
type ParamSpec struct {
	Name    string
	Kind    Kind
	Default float64
	Strict  bool //the comparison excludes the bound by default
}

//check returns an error if v is not in the domain of the parameter.
func (S ParamSpec) check(key string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return newConfigError(key, S.Name, "value %v is not a finite number", v)
	}
	switch S.Kind {
	case Dist, Charge:
		if v < 0 {
			return newConfigError(key, S.Name, "%s can't be negative (%v)", S.Kind, v)
		}
	case Angle:
		if v < 0 || v > 180 {
			return newConfigError(key, S.Name, "angle %v out of the 0-180 range", v)
		}
	case Coef:
		if v <= 0 {
			return newConfigError(key, S.Name, "coefficient must be positive (%v)", v)
		}
	}
	return nil
}

//Threshold is one configured bound.
type Threshold struct {
	Value  float64
	Strict bool
}

//HydrogenMode tells the dipole criterion what to do with hydrogens.
type HydrogenMode int

const (
	HydrogenNone   HydrogenMode = iota //hydrogens can't be dipole ends, but can be the partner atoms
	HydrogenAdd                        //hydrogens can also be dipole ends
	HydrogenExcept                     //hydrogens are ignored entirely
)

//ParseHydrogenMode parses "none", "add" or "except".
func ParseHydrogenMode(s string) (HydrogenMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "other":
		return HydrogenNone, nil
	case "add":
		return HydrogenAdd, nil
	case "except":
		return HydrogenExcept, nil
	}
	return HydrogenNone, fmt.Errorf("unknown hydrogen mode %q", s)
}

func (H HydrogenMode) String() string {
	switch H {
	case HydrogenAdd:
		return "add"
	case HydrogenExcept:
		return "except"
	}
	return "none"
}

//Params holds the thresholds of one criterion family, in the order of its ParamSpecs.
type Params struct {
	T         []Threshold
	Hydrogens HydrogenMode
}

func defaultParams(F *Family) *Params {
	P := &Params{T: make([]Threshold, len(F.Params))}
	for i, s := range F.Params {
		P.T[i] = Threshold{Value: s.Default, Strict: s.Strict}
	}
	return P
}

func (P *Params) clone() *Params {
	r := &Params{T: make([]Threshold, len(P.T)), Hydrogens: P.Hydrogens}
	copy(r.T, P.T)
	return r
}

//V returns the value of threshold i.
func (P *Params) V(i int) float64 {
	return P.T[i].Value
}

//Max returns true if v is not above threshold i
//(below it, if the threshold is strict). NaN never passes.
func (P *Params) Max(i int, v float64) bool {
	if P.T[i].Strict {
		return v < P.T[i].Value
	}
	return v <= P.T[i].Value
}

//Min returns true if v is not below threshold i
//(above it, if the threshold is strict). NaN never passes.
func (P *Params) Min(i int, v float64) bool {
	if P.T[i].Strict {
		return v > P.T[i].Value
	}
	return v >= P.T[i].Value
}

//Range returns true if v is within thresholds lo and hi.
func (P *Params) Range(lo, hi int, v float64) bool {
	return P.Min(lo, v) && P.Max(hi, v)
}

//Within returns true if d is not above the buffer threshold i plus vdw.
func (P *Params) Within(i int, d, vdw float64) bool {
	if P.T[i].Strict {
		return d < P.T[i].Value+vdw
	}
	return d <= P.T[i].Value+vdw
}
