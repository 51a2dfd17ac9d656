/*
 * params_test.go, part of gonci.
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
	"errors"
	"fmt"
	"math"
	"testing"

	nci "github.com/rmera/gonci"
)

func TestThresholds(Te *testing.T) {
	P := &Params{T: []Threshold{{Value: 3}, {Value: 3, Strict: true}}}
	if !P.Max(0, 3) || P.Max(1, 3) || !P.Max(1, 2.999) {
		Te.Error("Max does not respect strictness")
	}
	if !P.Min(0, 3) || P.Min(1, 3) || !P.Min(1, 3.001) {
		Te.Error("Min does not respect strictness")
	}
	if P.Max(0, math.NaN()) || P.Min(0, math.NaN()) {
		Te.Error("NaN should never pass")
	}
	if !P.Within(0, 5, 2) || P.Within(1, 5, 2) || P.Within(0, 5+1e-9, 2) {
		Te.Error("Within does not respect the bound")
	}
}

func TestRegistry(Te *testing.T) {
	if n := len(Families()); n != 44 {
		Te.Errorf("expected 44 families, got %d", n)
	}
	if n := len(Labels()); n != 65 {
		Te.Errorf("expected 65 labels, got %d: %v", n, Labels())
	}
	for _, f := range Families() {
		if f.eval == nil {
			Te.Errorf("family %s has no evaluator", f.Key)
		}
		if Lookup(f.Key) != f {
			Te.Errorf("lookup of %s failed", f.Key)
		}
		if f.Reach >= len(f.Params) {
			Te.Errorf("family %s: reach index out of range", f.Key)
		}
	}
	normal, legacy := Active(false), Active(true)
	if len(normal) != 41 || len(legacy) != 41 {
		Te.Errorf("expected 41 active families each way, got %d and %d", len(normal), len(legacy))
	}
	for _, f := range legacy {
		if f.ID == CHPi || f.ID == NHPi || f.ID == OHPi {
			Te.Errorf("%s should be replaced by its legacy version", f.Key)
		}
	}
	fmt.Println(Keys())
}

func TestNormalize(Te *testing.T) {
	cases := map[string]string{
		"Dipo_12_40": "Dipo",
		"Zn_O":       "Zn_X",
		"Cl_N":       "Cl_X",
		"Hal_Cl_O":   "Hal_Cl_O",
		"CH_Hal_Cl":  "CH_Hal_Cl",
		"HB_NH_O":    "HB_NH_O",
	}
	for in, out := range cases {
		if r := Normalize(in); r != out {
			Te.Errorf("Normalize(%s) = %s, expected %s", in, r, out)
		}
	}
}

func TestConfig(Te *testing.T) {
	C := DefaultConfig()
	if err := C.Validate(); err != nil {
		Te.Fatal(err)
	}
	var cerr *ConfigurationError
	if err := C.Set("HB_NH_(N,O)", []float64{3.5, 120}); !errors.As(err, &cerr) {
		Te.Errorf("expected a ConfigurationError for a wrong count, got %v", err)
	} else {
		fmt.Println(err)
	}
	if err := C.Set("NOPE", nil); !errors.As(err, &cerr) || cerr.Key() != "NOPE" {
		Te.Errorf("expected a ConfigurationError for an unknown key, got %v", err)
	}
	if err := C.SetNamed("CH_N", map[string]float64{"angle1": 190}); !errors.As(err, &cerr) || cerr.Param() != "angle1" {
		Te.Errorf("expected an out of range angle error, got %v", err)
	}
	if err := C.SetNamed("vdW", map[string]float64{"dist1": -1}); !errors.As(err, &cerr) {
		Te.Errorf("expected a negative distance error, got %v", err)
	}
	if err := C.SetNamed("PI_PI", map[string]float64{"coef": 1}); !errors.As(err, &cerr) {
		Te.Errorf("expected an unknown parameter error, got %v", err)
	}
	if err := C.SetHydrogens("Dipo", "sometimes"); !errors.As(err, &cerr) {
		Te.Errorf("expected a hydrogen mode error, got %v", err)
	}
	if err := C.SetHydrogens("vdW", "add"); !errors.As(err, &cerr) {
		Te.Errorf("only Dipo takes a hydrogen mode, got %v", err)
	}
	//the failed calls must not have changed anything
	if C.Params(CHN).V(3) != 160 || C.Params(VdW).V(2) != 2.4 {
		Te.Error("a failed call modified the configuration")
	}
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"dist": 3.2, "angle_min": 130}); err != nil {
		Te.Fatal(err)
	}
	P := C.Params(HBNH)
	if P.V(0) != 3.2 || P.V(1) != 130 || P.V(2) != 180 {
		Te.Errorf("unexpected thresholds %v", P.T)
	}
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"acc_angle_min": 170, "acc_angle_max": 100}); err != nil {
		Te.Fatal(err)
	}
	if err := C.Validate(); !errors.As(err, &cerr) {
		Te.Errorf("expected Validate to reject min > max, got %v", err)
	}
	C = DefaultConfig()
	if !C.Params(VdW).T[3].Strict {
		Te.Error("vdW dist2 should be strict by default")
	}
	if err := C.SetStrict("vdW", []string{"dist1"}); err != nil {
		Te.Fatal(err)
	}
	if C.Params(VdW).T[3].Strict || !C.Params(VdW).T[2].Strict {
		Te.Error("SetStrict should replace the default strict set")
	}
	if DefaultConfig().Params(VdW).T[2].Strict {
		Te.Error("configurations should not share thresholds")
	}
}

func TestReach(Te *testing.T) {
	C := DefaultConfig()
	R := nci.Radii{"C": 1.7, "O": 1.52}
	//the largest buffer is 1.0 (PI_PI, XH_PI, S_PI)
	want := 1.0 + 2*1.7
	if r := C.Reach(R, Active(false)); math.Abs(r-want) > 1e-9 {
		Te.Errorf("expected reach %v, got %v", want, r)
	}
	if err := C.SetNamed("HB_NH_(N,O)", map[string]float64{"dist": 6}); err != nil {
		Te.Fatal(err)
	}
	if r := C.Reach(R, Active(false)); r != 6 {
		Te.Errorf("an absolute distance should set the reach, got %v", r)
	}
}
