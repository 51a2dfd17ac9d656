/*
 * config.go, part of gonci.
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
	"math"
	"sort"
	"strings"

	nci "github.com/rmera/gonci"
)

//Config holds the thresholds of every family. Families that are not
//set explicitly use their defaults. A Config is read-only once a run starts.
type Config struct {
	params [NFamilies]*Params
}

//DefaultConfig returns a configuration with the default thresholds of all families.
func DefaultConfig() *Config {
	C := new(Config)
	for i, f := range registry {
		C.params[i] = defaultParams(f)
	}
	return C
}

//Params returns the thresholds of the family id.
func (C *Config) Params(id FamilyID) *Params {
	return C.params[id]
}

//Clone returns a deep copy of C.
func (C *Config) Clone() *Config {
	r := new(Config)
	for i, p := range C.params {
		r.params[i] = p.clone()
	}
	return r
}

func (C *Config) family(key string) (*Family, error) {
	F := Lookup(key)
	if F == nil {
		return nil, newConfigError(key, "", "unknown criterion")
	}
	return F, nil
}

//Set replaces all the thresholds of the family key with values, given in the
//order of the family parameters.
func (C *Config) Set(key string, values []float64) error {
	F, err := C.family(key)
	if err != nil {
		return err
	}
	if len(values) != len(F.Params) {
		return newConfigError(key, "", "%d values given, %d expected (%s)", len(values), len(F.Params), strings.Join(paramNames(F), " "))
	}
	P := C.params[F.ID].clone()
	for i, v := range values {
		if err := F.Params[i].check(key, v); err != nil {
			return err
		}
		P.T[i].Value = v
	}
	C.params[F.ID] = P
	return nil
}

//SetNamed replaces the given thresholds of the family key. Thresholds not in
//values keep their current value.
func (C *Config) SetNamed(key string, values map[string]float64) error {
	F, err := C.family(key)
	if err != nil {
		return err
	}
	P := C.params[F.ID].clone()
	//sorted, so the first error reported does not depend on map order
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		i := F.Param(name)
		if i < 0 {
			return newConfigError(key, name, "unknown parameter")
		}
		v := values[name]
		if err := F.Params[i].check(key, v); err != nil {
			return err
		}
		P.T[i].Value = v
	}
	C.params[F.ID] = P
	return nil
}

//SetStrict sets which thresholds of the family key exclude their bound.
//The given names replace the default set of strict thresholds.
func (C *Config) SetStrict(key string, names []string) error {
	F, err := C.family(key)
	if err != nil {
		return err
	}
	P := C.params[F.ID].clone()
	for i := range P.T {
		P.T[i].Strict = false
	}
	for _, name := range names {
		i := F.Param(name)
		if i < 0 {
			return newConfigError(key, name, "unknown parameter")
		}
		P.T[i].Strict = true
	}
	C.params[F.ID] = P
	return nil
}

//SetHydrogens sets the hydrogen mode of the dipole criterion.
func (C *Config) SetHydrogens(key, mode string) error {
	F, err := C.family(key)
	if err != nil {
		return err
	}
	if F.ID != Dipo {
		return newConfigError(key, "hydrogens", "only the %s criterion takes a hydrogen mode", registry[Dipo].Key)
	}
	m, err := ParseHydrogenMode(mode)
	if err != nil {
		return newConfigError(key, "hydrogens", "%s", err.Error())
	}
	P := C.params[F.ID].clone()
	P.Hydrogens = m
	C.params[F.ID] = P
	return nil
}

//Validate checks every threshold against its domain, and that no lower bound
//named X_min is above its X_max.
func (C *Config) Validate() error {
	for _, F := range registry {
		P := C.params[F.ID]
		if P == nil || len(P.T) != len(F.Params) {
			return newConfigError(F.Key, "", "thresholds missing")
		}
		for i, s := range F.Params {
			if err := s.check(F.Key, P.T[i].Value); err != nil {
				return err
			}
			if !strings.HasSuffix(s.Name, "_min") {
				continue
			}
			j := F.Param(strings.TrimSuffix(s.Name, "_min") + "_max")
			if j >= 0 && P.T[i].Value > P.T[j].Value {
				return newConfigError(F.Key, s.Name, "lower bound %v above the upper bound %v", P.T[i].Value, P.T[j].Value)
			}
		}
	}
	return nil
}

//Reach returns the largest distance at which any of the given families can
//accept a pair, for the van der Waals radii R. A family bounded by a buffer can
//reach the buffer plus twice the largest radius in R.
func (C *Config) Reach(R nci.Radii, families []*Family) float64 {
	maxvdw := 2 * R.Max()
	var reach float64
	for _, F := range families {
		t := C.params[F.ID].T[F.Reach].Value
		if F.Params[F.Reach].Kind == Buffer {
			t += maxvdw
		}
		reach = math.Max(reach, t)
	}
	return reach
}

func paramNames(F *Family) []string {
	ret := make([]string, len(F.Params))
	for i, v := range F.Params {
		ret[i] = v.Name
	}
	return ret
}
