/*
 * atomicdata.go, part of gonci.
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
	"sort"
	"strings"
)

//A map between symbols and van der Waals radii, in A.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
	"Ni": 1.63,
}

//Radii maps element symbols to van der Waals radii (A).
type Radii map[string]float64

//DefaultRadii returns a copy of the built-in van der Waals radii.
func DefaultRadii() Radii {
	r := make(Radii, len(symbolVdwrad))
	for k, v := range symbolVdwrad {
		r[k] = v
	}
	return r
}

//Merge returns a copy of R where the values in other take precedence.
func (R Radii) Merge(other map[string]float64) Radii {
	r := make(Radii, len(R)+len(other))
	for k, v := range R {
		r[k] = v
	}
	for k, v := range other {
		r[k] = v
	}
	return r
}

//Sum returns the sum of the radii of the elements a and b. The second value
//is false if any of them has no radius.
func (R Radii) Sum(a, b string) (float64, bool) {
	ra, ok1 := R[a]
	rb, ok2 := R[b]
	return ra + rb, ok1 && ok2
}

//Max returns the largest radius in R.
func (R Radii) Max() float64 {
	var max float64
	for _, v := range R {
		if v > max {
			max = v
		}
	}
	return max
}

//Symbols returns the elements in R, sorted.
func (R Radii) Symbols() []string {
	ret := make([]string, 0, len(R))
	for k := range R {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Types that can be part of a pi system.
var PiTypes = NewTypeSet("C.ar", "N.ar", "C.2", "N.2", "N.pl3", "O.3", "S.3", "N.am")

//Types that can be the negative end of a bond dipole.
var DipoleHeadTypes = NewTypeSet("O.2", "O.co2", "N.1", "S.2", "F", "Cl", "Br", "I")

//Types that can be the positive end of a bond dipole.
var DipoleTailTypes = NewTypeSet("C.2", "C.1", "C.ar", "S.o2", "S.o", "P.3")

//Metals that coordinate acceptors.
var Metals = NewTypeSet("Fe", "Zn", "Ca", "Mg", "Ni")

//Unbonded monoatomic ions.
var Ions = NewTypeSet("Na", "K", "Cl")

//Halogens that can form halogen bonds
var Halogens = NewTypeSet("Cl", "Br", "I")

//The number of bonds an atom of these types must
//have. An atom with less is missing hydrogens.
var typeValence = map[string]int{
	"C.3":   4,
	"N.4":   4,
	"C.2":   3,
	"C.ar":  3,
	"N.am":  3,
	"N.pl3": 3,
	"C.1":   2,
	"O.3":   2,
	"O.t3p": 2,
	"O.spc": 2,
}

//Element returns the element symbol encoded in a Tripos atom type,
//i.e. "C.ar" gives "C", "CL" gives "Cl".
func Element(tripos string) string {
	sym := tripos
	if i := strings.Index(tripos, "."); i >= 0 {
		sym = tripos[:i]
	}
	if len(sym) == 0 {
		return ""
	}
	return strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
}
