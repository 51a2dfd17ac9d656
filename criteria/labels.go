/*
 * labels.go, part of gonci.
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
	"strings"
)

var nan = math.NaN()

//DipolePrefix starts the labels of dipole-dipole interactions, which are
//followed by the IDs of the two atoms that define the dipole pair.
const DipolePrefix = "Dipo"

//elements whose interactions are labelled only by the element.
var xElements = map[string]bool{"Fe": true, "Zn": true, "Ca": true, "Mg": true, "Ni": true, "Na": true, "K": true, "Cl": true}

//Normalize returns the canonical type for an interaction label:
//"Dipo_12_40" gives "Dipo", "Zn_O" gives "Zn_X". Other labels are returned unchanged.
func Normalize(label string) string {
	if IsDipole(label) {
		return DipolePrefix
	}
	tok := label
	if i := strings.Index(label, "_"); i >= 0 {
		tok = label[:i]
	}
	if xElements[tok] {
		return tok + "_X"
	}
	return label
}

//IsDipole returns true for dipole-dipole labels.
func IsDipole(label string) bool {
	return strings.HasPrefix(label, DipolePrefix)
}

//Labels returns the canonical interaction types that the families can emit,
//in evaluation order. There are 65 of them.
func Labels() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 65)
	for _, f := range registry {
		for _, l := range f.Labels {
			if !seen[l] {
				seen[l] = true
				ret = append(ret, l)
			}
		}
	}
	return ret
}
