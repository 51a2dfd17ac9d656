/*
 * roles.go, part of gonci.
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

import "strings"

//Role is a set of chemical roles an atom can play in a non-covalent interaction.
type Role uint32

const (
	RoleHeavy      Role = 1 << iota //any non-hydrogen atom
	RoleHDonor                      //N, O or S with a bonded hydrogen
	RoleCHDonor                     //C with a bonded hydrogen
	RoleHAcceptor                   //N or O
	RoleSulfur                      //any S
	RolePlanar                      //pi-capable atom type
	RolePi                          //member of a 5- or 6-membered ring
	RoleHalogen                     //bonded Cl, Br or I
	RoleFluorine                    //F
	RoleDipoleHead                  //negative end of a bond dipole
	RoleDipoleTail                  //positive end of a bond dipole
	RoleMetal                       //coordinating metal
	RoleIon                         //unbonded monoatomic ion
	RoleHydrogen                    //H
)

//RoleNone is the empty role set.
const RoleNone Role = 0

var roleNames = []string{"heavy", "hdonor", "chdonor", "hacceptor", "sulfur", "planar", "pi", "halogen", "fluorine", "dipolehead", "dipoletail", "metal", "ion", "hydrogen"}

//Has returns true if R shares at least one role with r.
func (R Role) Has(r Role) bool {
	return R&r != 0
}

func (R Role) String() string {
	var s []string
	for i, n := range roleNames {
		if R&(1<<uint(i)) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

//ClassifyRoles returns the roles of each atom in M. Roles depend only on
//the atom's element, type, bonds, rings and charge, never on other molecules.
func ClassifyRoles(M *Molecule) []Role {
	roles := make([]Role, M.Len())
	for i := range M.Atoms {
		at := &M.Atoms[i]
		var r Role
		sym := at.Symbol
		nH := len(M.Hydrogens(i))
		if sym != "H" {
			r |= RoleHeavy
		} else {
			r |= RoleHydrogen
		}
		switch sym {
		case "C":
			if nH > 0 {
				r |= RoleCHDonor
			}
		case "N", "O":
			r |= RoleHAcceptor
			if nH > 0 {
				r |= RoleHDonor
			}
		case "S":
			r |= RoleSulfur
			if nH > 0 {
				r |= RoleHDonor
			}
		case "F":
			r |= RoleFluorine
		}
		if Halogens.Has(sym) && M.NBonds(i) > 0 {
			r |= RoleHalogen
		}
		if Ions.Has(sym) && M.NBonds(i) == 0 {
			r |= RoleIon
		}
		if Metals.Has(sym) {
			r |= RoleMetal
		}
		if PiTypes.Has(at.Type) || strings.HasSuffix(at.Type, ".ar") {
			r |= RolePlanar
		}
		if len(M.RingsOf(i)) > 0 {
			r |= RolePi
		}
		if DipoleHeadTypes.Has(at.Type) || DipoleHeadTypes.Has(sym) {
			r |= RoleDipoleHead
		}
		if DipoleTailTypes.Has(at.Type) {
			r |= RoleDipoleTail
		}
		roles[i] = r
	}
	return roles
}
