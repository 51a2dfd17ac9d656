/*
 * types.go, part of gonci.
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

var (
	nDonorTypes    = nci.NewTypeSet("N.3", "N.2", "N.1", "N.am", "N.pl3", "N.4", "N.ar")
	oDonorTypes    = nci.NewTypeSet("O.3", "O.2", "O.co2", "O.spc", "O.t3p", "O.ar")
	hbAcceptors    = nci.NewTypeSet("O.3", "O.2", "O.co2", "O.spc", "O.t3p", "O.ar", "N.1", "N.2", "N.ar")
	elecDonorTypes = nci.NewTypeSet("O.3", "O.2", "O.co2", "O.spc", "O.t3p", "O.ar", "N.3", "N.2", "N.1", "N.am", "N.pl3", "N.4", "N.ar")

	//atoms that can be bonded to an acceptor, for the acceptor angle.
	acceptorNeighbours = nci.NewTypeSet("C.1", "C.2", "C.3", "C.ar", "C.cat", "N.1", "N.2", "N.3", "N.4", "N.ar", "N.am", "N.pl3", "S.2", "S.3", "S.o2", "S.o", "P.3", "H")

	chDonors    = nci.NewTypeSet("C.1", "C.2", "C.3", "C.cat", "C.ar")
	chNAcceptor = nci.NewTypeSet("N.1", "N.2", "N.ar", "N.am", "N.pl3")
	chSAcceptor = nci.NewTypeSet("S.2", "S.3", "S.ar")
	chOAcceptor = nci.NewTypeSet("O.2", "O.3", "O.co2", "O.ar")

	shDonors     = nci.NewTypeSet("S.3", "S.2", "S.o", "S.o2", "S.ar")
	shNAcceptors = nci.NewTypeSet("N.1", "N.2", "N.ar")
	shOAcceptors = nci.NewTypeSet("O.3", "O.2", "O.co2", "O.spc", "O.t3p", "O.ar")

	vdwExcluded = nci.NewTypeSet("Fe", "Zn", "Ca", "Mg", "Ni", "K", "Na", "H")

	mulpolHeads = nci.NewTypeSet("O.2", "O.co2", "F", "Cl", "Br", "I", "N.1", "S.2")
	mulpolTails = nci.NewTypeSet("C.ar", "C.2", "C.1")

	xhPiDonors     = nci.NewTypeSet("O.3", "O.spc", "O.t3p", "C.3", "C.2", "C.1", "C.ar", "N.3", "N.2", "N.pl3", "N.am", "N.4", "N.ar", "N.1", "S.3", "S.o2", "S.o")
	legacyPiDonors = nci.NewTypeSet("O.3", "O.spc", "O.t3p", "C.3", "C.2", "C.1", "C.ar", "N.3", "N.2", "N.pl3", "N.am", "N.4", "N.ar")

	halAcceptors1 = nci.NewTypeSet("O.2", "O.co2", "N.1", "S.2")                  //one bond
	halAcceptors2 = nci.NewTypeSet("O.3", "O.spc", "O.t3p", "N.2", "N.ar", "S.3") //two bonds

	xhFDonors   = nci.NewTypeSet("C.1", "C.2", "C.3", "C.cat", "C.ar", "N.1", "N.2", "N.3", "N.4", "N.pl3", "N.am", "N.ar", "O.3", "O.spc", "O.t3p", "S.3", "S.o", "S.o2")
	xhHalDonors = nci.NewTypeSet("C.3", "C.2", "C.1", "C.cat", "O.3", "O.spc", "O.t3p", "O.2", "S.3", "S.o", "S.o2", "S.2", "N.3", "N.2", "N.am", "N.pl3", "N.4", "N.ar", "N.1")

	nhsDonors    = nci.NewTypeSet("N.1", "N.2", "N.3", "N.4", "N.am", "N.pl3", "N.ar")
	sAcceptors   = nci.NewTypeSet("S.2", "S.3", "S.ar")
	ohsDonors    = nci.NewTypeSet("O.2", "O.3", "O.co2", "O.ar", "O.spc", "O.t3p")
	shsDonors    = nci.NewTypeSet("S.2", "S.3", "S.o", "S.o2")
	soDonors     = nci.NewTypeSet("S.2", "S.3")
	soAcceptors  = nci.NewTypeSet("O.3", "O.2", "O.co2")
	snAcceptors  = nci.NewTypeSet("N.ar", "N.2")
	metalLigands = nci.NewTypeSet("O.2", "O.co2", "O.3", "N.2", "N.ar", "N.1", "N.3", "N.am", "N.pl3", "S.2", "S.3")
)
