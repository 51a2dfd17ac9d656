/*
 * chem_test.go, part of gonci.
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

package nci_test

import (
	"errors"
	"fmt"
	"testing"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/internal/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestMoleculeRingsAndRoles(Te *testing.T) {
	B := fixture.New()
	ring := B.Benzene(r3.Vec{})
	B.Residue("HOH", 2)
	w := B.Water(r3.Vec{X: 6}, r3.Vec{X: -1})
	B.Residue("ALA", 3)
	c := B.Methane(r3.Vec{Y: 7})
	M, err := B.Build()
	if err != nil {
		Te.Fatal(err)
	}
	if len(M.Rings) != 1 {
		Te.Fatalf("expected 1 ring, got %d", len(M.Rings))
	}
	r := M.Rings[0]
	fmt.Println("ring:", r.Atoms, r.Centroid, r.Normal, r.Aromatic)
	if !r.Aromatic || r.Degenerate || len(r.Atoms) != 6 {
		Te.Errorf("unexpected ring %+v", r)
	}
	if d := nci.Distance(r.Centroid, r3.Vec{}); d > 1e-6 {
		Te.Errorf("centroid should be at the origin, got %v", r.Centroid)
	}
	if !M.Roles(ring[0]).Has(nci.RolePi) || !M.Roles(ring[0]).Has(nci.RoleCHDonor) {
		Te.Errorf("ring carbon roles: %s", M.Roles(ring[0]))
	}
	if !M.Roles(w).Has(nci.RoleHDonor) || !M.Roles(w).Has(nci.RoleHAcceptor) {
		Te.Errorf("water roles: %s", M.Roles(w))
	}
	if M.Class(w) != "S1" || M.Class(c) != nci.Protein || M.Class(ring[0]) != nci.Ligand {
		Te.Errorf("wrong classes %s %s %s", M.Class(w), M.Class(c), M.Class(ring[0]))
	}
	if len(M.Ligand()) != 12 || len(M.Solvent()) != 3 || len(M.Protein()) != 5 {
		Te.Errorf("wrong partition %d %d %d", len(M.Ligand()), len(M.Solvent()), len(M.Protein()))
	}
	if h := M.BondPath(ring[0], ring[3], 3); h != 3 {
		Te.Errorf("expected 3 bonds across the ring, got %d", h)
	}
}

func TestStructureErrors(Te *testing.T) {
	var serr *nci.StructureError
	//no ligand
	B := fixture.New().Residue("ALA", 1)
	B.Methane(r3.Vec{})
	if _, err := B.Build(); !errors.As(err, &serr) {
		Te.Errorf("expected a StructureError for a missing ligand, got %v", err)
	} else {
		fmt.Println(err)
	}
	//missing hydrogens: a C.3 with a single bond.
	B = fixture.New()
	c := B.Add("C1", "C.3", 0, 0, 0, 0)
	h := B.Add("H1", "H", 1.09, 0, 0, 0.1)
	B.Bond(c, h)
	if _, err := B.Build(); !errors.As(err, &serr) {
		Te.Errorf("expected a StructureError for missing hydrogens, got %v", err)
	} else {
		fmt.Println(err, serr.Atoms())
	}
	//no charges
	B = fixture.New()
	B.Methane(r3.Vec{})
	atoms := append([]nci.Atom(nil), B.Atoms()...)
	atoms[0].HasCharge = false
	if _, err := nci.NewMolecule("x", atoms, B.Bonds(), fixture.Selection()); !errors.As(err, &serr) {
		Te.Errorf("expected a StructureError for missing charges, got %v", err)
	}
	//self-bond
	B = fixture.New()
	c = B.Methane(r3.Vec{})
	B.Bond(c, c)
	if _, err := B.Build(); !errors.As(err, &serr) {
		Te.Errorf("expected a StructureError for a self bond, got %v", err)
	}
}

func TestElement(Te *testing.T) {
	for in, out := range map[string]string{"C.ar": "C", "CL": "Cl", "Zn": "Zn", "O.t3p": "O", "H": "H"} {
		if e := nci.Element(in); e != out {
			Te.Errorf("Element(%s) = %s, expected %s", in, e, out)
		}
	}
}
