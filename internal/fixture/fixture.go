/*
 * fixture.go, part of gonci.
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

//Package fixture builds small molecules in code, for tests.
package fixture

import (
	"math"

	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/r3"
)

//Builder accumulates atoms and bonds. Atoms get consecutive IDs starting at 1.
type Builder struct {
	atoms []nci.Atom
	bonds []nci.Bond
	resn  string
	resi  int
	chain string
}

//New returns a Builder whose first residue is LIG 1.
func New() *Builder {
	return &Builder{resn: "LIG", resi: 1, chain: "A"}
}

//Residue sets the residue for the atoms added next.
func (B *Builder) Residue(name string, number int) *Builder {
	B.resn = name
	B.resi = number
	return B
}

//Add adds an atom and returns its index. Hydrogens get a charge only if q is not 0.
func (B *Builder) Add(name, typ string, x, y, z, q float64) int {
	i := len(B.atoms)
	B.atoms = append(B.atoms, nci.Atom{
		ID:        i + 1,
		Name:      name,
		Type:      typ,
		Coord:     r3.Vec{X: x, Y: y, Z: z},
		Charge:    q,
		HasCharge: true,
		ResName:   B.resn,
		ResNumber: B.resi,
		Chain:     B.chain,
	})
	return i
}

//AddVec is like Add, taking the position as a vector.
func (B *Builder) AddVec(name, typ string, p r3.Vec, q float64) int {
	return B.Add(name, typ, p.X, p.Y, p.Z, q)
}

//Bond bonds the atoms a and b with a single bond.
func (B *Builder) Bond(a, b int) {
	B.BondOrder(a, b, "1")
}

//BondOrder bonds the atoms a and b with the given bond order.
func (B *Builder) BondOrder(a, b int, order string) {
	B.bonds = append(B.bonds, nci.Bond{At1: a, At2: b, Order: order})
}

//Coord returns the position of atom i.
func (B *Builder) Coord(i int) r3.Vec {
	return B.atoms[i].Coord
}

//Atoms returns the atoms added so far.
func (B *Builder) Atoms() []nci.Atom {
	return B.atoms
}

//Bonds returns the bonds added so far.
func (B *Builder) Bonds() []nci.Bond {
	return B.bonds
}

//Build returns the molecule with the default selection (ligand LIG, solvent S1 HOH).
func (B *Builder) Build() (*nci.Molecule, error) {
	return nci.NewMolecule("test", B.atoms, B.bonds, Selection())
}

//MustBuild is like Build but panics on error.
func (B *Builder) MustBuild() *nci.Molecule {
	M, err := B.Build()
	if err != nil {
		panic(err)
	}
	return M
}

//Selection returns the selection used by Build.
func Selection() nci.Selection {
	return nci.Selection{
		Ligand:  []string{"LIG"},
		Solvent: []nci.SolventClass{{Name: "S1", Residues: []string{"HOH"}}},
	}
}

//Methane adds a CH4 centered at c and returns the index of the carbon.
//One hydrogen points along +X.
func (B *Builder) Methane(c r3.Vec) int {
	C := B.AddVec("C", "C.3", c, -0.2)
	dirs := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: -0.3333, Y: 0.9428, Z: 0},
		{X: -0.3333, Y: -0.4714, Z: 0.8165},
		{X: -0.3333, Y: -0.4714, Z: -0.8165},
	}
	for _, d := range dirs[1:] {
		h := B.AddVec("H", "H", r3.Add(c, r3.Scale(1.09, d)), 0.05)
		B.Bond(C, h)
	}
	h := B.AddVec("H", "H", r3.Add(c, r3.Scale(1.09, dirs[0])), 0.05)
	B.Bond(C, h)
	return C
}

//Benzene adds a benzene ring in a plane parallel to XY, centered at c,
//and returns the indexes of the six ring carbons.
func (B *Builder) Benzene(c r3.Vec) []int {
	ring := make([]int, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		d := r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
		ring[i] = B.AddVec("C", "C.ar", r3.Add(c, r3.Scale(1.39, d)), -0.1)
		h := B.AddVec("H", "H", r3.Add(c, r3.Scale(2.47, d)), 0.1)
		B.Bond(ring[i], h)
	}
	for i := 0; i < 6; i++ {
		B.BondOrder(ring[i], ring[(i+1)%6], "ar")
	}
	return ring
}

//Water adds a water molecule with the oxygen at o, in the XY plane,
//with the hydrogens pointing away from dir.
//It returns the index of the oxygen.
func (B *Builder) Water(o, dir r3.Vec) int {
	O := B.AddVec("O", "O.3", o, -0.8)
	u := r3.Unit(dir)
	perp := r3.Unit(r3.Cross(u, r3.Vec{Z: 1}))
	if r3.Norm(r3.Cross(u, r3.Vec{Z: 1})) < 1e-6 {
		perp = r3.Vec{X: 1}
	}
	//104.5 degrees H-O-H, bisector along -u.
	half := 52.25 * math.Pi / 180
	for _, s := range []float64{1, -1} {
		d := r3.Add(r3.Scale(-math.Cos(half), u), r3.Scale(s*math.Sin(half), perp))
		h := B.AddVec("H", "H", r3.Add(o, r3.Scale(0.96, d)), 0.4)
		B.Bond(O, h)
	}
	return O
}
