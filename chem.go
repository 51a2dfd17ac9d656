/*
 * chem.go, part of gonci.
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
	"fmt"
	"sort"
	"strings"

	"github.com/rmera/gonci/chemgraph"
	"gonum.org/v1/gonum/spatial/r3"
)

//Class is the kind of molecule an atom belongs to.
type Class string

const (
	Ligand     Class = "L"
	Protein    Class = "Pro"
	Unassigned Class = ""
)

//IsSolvent returns true for solvent classes (S1, S2...).
func (C Class) IsSolvent() bool {
	return strings.HasPrefix(string(C), "S")
}

//Atom contains the information of one atom. The Index and Residue fields
//are set when the Molecule is built.
type Atom struct {
	Index     int
	ID        int //serial number in the input file
	Name      string
	Type      string //Tripos atom type
	Symbol    string
	Coord     r3.Vec
	Charge    float64
	HasCharge bool
	ResName   string
	ResNumber int
	Chain     string
	Residue   int
}

//Bond joins the atoms with indexes At1 and At2.
type Bond struct {
	At1, At2 int
	Order    string //"1", "2", "ar", "am"...
}

//Neighbour is a bonded atom and the order of the bond to it.
type Neighbour struct {
	Atom  int
	Order string
}

//Residue is a set of atoms sharing a substructure.
type Residue struct {
	Name   string
	Number int
	Chain  string
	Class  Class
	Atoms  []int
}

//Label returns the residue as name + number, and the chain, if any, after a colon.
func (R *Residue) Label() string {
	if R.Chain == "" {
		return fmt.Sprintf("%s%d", R.Name, R.Number)
	}
	return fmt.Sprintf("%s%d:%s", R.Name, R.Number, R.Chain)
}

//SolventClass is a named group of solvent residue names.
type SolventClass struct {
	Name     string //S1, S2...
	Residues []string
}

//Selection assigns residues to the ligand, the solvent classes and the protein.
//If Protein is empty, every residue that is not ligand or solvent is protein.
type Selection struct {
	Ligand  []string
	Solvent []SolventClass
	Protein []string
}

//Classify returns the class for the residue name resn.
func (S Selection) Classify(resn string) Class {
	for _, v := range S.Ligand {
		if v == resn {
			return Ligand
		}
	}
	for _, s := range S.Solvent {
		for _, v := range s.Residues {
			if v == resn {
				return Class(s.Name)
			}
		}
	}
	if len(S.Protein) == 0 {
		return Protein
	}
	for _, v := range S.Protein {
		if v == resn {
			return Protein
		}
	}
	return Unassigned
}

//SolventNames returns the names of the solvent classes, in order.
func (S Selection) SolventNames() []string {
	ret := make([]string, 0, len(S.Solvent))
	for _, v := range S.Solvent {
		ret = append(ret, v.Name)
	}
	return ret
}

//Molecule is an immutable arena of atoms, with their bonds, residues, rings and roles.
type Molecule struct {
	Name     string
	Atoms    []Atom
	Bonds    []Bond
	Residues []Residue
	Rings    []Ring
	Sel      Selection
	nbrs     [][]Neighbour
	roles    []Role
	ringsof  [][]int
	topology *chemgraph.Topology
}

//NewMolecule builds a Molecule from the given atoms and bonds. In bonds,
//At1 and At2 are indexes in atoms. Residues are assigned a class with sel.
//It returns a *StructureError if the structure can't be used.
func NewMolecule(name string, atoms []Atom, bonds []Bond, sel Selection) (*Molecule, error) {
	M := &Molecule{Name: name, Atoms: make([]Atom, len(atoms)), Sel: sel}
	copy(M.Atoms, atoms)
	ids := make(map[int]int, len(atoms))
	type reskey struct {
		num   int
		name  string
		chain string
	}
	resindex := make(map[reskey]int)
	for i := range M.Atoms {
		at := &M.Atoms[i]
		at.Index = i
		if at.Symbol == "" {
			at.Symbol = Element(at.Type)
		}
		if j, ok := ids[at.ID]; ok {
			return nil, NewStructureError("duplicated atom ID", at.ResName, M.Atoms[j].ID)
		}
		ids[at.ID] = i
		k := reskey{at.ResNumber, at.ResName, at.Chain}
		r, ok := resindex[k]
		if !ok {
			r = len(M.Residues)
			resindex[k] = r
			M.Residues = append(M.Residues, Residue{Name: at.ResName, Number: at.ResNumber, Chain: at.Chain, Class: sel.Classify(at.ResName)})
		}
		at.Residue = r
		M.Residues[r].Atoms = append(M.Residues[r].Atoms, i)
	}
	M.nbrs = make([][]Neighbour, len(M.Atoms))
	for _, b := range bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= len(M.Atoms) || b.At2 >= len(M.Atoms) {
			return nil, NewStructureError(fmt.Sprintf("bond between non-existent atoms %d and %d", b.At1, b.At2), "")
		}
		if b.At1 == b.At2 {
			return nil, NewStructureError("atom bonded to itself", M.Atoms[b.At1].ResName, M.Atoms[b.At1].ID)
		}
		if M.bonded(b.At1, b.At2) {
			continue
		}
		M.Bonds = append(M.Bonds, b)
		M.nbrs[b.At1] = append(M.nbrs[b.At1], Neighbour{b.At2, b.Order})
		M.nbrs[b.At2] = append(M.nbrs[b.At2], Neighbour{b.At1, b.Order})
	}
	for i := range M.nbrs {
		sort.Slice(M.nbrs[i], func(a, b int) bool { return M.nbrs[i][a].Atom < M.nbrs[i][b].Atom })
	}
	if err := M.check(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	M.topology = chemgraph.New(M, nil)
	M.Rings = findRings(M)
	M.ringsof = make([][]int, len(M.Atoms))
	for i, r := range M.Rings {
		for _, a := range r.Atoms {
			M.ringsof[a] = append(M.ringsof[a], i)
		}
	}
	M.roles = ClassifyRoles(M)
	return M, nil
}

//check verifies that the structure has a ligand, hydrogens and charges.
func (M *Molecule) check() error {
	if len(M.Ligand()) == 0 {
		return NewStructureError(fmt.Sprintf("no atom belongs to the ligand residues %v", M.Sel.Ligand), "")
	}
	hydrogens := 0
	for i := range M.Atoms {
		at := &M.Atoms[i]
		if at.Symbol == "H" {
			hydrogens++
			if len(M.nbrs[i]) > 1 {
				return NewStructureError("hydrogen with more than one bond", at.ResName, at.ID)
			}
		}
	}
	if hydrogens == 0 {
		return NewStructureError("the structure has no hydrogens", "")
	}
	for i := range M.Atoms {
		at := &M.Atoms[i]
		if M.Class(i) == Unassigned {
			continue
		}
		res := M.Residues[at.Residue].Label()
		if at.Symbol != "H" && !at.HasCharge {
			return NewStructureError(fmt.Sprintf("atom %s has no partial charge", at.Name), res, at.ID)
		}
		if v, ok := typeValence[at.Type]; ok && len(M.nbrs[i]) < v {
			return NewStructureError(fmt.Sprintf("atom %s (%s) has %d bonds, %d expected. Missing hydrogens?", at.Name, at.Type, len(M.nbrs[i]), v), res, at.ID)
		}
	}
	return nil
}

//Len returns the number of atoms.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns a pointer to the atom with index i.
func (M *Molecule) Atom(i int) *Atom {
	return &M.Atoms[i]
}

//Coord returns the coordinates of atom i.
func (M *Molecule) Coord(i int) r3.Vec {
	return M.Atoms[i].Coord
}

//Res returns the residue of atom i.
func (M *Molecule) Res(i int) *Residue {
	return &M.Residues[M.Atoms[i].Residue]
}

//Class returns the class of the residue of atom i.
func (M *Molecule) Class(i int) Class {
	return M.Residues[M.Atoms[i].Residue].Class
}

//Roles returns the chemical roles of atom i.
func (M *Molecule) Roles(i int) Role {
	return M.roles[i]
}

//RingsOf returns the indexes (in M.Rings) of the rings containing atom i.
func (M *Molecule) RingsOf(i int) []int {
	return M.ringsof[i]
}

//ByClass returns the indexes of the atoms whose residue matches the given test.
func (M *Molecule) ByClass(test func(Class) bool) []int {
	ret := make([]int, 0, len(M.Atoms)/4)
	for i := range M.Atoms {
		if test(M.Class(i)) {
			ret = append(ret, i)
		}
	}
	return ret
}

//Ligand returns the indexes of the ligand atoms.
func (M *Molecule) Ligand() []int {
	return M.ByClass(func(c Class) bool { return c == Ligand })
}

//Protein returns the indexes of the protein atoms.
func (M *Molecule) Protein() []int {
	return M.ByClass(func(c Class) bool { return c == Protein })
}

//Solvent returns the indexes of the solvent atoms.
func (M *Molecule) Solvent() []int {
	return M.ByClass(func(c Class) bool { return c.IsSolvent() })
}

//SameResidue returns true if atoms a and b belong to the same residue.
func (M *Molecule) SameResidue(a, b int) bool {
	return M.Atoms[a].Residue == M.Atoms[b].Residue
}

//LigandNames returns the sorted residue names of the ligand.
func (M *Molecule) LigandNames() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 1)
	for _, r := range M.Residues {
		if r.Class == Ligand && !seen[r.Name] {
			seen[r.Name] = true
			ret = append(ret, r.Name)
		}
	}
	sort.Strings(ret)
	return ret
}
