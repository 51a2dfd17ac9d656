/*
 * raw.go, part of gonci.
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

package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/engine"
)

//rawLabel returns the label as printed in the raw list: dipoles lose their tag.
func rawLabel(l string) string {
	if criteria.IsDipole(l) {
		return criteria.DipolePrefix
	}
	return l
}

func values(v []float64) string {
	s := make([]string, 0, len(v))
	for _, f := range v {
		if !math.IsNaN(f) {
			s = append(s, fmt.Sprintf("%.4f", f))
		}
	}
	return strings.Join(s, " ")
}

//slotLetter returns the molecule letter for the atom slot i of an instance.
func slotLetter(I *engine.Instance, i int) string {
	switch i {
	case 0:
		return "L"
	case 1:
		if I.Pair == engine.LigandProtein {
			return "P"
		}
		return "S"
	case 2:
		return "S"
	}
	return "P"
}

//WriteRaw writes the raw interaction list of the instances of M, read from the
//file input.
//The list has a header with the input file, the ligand residue names and the
//solvents, followed by one block per instance, sorted by label. Each block has
//the pair type, the label and values of each half, and every atom with its
//bonded neighbours.
func WriteRaw(w io.Writer, M *nci.Molecule, input string, instances []engine.Instance) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "R %s\n", input)
	fmt.Fprintf(b, "L %s\n", strings.Join(M.LigandNames(), ","))
	if len(M.Sel.Solvent) == 0 {
		fmt.Fprintln(b, "S None")
	}
	for _, s := range M.Sel.Solvent {
		for _, r := range s.Residues {
			fmt.Fprintf(b, "%s %s\n", s.Name, r)
		}
	}
	fmt.Fprintln(b)
	sorted := make([]*engine.Instance, len(instances))
	for i := range instances {
		sorted[i] = &instances[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Label1 < sorted[j].Label1 })
	for _, I := range sorted {
		fmt.Fprintf(b, "K %s\n", I.Pair)
		fmt.Fprintf(b, "I1-2 %s %s\n", rawLabel(I.Label1), values(I.Values1))
		if I.Bridged() {
			fmt.Fprintf(b, "I3-4 %s %s\n", rawLabel(I.Label2), values(I.Values2))
		}
		for i, a := range I.Atoms {
			if a < 0 {
				continue
			}
			m := slotLetter(I, i)
			at := M.Atom(a)
			fmt.Fprintf(b, "%sC%d %s %d %s %d %s\n", m, i+1, at.ResName, at.ResNumber, at.Name, at.ID, at.Type)
			for _, n := range M.BondsOf(a) {
				nb := M.Atom(n.Atom)
				fmt.Fprintf(b, "%sN%d %s %d %s %d %s %s\n", m, i+1, nb.ResName, nb.ResNumber, nb.Name, nb.ID, nb.Type, n.Order)
			}
		}
		fmt.Fprintln(b)
	}
	return b.Flush()
}
