/*
 * mol2.go, part of gonci.
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

//Package mol2 reads Tripos mol2 files, plain or compressed with gzip or zstd,
//into the atoms and bonds needed to build a nci.Molecule.
package mol2

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	nci "github.com/rmera/gonci"
	"gonum.org/v1/gonum/spatial/r3"
)

//File is the content of the first molecule in a mol2 file.
type File struct {
	Name       string
	ChargeType string //as given in the MOLECULE record, "NO_CHARGES" if there are none
	Atoms      []nci.Atom
	Bonds      []nci.Bond //At1 and At2 are indexes in Atoms
}

//Molecule builds a nci.Molecule from the file, using sel to assign the residues.
func (F *File) Molecule(sel nci.Selection) (*nci.Molecule, error) {
	M, err := nci.NewMolecule(F.Name, F.Atoms, F.Bonds, sel)
	if err != nil {
		if e, ok := err.(nci.Error); ok {
			e.Decorate("mol2.Molecule")
		}
		return nil, err
	}
	return M, nil
}

//zstd decoders don't close with an error
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Open opens the file name for reading, decompressing it if the name ends in
//.gz (gzip) or .zst (zstd).
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(name, 0, "Open", "%s", err.Error())
	}
	lower := strings.ToLower(name)
	var dec io.ReadCloser
	switch {
	case strings.HasSuffix(lower, ".gz"):
		dec, err = gzip.NewReader(bufio.NewReader(f))
	case strings.HasSuffix(lower, ".zst"):
		var z *zstd.Decoder
		z, err = zstd.NewReader(bufio.NewReader(f))
		if err == nil {
			dec = zstdCloser{z}
		}
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, newError(name, 0, "Open", "can't decompress: %s", err.Error())
	}
	return &multiCloser{Reader: dec, closers: []io.Closer{dec, f}}, nil
}

//Read reads the first molecule of the mol2 file name.
func Read(name string) (*File, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	F, err := Parse(r, name)
	if err != nil {
		err.(*Error).Decorate("Read")
		return nil, err
	}
	return F, nil
}

const (
	secNone = iota
	secMolecule
	secAtom
	secBond
	secSubstructure
	secOther
)

//Parse reads the first molecule from r. name is only used in error messages.
//Residue names carrying their number ("ALA12") are split in name and number.
//Chains are taken from the SUBSTRUCTURE records, when present.
func Parse(r io.Reader, name string) (*File, error) {
	F := &File{Name: name}
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	section := secNone
	molline := 0
	molecules := 0
	ids := make(map[int]int)
	substIDs := make([]int, 0)
	chains := make(map[int]string)
	type rawbond struct {
		a1, a2 int
		order  string
		line   int
	}
	var bonds []rawbond
	lineno := 0
scan:
	for in.Scan() {
		lineno++
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@<TRIPOS>") {
			switch strings.TrimPrefix(line, "@<TRIPOS>") {
			case "MOLECULE":
				molecules++
				section = secMolecule
				molline = 0
			case "ATOM":
				section = secAtom
			case "BOND":
				section = secBond
			case "SUBSTRUCTURE":
				section = secSubstructure
			default:
				section = secOther
			}
			if molecules > 1 {
				break scan
			}
			continue
		}
		fields := strings.Fields(line)
		switch section {
		case secMolecule:
			molline++
			switch molline {
			case 1:
				F.Name = line
			case 4:
				F.ChargeType = strings.ToUpper(fields[0])
			}
		case secAtom:
			at, substID, err := parseAtom(fields)
			if err != nil {
				return nil, newError(name, lineno, "Parse", "bad ATOM record: %s", err.Error())
			}
			if _, ok := ids[at.ID]; ok {
				return nil, newError(name, lineno, "Parse", "duplicated atom ID %d", at.ID)
			}
			ids[at.ID] = len(F.Atoms)
			F.Atoms = append(F.Atoms, at)
			substIDs = append(substIDs, substID)
		case secBond:
			if len(fields) < 4 {
				return nil, newError(name, lineno, "Parse", "BOND record with %d fields", len(fields))
			}
			a1, err1 := strconv.Atoi(fields[1])
			a2, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, newError(name, lineno, "Parse", "can't read the atoms of bond %s", fields[0])
			}
			bonds = append(bonds, rawbond{a1, a2, fields[3], lineno})
		case secSubstructure:
			if len(fields) < 6 {
				continue
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, newError(name, lineno, "Parse", "bad SUBSTRUCTURE id %s", fields[0])
			}
			if c := fields[5]; c != "****" {
				chains[id] = c
			}
		}
	}
	if err := in.Err(); err != nil {
		return nil, newError(name, lineno, "Parse", "%s", err.Error())
	}
	if len(F.Atoms) == 0 {
		return nil, newError(name, 0, "Parse", "no atoms found")
	}
	noCharges := F.ChargeType == "NO_CHARGES"
	for i := range F.Atoms {
		if noCharges {
			F.Atoms[i].HasCharge = false
			F.Atoms[i].Charge = 0
		}
		if c, ok := chains[substIDs[i]]; ok {
			F.Atoms[i].Chain = c
		}
	}
	F.Bonds = make([]nci.Bond, 0, len(bonds))
	for _, b := range bonds {
		i1, ok1 := ids[b.a1]
		i2, ok2 := ids[b.a2]
		if !ok1 || !ok2 {
			return nil, newError(name, b.line, "Parse", "bond between unknown atoms %d and %d", b.a1, b.a2)
		}
		F.Bonds = append(F.Bonds, nci.Bond{At1: i1, At2: i2, Order: b.order})
	}
	return F, nil
}

//parseAtom reads one ATOM record:
//atom_id atom_name x y z atom_type [subst_id [subst_name [charge [status_bit]]]]
func parseAtom(fields []string) (nci.Atom, int, error) {
	var at nci.Atom
	if len(fields) < 6 {
		return at, 0, strconv.ErrSyntax
	}
	var err error
	if at.ID, err = strconv.Atoi(fields[0]); err != nil {
		return at, 0, err
	}
	at.Name = fields[1]
	var c [3]float64
	for i := range c {
		if c[i], err = strconv.ParseFloat(fields[2+i], 64); err != nil {
			return at, 0, err
		}
	}
	at.Coord = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	at.Type = fields[5]
	substID := 1
	if len(fields) > 6 {
		if substID, err = strconv.Atoi(fields[6]); err != nil {
			return at, 0, err
		}
	}
	subst := ""
	if len(fields) > 7 {
		subst = fields[7]
	}
	at.ResName, at.ResNumber = splitResidue(subst, substID)
	if len(fields) > 8 {
		if at.Charge, err = strconv.ParseFloat(fields[8], 64); err != nil {
			return at, 0, err
		}
		at.HasCharge = true
	}
	return at, substID, nil
}

//splitResidue returns the residue name and number for a substructure name
//such as "ALA12". If the name carries no number, the substructure ID is used.
func splitResidue(subst string, substID int) (string, int) {
	i := len(subst)
	for i > 0 && unicode.IsDigit(rune(subst[i-1])) {
		i--
	}
	if i == 0 || i == len(subst) {
		return subst, substID
	}
	n, err := strconv.Atoi(subst[i:])
	if err != nil {
		return subst, substID
	}
	return subst[:i], n
}
