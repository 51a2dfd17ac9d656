/*
 * mol2_test.go, part of gonci.
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

package mol2

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	nci "github.com/rmera/gonci"
)

const sample = `# a methanol, a water and a protein amine
@<TRIPOS>MOLECULE
complex
 11 10 3 0 0
SMALL
USER_CHARGES

@<TRIPOS>ATOM
      1 C1          0.0000    0.0000    0.0000 C.3     1  LIG1       -0.1000
      2 O1          1.4300    0.0000    0.0000 O.3     1  LIG1       -0.6000
      3 H1         -0.3600    1.0300    0.0000 H       1  LIG1        0.1000
      4 H2         -0.3600   -0.5100    0.8900 H       1  LIG1        0.1000
      5 H3         -0.3600   -0.5100   -0.8900 H       1  LIG1        0.1000
      6 HO          1.7500    0.9000    0.0000 H       1  LIG1        0.4000
      7 OW          4.2000    0.0000    0.0000 O.3     2  HOH       -0.8340
      8 HW1         4.5000    0.9000    0.0000 H       2  HOH        0.4170
      9 HW2         4.5000   -0.9000    0.0000 H       2  HOH        0.4170
     10 NZ          7.0000    0.0000    0.0000 N.3     3  LYS15     -0.3000
     11 HZ1         7.3000    0.9000    0.0000 H       3  LYS15      0.3300
@<TRIPOS>BOND
     1     1     2    1
     2     1     3    1
     3     1     4    1
     4     1     5    1
     5     2     6    1
     6     7     8    1
     7     7     9    1
     8    10    11    1
@<TRIPOS>SUBSTRUCTURE
     1 LIG1        1 GROUP             0 ****  ****    0
     2 HOH         7 GROUP             0 W     ****    0
     3 LYS15      10 RESIDUE          15 A     LYS     0
`

func sel() nci.Selection {
	return nci.Selection{Ligand: []string{"LIG"}, Solvent: []nci.SolventClass{{Name: "S1", Residues: []string{"HOH"}}}}
}

func TestParse(Te *testing.T) {
	F, err := Parse(strings.NewReader(sample), "sample.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(F.Name, len(F.Atoms), len(F.Bonds), F.ChargeType)
	if F.Name != "complex" || len(F.Atoms) != 11 || len(F.Bonds) != 8 || F.ChargeType != "USER_CHARGES" {
		Te.Errorf("wrong header or counts: %s %d %d %s", F.Name, len(F.Atoms), len(F.Bonds), F.ChargeType)
	}
	nz := F.Atoms[9]
	if nz.ResName != "LYS" || nz.ResNumber != 15 || nz.Chain != "A" || nz.Type != "N.3" || !nz.HasCharge || nz.Charge != -0.3 {
		Te.Errorf("wrong protein atom %+v", nz)
	}
	if w := F.Atoms[6]; w.ResName != "HOH" || w.ResNumber != 2 || w.Chain != "W" {
		Te.Errorf("wrong water atom %+v", w)
	}
	if l := F.Atoms[0]; l.ResName != "LIG" || l.ResNumber != 1 || l.Chain != "" {
		Te.Errorf("wrong ligand atom %+v", l)
	}
	if b := F.Bonds[7]; b.At1 != 9 || b.At2 != 10 || b.Order != "1" {
		Te.Errorf("bond IDs were not turned into indexes: %+v", b)
	}
	M, err := F.Molecule(sel())
	if err != nil {
		Te.Fatal(err)
	}
	if len(M.Ligand()) != 6 || len(M.Solvent()) != 3 || len(M.Protein()) != 2 {
		Te.Errorf("wrong partition %d %d %d", len(M.Ligand()), len(M.Solvent()), len(M.Protein()))
	}
}

func TestSplitResidue(Te *testing.T) {
	cases := []struct {
		in   string
		id   int
		name string
		num  int
	}{{"ALA12", 3, "ALA", 12}, {"HOH", 7, "HOH", 7}, {"123", 2, "123", 2}, {"", 4, "", 4}}
	for _, c := range cases {
		n, i := splitResidue(c.in, c.id)
		if n != c.name || i != c.num {
			Te.Errorf("splitResidue(%q, %d) = %s %d, expected %s %d", c.in, c.id, n, i, c.name, c.num)
		}
	}
}

func TestCompressed(Te *testing.T) {
	dir := Te.TempDir()
	gzname := filepath.Join(dir, "complex.mol2.gz")
	f, err := os.Create(gzname)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	gz.Write([]byte(sample))
	gz.Close()
	f.Close()
	zname := filepath.Join(dir, "complex.mol2.zst")
	f, err = os.Create(zname)
	if err != nil {
		Te.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	zw.Write([]byte(sample))
	zw.Close()
	f.Close()
	plain := filepath.Join(dir, "complex.mol2")
	if err := os.WriteFile(plain, []byte(sample), 0644); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{plain, gzname, zname} {
		F, err := Read(name)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if len(F.Atoms) != 11 || len(F.Bonds) != 8 {
			Te.Errorf("%s: wrong counts %d %d", name, len(F.Atoms), len(F.Bonds))
		}
	}
}

func TestErrors(Te *testing.T) {
	bad := strings.Replace(sample, "     8    10    11    1", "     8    10    12    1", 1)
	_, err := Parse(strings.NewReader(bad), "bad.mol2")
	var merr *Error
	if !errors.As(err, &merr) || !merr.Critical() || merr.Line() == 0 {
		Te.Errorf("expected a critical error with a line, got %v", err)
	} else {
		fmt.Println(merr)
	}
	bad = strings.Replace(sample, "0.0000 C.3", "x.0000 C.3", 1)
	if _, err = Parse(strings.NewReader(bad), "bad.mol2"); err == nil {
		Te.Error("a bad coordinate should be an error")
	}
	if _, err = Read(filepath.Join(Te.TempDir(), "missing.mol2")); err == nil {
		Te.Error("a missing file should be an error")
	}
	nocharge := strings.Replace(sample, "USER_CHARGES", "NO_CHARGES", 1)
	F, err := Parse(strings.NewReader(nocharge), "nocharge.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Atoms[0].HasCharge {
		Te.Error("NO_CHARGES files should have no charges")
	}
	if _, err := F.Molecule(sel()); err == nil {
		Te.Error("a structure without charges should not build")
	}
}
