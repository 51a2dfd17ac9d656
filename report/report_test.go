/*
 * report_test.go, part of gonci.
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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/engine"
	"github.com/rmera/gonci/internal/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCreate(Te *testing.T) {
	dir := Te.TempDir()
	text := "L#vdW#Pro,1\n"
	for _, c := range []string{None, Zstd, Gzip} {
		w, name, err := Create(filepath.Join(dir, "count.csv"), c)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := io.WriteString(w, text); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
		f, err := os.Open(name)
		if err != nil {
			Te.Fatal(err)
		}
		var r io.Reader = f
		switch c {
		case Zstd:
			if !strings.HasSuffix(name, ".zst") {
				Te.Errorf("wrong name %s", name)
			}
			d, err := zstd.NewReader(f)
			if err != nil {
				Te.Fatal(err)
			}
			defer d.Close()
			r = d
		case Gzip:
			if !strings.HasSuffix(name, ".gz") {
				Te.Errorf("wrong name %s", name)
			}
			if r, err = gzip.NewReader(f); err != nil {
				Te.Fatal(err)
			}
		}
		got, err := io.ReadAll(r)
		f.Close()
		if err != nil {
			Te.Fatal(err)
		}
		if string(got) != text {
			Te.Errorf("%q: read %q, wrote %q", c, got, text)
		}
	}
	if _, _, err := Create(filepath.Join(dir, "no", "such", "dir"), None); err == nil {
		Te.Error("Create should fail in a missing directory")
	} else {
		var e *Error
		if !errors.As(err, &e) || !e.Critical() {
			Te.Errorf("expected a critical *Error, got %v", err)
		}
		fmt.Println(err, e.Decorate(""))
	}
}

func TestParseCompression(Te *testing.T) {
	for in, out := range map[string]string{"": None, "none": None, "zstd": Zstd, "ZST": Zstd, "gz": Gzip, "gzip": Gzip} {
		c, err := ParseCompression(in)
		if err != nil || c != out {
			Te.Errorf("%q gave %q, %v; expected %q", in, c, err, out)
		}
	}
	if _, err := ParseCompression("bz2"); err == nil {
		Te.Error("bz2 should not be accepted")
	}
}

func TestWriter(Te *testing.T) {
	prefix := filepath.Join(Te.TempDir(), "out")
	W := NewWriter(prefix, Gzip, nil)
	name, err := W.Write("_raw_list.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "R x\n")
		return err
	})
	if err != nil {
		Te.Fatal(err)
	}
	if name != prefix+"_raw_list.txt.gz" {
		Te.Errorf("wrong name %s", name)
	}
	name, err = W.WritePlain(".pml", func(w io.Writer) error { return nil })
	if err != nil || name != prefix+".pml" {
		Te.Errorf("wrong plain file %s, %v", name, err)
	}
	if _, err = W.Write(".bad", func(w io.Writer) error { return fmt.Errorf("broken") }); err == nil {
		Te.Error("the error of the callback should be returned")
	}
	if len(W.Written()) != 2 {
		Te.Errorf("expected 2 files written, got %v", W.Written())
	}
}

func bridgeSample() (*nci.Molecule, []engine.Instance) {
	B := fixture.New()
	N := B.Add("N1", "N.3", 0, 0, 0, -0.5)
	H := B.Add("H1", "H", 1.01, 0, 0, 0.3)
	B.Bond(N, H)
	B.Residue("HOH", 10)
	W := B.Water(r3.Vec{X: 2.9}, r3.Vec{X: -1})
	B.Residue("ALA", 2)
	O := B.Add("O", "O.2", 4, 2, 0, -0.5)
	P := B.Add("P", "P.3", 5, 3, 0, 0.5)
	B.BondOrder(O, P, "2")
	M := B.MustBuild()
	inst := []engine.Instance{
		{Type: "vdW", Label1: "vdW", Pair: engine.LigandProtein, Atoms: [4]int{N, O, -1, -1}, Values1: []float64{3.5, math.NaN(), 0.2}, Water: -1},
		{Type: "HB_NH_O+HB_OH_O", Label1: "HB_NH_O", Label2: "HB_OH_O", Pair: "L-S1-Pro", Atoms: [4]int{N, W, W, O},
			Values1: []float64{2.9, 170}, Values2: []float64{2.8, 169.12346}, Water: 1},
		{Type: "Dipo", Label1: "Dipo_1_6", Pair: engine.LigandProtein, Atoms: [4]int{H, P, -1, -1}, Values1: []float64{3}, Water: -1},
	}
	return M, inst
}

func TestWriteRaw(Te *testing.T) {
	M, inst := bridgeSample()
	var b bytes.Buffer
	if err := WriteRaw(&b, M, "complex.mol2", inst); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	fmt.Print(out)
	blocks := strings.Split(out, "\n\n")
	header := "R complex.mol2\nL LIG\nS1 HOH"
	if blocks[0] != header {
		Te.Errorf("wrong header %q", blocks[0])
	}
	//sorted by label: Dipo_1_6, HB_NH_O, vdW
	expected := []string{
		"K L-Pro\nI1-2 Dipo 3.0000\nLC1 LIG 1 H1 2 H\nLN1 LIG 1 N1 1 N.3 1\nPC2 ALA 2 P 7 P.3\nPN2 ALA 2 O 6 O.2 2",
		"K L-S1-Pro\nI1-2 HB_NH_O 2.9000 170.0000\nI3-4 HB_OH_O 2.8000 169.1235\nLC1 LIG 1 N1 1 N.3\nLN1 LIG 1 H1 2 H 1\n" +
			"SC2 HOH 10 O 3 O.3\nSN2 HOH 10 H 4 H 1\nSN2 HOH 10 H 5 H 1\nSC3 HOH 10 O 3 O.3\nSN3 HOH 10 H 4 H 1\nSN3 HOH 10 H 5 H 1\n" +
			"PC4 ALA 2 O 6 O.2\nPN4 ALA 2 P 7 P.3 2",
		"K L-Pro\nI1-2 vdW 3.5000 0.2000\nLC1 LIG 1 N1 1 N.3\nLN1 LIG 1 H1 2 H 1\nPC2 ALA 2 O 6 O.2\nPN2 ALA 2 P 7 P.3 2",
	}
	if len(blocks) != len(expected)+2 {
		Te.Fatalf("expected %d blocks, got %d", len(expected)+2, len(blocks))
	}
	for i, e := range expected {
		if blocks[i+1] != e {
			Te.Errorf("block %d:\n%s\nexpected:\n%s", i, blocks[i+1], e)
		}
	}
}
