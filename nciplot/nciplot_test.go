/*
 * nciplot_test.go, part of gonci.
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

package nciplot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gonci/engine"
)

func TestCounts(Te *testing.T) {
	inst := []engine.Instance{{Type: "vdW"}, {Type: "HB_NH_O"}, {Type: "vdW"}, {Type: "Dipo"}, {Type: "HB_NH_O+HB_OH_O"}}
	c := Counts(inst)
	fmt.Println(c)
	expected := []Count{{"vdW", 2}, {"Dipo", 1}, {"HB_NH_O", 1}, {"HB_NH_O+HB_OH_O", 1}}
	if len(c) != len(expected) {
		Te.Fatalf("got %v, expected %v", c, expected)
	}
	for i := range c {
		if c[i] != expected[i] {
			Te.Errorf("got %v, expected %v", c[i], expected[i])
		}
	}
	if len(Counts(nil)) != 0 {
		Te.Error("no instances should give no counts")
	}
}

func TestHSV(Te *testing.T) {
	for _, v := range []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{0, 0, 0.5, 128, 128, 128},
	} {
		r, g, b := hsv2RGB(v.h, v.s, v.v)
		if r != v.r || g != v.g || b != v.b {
			Te.Errorf("h=%.0f s=%.1f v=%.1f gave %d %d %d, expected %d %d %d", v.h, v.s, v.v, r, g, b, v.r, v.g, v.b)
		}
	}
}

func TestBarPlot(Te *testing.T) {
	c := []Count{{"vdW", 12}, {"HB_NH_O", 3}, {"Dipo", 1}}
	p, err := BarPlot(c, "test")
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := WritePNG(&b, p, len(c)); err != nil {
		Te.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")) {
		Te.Error("the output is not a PNG image")
	}
	name := filepath.Join(Te.TempDir(), "counts.png")
	if err := os.WriteFile(name, b.Bytes(), 0644); err != nil {
		Te.Error(err)
	}
}
