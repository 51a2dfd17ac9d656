/*
 * main_test.go, part of gonci.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//an N-H...O hydrogen bond between a ligand and a protein residue
const hbondMol2 = `@<TRIPOS>MOLECULE
hbond
 5 3 2 0 0
SMALL
USER_CHARGES

@<TRIPOS>ATOM
      1 N1          0.0000    0.0000    0.0000 N.3       1  LIG1       -0.5000
      2 H1          1.0100    0.0000    0.0000 H         1  LIG1        0.3000
      3 C1         -1.0000   -1.0000    0.0000 C.cat     1  LIG1        0.2000
      4 O           2.9000    0.0000    0.0000 O.2       2  ALA2       -0.5000
      5 P           4.4000    0.0000    0.0000 P.3       2  ALA2        0.5000
@<TRIPOS>BOND
     1     1     2    1
     2     1     3    1
     3     4     5    1
`

type inputs struct {
	dir                              string
	mol2, sel, vdw, param, prio, out string
}

func writeInputs(t *testing.T) inputs {
	t.Helper()
	dir := t.TempDir()
	in := inputs{dir: dir}
	for _, f := range []struct {
		path    *string
		name    string
		content string
	}{
		{&in.mol2, "hbond.mol2", hbondMol2},
		{&in.sel, "selection.yaml", "ligand: [LIG]\nsolvent:\n  S1: [HOH]\n"},
		{&in.vdw, "vdw.yaml", "O: 1.52\nN: 1.55\n"},
		{&in.param, "parameter.yaml", "HB_NH_(N,O): \"3.5 120 180 120 90 180\"\n"},
		{&in.prio, "priority.yaml", "HB_NH_O: 100\nvdW: 10\n"},
	} {
		*f.path = filepath.Join(dir, f.name)
		require.NoError(t, os.WriteFile(*f.path, []byte(f.content), 0644))
	}
	in.out = filepath.Join(dir, "out", "hbond")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0755))
	return in
}

func execute(args ...string) (string, error) {
	cmd := NewRootCommand()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func (in inputs) args(flags ...string) []string {
	return append([]string{"ligand", in.mol2, in.sel, in.vdw, in.param, in.prio, in.out, "--log-level=error"}, flags...)
}

func TestLigand(t *testing.T) {
	in := writeInputs(t)
	out, err := execute(in.args("--plot", "--cpus=2")...)
	require.NoError(t, err)
	assert.Contains(t, out, "7 files written")
	for _, s := range []string{rawSuffix, countSuffix, oneHotSuffix, sumSuffix, residueSuffix, pmlSuffix, plotSuffix} {
		assert.FileExists(t, in.out+s)
	}
	count, err := os.ReadFile(in.out + countSuffix)
	require.NoError(t, err)
	assert.Contains(t, string(count), "L#HB_NH_O#Pro,1\n")
	assert.Contains(t, string(count), "L#vdW#Pro,0\n")
	raw, err := os.ReadFile(in.out + rawSuffix)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "R hbond.mol2\nL LIG\nS1 HOH\n"))
	assert.Contains(t, string(raw), "K L-Pro\nI1-2 HB_NH_O 2.9000")
	pml, err := os.ReadFile(in.out + pmlSuffix)
	require.NoError(t, err)
	assert.Contains(t, string(pml), "distance LP_HB_NH_O_1_4_hbond, id 1 & hbond, id 4 & hbond\n")
}

func TestLigandFlags(t *testing.T) {
	in := writeInputs(t)
	out, err := execute(in.args("--compress=gz", "--no_out_pml", "--no_out_total", "--no_mediate", "--on_14", "--dup")...)
	require.NoError(t, err)
	assert.Contains(t, out, "1 files written")
	assert.FileExists(t, in.out+rawSuffix+".gz")
	assert.NoFileExists(t, in.out+pmlSuffix)
	assert.NoFileExists(t, in.out+countSuffix+".gz")
}

func TestLigandErrors(t *testing.T) {
	in := writeInputs(t)
	_, err := execute("ligand", in.mol2, in.sel, "--log-level=error")
	assert.Error(t, err, "missing arguments")

	bad := in
	bad.sel = filepath.Join(in.dir, "none.yaml")
	_, err = execute(bad.args()...)
	assert.Error(t, err, "missing selection file")

	bad = in
	bad.param = filepath.Join(in.dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad.param, []byte("vdW: 1 2\n"), 0644))
	_, err = execute(bad.args()...)
	assert.Error(t, err, "wrong threshold count")

	_, err = execute(in.args("--allow_mediate_pos=-1")...)
	assert.Error(t, err)
	_, err = execute(in.args("--compress=rar")...)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	in := writeInputs(t)
	cfg := filepath.Join(in.dir, "gonci.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  total: false\n  pml: false\n"), 0644))
	out, err := execute(append(in.args(), "--config", cfg)...)
	require.NoError(t, err)
	assert.Contains(t, out, "1 files written")
}

func TestVersion(t *testing.T) {
	out, err := execute("version", "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, out, "gonci "+version)
	assert.Contains(t, out, "commit: "+commit)
}

func TestCriteria(t *testing.T) {
	out, err := execute("criteria", "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, out, "HB_NH_(N,O)\n  labels: HB_NH_N HB_NH_O\n  thresholds: dist=3.5 angle_min=120")
	assert.Contains(t, out, "CH_PI_legacy (with --switch_ch_pi)")
	assert.Contains(t, out, "dist1=2.7(strict)")
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "complex", modelName("/data/complex.mol2.gz"))
	assert.Equal(t, "complex", modelName("complex.mol2"))
	assert.Equal(t, "complex.pdb", modelName("complex.pdb.zst"))
}
