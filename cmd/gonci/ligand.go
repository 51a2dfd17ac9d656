/*
 * ligand.go, part of gonci.
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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/config"
	"github.com/rmera/gonci/descriptor"
	"github.com/rmera/gonci/engine"
	"github.com/rmera/gonci/internal/logging"
	"github.com/rmera/gonci/mol2"
	"github.com/rmera/gonci/nciplot"
	"github.com/rmera/gonci/pymol"
	"github.com/rmera/gonci/report"
	"github.com/spf13/cobra"
)

//Output file suffixes.
const (
	rawSuffix      = "_raw_list.txt"
	countSuffix    = "_interaction_count_list.csv"
	oneHotSuffix   = "_one_hot_list.csv"
	sumSuffix      = "_interaction_sum_list.csv"
	residueSuffix  = "_residue_descriptor.csv"
	pmlSuffix      = ".pml"
	plotSuffix     = "_counts.png"
	ligandCmdUsage = "ligand <mol2> <selection.yaml> <vdw.yaml> <parameter.yaml> <priority.yaml> <output-prefix>"
)

func newLigandCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ligandCmdUsage,
		Short: "Find the interactions between a ligand and a protein",
		Long: "Find the non-covalent interactions between the ligand and the protein in a mol2\n" +
			"file, directly and through waters, and write the raw interaction list, the\n" +
			"descriptors and a PyMOL script, with names starting with output-prefix.",
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			a.cfg.Files.Selection = args[1]
			a.cfg.Files.VdW = args[2]
			a.cfg.Files.Parameters = args[3]
			a.cfg.Files.Priority = args[4]
			a.cfg.Output.Prefix = args[5]
			defer a.log.Sync()
			files, err := runLigand(a, args[0])
			if err != nil {
				a.log.Error("run failed", logging.Err(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files written with prefix %s\n", len(files), a.cfg.Output.Prefix)
			return nil
		},
	}
	f := cmd.Flags()
	f.Bool("on_14", false, "keep interactions between atoms 2 or 3 bonds apart")
	f.Bool("dup", false, "keep all the interactions on the same atoms, not only those with the highest priority")
	f.Int("allow_mediate_pos", config.DefaultMediatePosition, "allowed bond distance between the two water atoms of a bridge plus one; 0 allows any atom of the water")
	f.Bool("no_mediate", false, "don't search water bridges")
	f.Bool("no_out_total", false, "don't write the count, one-hot, sum and residue descriptor files")
	f.Bool("no_out_pml", false, "don't write the PyMOL script")
	f.Bool("switch_ch_pi", false, "use the legacy CH_PI, NH_PI and OH_PI criteria")
	f.Int("cpus", 0, "number of concurrent workers (default: all the CPUs)")
	f.Float64("cutoff", 0, "coarse distance cutoff for candidate pairs (default: derived from the thresholds)")
	f.Bool("plot", false, "write a bar plot of the interaction counts")
	f.String("compress", "", "compress the output files (zst or gz)")
	return cmd
}

//modelName returns the name PyMOL gives to the object loaded from the file name.
func modelName(name string) string {
	base := filepath.Base(name)
	for _, ext := range []string{".gz", ".zst", ".mol2"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

//runLigand runs the whole calculation on the structure in the file input,
//and returns the names of the files written.
func runLigand(a *app, input string) ([]string, error) {
	cfg, log := a.cfg, a.log.Named("ligand")
	sel, err := config.LoadSelection(cfg.Files.Selection)
	if err != nil {
		return nil, err
	}
	radii, err := config.LoadVdW(cfg.Files.VdW)
	if err != nil {
		return nil, err
	}
	C, err := config.LoadCriteria(cfg.Files.Parameters)
	if err != nil {
		return nil, err
	}
	P, err := config.LoadPriority(cfg.Files.Priority)
	if err != nil {
		return nil, err
	}
	G, err := config.LoadGroups(cfg.Files.Groups)
	if err != nil {
		return nil, err
	}
	F, err := mol2.Read(input)
	if err != nil {
		return nil, err
	}
	M, err := F.Molecule(sel)
	if err != nil {
		return nil, err
	}
	log.Info("structure read", logging.String("file", input), logging.Int("atoms", M.Len()), logging.Int("residues", len(M.Residues)), logging.Int("rings", len(M.Rings)))
	E, err := engine.New(M, C, radii, cfg.EngineOptions(P, log))
	if err != nil {
		return nil, err
	}
	R, err := E.Run()
	if err != nil {
		return nil, err
	}
	for _, w := range R.Warnings {
		log.Debug(w.String())
	}
	return writeOutputs(cfg, M, G, R.Instances, input, log)
}

func writeOutputs(cfg *config.Config, M *nci.Molecule, G *descriptor.Groups, inst []engine.Instance, input string, log logging.Logger) ([]string, error) {
	W := report.NewWriter(cfg.Output.Prefix, cfg.Output.Compress, log)
	if _, err := W.Write(rawSuffix, func(w io.Writer) error {
		return report.WriteRaw(w, M, filepath.Base(input), inst)
	}); err != nil {
		return nil, err
	}
	if cfg.Output.Total {
		outputs := []struct {
			suffix string
			fn     func(io.Writer) error
		}{
			{countSuffix, func(w io.Writer) error { return descriptor.WriteCount(w, descriptor.Count(M, inst, G)) }},
			{oneHotSuffix, func(w io.Writer) error { return descriptor.WriteTable(w, descriptor.OneHot(M, inst, G)) }},
			{sumSuffix, func(w io.Writer) error { return descriptor.WriteSum(w, descriptor.Sum(inst, G)) }},
			{residueSuffix, func(w io.Writer) error { return descriptor.WriteTable(w, descriptor.FoldTable(descriptor.Fold(M, inst))) }},
		}
		for _, o := range outputs {
			if _, err := W.Write(o.suffix, o.fn); err != nil {
				return nil, err
			}
		}
	}
	if cfg.Output.Pml {
		model := modelName(input)
		suffix := filepath.Base(cfg.Output.Prefix)
		if _, err := W.WritePlain(pmlSuffix, func(w io.Writer) error {
			return pymol.Write(w, M, inst, model, suffix)
		}); err != nil {
			return nil, err
		}
	}
	if cfg.Output.Plot {
		counts := nciplot.Counts(inst)
		p, err := nciplot.BarPlot(counts, modelName(input))
		if err != nil {
			return nil, err
		}
		if _, err := W.WritePlain(plotSuffix, func(w io.Writer) error {
			return nciplot.WritePNG(w, p, len(counts))
		}); err != nil {
			return nil, err
		}
	}
	return W.Written(), nil
}
