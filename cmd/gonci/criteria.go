/*
 * criteria.go, part of gonci.
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
	"strings"

	"github.com/rmera/gonci/criteria"
	"github.com/spf13/cobra"
)

func newCriteriaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the interaction criteria, their labels and default thresholds",
		Long:  "List every criterion key, as used in the parameter file, with the labels it\nassigns and its thresholds in order. Strict thresholds exclude their bound.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, F := range criteria.Families() {
				legacy := ""
				if F.Legacy() {
					legacy = " (with --switch_ch_pi)"
				}
				fmt.Fprintf(out, "%s%s\n  labels: %s\n  thresholds:", F.Key, legacy, strings.Join(F.Labels, " "))
				for _, p := range F.Params {
					s := ""
					if p.Strict {
						s = "(strict)"
					}
					fmt.Fprintf(out, " %s=%v%s", p.Name, p.Default, s)
				}
				fmt.Fprintln(out)
			}
		},
	}
}
