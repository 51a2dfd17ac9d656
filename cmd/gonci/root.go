/*
 * root.go, part of gonci.
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
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rmera/gonci/config"
	"github.com/rmera/gonci/internal/logging"
	"github.com/spf13/cobra"
)

//rootOptions are the global flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

//app carries the configuration and the logger of a command.
type app struct {
	cfg   *config.Config
	log   logging.Logger
	runID string
}

type appKey struct{}

//NewRootCommand returns the gonci command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:     "gonci",
		Short:   "Ligand-protein non-covalent interaction descriptors",
		Long:    "gonci finds the non-covalent interactions between a ligand and a protein in a\nmol2 structure, including those mediated by water molecules, and writes\ninteraction lists, descriptors and PyMOL scripts for them.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "log format (json, console)")
	cmd.AddCommand(newLigandCommand(), newCriteriaCommand(), newVersionCommand())
	return cmd
}

//persistentPreRun loads the configuration, with the flags of cmd on top of
//it, and builds the logger for the run.
func persistentPreRun(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	id := uuid.New().String()
	a := &app{cfg: cfg, log: log.With(logging.String("run_id", id)), runID: id}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey{}, a))
	return nil
}

//appFrom returns the app set up for cmd. Commands that run without the root
//command get the default configuration and no logging.
func appFrom(cmd *cobra.Command) *app {
	if ctx := cmd.Context(); ctx != nil {
		if a, ok := ctx.Value(appKey{}).(*app); ok {
			return a
		}
	}
	return &app{cfg: config.MustLoad(""), log: logging.NewNopLogger()}
}
