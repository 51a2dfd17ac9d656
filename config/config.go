/*
 * config.go, part of gonci.
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

//Package config loads the run configuration of gonci, and the YAML files that
//describe a complex: the residue selection, the van der Waals radii, the
//criterion thresholds, the priorities and the descriptor groups.
package config

import (
	"fmt"

	"github.com/rmera/gonci/engine"
	"github.com/rmera/gonci/internal/logging"
	"github.com/rmera/gonci/report"
)

//RunConfig controls the classification.
type RunConfig struct {
	Cpus            int     `mapstructure:"cpus"`
	On14            bool    `mapstructure:"on_14"`
	Dup             bool    `mapstructure:"dup"`
	NoMediate       bool    `mapstructure:"no_mediate"`
	MediatePosition int     `mapstructure:"mediate_position"` //0 means any atom of the water
	SwitchCHPi      bool    `mapstructure:"switch_ch_pi"`
	Cutoff          float64 `mapstructure:"cutoff"` //0 derives it from the thresholds
}

//FilesConfig holds the paths of the domain files. Empty paths mean the
//built-in values, except for Selection, which is required.
type FilesConfig struct {
	Selection  string `mapstructure:"selection"`
	VdW        string `mapstructure:"vdw"`
	Parameters string `mapstructure:"parameters"`
	Priority   string `mapstructure:"priority"`
	Groups     string `mapstructure:"groups"`
}

//OutputConfig selects the files written.
type OutputConfig struct {
	Prefix   string `mapstructure:"prefix"`
	Total    bool   `mapstructure:"total"` //count, one-hot, sum and residue descriptor files
	Pml      bool   `mapstructure:"pml"`
	Plot     bool   `mapstructure:"plot"`
	Compress string `mapstructure:"compress"` //"", zst or gz
}

//Config is the complete configuration of a run.
type Config struct {
	Log    logging.LogConfig `mapstructure:"log"`
	Run    RunConfig         `mapstructure:"run"`
	Files  FilesConfig       `mapstructure:"files"`
	Output OutputConfig      `mapstructure:"output"`
}

//Validate checks the values of a Config with its defaults applied.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json or console", c.Log.Format)
	}
	if c.Run.Cpus < 1 {
		return fmt.Errorf("config: run.cpus must be 1 or more, got %d", c.Run.Cpus)
	}
	if c.Run.MediatePosition < 0 {
		return fmt.Errorf("config: run.mediate_position must be 0 or more, got %d", c.Run.MediatePosition)
	}
	if c.Run.Cutoff < 0 {
		return fmt.Errorf("config: run.cutoff can't be negative, got %v", c.Run.Cutoff)
	}
	comp, err := report.ParseCompression(c.Output.Compress)
	if err != nil {
		return fmt.Errorf("config: output.compress: %w", err)
	}
	c.Output.Compress = comp
	return nil
}

//EngineOptions returns the engine options set by c, with the priorities P
//(the defaults if nil) and the logger log.
func (c *Config) EngineOptions(P engine.Priority, log logging.Logger) *engine.Options {
	O := engine.DefaultOptions()
	O.Cpus(c.Run.Cpus)
	O.On14(c.Run.On14)
	O.Dup(c.Run.Dup)
	O.NoMediate(c.Run.NoMediate)
	O.MediatePosition(c.Run.MediatePosition)
	O.LegacyPi(c.Run.SwitchCHPi)
	O.Cutoff(c.Run.Cutoff)
	O.Priority(P)
	O.Logger(log)
	return O
}
