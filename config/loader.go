/*
 * loader.go, part of gonci.
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

package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables that override the
//configuration: GONCI_RUN_CPUS sets run.cpus.
const envPrefix = "GONCI"

//Defaults.
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
	DefaultMediatePosition = 1
	DefaultPrefix          = "gonci"
)

//keys lists every configuration key with its default. Viper only maps
//environment variables to the keys it knows about.
var keys = map[string]interface{}{
	"log.level":            DefaultLogLevel,
	"log.format":           DefaultLogFormat,
	"run.cpus":             0,
	"run.on_14":            false,
	"run.dup":              false,
	"run.no_mediate":       false,
	"run.mediate_position": DefaultMediatePosition,
	"run.switch_ch_pi":     false,
	"run.cutoff":           0.0,
	"files.selection":      "",
	"files.vdw":            "",
	"files.parameters":     "",
	"files.priority":       "",
	"files.groups":         "",
	"output.prefix":        DefaultPrefix,
	"output.total":         true,
	"output.pml":           true,
	"output.plot":          false,
	"output.compress":      "",
}

//flagKeys maps command line flags to the keys they set.
var flagKeys = map[string]string{
	"on_14":             "run.on_14",
	"dup":               "run.dup",
	"no_mediate":        "run.no_mediate",
	"allow_mediate_pos": "run.mediate_position",
	"switch_ch_pi":      "run.switch_ch_pi",
	"cpus":              "run.cpus",
	"cutoff":            "run.cutoff",
	"plot":              "output.plot",
	"compress":          "output.compress",
	"log-level":         "log.level",
	"log-format":        "log.format",
}

//negatedFlags are flags that, when given, set their key to false.
var negatedFlags = map[string]string{
	"no_out_total": "output.total",
	"no_out_pml":   "output.pml",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for k, d := range keys {
		v.SetDefault(k, d)
	}
	return v
}

//BindFlags makes the flags in flags that have a configuration key override
//the file and the environment. Flags that are not in flags are ignored.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: can't bind flag --%s: %w", name, err)
		}
	}
	for name, key := range negatedFlags {
		if f := flags.Lookup(name); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set(key, false)
		}
	}
	return nil
}

//Load reads the YAML file at path, if path is not empty, applies the GONCI_*
//environment variables and the given flags on top of it, fills the unset
//values with their defaults and validates the result.
func Load(path string, flags ...*pflag.FlagSet) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	for _, f := range flags {
		if err := BindFlags(v, f); err != nil {
			return nil, err
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//MustLoad is like Load but panics on error.
func MustLoad(path string, flags ...*pflag.FlagSet) *Config {
	cfg, err := Load(path, flags...)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//ApplyDefaults fills the zero values of cfg that have a non-zero default.
//Booleans and the mediate position are defaulted by Load, as their zero
//values are meaningful.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Run.Cpus <= 0 {
		cfg.Run.Cpus = runtime.NumCPU()
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = DefaultPrefix
	}
}
