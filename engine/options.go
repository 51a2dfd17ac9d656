/*
 * options.go, part of gonci.
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

package engine

import (
	"runtime"

	"github.com/rmera/gonci/internal/logging"
)

//Options controls a run. The zero value is not useful, use DefaultOptions.
type Options struct {
	cpus      int
	on14      bool
	dup       bool
	noMediate bool
	mediate   int
	legacyPi  bool
	cutoff    float64
	priority  Priority
	logger    logging.Logger
}

//DefaultOptions returns the default options: all the logical CPUs, 1-3/1-4
//contacts and duplicates removed, water bridges through a single water atom,
//the current donor-pi definitions, a cutoff derived from the thresholds, the
//default priorities and no logging.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.mediate = 1
	ret.priority = DefaultPriority()
	ret.logger = logging.NewNopLogger()
	return ret
}

//Cpus returns the number of gorutines used in the calculation and sets it, if
//a valid value is given
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

//On14 returns whether interactions between atoms 2 or 3 bonds apart are kept,
//and sets it, if a value is given.
func (O *Options) On14(on ...bool) bool {
	ret := O.on14
	if len(on) > 0 {
		O.on14 = on[0]
	}
	return ret
}

//Dup returns whether several interactions on the same atoms are all kept, instead
//of keeping the ones with the highest priority, and sets it, if a value is given.
func (O *Options) Dup(dup ...bool) bool {
	ret := O.dup
	if len(dup) > 0 {
		O.dup = dup[0]
	}
	return ret
}

//NoMediate returns whether water bridges are not searched, and sets it, if a value is given.
func (O *Options) NoMediate(no ...bool) bool {
	ret := O.noMediate
	if len(no) > 0 {
		O.noMediate = no[0]
	}
	return ret
}

//MediatePosition returns the allowed position of the protein-side water atom of
//a bridge, relative to the ligand-side one, and sets it if a non-negative value
//is given. 1 means the same atom, N > 1 within N-1 bonds, 0 any atom of the water.
func (O *Options) MediatePosition(n ...int) int {
	ret := O.mediate
	if len(n) > 0 && n[0] >= 0 {
		O.mediate = n[0]
	}
	return ret
}

//LegacyPi returns whether the legacy CH, NH and OH-pi definitions are used,
//and sets it, if a value is given.
func (O *Options) LegacyPi(legacy ...bool) bool {
	ret := O.legacyPi
	if len(legacy) > 0 {
		O.legacyPi = legacy[0]
	}
	return ret
}

//Cutoff returns the coarse distance cutoff for candidate pairs, 0 if it is
//derived from the thresholds, and sets it if a non-negative value is given.
func (O *Options) Cutoff(cutoff ...float64) float64 {
	ret := O.cutoff
	if len(cutoff) > 0 && cutoff[0] >= 0 {
		O.cutoff = cutoff[0]
	}
	return ret
}

//Priority returns the priorities used to remove duplicated interactions,
//and sets them, if a non-nil map is given.
func (O *Options) Priority(p ...Priority) Priority {
	ret := O.priority
	if len(p) > 0 && p[0] != nil {
		O.priority = p[0]
	}
	return ret
}

//Logger returns the logger for the run, and sets it, if a non-nil one is given.
func (O *Options) Logger(l ...logging.Logger) logging.Logger {
	ret := O.logger
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return ret
}
