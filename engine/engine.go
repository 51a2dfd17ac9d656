/*
 * engine.go, part of gonci.
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

//Package engine runs the interaction criteria over the candidate pairs of a
//structure, composes water bridges, and applies the post-processing filters.
package engine

import (
	"fmt"
	"time"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/internal/logging"
	"github.com/rmera/gonci/search"
)

//Engine classifies the interactions of one structure. It is not modified by a run,
//so one Engine can be run several times.
type Engine struct {
	M        *nci.Molecule
	C        *criteria.Config
	R        nci.Radii
	O        *Options
	env      *criteria.Env
	families []*criteria.Family
	cutoff   float64
	log      logging.Logger
}

//New returns an Engine for M, with the thresholds C and the van der Waals radii R.
//nil C, R or O take the defaults. It returns a *criteria.ConfigurationError if the
//thresholds are not valid, or the cutoff given in O is below the reach of the criteria.
func New(M *nci.Molecule, C *criteria.Config, R nci.Radii, O *Options) (*Engine, error) {
	if C == nil {
		C = criteria.DefaultConfig()
	}
	if R == nil {
		R = nci.DefaultRadii()
	}
	if O == nil {
		O = DefaultOptions()
	}
	if err := C.Validate(); err != nil {
		return nil, errDecorate(err, "engine.New")
	}
	if O.MediatePosition() < 0 {
		return nil, criteria.NewConfigurationError("run", "mediate_position", "must be 0 or more (%d)", O.MediatePosition())
	}
	E := &Engine{M: M, C: C, R: R, O: O, log: O.Logger()}
	if E.log == nil {
		E.log = logging.NewNopLogger()
	}
	E.env = &criteria.Env{M: M, Radii: R}
	E.families = criteria.Active(O.LegacyPi())
	reach := C.Reach(R, E.families)
	E.cutoff = reach
	if c := O.Cutoff(); c > 0 {
		if c < reach {
			return nil, criteria.NewConfigurationError("run", "cutoff", "cutoff %.3f is below the reach of the criteria, %.3f", c, reach)
		}
		E.cutoff = c
	}
	return E, nil
}

//Cutoff returns the coarse cutoff used for the candidate pairs.
func (E *Engine) Cutoff() float64 {
	return E.cutoff
}

//one registered interaction, before it becomes an Instance.
type found struct {
	hit  criteria.Hit
	a, b int //oriented atoms
}

//chunkResult is what a worker sends back.
type chunkResult struct {
	found    []found
	warnings []Warning
	skipped  []Skipped
}

//Run classifies all the interactions. The only errors returned are
//a *PriorityError from the duplicate filter.
func (E *Engine) Run() (*Result, error) {
	start := time.Now()
	G := search.New(E.M, E.cutoff)
	R := new(Result)
	pairs := G.LigandPartners()
	R.Pairs = len(pairs)
	E.log.Info("direct phase started", logging.Int("pairs", len(pairs)), logging.Float64("cutoff", E.cutoff), logging.Int("families", len(E.families)))
	direct := E.merge(E.evaluate(pairs, true), R)
	E.log.Info("direct phase finished", logging.Int("instances", len(direct)), logging.Duration("elapsed", time.Since(start)))
	R.Instances = direct
	if !E.O.NoMediate() {
		start = time.Now()
		bridges := E.bridges(G, direct, R)
		R.Instances = append(R.Instances, bridges...)
		E.log.Info("bridge phase finished", logging.Int("pairs", R.WaterPairs), logging.Int("bridges", len(bridges)), logging.Duration("elapsed", time.Since(start)))
	}
	if !E.O.On14() {
		R.Instances = Drop13And14(E.M, R.Instances)
	}
	if !E.O.Dup() {
		var err error
		R.Instances, err = DropDuplicates(E.M, R.Instances, E.O.Priority())
		if err != nil {
			return nil, errDecorate(err, "Run")
		}
	}
	for _, v := range R.Skipped {
		E.log.Debug("skipped evaluation", logging.Int("atom1", E.M.Atoms[v.A].ID), logging.Int("atom2", E.M.Atoms[v.B].ID), logging.String("criterion", criteria.Get(v.Family).Key), logging.String("reason", v.Reason))
	}
	if len(R.Warnings) > 0 {
		nomatch := 0
		for _, w := range R.Warnings {
			if w.Kind == NoMatch {
				nomatch++
			}
		}
		E.log.Info("classification warnings", logging.Int("no_match", nomatch), logging.Int("no_bridge", len(R.Warnings)-nomatch))
	}
	E.log.Info("run finished", logging.Int("instances", len(R.Instances)), logging.Int("skipped", len(R.Skipped)))
	return R, nil
}

//evaluate splits the pairs in chunks, and gives each chunk to a gorutine. The
//returned channels are in chunk order.
func (E *Engine) evaluate(pairs []search.Pair, warn bool) []chan *chunkResult {
	chunks := search.Chunks(pairs, E.O.Cpus())
	results := make([]chan *chunkResult, len(chunks))
	for i, v := range chunks {
		results[i] = make(chan *chunkResult, 1)
		go E.worker(v, warn, results[i])
	}
	return results
}

func (E *Engine) worker(pairs []search.Pair, warn bool, out chan<- *chunkResult) {
	ret := new(chunkResult)
	for _, p := range pairs {
		E.evalPair(p, warn, ret)
	}
	out <- ret
}

//evalPair runs every family on both orientations of p.
func (E *Engine) evalPair(p search.Pair, warn bool, ret *chunkResult) {
	overlap := false
	nfound := len(ret.found)
	for _, o := range [2][2]int{{p.A, p.B}, {p.B, p.A}} {
		a, b := o[0], o[1]
		ra, rb := E.M.Roles(a), E.M.Roles(b)
		for _, F := range E.families {
			P := E.C.Params(F.ID)
			first, second := F.Requires(P)
			if !ra.Has(first) || !rb.Has(second) {
				continue
			}
			overlap = true
			hits, err := F.Evaluate(E.env, P, a, b)
			if err != nil {
				ret.skipped = append(ret.skipped, Skipped{A: a, B: b, Family: F.ID, Reason: err.Error()})
				continue
			}
			for _, h := range hits {
				x, y := E.orient(h.A, h.B)
				ret.found = append(ret.found, found{hit: h, a: x, b: y})
			}
		}
	}
	if warn && overlap && len(ret.found) == nfound {
		ret.warnings = append(ret.warnings, Warning{Kind: NoMatch, A: p.A, B: p.B, Water: -1,
			Msg: fmt.Sprintf("atoms %d and %d share roles but match no criterion", E.M.Atoms[p.A].ID, E.M.Atoms[p.B].ID)})
	}
}

//orient returns a and b with the ligand atom first, or the solvent atom first
//for solvent-protein pairs.
func (E *Engine) orient(a, b int) (int, int) {
	ca, cb := E.M.Class(a), E.M.Class(b)
	if cb == nci.Ligand && ca != nci.Ligand {
		return b, a
	}
	if ca == nci.Protein && cb.IsSolvent() {
		return b, a
	}
	return a, b
}

type dedupKey struct {
	a, b  int
	label string
}

//merge reads the results in chunk order, and registers the hits, skipping those
//whose unordered atom pair already holds the same canonical type.
func (E *Engine) merge(results []chan *chunkResult, R *Result) []Instance {
	seen := make(map[dedupKey]bool)
	ret := make([]Instance, 0)
	for _, ch := range results {
		cr := <-ch
		R.Warnings = append(R.Warnings, cr.warnings...)
		R.Skipped = append(R.Skipped, cr.skipped...)
		for _, f := range cr.found {
			k := dedupKey{f.a, f.b, criteria.Normalize(f.hit.Label)}
			if k.a > k.b {
				k.a, k.b = k.b, k.a
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			ret = append(ret, E.instance(f))
		}
	}
	return ret
}

func (E *Engine) instance(f found) Instance {
	values := make([]float64, len(f.hit.Values))
	copy(values, f.hit.Values)
	if f.a != f.hit.A && criteria.IsDipole(f.hit.Label) && len(values) >= 7 {
		values[5], values[6] = values[6], values[5]
	}
	return Instance{
		Type:    criteria.Normalize(f.hit.Label),
		Label1:  f.hit.Label,
		Pair:    pairType(E.M, f.a, f.b),
		Atoms:   [4]int{f.a, f.b, -1, -1},
		Values1: values,
		Family1: f.hit.Family.ID,
		Family2: -1,
		Water:   -1,
		Passed:  true,
	}
}

//errDecorate decorates err with the caller's name, if err implements nci.Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(nci.Error); ok {
		e.Decorate(caller)
	}
	return err
}
