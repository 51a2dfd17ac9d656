/*
 * files.go, part of gonci.
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
	"math"
	"os"
	"strconv"
	"strings"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/criteria"
	"github.com/rmera/gonci/descriptor"
	"github.com/rmera/gonci/engine"
	"gopkg.in/yaml.v3"
)

//document reads the YAML file at path and returns its top-level mapping.
//An empty file gives a nil node.
func document(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: line %d: expected a mapping", path, root.Line)
	}
	return root, nil
}

//stringList returns the values of a scalar or a sequence of scalars.
func stringList(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		ret := make([]string, 0, len(n.Content))
		for _, v := range n.Content {
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a name", v.Line)
			}
			ret = append(ret, v.Value)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("line %d: expected a name or a list of names", n.Line)
}

//LoadSelection reads a residue selection file:
//
//	ligand: [LIG]
//	solvent:
//	  S1: [HOH, WAT]
//	  S2: [NA]
//	protein: [ALA, GLY] #optional
//
//Solvent classes keep the order of the file, and their names must start with S.
func LoadSelection(path string) (nci.Selection, error) {
	var S nci.Selection
	root, err := document(path)
	if err != nil {
		return S, err
	}
	if root == nil {
		return S, fmt.Errorf("%s: empty selection", path)
	}
	seen := make(map[string]string)
	claim := func(names []string, class string) error {
		for _, r := range names {
			if c, ok := seen[r]; ok {
				return fmt.Errorf("%s: residue %s is in both %s and %s", path, r, c, class)
			}
			seen[r] = class
		}
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		switch k.Value {
		case "ligand":
			if S.Ligand, err = stringList(v); err != nil {
				return S, fmt.Errorf("%s: ligand: %w", path, err)
			}
			err = claim(S.Ligand, string(nci.Ligand))
		case "protein":
			if S.Protein, err = stringList(v); err != nil {
				return S, fmt.Errorf("%s: protein: %w", path, err)
			}
		case "solvent":
			if v.Kind == yaml.ScalarNode && v.Tag == "!!null" {
				continue
			}
			if v.Kind != yaml.MappingNode {
				return S, fmt.Errorf("%s: line %d: solvent must map class names to residue names", path, v.Line)
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				name := v.Content[j].Value
				if !nci.Class(name).IsSolvent() {
					return S, fmt.Errorf("%s: line %d: solvent class %q must start with S", path, v.Content[j].Line, name)
				}
				res, err := stringList(v.Content[j+1])
				if err != nil {
					return S, fmt.Errorf("%s: solvent %s: %w", path, name, err)
				}
				if err := claim(res, name); err != nil {
					return S, err
				}
				S.Solvent = append(S.Solvent, nci.SolventClass{Name: name, Residues: res})
			}
		default:
			return S, fmt.Errorf("%s: line %d: unknown section %q", path, k.Line, k.Value)
		}
		if err != nil {
			return S, err
		}
	}
	if len(S.Ligand) == 0 {
		return S, fmt.Errorf("%s: no ligand residue names", path)
	}
	return S, nil
}

//LoadVdW reads a map of element symbols to van der Waals radii, and returns
//the built-in radii with the ones read replacing them. An empty path gives
//the built-in radii.
func LoadVdW(path string) (nci.Radii, error) {
	if path == "" {
		return nci.DefaultRadii(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := make(map[string]float64)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range m {
		if v <= 0 {
			return nil, fmt.Errorf("%s: the radius of %s must be positive, got %v", path, k, v)
		}
	}
	return nci.DefaultRadii().Merge(m), nil
}

func parseFloats(key string, fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, criteria.NewConfigurationError(key, "", "value %q is not a number", f)
		}
		ret[i] = v
	}
	return ret, nil
}

//LoadCriteria reads the thresholds of the criteria. Each key is a criterion,
//and its value is either all its thresholds, as a space-separated string or as
//a list, or a mapping from threshold names to values. The mapping can also
//have a strict list, with the thresholds that exclude their bound, and, for
//the dipole criterion, a hydrogens mode (add, except or none).
//Criteria not in the file keep their defaults. An empty path gives the defaults.
func LoadCriteria(path string) (*criteria.Config, error) {
	C := criteria.DefaultConfig()
	if path == "" {
		return C, nil
	}
	root, err := document(path)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return C, nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, v := root.Content[i].Value, root.Content[i+1]
		switch v.Kind {
		case yaml.ScalarNode:
			vals, err := parseFloats(key, strings.Fields(v.Value))
			if err == nil {
				err = C.Set(key, vals)
			}
			if err != nil {
				return nil, err
			}
		case yaml.SequenceNode:
			fields, err := stringList(v)
			if err != nil {
				return nil, criteria.NewConfigurationError(key, "", "%s", err.Error())
			}
			vals, err := parseFloats(key, fields)
			if err == nil {
				err = C.Set(key, vals)
			}
			if err != nil {
				return nil, err
			}
		case yaml.MappingNode:
			if err := setNamed(C, key, v); err != nil {
				return nil, err
			}
		default:
			return nil, criteria.NewConfigurationError(key, "", "line %d: unexpected value", v.Line)
		}
	}
	if err := C.Validate(); err != nil {
		return nil, err
	}
	return C, nil
}

func setNamed(C *criteria.Config, key string, m *yaml.Node) error {
	values := make(map[string]float64)
	var strict []string
	mode := ""
	setStrict := false
	for i := 0; i+1 < len(m.Content); i += 2 {
		name, v := m.Content[i].Value, m.Content[i+1]
		switch name {
		case "strict":
			s, err := stringList(v)
			if err != nil {
				return criteria.NewConfigurationError(key, "strict", "%s", err.Error())
			}
			strict, setStrict = s, true
		case "hydrogens":
			mode = v.Value
		default:
			f, err := strconv.ParseFloat(v.Value, 64)
			if v.Kind != yaml.ScalarNode || err != nil {
				return criteria.NewConfigurationError(key, name, "value %q is not a number", v.Value)
			}
			values[name] = f
		}
	}
	if err := C.SetNamed(key, values); err != nil {
		return err
	}
	if setStrict {
		if err := C.SetStrict(key, strict); err != nil {
			return err
		}
	}
	if mode != "" {
		return C.SetHydrogens(key, mode)
	}
	return nil
}

//LoadPriority reads the priorities of the interaction labels, as integers.
//vdW contacts can be given per element pair, with keys like O_C_vdW. The file
//replaces the default priorities. An empty path gives the defaults.
func LoadPriority(path string) (engine.Priority, error) {
	if path == "" {
		return engine.DefaultPriority(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]float64)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: priorities must be integers: %w", path, err)
	}
	P := make(engine.Priority, len(raw))
	for k, v := range raw {
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return nil, fmt.Errorf("%s: priority of %s must be an integer, not %v", path, k, v)
		}
		P[k] = int(v)
	}
	return P, nil
}

//LoadGroups reads the groups of the interaction labels used by the descriptors.
//An empty path gives the built-in groups.
func LoadGroups(path string) (*descriptor.Groups, error) {
	if path == "" {
		return descriptor.DefaultGroups(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	G, err := descriptor.ParseGroups(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return G, nil
}
