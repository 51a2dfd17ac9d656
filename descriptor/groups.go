/*
 * groups.go, part of gonci.
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

package descriptor

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed group.yaml
var defaultGroups []byte

//Groups assigns each interaction label to a group. Labels keep the order
//in which they were given.
type Groups struct {
	labels []string
	group  map[string]string
}

//DefaultGroups returns the built-in group table, which covers all the labels.
func DefaultGroups() *Groups {
	G, err := ParseGroups(defaultGroups)
	if err != nil {
		panic("descriptor: broken built-in group table: " + err.Error())
	}
	return G
}

//ParseGroups reads a YAML mapping from label to group. The order of the
//mapping is kept.
func ParseGroups(data []byte) (*Groups, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("group table: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("group table: empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("group table: line %d: expected a mapping from label to group", root.Line)
	}
	G := &Groups{group: make(map[string]string, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("group table: line %d: label and group must be scalars", k.Line)
		}
		if _, ok := G.group[k.Value]; ok {
			return nil, fmt.Errorf("group table: line %d: label %s given twice", k.Line, k.Value)
		}
		G.labels = append(G.labels, k.Value)
		G.group[k.Value] = v.Value
	}
	return G, nil
}

//Labels returns the labels in the table, in order.
func (G *Groups) Labels() []string {
	ret := make([]string, len(G.labels))
	copy(ret, G.labels)
	return ret
}

//Group returns the group of the canonical label l. Labels that are not in
//the table are their own group.
func (G *Groups) Group(l string) string {
	if g, ok := G.group[l]; ok {
		return g
	}
	return l
}

//Len returns the number of labels.
func (G *Groups) Len() int {
	return len(G.labels)
}
