/*
 * write.go, part of gonci.
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
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

//WriteCount writes the count list, one key,value line per entry.
func WriteCount(w io.Writer, entries []Entry) error {
	b := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(b, "%s,%d\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return b.Flush()
}

//WriteSum writes the sum list, as a header with the keys and a line with the values.
func WriteSum(w io.Writer, entries []Entry) error {
	keys := make([]string, len(entries))
	vals := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		vals[i] = fmt.Sprint(e.Value)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(keys, ","), strings.Join(vals, ","))
	return err
}

//WriteTable writes T as CSV.
func WriteTable(w io.Writer, T *Table) error {
	c := csv.NewWriter(w)
	if err := c.Write(T.Header); err != nil {
		return err
	}
	if err := c.WriteAll(T.Rows); err != nil {
		return err
	}
	return c.Error()
}

//FoldTable returns the records as a table, with the summed distances printed with 4 decimals.
func FoldTable(records []Record) *Table {
	T := &Table{Header: []string{"ligand_residue", "partner_residue", "type", "count", "one_hot", "sum_distance"}}
	for _, r := range records {
		T.Rows = append(T.Rows, []string{r.Ligand, r.Partner, r.Type, fmt.Sprint(r.Count), fmt.Sprint(r.OneHot), fmt.Sprintf("%.4f", r.Sum)})
	}
	return T
}
