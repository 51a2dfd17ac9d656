/*
 * nciplot.go, part of gonci.
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

//Package nciplot draws bar charts of the interactions found in a run.
package nciplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/rmera/gonci/engine"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

//Count is the number of instances of an interaction type.
type Count struct {
	Type string
	N    int
}

//Counts returns the number of instances of each type, bridges under their
//bridge type, from the most to the least frequent. Ties are sorted by type.
func Counts(instances []engine.Instance) []Count {
	m := make(map[string]int)
	for _, v := range instances {
		m[v.Type]++
	}
	ret := make([]Count, 0, len(m))
	for k, v := range m {
		ret = append(ret, Count{k, v})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].N != ret[j].N {
			return ret[i].N > ret[j].N
		}
		return ret[i].Type < ret[j].Type
	})
	return ret
}

//BarPlot returns a bar chart with a bar for each count, each in its own color.
func BarPlot(counts []Count, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Instances"
	p.Y.Min = 0
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Type
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.N)}, vg.Points(12))
		if err != nil {
			return nil, fmt.Errorf("bar for %s: %w", c.Type, err)
		}
		bar.XMin = float64(i)
		r, g, b := colors(i, len(counts))
		bar.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
	}
	p.NominalX(names...)
	return p, nil
}

//WritePNG writes the plot to w as a PNG image. The width grows with the
//number of bars.
func WritePNG(w io.Writer, p *plot.Plot, bars int) error {
	width := vg.Points(float64(60 + 20*bars))
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	wt, err := p.WriterTo(width, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

//colors returns the color for the key-th of steps bars, moving along the hue
//circle and skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return hsv2RGB(h, 1, 0.9)
}

//hsv2RGB converts a color with hue h (in degrees), saturation s and value v
//(both between 0 and 1) to RGB.
func hsv2RGB(h, s, v float64) (uint8, uint8, uint8) {
	if s == 0 {
		c := uint8(math.Round(255 * v))
		return c, c, c
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(math.Round(255 * r)), uint8(math.Round(255 * g)), uint8(math.Round(255 * b))
}
