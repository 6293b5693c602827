/*
 * frequency.go, part of goligand.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * goligand is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//MaxBars is the maximum number of ligands shown in a frequency plot. Only the most
//frequent ones are plotted.
const MaxBars = 40

//FrequencyPlot returns a bar chart with the number of times each ligand name appears
//in names. It returns an error if names is empty.
func FrequencyPlot(names []string, title string) (*plot.Plot, error) {
	counts := CountLigands(names)
	if len(counts) == 0 {
		return nil, fmt.Errorf("chemplot: no ligands to plot")
	}
	if len(counts) > MaxBars {
		counts = counts[:MaxBars]
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Count"
	p.Y.Min = 0
	labels := make([]string, 0, len(counts))
	for i, c := range counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.Count)}, vg.Points(14))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = barColor(i, len(counts))
		p.Add(bar)
		labels = append(labels, c.Name)
	}
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())
	return p, nil
}

//LigandFrequency saves to filename a bar chart of how often each ligand name
//appears in names. The format is taken from the file extension (png, svg, pdf...)
func LigandFrequency(names []string, title, filename string) error {
	p, err := FrequencyPlot(names, title)
	if err != nil {
		return err
	}
	width := vg.Length(len(CountLigands(names)))*vg.Points(20) + 2*vg.Inch
	if width > 12*vg.Inch {
		width = 12 * vg.Inch
	}
	//here I  intentionally shadow err.
	if err := p.Save(width, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
