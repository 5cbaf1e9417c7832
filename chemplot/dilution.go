/*
 * dilution.go, part of chemcalc.
 *
 * Copyright 2024 Marcela Leiva <mleivas{at}protonDOTme>
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
 */

/*Package chemplot renders plots for the chemcalc engine, currently the
concentration-against-volume curve of a dilution. It is a thin layer over
gonum/plot.*/
package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//number of samples along the dilution curve
const curvePoints = 100

func basicDilutionPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "V (L)"
	p.Y.Label.Text = "C (mol/L)"
	p.Add(plotter.NewGrid())
	return p
}

//DilutionCurve plots the hyperbola C = n/V for the fixed amount of solute
//n = c1*v1, marks the initial and final states of the dilution, and saves
//the plot as plotname.png. All quantities are in base units (mol/L and
//L) and must be positive.
func DilutionCurve(c1, v1, c2, v2 float64, title, plotname string) error {
	if c1 <= 0 || v1 <= 0 || c2 <= 0 || v2 <= 0 {
		return fmt.Errorf("chemplot: all quantities must be positive to plot a dilution")
	}
	n := c1 * v1
	lo, hi := v1, v2
	if lo > hi {
		lo, hi = hi, lo
	}
	lo *= 0.8
	hi *= 1.2
	curve := make(plotter.XYs, curvePoints)
	step := (hi - lo) / float64(curvePoints-1)
	for i := range curve {
		v := lo + float64(i)*step
		curve[i].X = v
		curve[i].Y = n / v
	}
	p := basicDilutionPlot(title)
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	p.Add(line)
	points := plotter.XYs{{X: v1, Y: c1}, {X: v2, Y: c2}}
	s, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(s)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, plotname+".png")
}
