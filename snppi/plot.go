// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/genotools/genotools/diversity"
	"github.com/genotools/genotools/seqfile"
)

// plotPi writes a line plot of window pi against window midpoint, one
// line per chromosome, to path.
func plotPi(path string, windows []diversity.Window) error {
	p := plot.New()
	p.Title.Text = "Nucleotide diversity"
	p.X.Label.Text = "Window midpoint (bp)"
	p.Y.Label.Text = "pi"
	p.Legend.Top = true

	var lines int
	for i := 0; i < len(windows); {
		j := i
		var xys plotter.XYs
		for ; j < len(windows) && windows[j].Chrom == windows[i].Chrom; j++ {
			w := windows[j]
			if math.IsNaN(w.Pi) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(w.Start+w.End) / 2, Y: w.Pi})
		}
		if len(xys) != 0 {
			l, err := plotter.NewLine(xys)
			if err != nil {
				return err
			}
			l.LineStyle.Color = plotutil.Color(lines)
			l.LineStyle.Width = vg.Points(1)
			p.Add(l)
			p.Legend.Add(windows[i].Chrom, l)
			lines++
		}
		i = j
	}
	if lines == 0 {
		return errors.New("no windows with called sites")
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	wt, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	out, err := seqfile.Create(path)
	if err != nil {
		return err
	}
	if _, err = wt.WriteTo(out); err != nil {
		out.Abort()
		return err
	}
	return out.Commit()
}
