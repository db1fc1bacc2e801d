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
	"gonum.org/v1/plot/vg"

	"github.com/genotools/genotools/seqfile"
)

// plotLengths writes a histogram of log10 scaffold lengths to path. The
// image format is taken from the path extension.
func plotLengths(path string, lengths []int, bins int) error {
	v := make(plotter.Values, 0, len(lengths))
	for _, l := range lengths {
		if l > 0 {
			v = append(v, math.Log10(float64(l)))
		}
	}
	if len(v) == 0 {
		return errors.New("no non-empty scaffolds")
	}

	p := plot.New()
	p.Title.Text = "Scaffold length distribution"
	p.X.Label.Text = "log10 length (bp)"
	p.Y.Label.Text = "Scaffolds"
	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return save(p, path)
}

// save renders p to path atomically.
func save(p *plot.Plot, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	out, err := seqfile.Create(path)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	if err != nil {
		out.Abort()
		return err
	}
	return out.Commit()
}
