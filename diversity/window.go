// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diversity

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/biogo/store/interval"
	"gonum.org/v1/gonum/stat"
)

// ErrBadWindow is returned when a window size or step is not positive.
var ErrBadWindow = errors.New("diversity: window size and step must be positive")

// Window is a sliding window [Start, End) over a chromosome.
type Window struct {
	Chrom      string
	Start, End int

	// Variants is the number of sites in the window.
	Variants int

	// Pi is the mean pi of the window's sites that have at
	// least one call. It is NaN if no site has a call.
	Pi float64
}

// site is a Site held in an interval tree.
type site struct {
	id  uintptr
	pos int
}

func (s site) Overlap(b interval.IntRange) bool { return s.pos+1 > b.Start && s.pos < b.End }
func (s site) ID() uintptr                      { return s.id }
func (s site) Range() interval.IntRange         { return interval.IntRange{Start: s.pos, End: s.pos + 1} }

// span is a half-open interval query.
type span struct{ start, end int }

func (q span) Overlap(b interval.IntRange) bool { return q.end > b.Start && q.start < b.End }

// Windows returns the non-empty windows of length size over the chromosome.
// Window starts run from the chromosome's first site position to its last
// site position in increments of step.
func (c Chromosome) Windows(size, step int) ([]Window, error) {
	if size <= 0 || step <= 0 {
		return nil, ErrBadWindow
	}
	if len(c.Sites) == 0 {
		return nil, nil
	}

	var t interval.IntTree
	min, max := c.Sites[0].Pos, c.Sites[0].Pos
	for i, s := range c.Sites {
		err := t.Insert(site{id: uintptr(i), pos: s.Pos}, true)
		if err != nil {
			return nil, fmt.Errorf("diversity: %s position %d: %w", c.Name, s.Pos, err)
		}
		if s.Pos < min {
			min = s.Pos
		}
		if s.Pos > max {
			max = s.Pos
		}
	}
	t.AdjustRanges()

	var (
		windows []Window
		hits    []int
		pis     []float64
	)
	for start := min; start <= max; start += step {
		q := span{start: start, end: start + size}
		hits = hits[:0]
		t.DoMatching(func(iv interval.IntInterface) (done bool) {
			hits = append(hits, int(iv.ID()))
			return
		}, q)
		if len(hits) == 0 {
			continue
		}
		sort.Ints(hits)

		pis = pis[:0]
		for _, i := range hits {
			if c.Sites[i].Called > 0 {
				pis = append(pis, c.Sites[i].Pi)
			}
		}
		pi := math.NaN()
		if len(pis) != 0 {
			pi = stat.Mean(pis, nil)
		}
		windows = append(windows, Window{
			Chrom:    c.Name,
			Start:    q.start,
			End:      q.end,
			Variants: len(hits),
			Pi:       pi,
		})
	}
	return windows, nil
}

// Windows returns the non-empty windows of all chromosomes in the table,
// ordered by chromosome name and then window start.
func (t *Table) Windows(size, step int) ([]Window, error) {
	if size <= 0 || step <= 0 {
		return nil, ErrBadWindow
	}
	var all []Window
	for _, c := range t.Chromosomes {
		w, err := c.Windows(size, step)
		if err != nil {
			return nil, err
		}
		all = append(all, w...)
	}
	return all, nil
}

// WriteWindows writes windows to w as a tab-separated table with a header.
func WriteWindows(w io.Writer, windows []Window) error {
	_, err := io.WriteString(w, "CHROM\tBIN_START\tBIN_END\tN_VARIANTS\tPI\n")
	if err != nil {
		return err
	}
	for _, win := range windows {
		_, err = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", win.Chrom, win.Start, win.End, win.Variants, formatPi(win.Pi))
		if err != nil {
			return err
		}
	}
	return nil
}

func formatPi(pi float64) string {
	if math.IsNaN(pi) {
		return "NA"
	}
	return strconv.FormatFloat(pi, 'g', -1, 64)
}
