// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly calculates assembly quality statistics from FASTA
// scaffolds: N50/L50 family values, GC content and size class tallies.
package assembly

import (
	"fmt"
	"io"
	"sort"

	"github.com/genotools/genotools/seqfile"
)

// Thresholds are the minimum scaffold lengths of the size classes
// reported in a Summary, largest first.
var Thresholds = [...]int{1000000, 100000, 10000, 1000}

// Bucket holds the number and total length of scaffolds at or above
// a length threshold.
type Bucket struct {
	Threshold int
	Count     int
	Length    int
}

// Summary holds the statistics of an assembly. All lengths are given
// in base pairs.
type Summary struct {
	TotalScaffolds int
	TotalBases     int
	TotalNs        int
	AverageLength  float64
	Longest        int
	Shortest       int

	N50, L50 int
	N75, L75 int
	N90, L90 int

	GCPercent float64
	Buckets   [len(Thresholds)]Bucket

	// Lengths holds the scaffold lengths in descending order.
	Lengths []int
}

// Stats accumulates scaffolds for a Summary.
type Stats struct {
	lengths []int
	bases   int
	ns      int
	gc      int
}

// Add adds a closed scaffold to the accumulator.
func (s *Stats) Add(sc Scaffold) {
	s.lengths = append(s.lengths, sc.Length)
	s.bases += sc.Length
	s.ns += sc.N
	s.gc += sc.GC
}

// Len returns the number of scaffolds added.
func (s *Stats) Len() int { return len(s.lengths) }

// Summary returns the statistics of the added scaffolds. It returns
// seqfile.ErrEmptyInput if no scaffold has been added.
func (s *Stats) Summary() (Summary, error) {
	if len(s.lengths) == 0 {
		return Summary{}, seqfile.ErrEmptyInput
	}
	lengths := make([]int, len(s.lengths))
	copy(lengths, s.lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	sum := Summary{
		TotalScaffolds: len(lengths),
		TotalBases:     s.bases,
		TotalNs:        s.ns,
		AverageLength:  ratio(s.bases, len(lengths)),
		Longest:        lengths[0],
		Shortest:       lengths[len(lengths)-1],
		GCPercent:      100 * ratio(s.gc, s.bases),
		Lengths:        lengths,
	}
	sum.N50, sum.L50 = Nxx(lengths, s.bases, 50)
	sum.N75, sum.L75 = Nxx(lengths, s.bases, 75)
	sum.N90, sum.L90 = Nxx(lengths, s.bases, 90)
	for i, t := range Thresholds {
		b := Bucket{Threshold: t}
		for _, l := range lengths {
			if l < t {
				break
			}
			b.Count++
			b.Length += l
		}
		sum.Buckets[i] = b
	}
	return sum, nil
}

// ratio returns n/d, or zero when d is zero.
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Nxx returns the length and 1-based rank of the first scaffold at which
// the cumulative length of the descending sorted lengths reaches pct
// percent of total. If lengths is empty Nxx returns zeros.
func Nxx(lengths []int, total, pct int) (n, l int) {
	var cum int
	for i, v := range lengths {
		cum += v
		if cum*100 >= total*pct {
			return v, i + 1
		}
	}
	return 0, 0
}

// Scan reads all scaffolds from r and returns their Summary.
func Scan(r io.Reader) (Summary, error) {
	var st Stats
	sc := NewScanner(r)
	for sc.Next() {
		st.Add(sc.Scaffold())
	}
	if err := sc.Err(); err != nil {
		return Summary{}, err
	}
	return st.Summary()
}

// WriteTo writes the summary to w as a key: value report.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	rw := reportWriter{w: w}
	rw.printf("Total scaffolds: %d\n", s.TotalScaffolds)
	rw.printf("Total base (bp): %d\n", s.TotalBases)
	rw.printf("Total N (bp): %d\n", s.TotalNs)
	rw.printf("Average length (bp): %.2f\n", s.AverageLength)
	rw.printf("Longest scaffold (bp): %d\n", s.Longest)
	rw.printf("Shortest scaffold (bp): %d\n", s.Shortest)
	rw.printf("L50: %d\nN50: %d\n", s.L50, s.N50)
	rw.printf("L75: %d\nN75: %d\n", s.L75, s.N75)
	rw.printf("L90: %d\nN90: %d\n", s.L90, s.N90)
	rw.printf("GC (%%): %.2f\n", s.GCPercent)
	for _, b := range s.Buckets {
		rw.printf("Total scaffolds (>= %d bp): %d\n", b.Threshold, b.Count)
	}
	for _, b := range s.Buckets {
		rw.printf("Total length (>= %d bp): %d\n", b.Threshold, b.Length)
	}
	return rw.n, rw.err
}

// reportWriter retains the first write error so report
// lines can be written without checking each one.
type reportWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	n, err := fmt.Fprintf(rw.w, format, args...)
	rw.n += int64(n)
	rw.err = err
}
