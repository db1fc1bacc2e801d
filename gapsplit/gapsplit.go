// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gapsplit splits sequences into parts at gap characters (N or n). Each
// gap ends a part, so a run of k gaps yields k-1 empty parts, which are
// not written but are still counted when numbering the parts. Parts are
// named by appending _part<i> to the sequence ID and are described by
// their [from, to) range in the source sequence, where to includes the
// terminating gap.
//
// Example: the sequence
//  >chr1
//  ACGTNNAC
// is written as
//  >chr1_part1 part 1 from 0 to 5
//  ACGT
//  >chr1_part3 part 3 from 6 to 8
//  AC
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"

	"github.com/genotools/genotools/seqfile"
)

type fe struct {
	s, e   int
	orient feat.Orientation
	feat.Feature
}

func (f fe) Start() int                    { return f.s }
func (f fe) End() int                      { return f.e }
func (f fe) Len() int                      { return f.e - f.s }
func (f fe) Orientation() feat.Orientation { return f.orient }

type fs []feat.Feature

func (f fs) Features() []feat.Feature { return []feat.Feature(f) }

var (
	inf   = flag.String("in", "", "input FASTA file (required)")
	outf  = flag.String("out", "", "output FASTA file (required)")
	width = flag.Int("width", 60, "output sequence line width")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *inf == "" || *outf == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *width < 1 {
		log.Fatalf("invalid line width: %d", *width)
	}

	in, err := seqfile.Open(*inf)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	fail := func(format string, args ...interface{}) {
		out.Abort()
		log.Fatalf(format, args...)
	}

	w := fasta.NewWriter(out, *width)
	var seqs, parts int
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		seqs++
		split, err := splitGaps(s)
		if err != nil {
			fail("failed to split %q: %v", s.Name(), err)
		}
		for _, p := range split {
			if _, err = w.Write(p); err != nil {
				fail("failed to write part %q: %v", p.Name(), err)
			}
		}
		parts += len(split)
	}
	if err = sc.Error(); err != nil {
		fail("failed during read: %v", err)
	}
	if seqs == 0 {
		fail("no sequences in %q: %v", *inf, seqfile.ErrEmptyInput)
	}
	if err = out.Commit(); err != nil {
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	log.Printf("split %d sequences into %d parts", seqs, parts)
}

func isGap(l alphabet.Letter) bool { return l == 'N' || l == 'n' }

// splitGaps returns the non-empty gap-free parts of s.
func splitGaps(s *linear.Seq) ([]*linear.Seq, error) {
	var (
		parts []*linear.Seq
		start int
		n     int
	)
	emit := func(end, to int) error {
		n++
		if end == start {
			return nil
		}
		p := linear.NewSeq(fmt.Sprintf("%s_part%d", s.ID, n), nil, s.Alpha)
		err := sequtils.Stitch(p, s, fs{fe{s: start, e: end}})
		if err != nil {
			return err
		}
		p.Desc = fmt.Sprintf("part %d from %d to %d", n, start, to)
		parts = append(parts, p)
		return nil
	}
	for i, l := range s.Seq {
		if !isGap(l) {
			continue
		}
		if err := emit(i, i+1); err != nil {
			return nil, err
		}
		start = i + 1
	}
	if err := emit(len(s.Seq), len(s.Seq)); err != nil {
		return nil, err
	}
	return parts, nil
}
