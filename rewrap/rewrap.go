// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rewrap rewrites a multi-FASTA file so that every sequence is wrapped
// at a fixed line width.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/genotools/genotools/seqfile"
)

var (
	inf   = flag.String("in", "", "input FASTA file (required)")
	outf  = flag.String("out", "", "output FASTA file (required)")
	width = flag.Int("width", 100, "sequence line width")
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

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	n, err := rewrap(out, in, *width)
	if err == nil {
		err = out.Commit()
	}
	if err != nil {
		out.Abort()
		log.Fatalf("failed to rewrap %q: %v", *inf, err)
	}
	log.Printf("wrote %d sequences to %q", n, *outf)
}

// rewrap copies the sequences in r to w wrapped at width letters per line
// and returns the number of sequences copied.
func rewrap(w io.Writer, r io.Reader, width int) (int, error) {
	var n int
	fw := fasta.NewWriter(w, width)
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAgapped)))
	for sc.Next() {
		if _, err := fw.Write(sc.Seq()); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Error(); err != nil {
		return n, err
	}
	if n == 0 {
		return 0, seqfile.ErrEmptyInput
	}
	return n, nil
}
