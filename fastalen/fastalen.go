// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fastalen writes the length of each sequence in a multi-FASTA file, one
// per line in input order. Sequences shorter than a length cut-off are
// omitted and the sequence ID may be written before each length.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/genotools/genotools/assembly"
	"github.com/genotools/genotools/seqfile"
)

var (
	inf  = flag.String("in", "", "input FASTA file (required)")
	outf = flag.String("out", "", "output file name (required)")
	min  = flag.Int("min", 0, "minimum sequence length cut-off (bp)")
	ids  = flag.Bool("ids", false, "write the sequence ID before each length")
	help = flag.Bool("help", false, "help prints this message.")
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

	in, err := seqfile.Open(*inf)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	w := bufio.NewWriter(out)
	n, err := writeLengths(w, in, *min, *ids)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = out.Commit()
	}
	if err != nil {
		out.Abort()
		log.Fatalf("failed to write lengths of %q: %v", *inf, err)
	}
	log.Printf("wrote %d lengths to %q", n, *outf)
}

// writeLengths writes the lengths of sequences in r that are at least
// min long to w and returns the number written. It returns
// seqfile.ErrEmptyInput if r holds no sequences.
func writeLengths(w io.Writer, r io.Reader, min int, ids bool) (int, error) {
	var seen, n int
	sc := assembly.NewScanner(r)
	for sc.Next() {
		seen++
		s := sc.Scaffold()
		if s.Length < min {
			continue
		}
		var err error
		if ids {
			_, err = fmt.Fprintf(w, "%s\t%d\n", s.ID, s.Length)
		} else {
			_, err = fmt.Fprintln(w, s.Length)
		}
		if err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	if seen == 0 {
		return 0, seqfile.ErrEmptyInput
	}
	return n, nil
}
