// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fastastats calculates assembly statistics from a multi-FASTA DNA
// sequence file, useful for assessing genome assemblies. It writes:
// the total number of scaffolds, assembly size, number of Ns, average,
// longest and shortest scaffold, N50/L50, N75/L75, N90/L90, GC content
// and the number and total length of scaffolds of at least 1Mb, 100kb,
// 10kb and 1kb.
//
// Letters are counted without regard to case and blank lines are
// ignored. Optionally a histogram of log10 scaffold lengths is written.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/genotools/genotools/assembly"
	"github.com/genotools/genotools/seqfile"
)

var (
	inf   = flag.String("in", "", "input FASTA file (required)")
	outf  = flag.String("out", "", "output statistics file (required)")
	plotf = flag.String("plot", "", "optional length histogram image (.png, .svg, .pdf, ...)")
	bins  = flag.Int("bins", 50, "number of histogram bins")
	help  = flag.Bool("help", false, "help prints this message")
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
	if *bins < 1 {
		log.Fatalf("invalid number of bins: %d", *bins)
	}

	in, err := seqfile.Open(*inf)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	log.Printf("reading sequence from %q", *inf)

	var st assembly.Stats
	sc := assembly.NewScanner(in)
	for sc.Next() {
		st.Add(sc.Scaffold())
	}
	if err = sc.Err(); err != nil {
		log.Fatalf("failed during read of %q: %v", *inf, err)
	}
	sum, err := st.Summary()
	if err != nil {
		log.Fatalf("no statistics for %q: %v", *inf, err)
	}

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	w := bufio.NewWriter(out)
	_, err = sum.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = out.Commit()
	}
	if err != nil {
		out.Abort()
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	log.Printf("wrote statistics for %d scaffolds to %q", sum.TotalScaffolds, *outf)

	if *plotf != "" {
		err = plotLengths(*plotf, sum.Lengths, *bins)
		if err != nil {
			log.Fatalf("failed to plot lengths: %v", err)
		}
	}
}
