// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// snppi calculates nucleotide diversity (pi) in sliding windows over a
// tab-separated SNP genotype table for a group of samples.
//
// The table must have a header row naming a chromosome column, a position
// column and one genotype column per sample. For each chromosome, windows
// of -bin bp start at the chromosome's first variant position and advance
// by -step bp until they pass its last variant position. Each variant's pi
// is 2pq where p and q are the frequencies of the two most common genotype
// values called among the samples, and a window's pi is the mean over its
// variants. Windows without variants are not reported.
//
// Output columns are CHROM, BIN_START, BIN_END, N_VARIANTS and PI.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/genotools/genotools/diversity"
	"github.com/genotools/genotools/seqfile"
)

var (
	snpf     = flag.String("snp", "", "input SNP table in TSV format (required)")
	samplesf = flag.String("samples", "", "file listing the samples to use, one per line (required)")
	outf     = flag.String("out", "", "output window table (required)")
	bin      = flag.Int("bin", 100000, "window size (bp)")
	step     = flag.Int("step", 10000, "window step (bp)")
	chrom    = flag.String("chrom", "chrom", "name of the chromosome column")
	pos      = flag.String("pos", "POS", "name of the position column")
	missing  = flag.String("missing", strings.Join(diversity.DefaultMissing, ","), "comma-separated genotype values treated as missing")
	plotf    = flag.String("plot", "", "optional image of pi along each chromosome (.png, .svg, .pdf, ...)")
	help     = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *snpf == "" || *samplesf == "" || *outf == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *bin <= 0 || *step <= 0 {
		log.Fatalf("invalid window: -bin %d -step %d", *bin, *step)
	}

	samples, err := readSamples(*samplesf)
	if err != nil {
		log.Fatalf("failed to read samples: %v", err)
	}
	log.Printf("using %d samples from %q", len(samples), *samplesf)

	opts := diversity.TableOptions{
		ChromColumn: *chrom,
		PosColumn:   *pos,
		Missing:     splitList(*missing),
	}
	tab, err := readTable(*snpf, samples, opts)
	if err != nil {
		log.Fatalf("failed to read SNP table: %v", err)
	}
	log.Printf("read %d variants on %d chromosomes from %q", tab.Len(), len(tab.Chromosomes), *snpf)

	windows, err := tab.Windows(*bin, *step)
	if err != nil {
		log.Fatal(err)
	}

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	w := bufio.NewWriter(out)
	err = diversity.WriteWindows(w, windows)
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
	log.Printf("wrote %d windows to %q", len(windows), *outf)

	if *plotf != "" {
		err = plotPi(*plotf, windows)
		if err != nil {
			log.Fatalf("failed to plot pi: %v", err)
		}
	}
}

func readSamples(path string) ([]string, error) {
	f, err := seqfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return diversity.ReadSamples(f)
}

func readTable(path string, samples []string, opts diversity.TableOptions) (*diversity.Table, error) {
	f, err := seqfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return diversity.ReadTable(f, samples, opts)
}

func splitList(s string) []string {
	var l []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			l = append(l, f)
		}
	}
	return l
}
