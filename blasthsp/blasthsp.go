// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// blasthsp extracts the subject sequences of all high-scoring pairs
// (Hsp_hseq elements) from BLAST XML output (-outfmt 5) and writes them
// as FASTA. Sequences are written in reverse document order and named
// <sample>_sequence_<i>, where sample is the input file name up to its
// first '.', and i counts from 1.
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/genotools/genotools/seqfile"
)

var (
	inf   = flag.String("in", "", "input BLAST XML file (required)")
	outf  = flag.String("out", "", "output FASTA file (required)")
	width = flag.Int("width", 0, "output sequence line width, 0 for unwrapped")
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
	if *width < 0 {
		log.Fatalf("invalid line width: %d", *width)
	}

	in, err := seqfile.Open(*inf)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	hseqs, err := readHseqs(in)
	if err != nil {
		log.Fatalf("failed to read %q: %v", *inf, err)
	}

	out, err := seqfile.Create(*outf)
	if err != nil {
		log.Fatal(err)
	}
	err = writeFasta(out, sampleName(*inf), hseqs, *width)
	if err == nil {
		err = out.Commit()
	}
	if err != nil {
		out.Abort()
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	log.Printf("extracted %d sequences from %q to %q", len(hseqs), *inf, *outf)
}

// hsp holds the fields of a BLAST Hsp element that are used.
type hsp struct {
	Hseq *string `xml:"Hsp_hseq"`
}

// readHseqs returns the text of every Hsp_hseq child of an Hsp element
// in r, in document order. It returns seqfile.ErrEmptyInput if there are
// none.
func readHseqs(r io.Reader) ([]string, error) {
	var hseqs []string
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Hsp" {
			continue
		}
		var h hsp
		if err = d.DecodeElement(&h, &se); err != nil {
			return nil, err
		}
		if h.Hseq != nil {
			hseqs = append(hseqs, strings.TrimSpace(*h.Hseq))
		}
	}
	if len(hseqs) == 0 {
		return nil, seqfile.ErrEmptyInput
	}
	return hseqs, nil
}

// sampleName returns the base name of path up to its first '.'.
func sampleName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// writeFasta writes hseqs to w in reverse order, numbering the sequences
// from 1. A zero width writes each sequence on a single line.
func writeFasta(w io.Writer, sample string, hseqs []string, width int) error {
	var fw *fasta.Writer
	if width > 0 {
		fw = fasta.NewWriter(w, width)
	}
	for i := range hseqs {
		s := linear.NewSeq(
			fmt.Sprintf("%s_sequence_%d", sample, i+1),
			alphabet.BytesToLetters([]byte(hseqs[len(hseqs)-1-i])),
			alphabet.DNAgapped,
		)
		var err error
		if fw != nil {
			_, err = fw.Write(s)
		} else {
			_, err = fmt.Fprintf(w, "%a\n", s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
