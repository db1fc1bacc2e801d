// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diversity calculates nucleotide diversity (pi) in sliding
// windows over tabular SNP genotype data.
package diversity

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/genotools/genotools/seqfile"
)

// DefaultMissing is the default set of genotype values treated as
// missing calls. Empty cells are always missing.
var DefaultMissing = []string{"NA", "N/A", "NaN", ".", "./.", ".|.", "-"}

// TableOptions specifies how a SNP table is interpreted.
type TableOptions struct {
	// ChromColumn and PosColumn are the header names of the
	// chromosome and position columns. Names are matched without
	// regard to case or a leading '#'.
	ChromColumn string
	PosColumn   string

	// Missing lists the genotype values that are not calls.
	Missing []string
}

// DefaultTableOptions returns the options used for tables with
// chrom and POS columns.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		ChromColumn: "chrom",
		PosColumn:   "POS",
		Missing:     DefaultMissing,
	}
}

// Site is a variant row reduced to its position and per-site pi.
type Site struct {
	Pos int

	// Called is the number of selected samples with a
	// non-missing genotype at the site.
	Called int
	Pi     float64
}

// Chromosome holds the sites of one chromosome sorted by position.
type Chromosome struct {
	Name  string
	Sites []Site
}

// Table holds the sites of a SNP table grouped by chromosome. Chromosomes
// are sorted by name.
type Table struct {
	Samples     []string
	Chromosomes []Chromosome
}

// Len returns the total number of sites in the table.
func (t *Table) Len() int {
	var n int
	for _, c := range t.Chromosomes {
		n += len(c.Sites)
	}
	return n
}

// ReadSamples reads a newline-delimited list of sample names. Only the
// first whitespace-delimited field of each line is used and blank lines
// are ignored.
func ReadSamples(r io.Reader) ([]string, error) {
	var (
		samples []string
		seen    = make(map[string]int)
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if prev, ok := seen[f[0]]; ok {
			return nil, &seqfile.MalformedError{
				Line:   line,
				Reason: fmt.Sprintf("duplicate sample %q (first on line %d)", f[0], prev),
			}
		}
		seen[f[0]] = line
		samples = append(samples, f[0])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, seqfile.ErrEmptyInput
	}
	return samples, nil
}

func columnName(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}

// ReadTable reads a tab-separated SNP table with a header row from r,
// retaining the genotypes of the named samples. Every sample must be a
// column of the table.
func ReadTable(r io.Reader, samples []string, opts TableOptions) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, seqfile.ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}
	width := len(header)

	chromCol, posCol := -1, -1
	byName := make(map[string]int, width)
	for i, h := range header {
		switch columnName(h) {
		case columnName(opts.ChromColumn):
			if chromCol < 0 {
				chromCol = i
			}
		case columnName(opts.PosColumn):
			if posCol < 0 {
				posCol = i
			}
		}
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
	}
	if chromCol < 0 {
		return nil, &seqfile.MalformedError{Line: 1, Reason: fmt.Sprintf("no %q column in header", opts.ChromColumn)}
	}
	if posCol < 0 {
		return nil, &seqfile.MalformedError{Line: 1, Reason: fmt.Sprintf("no %q column in header", opts.PosColumn)}
	}

	cols := make([]int, len(samples))
	var absent []string
	for i, s := range samples {
		c, ok := byName[s]
		if !ok {
			absent = append(absent, strconv.Quote(s))
			continue
		}
		cols[i] = c
	}
	if len(absent) != 0 {
		return nil, &seqfile.MalformedError{
			Line:   1,
			Reason: fmt.Sprintf("samples not in table: %s", strings.Join(absent, ", ")),
		}
	}

	missing := make(map[string]bool, len(opts.Missing)+1)
	missing[""] = true
	for _, m := range opts.Missing {
		missing[m] = true
	}

	var (
		t     = &Table{Samples: samples}
		index = make(map[string]int)
		calls = make([]string, 0, len(samples))
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != width {
			return nil, &seqfile.MalformedError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d columns, header has %d", len(rec), width),
			}
		}
		pos, err := strconv.Atoi(strings.TrimSpace(rec[posCol]))
		if err != nil {
			return nil, &seqfile.MalformedError{
				Line:   line,
				Reason: fmt.Sprintf("invalid position %q", rec[posCol]),
			}
		}

		calls = calls[:0]
		for _, c := range cols {
			g := strings.TrimSpace(rec[c])
			if missing[g] {
				continue
			}
			calls = append(calls, g)
		}
		pi, called := SitePi(calls)

		name := rec[chromCol]
		i, ok := index[name]
		if !ok {
			i = len(t.Chromosomes)
			index[name] = i
			// Avoid retaining the whole record string.
			t.Chromosomes = append(t.Chromosomes, Chromosome{Name: strings.Clone(name)})
		}
		t.Chromosomes[i].Sites = append(t.Chromosomes[i].Sites, Site{Pos: pos, Called: called, Pi: pi})
	}
	if len(t.Chromosomes) == 0 {
		return nil, seqfile.ErrEmptyInput
	}

	sort.Slice(t.Chromosomes, func(i, j int) bool {
		return t.Chromosomes[i].Name < t.Chromosomes[j].Name
	})
	for _, c := range t.Chromosomes {
		sort.SliceStable(c.Sites, func(i, j int) bool { return c.Sites[i].Pos < c.Sites[j].Pos })
	}
	return t, nil
}
