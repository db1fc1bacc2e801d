// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diversity

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/genotools/genotools/seqfile"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const table = "chrom\tPOS\ts1\ts2\ts3\ts4\tother\n" +
	"chr2\t150\tA\tA\tT\tT\tA\n" +
	"chr1\t100\tA\tA\tA\tA\tT\n" +
	"chr1\t120\tA\tT\tA\tT\tG\n" +
	"chr1\t260\tC\tC\tC\tNA\tC\n" +
	"\n" +
	"chr1\t105\t.\t.\t.\tG\tA\n" +
	"chr3\t10\tNA\t./.\t.\t-\tA\n"

var samples = []string{"s1", "s2", "s3", "s4"}

func (s *S) TestSitePi(c *check.C) {
	for i, t := range []struct {
		calls  []string
		pi     float64
		called int
	}{
		{calls: nil, pi: 0, called: 0},
		{calls: []string{"A"}, pi: 0, called: 1},
		{calls: []string{"A", "A", "A", "A"}, pi: 0, called: 4},
		{calls: []string{"A", "T", "A", "T"}, pi: 0.5, called: 4},
		{calls: []string{"A", "A", "A", "T"}, pi: 2 * 0.75 * 0.25, called: 4},
		{calls: []string{"A", "A", "A", "B", "B", "C"}, pi: 2 * 0.5 * (2. / 6), called: 6},
		{calls: []string{"C", "B", "A"}, pi: 2 * (1. / 3) * (1. / 3), called: 3},
	} {
		pi, called := SitePi(t.calls)
		c.Check(called, check.Equals, t.called, check.Commentf("Test %d", i))
		c.Check(math.Abs(pi-t.pi) < 1e-12, check.Equals, true, check.Commentf("Test %d: got pi %v want %v", i, pi, t.pi))
	}
}

func (s *S) TestReadSamples(c *check.C) {
	got, err := ReadSamples(strings.NewReader("s1\n\n  s2\tpopA\ns3\n"))
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []string{"s1", "s2", "s3"})

	_, err = ReadSamples(strings.NewReader("\n \n"))
	c.Check(err, check.Equals, seqfile.ErrEmptyInput)

	_, err = ReadSamples(strings.NewReader("s1\ns2\ns1\n"))
	var me *seqfile.MalformedError
	c.Assert(errors.As(err, &me), check.Equals, true)
	c.Check(me.Line, check.Equals, 3)
}

func (s *S) TestReadTable(c *check.C) {
	tab, err := ReadTable(strings.NewReader(table), samples, DefaultTableOptions())
	c.Assert(err, check.IsNil)
	c.Check(tab.Len(), check.Equals, 6)
	c.Assert(tab.Chromosomes, check.HasLen, 3)
	c.Check(tab.Chromosomes[0].Name, check.Equals, "chr1")
	c.Check(tab.Chromosomes[0].Sites, check.DeepEquals, []Site{
		{Pos: 100, Called: 4, Pi: 0},
		{Pos: 105, Called: 1, Pi: 0},
		{Pos: 120, Called: 4, Pi: 0.5},
		{Pos: 260, Called: 3, Pi: 0},
	})
	c.Check(tab.Chromosomes[1].Name, check.Equals, "chr2")
	c.Check(tab.Chromosomes[2].Sites, check.DeepEquals, []Site{{Pos: 10}})
}

func (s *S) TestReadTableErrors(c *check.C) {
	for i, t := range []struct {
		in      string
		samples []string
		line    int
	}{
		{
			in:      table,
			samples: []string{"s1", "s9"},
			line:    1,
		},
		{
			in:      "chrom\tPOS\ts1\nchr1\t1\tA\nchr1\t2\n",
			samples: []string{"s1"},
			line:    3,
		},
		{
			in:      "chrom\tPOS\ts1\nchr1\tten\tA\n",
			samples: []string{"s1"},
			line:    2,
		},
		{
			in:      "chr\tPOS\ts1\nchr1\t1\tA\n",
			samples: []string{"s1"},
			line:    1,
		},
	} {
		_, err := ReadTable(strings.NewReader(t.in), t.samples, DefaultTableOptions())
		var me *seqfile.MalformedError
		c.Assert(errors.As(err, &me), check.Equals, true, check.Commentf("Test %d: %v", i, err))
		c.Check(me.Line, check.Equals, t.line, check.Commentf("Test %d", i))
	}

	for _, in := range []string{"", "chrom\tPOS\ts1\n"} {
		_, err := ReadTable(strings.NewReader(in), []string{"s1"}, DefaultTableOptions())
		c.Check(err, check.Equals, seqfile.ErrEmptyInput)
	}
}

func (s *S) TestReadTableColumnNames(c *check.C) {
	in := "#CHROM\tpos\tx\nchrX\t7\tA\n"
	tab, err := ReadTable(strings.NewReader(in), []string{"x"}, DefaultTableOptions())
	c.Assert(err, check.IsNil)
	c.Check(tab.Chromosomes, check.DeepEquals, []Chromosome{{Name: "chrX", Sites: []Site{{Pos: 7, Called: 1}}}})
}

func (s *S) TestWindows(c *check.C) {
	tab, err := ReadTable(strings.NewReader(table), samples, DefaultTableOptions())
	c.Assert(err, check.IsNil)
	got, err := tab.Windows(100, 50)
	c.Assert(err, check.IsNil)
	c.Assert(got, check.HasLen, 5)

	c.Check(got[0], check.Equals, Window{Chrom: "chr1", Start: 100, End: 200, Variants: 3, Pi: 0.5 / 3})
	c.Check(got[1], check.Equals, Window{Chrom: "chr1", Start: 200, End: 300, Variants: 1, Pi: 0})
	c.Check(got[2], check.Equals, Window{Chrom: "chr1", Start: 250, End: 350, Variants: 1, Pi: 0})
	// Each chromosome is anchored at its own first position.
	c.Check(got[3], check.Equals, Window{Chrom: "chr2", Start: 150, End: 250, Variants: 1, Pi: 0.5})
	c.Check(got[4].Chrom, check.Equals, "chr3")
	c.Check(got[4].Start, check.Equals, 10)
	c.Check(got[4].Variants, check.Equals, 1)
	c.Check(math.IsNaN(got[4].Pi), check.Equals, true)
}

func (s *S) TestWindowsSingleSite(c *check.C) {
	chr := Chromosome{Name: "c", Sites: []Site{{Pos: 42, Called: 4, Pi: 0}}}
	got, err := chr.Windows(100000, 10000)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Window{{Chrom: "c", Start: 42, End: 100042, Variants: 1, Pi: 0}})
}

func (s *S) TestWindowsDuplicatePositions(c *check.C) {
	chr := Chromosome{Name: "c", Sites: []Site{
		{Pos: 5, Called: 4, Pi: 0.5},
		{Pos: 5, Called: 4, Pi: 0},
		{Pos: 9, Called: 4, Pi: 0.5},
	}}
	got, err := chr.Windows(4, 4)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Window{
		{Chrom: "c", Start: 5, End: 9, Variants: 2, Pi: 0.25},
		{Chrom: "c", Start: 9, End: 13, Variants: 1, Pi: 0.5},
	})
}

func (s *S) TestWindowsBadSize(c *check.C) {
	chr := Chromosome{Name: "c", Sites: []Site{{Pos: 1}}}
	for _, p := range [][2]int{{0, 1}, {1, 0}, {-5, 10}} {
		_, err := chr.Windows(p[0], p[1])
		c.Check(err, check.Equals, ErrBadWindow)
	}
}

func (s *S) TestWriteWindows(c *check.C) {
	tab, err := ReadTable(strings.NewReader(table), samples, DefaultTableOptions())
	c.Assert(err, check.IsNil)
	var outputs [2]string
	for i := range outputs {
		w, err := tab.Windows(100, 50)
		c.Assert(err, check.IsNil)
		var buf strings.Builder
		c.Assert(WriteWindows(&buf, w), check.IsNil)
		outputs[i] = buf.String()
	}
	c.Check(outputs[0], check.Equals, outputs[1])
	c.Check(outputs[0], check.Equals, "CHROM\tBIN_START\tBIN_END\tN_VARIANTS\tPI\n"+
		"chr1\t100\t200\t3\t0.16666666666666666\n"+
		"chr1\t200\t300\t1\t0\n"+
		"chr1\t250\t350\t1\t0\n"+
		"chr2\t150\t250\t1\t0.5\n"+
		"chr3\t10\t110\t1\tNA\n")
}
