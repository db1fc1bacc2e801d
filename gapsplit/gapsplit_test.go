// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

type part struct {
	id, desc, seq string
}

func letters(s *linear.Seq) string {
	b := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		b[i] = byte(l)
	}
	return string(b)
}

func (s *S) TestSplitGaps(c *check.C) {
	for i, t := range []struct {
		seq  string
		want []part
	}{
		{
			seq:  "ACGT",
			want: []part{{"chr1_part1", "part 1 from 0 to 4", "ACGT"}},
		},
		{
			seq: "ACGTNNAC",
			want: []part{
				{"chr1_part1", "part 1 from 0 to 5", "ACGT"},
				{"chr1_part3", "part 3 from 6 to 8", "AC"},
			},
		},
		{
			seq: "nACnGTN",
			want: []part{
				{"chr1_part2", "part 2 from 1 to 4", "AC"},
				{"chr1_part3", "part 3 from 4 to 7", "GT"},
			},
		},
		{
			seq:  "NNNN",
			want: nil,
		},
		{
			seq:  "",
			want: nil,
		},
	} {
		in := linear.NewSeq("chr1", alphabet.BytesToLetters([]byte(t.seq)), alphabet.DNA)
		parts, err := splitGaps(in)
		c.Assert(err, check.IsNil, check.Commentf("Test %d", i))
		var got []part
		for _, p := range parts {
			got = append(got, part{p.ID, p.Desc, letters(p)})
		}
		c.Check(got, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}
