// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/genotools/genotools/seqfile"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestWriteLengths(c *check.C) {
	const in = ">a first\nACGT\nAC\n>b\n\n>c\nNNNNNNNNNN\n"
	for i, t := range []struct {
		min  int
		ids  bool
		n    int
		want string
	}{
		{min: 0, n: 3, want: "6\n0\n10\n"},
		{min: 1, ids: true, n: 2, want: "a\t6\nc\t10\n"},
		{min: 7, n: 1, want: "10\n"},
	} {
		var buf strings.Builder
		n, err := writeLengths(&buf, strings.NewReader(in), t.min, t.ids)
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(n, check.Equals, t.n, check.Commentf("Test %d", i))
		c.Check(buf.String(), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestWriteLengthsEmpty(c *check.C) {
	var buf strings.Builder
	_, err := writeLengths(&buf, strings.NewReader("\n"), 0, false)
	c.Check(err, check.Equals, seqfile.ErrEmptyInput)
}
