// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"bufio"
	"bytes"
	"io"

	"github.com/genotools/genotools/seqfile"
)

// State is the state of a Scanner between lines.
type State int

const (
	// AwaitingHeader is the state before the first header line
	// and after the final scaffold has been emitted.
	AwaitingHeader State = iota

	// AccumulatingSequence is the state while sequence lines
	// are being added to an open scaffold.
	AccumulatingSequence
)

func (s State) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting header"
	case AccumulatingSequence:
		return "accumulating sequence"
	}
	return "unknown state"
}

// Scaffold is a closed FASTA record. Only the counts needed for assembly
// statistics are retained, the sequence itself is discarded.
type Scaffold struct {
	ID     string
	Length int // Number of non-whitespace sequence characters.
	N      int // Number of N or n characters.
	GC     int // Number of G, g, C or c characters.
}

// class is the base class table used to count scaffold composition.
var class [256]byte

const (
	base = iota
	space
	gap
	gc
)

func init() {
	for _, c := range []byte(" \t\r\n\v\f") {
		class[c] = space
	}
	for _, c := range []byte("Nn") {
		class[c] = gap
	}
	for _, c := range []byte("GgCc") {
		class[c] = gc
	}
}

// Scanner streams scaffolds from FASTA formatted data. Lines beginning
// with '>' open a new scaffold and close the open one; the final scaffold
// is closed by an explicit finalize step at end of input. Blank lines are
// ignored and sequence lines may be wrapped at any width or not at all.
type Scanner struct {
	r *bufio.Reader

	state    State
	cur      Scaffold
	scaffold Scaffold

	// header holds the text of a header line that
	// is still being read.
	header   []byte
	inHeader bool

	line        int
	atLineStart bool
	eof         bool
	err         error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:           bufio.NewReaderSize(r, 1<<16),
		atLineStart: true,
	}
}

// State returns the current state of the scanner.
func (s *Scanner) State() State { return s.state }

// Next advances the Scanner to the next closed scaffold, which is then
// available through Scaffold. It returns false when there are no more
// scaffolds or an error has occurred.
func (s *Scanner) Next() bool {
	for !s.eof && s.err == nil {
		frag, err := s.r.ReadSlice('\n')
		switch err {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			s.eof = true
		default:
			s.err = err
			return false
		}
		closed := s.consume(frag)
		if s.err != nil {
			return false
		}
		if closed {
			return true
		}
	}
	if s.err != nil {
		return false
	}
	return s.finalize()
}

// Scaffold returns the most recently closed scaffold.
func (s *Scanner) Scaffold() Scaffold { return s.scaffold }

// Err returns the first non-EOF error encountered by the Scanner.
func (s *Scanner) Err() error { return s.err }

// consume handles a line fragment and reports whether it closed a scaffold.
func (s *Scanner) consume(frag []byte) bool {
	if len(frag) == 0 {
		return false
	}
	start := s.atLineStart
	s.atLineStart = frag[len(frag)-1] == '\n'
	if start {
		s.line++
	}

	var closed bool
	switch {
	case start && frag[0] == '>':
		if s.state == AccumulatingSequence {
			s.scaffold = s.cur
			closed = true
		}
		s.cur = Scaffold{}
		s.state = AccumulatingSequence
		s.inHeader = true
		s.header = append(s.header[:0], frag[1:]...)
	case s.inHeader:
		s.header = append(s.header, frag...)
	default:
		s.count(frag)
	}
	if s.inHeader && s.atLineStart {
		s.closeHeader()
	}
	return closed
}

func (s *Scanner) count(frag []byte) {
	for _, c := range frag {
		switch class[c] {
		case space:
			continue
		case gap:
			s.cur.N++
		case gc:
			s.cur.GC++
		}
		if s.state != AccumulatingSequence {
			s.err = &seqfile.MalformedError{Line: s.line, Reason: "sequence data before first header"}
			return
		}
		s.cur.Length++
	}
}

func (s *Scanner) closeHeader() {
	if f := bytes.Fields(s.header); len(f) != 0 {
		s.cur.ID = string(f[0])
	}
	s.inHeader = false
}

// finalize closes the open scaffold at end of input.
func (s *Scanner) finalize() bool {
	if s.inHeader {
		s.closeHeader()
	}
	if s.state != AccumulatingSequence {
		return false
	}
	s.scaffold = s.cur
	s.cur = Scaffold{}
	s.state = AwaitingHeader
	return true
}
