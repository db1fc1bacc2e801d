// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqfile provides input and output file handling shared by the
// genotools commands. Inputs may be gzip compressed and outputs are only
// made visible at their destination once they have been completely written.
package seqfile

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
)

// ErrEmptyInput is returned when an input holds no records.
var ErrEmptyInput = errors.New("seqfile: empty input")

// MissingFileError is returned when an input path cannot be opened.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("seqfile: cannot open %q: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// MalformedError is returned for records that cannot be interpreted.
// Line is the 1-based line number of the offending record, or zero if
// the error does not relate to a specific line.
type MalformedError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	var b strings.Builder
	b.WriteString("seqfile: malformed")
	if e.Path != "" {
		fmt.Fprintf(&b, " %q", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open opens the named file for reading. Files with a .gz suffix are
// transparently decompressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, &MalformedError{Path: path, Reason: err.Error()}
	}
	return gzipFile{Reader: gz, f: f}, nil
}

// Output is a pending output file. Writes go to a temporary file in the
// destination directory which replaces the destination on Commit.
type Output struct {
	path string
	pf   *renameio.PendingFile
	done bool
}

// Create returns a pending output for path.
func Create(path string) (*Output, error) {
	pf, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return nil, fmt.Errorf("seqfile: cannot create %q: %w", path, err)
	}
	return &Output{path: path, pf: pf}, nil
}

// Write writes p to the pending file.
func (o *Output) Write(p []byte) (int, error) { return o.pf.Write(p) }

// Name returns the destination path of the output.
func (o *Output) Name() string { return o.path }

// Commit closes the pending file and renames it to the destination path.
func (o *Output) Commit() error {
	if o.done {
		return fmt.Errorf("seqfile: %q already finalized", o.path)
	}
	o.done = true
	if err := o.pf.Chmod(0o644); err != nil {
		o.pf.Cleanup()
		return err
	}
	return o.pf.CloseAtomicallyReplace()
}

// Abort discards the pending file. Abort after Commit is a no-op.
func (o *Output) Abort() error {
	if o.done {
		return nil
	}
	o.done = true
	return o.pf.Cleanup()
}
