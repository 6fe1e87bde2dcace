// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aln holds the Alignment record type decoded from an M5
// pairwise-alignment stream, and the target-grouped batch iterator
// built over it.
package aln

import (
	"fmt"

	"github.com/biogo/biogo/seq"
)

// Alignment is one M5 pairwise alignment record, trimmed to the
// fields the consensus pipeline needs.
type Alignment struct {
	QueryID     string
	QueryLen    int
	QueryStart  int
	QueryEnd    int
	QueryStrand seq.Strand

	TargetID     string
	TargetLen    int
	TargetStart  int
	TargetEnd    int
	TargetStrand seq.Strand

	// AlignedQuery and AlignedTarget are the gapped alignment strings.
	// They are always the same length.
	AlignedQuery  string
	AlignedTarget string
}

// Len returns the number of columns in the alignment pair.
func (a *Alignment) Len() int {
	return len(a.AlignedTarget)
}

// QueryAlignedLen returns the count of non-gap characters in the
// aligned query, the length spec.md §6 filters on for min-length.
func (a *Alignment) QueryAlignedLen() int {
	n := 0
	for _, b := range a.AlignedQuery {
		if b != '-' {
			n++
		}
	}
	return n
}

// Batch is an ordered sequence of Alignments sharing one grouping
// key (by convention the target identifier, or the query identifier
// in query-sorted mode). ID is the shared key.
type Batch struct {
	ID   string
	Alns []Alignment
}

// OpenError describes a failure to open an M5 stream. Reader works on
// an already-open io.Reader, so no function in this package returns it.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("aln: failed to open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// FormatError is returned for one malformed M5 record. The offending
// line is dropped and the enclosing batch continues.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("aln: %s:%d: %s", e.Path, e.Line, e.Msg)
}

// SortError is returned when a grouping key reappears after the
// parser has already closed out a batch for it. It is fatal for the
// remainder of the input.
type SortError struct {
	Key string
}

func (e *SortError) Error() string {
	return fmt.Sprintf("aln: input is not sorted: key %q reappeared", e.Key)
}
