// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aln

import (
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"
)

// M5 field order: qname qlen qstart qend qstrand tname tlen tstart tend
// tstrand score nmatch nmismatch nins ndel mapqv qaln matchpattern taln
const (
	fQName = iota
	fQLen
	fQStart
	fQEnd
	fQStrand
	fTName
	fTLen
	fTStart
	fTEnd
	fTStrand
	fScore
	fNMatch
	fNMismatch
	fNIns
	fNDel
	fMapQV
	fQAln
	fMatchPattern
	fTAln

	numFields
)

// decode parses one whitespace-delimited M5 line. path and lineNo are
// used only to annotate a FormatError.
func decode(path string, lineNo int, line string) (Alignment, error) {
	fields := strings.Fields(line)
	if len(fields) != numFields {
		return Alignment{}, &FormatError{
			Path: path, Line: lineNo,
			Msg: "wrong field count: want " + strconv.Itoa(numFields) + ", got " + strconv.Itoa(len(fields)),
		}
	}

	var a Alignment
	var err error

	a.QueryID = fields[fQName]
	if a.QueryLen, err = atoi(fields[fQLen]); err != nil {
		return Alignment{}, badField(path, lineNo, "qlen", err)
	}
	if a.QueryStart, err = atoi(fields[fQStart]); err != nil {
		return Alignment{}, badField(path, lineNo, "qstart", err)
	}
	if a.QueryEnd, err = atoi(fields[fQEnd]); err != nil {
		return Alignment{}, badField(path, lineNo, "qend", err)
	}
	if a.QueryStrand, err = strand(fields[fQStrand]); err != nil {
		return Alignment{}, badField(path, lineNo, "qstrand", err)
	}

	a.TargetID = fields[fTName]
	if a.TargetLen, err = atoi(fields[fTLen]); err != nil {
		return Alignment{}, badField(path, lineNo, "tlen", err)
	}
	if a.TargetStart, err = atoi(fields[fTStart]); err != nil {
		return Alignment{}, badField(path, lineNo, "tstart", err)
	}
	if a.TargetEnd, err = atoi(fields[fTEnd]); err != nil {
		return Alignment{}, badField(path, lineNo, "tend", err)
	}
	if a.TargetStrand, err = strand(fields[fTStrand]); err != nil {
		return Alignment{}, badField(path, lineNo, "tstrand", err)
	}

	a.AlignedQuery = fields[fQAln]
	_ = fields[fMatchPattern] // retained only for field-count validation
	a.AlignedTarget = fields[fTAln]

	if len(a.AlignedQuery) != len(a.AlignedTarget) {
		return Alignment{}, &FormatError{
			Path: path, Line: lineNo,
			Msg: "aligned query and target strings differ in length",
		}
	}
	if n := countBases(a.AlignedTarget); n != a.TargetEnd-a.TargetStart {
		return Alignment{}, &FormatError{
			Path: path, Line: lineNo,
			Msg: "aligned target base count does not match tend-tstart",
		}
	}

	return a, nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(s)
}

func strand(s string) (seq.Strand, error) {
	switch s {
	case "+":
		return seq.Plus, nil
	case "-":
		return seq.Minus, nil
	default:
		return seq.None, strconv.ErrSyntax
	}
}

func badField(path string, lineNo int, field string, err error) error {
	return &FormatError{Path: path, Line: lineNo, Msg: "bad " + field + ": " + err.Error()}
}

func countBases(s string) int {
	n := 0
	for _, b := range s {
		if b != '-' {
			n++
		}
	}
	return n
}
