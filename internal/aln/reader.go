// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aln

import (
	"bufio"
	"io"
)

// groupMode selects which field of an Alignment is used as the
// grouping key, per the M5 parser's sort-order auto-detection
// (spec.md §4.A).
type groupMode int

const (
	byTarget groupMode = iota
	byQuery
)

// Reader decodes an M5 stream into a sequence of Batches, one per
// grouping key, in the order the keys are encountered. Malformed
// records are reported through onWarn (if non-nil) and dropped; a
// key reappearing after its batch has closed is fatal and surfaces
// as a *SortError from Next.
type Reader struct {
	sc   *bufio.Scanner
	path string

	onWarn func(error)

	line int
	done bool

	mode      groupMode
	modeFixed bool

	pending   *Alignment
	closedKey map[string]bool
}

// NewReader returns a Reader over r. path is used only to annotate
// FormatErrors and need not name a real file (it may be "-" for
// standard input). onWarn, if non-nil, is called once per dropped
// malformed record.
func NewReader(r io.Reader, path string, onWarn func(error)) *Reader {
	return &Reader{
		sc:        bufio.NewScanner(r),
		path:      path,
		onWarn:    onWarn,
		closedKey: make(map[string]bool),
	}
}

// keyOf returns the grouping key for a under the Reader's current
// mode.
func (r *Reader) keyOf(a *Alignment) string {
	if r.mode == byQuery {
		return a.QueryID
	}
	return a.TargetID
}

// readRecord reads and decodes the next well-formed record, skipping
// and reporting malformed lines along the way. It returns io.EOF when
// the underlying stream is exhausted.
func (r *Reader) readRecord() (*Alignment, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if len(line) == 0 {
			continue
		}
		a, err := decode(r.path, r.line, line)
		if err != nil {
			if r.onWarn != nil {
				r.onWarn(err)
			}
			continue
		}
		return &a, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// fixMode reads ahead to decide target- versus query-sorted mode, per
// spec.md §4.A: the stream is target-sorted unless its first two
// records share a query identifier instead. The first record always
// starts the first batch, regardless of which mode is chosen — see
// SPEC_FULL.md §4.A's Open Question resolution.
func (r *Reader) fixMode() (first, second *Alignment, err error) {
	first, err = r.readRecord()
	if err != nil {
		return nil, nil, err
	}
	second, err = r.readRecord()
	if err == io.EOF {
		r.mode = byTarget
		r.modeFixed = true
		return first, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if first.TargetID != second.TargetID && first.QueryID == second.QueryID {
		r.mode = byQuery
	} else {
		r.mode = byTarget
	}
	r.modeFixed = true
	return first, second, nil
}

// Next returns the next Batch in the stream. It returns io.EOF once
// the stream (and any final batch) has been fully consumed, and
// returns a *SortError if a previously closed grouping key
// reappears.
func (r *Reader) Next() (Batch, error) {
	for {
		b, err := r.next()
		if err != nil {
			return Batch{}, err
		}
		if len(b.Alns) == 0 {
			// All records for this key were malformed; spec.md §7:
			// "If the batch becomes empty, it is simply not emitted."
			continue
		}
		return b, nil
	}
}

func (r *Reader) next() (Batch, error) {
	if r.done {
		return Batch{}, io.EOF
	}

	var cur *Alignment
	if !r.modeFixed {
		first, second, err := r.fixMode()
		if err != nil && err != io.EOF {
			r.done = true
			return Batch{}, err
		}
		if first == nil {
			r.done = true
			return Batch{}, io.EOF
		}
		cur = first
		r.pending = second
	} else {
		cur = r.pending
		r.pending = nil
		if cur == nil {
			r.done = true
			return Batch{}, io.EOF
		}
	}

	key := r.keyOf(cur)
	if r.closedKey[key] {
		r.done = true
		return Batch{}, &SortError{Key: key}
	}
	batch := Batch{ID: key, Alns: []Alignment{*cur}}

	for {
		next := r.pending
		r.pending = nil
		if next == nil {
			var err error
			next, err = r.readRecord()
			if err == io.EOF {
				r.done = true
				r.closedKey[key] = true
				return batch, nil
			}
			if err != nil {
				r.done = true
				return Batch{}, err
			}
		}

		nk := r.keyOf(next)
		if nk == key {
			batch.Alns = append(batch.Alns, *next)
			continue
		}

		// The batch just closed is complete; a reappearing key in next
		// is reported as a *SortError by the following call.
		r.closedKey[key] = true
		r.pending = next
		return batch, nil
	}
}
