// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gapnorm canonicalizes gap placement within homopolymer runs
// of an alignment pair and trims columns from either end, component B
// of the consensus pipeline (spec.md §4.B).
package gapnorm

import "github.com/kortschak/dagcon/internal/aln"

// Normalize returns a copy of a with gaps inside homopolymer runs
// pushed to a canonical position: rightmost among the aligned target
// columns for insertions (gap in target), leftmost among the aligned
// query columns for deletions (gap in query). Two alignments that
// differ only in gap placement within a run produce the identical
// column path after Normalize, which is what lets internal/dagraph
// merge them onto one node instead of two.
//
// Normalize is idempotent and preserves alignment length and the
// underlying ungapped sequences: within a homopolymer run every
// non-gap column carries the same base, so permuting which columns
// hold that base and which hold the gap changes neither sequence.
func Normalize(a aln.Alignment) aln.Alignment {
	t := []byte(a.AlignedTarget)
	q := []byte(a.AlignedQuery)

	normalizeRuns(t, q, '-', true)  // insertions: canonicalize against target
	normalizeRuns(q, t, '-', false) // deletions: canonicalize against query

	a.AlignedTarget = string(t)
	a.AlignedQuery = string(q)
	return a
}

// normalizeRuns canonicalizes gap placement in gapped (the string
// carrying the gap character) against base (the string whose value at
// the gap defines the homopolymer run). When basesFirst is true, the
// non-gap columns of the run are moved to its left edge and the gaps
// to its right edge (the target canonical form); when false, the
// gaps are moved to the left edge and the non-gap columns to the
// right (the query canonical form).
func normalizeRuns(gapped, base []byte, gap byte, basesFirst bool) {
	i := 0
	for i < len(gapped) {
		if gapped[i] != gap {
			i++
			continue
		}
		b := base[i]

		start := i
		for start > 0 && base[start-1] == b && (gapped[start-1] == gap || gapped[start-1] == b) {
			start--
		}
		end := i
		for end < len(gapped) && base[end] == b && (gapped[end] == gap || gapped[end] == b) {
			end++
		}

		nGaps := 0
		for k := start; k < end; k++ {
			if gapped[k] == gap {
				nGaps++
			}
		}
		nBases := (end - start) - nGaps

		if basesFirst {
			for k := start; k < start+nBases; k++ {
				gapped[k] = b
			}
			for k := start + nBases; k < end; k++ {
				gapped[k] = gap
			}
		} else {
			for k := start; k < start+nGaps; k++ {
				gapped[k] = gap
			}
			for k := start + nGaps; k < end; k++ {
				gapped[k] = b
			}
		}

		i = end
	}
}

// Trim removes trim columns from each end of the alignment pair and
// adjusts the four coordinates by the count of non-gap characters
// removed from the corresponding string. It reports false if the
// alignment is too short to survive the trim (spec.md §4.B:
// 2*trim >= alignment length), in which case the zero Alignment is
// returned and must be discarded by the caller.
func Trim(a aln.Alignment, trim int) (aln.Alignment, bool) {
	n := a.Len()
	if 2*trim >= n {
		return aln.Alignment{}, false
	}

	leftT, leftQ := a.AlignedTarget[:trim], a.AlignedQuery[:trim]
	rightT, rightQ := a.AlignedTarget[n-trim:], a.AlignedQuery[n-trim:]

	a.TargetStart += countBases(leftT)
	a.TargetEnd -= countBases(rightT)
	a.QueryStart += countBases(leftQ)
	a.QueryEnd -= countBases(rightQ)

	a.AlignedTarget = a.AlignedTarget[trim : n-trim]
	a.AlignedQuery = a.AlignedQuery[trim : n-trim]

	return a, true
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
