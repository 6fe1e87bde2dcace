// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapnorm

import (
	"testing"

	"github.com/kortschak/dagcon/internal/aln"
)

func TestNormalizeCanonicalizesInsertionRun(t *testing.T) {
	// Two representations of the same homopolymer insertion of AA
	// against a single target A, differing only in which column
	// carries the gap.
	a := aln.Alignment{AlignedTarget: "--A", AlignedQuery: "AAA"}
	b := aln.Alignment{AlignedTarget: "-A-", AlignedQuery: "AAA"}

	na := Normalize(a)
	nb := Normalize(b)
	if na.AlignedTarget != nb.AlignedTarget {
		t.Errorf("Normalize() target = %q vs %q, want equal", na.AlignedTarget, nb.AlignedTarget)
	}
	if na.AlignedTarget != "A--" {
		t.Errorf("Normalize() target = %q, want canonical form A--", na.AlignedTarget)
	}
}

func TestNormalizeCanonicalizesDeletionRun(t *testing.T) {
	a := aln.Alignment{AlignedTarget: "TTT", AlignedQuery: "T--"}
	b := aln.Alignment{AlignedTarget: "TTT", AlignedQuery: "-T-"}

	na := Normalize(a)
	nb := Normalize(b)
	if na.AlignedQuery != nb.AlignedQuery {
		t.Errorf("Normalize() query = %q vs %q, want equal", na.AlignedQuery, nb.AlignedQuery)
	}
	if na.AlignedQuery != "--T" {
		t.Errorf("Normalize() query = %q, want canonical form --T", na.AlignedQuery)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	a := aln.Alignment{AlignedTarget: "AC-GT", AlignedQuery: "ACAGT"}
	once := Normalize(a)
	twice := Normalize(once)
	if once.AlignedTarget != twice.AlignedTarget || once.AlignedQuery != twice.AlignedQuery {
		t.Errorf("Normalize() not idempotent: %q/%q then %q/%q",
			once.AlignedTarget, once.AlignedQuery, twice.AlignedTarget, twice.AlignedQuery)
	}
}

func TestTrimAdjustsCoordinates(t *testing.T) {
	a := aln.Alignment{
		TargetStart: 10, TargetEnd: 20,
		QueryStart: 100, QueryEnd: 110,
		AlignedTarget: "ACGTACGTAC",
		AlignedQuery:  "ACGTACGTAC",
	}
	got, ok := Trim(a, 2)
	if !ok {
		t.Fatal("Trim() = false, want true")
	}
	if got.TargetStart != 12 || got.TargetEnd != 18 {
		t.Errorf("Trim() target coords = %d,%d, want 12,18", got.TargetStart, got.TargetEnd)
	}
	if got.QueryStart != 102 || got.QueryEnd != 108 {
		t.Errorf("Trim() query coords = %d,%d, want 102,108", got.QueryStart, got.QueryEnd)
	}
	if got.AlignedTarget != "GTACGT" {
		t.Errorf("Trim() aligned target = %q, want GTACGT", got.AlignedTarget)
	}
}

func TestTrimRejectsTooShortAlignment(t *testing.T) {
	a := aln.Alignment{AlignedTarget: "ACGT", AlignedQuery: "ACGT"}
	_, ok := Trim(a, 2)
	if ok {
		t.Error("Trim() on a 4-column alignment with trim 2 = true, want false")
	}
}
