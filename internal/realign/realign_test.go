// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package realign

import (
	"testing"

	"github.com/kortschak/dagcon/internal/aln"
)

func TestAlignIdenticalSequences(t *testing.T) {
	r := New(5)
	a := aln.Alignment{AlignedTarget: "ACGTACGT", AlignedQuery: "ACGTACGT"}
	got := r.Align(a)
	if got.AlignedTarget != "ACGTACGT" || got.AlignedQuery != "ACGTACGT" {
		t.Errorf("Align() = %q/%q, want ACGTACGT/ACGTACGT", got.AlignedTarget, got.AlignedQuery)
	}
}

func TestAlignRecoversInsertion(t *testing.T) {
	r := New(3)
	// Target is missing the middle "GG" present in the query; a poorly
	// placed starting alignment should still resolve to one insertion.
	a := aln.Alignment{AlignedTarget: "AC--TT", AlignedQuery: "ACGGTT"}
	got := r.Align(a)

	if len(got.AlignedTarget) != len(got.AlignedQuery) {
		t.Fatalf("Align() produced mismatched lengths: %d vs %d", len(got.AlignedTarget), len(got.AlignedQuery))
	}
	if ungap(got.AlignedTarget) != "ACTT" {
		t.Errorf("Align() ungapped target = %q, want ACTT", ungap(got.AlignedTarget))
	}
	if ungap(got.AlignedQuery) != "ACGGTT" {
		t.Errorf("Align() ungapped query = %q, want ACGGTT", ungap(got.AlignedQuery))
	}
}

func TestAlignBatchMatchesSequentialAlign(t *testing.T) {
	r := New(4)
	alns := []aln.Alignment{
		{AlignedTarget: "AC--TT", AlignedQuery: "ACGGTT"},
		{AlignedTarget: "ACGTAC", AlignedQuery: "ACGTAC"},
		{AlignedTarget: "AC-T", AlignedQuery: "ACGT"},
	}

	got := r.AlignBatch(alns, 2)
	for i, a := range alns {
		want := r.Align(a)
		if got[i].AlignedTarget != want.AlignedTarget || got[i].AlignedQuery != want.AlignedQuery {
			t.Errorf("AlignBatch()[%d] = %q/%q, want %q/%q",
				i, got[i].AlignedTarget, got[i].AlignedQuery, want.AlignedTarget, want.AlignedQuery)
		}
	}
}
