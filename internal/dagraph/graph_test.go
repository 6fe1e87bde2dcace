// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dagraph

import (
	"testing"

	"github.com/kortschak/dagcon/internal/aln"
)

func matchAln(seq string, start int) aln.Alignment {
	return aln.Alignment{
		TargetStart: start, TargetEnd: start + len(seq),
		QueryStart: 0, QueryEnd: len(seq),
		AlignedTarget: seq, AlignedQuery: seq,
	}
}

func TestConsensusUnanimous(t *testing.T) {
	seq := "ACGTACGTACGTACGTACGT"
	g := New(len(seq))
	for i := 0; i < 10; i++ {
		g.AddAlignment(matchAln(seq, 0))
	}
	g.MergeNodes()

	if !g.Acyclic() {
		t.Fatal("graph has a cycle")
	}

	results := g.Consensus(8, 10)
	if len(results) != 1 {
		t.Fatalf("got %d segments, want 1", len(results))
	}
	if results[0].Subsequence != seq {
		t.Errorf("subsequence = %q, want %q", results[0].Subsequence, seq)
	}
	if results[0].Start != 0 || results[0].End != len(seq) {
		t.Errorf("span = [%d,%d), want [0,%d)", results[0].Start, results[0].End, len(seq))
	}
}

func TestConsensusBelowCoverageEmitsNothing(t *testing.T) {
	seq := "ACGTACGTACGTACGTACGT"
	g := New(len(seq))
	g.AddAlignment(matchAln(seq, 0))
	g.AddAlignment(matchAln(seq, 0))
	g.MergeNodes()

	if got := g.Consensus(8, 10); got != nil {
		t.Errorf("got %d segments, want none below min-coverage", len(got))
	}
}

func TestConsensusMismatchPicksMajorityAllele(t *testing.T) {
	// Target reference reads "A" at position 9; seven alignments agree
	// with the reference, three carry a substitution to "T" there. The
	// minority allele's edge only carries weight 3, so minWeight is
	// kept at or below that to isolate allele selection from the
	// strong/weak segment split.
	seqA := "ACGTACGTAAACGTACGTAC"
	seqT := "ACGTACGTATACGTACGTAC"
	g := New(len(seqA))
	for i := 0; i < 7; i++ {
		g.AddAlignment(matchAln(seqA, 0))
	}
	for i := 0; i < 3; i++ {
		sub := matchAln(seqA, 0)
		sub.AlignedQuery = seqT
		g.AddAlignment(sub)
	}
	g.MergeNodes()

	results := g.Consensus(3, 10)
	if len(results) != 1 {
		t.Fatalf("got %d segments, want 1", len(results))
	}
	if results[0].Subsequence != seqA {
		t.Errorf("subsequence = %q, want majority (reference) allele %q", results[0].Subsequence, seqA)
	}
	if len(results[0].Subsequence) != len(seqA) {
		t.Errorf("subsequence length = %d, want %d", len(results[0].Subsequence), len(seqA))
	}
}

func TestConsensusMismatchPicksMajorityAlt(t *testing.T) {
	// Same site, majority now carries the substitution: three
	// alignments keep the reference "A", seven carry "T". The walk
	// must output exactly one base for the position — the corrected
	// "T" — not both, and the result must be the same length as the
	// target.
	seqA := "ACGTACGTAAACGTACGTAC"
	seqT := "ACGTACGTATACGTACGTAC"
	g := New(len(seqA))
	for i := 0; i < 3; i++ {
		g.AddAlignment(matchAln(seqA, 0))
	}
	for i := 0; i < 7; i++ {
		sub := matchAln(seqA, 0)
		sub.AlignedQuery = seqT
		g.AddAlignment(sub)
	}
	g.MergeNodes()

	results := g.Consensus(3, 10)
	if len(results) != 1 {
		t.Fatalf("got %d segments, want 1", len(results))
	}
	if results[0].Subsequence != seqT {
		t.Errorf("subsequence = %q, want corrected majority allele %q", results[0].Subsequence, seqT)
	}
	if len(results[0].Subsequence) != len(seqA) {
		t.Errorf("subsequence length = %d, want %d (one base per target position, not two)", len(results[0].Subsequence), len(seqA))
	}
}

func TestFlowConservation(t *testing.T) {
	g := New(12)
	g.AddAlignment(aln.Alignment{
		TargetStart: 2, TargetEnd: 10,
		AlignedTarget: "ACG-TACGT",
		AlignedQuery:  "ACGATAGGT",
	})
	g.AddAlignment(matchAln("ACGTACGTACGT", 0))
	g.AddAlignment(aln.Alignment{
		TargetStart: 0, TargetEnd: 6,
		AlignedTarget: "ACGTAC",
		AlignedQuery:  "AC-TAC",
	})
	g.MergeNodes()

	for idx := range g.kind {
		if g.dead[idx] || idx == g.head || idx == g.tail {
			continue
		}
		in, out := 0, 0
		for _, w := range g.in[idx] {
			in += w
		}
		for _, w := range g.out[idx] {
			out += w
		}
		if in != out {
			t.Errorf("node %d: in=%d out=%d, flow not conserved", idx, in, out)
		}
	}
	if !g.Acyclic() {
		t.Fatal("graph has a cycle")
	}
}

func TestMergeNodesCollapsesRepeatedInsertion(t *testing.T) {
	g := New(6)
	for i := 0; i < 5; i++ {
		g.AddAlignment(aln.Alignment{
			TargetStart: 0, TargetEnd: 6,
			AlignedTarget: "ABC-DEF",
			AlignedQuery:  "ABCGDEF",
		})
	}
	before := g.NumNodes()
	g.MergeNodes()
	live := 0
	for _, dead := range g.dead {
		if !dead {
			live++
		}
	}
	if live >= before {
		t.Errorf("expected merge to reduce live node count below %d, got %d", before, live)
	}
}
