// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package realign recomputes the aligned-query/aligned-target column
// strings of an Alignment with a banded Needleman-Wunsch pass,
// component C of the consensus pipeline (spec.md §4.C). It is only
// invoked when the operator requests "align before adding" (the
// dagcon -align flag).
package realign

import (
	"runtime"
	"sync"

	"github.com/kortschak/dagcon/internal/aln"
)

// Scoring holds the match/mismatch/gap costs used by the banded
// aligner, the same three-way scoring bebop-poly's align package uses
// for its own Needleman-Wunsch and Smith-Waterman implementations.
type Scoring struct {
	Match      int
	Mismatch   int
	GapPenalty int
}

// DefaultScoring matches bebop-poly align.NewScoring.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, GapPenalty: -1}
}

// Aligner recomputes alignment columns within a fixed band around the
// main diagonal.
type Aligner struct {
	Band    int
	Scoring Scoring
}

// New returns an Aligner with the given band width and default
// scoring.
func New(band int) *Aligner {
	return &Aligner{Band: band, Scoring: DefaultScoring()}
}

// Align recomputes a's aligned-target/aligned-query strings from
// their own ungapped content (the existing aligned strings are used
// only as the hint that tells Align which two substrings to
// re-align; a's coordinates are left untouched).
func (r *Aligner) Align(a aln.Alignment) aln.Alignment {
	t := ungap(a.AlignedTarget)
	q := ungap(a.AlignedQuery)
	at, aq := r.bandedNW(t, q)
	a.AlignedTarget = at
	a.AlignedQuery = aq
	return a
}

// AlignBatch re-aligns every alignment in alns concurrently, bounded
// to workers simultaneous alignments (0 means GOMAXPROCS), grounded
// on IrdiZ-pgfp/align.ConcurrentSmithWatermanBatch's semaphore-channel
// fan-out. Unlike the pipeline's bounded channels, this concurrency is
// strictly worker-local: it never crosses a consensus worker's
// boundary and needs no sentinel protocol.
func (r *Aligner) AlignBatch(alns []aln.Alignment, workers int) []aln.Alignment {
	if len(alns) == 0 {
		return alns
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(alns) {
		workers = len(alns)
	}

	out := make([]aln.Alignment, len(alns))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, a := range alns {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, a aln.Alignment) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = r.Align(a)
		}(i, a)
	}
	wg.Wait()
	close(sem)
	return out
}

func ungap(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			b = append(b, s[i])
		}
	}
	return string(b)
}

const negInf = -1 << 30

// bandedNW is a banded variant of bebop-poly align.NeedlemanWunsch:
// cell (i,j) is only computed when |i-j| <= band, where band is Band
// widened to at least |len(t)-len(q)| so the final cell is reachable;
// cells outside the band are treated as unreachable.
func (r *Aligner) bandedNW(t, q string) (alignedT, alignedQ string) {
	m, n := len(t), len(q)
	band := r.Band
	if band < abs(m-n) {
		band = abs(m - n)
	}

	matrix := make([][]int, m+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
		for j := range matrix[i] {
			matrix[i][j] = negInf
		}
	}
	matrix[0][0] = 0
	for i := 1; i <= m; i++ {
		if inBand(i, 0, band) {
			matrix[i][0] = matrix[i-1][0] + r.Scoring.GapPenalty
		}
	}
	for j := 1; j <= n; j++ {
		if inBand(0, j, band) {
			matrix[0][j] = matrix[0][j-1] + r.Scoring.GapPenalty
		}
	}

	for i := 1; i <= m; i++ {
		lo, hi := bandRange(i, n, band)
		for j := lo; j <= hi; j++ {
			if j == 0 {
				continue
			}
			score := r.Scoring.Mismatch
			if t[i-1] == q[j-1] {
				score = r.Scoring.Match
			}
			best := matrix[i-1][j-1] + score
			if v := matrix[i-1][j] + r.Scoring.GapPenalty; v > best {
				best = v
			}
			if v := matrix[i][j-1] + r.Scoring.GapPenalty; v > best {
				best = v
			}
			matrix[i][j] = best
		}
	}

	var at, aq []byte
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case j == 0:
			at = append(at, t[i-1])
			aq = append(aq, '-')
			i--
		case i == 0:
			at = append(at, '-')
			aq = append(aq, q[j-1])
			j--
		case matrix[i][j] == matrix[i-1][j-1]+scoreOf(r.Scoring, t[i-1], q[j-1]):
			at = append(at, t[i-1])
			aq = append(aq, q[j-1])
			i--
			j--
		case matrix[i][j] == matrix[i-1][j]+r.Scoring.GapPenalty:
			at = append(at, t[i-1])
			aq = append(aq, '-')
			i--
		default:
			at = append(at, '-')
			aq = append(aq, q[j-1])
			j--
		}
	}
	reverse(at)
	reverse(aq)
	return string(at), string(aq)
}

func scoreOf(s Scoring, a, b byte) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

func inBand(i, j, band int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= band
}

func bandRange(i, n, band int) (lo, hi int) {
	lo = i - band
	if lo < 0 {
		lo = 0
	}
	hi = i + band
	if hi > n {
		hi = n
	}
	return lo, hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
