// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dagraph

// Result is one strong segment extracted from a consensus walk:
// Subsequence is the concatenated base of every node the walk visited
// within the segment (including spliced-in insertion nodes), and
// Start/End are the half-open target coordinates the segment spans.
type Result struct {
	Subsequence string
	Start, End  int
}

// Consensus walks the graph greedily from head to tail, then splits
// that walk into maximal strong segments — runs of consecutive edges
// each with multiplicity at least minWeight — and returns one Result
// per strong segment at least minLen bases long (spec.md §4.D).
//
// head and tail never contribute to the subsequence or the
// strong/weak accounting: the walk always passes through them exactly
// once, at the very start and end, and their outgoing/incoming
// multiplicities reflect only which real node a read happened to
// start or stop at, not the strength of the consensus itself.
func (g *Graph) Consensus(minWeight, minLen int) []Result {
	path := g.walk()
	if len(path) < 3 {
		return nil
	}
	real := path[1 : len(path)-1]

	var results []Result
	start := 0
	for start < len(real) {
		end := start
		for end+1 < len(real) && g.out[real[end]][real[end+1]] >= minWeight {
			end++
		}
		if end > start {
			if r, ok := g.buildResult(real[start : end+1]); ok && len(r.Subsequence) >= minLen {
				results = append(results, r)
			}
			start = end + 1
		} else {
			start++
		}
	}
	return results
}

// walk greedily follows the maximum-multiplicity outgoing edge from
// head to tail, preferring (on a weight tie) the literal backbone
// edge to the node's immediate successor position, and then (on a
// further tie) the candidate with the greater total outgoing weight.
// The graph is acyclic (see export.go), so this always terminates.
func (g *Graph) walk() []int {
	path := []int{g.head}
	cur := g.head
	for cur != g.tail {
		best, ok := g.bestEdge(cur)
		if !ok {
			break
		}
		path = append(path, best)
		cur = best
	}
	return path
}

func (g *Graph) bestEdge(src int) (int, bool) {
	canonical := -1
	if g.kind[src] == kindBackbone {
		canonical = g.chainAt(g.anchor[src] + 1)
	}

	best := -1
	bestWeight := -1
	for dst, w := range g.out[src] {
		if g.dead[dst] {
			continue
		}
		switch {
		case w > bestWeight:
			best, bestWeight = dst, w
		case w == bestWeight:
			best = g.breakTie(best, dst, canonical)
		}
	}
	return best, best != -1
}

func (g *Graph) breakTie(a, b, canonical int) int {
	if a == canonical {
		return a
	}
	if b == canonical {
		return b
	}
	if g.totalOut(a) >= g.totalOut(b) {
		return a
	}
	return b
}

func (g *Graph) totalOut(idx int) int {
	total := 0
	for _, w := range g.out[idx] {
		total += w
	}
	return total
}

// buildResult renders the bases of nodes (a contiguous slice of the
// consensus walk, excluding head and tail) into a Result, with
// Start/End taken from the first and last non-insertion node's
// backbone position (insertions have no target coordinate of their
// own).
func (g *Graph) buildResult(nodes []int) (Result, bool) {
	subseq := make([]byte, len(nodes))
	start, end := -1, -1
	for i, idx := range nodes {
		subseq[i] = g.base[idx]
		if g.kind[idx] == kindInsertion {
			continue
		}
		pos := g.anchor[idx]
		if start == -1 || pos < start {
			start = pos
		}
		if end == -1 || pos > end {
			end = pos
		}
	}
	if start == -1 {
		return Result{}, false
	}
	return Result{Subsequence: string(subseq), Start: start, End: end + 1}, true
}
