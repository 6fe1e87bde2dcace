// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dagraph

import "sort"

// mergeKey groups candidate nodes for merging: spec.md §4.D defines
// two nodes as equivalent when they share the same incoming backbone
// position, carry the same base, and are reachable from the same
// predecessor set.
type mergeKey struct {
	anchor int
	base   byte
	kind   kind
}

// MergeNodes collapses nodes created as separate threading steps for
// what turns out to be the same edit into a single node, summing
// multiplicities, and repeats until no further merge is possible.
// Backbone, head, and tail nodes are canonical by construction and
// never participate.
func (g *Graph) MergeNodes() {
	for g.mergePass() {
	}
}

func (g *Graph) mergePass() (merged bool) {
	groups := make(map[mergeKey][]int)
	for idx, k := range g.kind {
		if g.dead[idx] || k == kindHead || k == kindTail || k == kindBackbone {
			continue
		}
		mk := mergeKey{anchor: g.anchor[idx], base: g.base[idx], kind: k}
		groups[mk] = append(groups[mk], idx)
	}

	for _, nodes := range groups {
		if len(nodes) < 2 {
			continue
		}
		classes := partitionByPredecessors(g, nodes)
		for _, class := range classes {
			if len(class) < 2 {
				continue
			}
			survivor := class[0]
			for _, other := range class[1:] {
				g.absorb(survivor, other)
			}
			merged = true
		}
	}
	return merged
}

// partitionByPredecessors groups nodes that share an identical
// predecessor set (the set of live arena indices with an edge into
// the node).
func partitionByPredecessors(g *Graph, nodes []int) [][]int {
	keyOf := func(idx int) string {
		preds := make([]int, 0, len(g.in[idx]))
		for p := range g.in[idx] {
			preds = append(preds, p)
		}
		sort.Ints(preds)
		// A short, cheap encoding is enough: four bytes per sorted
		// index encode every arena index below 2^32 exactly, so two
		// nodes share a key only when their predecessor sets are
		// equal.
		b := make([]byte, 0, len(preds)*5)
		for _, p := range preds {
			b = append(b, byte(p), byte(p>>8), byte(p>>16), byte(p>>24), ',')
		}
		return string(b)
	}

	classes := make(map[string][]int)
	for _, idx := range nodes {
		k := keyOf(idx)
		classes[k] = append(classes[k], idx)
	}
	out := make([][]int, 0, len(classes))
	for _, c := range classes {
		out = append(out, c)
	}
	return out
}

// absorb merges other into survivor: every edge touching other is
// redirected to survivor, summing multiplicities where survivor
// already has a parallel edge, and other is marked dead.
func (g *Graph) absorb(survivor, other int) {
	if survivor == other {
		return
	}
	for dst, w := range g.out[other] {
		if dst == other {
			continue // self-loops should never arise; drop defensively
		}
		g.out[survivor][dst] += w
		g.in[dst][survivor] += w
		delete(g.in[dst], other)
	}
	for src, w := range g.in[other] {
		if src == other {
			continue
		}
		g.in[survivor][src] += w
		g.out[src][survivor] += w
		delete(g.out[src], other)
	}
	g.out[other] = nil
	g.in[other] = nil
	g.dead[other] = true
}
