// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dagraph builds, merges, and extracts consensus paths from
// the partial-order alignment graph, component D of the consensus
// pipeline (spec.md §4.D) — the intellectual core of dagcon.
//
// The graph is an arena of nodes indexed by int (spec.md §9's
// "arena of nodes indexed by integers" re-architecture of the
// original's pointer-based boost::graph adjacency list), with edges
// held as a pair of per-node adjacency maps recording multiplicity.
// See export.go for the gonum/graph/simple view used by tests.
package dagraph

// kind classifies an arena node.
type kind uint8

const (
	kindHead kind = iota
	kindTail
	kindBackbone
	kindBranch
	kindInsertion
)

// Graph is one target's alignment DAG: a backbone of length
// targetLen+2 (head, targetLen backbone nodes, tail) plus whatever
// branch and insertion nodes threading alignments has spliced in.
type Graph struct {
	targetLen int

	kind   []kind
	base   []byte
	anchor []int // backbone position this node represents or substitutes for
	dead   []bool

	out []map[int]int // arena idx -> (dst arena idx -> multiplicity)
	in  []map[int]int

	backbone   []int // backbone[i] is the arena index of B[i]
	head, tail int
}

// New allocates the backbone for a target of the given length:
// head -> B[0] -> ... -> B[targetLen-1] -> tail, each B[i] initially
// carrying base 'N' (spec.md §3).
func New(targetLen int) *Graph {
	g := &Graph{targetLen: targetLen}

	g.head = g.newNode(kindHead, 0, -1)
	g.backbone = make([]int, targetLen)
	for i := 0; i < targetLen; i++ {
		g.backbone[i] = g.newNode(kindBackbone, 'N', i)
	}
	g.tail = g.newNode(kindTail, 0, targetLen)

	return g
}

func (g *Graph) newNode(k kind, base byte, anchor int) int {
	idx := len(g.kind)
	g.kind = append(g.kind, k)
	g.base = append(g.base, base)
	g.anchor = append(g.anchor, anchor)
	g.dead = append(g.dead, false)
	g.out = append(g.out, map[int]int{})
	g.in = append(g.in, map[int]int{})
	return idx
}

func (g *Graph) addEdge(src, dst, w int) {
	g.out[src][dst] += w
	g.in[dst][src] += w
}

// chainAt returns the arena index of the backbone node at target
// position pos, or the tail sentinel if pos has reached targetLen.
func (g *Graph) chainAt(pos int) int {
	if pos >= g.targetLen {
		return g.tail
	}
	return g.backbone[pos]
}

// NumNodes returns the number of arena slots ever allocated,
// including merged-away (dead) ones.
func (g *Graph) NumNodes() int { return len(g.kind) }
