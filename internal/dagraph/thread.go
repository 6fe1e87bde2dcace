// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dagraph

import "github.com/kortschak/dagcon/internal/aln"

// AddAlignment threads one gap-normalized, trimmed Alignment into the
// graph (spec.md §4.D). prev always names the last node actually
// claimed by this read, starting at head; for each target position it
// commits to at most one node for that slot — the backbone node B[pos]
// on a match, or a freshly-made branch node sharing B[pos]'s
// predecessor on a substitution — and links prev to it; a deletion
// claims no node, so the read's next edge from prev skips over B[pos].
// A branch is
// a sibling alternative to B[pos], never a successor spliced after it.
// That is what lets walk() choose exactly one base per position: the
// two candidates compete as parallel out-edges of the same prev rather
// than appearing back to back on the same path. Every alignment is a
// self-balanced unit of flow from head to tail this way: an entry edge
// head->(the node claimed for the first position), the column-by-column
// threading, and an exit edge (the node claimed for the last
// position)->tail, which is what keeps flow conservation holding at
// every interior node without requiring every alignment to start or end
// exactly at the backbone's own ends.
func (g *Graph) AddAlignment(a aln.Alignment) {
	t, q := a.AlignedTarget, a.AlignedQuery
	pos := a.TargetStart
	prev := g.head

	for i := 0; i < len(t); i++ {
		bt, bq := t[i], q[i]
		switch {
		case bt == '-' && bq == '-':
			continue // malformed column; nothing to thread

		case bt != '-' && bq != '-':
			b := g.chainAt(pos)
			if bt == bq {
				g.base[b] = bt
			} else {
				b = g.newNode(kindBranch, bq, pos)
			}
			g.addEdge(prev, b, 1)
			prev = b
			pos++

		case bt == '-' && bq != '-':
			ins := g.newNode(kindInsertion, bq, pos)
			g.addEdge(prev, ins, 1)
			prev = ins

		case bt != '-' && bq == '-':
			g.base[g.chainAt(pos)] = bt
			pos++ // prev is kept, so its next edge is a skip edge over this position
		}
	}

	if prev != g.tail {
		g.addEdge(prev, g.tail, 1)
	}
}
