// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dagraph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToWeightedDirected renders the live (non-dead) portion of the graph
// as a gonum simple.WeightedDirectedGraph, the same graph type
// cmd/press builds its repeat-cluster graphs with. It exists for
// diagnostics and for property tests that lean on graph/topo rather
// than for the hot threading path, which needs per-node adjacency
// gonum's simple graph does not expose cheaply enough.
func (g *Graph) ToWeightedDirected() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for idx := range g.kind {
		if g.dead[idx] {
			continue
		}
		wg.AddNode(simple.Node(idx))
	}
	for idx := range g.kind {
		if g.dead[idx] {
			continue
		}
		for dst, w := range g.out[idx] {
			if g.dead[dst] {
				continue
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(idx),
				T: simple.Node(dst),
				W: float64(w),
			})
		}
	}
	return wg
}

// Acyclic reports whether the graph currently contains no directed
// cycle, using graph/topo.Sort the way cmd/press does before it walks
// a cluster graph.
func (g *Graph) Acyclic() bool {
	_, err := topo.Sort(g.ToWeightedDirected())
	return err == nil
}
