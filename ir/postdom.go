// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/flow"
	"gonum.org/v1/gonum/graph/iterator"
)

// pseudoExitID is the node id of the synthetic exit the reverse CFG is
// rooted at. Block labels are positive, so -1 can never collide.
const pseudoExitID int64 = -1

// PostDominatorAnalysis is the post-dominator tree of one function,
// rooted at a pseudo-exit that joins every terminating block.
//
// The tree is computed with the Lengauer-Tarjan implementation in
// gonum applied to the reversed CFG. Blocks that cannot reach an exit
// (an infinite loop with no return) are absent from the tree; they
// post-dominate nothing and nothing strictly post-dominates them.
type PostDominatorAnalysis struct {
	cfg      *CFG
	ipdom    map[uint32]int64
	children map[int64][]uint32
	pre      map[int64]int
	post     map[int64]int
}

// NewPostDominatorAnalysis computes the post-dominator tree for cfg.
func NewPostDominatorAnalysis(cfg *CFG) *PostDominatorAnalysis {
	g := &reverseCFG{cfg: cfg}
	tree := flow.Dominators(node(pseudoExitID), g)

	p := &PostDominatorAnalysis{
		cfg:      cfg,
		ipdom:    make(map[uint32]int64),
		children: make(map[int64][]uint32),
		pre:      make(map[int64]int),
		post:     make(map[int64]int),
	}
	for _, b := range cfg.fn.Blocks {
		id := b.ID()
		dom := tree.DominatorOf(int64(id))
		if dom == nil {
			continue
		}
		p.ipdom[id] = dom.ID()
		p.children[dom.ID()] = append(p.children[dom.ID()], id)
	}
	for _, kids := range p.children {
		sort.Slice(kids, func(i, j int) bool { return kids[i] < kids[j] })
	}
	p.number(pseudoExitID)
	return p
}

// number assigns DFS entry/exit indexes used for the ancestor test.
func (p *PostDominatorAnalysis) number(n int64) {
	p.pre[n] = len(p.pre)
	for _, child := range p.children[n] {
		p.number(int64(child))
	}
	p.post[n] = len(p.post)
}

// StrictlyPostDominates reports whether block a strictly
// post-dominates block b.
func (p *PostDominatorAnalysis) StrictlyPostDominates(a, b uint32) bool {
	if a == b {
		return false
	}
	pa, ok := p.pre[int64(a)]
	if !ok {
		return false
	}
	pb, ok := p.pre[int64(b)]
	if !ok {
		return false
	}
	return pa <= pb && p.post[int64(a)] >= p.post[int64(b)]
}

// ImmediatePostDominator returns the immediate post-dominator of b.
// The second result is false when b has none, or when the immediate
// post-dominator is the pseudo-exit.
func (p *PostDominatorAnalysis) ImmediatePostDominator(b uint32) (uint32, bool) {
	dom, ok := p.ipdom[b]
	if !ok || dom == pseudoExitID {
		return 0, false
	}
	return uint32(dom), true
}

// Children returns the post-dominator tree children of block x, in
// ascending label order.
func (p *PostDominatorAnalysis) Children(x uint32) []uint32 {
	return p.children[int64(x)]
}

// PostOrder returns the function's blocks in a post-order traversal
// of the post-dominator tree. The pseudo-exit root is not included;
// every listed block precedes its tree parent.
func (p *PostDominatorAnalysis) PostOrder() []uint32 {
	var order []uint32
	var walk func(n int64)
	walk = func(n int64) {
		for _, child := range p.children[n] {
			walk(int64(child))
		}
		if n != pseudoExitID {
			order = append(order, uint32(n))
		}
	}
	walk(pseudoExitID)
	return order
}

// reverseCFG adapts a CFG, edges reversed and augmented with the
// pseudo-exit, to gonum's directed graph interface.
type reverseCFG struct {
	cfg *CFG
}

type node int64

func (n node) ID() int64 { return int64(n) }

type edge struct{ f, t node }

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f} }

func nodesOf(ids []int64) graph.Nodes {
	ns := make([]graph.Node, len(ids))
	for i, id := range ids {
		ns[i] = node(id)
	}
	return iterator.NewOrderedNodes(ns)
}

func (g *reverseCFG) Node(id int64) graph.Node {
	if id == pseudoExitID {
		return node(id)
	}
	if g.cfg.Block(uint32(id)) != nil {
		return node(id)
	}
	return nil
}

func (g *reverseCFG) Nodes() graph.Nodes {
	ids := []int64{pseudoExitID}
	for _, b := range g.cfg.fn.Blocks {
		ids = append(ids, int64(b.ID()))
	}
	return nodesOf(ids)
}

// From returns the reverse-graph successors: the CFG predecessors of
// a block, or every terminating block for the pseudo-exit.
func (g *reverseCFG) From(id int64) graph.Nodes {
	var ids []int64
	if id == pseudoExitID {
		for _, b := range g.cfg.fn.Blocks {
			if len(TerminatorTargets(b.Terminator())) == 0 {
				ids = append(ids, int64(b.ID()))
			}
		}
	} else {
		for _, pred := range g.cfg.Preds(uint32(id)) {
			ids = append(ids, int64(pred))
		}
	}
	return nodesOf(ids)
}

// To returns the reverse-graph predecessors: the CFG successors of a
// block, plus the pseudo-exit for terminating blocks.
func (g *reverseCFG) To(id int64) graph.Nodes {
	if id == pseudoExitID {
		return nodesOf(nil)
	}
	var ids []int64
	b := g.cfg.Block(uint32(id))
	if b != nil && len(TerminatorTargets(b.Terminator())) == 0 {
		ids = append(ids, pseudoExitID)
	}
	for _, succ := range g.cfg.Succs(uint32(id)) {
		ids = append(ids, int64(succ))
	}
	return nodesOf(ids)
}

func (g *reverseCFG) HasEdgeFromTo(uid, vid int64) bool {
	from := g.From(uid)
	for from.Next() {
		if from.Node().ID() == vid {
			return true
		}
	}
	return false
}

func (g *reverseCFG) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

func (g *reverseCFG) Edge(uid, vid int64) graph.Edge {
	if g.HasEdgeFromTo(uid, vid) {
		return edge{f: node(uid), t: node(vid)}
	}
	return nil
}
