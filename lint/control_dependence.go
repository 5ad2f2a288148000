// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Control dependence graph construction. The algorithm is as presented
// in Cytron 1991, "Efficiently Computing Static Single Assignment Form
// and the Control Dependence Graph," and relies on the fact that the
// control dependees of a block are exactly its post-dominance frontier.
// Frontiers are computed per Section 4.2 of the paper, in one pass over
// a post-order traversal of the post-dominator tree.
//
// Following the paper's construction, the graph includes edges from a
// pseudo-entry node, representing a dependence on the program being
// executed at all.

package lint

import (
	"fmt"
	"sort"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/spirv"
)

// PseudoEntryBlock is the label of the pseudo entry block. All control
// dependences whose source is the pseudo entry block have kind
// DependenceEntry, and vice versa. No real block may use label 0.
const PseudoEntryBlock uint32 = 0

// DependenceKind discriminates the payload of a ControlDependence.
type DependenceKind uint8

// Dependence kinds
const (
	// DependenceConditionalBranch: the source block ends in
	// OpBranchConditional and the target runs on one arm.
	DependenceConditionalBranch DependenceKind = iota

	// DependenceSwitchCase: the source block ends in OpSwitch and the
	// target runs for some case values or the default.
	DependenceSwitchCase

	// DependenceEntry: the source is the pseudo entry block.
	DependenceEntry
)

// ControlDependence is an edge in the control dependence graph: Target
// executes, or not, according to a decision made in Source.
type ControlDependence struct {
	Source uint32
	Target uint32
	Kind   DependenceKind

	// ConditionID is the branch condition for
	// DependenceConditionalBranch edges.
	ConditionID uint32
	// TakenWhenTrue is the condition value under which the dependence
	// happens.
	TakenWhenTrue bool

	// SelectorID is the value switched on for DependenceSwitchCase
	// edges.
	SelectorID uint32
	// CaseValues are the case literals that select Target, in
	// declaration order.
	CaseValues []uint32
	// IsDefault is true when Target is the switch's default label.
	IsDefault bool
}

// DependentValue returns the value id the branch decision reads, or 0
// for entry edges.
func (d ControlDependence) DependentValue() uint32 {
	switch d.Kind {
	case DependenceConditionalBranch:
		return d.ConditionID
	case DependenceSwitchCase:
		return d.SelectorID
	}
	return 0
}

// Equal reports structural equality on the fields relevant to the kind.
func (d ControlDependence) Equal(other ControlDependence) bool {
	if d.Source != other.Source || d.Target != other.Target || d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case DependenceConditionalBranch:
		return d.ConditionID == other.ConditionID && d.TakenWhenTrue == other.TakenWhenTrue
	case DependenceSwitchCase:
		if d.SelectorID != other.SelectorID || d.IsDefault != other.IsDefault ||
			len(d.CaseValues) != len(other.CaseValues) {
			return false
		}
		for i, v := range d.CaseValues {
			if other.CaseValues[i] != v {
				return false
			}
		}
		return true
	}
	return true
}

// Less orders edges lexicographically on (source, target).
func (d ControlDependence) Less(other ControlDependence) bool {
	if d.Source != other.Source {
		return d.Source < other.Source
	}
	return d.Target < other.Target
}

// String renders the edge for test failures and debugging.
func (d ControlDependence) String() string {
	switch d.Kind {
	case DependenceConditionalBranch:
		return fmt.Sprintf("%d->%d if %%%d is %t", d.Source, d.Target, d.ConditionID, d.TakenWhenTrue)
	case DependenceSwitchCase:
		return fmt.Sprintf("%d->%d switch %%%d case %v default %t", d.Source, d.Target, d.SelectorID, d.CaseValues, d.IsDefault)
	case DependenceEntry:
		return fmt.Sprintf("%d->%d entry", d.Source, d.Target)
	}
	return fmt.Sprintf("%d->%d (unknown)", d.Source, d.Target)
}

// ControlDependenceGraph maps block labels to control dependence edges
// in both directions. Every reachable block, the pseudo entry included,
// has an entry in both maps, possibly empty.
type ControlDependenceGraph struct {
	forward map[uint32][]ControlDependence
	reverse map[uint32][]ControlDependence
}

// Dependents returns the edges whose source is block: the blocks whose
// execution depends on it. The second result is false when block is
// not in the graph.
func (g *ControlDependenceGraph) Dependents(block uint32) ([]ControlDependence, bool) {
	deps, ok := g.forward[block]
	return deps, ok
}

// Dependees returns the edges whose target is block: the blocks it is
// control-dependent on. The second result is false when block is not
// in the graph.
func (g *ControlDependenceGraph) Dependees(block uint32) ([]ControlDependence, bool) {
	deps, ok := g.reverse[block]
	return deps, ok
}

// IsDependent reports whether block a directly depends on block b.
func (g *ControlDependenceGraph) IsDependent(a, b uint32) bool {
	// Blocks tend to have more dependents than dependees, so search
	// the dependees of a.
	deps, ok := g.reverse[a]
	if !ok {
		return false
	}
	for _, dep := range deps {
		if dep.Source == b {
			return true
		}
	}
	return false
}

// ForEachBlockLabel calls f for every block label in the graph, in
// ascending label order.
func (g *ControlDependenceGraph) ForEachBlockLabel(f func(uint32)) {
	labels := make([]uint32, 0, len(g.forward))
	for label := range g.forward {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, label := range labels {
		f(label)
	}
}

// classifyControlDependence fills out a CDG edge from the terminator of
// the CFG predecessor that induced it. A source that does not end in a
// conditional branch or switch cannot appear here: an unconditional
// edge is pruned by the strict post-dominance check.
func classifyControlDependence(cfg *ir.CFG, source, target uint32) ControlDependence {
	dep := ControlDependence{Source: source, Target: target}
	if source == PseudoEntryBlock {
		dep.Kind = DependenceEntry
		return dep
	}
	branch := cfg.Block(source).Terminator()
	switch branch.Opcode {
	case spirv.OpBranchConditional:
		labelTrue := branch.Operand(1)
		labelFalse := branch.Operand(2)
		dep.Kind = DependenceConditionalBranch
		dep.ConditionID = branch.Operand(0)
		switch target {
		case labelTrue:
			if target == labelFalse {
				panic("control dependence on a conditional branch with identical labels")
			}
			dep.TakenWhenTrue = true
		case labelFalse:
			dep.TakenWhenTrue = false
		default:
			panic("impossible control dependence; non-existent edge")
		}
	case spirv.OpSwitch:
		dep.Kind = DependenceSwitchCase
		dep.SelectorID = branch.Operand(0)
		for i := 2; i+1 < len(branch.Operands); i += 2 {
			if branch.Operand(i+1) == target {
				dep.CaseValues = append(dep.CaseValues, branch.Operand(i))
			}
		}
		if target == branch.Operand(1) {
			dep.IsDefault = true
		} else if len(dep.CaseValues) == 0 {
			panic("impossible control dependence; non-existent edge")
		}
	default:
		panic(fmt.Sprintf("invalid control dependence; block %d does not end in a conditional branch", source))
	}
	return dep
}

// NewControlDependenceGraph builds the control dependence graph for
// cfg using its post-dominator analysis.
//
// The post-dominance frontier of a block X is (Equation 4 of Cytron
// 1991)
//
//	DF_local(X) ∪ { B in DF_up(Z) | X = ipdom(Z) }
//
// where DF_local(X) are the CFG predecessors of X that X does not
// strictly post-dominate, and DF_up(Z) the frontier entries of Z that
// ipdom(Z) does not strictly post-dominate.
func NewControlDependenceGraph(cfg *ir.CFG, pdom *ir.PostDominatorAnalysis) *ControlDependenceGraph {
	g := &ControlDependenceGraph{
		forward: make(map[uint32][]ControlDependence),
		reverse: make(map[uint32][]ControlDependence),
	}
	entry := cfg.Entry()

	// Out-degree tally for the forward pass. The pseudo entry starts
	// at one for its direct edge to the function entry.
	degree := map[uint32]int{PseudoEntryBlock: 1}
	g.reverse[PseudoEntryBlock] = nil

	for _, label := range pdom.PostOrder() {
		if _, ok := degree[label]; !ok {
			degree[label] = 0
		}
		edges := g.reverse[label]
		for _, pred := range cfg.Preds(label) {
			if !pdom.StrictlyPostDominates(label, pred) {
				edges = append(edges, classifyControlDependence(cfg, pred, label))
				degree[pred]++
			}
		}
		if label == entry {
			// The pseudo entry is never strictly post-dominated, so
			// the edge is always present.
			edges = append(edges, classifyControlDependence(cfg, PseudoEntryBlock, label))
		}
		for _, child := range pdom.Children(label) {
			for _, dep := range g.reverse[child] {
				dep.Target = label
				// The pseudo entry can never be strictly post-dominated.
				if dep.Source == PseudoEntryBlock || !pdom.StrictlyPostDominates(label, dep.Source) {
					edges = append(edges, dep)
					degree[dep.Source]++
				}
			}
		}
		g.reverse[label] = edges
	}

	// Invert the reverse graph into the forward graph, in ascending
	// target order so edge lists are deterministic.
	for source, n := range degree {
		g.forward[source] = make([]ControlDependence, 0, n)
	}
	targets := make([]uint32, 0, len(g.reverse))
	for target := range g.reverse {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	for _, target := range targets {
		for _, dep := range g.reverse[target] {
			g.forward[dep.Source] = append(g.forward[dep.Source], dep)
		}
	}
	return g
}
