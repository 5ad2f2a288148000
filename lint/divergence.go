// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lint

import (
	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/spirv"
)

// ReasonKind discriminates a DivergenceReason.
type ReasonKind uint8

// Reason kinds
const (
	// ReasonRoot: intrinsically divergent, nothing upstream to blame.
	ReasonRoot ReasonKind = iota

	// ReasonBlockBecauseBlock: the block is control-dependent on the
	// divergent block ID.
	ReasonBlockBecauseBlock

	// ReasonBlockBecauseValue: block Branch's terminator branches on
	// the divergent value ID.
	ReasonBlockBecauseValue

	// ReasonValueBecauseValue: the value uses the divergent value ID
	// as an input operand.
	ReasonValueBecauseValue

	// ReasonValueBecauseBlock: the value is produced conditionally in
	// the divergent block ID.
	ReasonValueBecauseBlock
)

// DivergenceReason records the first witness found for why a block or
// value is divergent. Reasons reference other blocks and values by id;
// the two maps in DivergenceAnalysis form a forest rooted at
// ReasonRoot entries.
type DivergenceReason struct {
	Kind ReasonKind

	// ID is the referenced block or value, according to Kind.
	ID uint32

	// Branch is the block whose terminator reads ID, for
	// ReasonBlockBecauseValue.
	Branch uint32
}

type visitResult uint8

const (
	resultFixed visitResult = iota
	resultChanged
)

// DivergenceAnalysis computes the divergent blocks and values of one
// function as a fixed point over the def-use graph and the control
// dependence graph.
//
// Both maps are insert-only: a key present is divergent, a key absent
// is uniform, and re-running the analysis yields the same key sets
// regardless of worklist order. The stored reasons are first witnesses
// and may depend on visit order.
type DivergenceAnalysis struct {
	ctx *ir.Context
	cdg *ControlDependenceGraph
	fn  *ir.Function

	blocks map[uint32]DivergenceReason
	values map[uint32]DivergenceReason

	worklist   []*ir.Instruction
	onWorklist map[*ir.Instruction]bool
}

// NewDivergenceAnalysis prepares an analysis over ctx and cdg.
func NewDivergenceAnalysis(ctx *ir.Context, cdg *ControlDependenceGraph) *DivergenceAnalysis {
	return &DivergenceAnalysis{
		ctx:        ctx,
		cdg:        cdg,
		blocks:     make(map[uint32]DivergenceReason),
		values:     make(map[uint32]DivergenceReason),
		onWorklist: make(map[*ir.Instruction]bool),
	}
}

// IsBlockDivergent reports whether the block may execute non-uniformly.
func (a *DivergenceAnalysis) IsBlockDivergent(id uint32) bool {
	_, ok := a.blocks[id]
	return ok
}

// IsValueDivergent reports whether lanes may observe different values
// for id.
func (a *DivergenceAnalysis) IsValueDivergent(id uint32) bool {
	_, ok := a.values[id]
	return ok
}

// BlockReason returns the stored reason for a divergent block.
func (a *DivergenceAnalysis) BlockReason(id uint32) (DivergenceReason, bool) {
	r, ok := a.blocks[id]
	return r, ok
}

// ValueReason returns the stored reason for a divergent value.
func (a *DivergenceAnalysis) ValueReason(id uint32) (DivergenceReason, bool) {
	r, ok := a.values[id]
	return r, ok
}

// DivergentBlocks returns the block reason map.
func (a *DivergenceAnalysis) DivergentBlocks() map[uint32]DivergenceReason {
	return a.blocks
}

// DivergentValues returns the value reason map.
func (a *DivergenceAnalysis) DivergentValues() map[uint32]DivergenceReason {
	return a.values
}

// Run drives the worklist to its fixed point for fn. Termination
// follows from the insert-only maps and the finite id set.
func (a *DivergenceAnalysis) Run(fn *ir.Function) {
	a.fn = fn
	a.initializeWorklist(fn)
	for len(a.worklist) > 0 {
		top := a.worklist[0]
		a.worklist = a.worklist[1:]
		a.onWorklist[top] = false
		if a.visit(top) == resultChanged {
			a.enqueueSuccessors(top)
		}
	}
}

// initializeWorklist seeds every module-scope type, constant, and
// global, every function parameter, and, in reverse post-order of the
// CFG, every instruction of every block, block labels included.
func (a *DivergenceAnalysis) initializeWorklist(fn *ir.Function) {
	for _, in := range a.ctx.Module.TypesValues {
		a.enqueue(in)
	}
	for _, p := range fn.Params {
		a.enqueue(p)
	}
	a.ctx.CFG(fn).ReversePostOrder(func(b *ir.Block) {
		b.ForEachInstruction(a.enqueue)
	})
}

func (a *DivergenceAnalysis) enqueue(in *ir.Instruction) {
	if a.onWorklist[in] {
		return
	}
	a.onWorklist[in] = true
	a.worklist = append(a.worklist, in)
}

// enqueueSuccessors enqueues the units whose transfer result may
// change now that in's has: the def-use consumers of its result; for a
// terminator, the label of its own block; for a label, the labels of
// every block control-dependent on it.
func (a *DivergenceAnalysis) enqueueSuccessors(in *ir.Instruction) {
	if in.HasResult() {
		a.ctx.DefUse.ForEachUser(in.ResultID, a.enqueue)
	}
	label := in
	if in.IsTerminator() {
		label = a.ctx.InstructionBlock(in).Label
		a.enqueue(label)
	}
	if label.Opcode == spirv.OpLabel {
		deps, _ := a.cdg.Dependents(label.ResultID)
		for _, dep := range deps {
			if target := a.fn.Block(dep.Target); target != nil {
				a.enqueue(target.Label)
			}
		}
	}
}

func (a *DivergenceAnalysis) visit(in *ir.Instruction) visitResult {
	if in.Opcode == spirv.OpLabel {
		return a.visitBlock(in.ResultID)
	}
	return a.visitInstruction(in)
}

// visitBlock marks a block divergent when a block it is
// control-dependent on is divergent, or when a non-entry dependence
// branches on a divergent value. Edges are checked in declared order
// and the first witness wins.
func (a *DivergenceAnalysis) visitBlock(id uint32) visitResult {
	if _, ok := a.blocks[id]; ok {
		return resultFixed
	}
	deps, _ := a.cdg.Dependees(id)
	for _, dep := range deps {
		if _, ok := a.blocks[dep.Source]; ok {
			a.blocks[id] = DivergenceReason{Kind: ReasonBlockBecauseBlock, ID: dep.Source}
			return resultChanged
		}
		if dep.Kind == DependenceEntry {
			continue
		}
		if value := dep.DependentValue(); a.IsValueDivergent(value) {
			a.blocks[id] = DivergenceReason{Kind: ReasonBlockBecauseValue, ID: value, Branch: dep.Source}
			return resultChanged
		}
	}
	return resultFixed
}

// visitInstruction marks an instruction's result divergent when the
// classifier calls it a root, or when an input operand (a value or a
// block label, phis included) is divergent. Terminators always report
// a change so their block gets re-evaluated.
func (a *DivergenceAnalysis) visitInstruction(in *ir.Instruction) visitResult {
	if in.IsTerminator() {
		return resultChanged
	}
	if !in.HasResult() {
		return resultFixed
	}
	id := in.ResultID
	if _, ok := a.values[id]; ok {
		return resultFixed
	}
	if isDivergentRoot(a.ctx, in) {
		a.values[id] = DivergenceReason{Kind: ReasonRoot}
		return resultChanged
	}
	if isNeverDivergent(in) {
		return resultFixed
	}
	uniform := in.WhileEachInID(func(op uint32) bool {
		if _, ok := a.values[op]; ok {
			a.values[id] = DivergenceReason{Kind: ReasonValueBecauseValue, ID: op}
			return false
		}
		if _, ok := a.blocks[op]; ok {
			a.values[id] = DivergenceReason{Kind: ReasonValueBecauseBlock, ID: op}
			return false
		}
		return true
	})
	if uniform {
		return resultFixed
	}
	return resultChanged
}
