package lint

import (
	"fmt"

	"github.com/gogpu/spvlint/ir"
)

// StartKind selects what id a provenance walk starts at.
type StartKind uint8

// Walk start kinds
const (
	StartBlock StartKind = iota
	StartValue
)

// ProvenanceWalker reconstructs the causal chain from a divergent
// block or value back to its root cause, reporting each hop to the
// consumer.
type ProvenanceWalker struct {
	ctx      *ir.Context
	analysis *DivergenceAnalysis
	consumer MessageConsumer
}

// NewProvenanceWalker builds a walker over a completed analysis.
func NewProvenanceWalker(ctx *ir.Context, analysis *DivergenceAnalysis, consumer MessageConsumer) *ProvenanceWalker {
	return &ProvenanceWalker{ctx: ctx, analysis: analysis, consumer: consumer}
}

// Walk emits the chain of explanations for why id is divergent,
// alternating block and value phases until it reaches a root
// definition or the pseudo entry.
//
// Each hop follows a first-witness reason recorded by the dataflow, so
// the walk visits no id twice and halts after at most one step per
// divergent block and value.
func (w *ProvenanceWalker) Walk(kind StartKind, id uint32) {
	for id != PseudoEntryBlock {
		noun := "block"
		if kind == StartValue {
			noun = "value"
		}
		warn(w.consumer, "", fmt.Sprintf("%s %%%d is non-uniform", noun, id))

		if kind == StartBlock {
			// Chase control dependences on divergent blocks until a
			// dependence on a divergent branch value surfaces.
			reason, ok := w.analysis.BlockReason(id)
			for ok && reason.Kind == ReasonBlockBecauseBlock {
				id = reason.ID
				reason, ok = w.analysis.BlockReason(id)
			}
			if !ok || reason.Kind != ReasonBlockBecauseValue {
				// The block is not recorded as divergent; nothing
				// further to explain.
				return
			}
			branch := w.analysis.fn.Block(reason.Branch).Terminator()
			warn(w.consumer, w.ctx.Printer.Sprint(branch),
				fmt.Sprintf("because %%%d depends on a conditional branch on non-uniform value %%%d", id, reason.ID))
			id = reason.ID
			kind = StartValue
			continue
		}

		reason, ok := w.analysis.ValueReason(id)
		for ok && reason.Kind == ReasonValueBecauseValue {
			def := w.ctx.DefUse.GetDef(id)
			warn(w.consumer, w.ctx.Printer.Sprint(def),
				fmt.Sprintf("because %%%d uses %%%d in its definition", id, reason.ID))
			id = reason.ID
			reason, ok = w.analysis.ValueReason(id)
		}
		if !ok {
			return
		}
		def := w.ctx.DefUse.GetDef(id)
		switch reason.Kind {
		case ReasonRoot:
			warn(w.consumer, w.ctx.Printer.Sprint(def), "because it has a non-uniform definition")
			return
		case ReasonValueBecauseBlock:
			warn(w.consumer, w.ctx.Printer.Sprint(def),
				fmt.Sprintf("because %%%d is conditionally set in block %%%d, which is non-uniform", id, reason.ID))
			id = reason.ID
			kind = StartBlock
		default:
			return
		}
	}
}
