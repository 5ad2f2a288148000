// Package lint implements the divergence analysis behind spvlint's
// single diagnostic: a derivative instruction executed under
// non-uniform control flow.
//
// Derivative instructions (implicit-LOD image samples, OpDPdx and
// friends) read neighboring lanes and therefore require the whole quad
// to execute them together. When the enclosing block only runs for
// some lanes the derivative is undefined. The analysis finds such
// blocks by combining a control dependence graph with a divergence
// data-flow fixed point, then explains each finding by walking the
// recorded block→value→block dependency chain back to its root.
package lint

import (
	"fmt"

	"github.com/gogpu/spvlint/ir"
)

// Run analyzes every function of the module in ctx and reports each
// derivative instruction whose enclosing block may execute
// non-uniformly. Functions are analyzed in module-declaration order;
// the order affects diagnostic emission order only.
func Run(ctx *ir.Context, consumer MessageConsumer) {
	for _, fn := range ctx.Module.Functions {
		if len(fn.Blocks) == 0 {
			// Function declaration without a body.
			continue
		}
		cfg := ctx.CFG(fn)
		pdom := ctx.PostDominators(fn)
		cdg := NewControlDependenceGraph(cfg, pdom)

		analysis := NewDivergenceAnalysis(ctx, cdg)
		analysis.Run(fn)

		walker := NewProvenanceWalker(ctx, analysis, consumer)
		for _, b := range fn.Blocks {
			for _, in := range b.Body {
				if !HasDerivative(in.Opcode) || !analysis.IsBlockDivergent(b.ID()) {
					continue
				}
				warn(consumer, ctx.Printer.Sprint(in),
					fmt.Sprintf("derivative with non-uniform control flow located in block %%%d", b.ID()))
				walker.Walk(StartBlock, b.ID())
			}
		}
	}
}
