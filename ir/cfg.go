package ir

import "github.com/gogpu/spvlint/spirv"

// CFG is the control-flow graph of one function. Edge lists preserve
// the operand order of the terminators that induced them.
type CFG struct {
	fn    *Function
	preds map[uint32][]uint32
	succs map[uint32][]uint32
}

// NewCFG builds the control-flow graph for fn.
func NewCFG(fn *Function) *CFG {
	c := &CFG{
		fn:    fn,
		preds: make(map[uint32][]uint32, len(fn.Blocks)),
		succs: make(map[uint32][]uint32, len(fn.Blocks)),
	}
	for _, b := range fn.Blocks {
		id := b.ID()
		if _, ok := c.succs[id]; !ok {
			c.succs[id] = nil
		}
		if _, ok := c.preds[id]; !ok {
			c.preds[id] = nil
		}
		for _, succ := range TerminatorTargets(b.Terminator()) {
			c.succs[id] = append(c.succs[id], succ)
			c.preds[succ] = append(c.preds[succ], id)
		}
	}
	return c
}

// TerminatorTargets returns the label ids a terminator may branch to,
// in operand order. Duplicate labels are preserved.
func TerminatorTargets(term *Instruction) []uint32 {
	switch term.Opcode {
	case spirv.OpBranch:
		return []uint32{term.Operand(0)}
	case spirv.OpBranchConditional:
		return []uint32{term.Operand(1), term.Operand(2)}
	case spirv.OpSwitch:
		targets := []uint32{term.Operand(1)}
		for i := 3; i < len(term.Operands); i += 2 {
			targets = append(targets, term.Operand(i))
		}
		return targets
	}
	return nil
}

// Entry returns the label id of the function's entry block.
func (c *CFG) Entry() uint32 {
	return c.fn.Entry().ID()
}

// Block returns the block with the given label id, or nil.
func (c *CFG) Block(id uint32) *Block {
	return c.fn.Block(id)
}

// Preds returns the predecessor labels of a block.
func (c *CFG) Preds(id uint32) []uint32 {
	return c.preds[id]
}

// Succs returns the successor labels of a block.
func (c *CFG) Succs(id uint32) []uint32 {
	return c.succs[id]
}

// ReversePostOrder calls f for each block reachable from the entry,
// in reverse post-order of a depth-first walk along successor edges.
func (c *CFG) ReversePostOrder(f func(*Block)) {
	seen := make(map[uint32]bool, len(c.fn.Blocks))
	var order []uint32
	var walk func(id uint32)
	walk = func(id uint32) {
		seen[id] = true
		for _, succ := range c.succs[id] {
			if !seen[succ] {
				walk(succ)
			}
		}
		order = append(order, id)
	}
	walk(c.Entry())
	for i := len(order) - 1; i >= 0; i-- {
		if b := c.fn.Block(order[i]); b != nil {
			f(b)
		}
	}
}
