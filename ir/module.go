// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "github.com/gogpu/spvlint/spirv"

// Module is a decoded SPIR-V module.
type Module struct {
	// Version is the SPIR-V version from the header.
	Version spirv.Version

	// Bound is the id bound from the header; all ids are below it.
	Bound uint32

	// Preamble holds capabilities, extensions, imports, the memory
	// model, entry points, and execution modes.
	Preamble []*Instruction

	// TypesValues holds the module-scope instructions between the debug
	// section and the first function: types, constants, and global
	// variables, in declaration order.
	TypesValues []*Instruction

	// Annotations holds OpDecorate and related instructions.
	Annotations []*Instruction

	// Debug holds OpName/OpMemberName and related instructions.
	Debug []*Instruction

	// Functions holds the function definitions in declaration order.
	Functions []*Function
}

// Function is a function definition: its OpFunction instruction,
// parameters, and basic blocks in layout order.
type Function struct {
	Def    *Instruction
	Params []*Instruction
	Blocks []*Block

	blocksByID map[uint32]*Block
}

// ID returns the function's result id.
func (f *Function) ID() uint32 {
	return f.Def.ResultID
}

// Entry returns the first block of the function.
func (f *Function) Entry() *Block {
	return f.Blocks[0]
}

// Block returns the block with the given label id, or nil.
func (f *Function) Block(id uint32) *Block {
	return f.blocksByID[id]
}

// Block is a basic block: its OpLabel and body in layout order.
// The last body instruction is the terminator.
type Block struct {
	Label *Instruction
	Body  []*Instruction
}

// ID returns the block's label id.
func (b *Block) ID() uint32 {
	return b.Label.ResultID
}

// Terminator returns the block's terminating instruction.
func (b *Block) Terminator() *Instruction {
	return b.Body[len(b.Body)-1]
}

// ForEachInstruction calls f for the label and every body instruction.
func (b *Block) ForEachInstruction(f func(*Instruction)) {
	f(b.Label)
	for _, in := range b.Body {
		f(in)
	}
}
