package lint_test

import (
	"testing"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/spirv"
)

// ins encodes one instruction as its word sequence.
func ins(op spirv.Op, operands ...uint32) []uint32 {
	words := make([]uint32, 0, len(operands)+1)
	words = append(words, uint32(len(operands)+1)<<16|uint32(uint16(op)))
	return append(words, operands...)
}

// assemble builds a module word stream with a SPIR-V 1.5 header.
func assemble(bound uint32, instrs ...[]uint32) []uint32 {
	words := []uint32{spirv.MagicNumber, 0x00010500, 0, bound, 0}
	for _, in := range instrs {
		words = append(words, in...)
	}
	return words
}

func buildContext(t *testing.T, words []uint32) *ir.Context {
	t.Helper()
	module, err := ir.BuildModule(words)
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	return ir.NewContext(module)
}

// simpleSwitchCFG is a small CFG with a switch and nested
// conditionals:
//
//	10 → 11; 11 switches to 12 (default) or 13 (case 1); both → 14;
//	14 branches on %8 to 15 or 16; 16 branches on %8 to 17 or 18;
//	15 and 18 merge at 19.
func simpleSwitchCFG() []uint32 {
	return assemble(20,
		ins(spirv.OpTypeVoid, 2),
		ins(spirv.OpTypeFunction, 3, 2),
		ins(spirv.OpTypeBool, 4),
		ins(spirv.OpTypeInt, 5, 32, 0),
		ins(spirv.OpConstant, 5, 6, 0),
		ins(spirv.OpConstantFalse, 4, 7),
		ins(spirv.OpConstantTrue, 4, 8),
		ins(spirv.OpConstant, 5, 9, 1),
		ins(spirv.OpFunction, 2, 1, 0, 3),
		ins(spirv.OpLabel, 10),
		ins(spirv.OpBranch, 11),
		ins(spirv.OpLabel, 11),
		ins(spirv.OpSwitch, 6, 12, 1, 13),
		ins(spirv.OpLabel, 12),
		ins(spirv.OpBranch, 14),
		ins(spirv.OpLabel, 13),
		ins(spirv.OpBranch, 14),
		ins(spirv.OpLabel, 14),
		ins(spirv.OpBranchConditional, 8, 15, 16),
		ins(spirv.OpLabel, 15),
		ins(spirv.OpBranch, 19),
		ins(spirv.OpLabel, 16),
		ins(spirv.OpBranchConditional, 8, 17, 18),
		ins(spirv.OpLabel, 17),
		ins(spirv.OpBranch, 18),
		ins(spirv.OpLabel, 18),
		ins(spirv.OpBranch, 19),
		ins(spirv.OpLabel, 19),
		ins(spirv.OpReturn),
		ins(spirv.OpFunctionEnd),
	)
}

// paperCFG is the running example from Cytron 1991, figure 1, with a
// loop 9→10→11→9 nested in a loop 2→…→12→2.
func paperCFG() []uint32 {
	return assemble(120,
		ins(spirv.OpTypeVoid, 102),
		ins(spirv.OpTypeFunction, 103, 102),
		ins(spirv.OpTypeBool, 104),
		ins(spirv.OpConstantTrue, 104, 108),
		ins(spirv.OpFunction, 102, 101, 0, 103),
		ins(spirv.OpLabel, 1),
		ins(spirv.OpBranch, 2),
		ins(spirv.OpLabel, 2),
		ins(spirv.OpBranchConditional, 108, 3, 7),
		ins(spirv.OpLabel, 3),
		ins(spirv.OpBranchConditional, 108, 4, 5),
		ins(spirv.OpLabel, 4),
		ins(spirv.OpBranch, 6),
		ins(spirv.OpLabel, 5),
		ins(spirv.OpBranch, 6),
		ins(spirv.OpLabel, 6),
		ins(spirv.OpBranch, 8),
		ins(spirv.OpLabel, 7),
		ins(spirv.OpBranch, 8),
		ins(spirv.OpLabel, 8),
		ins(spirv.OpBranch, 9),
		ins(spirv.OpLabel, 9),
		ins(spirv.OpBranchConditional, 108, 10, 11),
		ins(spirv.OpLabel, 10),
		ins(spirv.OpBranch, 11),
		ins(spirv.OpLabel, 11),
		ins(spirv.OpBranchConditional, 108, 12, 9),
		ins(spirv.OpLabel, 12),
		ins(spirv.OpBranchConditional, 108, 13, 2),
		ins(spirv.OpLabel, 13),
		ins(spirv.OpReturn),
		ins(spirv.OpFunctionEnd),
	)
}
