package ir

import (
	"github.com/gogpu/spvlint/spirv"
)

// Instruction is a single decoded SPIR-V instruction. TypeID and
// ResultID are zero when the opcode does not produce them; Operands
// holds the remaining words in declaration order.
type Instruction struct {
	Opcode   spirv.Op
	TypeID   uint32
	ResultID uint32
	Operands []uint32
}

// HasResult reports whether the instruction defines a result id.
func (in *Instruction) HasResult() bool {
	return in.ResultID != 0
}

// IsTerminator reports whether the instruction ends a basic block.
func (in *Instruction) IsTerminator() bool {
	return in.Opcode.IsTerminator()
}

// Operand returns operand word i.
func (in *Instruction) Operand(i int) uint32 {
	return in.Operands[i]
}

// WhileEachInID calls f for every operand that is an id reference,
// skipping literal operands. Iteration stops early when f returns
// false; the return value reports whether every call returned true.
//
// Operand kinds follow the SPIR-V grammar for the opcodes the linter
// models; unknown opcodes are assumed to take only id operands, which
// over-approximates the id set but never drops one. Debug, annotation,
// and mode-setting instructions (OpName, OpDecorate, OpEntryPoint,
// OpExecutionMode and the like) report no ids, not even the target id
// they name.
func (in *Instruction) WhileEachInID(f func(id uint32) bool) bool {
	visit := func(indices ...int) bool {
		for _, i := range indices {
			if i < len(in.Operands) && !f(in.Operands[i]) {
				return false
			}
		}
		return true
	}
	visitFrom := func(start int) bool {
		for i := start; i < len(in.Operands); i++ {
			if !f(in.Operands[i]) {
				return false
			}
		}
		return true
	}

	switch in.Opcode {
	case spirv.OpNop, spirv.OpSource, spirv.OpSourceContinued, spirv.OpSourceExtension,
		spirv.OpName, spirv.OpMemberName, spirv.OpString, spirv.OpLine,
		spirv.OpExtension, spirv.OpExtInstImport, spirv.OpMemoryModel,
		spirv.OpEntryPoint, spirv.OpExecutionMode, spirv.OpCapability,
		spirv.OpDecorate, spirv.OpMemberDecorate,
		spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeInt, spirv.OpTypeFloat,
		spirv.OpTypeSampler, spirv.OpTypeOpaque,
		spirv.OpConstant, spirv.OpConstantTrue, spirv.OpConstantFalse,
		spirv.OpConstantNull, spirv.OpSpecConstant, spirv.OpSpecConstantTrue,
		spirv.OpSpecConstantFalse, spirv.OpConstantSampler,
		spirv.OpLabel, spirv.OpKill, spirv.OpReturn, spirv.OpUnreachable,
		spirv.OpTerminateInvocation, spirv.OpUndef:
		return true
	case spirv.OpTypeVector, spirv.OpTypeMatrix, spirv.OpTypeImage:
		// Component/sample type id, then literals.
		return visit(0)
	case spirv.OpTypePointer:
		// Storage class literal, then pointee type id.
		return visit(1)
	case spirv.OpFunction:
		// Function control literal, then function type id.
		return visit(1)
	case spirv.OpVariable:
		// Storage class literal, then optional initializer id.
		return visitFrom(1)
	case spirv.OpLoad:
		// Pointer id; memory-access mask and its operands are skipped.
		return visit(0)
	case spirv.OpStore:
		return visit(0, 1)
	case spirv.OpCompositeExtract:
		// Composite id, then literal indexes.
		return visit(0)
	case spirv.OpCompositeInsert:
		// Object and composite ids, then literal indexes.
		return visit(0, 1)
	case spirv.OpVectorShuffle:
		// Two vector ids, then literal components.
		return visit(0, 1)
	case spirv.OpExtInst:
		// Set id, literal instruction number, then ids.
		if !visit(0) {
			return false
		}
		return visitFrom(2)
	case spirv.OpBranchConditional:
		// Condition and two labels; optional branch weights are literals.
		return visit(0, 1, 2)
	case spirv.OpSwitch:
		// Selector and default label, then (literal, label) pairs.
		if !visit(0, 1) {
			return false
		}
		for i := 3; i < len(in.Operands); i += 2 {
			if !f(in.Operands[i]) {
				return false
			}
		}
		return true
	case spirv.OpLoopMerge:
		// Merge and continue labels, then loop control literal.
		return visit(0, 1)
	case spirv.OpSelectionMerge:
		// Merge label, then selection control literal.
		return visit(0)
	case spirv.OpImageSampleDrefImplicitLod, spirv.OpImageSampleDrefExplicitLod,
		spirv.OpImageSampleProjDrefImplicitLod, spirv.OpImageSampleProjDrefExplicitLod,
		spirv.OpImageGather, spirv.OpImageDrefGather, spirv.OpImageWrite,
		spirv.OpImageSparseSampleDrefImplicitLod, spirv.OpImageSparseSampleDrefExplicitLod,
		spirv.OpImageSparseSampleProjDrefImplicitLod, spirv.OpImageSparseSampleProjDrefExplicitLod:
		// Image, coordinate, and depth-reference, component, or texel
		// ids; the image-operands mask at index 3, when present, is a
		// literal and the rest are ids.
		if !visit(0, 1, 2) {
			return false
		}
		return visitFrom(4)
	}
	if in.Opcode >= spirv.OpImageSampleImplicitLod && in.Opcode <= spirv.OpImageQuerySamples ||
		in.Opcode >= spirv.OpImageSparseSampleImplicitLod && in.Opcode <= spirv.OpImageSparseSampleProjDrefExplicitLod {
		// Image and coordinate ids; the image-operands mask at index 2,
		// when present, is a literal and the rest are ids.
		if !visit(0, 1) {
			return false
		}
		return visitFrom(3)
	}
	return visitFrom(0)
}

// InOperandIDs returns the id operands of the instruction in order.
func (in *Instruction) InOperandIDs() []uint32 {
	var ids []uint32
	in.WhileEachInID(func(id uint32) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}
