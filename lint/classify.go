package lint

import (
	"fmt"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/spirv"
)

// derivativeOpcodes are the instructions that read neighboring lanes:
// implicit-LOD image samples and explicit derivatives.
var derivativeOpcodes = map[spirv.Op]bool{
	// implicit derivatives
	spirv.OpImageSampleImplicitLod:             true,
	spirv.OpImageSampleDrefImplicitLod:         true,
	spirv.OpImageSampleProjImplicitLod:         true,
	spirv.OpImageSampleProjDrefImplicitLod:     true,
	spirv.OpImageSparseSampleImplicitLod:       true,
	spirv.OpImageSparseSampleDrefImplicitLod:   true,
	spirv.OpImageSparseSampleProjImplicitLod:   true,
	spirv.OpImageSparseSampleProjDrefImplicitLod: true,
	// explicit derivatives
	spirv.OpDPdx: true, spirv.OpDPdy: true, spirv.OpFwidth: true,
	spirv.OpDPdxFine: true, spirv.OpDPdyFine: true, spirv.OpFwidthFine: true,
	spirv.OpDPdxCoarse: true, spirv.OpDPdyCoarse: true, spirv.OpFwidthCoarse: true,
}

// HasDerivative reports whether the opcode requires derivatives and
// hence helper-invocation convergence.
func HasDerivative(op spirv.Op) bool {
	return derivativeOpcodes[op]
}

// neverDivergentOpcodes lists operations whose result is uniform
// across the subgroup by definition. The set is a configuration point:
// it covers the subgroup operations with subgroup-uniform results
// permitted in the Vulkan 1.2 environment.
var neverDivergentOpcodes = map[spirv.Op]bool{
	spirv.OpSubgroupBallotKHR:          true,
	spirv.OpSubgroupFirstInvocationKHR: true,
	spirv.OpGroupNonUniformAll:         true,
	spirv.OpGroupNonUniformAny:         true,
	spirv.OpGroupNonUniformAllEqual:    true,
	spirv.OpGroupNonUniformBroadcast:   true,
	spirv.OpGroupNonUniformBroadcastFirst: true,
	spirv.OpGroupNonUniformBallot:         true,
}

// isNeverDivergent reports whether the instruction's result is uniform
// regardless of its inputs or position.
func isNeverDivergent(in *ir.Instruction) bool {
	return neverDivergentOpcodes[in.Opcode]
}

// isDivergentRoot reports whether the instruction is intrinsically
// divergent: lanes may observe different results with no divergent
// input to blame.
//
// Function parameters are divergent because the analysis is
// intraprocedural. A load is divergent when its storage class lets
// lanes observe different values; a load from Input counts unless the
// result carries the Flat decoration.
func isDivergentRoot(ctx *ir.Context, in *ir.Instruction) bool {
	switch in.Opcode {
	case spirv.OpFunctionParameter:
		return true
	case spirv.OpLoad:
		def := ctx.DefUse.GetDef(in.Operand(0))
		if def == nil {
			panic(fmt.Sprintf("load %%%d from undefined pointer %%%d", in.ResultID, in.Operand(0)))
		}
		sc, ok := ctx.Types.PointerStorageClass(def.TypeID)
		if !ok {
			panic(fmt.Sprintf("load %%%d from non-pointer %%%d", in.ResultID, in.Operand(0)))
		}
		switch sc {
		case spirv.StorageClassFunction,
			spirv.StorageClassGeneric,
			spirv.StorageClassAtomicCounter,
			spirv.StorageClassStorageBuffer,
			spirv.StorageClassPhysicalStorageBuffer,
			spirv.StorageClassOutput:
			return true
		case spirv.StorageClassInput:
			return !ctx.Decorations.HasDecoration(in.ResultID, spirv.DecorationFlat)
		default:
			// Uniform, UniformConstant, Workgroup, CrossWorkgroup,
			// Private, PushConstant, Image: uniform at the load.
			return false
		}
	}
	return false
}
