// Package spirv provides the SPIR-V instruction vocabulary used by spvlint.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs. This package defines the
// opcode and enumerant constants the linter needs, together with
// name tables for disassembly-style output.
package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// SPIR-V module header constants
const (
	MagicNumber = 0x07230203
	HeaderWords = 5
)

// Op represents a SPIR-V opcode.
type Op uint16

// Opcodes. Values are from the SPIR-V unified specification.
const (
	OpNop                 Op = 0
	OpUndef               Op = 1
	OpSourceContinued     Op = 2
	OpSource              Op = 3
	OpSourceExtension     Op = 4
	OpName                Op = 5
	OpMemberName          Op = 6
	OpString              Op = 7
	OpLine                Op = 8
	OpExtension           Op = 10
	OpExtInstImport       Op = 11
	OpExtInst             Op = 12
	OpMemoryModel         Op = 14
	OpEntryPoint          Op = 15
	OpExecutionMode       Op = 16
	OpCapability          Op = 17
	OpTypeVoid            Op = 19
	OpTypeBool            Op = 20
	OpTypeInt             Op = 21
	OpTypeFloat           Op = 22
	OpTypeVector          Op = 23
	OpTypeMatrix          Op = 24
	OpTypeImage           Op = 25
	OpTypeSampler         Op = 26
	OpTypeSampledImage    Op = 27
	OpTypeArray           Op = 28
	OpTypeRuntimeArray    Op = 29
	OpTypeStruct          Op = 30
	OpTypeOpaque          Op = 31
	OpTypePointer         Op = 32
	OpTypeFunction        Op = 33
	OpConstantTrue        Op = 41
	OpConstantFalse       Op = 42
	OpConstant            Op = 43
	OpConstantComposite   Op = 44
	OpConstantSampler     Op = 45
	OpConstantNull        Op = 46
	OpSpecConstantTrue    Op = 48
	OpSpecConstantFalse   Op = 49
	OpSpecConstant        Op = 50
	OpSpecConstantOp      Op = 52
	OpFunction            Op = 54
	OpFunctionParameter   Op = 55
	OpFunctionEnd         Op = 56
	OpFunctionCall        Op = 57
	OpVariable            Op = 59
	OpImageTexelPointer   Op = 60
	OpLoad                Op = 61
	OpStore               Op = 62
	OpCopyMemory          Op = 63
	OpAccessChain         Op = 65
	OpInBoundsAccessChain Op = 66
	OpPtrAccessChain      Op = 67
	OpArrayLength         Op = 68
	OpDecorate            Op = 71
	OpMemberDecorate      Op = 72
	OpDecorationGroup     Op = 73
	OpGroupDecorate       Op = 74

	OpVectorExtractDynamic Op = 77
	OpVectorInsertDynamic  Op = 78
	OpVectorShuffle        Op = 79
	OpCompositeConstruct   Op = 80
	OpCompositeExtract     Op = 81
	OpCompositeInsert      Op = 82
	OpCopyObject           Op = 83
	OpTranspose            Op = 84

	OpSampledImage                   Op = 86
	OpImageSampleImplicitLod         Op = 87
	OpImageSampleExplicitLod         Op = 88
	OpImageSampleDrefImplicitLod     Op = 89
	OpImageSampleDrefExplicitLod     Op = 90
	OpImageSampleProjImplicitLod     Op = 91
	OpImageSampleProjExplicitLod     Op = 92
	OpImageSampleProjDrefImplicitLod Op = 93
	OpImageSampleProjDrefExplicitLod Op = 94
	OpImageFetch                     Op = 95
	OpImageGather                    Op = 96
	OpImageDrefGather                Op = 97
	OpImageRead                      Op = 98
	OpImageWrite                     Op = 99
	OpImage                          Op = 100
	OpImageQuerySizeLod              Op = 103
	OpImageQuerySize                 Op = 104
	OpImageQueryLod                  Op = 105
	OpImageQueryLevels               Op = 106
	OpImageQuerySamples              Op = 107

	OpConvertFToU   Op = 109
	OpConvertFToS   Op = 110
	OpConvertSToF   Op = 111
	OpConvertUToF   Op = 112
	OpUConvert      Op = 113
	OpSConvert      Op = 114
	OpFConvert      Op = 115
	OpQuantizeToF16 Op = 116
	OpBitcast       Op = 124

	OpSNegate           Op = 126
	OpFNegate           Op = 127
	OpIAdd              Op = 128
	OpFAdd              Op = 129
	OpISub              Op = 130
	OpFSub              Op = 131
	OpIMul              Op = 132
	OpFMul              Op = 133
	OpUDiv              Op = 134
	OpSDiv              Op = 135
	OpFDiv              Op = 136
	OpUMod              Op = 137
	OpSRem              Op = 138
	OpSMod              Op = 139
	OpFRem              Op = 140
	OpFMod              Op = 141
	OpVectorTimesScalar Op = 142
	OpMatrixTimesScalar Op = 143
	OpVectorTimesMatrix Op = 144
	OpMatrixTimesVector Op = 145
	OpMatrixTimesMatrix Op = 146
	OpOuterProduct      Op = 147
	OpDot               Op = 148
	OpIAddCarry         Op = 149
	OpISubBorrow        Op = 150
	OpUMulExtended      Op = 151
	OpSMulExtended      Op = 152

	OpAny            Op = 154
	OpAll            Op = 155
	OpIsNan          Op = 156
	OpIsInf          Op = 157
	OpLogicalEqual   Op = 164
	OpLogicalNotEqual Op = 165
	OpLogicalOr      Op = 166
	OpLogicalAnd     Op = 167
	OpLogicalNot     Op = 168
	OpSelect         Op = 169
	OpIEqual         Op = 170
	OpINotEqual      Op = 171
	OpUGreaterThan   Op = 172
	OpSGreaterThan   Op = 173
	OpUGreaterThanEqual Op = 174
	OpSGreaterThanEqual Op = 175
	OpULessThan         Op = 176
	OpSLessThan         Op = 177
	OpULessThanEqual    Op = 178
	OpSLessThanEqual    Op = 179
	OpFOrdEqual         Op = 180
	OpFUnordEqual       Op = 181
	OpFOrdNotEqual      Op = 182
	OpFUnordNotEqual    Op = 183
	OpFOrdLessThan      Op = 184
	OpFUnordLessThan    Op = 185
	OpFOrdGreaterThan   Op = 186
	OpFUnordGreaterThan Op = 187
	OpFOrdLessThanEqual Op = 188
	OpFUnordLessThanEqual    Op = 189
	OpFOrdGreaterThanEqual   Op = 190
	OpFUnordGreaterThanEqual Op = 191

	OpShiftRightLogical    Op = 194
	OpShiftRightArithmetic Op = 195
	OpShiftLeftLogical     Op = 196
	OpBitwiseOr            Op = 197
	OpBitwiseXor           Op = 198
	OpBitwiseAnd           Op = 199
	OpNot                  Op = 200
	OpBitFieldInsert       Op = 201
	OpBitFieldSExtract     Op = 202
	OpBitFieldUExtract     Op = 203
	OpBitReverse           Op = 204
	OpBitCount             Op = 205

	OpDPdx         Op = 207
	OpDPdy         Op = 208
	OpFwidth       Op = 209
	OpDPdxFine     Op = 210
	OpDPdyFine     Op = 211
	OpFwidthFine   Op = 212
	OpDPdxCoarse   Op = 213
	OpDPdyCoarse   Op = 214
	OpFwidthCoarse Op = 215

	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255

	OpImageSparseSampleImplicitLod         Op = 305
	OpImageSparseSampleExplicitLod         Op = 306
	OpImageSparseSampleDrefImplicitLod     Op = 307
	OpImageSparseSampleDrefExplicitLod     Op = 308
	OpImageSparseSampleProjImplicitLod     Op = 309
	OpImageSparseSampleProjExplicitLod     Op = 310
	OpImageSparseSampleProjDrefImplicitLod Op = 311
	OpImageSparseSampleProjDrefExplicitLod Op = 312

	OpGroupNonUniformElect            Op = 333
	OpGroupNonUniformAll              Op = 334
	OpGroupNonUniformAny              Op = 335
	OpGroupNonUniformAllEqual         Op = 336
	OpGroupNonUniformBroadcast        Op = 337
	OpGroupNonUniformBroadcastFirst   Op = 338
	OpGroupNonUniformBallot           Op = 339
	OpGroupNonUniformInverseBallot    Op = 340
	OpGroupNonUniformBallotBitExtract Op = 341
	OpGroupNonUniformBallotBitCount   Op = 342
	OpGroupNonUniformBallotFindLSB    Op = 343
	OpGroupNonUniformBallotFindMSB    Op = 344

	OpTerminateInvocation        Op = 4416
	OpSubgroupBallotKHR          Op = 4421
	OpSubgroupFirstInvocationKHR Op = 4422
	OpSubgroupReadInvocationKHR  Op = 4432
)

// IsTerminator reports whether the opcode ends a basic block.
func (op Op) IsTerminator() bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch,
		OpKill, OpReturn, OpReturnValue, OpUnreachable, OpTerminateInvocation:
		return true
	}
	return false
}

// Layout reports whether an instruction with this opcode carries a
// result-type operand and a result-id operand, in that order, before
// its remaining operands.
func (op Op) Layout() (hasType, hasResult bool) {
	switch op {
	case OpExtInstImport, OpString, OpTypeVoid, OpTypeBool, OpTypeInt,
		OpTypeFloat, OpTypeVector, OpTypeMatrix, OpTypeImage, OpTypeSampler,
		OpTypeSampledImage, OpTypeArray, OpTypeRuntimeArray, OpTypeStruct,
		OpTypeOpaque, OpTypePointer, OpTypeFunction, OpDecorationGroup, OpLabel:
		return false, true
	case OpUndef, OpExtInst,
		OpConstantTrue, OpConstantFalse, OpConstant, OpConstantComposite,
		OpConstantSampler, OpConstantNull,
		OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant, OpSpecConstantOp,
		OpFunction, OpFunctionParameter, OpFunctionCall, OpVariable,
		OpImageTexelPointer, OpLoad,
		OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain, OpArrayLength,
		OpVectorExtractDynamic, OpVectorInsertDynamic, OpVectorShuffle,
		OpCompositeConstruct, OpCompositeExtract, OpCompositeInsert,
		OpCopyObject, OpTranspose, OpSampledImage, OpPhi,
		OpSubgroupBallotKHR, OpSubgroupFirstInvocationKHR, OpSubgroupReadInvocationKHR:
		return true, true
	case OpImageWrite:
		return false, false
	}
	switch {
	case op >= OpImageSampleImplicitLod && op <= OpImageQuerySamples:
		return true, true
	case op >= OpConvertFToU && op <= OpBitcast:
		return true, true
	case op >= OpSNegate && op <= OpBitCount:
		return true, true
	case op >= OpDPdx && op <= OpFwidthCoarse:
		return true, true
	case op >= OpImageSparseSampleImplicitLod && op <= OpImageSparseSampleProjDrefExplicitLod:
		return true, true
	case op >= OpGroupNonUniformElect && op <= OpGroupNonUniformBallotFindMSB:
		return true, true
	}
	return false, false
}

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

// Storage classes
const (
	StorageClassUniformConstant       StorageClass = 0
	StorageClassInput                 StorageClass = 1
	StorageClassUniform               StorageClass = 2
	StorageClassOutput                StorageClass = 3
	StorageClassWorkgroup             StorageClass = 4
	StorageClassCrossWorkgroup        StorageClass = 5
	StorageClassPrivate               StorageClass = 6
	StorageClassFunction              StorageClass = 7
	StorageClassGeneric               StorageClass = 8
	StorageClassPushConstant          StorageClass = 9
	StorageClassAtomicCounter         StorageClass = 10
	StorageClassImage                 StorageClass = 11
	StorageClassStorageBuffer         StorageClass = 12
	StorageClassPhysicalStorageBuffer StorageClass = 5349
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// Decorations
const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecID           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationPatch            Decoration = 15
	DecorationCentroid         Decoration = 16
	DecorationInvariant        Decoration = 18
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
	DecorationNonUniform       Decoration = 5300
)

// ExecutionModel represents a SPIR-V execution model.
type ExecutionModel uint32

// Execution models
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)
