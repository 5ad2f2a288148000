package spirv

import "fmt"

var opcodeNames = map[Op]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource", OpSourceExtension: "OpSourceExtension",
	OpName: "OpName", OpMemberName: "OpMemberName", OpString: "OpString",
	OpLine: "OpLine", OpExtension: "OpExtension",
	OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector",
	OpTypeMatrix: "OpTypeMatrix", OpTypeImage: "OpTypeImage",
	OpTypeSampler: "OpTypeSampler", OpTypeSampledImage: "OpTypeSampledImage",
	OpTypeArray: "OpTypeArray", OpTypeRuntimeArray: "OpTypeRuntimeArray",
	OpTypeStruct: "OpTypeStruct", OpTypeOpaque: "OpTypeOpaque",
	OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpConstantSampler: "OpConstantSampler", OpConstantNull: "OpConstantNull",
	OpSpecConstantTrue: "OpSpecConstantTrue", OpSpecConstantFalse: "OpSpecConstantFalse",
	OpSpecConstant: "OpSpecConstant", OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd", OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable", OpImageTexelPointer: "OpImageTexelPointer",
	OpLoad: "OpLoad", OpStore: "OpStore", OpCopyMemory: "OpCopyMemory",
	OpAccessChain: "OpAccessChain", OpInBoundsAccessChain: "OpInBoundsAccessChain",
	OpPtrAccessChain: "OpPtrAccessChain", OpArrayLength: "OpArrayLength",
	OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate",
	OpDecorationGroup: "OpDecorationGroup", OpGroupDecorate: "OpGroupDecorate",
	OpVectorExtractDynamic: "OpVectorExtractDynamic",
	OpVectorInsertDynamic:  "OpVectorInsertDynamic",
	OpVectorShuffle:        "OpVectorShuffle",
	OpCompositeConstruct:   "OpCompositeConstruct",
	OpCompositeExtract:     "OpCompositeExtract",
	OpCompositeInsert:      "OpCompositeInsert",
	OpCopyObject:           "OpCopyObject", OpTranspose: "OpTranspose",
	OpSampledImage:                   "OpSampledImage",
	OpImageSampleImplicitLod:         "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod:         "OpImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod:     "OpImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod:     "OpImageSampleDrefExplicitLod",
	OpImageSampleProjImplicitLod:     "OpImageSampleProjImplicitLod",
	OpImageSampleProjExplicitLod:     "OpImageSampleProjExplicitLod",
	OpImageSampleProjDrefImplicitLod: "OpImageSampleProjDrefImplicitLod",
	OpImageSampleProjDrefExplicitLod: "OpImageSampleProjDrefExplicitLod",
	OpImageFetch: "OpImageFetch", OpImageGather: "OpImageGather",
	OpImageDrefGather: "OpImageDrefGather", OpImageRead: "OpImageRead",
	OpImageWrite: "OpImageWrite", OpImage: "OpImage",
	OpImageQuerySizeLod: "OpImageQuerySizeLod", OpImageQuerySize: "OpImageQuerySize",
	OpImageQueryLod: "OpImageQueryLod", OpImageQueryLevels: "OpImageQueryLevels",
	OpImageQuerySamples: "OpImageQuerySamples",
	OpConvertFToU:       "OpConvertFToU", OpConvertFToS: "OpConvertFToS",
	OpConvertSToF: "OpConvertSToF", OpConvertUToF: "OpConvertUToF",
	OpUConvert: "OpUConvert", OpSConvert: "OpSConvert", OpFConvert: "OpFConvert",
	OpQuantizeToF16: "OpQuantizeToF16", OpBitcast: "OpBitcast",
	OpSNegate: "OpSNegate", OpFNegate: "OpFNegate",
	OpIAdd: "OpIAdd", OpFAdd: "OpFAdd", OpISub: "OpISub", OpFSub: "OpFSub",
	OpIMul: "OpIMul", OpFMul: "OpFMul", OpUDiv: "OpUDiv", OpSDiv: "OpSDiv",
	OpFDiv: "OpFDiv", OpUMod: "OpUMod", OpSRem: "OpSRem", OpSMod: "OpSMod",
	OpFRem: "OpFRem", OpFMod: "OpFMod",
	OpVectorTimesScalar: "OpVectorTimesScalar", OpMatrixTimesScalar: "OpMatrixTimesScalar",
	OpVectorTimesMatrix: "OpVectorTimesMatrix", OpMatrixTimesVector: "OpMatrixTimesVector",
	OpMatrixTimesMatrix: "OpMatrixTimesMatrix", OpOuterProduct: "OpOuterProduct",
	OpDot: "OpDot", OpIAddCarry: "OpIAddCarry", OpISubBorrow: "OpISubBorrow",
	OpUMulExtended: "OpUMulExtended", OpSMulExtended: "OpSMulExtended",
	OpAny: "OpAny", OpAll: "OpAll", OpIsNan: "OpIsNan", OpIsInf: "OpIsInf",
	OpLogicalEqual: "OpLogicalEqual", OpLogicalNotEqual: "OpLogicalNotEqual",
	OpLogicalOr: "OpLogicalOr", OpLogicalAnd: "OpLogicalAnd",
	OpLogicalNot: "OpLogicalNot", OpSelect: "OpSelect",
	OpIEqual: "OpIEqual", OpINotEqual: "OpINotEqual",
	OpUGreaterThan: "OpUGreaterThan", OpSGreaterThan: "OpSGreaterThan",
	OpUGreaterThanEqual: "OpUGreaterThanEqual", OpSGreaterThanEqual: "OpSGreaterThanEqual",
	OpULessThan: "OpULessThan", OpSLessThan: "OpSLessThan",
	OpULessThanEqual: "OpULessThanEqual", OpSLessThanEqual: "OpSLessThanEqual",
	OpFOrdEqual: "OpFOrdEqual", OpFUnordEqual: "OpFUnordEqual",
	OpFOrdNotEqual: "OpFOrdNotEqual", OpFUnordNotEqual: "OpFUnordNotEqual",
	OpFOrdLessThan: "OpFOrdLessThan", OpFUnordLessThan: "OpFUnordLessThan",
	OpFOrdGreaterThan: "OpFOrdGreaterThan", OpFUnordGreaterThan: "OpFUnordGreaterThan",
	OpFOrdLessThanEqual: "OpFOrdLessThanEqual", OpFUnordLessThanEqual: "OpFUnordLessThanEqual",
	OpFOrdGreaterThanEqual: "OpFOrdGreaterThanEqual", OpFUnordGreaterThanEqual: "OpFUnordGreaterThanEqual",
	OpShiftRightLogical: "OpShiftRightLogical", OpShiftRightArithmetic: "OpShiftRightArithmetic",
	OpShiftLeftLogical: "OpShiftLeftLogical", OpBitwiseOr: "OpBitwiseOr",
	OpBitwiseXor: "OpBitwiseXor", OpBitwiseAnd: "OpBitwiseAnd", OpNot: "OpNot",
	OpBitFieldInsert: "OpBitFieldInsert", OpBitFieldSExtract: "OpBitFieldSExtract",
	OpBitFieldUExtract: "OpBitFieldUExtract", OpBitReverse: "OpBitReverse",
	OpBitCount: "OpBitCount",
	OpDPdx:     "OpDPdx", OpDPdy: "OpDPdy", OpFwidth: "OpFwidth",
	OpDPdxFine: "OpDPdxFine", OpDPdyFine: "OpDPdyFine", OpFwidthFine: "OpFwidthFine",
	OpDPdxCoarse: "OpDPdxCoarse", OpDPdyCoarse: "OpDPdyCoarse",
	OpFwidthCoarse: "OpFwidthCoarse",
	OpPhi:          "OpPhi", OpLoopMerge: "OpLoopMerge",
	OpSelectionMerge: "OpSelectionMerge", OpLabel: "OpLabel",
	OpBranch: "OpBranch", OpBranchConditional: "OpBranchConditional",
	OpSwitch: "OpSwitch", OpKill: "OpKill", OpReturn: "OpReturn",
	OpReturnValue: "OpReturnValue", OpUnreachable: "OpUnreachable",
	OpImageSparseSampleImplicitLod:         "OpImageSparseSampleImplicitLod",
	OpImageSparseSampleExplicitLod:         "OpImageSparseSampleExplicitLod",
	OpImageSparseSampleDrefImplicitLod:     "OpImageSparseSampleDrefImplicitLod",
	OpImageSparseSampleDrefExplicitLod:     "OpImageSparseSampleDrefExplicitLod",
	OpImageSparseSampleProjImplicitLod:     "OpImageSparseSampleProjImplicitLod",
	OpImageSparseSampleProjExplicitLod:     "OpImageSparseSampleProjExplicitLod",
	OpImageSparseSampleProjDrefImplicitLod: "OpImageSparseSampleProjDrefImplicitLod",
	OpImageSparseSampleProjDrefExplicitLod: "OpImageSparseSampleProjDrefExplicitLod",
	OpGroupNonUniformElect:                 "OpGroupNonUniformElect",
	OpGroupNonUniformAll:                   "OpGroupNonUniformAll",
	OpGroupNonUniformAny:                   "OpGroupNonUniformAny",
	OpGroupNonUniformAllEqual:              "OpGroupNonUniformAllEqual",
	OpGroupNonUniformBroadcast:             "OpGroupNonUniformBroadcast",
	OpGroupNonUniformBroadcastFirst:        "OpGroupNonUniformBroadcastFirst",
	OpGroupNonUniformBallot:                "OpGroupNonUniformBallot",
	OpGroupNonUniformInverseBallot:         "OpGroupNonUniformInverseBallot",
	OpGroupNonUniformBallotBitExtract:      "OpGroupNonUniformBallotBitExtract",
	OpGroupNonUniformBallotBitCount:        "OpGroupNonUniformBallotBitCount",
	OpGroupNonUniformBallotFindLSB:         "OpGroupNonUniformBallotFindLSB",
	OpGroupNonUniformBallotFindMSB:         "OpGroupNonUniformBallotFindMSB",
	OpTerminateInvocation:                  "OpTerminateInvocation",
	OpSubgroupBallotKHR:                    "OpSubgroupBallotKHR",
	OpSubgroupFirstInvocationKHR:           "OpSubgroupFirstInvocationKHR",
	OpSubgroupReadInvocationKHR:            "OpSubgroupReadInvocationKHR",
}

// String returns the assembly name of the opcode, or "Op<n>" for
// opcodes outside the table.
func (op Op) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

var storageClassNames = map[StorageClass]string{
	StorageClassUniformConstant:       "UniformConstant",
	StorageClassInput:                 "Input",
	StorageClassUniform:               "Uniform",
	StorageClassOutput:                "Output",
	StorageClassWorkgroup:             "Workgroup",
	StorageClassCrossWorkgroup:        "CrossWorkgroup",
	StorageClassPrivate:               "Private",
	StorageClassFunction:              "Function",
	StorageClassGeneric:               "Generic",
	StorageClassPushConstant:          "PushConstant",
	StorageClassAtomicCounter:         "AtomicCounter",
	StorageClassImage:                 "Image",
	StorageClassStorageBuffer:         "StorageBuffer",
	StorageClassPhysicalStorageBuffer: "PhysicalStorageBuffer",
}

func (sc StorageClass) String() string {
	if s, ok := storageClassNames[sc]; ok {
		return s
	}
	return fmt.Sprintf("StorageClass(%d)", uint32(sc))
}

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision",
	DecorationSpecID:           "SpecId",
	DecorationBlock:            "Block",
	DecorationRowMajor:         "RowMajor",
	DecorationColMajor:         "ColMajor",
	DecorationArrayStride:      "ArrayStride",
	DecorationMatrixStride:     "MatrixStride",
	DecorationBuiltIn:          "BuiltIn",
	DecorationNoPerspective:    "NoPerspective",
	DecorationFlat:             "Flat",
	DecorationPatch:            "Patch",
	DecorationCentroid:         "Centroid",
	DecorationInvariant:        "Invariant",
	DecorationLocation:         "Location",
	DecorationComponent:        "Component",
	DecorationBinding:          "Binding",
	DecorationDescriptorSet:    "DescriptorSet",
	DecorationOffset:           "Offset",
	DecorationNonUniform:       "NonUniform",
}

func (d Decoration) String() string {
	if s, ok := decorationNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Decoration(%d)", uint32(d))
}
