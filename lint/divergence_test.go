package lint_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/lint"
	"github.com/gogpu/spvlint/spirv"
)

// loadsModule exercises the classifier over every storage class the
// linter distinguishes, plus a function parameter and a transitive
// dependency.
//
//	%45 load Function     %46 load StorageBuffer  %47 load Output
//	%48 load Input        %43 load Input (Flat)   %49 load Uniform
//	%41 parameter         %50 = %49 + %46
func loadsModule() []uint32 {
	return assemble(60,
		ins(spirv.OpDecorate, 43, uint32(spirv.DecorationFlat)),
		ins(spirv.OpTypeVoid, 2),
		ins(spirv.OpTypeInt, 5, 32, 0),
		ins(spirv.OpTypeFunction, 3, 2, 5),
		ins(spirv.OpTypePointer, 30, uint32(spirv.StorageClassStorageBuffer), 5),
		ins(spirv.OpVariable, 30, 31, uint32(spirv.StorageClassStorageBuffer)),
		ins(spirv.OpTypePointer, 32, uint32(spirv.StorageClassOutput), 5),
		ins(spirv.OpVariable, 32, 33, uint32(spirv.StorageClassOutput)),
		ins(spirv.OpTypePointer, 34, uint32(spirv.StorageClassInput), 5),
		ins(spirv.OpVariable, 34, 35, uint32(spirv.StorageClassInput)),
		ins(spirv.OpVariable, 34, 40, uint32(spirv.StorageClassInput)),
		ins(spirv.OpTypePointer, 36, uint32(spirv.StorageClassUniform), 5),
		ins(spirv.OpVariable, 36, 37, uint32(spirv.StorageClassUniform)),
		ins(spirv.OpTypePointer, 38, uint32(spirv.StorageClassFunction), 5),
		ins(spirv.OpFunction, 2, 1, 0, 3),
		ins(spirv.OpFunctionParameter, 5, 41),
		ins(spirv.OpLabel, 10),
		ins(spirv.OpVariable, 38, 44, uint32(spirv.StorageClassFunction)),
		ins(spirv.OpLoad, 5, 45, 44),
		ins(spirv.OpLoad, 5, 46, 31),
		ins(spirv.OpLoad, 5, 47, 33),
		ins(spirv.OpLoad, 5, 48, 35),
		ins(spirv.OpLoad, 5, 43, 40),
		ins(spirv.OpLoad, 5, 49, 37),
		ins(spirv.OpIAdd, 5, 50, 49, 46),
		ins(spirv.OpReturn),
		ins(spirv.OpFunctionEnd),
	)
}

func runAnalysis(t *testing.T, ctx *ir.Context) *lint.DivergenceAnalysis {
	t.Helper()
	fn := ctx.Module.Functions[0]
	cdg := lint.NewControlDependenceGraph(ctx.CFG(fn), ctx.PostDominators(fn))
	analysis := lint.NewDivergenceAnalysis(ctx, cdg)
	analysis.Run(fn)
	return analysis
}

func sortedKeys(m map[uint32]lint.DivergenceReason) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func TestDivergence_StorageClassRoots(t *testing.T) {
	ctx := buildContext(t, loadsModule())
	analysis := runAnalysis(t, ctx)

	for _, id := range []uint32{45, 46, 47, 48} {
		require.True(t, analysis.IsValueDivergent(id), "load %%%d should be divergent", id)
		reason, ok := analysis.ValueReason(id)
		require.True(t, ok)
		require.Equal(t, lint.ReasonRoot, reason.Kind, "load %%%d", id)
	}
	require.True(t, analysis.IsValueDivergent(41), "function parameter")

	require.False(t, analysis.IsValueDivergent(43), "Flat input load should be uniform")
	require.False(t, analysis.IsValueDivergent(49), "Uniform load should be uniform")
}

func TestDivergence_TransitiveValue(t *testing.T) {
	ctx := buildContext(t, loadsModule())
	analysis := runAnalysis(t, ctx)

	require.True(t, analysis.IsValueDivergent(50))
	reason, ok := analysis.ValueReason(50)
	require.True(t, ok)
	require.Equal(t, lint.ReasonValueBecauseValue, reason.Kind)
	require.Equal(t, uint32(46), reason.ID, "witness should be the divergent operand")
}

// Re-running the analysis on the same IR must produce identical key
// sets; only the stored witnesses may depend on visit order.
func TestDivergence_Monotone(t *testing.T) {
	ctx := buildContext(t, loadsModule())
	first := runAnalysis(t, ctx)
	second := runAnalysis(t, ctx)

	require.Equal(t, sortedKeys(first.DivergentValues()), sortedKeys(second.DivergentValues()))
	require.Equal(t, sortedKeys(first.DivergentBlocks()), sortedKeys(second.DivergentBlocks()))
}

func TestDivergence_UniformSingleBlock(t *testing.T) {
	ctx := buildContext(t, loadsModule())
	analysis := runAnalysis(t, ctx)

	// The lone block depends only on the pseudo entry.
	require.False(t, analysis.IsBlockDivergent(10))
	require.Empty(t, analysis.DivergentBlocks())
}

func TestDivergence_BlockWitness(t *testing.T) {
	ctx := buildContext(t, divergentBranchModule(false))
	analysis := runAnalysis(t, ctx)

	require.True(t, analysis.IsBlockDivergent(11))
	reason, ok := analysis.BlockReason(11)
	require.True(t, ok)
	require.Equal(t, lint.ReasonBlockBecauseValue, reason.Kind)
	require.Equal(t, uint32(19), reason.ID)
	require.Equal(t, uint32(10), reason.Branch)
}
