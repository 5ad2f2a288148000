package ir

import (
	"reflect"
	"testing"

	"github.com/gogpu/spvlint/spirv"
)

// paperModule is the CFG from Cytron 1991, figure 1.
func paperModule(t *testing.T) *Module {
	t.Helper()
	m, err := BuildModule(moduleWords(120,
		words(spirv.OpTypeVoid, 102),
		words(spirv.OpTypeFunction, 103, 102),
		words(spirv.OpTypeBool, 104),
		words(spirv.OpConstantTrue, 104, 108),
		words(spirv.OpFunction, 102, 101, 0, 103),
		words(spirv.OpLabel, 1),
		words(spirv.OpBranch, 2),
		words(spirv.OpLabel, 2),
		words(spirv.OpBranchConditional, 108, 3, 7),
		words(spirv.OpLabel, 3),
		words(spirv.OpBranchConditional, 108, 4, 5),
		words(spirv.OpLabel, 4),
		words(spirv.OpBranch, 6),
		words(spirv.OpLabel, 5),
		words(spirv.OpBranch, 6),
		words(spirv.OpLabel, 6),
		words(spirv.OpBranch, 8),
		words(spirv.OpLabel, 7),
		words(spirv.OpBranch, 8),
		words(spirv.OpLabel, 8),
		words(spirv.OpBranch, 9),
		words(spirv.OpLabel, 9),
		words(spirv.OpBranchConditional, 108, 10, 11),
		words(spirv.OpLabel, 10),
		words(spirv.OpBranch, 11),
		words(spirv.OpLabel, 11),
		words(spirv.OpBranchConditional, 108, 12, 9),
		words(spirv.OpLabel, 12),
		words(spirv.OpBranchConditional, 108, 13, 2),
		words(spirv.OpLabel, 13),
		words(spirv.OpReturn),
		words(spirv.OpFunctionEnd),
	))
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	return m
}

func TestCFG_Edges(t *testing.T) {
	m := paperModule(t)
	cfg := NewCFG(m.Functions[0])

	if cfg.Entry() != 1 {
		t.Errorf("entry = %d, want 1", cfg.Entry())
	}
	succs := map[uint32][]uint32{
		1: {2}, 2: {3, 7}, 3: {4, 5}, 4: {6}, 5: {6}, 6: {8}, 7: {8},
		8: {9}, 9: {10, 11}, 10: {11}, 11: {12, 9}, 12: {13, 2}, 13: nil,
	}
	for block, want := range succs {
		if got := cfg.Succs(block); !reflect.DeepEqual(got, want) {
			t.Errorf("succs(%d) = %v, want %v", block, got, want)
		}
	}
	preds := map[uint32][]uint32{
		1: nil, 2: {1, 12}, 9: {8, 11}, 11: {9, 10}, 13: {12},
	}
	for block, want := range preds {
		if got := cfg.Preds(block); !reflect.DeepEqual(got, want) {
			t.Errorf("preds(%d) = %v, want %v", block, got, want)
		}
	}
}

func TestCFG_ReversePostOrder(t *testing.T) {
	m := paperModule(t)
	cfg := NewCFG(m.Functions[0])

	var order []uint32
	pos := make(map[uint32]int)
	cfg.ReversePostOrder(func(b *Block) {
		pos[b.ID()] = len(order)
		order = append(order, b.ID())
	})
	if len(order) != 13 {
		t.Fatalf("visited %d blocks, want 13", len(order))
	}
	if order[0] != 1 {
		t.Errorf("first block = %d, want entry", order[0])
	}
	// Forward (non-back-edge) edges run in increasing position.
	for _, e := range [][2]uint32{{1, 2}, {2, 3}, {3, 4}, {4, 6}, {6, 8}, {8, 9}, {9, 10}, {11, 12}, {12, 13}} {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("block %d should precede %d", e[0], e[1])
		}
	}
}

func TestCFG_SwitchTargets(t *testing.T) {
	term := &Instruction{
		Opcode:   spirv.OpSwitch,
		Operands: []uint32{6, 12, 1, 13, 2, 14},
	}
	want := []uint32{12, 13, 14}
	if got := TerminatorTargets(term); !reflect.DeepEqual(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
}

func TestPostDominators_PaperCFG(t *testing.T) {
	m := paperModule(t)
	pdom := NewPostDominatorAnalysis(NewCFG(m.Functions[0]))

	ipdoms := map[uint32]uint32{
		1: 2, 2: 8, 3: 6, 4: 6, 5: 6, 6: 8, 7: 8, 8: 9, 9: 11, 10: 11, 11: 12, 12: 13,
	}
	for block, want := range ipdoms {
		got, ok := pdom.ImmediatePostDominator(block)
		if !ok || got != want {
			t.Errorf("ipdom(%d) = (%d, %t), want %d", block, got, ok, want)
		}
	}
	if _, ok := pdom.ImmediatePostDominator(13); ok {
		t.Error("exit block should have the pseudo-exit as immediate post-dominator")
	}

	strict := [][2]uint32{{2, 1}, {8, 2}, {6, 3}, {6, 4}, {11, 9}, {13, 1}, {13, 12}, {9, 8}}
	for _, pair := range strict {
		if !pdom.StrictlyPostDominates(pair[0], pair[1]) {
			t.Errorf("expected %d to strictly post-dominate %d", pair[0], pair[1])
		}
	}
	notStrict := [][2]uint32{{1, 2}, {9, 10}, {6, 7}, {10, 9}, {3, 3}}
	for _, pair := range notStrict {
		if pdom.StrictlyPostDominates(pair[0], pair[1]) {
			t.Errorf("%d should not strictly post-dominate %d", pair[0], pair[1])
		}
	}
}

func TestPostDominators_PostOrder(t *testing.T) {
	m := paperModule(t)
	pdom := NewPostDominatorAnalysis(NewCFG(m.Functions[0]))

	order := pdom.PostOrder()
	if len(order) != 13 {
		t.Fatalf("post-order covers %d blocks, want 13", len(order))
	}
	pos := make(map[uint32]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	// Children come before their tree parent.
	for block := uint32(1); block <= 12; block++ {
		parent, ok := pdom.ImmediatePostDominator(block)
		if !ok {
			continue
		}
		if pos[block] >= pos[parent] {
			t.Errorf("block %d should precede its immediate post-dominator %d", block, parent)
		}
	}
}
