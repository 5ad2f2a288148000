package lint_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/lint"
)

func buildCDG(t *testing.T, words []uint32) (*ir.Context, *lint.ControlDependenceGraph) {
	t.Helper()
	ctx := buildContext(t, words)
	fn := ctx.Module.Functions[0]
	cfg := ctx.CFG(fn)
	cdg := lint.NewControlDependenceGraph(cfg, ctx.PostDominators(fn))
	return ctx, cdg
}

// gatherEdges collects the forward edges sorted by (source, target)
// and checks that the reverse view holds exactly the same edge set.
func gatherEdges(t *testing.T, cdg *lint.ControlDependenceGraph) []lint.ControlDependence {
	t.Helper()
	var forward, reverse []lint.ControlDependence
	cdg.ForEachBlockLabel(func(label uint32) {
		deps, ok := cdg.Dependents(label)
		if !ok {
			t.Fatalf("block %d missing from forward view", label)
		}
		forward = append(forward, deps...)
		rdeps, ok := cdg.Dependees(label)
		if !ok {
			t.Fatalf("block %d missing from reverse view", label)
		}
		reverse = append(reverse, rdeps...)
	})
	sort.SliceStable(forward, func(i, j int) bool { return forward[i].Less(forward[j]) })
	sort.SliceStable(reverse, func(i, j int) bool { return reverse[i].Less(reverse[j]) })
	if diff := cmp.Diff(forward, reverse); diff != "" {
		t.Fatalf("forward and reverse views disagree (-forward +reverse):\n%s", diff)
	}
	return forward
}

func condDep(source, target, condition uint32, value bool) lint.ControlDependence {
	return lint.ControlDependence{
		Source:        source,
		Target:        target,
		Kind:          lint.DependenceConditionalBranch,
		ConditionID:   condition,
		TakenWhenTrue: value,
	}
}

func switchDep(source, target, selector uint32, isDefault bool, cases []uint32) lint.ControlDependence {
	return lint.ControlDependence{
		Source:     source,
		Target:     target,
		Kind:       lint.DependenceSwitchCase,
		SelectorID: selector,
		CaseValues: cases,
		IsDefault:  isDefault,
	}
}

func entryDep(target uint32) lint.ControlDependence {
	return lint.ControlDependence{
		Source: lint.PseudoEntryBlock,
		Target: target,
		Kind:   lint.DependenceEntry,
	}
}

func TestControlDependence_SimpleCFG(t *testing.T) {
	_, cdg := buildCDG(t, simpleSwitchCFG())

	dependent := [][2]uint32{
		{12, 11}, {13, 11}, {15, 14}, {16, 14}, {18, 14}, {17, 16},
		{10, 0}, {11, 0}, {14, 0}, {19, 0},
	}
	for _, pair := range dependent {
		if !cdg.IsDependent(pair[0], pair[1]) {
			t.Errorf("expected %d to depend on %d", pair[0], pair[1])
		}
	}
	independent := [][2]uint32{{14, 11}, {17, 14}, {19, 14}, {12, 0}}
	for _, pair := range independent {
		if cdg.IsDependent(pair[0], pair[1]) {
			t.Errorf("expected %d not to depend on %d", pair[0], pair[1])
		}
	}

	want := []lint.ControlDependence{
		entryDep(10), entryDep(11), entryDep(14), entryDep(19),
		switchDep(11, 12, 6, true, nil),
		switchDep(11, 13, 6, false, []uint32{1}),
		condDep(14, 15, 8, true),
		condDep(14, 16, 8, false),
		condDep(14, 18, 8, false),
		condDep(16, 17, 8, true),
	}
	if diff := cmp.Diff(want, gatherEdges(t, cdg)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestControlDependence_PaperCFG(t *testing.T) {
	_, cdg := buildCDG(t, paperCFG())

	want := []lint.ControlDependence{
		entryDep(1), entryDep(2), entryDep(8), entryDep(9),
		entryDep(11), entryDep(12), entryDep(13),
		condDep(2, 3, 108, true),
		condDep(2, 6, 108, true),
		condDep(2, 7, 108, false),
		condDep(3, 4, 108, true),
		condDep(3, 5, 108, false),
		condDep(9, 10, 108, true),
		condDep(11, 9, 108, false),
		condDep(11, 11, 108, false),
		condDep(12, 2, 108, false),
		condDep(12, 8, 108, false),
		condDep(12, 9, 108, false),
		condDep(12, 11, 108, false),
		condDep(12, 12, 108, false),
	}
	if diff := cmp.Diff(want, gatherEdges(t, cdg)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

// Every edge must point at a block that does not strictly post-dominate
// its source, except for edges out of the pseudo entry.
func TestControlDependence_PostDominanceGating(t *testing.T) {
	for name, words := range map[string][]uint32{
		"simple": simpleSwitchCFG(),
		"paper":  paperCFG(),
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cdg := buildCDG(t, words)
			pdom := ctx.PostDominators(ctx.Module.Functions[0])
			for _, dep := range gatherEdges(t, cdg) {
				if dep.Source == lint.PseudoEntryBlock {
					if dep.Kind != lint.DependenceEntry {
						t.Errorf("edge %v from pseudo entry is not an entry edge", dep)
					}
					continue
				}
				if dep.Kind == lint.DependenceEntry {
					t.Errorf("entry edge %v does not come from the pseudo entry", dep)
				}
				if pdom.StrictlyPostDominates(dep.Target, dep.Source) {
					t.Errorf("edge %v: target strictly post-dominates source", dep)
				}
			}
		})
	}
}
