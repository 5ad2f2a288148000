package ir

import (
	"testing"

	"github.com/gogpu/spvlint/spirv"
)

func TestPrettyPrinter_FriendlyNames(t *testing.T) {
	m := testFunction(t)
	p := NewPrettyPrinter(m)

	// %12 is named "main" by the OpName in the fixture.
	if got := p.Name(12); got != "%main" {
		t.Errorf("Name(12) = %q, want %%main", got)
	}
	if got := p.Name(15); got != "%15" {
		t.Errorf("Name(15) = %q, want %%15", got)
	}
}

func TestPrettyPrinter_Sprint(t *testing.T) {
	m := testFunction(t)
	p := NewPrettyPrinter(m)
	fn := m.Functions[0]

	cases := []struct {
		in   *Instruction
		want string
	}{
		{fn.Entry().Body[0], "%15 = OpLoad %4 %7"},
		{fn.Entry().Terminator(), "OpBranchConditional %15 %11 %main"},
		{m.TypesValues[4], "%6 = OpTypePointer Input %4"},
		{m.TypesValues[5], "%7 = OpVariable %6 Input"},
		{m.Annotations[0], "OpDecorate %15 Flat"},
	}
	for _, tc := range cases {
		if got := p.Sprint(tc.in); got != tc.want {
			t.Errorf("Sprint = %q, want %q", got, tc.want)
		}
	}
}

func TestPrettyPrinter_Switch(t *testing.T) {
	p := &PrettyPrinter{names: map[uint32]string{}}
	sw := &Instruction{
		Opcode:   spirv.OpSwitch,
		Operands: []uint32{6, 12, 1, 13},
	}
	if got := p.Sprint(sw); got != "OpSwitch %6 %12 1 %13" {
		t.Errorf("Sprint = %q", got)
	}
}

func TestPrettyPrinter_NameClash(t *testing.T) {
	m, err := BuildModule(moduleWords(10,
		words(spirv.OpName, 3, 0x6261), // "ab"
		words(spirv.OpName, 4, 0x6261), // "ab" again
		words(spirv.OpTypeVoid, 2),
	))
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	p := NewPrettyPrinter(m)
	if p.Name(3) == p.Name(4) {
		t.Errorf("clashing names not disambiguated: %q vs %q", p.Name(3), p.Name(4))
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"main":        "main",
		"a b":         "a_b",
		"__x__":       "x",
		"vtx@0":       "vtx_0",
	}
	for in, want := range cases {
		if got := sanitizeName(in); got != want {
			t.Errorf("sanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
