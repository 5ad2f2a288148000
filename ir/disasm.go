package ir

import (
	"fmt"
	"strings"

	"github.com/gogpu/spvlint/spirv"
)

// DecodeString decodes a nul-terminated literal string from operand
// words, little-endian byte order.
func DecodeString(words []uint32) string {
	var sb strings.Builder
	for _, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return sb.String()
			}
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// PrettyPrinter renders instructions in spvasm-like syntax, using
// friendly names from OpName debug info where available.
type PrettyPrinter struct {
	names map[uint32]string
}

// NewPrettyPrinter collects the friendly names of m.
func NewPrettyPrinter(m *Module) *PrettyPrinter {
	p := &PrettyPrinter{names: make(map[uint32]string)}
	taken := make(map[string]uint32)
	for _, in := range m.Debug {
		if in.Opcode != spirv.OpName || len(in.Operands) < 2 {
			continue
		}
		target := in.Operand(0)
		name := sanitizeName(DecodeString(in.Operands[1:]))
		if name == "" {
			continue
		}
		// First target keeps the bare name, later ones get a suffix.
		if other, clash := taken[name]; clash && other != target {
			name = fmt.Sprintf("%s_%d", name, target)
		}
		taken[name] = target
		p.names[target] = name
	}
	return p
}

func sanitizeName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return strings.Trim(sb.String(), "_")
}

// Name returns "%friendly" for ids with debug names, "%<id>" otherwise.
func (p *PrettyPrinter) Name(id uint32) string {
	if n, ok := p.names[id]; ok {
		return "%" + n
	}
	return fmt.Sprintf("%%%d", id)
}

// Sprint renders one instruction.
func (p *PrettyPrinter) Sprint(in *Instruction) string {
	var sb strings.Builder
	if in.HasResult() {
		sb.WriteString(p.Name(in.ResultID))
		sb.WriteString(" = ")
	}
	sb.WriteString(in.Opcode.String())
	if in.TypeID != 0 {
		sb.WriteByte(' ')
		sb.WriteString(p.Name(in.TypeID))
	}
	p.operands(&sb, in)
	return sb.String()
}

//nolint:gocyclo // one case per operand shape
func (p *PrettyPrinter) operands(sb *strings.Builder, in *Instruction) {
	id := func(i int) { sb.WriteByte(' '); sb.WriteString(p.Name(in.Operand(i))) }
	lit := func(i int) { fmt.Fprintf(sb, " %d", in.Operand(i)) }
	idsFrom := func(start int) {
		for i := start; i < len(in.Operands); i++ {
			id(i)
		}
	}

	switch in.Opcode {
	case spirv.OpConstant, spirv.OpSpecConstant:
		lit(0)
	case spirv.OpVariable:
		sb.WriteByte(' ')
		sb.WriteString(spirv.StorageClass(in.Operand(0)).String())
		idsFrom(1)
	case spirv.OpTypePointer:
		sb.WriteByte(' ')
		sb.WriteString(spirv.StorageClass(in.Operand(0)).String())
		id(1)
	case spirv.OpLoad:
		id(0)
	case spirv.OpDecorate:
		id(0)
		sb.WriteByte(' ')
		sb.WriteString(spirv.Decoration(in.Operand(1)).String())
		for i := 2; i < len(in.Operands); i++ {
			lit(i)
		}
	case spirv.OpCompositeExtract:
		id(0)
		for i := 1; i < len(in.Operands); i++ {
			lit(i)
		}
	case spirv.OpSwitch:
		id(0)
		id(1)
		for i := 2; i+1 < len(in.Operands); i += 2 {
			lit(i)
			id(i + 1)
		}
	case spirv.OpName:
		id(0)
		fmt.Fprintf(sb, " %q", DecodeString(in.Operands[1:]))
	default:
		// Remaining modeled opcodes take id operands only, or are
		// rendered well enough by treating every operand as an id.
		idsFrom(0)
	}
}
