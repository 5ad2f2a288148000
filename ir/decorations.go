package ir

import "github.com/gogpu/spvlint/spirv"

// DecorationManager indexes OpDecorate instructions by target id.
type DecorationManager struct {
	byTarget map[uint32][]spirv.Decoration
}

// NewDecorationManager indexes the annotations of m.
func NewDecorationManager(m *Module) *DecorationManager {
	d := &DecorationManager{byTarget: make(map[uint32][]spirv.Decoration)}
	for _, in := range m.Annotations {
		if in.Opcode != spirv.OpDecorate || len(in.Operands) < 2 {
			continue
		}
		target := in.Operand(0)
		d.byTarget[target] = append(d.byTarget[target], spirv.Decoration(in.Operand(1)))
	}
	return d
}

// DecorationsFor returns the decorations attached to id.
func (d *DecorationManager) DecorationsFor(id uint32) []spirv.Decoration {
	return d.byTarget[id]
}

// HasDecoration reports whether id carries dec.
func (d *DecorationManager) HasDecoration(id uint32, dec spirv.Decoration) bool {
	for _, got := range d.byTarget[id] {
		if got == dec {
			return true
		}
	}
	return false
}
