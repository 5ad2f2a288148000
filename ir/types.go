package ir

import "github.com/gogpu/spvlint/spirv"

// TypeManager answers type queries on a module. The linter only needs
// pointer types, so that is all it indexes.
type TypeManager struct {
	pointers map[uint32]spirv.StorageClass
}

// NewTypeManager indexes the pointer types of m.
func NewTypeManager(m *Module) *TypeManager {
	t := &TypeManager{pointers: make(map[uint32]spirv.StorageClass)}
	for _, in := range m.TypesValues {
		if in.Opcode == spirv.OpTypePointer {
			t.pointers[in.ResultID] = spirv.StorageClass(in.Operand(0))
		}
	}
	return t
}

// PointerStorageClass returns the storage class of the pointer type
// with the given id. The second result is false when the id is not a
// pointer type.
func (t *TypeManager) PointerStorageClass(typeID uint32) (spirv.StorageClass, bool) {
	sc, ok := t.pointers[typeID]
	return sc, ok
}
