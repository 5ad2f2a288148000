package ir

// DefUseManager indexes the definition and the consumers of every
// result id in a module, including block labels.
type DefUseManager struct {
	defs  map[uint32]*Instruction
	users map[uint32][]*Instruction
}

// NewDefUseManager builds the def-use index for m.
func NewDefUseManager(m *Module) *DefUseManager {
	d := &DefUseManager{
		defs:  make(map[uint32]*Instruction),
		users: make(map[uint32][]*Instruction),
	}
	record := func(in *Instruction) {
		if in.HasResult() {
			d.defs[in.ResultID] = in
		}
		in.WhileEachInID(func(id uint32) bool {
			d.users[id] = append(d.users[id], in)
			return true
		})
	}
	for _, in := range m.TypesValues {
		record(in)
	}
	for _, fn := range m.Functions {
		record(fn.Def)
		for _, p := range fn.Params {
			record(p)
		}
		for _, b := range fn.Blocks {
			b.ForEachInstruction(record)
		}
	}
	return d
}

// GetDef returns the instruction defining id, or nil.
func (d *DefUseManager) GetDef(id uint32) *Instruction {
	return d.defs[id]
}

// ForEachUser calls f for every instruction that uses id as an input
// operand, in module order.
func (d *DefUseManager) ForEachUser(id uint32, f func(*Instruction)) {
	for _, in := range d.users[id] {
		f(in)
	}
}
