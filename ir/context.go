package ir

// Context bundles a module with its derived analyses. The module is
// read-only once a Context is built; managers are constructed eagerly
// and the per-function CFG and post-dominator tree on first use.
type Context struct {
	Module      *Module
	DefUse      *DefUseManager
	Types       *TypeManager
	Decorations *DecorationManager
	Printer     *PrettyPrinter

	instrBlock map[*Instruction]*Block
	cfgs       map[*Function]*CFG
	pdoms      map[*Function]*PostDominatorAnalysis
}

// NewContext builds the analysis context for m.
func NewContext(m *Module) *Context {
	c := &Context{
		Module:      m,
		DefUse:      NewDefUseManager(m),
		Types:       NewTypeManager(m),
		Decorations: NewDecorationManager(m),
		Printer:     NewPrettyPrinter(m),
		instrBlock:  make(map[*Instruction]*Block),
		cfgs:        make(map[*Function]*CFG),
		pdoms:       make(map[*Function]*PostDominatorAnalysis),
	}
	for _, fn := range m.Functions {
		for _, b := range fn.Blocks {
			block := b
			b.ForEachInstruction(func(in *Instruction) {
				c.instrBlock[in] = block
			})
		}
	}
	return c
}

// CFG returns the control-flow graph of fn.
func (c *Context) CFG(fn *Function) *CFG {
	g, ok := c.cfgs[fn]
	if !ok {
		g = NewCFG(fn)
		c.cfgs[fn] = g
	}
	return g
}

// PostDominators returns the post-dominator analysis of fn.
func (c *Context) PostDominators(fn *Function) *PostDominatorAnalysis {
	p, ok := c.pdoms[fn]
	if !ok {
		p = NewPostDominatorAnalysis(c.CFG(fn))
		c.pdoms[fn] = p
	}
	return p
}

// InstructionBlock returns the basic block containing in, or nil for
// module-scope instructions.
func (c *Context) InstructionBlock(in *Instruction) *Block {
	return c.instrBlock[in]
}
