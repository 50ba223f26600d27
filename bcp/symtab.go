package bcp

// This file implements the variable-name symbol table folded into Context
//.

// DefineVar registers name if it is not already known and returns its
// index. Registering a new name does not by itself grow NumVars/the
// constant table; call Resize(len(VarNames())) once all names are known
//.
func (p *Context) DefineVar(name string) uint {
	if idx, ok := p.varIndex[name]; ok {
		return idx
	}
	idx := uint(len(p.varNames))
	p.varIndex[name] = idx
	p.varNames = append(p.varNames, name)
	return idx
}

// VarIndex looks up a variable's position by name.
func (p *Context) VarIndex(name string) (uint, bool) {
	idx, ok := p.varIndex[name]
	return idx, ok
}

// VarName returns the name registered at position i, or "" if none.
func (p *Context) VarName(i uint) string {
	if i >= uint(len(p.varNames)) {
		return ""
	}
	return p.varNames[i]
}

// VarNames returns the full index->name table, in index order. The
// returned slice is owned by the caller (a defensive copy).
func (p *Context) VarNames() []string {
	out := make([]string, len(p.varNames))
	copy(out, p.varNames)
	return out
}

// VarCount returns the number of names registered in the symbol table. This
// may be larger than NumVars before a Resize call finalizes the context.
func (p *Context) VarCount() int {
	return len(p.varNames)
}
