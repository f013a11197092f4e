package sema

// Definitions are the five flat name sets built by the collection pass.
// There is no scope nesting: a name defined anywhere in the stream is
// visible everywhere. After collection the sets are read-only.
type Definitions struct {
	Functions  map[string]struct{}
	Classes    map[string]struct{}
	Variables  map[string]struct{}
	Imports    map[string]struct{}
	Parameters map[string]struct{}
}

func newDefinitions() *Definitions {
	return &Definitions{
		Functions:  make(map[string]struct{}),
		Classes:    make(map[string]struct{}),
		Variables:  make(map[string]struct{}),
		Imports:    make(map[string]struct{}),
		Parameters: make(map[string]struct{}),
	}
}

// VariableKnown reports whether a name may be read as a variable.
func (d *Definitions) VariableKnown(name string) bool {
	if _, ok := d.Variables[name]; ok {
		return true
	}
	if _, ok := d.Parameters[name]; ok {
		return true
	}
	if _, ok := d.Imports[name]; ok {
		return true
	}
	if _, ok := d.Classes[name]; ok {
		return true
	}
	return IsBuiltin(name) || IsSpecialName(name) || leadingUnderscore(name)
}

// FunctionKnown reports whether a name may be called. Classes count:
// calling one is constructing it.
func (d *Definitions) FunctionKnown(name string) bool {
	if _, ok := d.Functions[name]; ok {
		return true
	}
	if _, ok := d.Imports[name]; ok {
		return true
	}
	if _, ok := d.Classes[name]; ok {
		return true
	}
	return IsBuiltin(name) || leadingUnderscore(name)
}

func leadingUnderscore(name string) bool {
	return len(name) > 0 && name[0] == '_'
}
