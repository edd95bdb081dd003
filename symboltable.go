package main

import "sort"

// SymbolTable maps variable names to their current values.
// One table backs every tree parsed from the same program.
type SymbolTable struct {
	values map[string]int64
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{values: make(map[string]int64)}
}

// Get returns the value bound to name.
func (st *SymbolTable) Get(name string) (int64, error) {
	v, ok := st.values[name]
	if !ok {
		return 0, &RuntimeError{Kind: UndefinedVariable, Name: name}
	}
	return v, nil
}

// Set binds name to value, replacing any previous binding.
func (st *SymbolTable) Set(name string, value int64) {
	st.values[name] = value
}

func (st *SymbolTable) Len() int {
	return len(st.values)
}

// Names returns the bound names in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.values))
	for name := range st.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
