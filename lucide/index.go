package lucide

import (
	"slices"
	"strings"
)

// Entry describes one generated icon.
type Entry struct {
	// Name is the icon's source name, e.g. "arrow-up-circle".
	Name string
	// Module is the generated file's identifier, e.g. "arrow_up_circle".
	Module    string
	Component Component
}

// Index lists the generated icons sorted by Name.
type Index []Entry

// Lookup finds a component by icon name or module name.
func (idx Index) Lookup(name string) (Component, bool) {
	i, found := slices.BinarySearchFunc(idx, name, func(e Entry, target string) int {
		return strings.Compare(e.Name, target)
	})
	if found {
		return idx[i].Component, true
	}
	for _, e := range idx {
		if e.Module == name {
			return e.Component, true
		}
	}
	return nil, false
}

// Names returns every icon name in index order.
func (idx Index) Names() []string {
	names := make([]string, len(idx))
	for i, e := range idx {
		names[i] = e.Name
	}
	return names
}
