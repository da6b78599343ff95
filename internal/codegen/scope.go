package codegen

import "monicelli/internal/ast"

// scope is one level of the variable namespace. Functions live in a
// separate table on the Generator since they are visible everywhere.
type scope struct {
	parent *scope
	vars   map[string]ast.Type
	order  []string
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]ast.Type)}
}

func (s *scope) declare(name string, t ast.Type) {
	if _, ok := s.vars[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vars[name] = t
}

func (s *scope) lookup(name string) (ast.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.vars[name]; ok {
			return t, true
		}
	}
	return 0, false
}

// visible lists every name reachable from s, innermost first.
func (s *scope) visible() []string {
	var names []string
	for sc := s; sc != nil; sc = sc.parent {
		names = append(names, sc.order...)
	}
	return names
}
