package codegen

import (
	"fmt"
	"strings"
)

// Variables and functions live in separate C++ namespaces, each behind its
// own prefix. No prefixed name is a keyword or a name the standard headers
// declare.
const (
	varPrefix  = "v_"
	funcPrefix = "f_"
)

// mangleVar returns the C++ spelling of a variable or parameter.
func mangleVar(name string) string {
	return varPrefix + escapeIdent(name)
}

// mangleFunc returns the C++ spelling of a function other than the entry
// point.
func mangleFunc(name string) string {
	return funcPrefix + escapeIdent(name)
}

// escapeIdent keeps ASCII letters and digits and writes every other rune,
// underscore included, as uXXXX or UXXXXXXXX. Inside the name an escape is
// introduced by an underscore; a leading escape is introduced by a 0, which
// no source identifier can start with. Distinct names always escape
// differently and the result never holds two adjacent underscores.
func escapeIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
			continue
		}
		if i == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('_')
		}
		if r <= 0xFFFF {
			fmt.Fprintf(&b, "u%04X", r)
		} else {
			fmt.Fprintf(&b, "U%08X", r)
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
