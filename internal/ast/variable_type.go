package ast

// Type is the closed set of declared types. Every declaration spells its type
// with one of the type keywords; there is no inference.
type Type int

const (
	Integer Type = iota // Necchi
	Float               // Perozzi
	Char                // Mascetti
	Boolean             // Melandri
	String              // Sassaroli
)

var typeKeywords = [...]string{
	Integer: "Necchi",
	Float:   "Perozzi",
	Char:    "Mascetti",
	Boolean: "Melandri",
	String:  "Sassaroli",
}

var typeNames = [...]string{
	Integer: "Integer",
	Float:   "Float",
	Char:    "Char",
	Boolean: "Boolean",
	String:  "String",
}

// Keyword returns the source spelling of the type.
func (t Type) Keyword() string {
	if t < 0 || int(t) >= len(typeKeywords) {
		return "?"
	}
	return typeKeywords[t]
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(?)"
	}
	return typeNames[t]
}

// TypeFromKeyword maps a type keyword back to its Type.
func TypeFromKeyword(kw string) (Type, bool) {
	for t, k := range typeKeywords {
		if k == kw {
			return Type(t), true
		}
	}
	return 0, false
}

// TypeRef is a convenience for building optional return types.
func TypeRef(t Type) *Type {
	return &t
}
