// Package schema defines the expected shape of a resume document as a static
// tree of schema nodes, plus example snippets for each top-level section.
package schema

// Kind identifies a primitive scalar type a document value may have.
type Kind string

const (
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
	Bool   Kind = "bool"
)

// Node describes the expected shape of one position in the document tree.
// Exactly one of Scalar, Mapping, or Sequence implements it.
type Node interface {
	node()
}

// Scalar requires a value whose runtime type matches at least one of Kinds.
// Kinds is never empty.
type Scalar struct {
	Kinds []Kind
}

// Mapping requires a mapping containing every listed field. Fields are kept
// in declared order so validation output is deterministic. Extra fields in
// the document are ignored.
type Mapping struct {
	Fields []Field
}

// Field is one required entry of a Mapping.
type Field struct {
	Name   string
	Schema Node
}

// Sequence requires an ordered sequence. Every element is validated against
// Elem; a nil Elem accepts any sequence without per-element checks.
type Sequence struct {
	Elem Node
}

func (Scalar) node()   {}
func (Mapping) node()  {}
func (Sequence) node() {}

// Describe returns the short descriptor used in diagnostics for a node:
// the primary scalar kind, or the shape tag "mapping" or "sequence".
func Describe(n Node) string {
	switch s := n.(type) {
	case Scalar:
		return string(s.Kinds[0])
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	}
	return "unknown"
}
