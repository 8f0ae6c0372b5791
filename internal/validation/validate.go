package validation

import (
	"fmt"

	"github.com/jonathan/resume-checker/internal/schema"
)

// Missing is the actual-type sentinel recorded when a required field is
// absent from the document.
const Missing = "missing"

// Discrepancy records one structural or type mismatch found during
// validation. Expected is a primitive kind name or the shape tag "mapping"
// or "sequence"; Actual is the runtime type found, or Missing.
type Discrepancy struct {
	Path     Path
	Expected string
	Actual   string
}

// Validate compares a parsed document against the schema and returns every
// discrepancy in traversal order. It is a pure function: structural problems
// become Discrepancy records, never errors, and the walk always covers the
// full document so one run reports everything at once. An empty result means
// the document conforms.
func Validate(doc any, node schema.Node) []Discrepancy {
	return walk(doc, node, nil)
}

func walk(doc any, node schema.Node, path Path) []Discrepancy {
	switch n := node.(type) {
	case schema.Mapping:
		m, ok := asMapping(doc)
		if !ok {
			return []Discrepancy{{Path: path, Expected: "mapping", Actual: TypeName(doc)}}
		}
		var discs []Discrepancy
		for _, field := range n.Fields {
			childPath := path.child(FieldSegment(field.Name))
			value, present := m[field.Name]
			if !present {
				discs = append(discs, Discrepancy{
					Path:     childPath,
					Expected: schema.Describe(field.Schema),
					Actual:   Missing,
				})
				continue
			}
			discs = append(discs, walk(value, field.Schema, childPath)...)
		}
		return discs

	case schema.Sequence:
		seq, ok := doc.([]any)
		if !ok {
			return []Discrepancy{{Path: path, Expected: "sequence", Actual: TypeName(doc)}}
		}
		if n.Elem == nil {
			return nil
		}
		var discs []Discrepancy
		for i, elem := range seq {
			discs = append(discs, walk(elem, n.Elem, path.child(IndexSegment(i)))...)
		}
		return discs

	case schema.Scalar:
		for _, kind := range n.Kinds {
			if kindMatches(kind, doc) {
				return nil
			}
		}
		return []Discrepancy{{Path: path, Expected: string(n.Kinds[0]), Actual: TypeName(doc)}}
	}
	return nil
}

// asMapping normalizes the mapping shapes a YAML parser may produce.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}

func kindMatches(kind schema.Kind, v any) bool {
	switch kind {
	case schema.String:
		_, ok := v.(string)
		return ok
	case schema.Bool:
		_, ok := v.(bool)
		return ok
	case schema.Int:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
	case schema.Float:
		switch v.(type) {
		case float32, float64:
			return true
		}
	}
	return false
}

// TypeName reports the runtime type of a document value using the same
// vocabulary the schema uses for expectations.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case map[string]any, map[any]any:
		return "mapping"
	case []any:
		return "sequence"
	}
	return fmt.Sprintf("%T", v)
}
