// Package validation walks a parsed resume document against the expected
// schema and accumulates every structural discrepancy it finds.
package validation

import (
	"fmt"
	"strings"
)

// Segment is one step of a document path: either a mapping field name or a
// sequence index.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

// FieldSegment returns a path segment for a mapping field.
func FieldSegment(name string) Segment {
	return Segment{Field: name}
}

// IndexSegment returns a path segment for a sequence element.
func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return s.Field
}

// Path locates a node in the document, from the root down.
type Path []Segment

// String renders the path in the familiar dotted form, e.g.
// "experiences[0].titles[1].startdate".
func (p Path) String() string {
	var sb strings.Builder
	for _, seg := range p {
		if !seg.IsIndex && sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// Section returns the top-level field name the path falls under, or "" for
// an empty path (a discrepancy at the document root).
func (p Path) Section() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].Field
}

// Leaf returns the display name of the innermost addressed node: the last
// field name, with any trailing sequence indices attached, e.g. "company",
// "objective", or "experiences[2]" when the discrepancy is on the entry
// itself.
func (p Path) Leaf() string {
	last := -1
	for i, seg := range p {
		if !seg.IsIndex {
			last = i
		}
	}
	if last < 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p[last].Field)
	for _, seg := range p[last+1:] {
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// child returns a new path extended by one segment. The backing array is
// copied so sibling branches never share storage.
func (p Path) child(seg Segment) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = seg
	return next
}
