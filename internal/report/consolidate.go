// Package report consolidates raw validation discrepancies by resume section
// and renders them into one actionable, example-annotated message.
package report

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-checker/internal/validation"
)

// experiences entries get called out individually so the user can find the
// exact list item that is malformed.
const entriesSection = "experiences"

// Mismatch is one wrongly typed field within a section.
type Mismatch struct {
	Field    string
	Actual   string
	Expected string
}

// SectionReport collects every problem found under one top-level section.
type SectionReport struct {
	Section   string
	Missing   []string   // absent required fields, in traversal order
	Incorrect []Mismatch // type mismatches, in traversal order
	Entries   []string   // distinct "experiences[i]" labels, sorted
}

// Consolidate groups discrepancies by their top-level section, keeping
// sections in first-encounter order, and partitions each group into missing
// fields and type mismatches. For the experiences section it also records
// which entries were touched, deduplicated across however many discrepancies
// each entry produced.
func Consolidate(discs []validation.Discrepancy) []SectionReport {
	var order []string
	bySection := make(map[string]*SectionReport)
	entrySets := make(map[string]map[int]struct{})

	for _, d := range discs {
		section := d.Path.Section()
		rep, ok := bySection[section]
		if !ok {
			rep = &SectionReport{Section: section}
			bySection[section] = rep
			order = append(order, section)
		}

		if section == entriesSection {
			if index, ok := entryIndex(d.Path); ok {
				set := entrySets[section]
				if set == nil {
					set = make(map[int]struct{})
					entrySets[section] = set
				}
				set[index] = struct{}{}
			}
		}

		if d.Actual == validation.Missing {
			rep.Missing = append(rep.Missing, d.Path.Leaf())
		} else {
			rep.Incorrect = append(rep.Incorrect, Mismatch{
				Field:    d.Path.Leaf(),
				Actual:   d.Actual,
				Expected: d.Expected,
			})
		}
	}

	reports := make([]SectionReport, 0, len(order))
	for _, section := range order {
		rep := *bySection[section]
		if set := entrySets[section]; len(set) > 0 {
			indices := make([]int, 0, len(set))
			for index := range set {
				indices = append(indices, index)
			}
			sort.Ints(indices)
			rep.Entries = make([]string, 0, len(indices))
			for _, index := range indices {
				rep.Entries = append(rep.Entries, fmt.Sprintf("%s[%d]", section, index))
			}
		}
		reports = append(reports, rep)
	}
	return reports
}

// entryIndex finds the repeated-entry index for a discrepancy path: the first
// numeric segment below the section, at whatever depth it appears.
func entryIndex(path validation.Path) (int, bool) {
	for _, seg := range path[1:] {
		if seg.IsIndex {
			return seg.Index, true
		}
	}
	return 0, false
}
