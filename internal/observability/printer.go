// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-checker/internal/report"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCheckSummary outputs a per-section overview of the consolidated
// discrepancies. An empty slice means the resume passed and prints a single
// confirmation box.
func (p *Printer) PrintCheckSummary(sections []report.SectionReport) {
	if len(sections) == 0 {
		p.printBox("RESUME FORMAT CHECK", "No formatting issues found")
		return
	}

	var sb strings.Builder
	for _, rep := range sections {
		sb.WriteString(fmt.Sprintf("%s:\n", rep.Section))
		if len(rep.Entries) > 0 {
			sb.WriteString(fmt.Sprintf("  malformed entries: %d\n", len(rep.Entries)))
		}
		if len(rep.Missing) > 0 {
			count := min(len(rep.Missing), maxItemsToShow)
			sb.WriteString(fmt.Sprintf("  missing keys: %s", strings.Join(rep.Missing[:count], ", ")))
			if len(rep.Missing) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf(" ... and %d more", len(rep.Missing)-maxItemsToShow))
			}
			sb.WriteString("\n")
		}
		if len(rep.Incorrect) > 0 {
			count := min(len(rep.Incorrect), maxItemsToShow)
			for i := 0; i < count; i++ {
				m := rep.Incorrect[i]
				sb.WriteString(fmt.Sprintf("  • %s: got %s, want %s\n", m.Field, m.Actual, m.Expected))
			}
			if len(rep.Incorrect) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rep.Incorrect)-maxItemsToShow))
			}
		}
	}

	p.printBox("RESUME FORMAT CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
