// Package checker wires the schema, validator, and reporter into the single
// resume format check the CLI runs.
package checker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-checker/internal/loader"
	"github.com/jonathan/resume-checker/internal/report"
	"github.com/jonathan/resume-checker/internal/schema"
	"github.com/jonathan/resume-checker/internal/validation"
)

// Result holds everything one check produced. Valid means the document
// conforms; when it does not, Sections and Message carry the consolidated
// diagnostics that were sent to the sink.
type Result struct {
	RunID         string
	Valid         bool
	Discrepancies []validation.Discrepancy
	Sections      []report.SectionReport
	Message       string
}

// Checker validates resume documents against the expected format.
type Checker struct {
	schema     schema.Node
	exampleFor report.ExampleFunc
	sink       report.Sink
}

// New creates a Checker using the standard resume schema and example
// snippets. The sink receives the rendered report whenever a check fails.
func New(sink report.Sink) *Checker {
	return &Checker{
		schema:     schema.Resume(),
		exampleFor: schema.ExampleFor,
		sink:       sink,
	}
}

// Check validates an already parsed document. On failure the rendered report
// is emitted through the sink exactly once, tagged with the result's run ID.
func (c *Checker) Check(doc any) *Result {
	res := &Result{RunID: uuid.NewString()}

	res.Discrepancies = validation.Validate(doc, c.schema)
	if len(res.Discrepancies) == 0 {
		res.Valid = true
		return res
	}

	res.Sections = report.Consolidate(res.Discrepancies)
	res.Message = report.Render(res.Sections, c.exampleFor)
	c.sink.ReportError(res.RunID, res.Message)
	return res
}

// CheckFile loads a YAML resume from disk and checks it. A file that cannot
// be read or parsed is an error; a file that parses but does not conform is
// a non-valid Result.
func (c *Checker) CheckFile(path string) (*Result, error) {
	doc, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return c.Check(doc), nil
}
