package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-checker/internal/schema"
	"github.com/jonathan/resume-checker/internal/validation"
)

func disc(expected, actual string, segs ...validation.Segment) validation.Discrepancy {
	return validation.Discrepancy{Path: validation.Path(segs), Expected: expected, Actual: actual}
}

func field(name string) validation.Segment { return validation.FieldSegment(name) }
func index(i int) validation.Segment       { return validation.IndexSegment(i) }

func TestConsolidate_GroupsBySectionInFirstEncounterOrder(t *testing.T) {
	discs := []validation.Discrepancy{
		disc("string", validation.Missing, field("objective")),
		disc("bool", "string", field("editing")),
		disc("string", validation.Missing, field("basic"), field("email")),
		disc("string", "int", field("basic"), field("phone")),
	}

	sections := Consolidate(discs)
	require.Len(t, sections, 3)
	assert.Equal(t, "objective", sections[0].Section)
	assert.Equal(t, "editing", sections[1].Section)
	assert.Equal(t, "basic", sections[2].Section)

	assert.Equal(t, []string{"objective"}, sections[0].Missing)
	assert.Empty(t, sections[0].Incorrect)

	require.Len(t, sections[1].Incorrect, 1)
	assert.Equal(t, Mismatch{Field: "editing", Actual: "string", Expected: "bool"}, sections[1].Incorrect[0])

	assert.Equal(t, []string{"email"}, sections[2].Missing)
	require.Len(t, sections[2].Incorrect, 1)
	assert.Equal(t, "phone", sections[2].Incorrect[0].Field)
}

func TestConsolidate_ExperiencesEntriesDeduplicated(t *testing.T) {
	// Two discrepancies in entry 0 and one in entry 2: the labels must come
	// out once each.
	discs := []validation.Discrepancy{
		disc("string", validation.Missing, field("experiences"), index(0), field("company")),
		disc("string", "int", field("experiences"), index(0), field("location")),
		disc("sequence", "string", field("experiences"), index(2), field("titles")),
	}

	sections := Consolidate(discs)
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"experiences[0]", "experiences[2]"}, sections[0].Entries)
	assert.Equal(t, []string{"company"}, sections[0].Missing)
	require.Len(t, sections[0].Incorrect, 2)
}

func TestConsolidate_EntryIndexFoundAtAnyDepth(t *testing.T) {
	// The numeric segment does not have to sit directly under the section.
	discs := []validation.Discrepancy{
		disc("int", "bool",
			field("experiences"), index(1), field("titles"), index(0), field("startdate")),
	}

	sections := Consolidate(discs)
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"experiences[1]"}, sections[0].Entries)
}

func TestConsolidate_EntriesOnlyForExperiences(t *testing.T) {
	discs := []validation.Discrepancy{
		disc("string", validation.Missing, field("education"), index(0), field("school")),
	}

	sections := Consolidate(discs)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Entries)
	assert.Equal(t, []string{"school"}, sections[0].Missing)
}

func TestConsolidate_TopLevelShapeMismatchOnSequenceSection(t *testing.T) {
	// The error sits on "experiences" itself, so there is no entry index.
	discs := []validation.Discrepancy{
		disc("sequence", "mapping", field("experiences")),
	}

	sections := Consolidate(discs)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Entries)
	require.Len(t, sections[0].Incorrect, 1)
	assert.Equal(t, Mismatch{Field: "experiences", Actual: "mapping", Expected: "sequence"}, sections[0].Incorrect[0])
}

func TestRender_MissingKeys(t *testing.T) {
	sections := []SectionReport{
		{Section: "basic", Missing: []string{"email", "phone"}},
	}

	msg := Render(sections, schema.ExampleFor)
	assert.Contains(t, msg, "You are missing these keys: 'email, phone' in the 'basic' section.")
	assert.Contains(t, msg, "```yaml\nbasic:")
	assert.Contains(t, msg, "johndoe@example.com")
}

func TestRender_IncorrectTypeParagraphPerMismatch(t *testing.T) {
	sections := []SectionReport{
		{Section: "basic", Incorrect: []Mismatch{
			{Field: "phone", Actual: "int", Expected: "string"},
			{Field: "name", Actual: "sequence", Expected: "string"},
		}},
	}

	msg := Render(sections, schema.ExampleFor)
	assert.Contains(t, msg, "The value for 'phone' in the 'basic' section is of type 'int'. Expected type: 'string'.")
	assert.Contains(t, msg, "The value for 'name' in the 'basic' section is of type 'sequence'. Expected type: 'string'.")
	// The example snippet is repeated for each mismatch.
	assert.Equal(t, 2, strings.Count(msg, "```yaml\nbasic:"))
}

func TestRender_ExperiencesEntriesParagraphFirst(t *testing.T) {
	sections := []SectionReport{
		{
			Section: "experiences",
			Entries: []string{"experiences[0]", "experiences[2]"},
			Missing: []string{"company"},
		},
	}

	msg := Render(sections, schema.ExampleFor)
	entriesAt := strings.Index(msg, "You have formatting errors in these experiences entries: 'experiences[0], experiences[2]'.")
	missingAt := strings.Index(msg, "You are missing these keys: 'company'")
	require.GreaterOrEqual(t, entriesAt, 0)
	require.GreaterOrEqual(t, missingAt, 0)
	assert.Less(t, entriesAt, missingAt)
	assert.Equal(t, 1, strings.Count(msg, "experiences[2]"))
}

func TestRender_SectionWithoutExampleSnippet(t *testing.T) {
	// "editing" has no declared example; the paragraph renders without a
	// snippet instead of failing.
	sections := []SectionReport{
		{Section: "editing", Incorrect: []Mismatch{
			{Field: "editing", Actual: "string", Expected: "bool"},
		}},
	}

	msg := Render(sections, schema.ExampleFor)
	assert.Contains(t, msg, "The value for 'editing' in the 'editing' section is of type 'string'. Expected type: 'bool'.")
	assert.NotContains(t, msg, "```yaml")
	assert.NotContains(t, msg, "like this example")
}

func TestRender_NilExampleFunc(t *testing.T) {
	sections := []SectionReport{
		{Section: "basic", Missing: []string{"email"}},
	}

	msg := Render(sections, nil)
	assert.Contains(t, msg, "You are missing these keys: 'email' in the 'basic' section.")
	assert.NotContains(t, msg, "```yaml")
}

func TestRender_EachParagraphPrefixedByNewline(t *testing.T) {
	sections := []SectionReport{
		{Section: "basic", Missing: []string{"email"}},
		{Section: "editing", Incorrect: []Mismatch{
			{Field: "editing", Actual: "string", Expected: "bool"},
		}},
	}

	msg := Render(sections, schema.ExampleFor)
	assert.True(t, strings.HasPrefix(msg, "\n"))
	assert.Contains(t, msg, "\nThe value for 'editing'")
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil, schema.ExampleFor))
}
