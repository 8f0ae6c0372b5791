package report

import (
	"fmt"
	"strings"
)

// ExampleFunc looks up the example snippet for a top-level section. A false
// return means no example is defined and the paragraph is rendered without
// one.
type ExampleFunc func(section string) (string, bool)

// Render turns consolidated section reports into one multi-paragraph
// message. Sections appear in the given order; within a section the malformed
// experiences entries come first, then the missing fields, then one paragraph
// per type mismatch. Each paragraph repeats the section's example snippet so
// the user always has a correct reference in view. An empty input renders an
// empty message.
func Render(sections []SectionReport, exampleFor ExampleFunc) string {
	var sb strings.Builder
	for _, rep := range sections {
		example := ""
		if exampleFor != nil {
			example, _ = exampleFor(rep.Section)
		}

		if len(rep.Entries) > 0 {
			sb.WriteString(fmt.Sprintf(
				"\nYou have formatting errors in these experiences entries: '%s'.",
				strings.Join(rep.Entries, ", ")))
			writeExample(&sb, example, "Make sure they are formatted like this example:")
		}
		if len(rep.Missing) > 0 {
			sb.WriteString(fmt.Sprintf(
				"\nYou are missing these keys: '%s' in the '%s' section.",
				strings.Join(rep.Missing, ", "), rep.Section))
			writeExample(&sb, example, "Make sure it is formatted like this example:")
		}
		for _, m := range rep.Incorrect {
			sb.WriteString(fmt.Sprintf(
				"\nThe value for '%s' in the '%s' section is of type '%s'. Expected type: '%s'.",
				m.Field, rep.Section, m.Actual, m.Expected))
			writeExample(&sb, example, "Make sure it is formatted like this example:")
		}
	}
	return sb.String()
}

func writeExample(sb *strings.Builder, example, lead string) {
	if example == "" {
		return
	}
	sb.WriteString(fmt.Sprintf(" %s\n\n```yaml\n%s\n```", lead, example))
}
