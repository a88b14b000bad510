package genpipe

import "strings"

// Template is a prompt template with {name} placeholders. The special
// {format_instructions} placeholder is filled from the target schema.
type Template struct {
	// ID identifies the template, e.g. "topic-planner".
	ID string

	// Text is the template body.
	Text string

	// Fields lists the placeholder names that must be supplied on render.
	Fields []string
}

// Render substitutes the given fields and the schema's format instructions
// into the template. A required field that is absent from the map yields a
// MissingFieldError. Rendering is deterministic: the same inputs always
// produce the same string. Substitution is a single pass over the template
// text, so a field value that itself contains placeholder syntax is inserted
// literally and never re-substituted.
func (t Template) Render(fields map[string]string, schema *Schema) (string, error) {
	for _, f := range t.Fields {
		if _, ok := fields[f]; !ok {
			return "", &MissingFieldError{Template: t.ID, Field: f}
		}
	}

	pairs := make([]string, 0, 2*len(fields)+2)
	for name, val := range fields {
		pairs = append(pairs, "{"+name+"}", val)
	}
	if schema != nil {
		pairs = append(pairs, "{format_instructions}", schema.Instructions())
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}
