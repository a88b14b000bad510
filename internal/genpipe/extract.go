package genpipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripToJSON removes markdown code fences and any prose surrounding the
// outermost JSON object. Models wrap their output in ```json blocks or add
// commentary despite instructions; the payload inside is left untouched.
func StripToJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			s = s[i : j+1]
		}
	}
	return s
}

// Extract parses raw model output into a value of type T conforming to the
// given schema. The text is parsed strictly (after fence stripping), checked
// against the JSON schema, then run through the optional validate func for
// cross-field checks a schema cannot express. There is no repair and no
// retry: malformed output surfaces as an ExtractionError and the caller
// decides what to do.
func Extract[T any](raw string, schema *Schema, validate func(*T) error) (T, error) {
	var out T
	s := StripToJSON(raw)

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return out, &ExtractionError{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if schema != nil {
		compiled, err := compiledSchema(schema)
		if err != nil {
			return out, &ExtractionError{Raw: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
		}
		if err := compiled.Validate(parsed); err != nil {
			return out, &ExtractionError{Raw: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
		}
	}

	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return out, &ExtractionError{Raw: raw, Err: fmt.Errorf("decode into target type: %w", err)}
	}

	if validate != nil {
		if err := validate(&out); err != nil {
			var zero T
			return zero, &ExtractionError{Raw: raw, Err: err}
		}
	}

	return out, nil
}
