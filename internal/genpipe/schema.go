package genpipe

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "topic-list".
	Name string

	// Description is a human-readable summary of what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Instructions renders the format block embedded into every prompt that
// targets this schema. Models left unconstrained tend to echo the schema
// definition back instead of an instance of it, so the wording explicitly
// forbids that.
func (s *Schema) Instructions() string {
	def, err := json.Marshal(s.Definition)
	if err != nil {
		// Definitions are static maps of JSON-safe values; a marshal
		// failure here is a programming error.
		panic(fmt.Sprintf("schema %s: marshal definition: %v", s.Name, err))
	}

	return fmt.Sprintf(`Output rules:
- You must generate a single JSON object that is an INSTANCE of the schema below.
- Do NOT return the schema or its definitions.
- Do NOT include "$defs", "properties", "required", or any field descriptions.
- Populate every required field with an actual value.
- Return ONLY the final JSON object, with no surrounding text or markdown.

Here is the output schema:
`+"```json\n%s\n```", string(def))
}

// schemaCache caches compiled JSON schemas. Keyed by the descriptor pointer:
// descriptors are static package-level singletons, and a name collision
// between two distinct descriptors must not alias their compiled forms.
var schemaCache sync.Map // map[*Schema]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema, compiled)
	return compiled, nil
}
