package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validateResponse checks raw JSON against the given Schema. Returns
// nil when no schema is set or validation passes, *ErrInvalidResponse
// otherwise. The tool makes one model call per run, so schemas are
// compiled on demand without caching.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Not bare JSON: the model ignored structured output and
		// wrapped its answer in prose or a code fence. Pass the content
		// through so the response parser can extract the document.
		return nil
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// compileSchema turns the Definition map into a compiled schema. The
// compiler wants a value produced by json.Unmarshal, so the definition
// is round-tripped through JSON first.
func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	return c.Compile(url)
}
