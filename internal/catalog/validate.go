package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidCatalog is returned when catalog data fails schema validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed default.json
var defaultData []byte

const schemaURL = "schema://quizgrid/catalog.json"

// schemaDefinition describes the on-disk catalog format. Category and
// question order in the arrays is display order.
var schemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "pattern": `\S`},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"value":    map[string]any{"type": "integer", "exclusiveMinimum": 0},
								"question": map[string]any{"type": "string", "pattern": `\S`},
								"answer":   map[string]any{"type": "string", "pattern": `\S`},
							},
							"required":             []any{"value", "question", "answer"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"name", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"categories"},
	"additionalProperties": false,
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants plain decoded JSON values, not Go literals.
	defBytes, err := json.Marshal(schemaDefinition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return sch, nil
})

// parse validates raw catalog JSON against the schema and decodes it.
func parse(raw []byte) (*Catalog, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidCatalog, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var file struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidCatalog, err)
	}
	return New(file.Categories...), nil
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return parse(defaultData)
}

// MustDefault returns the built-in catalog and panics if it is malformed.
// A broken embedded catalog is a build defect, not a runtime condition.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
