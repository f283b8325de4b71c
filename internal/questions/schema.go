package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// recordSchema describes a single question record. Only the fields used
// for coverage checks are constrained; anything else passes through.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"category": map[string]any{
			"type":        "string",
			"description": "Topic the question belongs to",
		},
		"difficulty": map[string]any{
			"type":        "string",
			"description": "Difficulty level, normally EASY, MEDIUM or HARD",
		},
	},
	"required": []any{"category", "difficulty"},
}

const recordSchemaURL = "schema://question-record.json"

var (
	compileOnce    sync.Once
	compiledRecord *jsonschema.Schema
	compileErr     error
)

// compiledRecordSchema compiles recordSchema on first use.
func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledRecord, compileErr = compileSchema(recordSchemaURL, recordSchema)
	})
	return compiledRecord, compileErr
}

func compileSchema(url string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded JSON value, not Go maps with
	// typed slices, so round-trip through encoding/json.
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return sch, nil
}

// missingField reports the first absent required property named by a
// record validation error. Required properties are listed in schema order,
// so category wins over difficulty when both are absent.
func missingField(err error) (string, bool) {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return "", false
	}
	return findRequired(verr)
}

func findRequired(verr *jsonschema.ValidationError) (string, bool) {
	// Only the record itself, not nested values.
	if req, ok := verr.ErrorKind.(*kind.Required); ok && len(verr.InstanceLocation) == 0 && len(req.Missing) > 0 {
		return req.Missing[0], true
	}
	for _, cause := range verr.Causes {
		if field, ok := findRequired(cause); ok {
			return field, true
		}
	}
	return "", false
}
