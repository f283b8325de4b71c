package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// DefaultPath is the dataset location, relative to the working directory.
const DefaultPath = "questions.json"

// Load reads the dataset at path and returns its records in file order.
//
// The file is read in full and closed before parsing. A missing file yields
// *ErrSourceNotFound, unparseable content *ErrMalformed, and a record without
// category or difficulty *ErrMissingField.
func Load(path string) ([]Question, error) {
	data, err := readAll(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrSourceNotFound{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	qs, err := Parse(data)
	if err != nil {
		var missing *ErrMissingField
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &ErrMalformed{Path: path, Err: err}
	}
	return qs, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Parse decodes a JSON array of question records. The input must be valid
// UTF-8.
//
// Records are checked in order and the first problem is returned: missing
// fields as *ErrMissingField, anything else that violates the record schema
// as a plain error naming the record index.
func Parse(data []byte) ([]Question, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("invalid UTF-8 at byte %d", invalidUTF8Offset(data))
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array of questions, got %s", jsonKind(doc))
	}

	sch, err := compiledRecordSchema()
	if err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}

	qs := make([]Question, 0, len(records))
	for i, rec := range records {
		if err := sch.Validate(rec); err != nil {
			if field, ok := missingField(err); ok {
				return nil, &ErrMissingField{Index: i, Field: field}
			}
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		obj := rec.(map[string]any)
		qs = append(qs, Question{
			Category:   obj["category"].(string),
			Difficulty: Difficulty(obj["difficulty"].(string)),
		})
	}
	return qs, nil
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
