package questions

import "fmt"

// ErrSourceNotFound indicates the dataset file does not exist.
type ErrSourceNotFound struct {
	Path string
	Err  error
}

func (e *ErrSourceNotFound) Error() string {
	return fmt.Sprintf("question dataset %q not found", e.Path)
}

func (e *ErrSourceNotFound) Unwrap() error { return e.Err }

// ErrMalformed indicates the dataset is not a JSON array of question objects.
type ErrMalformed struct {
	Path string
	Err  error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed question dataset %q: %v", e.Path, e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// ErrMissingField indicates a record lacks a required field.
type ErrMissingField struct {
	Index int
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Index, e.Field)
}
