// Package parsererror defines the typed errors surfaced by the parsing
// and conversion pipeline.
package parsererror

import "fmt"

// ParseError represents a fatal error while parsing the source XML.
// Malformed markup and invalid text encoding abort the whole conversion;
// there is no partial output.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not look like a
// CAMT.053 statement at all.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
