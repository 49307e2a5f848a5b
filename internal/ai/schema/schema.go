// Package schema checks model answers against the JSON shape each capability expects.
package schema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Kind names one expected answer shape.
type Kind string

const (
	Analysis       Kind = "analysis"
	Matches        Kind = "matches"
	MatchesWrapper Kind = "matches_wrapper"
	Email          Kind = "email"
)

//go:embed *.schema.json
var files embed.FS

var compiled = mustCompile(Analysis, Matches, MatchesWrapper, Email)

// FieldError is a single violation at a document path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s response does not match schema:", ve.Kind)
	for _, err := range ve.Errors {
		fmt.Fprintf(&sb, " %s: %s;", err.Field, err.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validate checks a decoded JSON document against the schema of kind.
func Validate(kind Kind, doc any) error {
	s, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("unknown schema %q", kind)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s response: %w", kind, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

func mustCompile(kinds ...Kind) map[Kind]*gojsonschema.Schema {
	out := make(map[Kind]*gojsonschema.Schema, len(kinds))
	for _, kind := range kinds {
		data, err := files.ReadFile(string(kind) + ".schema.json")
		if err != nil {
			panic(fmt.Sprintf("read %s schema: %v", kind, err))
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			panic(fmt.Sprintf("compile %s schema: %v", kind, err))
		}
		out[kind] = s
	}
	return out
}
