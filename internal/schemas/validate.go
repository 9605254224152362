// Package schemas provides JSON Schema validation for the structured records
// the extraction boundary produces. Validating the LLM output here catches
// schema drift at parse time instead of via silent zero-value fallbacks.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by Validate.
const (
	JobDescription = "job_description"
	ResumeProfile  = "resume_profile"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("schema %s validation failed: %s", e.Schema, strings.Join(msgs, "; "))
}

// Validate checks a JSON document against the named embedded schema.
// Returns nil when the document conforms, a *ValidationError when it does
// not, and a plain error when the schema itself cannot be loaded.
func Validate(name string, document []byte) error {
	data, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return fmt.Errorf("schema %q not found: %w", name, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(data)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error for %q: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
