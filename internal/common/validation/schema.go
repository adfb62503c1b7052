// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"sort"
	"strings"

	"saas-benchmarks/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Messages flattens the errors into "field: message" strings.
func (r *ValidationResult) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Field+": "+e.Message)
	}
	return out
}

// Validator holds the compiled input schemas of a registry, keyed by task
// type. It is read-only after construction.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// CompileSchema compiles a JSON Schema held as a decoded map.
func CompileSchema(schema map[string]interface{}) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
}

// NewValidator compiles every non-empty input schema in reg. One bad schema
// fails the whole registry.
func NewValidator(reg *registry.ActivityRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(reg.Activities))}
	for _, a := range reg.Activities {
		if len(a.InputSchema) == 0 {
			continue
		}
		s, err := CompileSchema(a.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", a.TaskType, err)
		}
		v.schemas[a.TaskType] = s
	}
	return v, nil
}

// Has reports whether taskType has a compiled input schema.
func (v *Validator) Has(taskType string) bool {
	_, ok := v.schemas[taskType]
	return ok
}

// Validate checks document against the input schema of taskType. The
// document may be any value encoding/json can marshal.
func (v *Validator) Validate(taskType string, document interface{}) (*ValidationResult, error) {
	schema, ok := v.schemas[taskType]
	if !ok {
		return nil, fmt.Errorf("no input schema registered for %s", taskType)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	sort.Slice(out.Errors, func(i, j int) bool {
		if out.Errors[i].Field != out.Errors[j].Field {
			return out.Errors[i].Field < out.Errors[j].Field
		}
		return out.Errors[i].Code < out.Errors[j].Code
	})
	return out, nil
}
