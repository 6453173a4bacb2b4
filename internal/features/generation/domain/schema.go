package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ObjectSchema is the provider-facing description of a structured output.
type ObjectSchema struct {
	Name       string
	Definition *jsonschema.Definition
}

const defsPrefix = "#/$defs/"

// Resolve follows a "#/$defs/..." reference to its definition in the root
// schema. Nodes that are not references are returned unchanged.
func (s ObjectSchema) Resolve(def *jsonschema.Definition) *jsonschema.Definition {
	if def == nil || def.Ref == "" || s.Definition == nil {
		return def
	}
	target, ok := s.Definition.Defs[strings.TrimPrefix(def.Ref, defsPrefix)]
	if !ok {
		return def
	}
	return &target
}

// Schema describes the structured output T. The JSON schema is derived from
// T's json, description and enum tags; validate tags add bounds the JSON
// schema cannot express.
type Schema[T any] struct {
	ObjectSchema
}

// NewSchema derives the schema for T.
func NewSchema[T any](name string) (Schema[T], error) {
	var zero T
	def, err := jsonschema.GenerateSchemaForType(zero)
	if err != nil {
		return Schema[T]{}, fmt.Errorf("derive schema %s: %w", name, err)
	}
	return Schema[T]{ObjectSchema{Name: name, Definition: def}}, nil
}

// MustSchema is NewSchema for package-level declarations.
func MustSchema[T any](name string) Schema[T] {
	s, err := NewSchema[T](name)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses raw model output into T. It fails when a declared field is
// missing, has the wrong type, or violates a bound.
func (s Schema[T]) Decode(raw string) (T, error) {
	var out T
	if err := s.Definition.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, err
	}
	if err := validate.Struct(&out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
