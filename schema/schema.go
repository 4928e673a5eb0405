// Package schema validates parsed front-matter mappings against an explicit
// field policy. The policy is plain data passed by the caller, so different
// content types can carry different schemas without package-level state.
package schema

import (
	"sort"
	"strings"

	"github.com/goliatone/go-posts/frontmatter"
)

// FieldType names the shape a schema expects for a key.
type FieldType string

const (
	TypeScalar   FieldType = "scalar"
	TypeSequence FieldType = "sequence"
	TypeMapping  FieldType = "mapping"
	TypeBoolean  FieldType = "boolean"
)

// Schema describes required keys and per-key shape expectations. Keys absent
// from both lists are accepted untouched for forward compatibility.
type Schema struct {
	// Required lists keys that must be present in the mapping.
	Required []string
	// Types maps keys to the shape they must have when present.
	Types map[string]FieldType
}

// Default returns the stock blog-post policy: layout and title are required,
// comments must be boolean, tags and categories must be sequences. This is a
// policy default, not a contract; callers can substitute any Schema.
func Default() Schema {
	return Schema{
		Required: []string{"layout", "title"},
		Types: map[string]FieldType{
			"comments":   TypeBoolean,
			"tags":       TypeSequence,
			"categories": TypeSequence,
		},
	}
}

// Validate checks meta against the schema and returns every violation as a
// ValidationErrors value, or nil when the mapping conforms. Violations are
// collected, never short-circuited, so a caller sees the full picture in one
// pass.
func (s Schema) Validate(meta *frontmatter.Mapping) error {
	var violations ValidationErrors

	for _, field := range s.Required {
		if !meta.Has(field) {
			violations = append(violations, &MissingRequiredFieldError{Field: field})
		}
	}

	for _, field := range sortedTypeFields(s.Types) {
		value, ok := meta.Get(field)
		if !ok {
			continue
		}
		if err := checkType(field, s.Types[field], value); err != nil {
			violations = append(violations, err)
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// sortedTypeFields keeps violation order stable across runs.
func sortedTypeFields(types map[string]FieldType) []string {
	fields := make([]string, 0, len(types))
	for field := range types {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func checkType(field string, expected FieldType, value frontmatter.Value) error {
	actual := typeOf(value)

	switch expected {
	case TypeBoolean:
		if value.Kind() == frontmatter.KindScalar {
			if _, ok := ParseBool(value.Scalar()); ok {
				return nil
			}
		}
		return &TypeMismatchError{Field: field, Expected: TypeBoolean, Actual: actual}
	case TypeScalar, TypeSequence, TypeMapping:
		if actual == expected {
			return nil
		}
		return &TypeMismatchError{Field: field, Expected: expected, Actual: actual}
	default:
		return &TypeMismatchError{Field: field, Expected: expected, Actual: actual}
	}
}

func typeOf(value frontmatter.Value) FieldType {
	switch value.Kind() {
	case frontmatter.KindSequence:
		return TypeSequence
	case frontmatter.KindMapping:
		return TypeMapping
	default:
		return TypeScalar
	}
}

// ParseBool recognises the literal boolean scalars accepted in metadata.
func ParseBool(value string) (parsed bool, ok bool) {
	switch strings.TrimSpace(value) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
