// Package manifest loads declarative type manifests for the command line
// tool. A manifest is a YAML or JSON document listing named struct and enum
// types; it is validated structurally and then lowered into descriptors for
// the generator.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is the root of a type manifest.
type File struct {
	Types []Type `yaml:"types" json:"types" validate:"required,min=1,dive"`
}

// Type declares one named type.
type Type struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Kind    string `yaml:"kind" json:"kind" validate:"required,oneof=struct enum"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`

	// Extends names the single composition ancestor of a struct type.
	Extends string `yaml:"extends,omitempty" json:"extends,omitempty"`

	// Fields are the declared struct fields, in declaration order.
	Fields []Field `yaml:"fields,omitempty" json:"fields,omitempty" validate:"dive"`

	// Members are the enum members, in declaration order.
	Members []Member `yaml:"members,omitempty" json:"members,omitempty" validate:"dive"`
}

// Field declares one struct field. Type is a type expression: a string
// names a primitive token or another declared type; a single-key mapping
// builds a container (seq, tuple, union, dict, literal, optional,
// not_required).
type Field struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Type    any    `yaml:"type" json:"type" validate:"required"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`

	// Required defaults to true; setting it to false marks the field as
	// allowed to be absent.
	Required *bool `yaml:"required,omitempty" json:"required,omitempty"`
}

// Member declares one enum member.
type Member struct {
	Name  string `yaml:"name" json:"name" validate:"required"`
	Value any    `yaml:"value" json:"value" validate:"required"`
}

// Load reads, decodes, and validates a manifest file. The decoder is
// chosen by extension: .json uses JSON, everything else YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return Parse(data, format)
}

// Parse decodes and validates manifest content. Format is "yaml" or
// "json".
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid JSON manifest: %w", err)
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid YAML manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

var validate = validator.New()

// Validate checks the manifest's structural constraints and the
// cross-references between declared types.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			messages := make([]string, 0, len(valErrs))
			for _, ve := range valErrs {
				messages = append(messages, ve.Field()+": "+formatValidationError(ve))
			}
			return fmt.Errorf("invalid manifest: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("invalid manifest: %w", err)
	}

	declared := make(map[string]string, len(f.Types))
	for _, t := range f.Types {
		if prev, ok := declared[t.Name]; ok {
			return fmt.Errorf("invalid manifest: type %s declared twice (%s and %s)", t.Name, prev, t.Kind)
		}
		declared[t.Name] = t.Kind

		switch t.Kind {
		case "struct":
			if len(t.Members) > 0 {
				return fmt.Errorf("invalid manifest: struct %s must not declare members", t.Name)
			}
		case "enum":
			if len(t.Fields) > 0 || t.Extends != "" {
				return fmt.Errorf("invalid manifest: enum %s must not declare fields or extends", t.Name)
			}
			if len(t.Members) == 0 {
				return fmt.Errorf("invalid manifest: enum %s has no members", t.Name)
			}
		}
	}

	for _, t := range f.Types {
		if t.Extends == "" {
			continue
		}
		kind, ok := declared[t.Extends]
		if !ok {
			return fmt.Errorf("invalid manifest: %s extends undeclared type %s", t.Name, t.Extends)
		}
		if kind != "struct" {
			return fmt.Errorf("invalid manifest: %s extends %s, which is not a struct", t.Name, t.Extends)
		}
	}
	return nil
}

// formatValidationError converts a validator.FieldError into a
// human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
