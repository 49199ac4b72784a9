// Package typescript defines the TypeScript type tree produced by the
// generator and its rendering into declaration text.
package typescript

import "strings"

// Config holds the rendering and mapping options. A Config value is
// immutable once handed to a generator or renderer; per-call overrides are
// applied with With, which returns a fresh value.
type Config struct {
	// CommentLineLength is the maximum length of a rendered comment line,
	// including the comment prefix.
	CommentLineLength int

	// NoneAsNull renders the absence type as `null`. When false it renders
	// as `undefined`.
	NoneAsNull bool

	// ExportInterfaces adds the `export` keyword to generated interface and
	// enum declarations.
	ExportInterfaces bool

	// AnyAsUnknown maps the open/top type to `unknown`. When false it maps
	// to `any`.
	AnyAsUnknown bool

	// IndentWithTabs indents declaration bodies with a single tab.
	IndentWithTabs bool

	// IndentSize is the number of spaces per indent level. Only used when
	// IndentWithTabs is false.
	IndentSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CommentLineLength: 80,
		NoneAsNull:        true,
		ExportInterfaces:  true,
		AnyAsUnknown:      true,
		IndentWithTabs:    true,
		IndentSize:        4,
	}
}

// Override holds partial configuration overrides. Nil fields keep the value
// they are merged over. The yaml tags allow an Override to be loaded from a
// config file.
type Override struct {
	CommentLineLength *int  `yaml:"comment_line_length,omitempty"`
	NoneAsNull        *bool `yaml:"none_as_null,omitempty"`
	ExportInterfaces  *bool `yaml:"export_interfaces,omitempty"`
	AnyAsUnknown      *bool `yaml:"any_as_unknown,omitempty"`
	IndentWithTabs    *bool `yaml:"indent_with_tabs,omitempty"`
	IndentSize        *int  `yaml:"indent_size,omitempty"`
}

// With returns a copy of c with the non-nil fields of o applied.
func (c *Config) With(o Override) *Config {
	result := *c
	if o.CommentLineLength != nil {
		result.CommentLineLength = *o.CommentLineLength
	}
	if o.NoneAsNull != nil {
		result.NoneAsNull = *o.NoneAsNull
	}
	if o.ExportInterfaces != nil {
		result.ExportInterfaces = *o.ExportInterfaces
	}
	if o.AnyAsUnknown != nil {
		result.AnyAsUnknown = *o.AnyAsUnknown
	}
	if o.IndentWithTabs != nil {
		result.IndentWithTabs = *o.IndentWithTabs
	}
	if o.IndentSize != nil {
		result.IndentSize = *o.IndentSize
	}
	return &result
}

// Indent returns one level of indentation per the configuration.
func (c *Config) Indent() string {
	if c.IndentWithTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.IndentSize)
}
