package tsgen

import (
	"fmt"
	"strings"
)

// UnsupportedTypeError reports a descriptor whose shape matches none of the
// recognized container, primitive, enumeration, or struct-like forms.
type UnsupportedTypeError struct {
	// Descriptor identifies the offending descriptor.
	Descriptor string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.Descriptor)
}

// UnsupportedCompositionError reports a struct-like type with more than one
// qualifying composition ancestor. The target structural model permits only
// single-parent composition via `extends`.
type UnsupportedCompositionError struct {
	TypeName  string
	Ancestors []string
}

func (e *UnsupportedCompositionError) Error() string {
	return fmt.Sprintf("multiple inheritance unsupported: %s extends [%s]",
		e.TypeName, strings.Join(e.Ancestors, ", "))
}

// InvalidEnumValueError reports an enumeration member whose underlying
// value is neither a string nor an integer.
type InvalidEnumValueError struct {
	EnumName string
	Member   string
	Value    any
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid enum value: %s.%s = %v (%T); only string and integer values are supported",
		e.EnumName, e.Member, e.Value, e.Value)
}

// DuplicateNameError reports two structurally different named types sharing
// a name within one generation or accumulation session.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate type name: %s refers to structurally different types", e.Name)
}
