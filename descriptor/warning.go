package descriptor

// Warning represents a non-fatal issue encountered while building
// descriptors or generating output.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}
