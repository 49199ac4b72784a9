// Package descriptor defines the source-side type descriptors consumed by the
// generator. A descriptor is a closed, tagged representation of a type to be
// converted: primitives, optionality markers, unions, sequences, tuples,
// keyed containers, literals, enumerations, and struct-like record types.
//
// Descriptors are plain data. They are constructed either by hand (via the
// constructor helpers in this package), from a manifest file, or by one of
// the adapters in the provider package. The generator never inspects anything
// beyond this closed set.
package descriptor

// Kind identifies the category of a descriptor.
type Kind int

const (
	// Named descriptors
	KindStruct Kind = iota // record type with named, ordered fields
	KindEnum               // enumeration of named constant members

	// Expression descriptors (appear nested in fields and containers)
	KindPrimitive
	KindNotRequired // single-argument "may be absent" marker
	KindUnion
	KindSequence // homogeneous ordered collection
	KindTuple    // fixed-arity positional collection
	KindDict     // keyed container with exactly two type arguments
	KindLiteral  // verbatim literal value(s)
	KindRef      // reference to a named type by name only
	KindWrapped  // transparent single-argument wrapper (e.g. ORM column types)
)

// String returns the string representation of the descriptor kind.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindPrimitive:
		return "Primitive"
	case KindNotRequired:
		return "NotRequired"
	case KindUnion:
		return "Union"
	case KindSequence:
		return "Sequence"
	case KindTuple:
		return "Tuple"
	case KindDict:
		return "Dict"
	case KindLiteral:
		return "Literal"
	case KindRef:
		return "Ref"
	case KindWrapped:
		return "Wrapped"
	default:
		return "Unknown"
	}
}

// Descriptor is the base interface for all source type descriptors.
type Descriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() Kind

	// String returns a short human-readable identity for error messages.
	String() string

	// Ensure only types in this package can implement Descriptor.
	sealed()
}
