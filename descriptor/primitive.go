package descriptor

// PrimitiveKind identifies the category of a source primitive type.
type PrimitiveKind int

const (
	PrimitiveText    PrimitiveKind = iota
	PrimitiveInteger               // signed or unsigned integer
	PrimitiveFloat
	PrimitiveBoolean
	PrimitiveBytes     // byte sequence
	PrimitiveTimestamp // date/time value
	PrimitiveNone      // the absence type
	PrimitiveAny       // the open/top type
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveText:
		return "text"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveFloat:
		return "float"
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveBytes:
		return "bytes"
	case PrimitiveTimestamp:
		return "timestamp"
	case PrimitiveNone:
		return "none"
	case PrimitiveAny:
		return "any"
	default:
		return "unknown"
	}
}

// Primitive represents a built-in scalar source type.
type Primitive struct {
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (d *Primitive) Kind() Kind { return KindPrimitive }

// String returns the primitive's token for error messages.
func (d *Primitive) String() string { return d.PrimitiveKind.String() }

func (*Primitive) sealed() {}

// Convenience constructors for common primitives.

// Text returns a Primitive for the string type.
func Text() *Primitive { return &Primitive{PrimitiveKind: PrimitiveText} }

// Integer returns a Primitive for the integer type.
func Integer() *Primitive { return &Primitive{PrimitiveKind: PrimitiveInteger} }

// Float returns a Primitive for the floating point type.
func Float() *Primitive { return &Primitive{PrimitiveKind: PrimitiveFloat} }

// Boolean returns a Primitive for the boolean type.
func Boolean() *Primitive { return &Primitive{PrimitiveKind: PrimitiveBoolean} }

// Bytes returns a Primitive for a byte sequence.
func Bytes() *Primitive { return &Primitive{PrimitiveKind: PrimitiveBytes} }

// Timestamp returns a Primitive for a date/time value.
func Timestamp() *Primitive { return &Primitive{PrimitiveKind: PrimitiveTimestamp} }

// None returns a Primitive for the absence type.
func None() *Primitive { return &Primitive{PrimitiveKind: PrimitiveNone} }

// Any returns a Primitive for the open/top type.
func Any() *Primitive { return &Primitive{PrimitiveKind: PrimitiveAny} }
