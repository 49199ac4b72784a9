package typescript

// PrimitiveKind identifies a TypeScript primitive type token.
type PrimitiveKind int

const (
	String PrimitiveKind = iota
	Number
	Boolean
	Null
	Undefined
	Unknown
	Any
	Never
	Void
	Blob // binary blob
	Date // date/time value
)

// Token returns the TypeScript source token for the primitive kind.
func (k PrimitiveKind) Token() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Undefined:
		return "undefined"
	case Unknown:
		return "unknown"
	case Any:
		return "any"
	case Never:
		return "never"
	case Void:
		return "void"
	case Blob:
		return "Blob"
	case Date:
		return "Date"
	default:
		return "unknown"
	}
}

// Primitive is a leaf node for a built-in TypeScript type.
type Primitive struct {
	nodeBase
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (n *Primitive) Kind() NodeKind { return KindPrimitive }

// Key returns the structural identity of the primitive.
func (n *Primitive) Key() string { return "p:" + n.PrimitiveKind.Token() }

// NewPrimitive returns a Primitive node of the given kind.
func NewPrimitive(kind PrimitiveKind) *Primitive {
	return &Primitive{PrimitiveKind: kind}
}
