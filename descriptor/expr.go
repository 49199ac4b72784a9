package descriptor

import (
	"fmt"
	"strings"
)

// NotRequired marks a single inner type as allowed to be absent from a
// containing structure. The generator resolves the inner type and flags the
// resulting node rather than producing a wrapper node.
type NotRequired struct {
	Elem Descriptor
}

// Kind returns KindNotRequired.
func (d *NotRequired) Kind() Kind { return KindNotRequired }

func (d *NotRequired) String() string { return "NotRequired[" + d.Elem.String() + "]" }

func (*NotRequired) sealed() {}

// MarkNotRequired wraps a descriptor in a NotRequired marker.
func MarkNotRequired(elem Descriptor) *NotRequired { return &NotRequired{Elem: elem} }

// Union represents a union of member types. Duplicate members collapse
// structurally during generation.
type Union struct {
	Members []Descriptor
}

// Kind returns KindUnion.
func (d *Union) Kind() Kind { return KindUnion }

func (d *Union) String() string {
	parts := make([]string, len(d.Members))
	for i, m := range d.Members {
		parts[i] = m.String()
	}
	return "Union[" + strings.Join(parts, ", ") + "]"
}

func (*Union) sealed() {}

// NewUnion returns a Union of the given members.
func NewUnion(members ...Descriptor) *Union { return &Union{Members: members} }

// Optional returns the nullable-union sugar Union[elem, None].
func Optional(elem Descriptor) *Union { return NewUnion(elem, None()) }

// Sequence represents a homogeneous ordered collection with exactly one
// element type.
type Sequence struct {
	Elem Descriptor
}

// Kind returns KindSequence.
func (d *Sequence) Kind() Kind { return KindSequence }

func (d *Sequence) String() string { return "Sequence[" + d.Elem.String() + "]" }

func (*Sequence) sealed() {}

// NewSequence returns a Sequence of the given element type.
func NewSequence(elem Descriptor) *Sequence { return &Sequence{Elem: elem} }

// Tuple represents a fixed-arity positional collection.
type Tuple struct {
	Elems []Descriptor
}

// Kind returns KindTuple.
func (d *Tuple) Kind() Kind { return KindTuple }

func (d *Tuple) String() string {
	parts := make([]string, len(d.Elems))
	for i, e := range d.Elems {
		parts[i] = e.String()
	}
	return "Tuple[" + strings.Join(parts, ", ") + "]"
}

func (*Tuple) sealed() {}

// NewTuple returns a Tuple of the given element types.
func NewTuple(elems ...Descriptor) *Tuple { return &Tuple{Elems: elems} }

// Dict represents a keyed container with a key and a value type argument.
// A nil Key or Value stands for an omitted argument; the generator pads
// omitted arguments with the open/top type.
type Dict struct {
	Key   Descriptor
	Value Descriptor
}

// Kind returns KindDict.
func (d *Dict) Kind() Kind { return KindDict }

func (d *Dict) String() string {
	k, v := "_", "_"
	if d.Key != nil {
		k = d.Key.String()
	}
	if d.Value != nil {
		v = d.Value.String()
	}
	return "Dict[" + k + ", " + v + "]"
}

func (*Dict) sealed() {}

// NewDict returns a Dict with the given key and value types.
func NewDict(key, value Descriptor) *Dict { return &Dict{Key: key, Value: value} }

// Literal represents one or more verbatim literal values. Values must be
// strings or integers.
type Literal struct {
	Values []any
}

// Kind returns KindLiteral.
func (d *Literal) Kind() Kind { return KindLiteral }

func (d *Literal) String() string {
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "Literal[" + strings.Join(parts, ", ") + "]"
}

func (*Literal) sealed() {}

// NewLiteral returns a Literal of the given values.
func NewLiteral(values ...any) *Literal { return &Literal{Values: values} }

// Ref represents a reference to a named type by name only. It is used when
// a descriptor graph needs to point at a type whose structure is declared
// elsewhere (or not at all).
type Ref struct {
	Name string
}

// Kind returns KindRef.
func (d *Ref) Kind() Kind { return KindRef }

func (d *Ref) String() string { return d.Name }

func (*Ref) sealed() {}

// NewRef returns a Ref to the given type name.
func NewRef(name string) *Ref { return &Ref{Name: name} }

// Wrapped represents a known single-argument wrapper around an inner type,
// such as an ORM column-mapping type. The generator unwraps wrappers whose
// Name is on its allowlist and recurses into Elem; unrecognized wrappers
// fail with an unsupported-type error.
type Wrapped struct {
	Name string
	Elem Descriptor
}

// Kind returns KindWrapped.
func (d *Wrapped) Kind() Kind { return KindWrapped }

func (d *Wrapped) String() string { return d.Name + "[" + d.Elem.String() + "]" }

func (*Wrapped) sealed() {}

// Wrap returns a Wrapped descriptor with the given wrapper name.
func Wrap(name string, elem Descriptor) *Wrapped { return &Wrapped{Name: name, Elem: elem} }
