package descriptor

// Enum represents an enumeration type with a globally unique name and an
// ordered mapping of member name to underlying value. Member values must be
// strings or integers; the generator rejects anything else.
type Enum struct {
	Name    string
	Members []EnumMember

	// Comment is optional human-readable text attached to the declaration.
	Comment string
}

// Kind returns KindEnum.
func (d *Enum) Kind() Kind { return KindEnum }

func (d *Enum) String() string { return d.Name }

func (*Enum) sealed() {}

// EnumMember is a single named enumeration member.
type EnumMember struct {
	Name  string
	Value any
}

// NewEnum returns an Enum with the given name and members.
func NewEnum(name string, members ...EnumMember) *Enum {
	return &Enum{Name: name, Members: members}
}

// Struct represents a record type with a globally unique name, declared-only
// fields in declaration order, and an ancestor chain.
//
// Fields holds only the fields declared directly on the type. Inherited
// fields belong to the ancestors in Bases; listing them here as well would
// duplicate them in the generated output.
//
// Bases holds the qualifying composition ancestors. Universal base types
// (the implicit root object type, abstract markers, structural container
// tags) must be excluded by whoever builds the descriptor. The generator
// supports at most one qualifying ancestor.
//
// Struct descriptors may form cycles: a field's type may point back at the
// same *Struct value. The generator's in-flight set breaks such cycles by
// emitting a name reference on re-encounter.
type Struct struct {
	Name   string
	Fields []Field
	Bases  []*Struct

	// Comment is optional human-readable text attached to the declaration.
	Comment string
}

// Kind returns KindStruct.
func (d *Struct) Kind() Kind { return KindStruct }

func (d *Struct) String() string { return d.Name }

func (*Struct) sealed() {}

// Field is a single named field of a Struct.
type Field struct {
	Name string
	Type Descriptor

	// Comment is optional human-readable text attached to the field.
	Comment string
}

// NewStruct returns a Struct with the given name and fields and no ancestor.
func NewStruct(name string, fields ...Field) *Struct {
	return &Struct{Name: name, Fields: fields}
}

// Extend returns d with base appended to its ancestor chain.
func (d *Struct) Extend(base *Struct) *Struct {
	d.Bases = append(d.Bases, base)
	return d
}
