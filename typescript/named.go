package typescript

// Enum is a named enumeration declaration with an ordered list of members.
type Enum struct {
	nodeBase
	Name    string
	Members []EnumMember
}

// EnumMember is a single enumeration member. Value is either a string
// (rendered single-quoted) or an integer (rendered bare).
type EnumMember struct {
	Name  string
	Value any
}

// Kind returns KindEnum.
func (n *Enum) Kind() NodeKind { return KindEnum }

// Key returns the name-based identity of the enum.
func (n *Enum) Key() string { return "named:" + n.Name }

// TypeName returns the declaration name.
func (n *Enum) TypeName() string { return n.Name }

// NewEnum returns an Enum node with the given name and members.
func NewEnum(name string, members ...EnumMember) *Enum {
	return &Enum{Name: name, Members: members}
}

// Interface is a named struct-like declaration with ordered fields and an
// optional single parent (an *Interface or a *Reference).
type Interface struct {
	nodeBase
	Name   string
	Fields []Field

	// Parent is the single composition ancestor, or nil. An interface with
	// zero own fields and a parent renders as a type alias to the parent.
	Parent Node
}

// Field is a single named interface field. Field order mirrors the
// declaration order of the originating type.
type Field struct {
	Name string
	Type Node
}

// Kind returns KindInterface.
func (n *Interface) Kind() NodeKind { return KindInterface }

// Key returns the name-based identity of the interface.
func (n *Interface) Key() string { return "named:" + n.Name }

// TypeName returns the declaration name.
func (n *Interface) TypeName() string { return n.Name }

// NewInterface returns an Interface node with the given name and fields.
func NewInterface(name string, fields ...Field) *Interface {
	return &Interface{Name: name, Fields: fields}
}

// Fingerprint returns a structural signature of a named declaration: the
// identity key extended with the declaration's own shape. It is used to
// detect two structurally different declarations illegally sharing a name
// within one generation or accumulation session.
func Fingerprint(n Named) string {
	switch t := n.(type) {
	case *Interface:
		s := "interface:" + t.Name + "{"
		for _, f := range t.Fields {
			s += f.Name + ":" + f.Type.Key() + ";"
		}
		s += "}"
		if t.Parent != nil {
			s += "^" + t.Parent.Key()
		}
		return s
	case *Enum:
		s := "enum:" + t.Name + "{"
		for _, m := range t.Members {
			s += m.Name + "=" + formatLiteral(m.Value) + ";"
		}
		return s + "}"
	default:
		return n.Key()
	}
}
