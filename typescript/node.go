package typescript

// NodeKind identifies the category of a type node.
type NodeKind int

const (
	KindPrimitive NodeKind = iota
	KindLiteral
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindRecord
	KindReference
	KindEnum
	KindInterface
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindLiteral:
		return "Literal"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindUnion:
		return "Union"
	case KindIntersection:
		return "Intersection"
	case KindRecord:
		return "Record"
	case KindReference:
		return "Reference"
	case KindEnum:
		return "Enum"
	case KindInterface:
		return "Interface"
	default:
		return "Unknown"
	}
}

// Node is the base interface for all TypeScript type nodes.
//
// Every node carries a stable structural key (Key), a flag marking whether
// the value may be absent from a containing structure, and optional comment
// text. Two nodes are equal iff their keys are equal; the key is independent
// of rendering configuration and of member order in set-like nodes.
type Node interface {
	// Kind returns the node kind for type switching.
	Kind() NodeKind

	// Key returns the stable structural identity of the node. Named nodes
	// (interfaces, enums, references) are keyed by their name alone.
	Key() string

	// IsNotRequired reports whether the value may be absent from a
	// containing structure.
	IsNotRequired() bool

	// SetNotRequired sets the not-required flag.
	SetNotRequired(bool)

	// CommentText returns the attached comment, if any.
	CommentText() string

	// SetComment attaches human-readable comment text.
	SetComment(string)

	// Ensure only types in this package can implement Node.
	sealed()
}

// Named is a Node with a globally unique declaration name, eligible for
// cross-referencing and closure deduplication.
type Named interface {
	Node

	// TypeName returns the declaration name.
	TypeName() string
}

// nodeBase provides the shared flag and comment storage for all nodes.
type nodeBase struct {
	notRequired bool
	comment     string
}

func (b *nodeBase) IsNotRequired() bool    { return b.notRequired }
func (b *nodeBase) SetNotRequired(v bool)  { b.notRequired = v }
func (b *nodeBase) CommentText() string    { return b.comment }
func (b *nodeBase) SetComment(text string) { b.comment = text }
func (b *nodeBase) sealed()                {}

// Equal reports whether two nodes describe the same type tree.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

// dedup collapses structurally equal members, preserving first-seen order.
func dedup(members []Node) []Node {
	seen := make(map[string]bool, len(members))
	result := make([]Node, 0, len(members))
	for _, m := range members {
		k := m.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, m)
	}
	return result
}

// References returns every named declaration (interface or enum) in the
// transitive dependency closure of n, in first-visit order. Bare references
// contribute nothing: they carry a name but no structure to emit.
func References(n Node) []Named {
	var result []Named
	visited := make(map[string]bool)
	var visit func(Node)
	visit = func(m Node) {
		if m == nil {
			return
		}
		switch t := m.(type) {
		case *Interface:
			if visited[t.Name] {
				return
			}
			visited[t.Name] = true
			result = append(result, t)
			for _, f := range t.Fields {
				visit(f.Type)
			}
			visit(t.Parent)
		case *Enum:
			if visited[t.Name] {
				return
			}
			visited[t.Name] = true
			result = append(result, t)
		case *Array:
			visit(t.Elem)
		case *Tuple:
			for _, e := range t.Members {
				visit(e)
			}
		case *Union:
			for _, e := range t.Members {
				visit(e)
			}
		case *Intersection:
			for _, e := range t.Members {
				visit(e)
			}
		case *Record:
			visit(t.KeyType)
			visit(t.ValueType)
		}
	}
	visit(n)
	return result
}
