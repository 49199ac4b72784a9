package typescript

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is a leaf node for a verbatim literal type. Value must be a
// string or an integer; strings render double-quoted, integers render bare.
type Literal struct {
	nodeBase
	Value any
}

// Kind returns KindLiteral.
func (n *Literal) Kind() NodeKind { return KindLiteral }

// Key returns the structural identity of the literal.
func (n *Literal) Key() string { return "l:" + formatLiteral(n.Value) }

// NewLiteral returns a Literal node for the given value.
func NewLiteral(value any) *Literal { return &Literal{Value: value} }

func formatLiteral(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
}

// Array is a homogeneous collection with a single element node.
type Array struct {
	nodeBase
	Elem Node
}

// Kind returns KindArray.
func (n *Array) Kind() NodeKind { return KindArray }

// Key returns the structural identity of the array.
func (n *Array) Key() string { return "a:(" + n.Elem.Key() + ")" }

// NewArray returns an Array node of the given element type.
func NewArray(elem Node) *Array { return &Array{Elem: elem} }

// Tuple is a fixed-arity collection with set semantics: structurally equal
// members collapse at construction.
type Tuple struct {
	nodeBase
	Members []Node
}

// Kind returns KindTuple.
func (n *Tuple) Kind() NodeKind { return KindTuple }

// Key returns the structural identity of the tuple, independent of member
// order.
func (n *Tuple) Key() string { return "t:(" + sortedKeys(n.Members) + ")" }

// Len returns the number of members after deduplication.
func (n *Tuple) Len() int { return len(n.Members) }

// NewTuple returns a Tuple node of the given members with duplicates
// collapsed.
func NewTuple(members ...Node) *Tuple { return &Tuple{Members: dedup(members)} }

// Union is a set of member types. Nested unions are flattened and
// structurally equal members collapse at construction. A single-member
// union stays wrapped; it renders identically to its member.
type Union struct {
	nodeBase
	Members []Node
}

// Kind returns KindUnion.
func (n *Union) Kind() NodeKind { return KindUnion }

// Key returns the structural identity of the union, independent of member
// order.
func (n *Union) Key() string { return "u:(" + sortedKeys(n.Members) + ")" }

// Len returns the number of members after deduplication.
func (n *Union) Len() int { return len(n.Members) }

// NewUnion returns a Union node of the given members, with nested unions
// flattened and duplicates collapsed.
func NewUnion(members ...Node) *Union {
	flat := make([]Node, 0, len(members))
	for _, m := range members {
		if u, ok := m.(*Union); ok {
			flat = append(flat, u.Members...)
			continue
		}
		flat = append(flat, m)
	}
	return &Union{Members: dedup(flat)}
}

// Intersection is a set of member types joined by `&`.
type Intersection struct {
	nodeBase
	Members []Node
}

// Kind returns KindIntersection.
func (n *Intersection) Kind() NodeKind { return KindIntersection }

// Key returns the structural identity of the intersection.
func (n *Intersection) Key() string { return "x:(" + sortedKeys(n.Members) + ")" }

// Len returns the number of members after deduplication.
func (n *Intersection) Len() int { return len(n.Members) }

// NewIntersection returns an Intersection node of the given members with
// duplicates collapsed.
func NewIntersection(members ...Node) *Intersection {
	return &Intersection{Members: dedup(members)}
}

// Record is a keyed container with exactly two nodes: the key type and the
// value type.
type Record struct {
	nodeBase
	KeyType   Node
	ValueType Node
}

// Kind returns KindRecord.
func (n *Record) Kind() NodeKind { return KindRecord }

// Key returns the structural identity of the record.
func (n *Record) Key() string {
	return "r:(" + n.KeyType.Key() + "," + n.ValueType.Key() + ")"
}

// NewRecord returns a Record node with the given key and value types.
func NewRecord(key, value Node) *Record { return &Record{KeyType: key, ValueType: value} }

// Reference stands in for a named type already emitted or being emitted
// elsewhere. It carries a name and no structure, and breaks cycles during
// generation. It shares its identity with the declaration it names.
type Reference struct {
	nodeBase
	Name string
}

// Kind returns KindReference.
func (n *Reference) Kind() NodeKind { return KindReference }

// Key returns the name-based identity shared with the named declaration.
func (n *Reference) Key() string { return "named:" + n.Name }

// NewReference returns a Reference to the given type name.
func NewReference(name string) *Reference { return &Reference{Name: name} }

// sortedKeys joins member keys in sorted order so that set-like nodes hash
// and compare independently of construction order.
func sortedKeys(members []Node) string {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
