// Package tsgen converts source type descriptors into TypeScript type
// declarations. The entry points are Generate, which resolves a single
// descriptor into a type node, and Builder, which accumulates several named
// types and renders them together with their dependencies.
package tsgen

import (
	"fmt"

	"github.com/semohr/tsgen/descriptor"
	"github.com/semohr/tsgen/typescript"
)

// DefaultWrappers lists the wrapper names unwrapped transparently by
// default. These cover the common ORM column-mapping shapes.
var DefaultWrappers = []string{"Mapped", "Column"}

// Generator converts descriptors into TypeScript type nodes.
//
// A Generator is not safe for concurrent use; the in-flight recursion guard
// and the warning list are reset at the start of every Generate call.
// Independent goroutines should use independent Generator values (or the
// package-level Generate function, which creates one per call).
type Generator struct {
	// Config holds the mapping and rendering options. Nil means defaults.
	Config *typescript.Config

	// Wrappers lists the single-argument wrapper names treated as
	// transparent. Nil means DefaultWrappers.
	Wrappers []string

	// Warnings collects non-fatal issues from the most recent Generate
	// call.
	Warnings []descriptor.Warning

	// inflight tracks struct names currently being expanded, so that
	// self-referential and mutually-referential types resolve to a
	// reference instead of recursing forever.
	inflight map[string]bool

	// fingerprints tracks named-node structure per name within one call,
	// so a name collision between different types surfaces as an error.
	fingerprints map[string]string
}

// NewGenerator returns a Generator with the given configuration. Nil means
// defaults.
func NewGenerator(cfg *typescript.Config) *Generator {
	return &Generator{Config: cfg}
}

// Generate converts a descriptor with the given configuration overrides
// applied over the defaults.
func Generate(d descriptor.Descriptor, cfg *typescript.Config) (typescript.Node, error) {
	return NewGenerator(cfg).Generate(d)
}

// Generate converts a single descriptor into a TypeScript type node. Call
// state (recursion guard, warnings) is reset on entry, so stale state from
// an aborted earlier call cannot leak into this one.
func (g *Generator) Generate(d descriptor.Descriptor) (typescript.Node, error) {
	g.inflight = make(map[string]bool)
	g.fingerprints = make(map[string]string)
	g.Warnings = nil
	return g.resolve(d)
}

func (g *Generator) cfg() *typescript.Config {
	if g.Config == nil {
		return typescript.DefaultConfig()
	}
	return g.Config
}

func (g *Generator) wrappers() []string {
	if g.Wrappers == nil {
		return DefaultWrappers
	}
	return g.Wrappers
}

func (g *Generator) warn(code, message, typeName string) {
	g.Warnings = append(g.Warnings, descriptor.Warning{
		Code:     code,
		Message:  message,
		TypeName: typeName,
	})
}

// resolve is the recursive descent over the descriptor's shape. Dispatch
// order matters: wrappers and markers are peeled before containers, and
// primitives are tried last so that named forms win.
func (g *Generator) resolve(d descriptor.Descriptor) (typescript.Node, error) {
	switch t := d.(type) {
	case *descriptor.Wrapped:
		for _, name := range g.wrappers() {
			if t.Name == name {
				return g.resolve(t.Elem)
			}
		}
		return nil, &UnsupportedTypeError{Descriptor: t.String()}

	case *descriptor.NotRequired:
		inner, err := g.resolve(t.Elem)
		if err != nil {
			return nil, err
		}
		inner.SetNotRequired(true)
		return inner, nil

	case *descriptor.Union:
		members := make([]typescript.Node, 0, len(t.Members))
		for _, m := range t.Members {
			node, err := g.resolve(m)
			if err != nil {
				return nil, err
			}
			members = append(members, node)
		}
		return typescript.NewUnion(members...), nil

	case *descriptor.Sequence:
		elem, err := g.resolve(t.Elem)
		if err != nil {
			return nil, err
		}
		return typescript.NewArray(elem), nil

	case *descriptor.Tuple:
		elems := make([]typescript.Node, 0, len(t.Elems))
		for _, e := range t.Elems {
			node, err := g.resolve(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, node)
		}
		return typescript.NewTuple(elems...), nil

	case *descriptor.Literal:
		if len(t.Values) == 1 {
			return typescript.NewLiteral(t.Values[0]), nil
		}
		members := make([]typescript.Node, 0, len(t.Values))
		for _, v := range t.Values {
			members = append(members, typescript.NewLiteral(v))
		}
		return typescript.NewUnion(members...), nil

	case *descriptor.Dict:
		key, err := g.resolveOrAny(t.Key)
		if err != nil {
			return nil, err
		}
		value, err := g.resolveOrAny(t.Value)
		if err != nil {
			return nil, err
		}
		return typescript.NewRecord(key, value), nil

	case *descriptor.Enum:
		return g.resolveEnum(t)

	case *descriptor.Struct:
		return g.resolveStruct(t)

	case *descriptor.Ref:
		return typescript.NewReference(t.Name), nil

	case *descriptor.Primitive:
		kind, ok := MapPrimitive(t.PrimitiveKind, g.cfg())
		if !ok {
			return nil, &UnsupportedTypeError{Descriptor: t.String()}
		}
		return typescript.NewPrimitive(kind), nil

	default:
		return nil, &UnsupportedTypeError{Descriptor: d.String()}
	}
}

// resolveOrAny resolves a possibly omitted container type argument, padding
// a nil argument with the open/top type.
func (g *Generator) resolveOrAny(d descriptor.Descriptor) (typescript.Node, error) {
	if d == nil {
		d = descriptor.Any()
	}
	return g.resolve(d)
}

func (g *Generator) resolveEnum(t *descriptor.Enum) (typescript.Node, error) {
	members := make([]typescript.EnumMember, 0, len(t.Members))
	for _, m := range t.Members {
		switch m.Value.(type) {
		case string, int, int64:
		default:
			return nil, &InvalidEnumValueError{EnumName: t.Name, Member: m.Name, Value: m.Value}
		}
		members = append(members, typescript.EnumMember{Name: m.Name, Value: m.Value})
	}
	node := typescript.NewEnum(t.Name, members...)
	if t.Comment != "" {
		node.SetComment(t.Comment)
	}
	if err := g.registerNamed(node); err != nil {
		return nil, err
	}
	return node, nil
}

// resolveStruct converts a struct-like descriptor into an interface node.
// A name already in flight short-circuits to a reference, which both breaks
// recursion and deduplicates diamond-shared ancestors.
func (g *Generator) resolveStruct(t *descriptor.Struct) (typescript.Node, error) {
	if g.inflight[t.Name] {
		return typescript.NewReference(t.Name), nil
	}
	g.inflight[t.Name] = true
	defer delete(g.inflight, t.Name)

	if len(t.Fields) == 0 && len(t.Bases) == 0 {
		g.warn("NO_FIELDS", fmt.Sprintf("type %s has no fields; emitting an empty interface", t.Name), t.Name)
	}

	fields := make([]typescript.Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		node, err := g.resolve(f.Type)
		if err != nil {
			return nil, err
		}
		if f.Comment != "" {
			node.SetComment(f.Comment)
		}
		fields = append(fields, typescript.Field{Name: f.Name, Type: node})
	}

	iface := typescript.NewInterface(t.Name, fields...)
	if t.Comment != "" {
		iface.SetComment(t.Comment)
	}

	parent, err := g.resolveParent(t)
	if err != nil {
		return nil, err
	}
	iface.Parent = parent

	if err := g.registerNamed(iface); err != nil {
		return nil, err
	}
	return iface, nil
}

// resolveParent applies the single-parent composition rules: zero
// qualifying ancestors mean no parent, a single ancestor with zero own
// fields is dropped, and more than one ancestor is an error.
func (g *Generator) resolveParent(t *descriptor.Struct) (typescript.Node, error) {
	if len(t.Bases) == 0 {
		return nil, nil
	}
	if len(t.Bases) > 1 {
		names := make([]string, len(t.Bases))
		for i, b := range t.Bases {
			names[i] = b.Name
		}
		return nil, &UnsupportedCompositionError{TypeName: t.Name, Ancestors: names}
	}

	parent, err := g.resolveStruct(t.Bases[0])
	if err != nil {
		return nil, err
	}
	if iface, ok := parent.(*typescript.Interface); ok && len(iface.Fields) == 0 {
		return nil, nil
	}
	return parent, nil
}

// registerNamed records a named node's structural fingerprint and rejects a
// second, structurally different declaration under the same name.
func (g *Generator) registerNamed(n typescript.Named) error {
	fp := typescript.Fingerprint(n)
	if prev, ok := g.fingerprints[n.TypeName()]; ok && prev != fp {
		return &DuplicateNameError{Name: n.TypeName()}
	}
	g.fingerprints[n.TypeName()] = fp
	return nil
}
