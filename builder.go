package tsgen

import (
	"strings"

	"github.com/semohr/tsgen/descriptor"
	"github.com/semohr/tsgen/typescript"
)

// Builder accumulates named type declarations across several root
// descriptors and renders them once each, dependencies included.
//
// Entries are keyed by name: adding the same type twice, or two roots
// sharing a dependency, produces a single declaration. Adding a
// structurally different type under an existing name is an error.
type Builder struct {
	config   *typescript.Config
	gen      *Generator
	order    []string
	elements map[string]typescript.Named
	warnings []descriptor.Warning
}

// NewBuilder returns a Builder with the given configuration. Nil means
// defaults.
func NewBuilder(cfg *typescript.Config) *Builder {
	return &Builder{
		config:   cfg,
		gen:      NewGenerator(cfg),
		elements: make(map[string]typescript.Named),
	}
}

// Add converts the descriptor and records its named declarations: the root
// first, then its transitive dependencies, skipping names already present.
// The exclude names are removed from the root declaration's fields (for an
// interface) or members (for an enum) before it is recorded; sibling fields
// and the type's name are untouched.
func (b *Builder) Add(d descriptor.Descriptor, exclude ...string) error {
	node, err := b.gen.Generate(d)
	if err != nil {
		return err
	}
	b.warnings = append(b.warnings, b.gen.Warnings...)

	if len(exclude) > 0 {
		excludeFields(node, exclude)
	}

	for _, named := range typescript.References(node) {
		if existing, ok := b.elements[named.TypeName()]; ok {
			if typescript.Fingerprint(existing) != typescript.Fingerprint(named) {
				return &DuplicateNameError{Name: named.TypeName()}
			}
			continue
		}
		b.elements[named.TypeName()] = named
		b.order = append(b.order, named.TypeName())
	}
	return nil
}

// Len returns the number of accumulated named declarations.
func (b *Builder) Len() int { return len(b.elements) }

// Warnings returns the non-fatal issues collected across all Add calls.
func (b *Builder) Warnings() []descriptor.Warning { return b.warnings }

// ToText renders every accumulated declaration in insertion order, each
// followed by a blank line.
func (b *Builder) ToText() (string, error) {
	var sb strings.Builder
	for _, name := range b.order {
		decl, err := typescript.Render(b.elements[name], b.config)
		if err != nil {
			return "", err
		}
		sb.WriteString(decl)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// excludeFields removes the named fields or members from a named root node.
func excludeFields(node typescript.Node, exclude []string) {
	drop := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		drop[name] = true
	}
	switch t := node.(type) {
	case *typescript.Interface:
		kept := t.Fields[:0]
		for _, f := range t.Fields {
			if !drop[f.Name] {
				kept = append(kept, f)
			}
		}
		t.Fields = kept
	case *typescript.Enum:
		kept := t.Members[:0]
		for _, m := range t.Members {
			if !drop[m.Name] {
				kept = append(kept, m)
			}
		}
		t.Members = kept
	}
}
