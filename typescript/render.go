package typescript

import (
	"fmt"
	"sort"
	"strings"
)

// UnsupportedNestingError reports an attempt to render a single-slot
// container around a plural collection node, which has no direct TypeScript
// form without an intermediate named grouping.
type UnsupportedNestingError struct {
	Container string
	Elem      string
}

func (e *UnsupportedNestingError) Error() string {
	return fmt.Sprintf("cannot render %s of plural %s: introduce a named type for the element", e.Container, e.Elem)
}

// Render returns the TypeScript source text for the node itself. Named
// nodes render as their full declaration; everything else renders as a type
// expression. Dependencies of named nodes are not included; use
// RenderClosure for that.
func Render(n Node, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &renderer{cfg: cfg}
	switch t := n.(type) {
	case *Enum:
		return r.enumDecl(t), nil
	case *Interface:
		return r.interfaceDecl(t)
	default:
		return r.inline(n)
	}
}

// RenderClosure returns the TypeScript source text for the node plus every
// named declaration in its transitive dependency closure, each emitted
// exactly once with dependencies before dependents. Declarations are
// separated by blank lines.
func RenderClosure(n Node, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &renderer{cfg: cfg}

	var blocks []string
	visited := make(map[string]bool)

	var visit func(Node) error
	visit = func(m Node) error {
		if m == nil {
			return nil
		}
		switch t := m.(type) {
		case *Interface:
			if visited[t.Name] {
				return nil
			}
			visited[t.Name] = true
			for _, f := range t.Fields {
				if err := visit(f.Type); err != nil {
					return err
				}
			}
			if err := visit(t.Parent); err != nil {
				return err
			}
			decl, err := r.interfaceDecl(t)
			if err != nil {
				return err
			}
			blocks = append(blocks, decl)
		case *Enum:
			if visited[t.Name] {
				return nil
			}
			visited[t.Name] = true
			blocks = append(blocks, r.enumDecl(t))
		case *Array:
			return visit(t.Elem)
		case *Record:
			if err := visit(t.KeyType); err != nil {
				return err
			}
			return visit(t.ValueType)
		case *Tuple:
			return r.visitSorted(t.Members, visit)
		case *Union:
			return r.visitSorted(t.Members, visit)
		case *Intersection:
			return r.visitSorted(t.Members, visit)
		}
		return nil
	}

	if err := visit(n); err != nil {
		return "", err
	}

	// An unnamed root has no declaration of its own; append its expression
	// after the declarations it depends on.
	if _, ok := n.(Named); !ok {
		expr, err := r.inline(n)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, expr)
	}

	return strings.Join(blocks, "\n\n"), nil
}

type renderer struct {
	cfg *Config
}

// visitSorted traverses unordered member sets in render-text order so that
// closure output is reproducible across runs.
func (r *renderer) visitSorted(members []Node, visit func(Node) error) error {
	type entry struct {
		text string
		node Node
	}
	entries := make([]entry, 0, len(members))
	for _, m := range members {
		text, err := r.inline(m)
		if err != nil {
			return err
		}
		entries = append(entries, entry{text: text, node: m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].text < entries[j].text })
	for _, e := range entries {
		if err := visit(e.node); err != nil {
			return err
		}
	}
	return nil
}

// inline renders a node as a type expression. Named declarations render as
// their bare name.
func (r *renderer) inline(n Node) (string, error) {
	switch t := n.(type) {
	case *Primitive:
		return t.PrimitiveKind.Token(), nil
	case *Literal:
		return formatLiteral(t.Value), nil
	case *Reference:
		return t.Name, nil
	case *Enum:
		return t.Name, nil
	case *Interface:
		return t.Name, nil
	case *Array:
		if plural(t.Elem) {
			return "", &UnsupportedNestingError{Container: "Array", Elem: t.Elem.Kind().String()}
		}
		elem, err := r.inline(t.Elem)
		if err != nil {
			return "", err
		}
		return "Array<" + elem + ">", nil
	case *Tuple:
		texts, err := r.memberTexts(t.Members)
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(texts, ", ") + "]", nil
	case *Union:
		texts, err := r.memberTexts(t.Members)
		if err != nil {
			return "", err
		}
		return strings.Join(texts, " | "), nil
	case *Intersection:
		texts, err := r.memberTexts(t.Members)
		if err != nil {
			return "", err
		}
		return strings.Join(texts, " & "), nil
	case *Record:
		key, err := r.inline(t.KeyType)
		if err != nil {
			return "", err
		}
		value, err := r.inline(t.ValueType)
		if err != nil {
			return "", err
		}
		return "Record<" + key + ", " + value + ">", nil
	default:
		return "", fmt.Errorf("unsupported node kind: %s", n.Kind())
	}
}

// memberTexts renders set members and sorts them lexicographically by their
// rendered text for deterministic output.
func (r *renderer) memberTexts(members []Node) ([]string, error) {
	texts := make([]string, 0, len(members))
	for _, m := range members {
		text, err := r.inline(m)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts, nil
}

// plural reports whether the node is a collection with more than one member.
func plural(n Node) bool {
	switch t := n.(type) {
	case *Union:
		return t.Len() > 1
	case *Tuple:
		return t.Len() > 1
	case *Intersection:
		return t.Len() > 1
	}
	return false
}

// enumDecl renders a full enum declaration. Every member line ends with a
// comma; string values are single-quoted, integer values bare.
func (r *renderer) enumDecl(n *Enum) string {
	var b strings.Builder
	r.commentBlock(&b, n.CommentText(), "")
	if r.cfg.ExportInterfaces {
		b.WriteString("export ")
	}
	b.WriteString("enum ")
	b.WriteString(n.Name)
	b.WriteString(" {\n")
	indent := r.cfg.Indent()
	for _, m := range n.Members {
		b.WriteString(indent)
		b.WriteString(m.Name)
		b.WriteString(" = ")
		b.WriteString(formatEnumValue(m.Value))
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

// formatEnumValue formats an enum member value for output.
func formatEnumValue(value any) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// interfaceDecl renders a full interface declaration. An interface with a
// parent and zero own fields collapses to a type alias.
func (r *renderer) interfaceDecl(n *Interface) (string, error) {
	var b strings.Builder
	r.commentBlock(&b, n.CommentText(), "")

	parentName := ""
	if n.Parent != nil {
		name, err := r.inline(n.Parent)
		if err != nil {
			return "", err
		}
		parentName = name
	}

	if r.cfg.ExportInterfaces {
		b.WriteString("export ")
	}

	if parentName != "" && len(n.Fields) == 0 {
		b.WriteString("type ")
		b.WriteString(n.Name)
		b.WriteString(" = ")
		b.WriteString(parentName)
		b.WriteString(";")
		return b.String(), nil
	}

	b.WriteString("interface ")
	b.WriteString(n.Name)
	if parentName != "" {
		b.WriteString(" extends ")
		b.WriteString(parentName)
	}
	b.WriteString(" {\n")

	indent := r.cfg.Indent()
	for _, f := range n.Fields {
		r.commentBlock(&b, f.Type.CommentText(), indent)
		b.WriteString(indent)
		b.WriteString(f.Name)
		if f.Type.IsNotRequired() {
			b.WriteString("?")
		}
		b.WriteString(": ")
		text, err := r.inline(f.Type)
		if err != nil {
			return "", fmt.Errorf("field %s.%s: %w", n.Name, f.Name, err)
		}
		b.WriteString(text)
		b.WriteString(";\n")
	}

	b.WriteString("}")
	return b.String(), nil
}

// commentBlock writes the comment as indented `// ` lines wrapped to the
// configured line length.
func (r *renderer) commentBlock(b *strings.Builder, comment, indent string) {
	width := r.cfg.CommentLineLength - len(indent) - len("// ")
	for _, line := range splitComment(comment, width) {
		b.WriteString(indent)
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// splitComment splits a comment into lines of at most n runes. The caller
// accounts for the prefix: with an 80 column limit and a "// " prefix, n is
// 77. Wrapping happens on rune boundaries, never inside a UTF-8 sequence.
func splitComment(comment string, n int) []string {
	if comment == "" {
		return nil
	}
	if n < 1 {
		n = 1
	}
	var lines []string
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		for len(runes) > n {
			lines = append(lines, string(runes[:n]))
			runes = runes[n:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}
