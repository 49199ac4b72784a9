package typescript

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderEnum(t *testing.T) {
	tests := []struct {
		name string
		enum *Enum
		cfg  *Config
		want string
	}{
		{
			name: "int values",
			enum: NewEnum("Colors",
				EnumMember{Name: "Green", Value: 1},
				EnumMember{Name: "Red", Value: 2},
			),
			want: "export enum Colors {\n\tGreen = 1,\n\tRed = 2,\n}",
		},
		{
			name: "string values single quoted",
			enum: NewEnum("Colors",
				EnumMember{Name: "Green", Value: "green"},
				EnumMember{Name: "Red", Value: "red"},
			),
			want: "export enum Colors {\n\tGreen = 'green',\n\tRed = 'red',\n}",
		},
		{
			name: "no export",
			enum: NewEnum("Status", EnumMember{Name: "Ok", Value: 0}),
			cfg: DefaultConfig().With(Override{
				ExportInterfaces: boolPtr(false),
			}),
			want: "enum Status {\n\tOk = 0,\n}",
		},
		{
			name: "space indentation",
			enum: NewEnum("Status", EnumMember{Name: "Ok", Value: 0}),
			cfg: DefaultConfig().With(Override{
				IndentWithTabs: boolPtr(false),
				IndentSize:     intPtr(2),
			}),
			want: "export enum Status {\n  Ok = 0,\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.enum, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderInterface(t *testing.T) {
	tests := []struct {
		name  string
		iface *Interface
		cfg   *Config
		want  string
	}{
		{
			name: "single field",
			iface: NewInterface("StringDict",
				Field{Name: "s", Type: NewPrimitive(String)},
			),
			want: "export interface StringDict {\n\ts: string;\n}",
		},
		{
			name: "not required field",
			iface: NewInterface("StringDict",
				Field{Name: "s", Type: notRequired(NewPrimitive(String))},
			),
			want: "export interface StringDict {\n\ts?: string;\n}",
		},
		{
			name:  "empty interface",
			iface: NewInterface("Empty"),
			want:  "export interface Empty {\n}",
		},
		{
			name: "extends parent with own fields",
			iface: &Interface{
				Name:   "Child",
				Fields: []Field{{Name: "b", Type: NewPrimitive(Number)}},
				Parent: NewReference("Parent"),
			},
			want: "export interface Child extends Parent {\n\tb: number;\n}",
		},
		{
			name: "parent without own fields collapses to alias",
			iface: &Interface{
				Name:   "Child",
				Parent: NewReference("Parent"),
			},
			want: "export type Child = Parent;",
		},
		{
			name: "reference field renders bare name",
			iface: NewInterface("Outer",
				Field{Name: "inner", Type: NewReference("Inner")},
			),
			want: "export interface Outer {\n\tinner: Inner;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.iface, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderExpressions(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "string primitive",
			node: NewPrimitive(String),
			want: "string",
		},
		{
			name: "string literal double quoted",
			node: NewLiteral("foo"),
			want: `"foo"`,
		},
		{
			name: "int literal bare",
			node: NewLiteral(42),
			want: "42",
		},
		{
			name: "array",
			node: NewArray(NewPrimitive(Number)),
			want: "Array<number>",
		},
		{
			name: "array of single member union",
			node: NewArray(NewUnion(NewPrimitive(String))),
			want: "Array<string>",
		},
		{
			name: "union sorted lexicographically",
			node: NewUnion(NewLiteral("foo"), NewLiteral("bar")),
			want: `"bar" | "foo"`,
		},
		{
			name: "nullable union",
			node: NewUnion(NewReference("InnerDict"), NewPrimitive(Null)),
			want: "InnerDict | null",
		},
		{
			name: "union deduplicates",
			node: NewUnion(NewPrimitive(String), NewPrimitive(String), NewPrimitive(Number)),
			want: "number | string",
		},
		{
			name: "tuple sorted",
			node: NewTuple(NewPrimitive(String), NewPrimitive(Number)),
			want: "[number, string]",
		},
		{
			name: "intersection",
			node: NewIntersection(NewReference("A"), NewReference("B")),
			want: "A & B",
		},
		{
			name: "record",
			node: NewRecord(NewPrimitive(String), NewPrimitive(Number)),
			want: "Record<string, number>",
		},
		{
			name: "record of unknown",
			node: NewRecord(NewPrimitive(Unknown), NewPrimitive(Unknown)),
			want: "Record<unknown, unknown>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.node, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderArrayOfPluralFails(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{
			name: "array of multi member union",
			node: NewArray(NewUnion(NewPrimitive(String), NewPrimitive(Number))),
		},
		{
			name: "array of multi member tuple",
			node: NewArray(NewTuple(NewPrimitive(String), NewPrimitive(Number))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.node, nil)
			var nestErr *UnsupportedNestingError
			if !errors.As(err, &nestErr) {
				t.Fatalf("expected UnsupportedNestingError, got %v", err)
			}
		})
	}
}

func TestRenderComments(t *testing.T) {
	iface := NewInterface("User",
		Field{Name: "id", Type: NewPrimitive(Number)},
	)
	iface.SetComment("A registered user.")
	iface.Fields[0].Type.SetComment("Stable numeric identifier.")

	got, err := Render(iface, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "// A registered user.\n" +
		"export interface User {\n" +
		"\t// Stable numeric identifier.\n" +
		"\tid: number;\n" +
		"}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCommentWrapping(t *testing.T) {
	cfg := DefaultConfig().With(Override{CommentLineLength: intPtr(20)})
	e := NewEnum("E", EnumMember{Name: "A", Value: 0})
	e.SetComment("aaaaaaaaaaaaaaaaaaaaaaaaa")

	got, err := Render(e, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "// ") && len(line) > 20 {
			t.Errorf("comment line exceeds configured length: %q", line)
		}
	}
	if strings.Count(got, "// ") < 2 {
		t.Errorf("expected wrapped comment across multiple lines:\n%s", got)
	}
}

func TestRenderCommentMultibyteWrapping(t *testing.T) {
	cfg := DefaultConfig().With(Override{CommentLineLength: intPtr(10)})
	e := NewEnum("E", EnumMember{Name: "A", Value: 0})
	e.SetComment(strings.Repeat("ü", 30))

	got, err := Render(e, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("output is not valid UTF-8:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.ContainsRune(line, utf8.RuneError) {
			t.Errorf("wrapped line contains a broken rune: %q", line)
		}
	}
}

func TestRenderClosure(t *testing.T) {
	inner := NewInterface("Inner",
		Field{Name: "x", Type: NewPrimitive(Number)},
	)
	outer := NewInterface("Outer",
		Field{Name: "inner", Type: inner},
	)

	got, err := RenderClosure(outer, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	innerDecl := "export interface Inner {\n\tx: number;\n}"
	outerDecl := "export interface Outer {\n\tinner: Inner;\n}"
	want := innerDecl + "\n\n" + outerDecl
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClosureUnnamedRoot(t *testing.T) {
	inner := NewInterface("Inner",
		Field{Name: "x", Type: NewPrimitive(Number)},
	)
	root := NewUnion(inner, NewPrimitive(Null))

	got, err := RenderClosure(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "export interface Inner {\n\tx: number;\n}\n\nInner | null"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClosureSharedDependencyOnce(t *testing.T) {
	shared := NewInterface("Shared",
		Field{Name: "x", Type: NewPrimitive(Number)},
	)
	left := NewInterface("Left", Field{Name: "s", Type: shared})
	right := NewInterface("Right", Field{Name: "s", Type: shared})
	root := NewInterface("Root",
		Field{Name: "l", Type: left},
		Field{Name: "r", Type: right},
	)

	got, err := RenderClosure(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := strings.Count(got, "interface Shared"); n != 1 {
		t.Errorf("Shared declared %d times, want 1:\n%s", n, got)
	}
	if strings.Index(got, "interface Shared") > strings.Index(got, "interface Left") {
		t.Errorf("Shared must be declared before Left:\n%s", got)
	}
	if strings.Index(got, "interface Left") > strings.Index(got, "interface Root") {
		t.Errorf("Left must be declared before Root:\n%s", got)
	}
}

func TestRenderClosureRecursiveInterface(t *testing.T) {
	node := NewInterface("TreeNode",
		Field{Name: "value", Type: NewPrimitive(Number)},
	)
	node.Fields = append(node.Fields, Field{
		Name: "children",
		Type: NewArray(NewReference("TreeNode")),
	})

	got, err := RenderClosure(node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "export interface TreeNode {\n" +
		"\tvalue: number;\n" +
		"\tchildren: Array<TreeNode>;\n" +
		"}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func notRequired(n Node) Node {
	n.SetNotRequired(true)
	return n
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }
