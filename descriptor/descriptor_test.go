package descriptor

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{name: "primitive", d: Text(), want: "text"},
		{name: "sequence", d: NewSequence(Integer()), want: "Sequence[integer]"},
		{name: "union", d: NewUnion(Text(), None()), want: "Union[text, none]"},
		{name: "tuple", d: NewTuple(Text(), Integer()), want: "Tuple[text, integer]"},
		{name: "dict", d: NewDict(Text(), Integer()), want: "Dict[text, integer]"},
		{name: "dict omitted args", d: NewDict(nil, nil), want: "Dict[_, _]"},
		{name: "not required", d: MarkNotRequired(Text()), want: "NotRequired[text]"},
		{name: "literal", d: NewLiteral("a", 1), want: "Literal[a, 1]"},
		{name: "ref", d: NewRef("User"), want: "User"},
		{name: "wrapped", d: Wrap("Mapped", Text()), want: "Mapped[text]"},
		{name: "struct", d: NewStruct("User"), want: "User"},
		{name: "enum", d: NewEnum("Colors"), want: "Colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	u := Optional(Text())
	if len(u.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(u.Members))
	}
	p, ok := u.Members[1].(*Primitive)
	if !ok || p.PrimitiveKind != PrimitiveNone {
		t.Errorf("second member = %v, want none", u.Members[1])
	}
}

func TestExtend(t *testing.T) {
	base := NewStruct("Base")
	child := NewStruct("Child").Extend(base)
	if len(child.Bases) != 1 || child.Bases[0] != base {
		t.Errorf("Bases = %v", child.Bases)
	}
}
