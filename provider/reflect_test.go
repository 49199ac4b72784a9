package provider

import (
	"reflect"
	"testing"
	"time"

	"github.com/semohr/tsgen/descriptor"
)

func TestDescribeScalars(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want descriptor.PrimitiveKind
	}{
		{name: "string", v: "", want: descriptor.PrimitiveText},
		{name: "int", v: 0, want: descriptor.PrimitiveInteger},
		{name: "uint16", v: uint16(0), want: descriptor.PrimitiveInteger},
		{name: "float64", v: 0.0, want: descriptor.PrimitiveFloat},
		{name: "bool", v: false, want: descriptor.PrimitiveBoolean},
		{name: "bytes", v: []byte(nil), want: descriptor.PrimitiveBytes},
		{name: "time", v: time.Time{}, want: descriptor.PrimitiveTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, err := FromValue(tt.v)
			if err != nil {
				t.Fatalf("FromValue: %v", err)
			}
			p, ok := d.(*descriptor.Primitive)
			if !ok {
				t.Fatalf("expected primitive, got %T", d)
			}
			if p.PrimitiveKind != tt.want {
				t.Errorf("kind = %v, want %v", p.PrimitiveKind, tt.want)
			}
		})
	}
}

func TestDescribeContainers(t *testing.T) {
	t.Run("slice", func(t *testing.T) {
		d, _, err := FromValue([]string(nil))
		if err != nil {
			t.Fatalf("FromValue: %v", err)
		}
		if _, ok := d.(*descriptor.Sequence); !ok {
			t.Fatalf("expected sequence, got %T", d)
		}
	})

	t.Run("array becomes tuple", func(t *testing.T) {
		d, _, err := FromValue([3]int{})
		if err != nil {
			t.Fatalf("FromValue: %v", err)
		}
		tup, ok := d.(*descriptor.Tuple)
		if !ok {
			t.Fatalf("expected tuple, got %T", d)
		}
		if len(tup.Elems) != 3 {
			t.Errorf("tuple arity = %d, want 3", len(tup.Elems))
		}
	})

	t.Run("map becomes dict", func(t *testing.T) {
		d, _, err := FromValue(map[string]int(nil))
		if err != nil {
			t.Fatalf("FromValue: %v", err)
		}
		dict, ok := d.(*descriptor.Dict)
		if !ok {
			t.Fatalf("expected dict, got %T", d)
		}
		if dict.Key.Kind() != descriptor.KindPrimitive {
			t.Errorf("dict key kind = %v", dict.Key.Kind())
		}
	})

	t.Run("pointer becomes nullable union", func(t *testing.T) {
		d, _, err := FromValue((*string)(nil))
		if err != nil {
			t.Fatalf("FromValue: %v", err)
		}
		u, ok := d.(*descriptor.Union)
		if !ok {
			t.Fatalf("expected union, got %T", d)
		}
		if len(u.Members) != 2 {
			t.Errorf("union arity = %d, want 2", len(u.Members))
		}
	})

	t.Run("empty interface becomes any", func(t *testing.T) {
		d, err := NewReflectAdapter().Describe(reflect.TypeOf((*any)(nil)).Elem())
		if err != nil {
			t.Fatalf("Describe: %v", err)
		}
		p, ok := d.(*descriptor.Primitive)
		if !ok || p.PrimitiveKind != descriptor.PrimitiveAny {
			t.Errorf("expected any primitive, got %v", d)
		}
	})

	t.Run("channel is rejected", func(t *testing.T) {
		_, _, err := FromValue(make(chan int))
		if err == nil {
			t.Fatal("expected error for channel type")
		}
	})
}

func TestDescribeStruct(t *testing.T) {
	type Address struct {
		City string `json:"city"`
	}
	type User struct {
		ID        int       `json:"id"`
		Name      string    `json:"name"`
		Nick      string    `json:"nick,omitempty"`
		Secret    string    `json:"-"`
		Address   *Address  `json:"address"`
		CreatedAt time.Time `json:"created_at"`
		internal  int
	}

	d, warnings, err := FromValue(User{})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	s, ok := d.(*descriptor.Struct)
	if !ok {
		t.Fatalf("expected struct, got %T", d)
	}
	if s.Name != "User" {
		t.Errorf("Name = %q, want User", s.Name)
	}

	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	want := []string{"id", "name", "nick", "address", "created_at"}
	if len(names) != len(want) {
		t.Fatalf("fields = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("fields = %v, want %v", names, want)
		}
	}

	if _, ok := s.Fields[2].Type.(*descriptor.NotRequired); !ok {
		t.Errorf("omitempty field must be not-required, got %T", s.Fields[2].Type)
	}
}

func TestDescribeEmbeddedStruct(t *testing.T) {
	type Base struct {
		ID int `json:"id"`
	}
	type Child struct {
		Base
		Name string `json:"name"`
	}

	d, _, err := FromValue(Child{})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	s := d.(*descriptor.Struct)
	if len(s.Bases) != 1 || s.Bases[0].Name != "Base" {
		t.Fatalf("embedded struct must become an ancestor, got %v", s.Bases)
	}
	if len(s.Fields) != 1 || s.Fields[0].Name != "name" {
		t.Errorf("own fields = %v", s.Fields)
	}
}

func TestDescribeRecursiveStruct(t *testing.T) {
	type Node struct {
		Value    int     `json:"value"`
		Children []*Node `json:"children"`
	}

	d, _, err := FromValue(Node{})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	s := d.(*descriptor.Struct)

	// The children field must close over the same descriptor value.
	seq, ok := s.Fields[1].Type.(*descriptor.Sequence)
	if !ok {
		t.Fatalf("expected sequence, got %T", s.Fields[1].Type)
	}
	u, ok := seq.Elem.(*descriptor.Union)
	if !ok {
		t.Fatalf("expected nullable union, got %T", seq.Elem)
	}
	var found bool
	for _, m := range u.Members {
		if m == descriptor.Descriptor(s) {
			found = true
		}
	}
	if !found {
		t.Error("recursive field does not share the root descriptor")
	}
}

func TestDescribeUninspectableFields(t *testing.T) {
	type Odd struct {
		Ch chan int `json:"ch"`
	}

	d, warnings, err := FromValue(Odd{})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	s := d.(*descriptor.Struct)
	if len(s.Fields) != 0 {
		t.Errorf("unsupported field must be skipped, got %v", s.Fields)
	}
	var hasSkip, hasNoFields bool
	for _, w := range warnings {
		switch w.Code {
		case "UNSUPPORTED_FIELD":
			hasSkip = true
		case "NO_FIELDS":
			hasNoFields = true
		}
	}
	if !hasSkip || !hasNoFields {
		t.Errorf("expected skip and no-fields warnings, got %v", warnings)
	}
}

func TestParseJSONTag(t *testing.T) {
	type fixture struct {
		Plain   string
		Named   string `json:"named"`
		Opt     string `json:"opt,omitempty"`
		BareOpt string `json:",omitempty"`
		Skipped string `json:"-"`
	}

	ft := reflect.TypeOf(fixture{})
	tests := []struct {
		field    string
		wantName string
		optional bool
		skip     bool
	}{
		{field: "Plain", wantName: "Plain"},
		{field: "Named", wantName: "named"},
		{field: "Opt", wantName: "opt", optional: true},
		{field: "BareOpt", wantName: "BareOpt", optional: true},
		{field: "Skipped", skip: true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, _ := ft.FieldByName(tt.field)
			name, optional, skip := parseJSONTag(f)
			if skip != tt.skip {
				t.Fatalf("skip = %v, want %v", skip, tt.skip)
			}
			if skip {
				return
			}
			if name != tt.wantName || optional != tt.optional {
				t.Errorf("got (%q, %v), want (%q, %v)", name, optional, tt.wantName, tt.optional)
			}
		})
	}
}
