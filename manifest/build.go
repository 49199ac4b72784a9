package manifest

import (
	"fmt"
	"math"

	"github.com/semohr/tsgen/descriptor"
)

// primitiveTokens maps manifest type-expression strings to primitive
// descriptor constructors.
var primitiveTokens = map[string]func() *descriptor.Primitive{
	"string":    descriptor.Text,
	"str":       descriptor.Text,
	"text":      descriptor.Text,
	"int":       descriptor.Integer,
	"integer":   descriptor.Integer,
	"float":     descriptor.Float,
	"double":    descriptor.Float,
	"bool":      descriptor.Boolean,
	"boolean":   descriptor.Boolean,
	"bytes":     descriptor.Bytes,
	"binary":    descriptor.Bytes,
	"datetime":  descriptor.Timestamp,
	"timestamp": descriptor.Timestamp,
	"null":      descriptor.None,
	"none":      descriptor.None,
	"any":       descriptor.Any,
}

// Descriptors lowers the manifest into one descriptor per declared type, in
// declaration order. Named cross-references resolve to the actual struct or
// enum descriptor, so nested and recursive manifests produce the same
// cyclic descriptor graphs a reflection adapter would.
func (f *File) Descriptors() ([]descriptor.Descriptor, error) {
	b := &manifestBuilder{
		structs: make(map[string]*descriptor.Struct),
		enums:   make(map[string]*descriptor.Enum),
	}

	// First pass registers every name so forward and self references
	// resolve during the second pass.
	for _, t := range f.Types {
		switch t.Kind {
		case "struct":
			d := descriptor.NewStruct(t.Name)
			d.Comment = t.Comment
			b.structs[t.Name] = d
		case "enum":
			enum, err := buildEnum(t)
			if err != nil {
				return nil, err
			}
			b.enums[t.Name] = enum
		}
	}

	result := make([]descriptor.Descriptor, 0, len(f.Types))
	for _, t := range f.Types {
		if t.Kind == "enum" {
			result = append(result, b.enums[t.Name])
			continue
		}

		d := b.structs[t.Name]
		for _, field := range t.Fields {
			fieldType, err := b.typeExpr(field.Type)
			if err != nil {
				return nil, fmt.Errorf("type %s, field %s: %w", t.Name, field.Name, err)
			}
			if field.Required != nil && !*field.Required {
				fieldType = descriptor.MarkNotRequired(fieldType)
			}
			d.Fields = append(d.Fields, descriptor.Field{
				Name:    field.Name,
				Type:    fieldType,
				Comment: field.Comment,
			})
		}
		if t.Extends != "" {
			d.Extend(b.structs[t.Extends])
		}
		result = append(result, d)
	}
	return result, nil
}

func buildEnum(t Type) (*descriptor.Enum, error) {
	members := make([]descriptor.EnumMember, 0, len(t.Members))
	for _, m := range t.Members {
		value, err := normalizeScalar(m.Value)
		if err != nil {
			return nil, fmt.Errorf("enum %s, member %s: %w", t.Name, m.Name, err)
		}
		members = append(members, descriptor.EnumMember{Name: m.Name, Value: value})
	}
	enum := descriptor.NewEnum(t.Name, members...)
	enum.Comment = t.Comment
	return enum, nil
}

type manifestBuilder struct {
	structs map[string]*descriptor.Struct
	enums   map[string]*descriptor.Enum
}

// typeExpr resolves a manifest type expression into a descriptor.
func (b *manifestBuilder) typeExpr(v any) (descriptor.Descriptor, error) {
	switch expr := v.(type) {
	case string:
		if ctor, ok := primitiveTokens[expr]; ok {
			return ctor(), nil
		}
		if d, ok := b.structs[expr]; ok {
			return d, nil
		}
		if d, ok := b.enums[expr]; ok {
			return d, nil
		}
		// Unknown names stay bare references: the declaration may live in
		// another manifest rendered into the same output.
		return descriptor.NewRef(expr), nil

	case map[string]any:
		if len(expr) != 1 {
			return nil, fmt.Errorf("container expression must have exactly one key, got %d", len(expr))
		}
		for key, value := range expr {
			return b.containerExpr(key, value)
		}
	}
	return nil, fmt.Errorf("invalid type expression %v (%T)", v, v)
}

func (b *manifestBuilder) containerExpr(key string, value any) (descriptor.Descriptor, error) {
	switch key {
	case "seq", "list":
		elem, err := b.typeExpr(value)
		if err != nil {
			return nil, err
		}
		return descriptor.NewSequence(elem), nil

	case "tuple":
		elems, err := b.typeExprList(key, value)
		if err != nil {
			return nil, err
		}
		return descriptor.NewTuple(elems...), nil

	case "union":
		members, err := b.typeExprList(key, value)
		if err != nil {
			return nil, err
		}
		return descriptor.NewUnion(members...), nil

	case "dict":
		args, ok := value.([]any)
		if !ok || len(args) > 2 {
			return nil, fmt.Errorf("dict expects a list of at most two type arguments")
		}
		var keyType, valueType descriptor.Descriptor
		var err error
		if len(args) > 0 {
			if keyType, err = b.typeExpr(args[0]); err != nil {
				return nil, err
			}
		}
		if len(args) > 1 {
			if valueType, err = b.typeExpr(args[1]); err != nil {
				return nil, err
			}
		}
		return descriptor.NewDict(keyType, valueType), nil

	case "literal":
		values, ok := value.([]any)
		if !ok {
			values = []any{value}
		}
		normalized := make([]any, 0, len(values))
		for _, v := range values {
			n, err := normalizeScalar(v)
			if err != nil {
				return nil, fmt.Errorf("literal: %w", err)
			}
			normalized = append(normalized, n)
		}
		return descriptor.NewLiteral(normalized...), nil

	case "optional":
		elem, err := b.typeExpr(value)
		if err != nil {
			return nil, err
		}
		return descriptor.Optional(elem), nil

	case "not_required":
		elem, err := b.typeExpr(value)
		if err != nil {
			return nil, err
		}
		return descriptor.MarkNotRequired(elem), nil

	default:
		return nil, fmt.Errorf("unknown container %q", key)
	}
}

func (b *manifestBuilder) typeExprList(container string, value any) ([]descriptor.Descriptor, error) {
	args, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s expects a list of type arguments", container)
	}
	result := make([]descriptor.Descriptor, 0, len(args))
	for _, arg := range args {
		d, err := b.typeExpr(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

// normalizeScalar canonicalizes decoded scalar values: JSON decodes all
// numbers as float64, so whole floats fold back to integers.
func normalizeScalar(v any) (any, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case int:
		return value, nil
	case int64:
		return value, nil
	case uint64:
		return int64(value), nil
	case float64:
		if value == math.Trunc(value) {
			return int64(value), nil
		}
		return nil, fmt.Errorf("non-integer number %v is not a valid value", value)
	default:
		return nil, fmt.Errorf("value %v (%T) must be a string or integer", v, v)
	}
}
