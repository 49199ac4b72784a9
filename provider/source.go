package provider

import (
	"fmt"
	"go/constant"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/semohr/tsgen/descriptor"
)

// SourceResult holds the descriptors extracted from a Go package.
type SourceResult struct {
	// Types contains the named descriptors (structs and enums) in sorted
	// declaration-name order.
	Types []descriptor.Descriptor

	// Warnings contains non-fatal issues encountered while extracting.
	Warnings []descriptor.Warning
}

// FromPackage loads a Go package and extracts its exported named types as
// descriptors. Defined string or integer types with a same-typed const
// group become enums — something runtime reflection cannot recover —
// and exported structs become struct descriptors.
//
// The pattern follows go command semantics: ".", an import path, or a
// directory path.
func FromPackage(pattern string) (*SourceResult, error) {
	return FromPackageDir(pattern, "")
}

// FromPackageDir is like FromPackage but resolves the pattern relative to
// dir.
func FromPackageDir(pattern, dir string) (*SourceResult, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", pattern)
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("package %q has errors: %v", pattern, pkgs[0].Errors[0])
	}
	return fromScope(pkgs[0].Types)
}

func fromScope(pkg *types.Package) (*SourceResult, error) {
	e := &sourceExtractor{
		pkg:     pkg,
		structs: make(map[*types.Named]*descriptor.Struct),
		enums:   make(map[*types.Named]*descriptor.Enum),
	}

	result := &SourceResult{}
	scope := pkg.Scope()
	names := scope.Names()
	sort.Strings(names)

	for _, name := range names {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		if enum := e.enumFor(named); enum != nil {
			result.Types = append(result.Types, enum)
			continue
		}

		if _, ok := named.Underlying().(*types.Struct); ok {
			d, err := e.structFor(named)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", name, err)
			}
			result.Types = append(result.Types, d)
		}
	}

	result.Warnings = e.warnings
	return result, nil
}

type sourceExtractor struct {
	pkg      *types.Package
	structs  map[*types.Named]*descriptor.Struct
	enums    map[*types.Named]*descriptor.Enum
	warnings []descriptor.Warning
}

// enumFor returns the enum descriptor for a defined basic type with a
// same-typed const group, or nil if the type is not an enum candidate.
func (e *sourceExtractor) enumFor(named *types.Named) *descriptor.Enum {
	if enum, ok := e.enums[named]; ok {
		return enum
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return nil
	}
	if basic.Info()&(types.IsString|types.IsInteger) == 0 {
		return nil
	}

	var members []descriptor.EnumMember
	scope := e.pkg.Scope()
	for _, name := range scope.Names() {
		cnst, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(cnst.Type(), named) {
			continue
		}
		members = append(members, descriptor.EnumMember{
			Name:  cnst.Name(),
			Value: constantValue(cnst.Val()),
		})
	}
	if len(members) == 0 {
		return nil
	}

	enum := descriptor.NewEnum(named.Obj().Name(), members...)
	e.enums[named] = enum
	return enum
}

// structFor builds (or returns the cached) struct descriptor for a named
// struct type. Registration happens before field resolution so recursive
// types close over the same descriptor value.
func (e *sourceExtractor) structFor(named *types.Named) (*descriptor.Struct, error) {
	if d, ok := e.structs[named]; ok {
		return d, nil
	}

	structType, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s is not a struct type", named.Obj().Name())
	}

	d := descriptor.NewStruct(named.Obj().Name())
	e.structs[named] = d

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Exported() {
			continue
		}

		if field.Embedded() {
			base, ok := derefNamed(field.Type())
			if ok {
				if _, isStruct := base.Underlying().(*types.Struct); isStruct {
					parent, err := e.structFor(base)
					if err != nil {
						return nil, err
					}
					d.Extend(parent)
					continue
				}
			}
		}

		name, optional, skip := parseTagName(structType.Tag(i), field.Name())
		if skip {
			continue
		}

		fieldType, err := e.typeDescriptor(field.Type())
		if err != nil {
			e.warnings = append(e.warnings, descriptor.Warning{
				Code:     "UNSUPPORTED_FIELD",
				Message:  fmt.Sprintf("skipping field %s.%s: %v", named.Obj().Name(), field.Name(), err),
				TypeName: named.Obj().Name(),
			})
			continue
		}
		if optional {
			fieldType = descriptor.MarkNotRequired(fieldType)
		}
		d.Fields = append(d.Fields, descriptor.Field{Name: name, Type: fieldType})
	}

	return d, nil
}

// typeDescriptor converts a go/types type into a descriptor.
func (e *sourceExtractor) typeDescriptor(t types.Type) (descriptor.Descriptor, error) {
	switch tt := t.(type) {
	case *types.Basic:
		return basicDescriptor(tt)
	case *types.Pointer:
		elem, err := e.typeDescriptor(tt.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.Optional(elem), nil
	case *types.Slice:
		if basic, ok := tt.Elem().(*types.Basic); ok && basic.Kind() == types.Byte {
			return descriptor.Bytes(), nil
		}
		elem, err := e.typeDescriptor(tt.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.NewSequence(elem), nil
	case *types.Array:
		elem, err := e.typeDescriptor(tt.Elem())
		if err != nil {
			return nil, err
		}
		elems := make([]descriptor.Descriptor, tt.Len())
		for i := range elems {
			elems[i] = elem
		}
		return descriptor.NewTuple(elems...), nil
	case *types.Map:
		key, err := e.typeDescriptor(tt.Key())
		if err != nil {
			return nil, err
		}
		value, err := e.typeDescriptor(tt.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.NewDict(key, value), nil
	case *types.Interface:
		if tt.Empty() {
			return descriptor.Any(), nil
		}
		return nil, fmt.Errorf("non-empty interface types are not supported")
	case *types.Named:
		return e.namedDescriptor(tt)
	case *types.Alias:
		return e.typeDescriptor(types.Unalias(tt))
	default:
		return nil, fmt.Errorf("unsupported type: %s", t)
	}
}

func (e *sourceExtractor) namedDescriptor(named *types.Named) (descriptor.Descriptor, error) {
	obj := named.Obj()
	if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
		return descriptor.Timestamp(), nil
	}

	// Same-package named types resolve to their structure; enums win over
	// plain defined basics.
	if obj.Pkg() == e.pkg {
		if enum := e.enumFor(named); enum != nil {
			return enum, nil
		}
		if _, ok := named.Underlying().(*types.Struct); ok {
			return e.structFor(named)
		}
		return e.typeDescriptor(named.Underlying())
	}

	// Foreign named types stay a bare reference; the caller is expected to
	// register their declarations separately.
	if _, ok := named.Underlying().(*types.Struct); ok {
		return descriptor.NewRef(obj.Name()), nil
	}
	return e.typeDescriptor(named.Underlying())
}

func basicDescriptor(t *types.Basic) (descriptor.Descriptor, error) {
	info := t.Info()
	switch {
	case info&types.IsString != 0:
		return descriptor.Text(), nil
	case info&types.IsBoolean != 0:
		return descriptor.Boolean(), nil
	case info&types.IsInteger != 0:
		return descriptor.Integer(), nil
	case info&types.IsFloat != 0:
		return descriptor.Float(), nil
	default:
		return nil, fmt.Errorf("unsupported basic type: %s", t)
	}
}

// constantValue converts a go/constant value to a string or int64.
func constantValue(v constant.Value) any {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v)
	case constant.Int:
		i64, _ := constant.Int64Val(v)
		return i64
	default:
		return v.String()
	}
}

// derefNamed unwraps pointers and returns the named type underneath.
func derefNamed(t types.Type) (*types.Named, bool) {
	for {
		if ptr, ok := t.(*types.Pointer); ok {
			t = ptr.Elem()
			continue
		}
		named, ok := t.(*types.Named)
		return named, ok
	}
}

// parseTagName extracts the serialized field name and omitempty/skip
// markers from a raw struct tag.
func parseTagName(tag, fallback string) (name string, optional, skip bool) {
	value := reflect.StructTag(tag).Get("json")
	if value == "-" {
		return "", false, true
	}
	name = fallback
	if value != "" {
		parts := strings.Split(value, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" || opt == "omitzero" {
				optional = true
			}
		}
	}
	return name, optional, false
}
