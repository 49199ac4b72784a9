// Package provider implements boundary adapters that produce type
// descriptors from concrete sources: runtime reflection over Go values and
// static analysis of Go packages. The core generator stays agnostic of how
// descriptors are produced; these adapters are the narrow bridge.
package provider

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/semohr/tsgen/descriptor"
)

var timeType = reflect.TypeOf(time.Time{})

// ReflectAdapter converts Go reflect.Type values into descriptors.
//
// Struct descriptors are cached per reflect.Type, so recursive and mutually
// recursive Go types produce a finite, cyclic descriptor graph that the
// generator's recursion guard can walk safely.
type ReflectAdapter struct {
	structs  map[reflect.Type]*descriptor.Struct
	warnings []descriptor.Warning
}

// NewReflectAdapter returns an empty ReflectAdapter.
func NewReflectAdapter() *ReflectAdapter {
	return &ReflectAdapter{structs: make(map[reflect.Type]*descriptor.Struct)}
}

// FromValue describes the dynamic type of v.
func FromValue(v any) (descriptor.Descriptor, []descriptor.Warning, error) {
	return FromType(reflect.TypeOf(v))
}

// FromType describes a reflect.Type with a fresh adapter.
func FromType(t reflect.Type) (descriptor.Descriptor, []descriptor.Warning, error) {
	a := NewReflectAdapter()
	d, err := a.Describe(t)
	return d, a.warnings, err
}

// Warnings returns the non-fatal issues collected so far.
func (a *ReflectAdapter) Warnings() []descriptor.Warning { return a.warnings }

func (a *ReflectAdapter) warn(code, message, typeName string) {
	a.warnings = append(a.warnings, descriptor.Warning{Code: code, Message: message, TypeName: typeName})
}

// Describe converts a reflect.Type into a descriptor.
func (a *ReflectAdapter) Describe(t reflect.Type) (descriptor.Descriptor, error) {
	if t == nil {
		return descriptor.Any(), nil
	}

	// A pointer means the value can be absent or null.
	if t.Kind() == reflect.Pointer {
		elem, err := a.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.Optional(elem), nil
	}

	if t == timeType {
		return descriptor.Timestamp(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return descriptor.Text(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return descriptor.Integer(), nil
	case reflect.Float32, reflect.Float64:
		return descriptor.Float(), nil
	case reflect.Bool:
		return descriptor.Boolean(), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return descriptor.Bytes(), nil
		}
		elem, err := a.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.NewSequence(elem), nil
	case reflect.Array:
		elem, err := a.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		elems := make([]descriptor.Descriptor, t.Len())
		for i := range elems {
			elems[i] = elem
		}
		return descriptor.NewTuple(elems...), nil
	case reflect.Map:
		key, err := a.Describe(t.Key())
		if err != nil {
			return nil, err
		}
		value, err := a.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		return descriptor.NewDict(key, value), nil
	case reflect.Interface:
		return descriptor.Any(), nil
	case reflect.Struct:
		return a.describeStruct(t)
	default:
		return nil, fmt.Errorf("unsupported Go type: %s (kind %s)", t, t.Kind())
	}
}

// describeStruct builds (or returns the cached) struct descriptor for t.
// The descriptor is registered before fields are resolved, so recursive
// types close over the same descriptor value.
func (a *ReflectAdapter) describeStruct(t reflect.Type) (*descriptor.Struct, error) {
	if d, ok := a.structs[t]; ok {
		return d, nil
	}

	name := t.Name()
	if name == "" {
		name = "Anonymous"
	}
	d := descriptor.NewStruct(name)
	a.structs[t] = d

	introspected := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// An embedded struct without a json tag is composition; with a
		// tag it serializes as a regular field.
		if field.Anonymous && field.Tag.Get("json") == "" {
			base := field.Type
			for base.Kind() == reflect.Pointer {
				base = base.Elem()
			}
			if base.Kind() == reflect.Struct {
				parent, err := a.describeStruct(base)
				if err != nil {
					return nil, err
				}
				d.Extend(parent)
				introspected++
				continue
			}
		}

		name, optional, skip := parseJSONTag(field)
		if skip {
			continue
		}

		fieldType, err := a.Describe(field.Type)
		if err != nil {
			a.warn("UNSUPPORTED_FIELD", fmt.Sprintf("skipping field %s.%s: %v", t.Name(), field.Name, err), t.Name())
			continue
		}
		if optional {
			fieldType = descriptor.MarkNotRequired(fieldType)
		}
		d.Fields = append(d.Fields, descriptor.Field{Name: name, Type: fieldType})
		introspected++
	}

	if introspected == 0 && t.NumField() > 0 {
		a.warn("NO_FIELDS", fmt.Sprintf("type %s has no introspectable fields", t), t.Name())
	}
	return d, nil
}

// parseJSONTag extracts the serialized name and the omitempty/skip markers
// from a struct field's json tag.
func parseJSONTag(field reflect.StructField) (name string, optional, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag != "" {
		parts := strings.Split(tag, ",")
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
