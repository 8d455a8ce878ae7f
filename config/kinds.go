// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "reflect"

// Kind is the closed set of value categories recognized by the option
// schema. Every raw option value is classified into exactly one Kind by
// KindOf; schema type checks compare against that classification.
type Kind int

const (
	// KindUnset marks a Definition with no explicit type; the effective
	// type is inferred from the definition's default value when present.
	KindUnset Kind = iota

	// KindBool covers the two boolean values.
	KindBool

	// KindNumber covers every integer and floating-point value.
	KindNumber

	// KindString covers string values.
	KindString

	// KindFunc covers function values.
	KindFunc

	// KindObject covers maps, structs, and pointers to structs.
	KindObject

	// KindArray covers slices and arrays.
	KindArray
)

// kindNames maps each Kind to the name used in diagnostic messages.
var kindNames = map[Kind]string{
	KindUnset:  "any",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindFunc:   "function",
	KindObject: "object",
	KindArray:  "array",
}

// String returns the diagnostic name of the Kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf classifies an arbitrary value into the closed Kind set. A nil
// value, and anything outside the recognized categories, classifies as
// KindUnset so that it never satisfies an explicit type check.
func KindOf(v any) Kind {
	if v == nil {
		return KindUnset
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Func:
		return KindFunc
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Ptr:
		if rv.IsNil() {
			return KindUnset
		}
		return KindOf(rv.Elem().Interface())
	default:
		return KindUnset
	}
}

// truthy reports the boolean coercion of an arbitrary value: nil is false,
// booleans are themselves, numbers are true unless zero, strings are true
// unless empty, and every other recognized value is true.
func truthy(v any) bool {
	if v == nil {
		return false
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		return rv.String() != ""
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// asFloat converts any numeric value to float64 for minimum comparisons.
// The bool result is false for non-numeric values.
func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
