// Package shape classifies Go types by the shape of their values.
//
// The classification is total and mutually exclusive: every type falls
// into exactly one Shape. Types that cannot be generated structurally
// (maps, channels, functions, pointers, interfaces, complex numbers and
// structs with unexported fields) are Unclassified.
package shape

import (
	"fmt"
	"reflect"
)

// Shape is the shape of a value type.
type Shape uint8

const (
	// Unclassified is a type with no structural default.
	Unclassified Shape = iota
	// Boolean is the bool kind.
	Boolean
	// Integral is any signed or unsigned integer kind.
	Integral
	// FloatingPoint is float32 or float64.
	FloatingPoint
	// String is a string kind (a sequence of characters).
	String
	// Tuple is a fixed arity value: a struct with exported fields or an array.
	Tuple
	// Sequence is a variable length value: a slice.
	Sequence
)

// String returns a string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Unclassified:
		return "unclassified"
	case Boolean:
		return "boolean"
	case Integral:
		return "integral"
	case FloatingPoint:
		return "floating-point"
	case String:
		return "string"
	case Tuple:
		return "tuple"
	case Sequence:
		return "sequence"
	default:
		return fmt.Sprintf("[unknown shape: %d]", s)
	}
}

// Classify returns the shape of the given type.
func Classify(t reflect.Type) Shape {
	if t == nil {
		return Unclassified
	}

	switch t.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integral
	case reflect.Float32, reflect.Float64:
		return FloatingPoint
	case reflect.String:
		return String
	case reflect.Array:
		return Tuple
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				return Unclassified
			}
		}
		return Tuple
	case reflect.Slice:
		return Sequence
	default:
		return Unclassified
	}
}

// Of returns the shape of the type parameter T.
func Of[T any]() Shape {
	return Classify(reflect.TypeFor[T]())
}

// IsSigned returns true iff the type is a signed integer kind.
func IsSigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
