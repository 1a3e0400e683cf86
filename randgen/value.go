package randgen

import (
	"fmt"
	"reflect"
	"strings"
)

// Value is a distribution over dynamically typed values. The registry
// resolves every type to a Value; Default wraps it back into a typed
// Distribution.
type Value interface {
	fmt.Stringer

	// Type returns the type of the drawn values.
	Type() reflect.Type

	// SampleValue draws one value of exactly Type().
	SampleValue(eng Engine) reflect.Value

	// EqualValue returns true iff other is the same generator configuration.
	EqualValue(other Value) bool
}

type boolValue struct {
	typ reflect.Type
	d   Bernoulli
}

func (v boolValue) Type() reflect.Type { return v.typ }

func (v boolValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	rv.SetBool(v.d.Sample(eng))
	return rv
}

func (v boolValue) EqualValue(other Value) bool {
	o, ok := other.(boolValue)
	return ok && o == v
}

func (v boolValue) String() string { return v.d.String() }

type intValue struct {
	typ reflect.Type
	d   Uniform[int64]
}

func (v intValue) Type() reflect.Type { return v.typ }

func (v intValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	rv.SetInt(v.d.Sample(eng))
	return rv
}

func (v intValue) EqualValue(other Value) bool {
	o, ok := other.(intValue)
	return ok && o == v
}

func (v intValue) String() string { return v.d.String() }

type uintValue struct {
	typ reflect.Type
	d   Uniform[uint64]
}

func (v uintValue) Type() reflect.Type { return v.typ }

func (v uintValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	rv.SetUint(v.d.Sample(eng))
	return rv
}

func (v uintValue) EqualValue(other Value) bool {
	o, ok := other.(uintValue)
	return ok && o == v
}

func (v uintValue) String() string { return v.d.String() }

type floatValue struct {
	typ reflect.Type
	d   UniformReal[float64]
}

func (v floatValue) Type() reflect.Type { return v.typ }

func (v floatValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	rv.SetFloat(v.d.Sample(eng))
	return rv
}

func (v floatValue) EqualValue(other Value) bool {
	o, ok := other.(floatValue)
	return ok && o == v
}

func (v floatValue) String() string { return v.d.String() }

type stringValue struct {
	typ reflect.Type
	d   String[string]
}

func (v stringValue) Type() reflect.Type { return v.typ }

func (v stringValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	rv.SetString(v.d.Sample(eng))
	return rv
}

func (v stringValue) EqualValue(other Value) bool {
	o, ok := other.(stringValue)
	return ok && o.typ == v.typ && o.d.Equal(v.d)
}

func (v stringValue) String() string { return v.d.String() }

type sliceValue struct {
	typ  reflect.Type
	size Distribution[int]
	elem Value
}

func (v sliceValue) Type() reflect.Type { return v.typ }

func (v sliceValue) SampleValue(eng Engine) reflect.Value {
	n := max(v.size.Sample(eng), 0)
	rv := reflect.MakeSlice(v.typ, 0, n)
	for i := 0; i < n; i++ {
		rv = reflect.Append(rv, v.elem.SampleValue(eng))
	}
	return rv
}

func (v sliceValue) EqualValue(other Value) bool {
	o, ok := other.(sliceValue)
	return ok && o.typ == v.typ && v.size.Equal(o.size) && v.elem.EqualValue(o.elem)
}

func (v sliceValue) String() string {
	return fmt.Sprintf("sequence(len=%v, elem=%v)", v.size, v.elem)
}

// arrayValue draws arrays. Every element shares one Value and is drawn in
// ascending index order.
type arrayValue struct {
	typ  reflect.Type
	elem Value
}

func (v arrayValue) Type() reflect.Type { return v.typ }

func (v arrayValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	for i := 0; i < v.typ.Len(); i++ {
		rv.Index(i).Set(v.elem.SampleValue(eng))
	}
	return rv
}

func (v arrayValue) EqualValue(other Value) bool {
	o, ok := other.(arrayValue)
	return ok && o.typ == v.typ && v.elem.EqualValue(o.elem)
}

func (v arrayValue) String() string {
	return fmt.Sprintf("array(len=%d, elem=%v)", v.typ.Len(), v.elem)
}

// tupleValue draws structs, one Value per field, in field order.
type tupleValue struct {
	typ   reflect.Type
	slots []Value
}

func (v tupleValue) Type() reflect.Type { return v.typ }

func (v tupleValue) SampleValue(eng Engine) reflect.Value {
	rv := reflect.New(v.typ).Elem()
	for i, slot := range v.slots {
		rv.Field(i).Set(slot.SampleValue(eng))
	}
	return rv
}

func (v tupleValue) EqualValue(other Value) bool {
	o, ok := other.(tupleValue)
	if !ok || o.typ != v.typ || len(o.slots) != len(v.slots) {
		return false
	}
	for i := range v.slots {
		if !v.slots[i].EqualValue(o.slots[i]) {
			return false
		}
	}
	return true
}

func (v tupleValue) String() string {
	parts := make([]string, len(v.slots))
	for i, slot := range v.slots {
		parts[i] = slot.String()
	}
	return "tuple(" + strings.Join(parts, ", ") + ")"
}

// typedValue adapts a typed distribution, installed with Register.
type typedValue[T any] struct {
	d Distribution[T]
}

func (v typedValue[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (v typedValue[T]) SampleValue(eng Engine) reflect.Value {
	x := v.d.Sample(eng)
	return reflect.ValueOf(&x).Elem()
}

func (v typedValue[T]) EqualValue(other Value) bool {
	o, ok := other.(typedValue[T])
	return ok && v.d.Equal(o.d)
}

func (v typedValue[T]) String() string { return fmt.Sprint(v.d) }

// reflected adapts a Value back into a typed distribution.
type reflected[T any] struct {
	v Value
}

func (d reflected[T]) Sample(eng Engine) T {
	return d.v.SampleValue(eng).Interface().(T)
}

func (d reflected[T]) Equal(other Distribution[T]) bool {
	o, ok := other.(reflected[T])
	return ok && d.v.EqualValue(o.v)
}

func (d reflected[T]) String() string { return d.v.String() }
