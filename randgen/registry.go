package randgen

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen/shape"
)

var defaults = registry{
	entries: make(map[reflect.Type]Value),
}

type registry struct {
	sync.RWMutex

	entries map[reflect.Type]Value
}

func (r *registry) lookup(t reflect.Type) (Value, bool) {
	r.RLock()
	defer r.RUnlock()

	v, ok := r.entries[t]
	return v, ok
}

// Register installs d as the default distribution of T. Registered
// defaults take precedence over shape classification, also when T is a
// component of a structured type.
func Register[T any](d Distribution[T]) {
	if d == nil {
		panic("randgen: registering a nil distribution")
	}

	t := reflect.TypeFor[T]()
	defaults.Lock()
	defaults.entries[t] = typedValue[T]{d: d}
	defaults.Unlock()

	logger.Debug("registered default distribution",
		"type", t,
		"distribution", fmt.Sprint(d),
	)
}

// Unregister removes a default installed with Register.
func Unregister[T any]() {
	defaults.Lock()
	defer defaults.Unlock()

	delete(defaults.entries, reflect.TypeFor[T]())
}

// Default returns the default distribution of T.
//
// The dispatch is, first match wins: a distribution installed with
// Register, then by shape.Classify:
//
//   - Boolean: a fair Bernoulli distribution.
//   - Integral: Uniform over the full range of the type.
//   - FloatingPoint: UniformReal over all finite values of the type.
//   - Tuple: each field or element drawn from its own default, in order.
//   - String: DefaultString.
//   - Sequence: DefaultSequenceLength long, elements drawn from their default.
//
// Any other type yields ErrUnclassified naming the type.
func Default[T any]() (Distribution[T], error) {
	v, err := Resolve(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	if tv, ok := v.(typedValue[T]); ok {
		return tv.d, nil
	}
	if d, ok := builtinDefault[T](); ok {
		return d, nil
	}
	return reflected[T]{v: v}, nil
}

// MustDefault returns the default distribution of T, and panics if T has
// none. Use it in package level variables so an unresolvable type fails
// at initialization.
func MustDefault[T any]() Distribution[T] {
	d, err := Default[T]()
	if err != nil {
		panic(err)
	}
	return d
}

// Resolve returns the default distribution of t as a dynamically typed
// Value. See Default for the dispatch rules.
func Resolve(t reflect.Type) (Value, error) {
	v, err := resolve(t, make(map[reflect.Type]bool))
	if err != nil {
		logger.Debug("no default distribution",
			"type", fmt.Sprint(t),
			"err", err,
		)
		return nil, err
	}
	return v, nil
}

func resolve(t reflect.Type, visiting map[reflect.Type]bool) (Value, error) {
	if t == nil {
		return nil, errors.WithContext(ErrUnclassified, "nil type")
	}
	if v, ok := defaults.lookup(t); ok {
		return v, nil
	}
	if visiting[t] {
		return nil, errors.WithContext(ErrUnclassified, fmt.Sprintf("%v is recursive", t))
	}
	visiting[t] = true
	defer delete(visiting, t)

	switch s := shape.Classify(t); s {
	case shape.Boolean:
		return boolValue{typ: t, d: Fair()}, nil
	case shape.Integral:
		bits := t.Bits()
		if shape.IsSigned(t) {
			lo := int64(-1) << (bits - 1)
			return intValue{typ: t, d: Uniform[int64]{Min: lo, Max: ^lo}}, nil
		}
		return uintValue{typ: t, d: Uniform[uint64]{Min: 0, Max: uint64(math.MaxUint64) >> (64 - bits)}}, nil
	case shape.FloatingPoint:
		hi := math.MaxFloat64
		if t.Bits() == 32 {
			hi = math.MaxFloat32
		}
		return floatValue{typ: t, d: UniformReal[float64]{Min: -hi, Max: hi}}, nil
	case shape.Tuple:
		if t.Kind() == reflect.Array {
			elem, err := resolve(t.Elem(), visiting)
			if err != nil {
				return nil, errors.WithContext(err, "in "+t.String())
			}
			return arrayValue{typ: t, elem: elem}, nil
		}
		slots := make([]Value, t.NumField())
		for i := range slots {
			field, err := resolve(t.Field(i).Type, visiting)
			if err != nil {
				return nil, errors.WithContext(err, fmt.Sprintf("in field %s of %v", t.Field(i).Name, t))
			}
			slots[i] = field
		}
		return tupleValue{typ: t, slots: slots}, nil
	case shape.String:
		return stringValue{typ: t, d: DefaultString[string]()}, nil
	case shape.Sequence:
		elem, err := resolve(t.Elem(), visiting)
		if err != nil {
			return nil, errors.WithContext(err, "in "+t.String())
		}
		return sliceValue{typ: t, size: DefaultSequenceLength(), elem: elem}, nil
	case shape.Unclassified:
		return nil, errors.WithContext(ErrUnclassified, fmt.Sprintf("%v (%s)", t, t.Kind()))
	default:
		panic(fmt.Sprintf("randgen: unhandled shape: %s", s))
	}
}

// builtinDefault returns the typed default distribution of the predeclared
// scalar types, so their defaults are plain Uniform, UniformReal, Bernoulli
// and String values rather than reflective ones.
func builtinDefault[T any]() (Distribution[T], bool) {
	var d any
	switch any((*T)(nil)).(type) {
	case *bool:
		d = Fair()
	case *int:
		d = FullRange[int]()
	case *int8:
		d = FullRange[int8]()
	case *int16:
		d = FullRange[int16]()
	case *int32:
		d = FullRange[int32]()
	case *int64:
		d = FullRange[int64]()
	case *uint:
		d = FullRange[uint]()
	case *uint8:
		d = FullRange[uint8]()
	case *uint16:
		d = FullRange[uint16]()
	case *uint32:
		d = FullRange[uint32]()
	case *uint64:
		d = FullRange[uint64]()
	case *uintptr:
		d = FullRange[uintptr]()
	case *float32:
		d = FullRangeReal[float32]()
	case *float64:
		d = FullRangeReal[float64]()
	case *string:
		d = DefaultString[string]()
	default:
		return nil, false
	}
	return d.(Distribution[T]), true
}
