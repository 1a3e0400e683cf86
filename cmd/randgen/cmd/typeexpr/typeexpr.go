// Package typeexpr parses the type expressions accepted on the randgen
// command line into reflect types.
//
// The grammar is a subset of Go's type syntax:
//
//	expr   = name | "[]" expr | "[" digits "]" expr | tuple | map
//	tuple  = "tuple(" [ expr { "," expr } ] ")"
//	map    = "map[" expr "]" expr
//
// where name is one of the predeclared boolean, numeric or string types.
// A tuple is a struct whose fields are named F0, F1 and so on.
package typeexpr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

const (
	// MaxArrayLen is the largest array length accepted.
	MaxArrayLen = 1 << 16
	// MaxSize is the largest size in bytes of an accepted array or tuple.
	MaxSize = 1 << 26
)

var scalars = map[string]reflect.Type{
	"bool":    reflect.TypeFor[bool](),
	"int":     reflect.TypeFor[int](),
	"int8":    reflect.TypeFor[int8](),
	"int16":   reflect.TypeFor[int16](),
	"int32":   reflect.TypeFor[int32](),
	"int64":   reflect.TypeFor[int64](),
	"uint":    reflect.TypeFor[uint](),
	"uint8":   reflect.TypeFor[uint8](),
	"uint16":  reflect.TypeFor[uint16](),
	"uint32":  reflect.TypeFor[uint32](),
	"uint64":  reflect.TypeFor[uint64](),
	"uintptr": reflect.TypeFor[uintptr](),
	"float32": reflect.TypeFor[float32](),
	"float64": reflect.TypeFor[float64](),
	"string":  reflect.TypeFor[string](),
	"byte":    reflect.TypeFor[byte](),
	"rune":    reflect.TypeFor[rune](),
}

// Names returns the supported scalar type names.
func Names() []string {
	names := make([]string, 0, len(scalars))
	for name := range scalars {
		names = append(names, name)
	}
	return names
}

// Parse parses a type expression.
func Parse(s string) (reflect.Type, error) {
	p := &parser{src: s}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input")
	}
	return t, nil
}

// TupleOf returns the tuple type with the given slot types.
func TupleOf(slots ...reflect.Type) reflect.Type {
	fields := make([]reflect.StructField, len(slots))
	for i, t := range slots {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: t,
		}
	}
	return reflect.StructOf(fields)
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("typeexpr: %s at offset %d in %q", fmt.Sprintf(format, args...), p.pos, p.src)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) expect(tok string) error {
	if !p.consume(tok) {
		return p.errorf("expected %q", tok)
	}
	return nil
}

func (p *parser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) expr() (reflect.Type, error) {
	switch {
	case p.consume("[]"):
		elem, err := p.expr()
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case p.consume("["):
		digits := p.ident()
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 || n > MaxArrayLen {
			return nil, p.errorf("invalid array length %q", digits)
		}
		if err = p.expect("]"); err != nil {
			return nil, err
		}
		elem, err := p.expr()
		if err != nil {
			return nil, err
		}
		if uint64(n)*uint64(elem.Size()) > MaxSize {
			return nil, p.errorf("array [%d]%v exceeds %d bytes", n, elem, MaxSize)
		}
		return reflect.ArrayOf(n, elem), nil
	}

	start := p.pos
	name := p.ident()
	switch name {
	case "":
		return nil, p.errorf("expected a type")
	case "tuple":
		return p.tuple()
	case "map":
		return p.mapType()
	}
	t, ok := scalars[name]
	if !ok {
		p.pos = start
		return nil, p.errorf("unknown type %q", name)
	}
	return t, nil
}

func (p *parser) tuple() (reflect.Type, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var (
		slots []reflect.Type
		size  uint64
	)
	if !p.consume(")") {
		for {
			slot, err := p.expr()
			if err != nil {
				return nil, err
			}
			if size += uint64(slot.Size()); size > MaxSize {
				return nil, p.errorf("tuple exceeds %d bytes", MaxSize)
			}
			slots = append(slots, slot)
			if p.consume(")") {
				break
			}
			if err = p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	return TupleOf(slots...), nil
}

func (p *parser) mapType() (reflect.Type, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	key, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !key.Comparable() {
		return nil, p.errorf("invalid map key type %v", key)
	}
	if err = p.expect("]"); err != nil {
		return nil, err
	}
	elem, err := p.expr()
	if err != nil {
		return nil, err
	}
	return reflect.MapOf(key, elem), nil
}
