// Package errors implements module-scoped errors with stable codes.
//
// Every error is registered under a (module, code) pair so that callers,
// including command line tooling, can report a failure by its code rather
// than by matching on message text.
package errors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// UnknownModule is the module reported for errors that were not
	// created by New.
	UnknownModule = "unknown"

	// CodeNoError is the reserved "no error" code.
	CodeNoError = 0
)

// Re-exports so this package can be used as a replacement for errors.
var (
	As     = errors.As
	Is     = errors.Is
	Unwrap = errors.Unwrap
)

type codeKey struct {
	module string
	code   uint32
}

func (k codeKey) String() string {
	return fmt.Sprintf("%s-%d", k.module, k.code)
}

var registry = struct {
	sync.Mutex
	codes map[codeKey]string
}{
	codes: make(map[codeKey]string),
}

var errUnknown = New(UnknownModule, 1, "unknown error")

type codedError struct {
	codeKey
	msg string
}

func (e *codedError) Error() string {
	return e.msg
}

// New creates and registers a new error. It panics if the (module, code)
// pair is already registered or if code is CodeNoError.
func New(module string, code uint32, msg string) error {
	key := codeKey{module: module, code: code}
	if code == CodeNoError {
		panic(fmt.Errorf("errors: %s uses the reserved 'no error' code", key))
	}

	registry.Lock()
	defer registry.Unlock()
	if prev, ok := registry.codes[key]; ok {
		panic(fmt.Errorf("errors: %s already registered as %q", key, prev))
	}
	registry.codes[key] = msg

	return &codedError{codeKey: key, msg: msg}
}

type contextError struct {
	err     error
	context string
}

func (e *contextError) Error() string {
	return e.err.Error() + ": " + e.context
}

func (e *contextError) Unwrap() error {
	return e.err
}

// WithContext wraps err with additional context. The wrapped error keeps
// the module and code of err.
func WithContext(err error, context string) error {
	if context == "" {
		return err
	}
	return &contextError{err: err, context: context}
}

// Code returns the module and code of the outermost registered error in
// err's chain. Errors without one report UnknownModule, and a nil error
// reports an empty module with CodeNoError.
func Code(err error) (string, uint32) {
	if err == nil {
		return "", CodeNoError
	}

	var ce *codedError
	if !As(err, &ce) {
		ce = errUnknown.(*codedError)
	}
	return ce.module, ce.code
}
