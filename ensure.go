package goseqs

import "reflect"

// An InvalidArgumentError is the panic value raised when an operation receives
// an out-of-range argument. It is raised before any enumeration begins.
type InvalidArgumentError struct {
	// Reason describes the violated precondition.
	Reason string
}

// A NilArgumentError is the panic value raised when an operation receives a nil
// argument it requires. It is raised before any enumeration begins.
type NilArgumentError struct {
	// Name is the name of the nil argument.
	Name string
}

// ensure panics with an InvalidArgumentError if cond is false.
func ensure(cond bool, reason string) {
	if !cond {
		panic(&InvalidArgumentError{Reason: reason})
	}
}

// ensureNotNil panics with a NilArgumentError if value is nil, including a nil
// function, channel, pointer, slice, or map boxed in a non-nil interface.
func ensureNotNil(value any, name string) {
	if value == nil {
		panic(&NilArgumentError{Name: name})
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		if rv.IsNil() {
			panic(&NilArgumentError{Name: name})
		}

	default:
	}
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// Error implements error.
func (e *NilArgumentError) Error() string {
	return "nil argument: " + e.Name
}
