// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"reflect"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/ygrebnov/errorc"
)

// Func is a function that arguments can be bound to.
//
// A Func can take any number of parameters, including a final variadic
// parameter, and return any number of values. If the final return value
// is of type error, a non-nil value is reported by Result.Err.
//
// Binding
//
// Bind and CallOnceBind take one bind-time argument per parameter (for
// a variadic function, at least one per non-variadic parameter). Each
// argument is one of:
//
//   * A Placeholder, such as P1 or P(7). When the Bound is called, the
//     placeholder is replaced by the eventual argument at that position.
//     Earlier arguments are skipped and later ones are ignored.
//
//   * A *Bound. When the outer Bound is called, the nested one is called
//     with the full list of eventual arguments and its result is passed.
//     The nested function must return exactly one value, optionally
//     followed by an error.
//
//   * Any other value, a literal. Literals are checked against the
//     parameter type when binding and passed on every call.
//
// Moving
//
// An eventual argument referenced by exactly one placeholder across the
// expression, nested expressions included, is move-eligible: if it
// implements Movable, Move is called and its result is passed. An argument
// referenced more than once is passed as-is to every position.
type Func struct {
	fn     reflect.Value
	name   string
	logger hclog.Logger
}

// NewFunc creates a new Func from the given input function f.
func NewFunc(f interface{}, opts ...Option) (*Func, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	fv := reflect.ValueOf(f)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, errorc.With(
			ErrNotFunc,
			errorc.Field(ErrorFieldActual, typeName(fv)),
		)
	}

	return &Func{
		fn:     fv,
		name:   o.name,
		logger: o.logger,
	}, nil
}

// Func returns the function pointer that this Func is built around.
func (f *Func) Func() interface{} {
	return f.fn.Interface()
}

// Name returns the name of the function.
//
// This will return the configured name if one was given on NewFunc. If not,
// this will attempt to look up the function name using the pointer. If
// no friendly name can be found, then this will default to the function
// type signature.
func (f *Func) Name() string {
	name := f.name

	if name == "" {
		if rfunc := runtime.FuncForPC(f.fn.Pointer()); rfunc != nil {
			name = rfunc.Name()
		}

		if name == "" {
			name = f.fn.Type().String()
		}
	}

	return name
}

// String returns the name for this function. See Name.
func (f *Func) String() string {
	return f.Name()
}

// accepts reports whether the function can be called with n arguments.
func (f *Func) accepts(n int) bool {
	ft := f.fn.Type()
	if ft.IsVariadic() {
		return n >= ft.NumIn()-1
	}

	return n == ft.NumIn()
}

// param returns the type of the i'th argument of a call. Arguments past
// the last fixed parameter of a variadic function have the element type.
func (f *Func) param(i int) reflect.Type {
	ft := f.fn.Type()
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}

	return ft.In(i)
}

// results returns the non-error result types of the function.
func (f *Func) results() []reflect.Type {
	ft := f.fn.Type()
	numOut := ft.NumOut()
	if numOut >= 1 && ft.Out(numOut-1) == errType {
		numOut--
	}

	result := make([]reflect.Type, numOut)
	for i := range result {
		result[i] = ft.Out(i)
	}

	return result
}

// errType is used for comparison in results and Result.Err.
var errType = reflect.TypeOf((*error)(nil)).Elem()
