// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/ygrebnov/errorc"
)

// Bound is a function together with its bind-time arguments. Create one
// with Bind, CallOnceBind or the methods of the same name on Func, then
// invoke it with Call.
//
// The structure of a Bound never changes after binding. A Bound created
// with Bind is safe for concurrent use if the function and the literals
// are safe for concurrent reads. A Bound created with CallOnceBind may move
// its literals and must not be called concurrently.
type Bound struct {
	fn    *Func
	slots []slot

	// uses is the number of placeholder occurrences per index across the
	// expression tree. Index 0 is unused.
	uses []int

	// arity is the highest placeholder index referenced, nested
	// expressions included.
	arity int

	once   bool
	logger hclog.Logger
}

// Bind binds args to the function f. See Func for the kinds of arguments.
//
// Literals are captured as persistent copies and the same value is passed
// on every call. Nested expressions are copied, so later changes to the
// nested Bound do not affect the result.
func Bind(f interface{}, args ...interface{}) (*Bound, error) {
	fn, err := NewFunc(f)
	if err != nil {
		return nil, err
	}

	return fn.Bind(args...)
}

// CallOnceBind is like Bind but captures literals with move intent. A
// literal that implements Movable is moved out each time it is resolved,
// so the expression is intended to be called at most once. Nested
// expressions are taken over rather than copied.
func CallOnceBind(f interface{}, args ...interface{}) (*Bound, error) {
	fn, err := NewFunc(f)
	if err != nil {
		return nil, err
	}

	return fn.CallOnceBind(args...)
}

// MustBind is like Bind but panics if binding fails.
func MustBind(f interface{}, args ...interface{}) *Bound {
	b, err := Bind(f, args...)
	if err != nil {
		panic(err)
	}

	return b
}

// Bind binds args to this function. See the package-level Bind.
func (f *Func) Bind(args ...interface{}) (*Bound, error) {
	return f.bind(args, false)
}

// CallOnceBind binds args to this function with move intent. See the
// package-level CallOnceBind.
func (f *Func) CallOnceBind(args ...interface{}) (*Bound, error) {
	return f.bind(args, true)
}

func (f *Func) bind(args []interface{}, once bool) (*Bound, error) {
	if !f.accepts(len(args)) {
		expected := strconv.Itoa(f.fn.Type().NumIn())
		if f.fn.Type().IsVariadic() {
			expected = "at least " + strconv.Itoa(f.fn.Type().NumIn()-1)
		}

		return nil, errorc.With(
			ErrArgumentCount,
			errorc.Field(ErrorFieldFunc, f.Name()),
			errorc.Field(ErrorFieldExpected, expected),
			errorc.Field(ErrorFieldActual, strconv.Itoa(len(args))),
		)
	}

	b := &Bound{
		fn:     f,
		slots:  make([]slot, len(args)),
		once:   once,
		logger: f.logger,
	}

	// Check every argument so that all problems are reported at once.
	var err error
	for i, raw := range args {
		s, serr := f.newSlot(i, raw, once)
		if serr != nil {
			err = multierror.Append(err, serr)
			continue
		}

		b.slots[i] = s
	}
	if err != nil {
		return nil, err
	}

	b.tabulate()
	return b, nil
}

// newSlot builds the slot for the bind-time argument raw at position pos.
func (f *Func) newSlot(pos int, raw interface{}, once bool) (slot, error) {
	typ := f.param(pos)

	switch v := raw.(type) {
	case Placeholder:
		if !v.valid() {
			return nil, errorc.With(
				ErrInvalidPlaceholder,
				errorc.Field(ErrorFieldFunc, f.Name()),
				errorc.Field(ErrorFieldPosition, strconv.Itoa(pos)),
				errorc.Field(ErrorFieldPlaceholder, strconv.Itoa(int(v))),
			)
		}

		return &placeholderSlot{pos: pos, typ: typ, index: v}, nil

	case *Bound:
		if v != nil {
			return f.newNestedSlot(pos, typ, v, once)
		}
	}

	rv := reflect.ValueOf(raw)
	value, ok := assign(rv, typ)
	if !ok {
		return nil, typeError(f, pos, typ.String(), typeName(rv))
	}

	return &literalSlot{pos: pos, typ: typ, value: value, move: once}, nil
}

func (f *Func) newNestedSlot(pos int, typ reflect.Type, expr *Bound, once bool) (slot, error) {
	results := expr.fn.results()
	if len(results) != 1 {
		return nil, errorc.With(
			ErrNestedResult,
			errorc.Field(ErrorFieldFunc, expr.fn.Name()),
			errorc.Field(ErrorFieldPosition, strconv.Itoa(pos)),
			errorc.Field(ErrorFieldActual, strconv.Itoa(len(results))),
		)
	}

	if !assignableType(results[0], typ) {
		return nil, typeError(f, pos, typ.String(), results[0].String())
	}

	if !once {
		expr = expr.clone()
	}

	return &nestedSlot{pos: pos, typ: typ, expr: expr}, nil
}

// clone returns a deep copy of the expression structure. Literal values
// are copied by assignment.
func (b *Bound) clone() *Bound {
	c := *b
	c.slots = make([]slot, len(b.slots))
	for i, s := range b.slots {
		c.slots[i] = s.clone()
	}
	c.uses = append([]int(nil), b.uses...)
	return &c
}

// Target returns the function this expression calls.
func (b *Bound) Target() *Func { return b.fn }

// Arity returns the minimum number of arguments Call requires.
func (b *Bound) Arity() int { return b.arity }

// Once reports whether the expression was created with CallOnceBind.
func (b *Bound) Once() bool { return b.once }

// Slots describes the bind-time arguments in parameter order.
func (b *Bound) Slots() []SlotInfo {
	result := make([]SlotInfo, len(b.slots))
	for i, s := range b.slots {
		result[i] = s.info()
	}

	return result
}

// String renders the expression, e.g. "main.sub(_2, _1)".
func (b *Bound) String() string {
	args := make([]string, len(b.slots))
	for i, info := range b.Slots() {
		args[i] = info.String()
	}

	return b.fn.Name() + "(" + strings.Join(args, ", ") + ")"
}

// Func returns the expression as a plain function. The function returns
// the first result of the bound function (nil if there is none) and the
// error from Result.Err.
func (b *Bound) Func() func(args ...interface{}) (interface{}, error) {
	hasResult := len(b.fn.results()) > 0
	return func(args ...interface{}) (interface{}, error) {
		r := b.Call(args...)
		if err := r.Err(); err != nil {
			return nil, err
		}

		if !hasResult {
			return nil, nil
		}

		return r.Out(0), nil
	}
}

// Call calls b and returns its first result as an R. Numeric results are
// converted to a numeric R. If the function has no results other than an
// error, the zero R is returned.
func Call[R any](b *Bound, args ...interface{}) (R, error) {
	var zero R

	r := b.Call(args...)
	if err := r.Err(); err != nil {
		return zero, err
	}

	if len(b.fn.results()) == 0 {
		return zero, nil
	}

	target := reflect.TypeOf((*R)(nil)).Elem()
	v, ok := assign(r.out[0], target)
	if !ok {
		return zero, errorc.With(
			ErrResultType,
			errorc.Field(ErrorFieldFunc, b.fn.Name()),
			errorc.Field(ErrorFieldExpected, target.String()),
			errorc.Field(ErrorFieldActual, typeName(r.out[0])),
		)
	}

	out, _ := v.Interface().(R)
	return out, nil
}
