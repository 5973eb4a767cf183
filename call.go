// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"reflect"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/ygrebnov/errorc"
)

// Call calls the bound function with the given eventual arguments.
//
// Every slot is resolved in order before the function is called. If the
// call supplies fewer arguments than the highest referenced placeholder,
// the Result holds an *ErrArity. Arguments beyond the highest placeholder
// are ignored.
func (b *Bound) Call(args ...interface{}) Result {
	if len(args) < b.arity {
		var missing []Placeholder
		for i := len(args) + 1; i <= b.arity; i++ {
			if b.uses[i] > 0 {
				missing = append(missing, P(i))
			}
		}

		return resultError(&ErrArity{
			Bound:    b,
			Required: b.arity,
			Given:    len(args),
			Missing:  missing,
		})
	}

	return b.call(newCallState(b, args))
}

// call resolves every slot against the state and calls the function.
func (b *Bound) call(st *callState) Result {
	log := st.log

	in := make([]reflect.Value, len(b.slots))
	for i, s := range b.slots {
		v, err := s.resolve(st)
		if err != nil {
			return resultError(err)
		}

		in[i] = v
	}

	if log.IsTrace() {
		for i, arg := range in {
			log.Trace("argument", "idx", i, "value", arg.Interface())
		}
	}

	return Result{out: b.fn.fn.Call(in)}
}

// callState is the shared state for the execution of a single call,
// including the calls of nested expressions.
type callState struct {
	// fn is the function whose slots are being resolved.
	fn *Func

	// args are the eventual arguments. An untyped nil is the invalid Value.
	args []reflect.Value

	// moved records which eventual arguments were handed over.
	moved []bool

	// uses is the occurrence table of the outermost expression. It
	// decides move eligibility for nested expressions too.
	uses []int

	log hclog.Logger
}

func newCallState(b *Bound, args []interface{}) *callState {
	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		values[i] = reflect.ValueOf(arg)
	}

	return &callState{
		fn:    b.fn,
		args:  values,
		moved: make([]bool, len(args)),
		uses:  b.uses,
		log:   b.logger.With("func", b.fn.Name()),
	}
}

// nested returns the state for resolving the slots of a nested
// expression. Arguments and move tracking are shared.
func (st *callState) nested(fn *Func) *callState {
	c := *st
	c.fn = fn
	c.log = st.log.With("nested", fn.Name())
	return &c
}

// arg returns eventual argument p. If move is set and p occurs exactly once
// in the outermost expression, a Movable argument is moved. An argument
// can only be moved once per call.
//
// The ErrAlreadyMoved check is an assertion: tabulate marks a slot
// move-eligible only when its placeholder occurs once, so Call never asks
// for a second move of the same argument.
func (st *callState) arg(p Placeholder, move bool) (reflect.Value, error) {
	i := p.Index() - 1
	if i >= len(st.args) {
		return reflect.Value{}, errorc.With(
			ErrTooFewArguments,
			errorc.Field(ErrorFieldFunc, st.fn.Name()),
			errorc.Field(ErrorFieldPlaceholder, p.String()),
			errorc.Field(ErrorFieldActual, strconv.Itoa(len(st.args))),
		)
	}

	v := st.args[i]
	if !move || p.Index() >= len(st.uses) || st.uses[p.Index()] != 1 {
		return v, nil
	}

	if st.moved[i] {
		st.log.Error("argument moved twice", "placeholder", p.String())
		return reflect.Value{}, errorc.With(
			ErrAlreadyMoved,
			errorc.Field(ErrorFieldFunc, st.fn.Name()),
			errorc.Field(ErrorFieldPlaceholder, p.String()),
		)
	}
	st.moved[i] = true

	if moved, ok := moveValue(v); ok {
		st.log.Trace("moved argument", "placeholder", p.String())
		return moved, nil
	}

	return v, nil
}
