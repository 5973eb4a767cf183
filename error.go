// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"
)

// Sentinel errors. Errors returned by this package wrap one of these and
// carry the structured fields below; use errors.Is to match.
var (
	ErrNotFunc            = errorc.New("argbind: target must be a function")
	ErrInvalidPlaceholder = errorc.New("argbind: placeholder index must be at least 1")
	ErrArgumentCount      = errorc.New("argbind: wrong number of bind-time arguments")
	ErrArgumentType       = errorc.New("argbind: argument not assignable to parameter")
	ErrNestedResult       = errorc.New("argbind: nested expression must return exactly one value")
	ErrTooFewArguments    = errorc.New("argbind: too few arguments for referenced placeholder")
	ErrResultType         = errorc.New("argbind: result not assignable to requested type")

	// ErrAlreadyMoved guards the invariant that an eventual argument is
	// moved at most once per call. Move eligibility requires a single
	// placeholder occurrence across the whole expression, so no sequence
	// of public calls produces it.
	ErrAlreadyMoved = errorc.New("argbind: argument already moved")
)

// Structured error field keys.
const (
	ErrorFieldFunc        = "argbind.func"
	ErrorFieldPosition    = "argbind.position"
	ErrorFieldPlaceholder = "argbind.placeholder"
	ErrorFieldExpected    = "argbind.expected"
	ErrorFieldActual      = "argbind.actual"
)

// ErrArity is returned from Call when the eventual call supplies fewer
// arguments than the highest placeholder referenced by the expression
// (including nested expressions) requires. The function is never called
// in this case.
type ErrArity struct {
	// Bound is the expression that was called.
	Bound *Bound

	// Required is the number of arguments the expression needs.
	Required int

	// Given is the number of arguments the call supplied.
	Given int

	// Missing are the referenced placeholders that had no argument.
	Missing []Placeholder
}

func (e *ErrArity) Error() string {
	missing := new(bytes.Buffer)
	for _, p := range e.Missing {
		fmt.Fprintf(missing, "    - %s\n", p)
	}

	slots := new(bytes.Buffer)
	for _, info := range e.Bound.Slots() {
		fmt.Fprintf(slots, "    - %d: %s\n", info.Position, info.String())
	}

	return fmt.Sprintf(`
Bound call to function %q has too few arguments!

The expression refers to %d eventual argument(s) but the call supplied %d.
A complete error description is below for debugging.

==> Placeholders without an argument

%s

==> Bind-time arguments
    This is the list of arguments the function is called with. Nested
    expressions receive the full list of eventual arguments.

%s
`,
		e.Bound.Target().Name(),
		e.Required,
		e.Given,
		strings.TrimSuffix(missing.String(), "\n"),
		strings.TrimSuffix(slots.String(), "\n"),
	)
}

// Unwrap makes ErrArity match ErrTooFewArguments with errors.Is.
func (e *ErrArity) Unwrap() error { return ErrTooFewArguments }

var _ error = (*ErrArity)(nil)

// typeError reports that the value at position could not be passed as
// a parameter of type expected.
func typeError(f *Func, position int, expected, actual string) error {
	return errorc.With(
		ErrArgumentType,
		errorc.Field(ErrorFieldFunc, f.Name()),
		errorc.Field(ErrorFieldPosition, strconv.Itoa(position)),
		errorc.Field(ErrorFieldExpected, expected),
		errorc.Field(ErrorFieldActual, actual),
	)
}
