// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import "reflect"

// Movable is implemented by values that can hand over their ownership.
//
// Move returns the value to pass on to the bound function and leaves the
// receiver in its moved-from state. It is called when an eventual argument
// is referenced by exactly one placeholder across a bound expression, and
// for literals captured with CallOnceBind. Values referenced more than once
// are passed as-is and Move is never called on them.
type Movable interface {
	Move() interface{}
}

// moveValue calls Move on v if it implements Movable. The second return
// value reports whether a move happened.
func moveValue(v reflect.Value) (reflect.Value, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return v, false
	}

	m, ok := v.Interface().(Movable)
	if !ok {
		return v, false
	}

	return reflect.ValueOf(m.Move()), true
}
