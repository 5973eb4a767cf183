// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package argbind is a partial-application library for Go.
//
// go-argbind binds a function to a list of bind-time arguments. Each
// argument is either a literal value, a Placeholder standing for a position
// in a future call, or another bound expression. Calling the resulting
// Bound with eventual arguments substitutes those arguments for the
// placeholders, evaluates nested expressions and calls the function:
//
//	sub := func(a, b int) int { return a - b }
//	b := argbind.MustBind(sub, argbind.P2, argbind.P1)
//	v, err := argbind.Call[int](b, 3, 4) // 4 - 3
//
// Values that implement Movable are handed over with Move when exactly one
// placeholder in the whole expression refers to them, and shared otherwise.
// See Bind and CallOnceBind for how literals are captured.
package argbind
