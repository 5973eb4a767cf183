// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import "strconv"

// Placeholder marks a bind-time argument that is substituted with the Nth
// (1-indexed) argument of the eventual call. Only values >= 1 are valid.
type Placeholder int

// Predeclared placeholders. Use P for indexes beyond four.
const (
	P1 Placeholder = iota + 1
	P2
	P3
	P4
)

// P returns the placeholder for the nth eventual argument.
func P(n int) Placeholder { return Placeholder(n) }

// Index returns the 1-based position this placeholder refers to.
func (p Placeholder) Index() int { return int(p) }

func (p Placeholder) valid() bool { return p >= 1 }

func (p Placeholder) String() string { return "_" + strconv.Itoa(int(p)) }
