// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/ygrebnov/errorc"
)

// SlotKind is the kind of a bind-time argument.
type SlotKind uint

const (
	SlotInvalid SlotKind = iota
	SlotLiteral
	SlotPlaceholder
	SlotNested
)

func (k SlotKind) String() string {
	switch k {
	case SlotLiteral:
		return "literal"
	case SlotPlaceholder:
		return "placeholder"
	case SlotNested:
		return "nested"
	default:
		return "invalid"
	}
}

// SlotInfo describes one bind-time argument of a Bound.
type SlotInfo struct {
	// Position is the zero-indexed parameter position.
	Position int

	// Kind is the kind of argument bound at Position.
	Kind SlotKind

	// Type is the parameter type at Position.
	Type reflect.Type

	// Placeholder is set for SlotPlaceholder.
	Placeholder Placeholder

	// Move is true for a SlotPlaceholder whose argument is move-eligible,
	// and for a SlotLiteral captured with CallOnceBind.
	Move bool

	// Value is the literal for SlotLiteral.
	Value interface{}

	// Nested is the nested expression for SlotNested.
	Nested *Bound
}

func (i SlotInfo) String() string {
	switch i.Kind {
	case SlotPlaceholder:
		return i.Placeholder.String()
	case SlotNested:
		return i.Nested.String()
	default:
		return fmt.Sprintf("%v", i.Value)
	}
}

// slot resolves a single bind-time argument for each call.
type slot interface {
	// resolve returns the value to pass for this slot given the state
	// of the current call.
	resolve(st *callState) (reflect.Value, error)

	// clone returns a copy that shares no nested expressions.
	clone() slot

	info() SlotInfo
}

// literalSlot passes a value fixed at bind time.
type literalSlot struct {
	pos   int
	typ   reflect.Type
	value reflect.Value

	// move is set by CallOnceBind. A Movable value is moved out on each
	// resolution instead of being shared.
	move bool
}

func (s *literalSlot) resolve(st *callState) (reflect.Value, error) {
	if !s.move {
		return s.value, nil
	}

	v, ok := moveValue(s.value)
	if !ok {
		return s.value, nil
	}

	result, ok := assign(v, s.typ)
	if !ok {
		return reflect.Value{}, typeError(st.fn, s.pos, s.typ.String(), typeName(v))
	}

	return result, nil
}

func (s *literalSlot) clone() slot {
	c := *s
	return &c
}

func (s *literalSlot) info() SlotInfo {
	return SlotInfo{
		Position: s.pos,
		Kind:     SlotLiteral,
		Type:     s.typ,
		Move:     s.move,
		Value:    s.value.Interface(),
	}
}

// placeholderSlot passes an eventual argument.
type placeholderSlot struct {
	pos   int
	typ   reflect.Type
	index Placeholder

	// move is true if index occurs exactly once in the expression this
	// slot was bound in. It is computed by tabulate.
	move bool
}

func (s *placeholderSlot) resolve(st *callState) (reflect.Value, error) {
	v, err := st.arg(s.index, s.move)
	if err != nil {
		return reflect.Value{}, err
	}

	result, ok := assign(v, s.typ)
	if !ok {
		return reflect.Value{}, errorc.With(
			ErrArgumentType,
			errorc.Field(ErrorFieldFunc, st.fn.Name()),
			errorc.Field(ErrorFieldPosition, strconv.Itoa(s.pos)),
			errorc.Field(ErrorFieldPlaceholder, s.index.String()),
			errorc.Field(ErrorFieldExpected, s.typ.String()),
			errorc.Field(ErrorFieldActual, typeName(v)),
		)
	}

	return result, nil
}

func (s *placeholderSlot) clone() slot {
	c := *s
	return &c
}

func (s *placeholderSlot) info() SlotInfo {
	return SlotInfo{
		Position:    s.pos,
		Kind:        SlotPlaceholder,
		Type:        s.typ,
		Placeholder: s.index,
		Move:        s.move,
	}
}

// nestedSlot passes the result of a nested expression.
type nestedSlot struct {
	pos  int
	typ  reflect.Type
	expr *Bound
}

func (s *nestedSlot) resolve(st *callState) (reflect.Value, error) {
	r := s.expr.call(st.nested(s.expr.fn))
	if err := r.Err(); err != nil {
		return reflect.Value{}, err
	}

	v := r.out[0]
	result, ok := assign(v, s.typ)
	if !ok {
		return reflect.Value{}, typeError(st.fn, s.pos, s.typ.String(), typeName(v))
	}

	return result, nil
}

func (s *nestedSlot) clone() slot {
	return &nestedSlot{
		pos:  s.pos,
		typ:  s.typ,
		expr: s.expr.clone(),
	}
}

func (s *nestedSlot) info() SlotInfo {
	return SlotInfo{
		Position: s.pos,
		Kind:     SlotNested,
		Type:     s.typ,
		Nested:   s.expr,
	}
}

var (
	_ slot = (*literalSlot)(nil)
	_ slot = (*placeholderSlot)(nil)
	_ slot = (*nestedSlot)(nil)
)
