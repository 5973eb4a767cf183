// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"math"
	"reflect"
)

// assign returns v as a value of exactly type t so that it can be passed
// as a function argument of that type.
//
// Assignable values are used directly. Numeric values are converted
// between numeric kinds only when the value survives unchanged, so that
// untyped constants such as 10 can be bound to an int8 or float64
// parameter while 3.7, 300 (for int8) or -1 (for uint) are rejected. An
// invalid v (from a nil interface) becomes the zero value of t when t is
// nillable.
func assign(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	// Unwrap interface values so the dynamic value is what gets checked.
	if v.IsValid() && v.Kind() == reflect.Interface && v.Type() != t {
		if v.IsNil() {
			v = reflect.Value{}
		} else {
			v = v.Elem()
		}
	}

	if !v.IsValid() {
		if nillable(t.Kind()) {
			return reflect.Zero(t), true
		}

		return reflect.Value{}, false
	}

	vt := v.Type()
	if vt == t {
		return v, true
	}

	if vt.AssignableTo(t) {
		result := reflect.New(t).Elem()
		result.Set(v)
		return result, true
	}

	if numeric(vt.Kind()) && numeric(t.Kind()) {
		return convertExact(v, t)
	}

	return reflect.Value{}, false
}

// convertExact converts the numeric value v to t if the result represents
// the same number.
func convertExact(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !v.Type().ConvertibleTo(t) {
		return reflect.Value{}, false
	}

	// Negative values never fit an unsigned type, and float to integer
	// conversion of out-of-range values is implementation-defined.
	if negative(v) && unsigned(t.Kind()) {
		return reflect.Value{}, false
	}
	if float(v.Kind()) && !float(t.Kind()) {
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return reflect.Value{}, false
		}
		if signed(t.Kind()) && (f < math.MinInt64 || f >= math.MaxInt64) {
			return reflect.Value{}, false
		}
		if unsigned(t.Kind()) && f >= math.MaxUint64 {
			return reflect.Value{}, false
		}
	}

	result := v.Convert(t)
	if negative(result) != negative(v) || !sameNumber(v, result.Convert(v.Type())) {
		return reflect.Value{}, false
	}

	return result, true
}

// assignableType reports whether values of type from can be passed as t
// by assign without checking the value. Numeric types qualify only if
// every value of from converts exactly. Interface types are accepted
// since the dynamic value is only known when a call happens.
func assignableType(from, t reflect.Type) bool {
	switch {
	case from.Kind() == reflect.Interface:
		return true
	case from.AssignableTo(t):
		return true
	case numeric(from.Kind()) && numeric(t.Kind()):
		return widens(from, t)
	}

	return false
}

// widens reports whether every value of the numeric type from is exactly
// representable in the numeric type to.
func widens(from, to reflect.Type) bool {
	fk, tk := from.Kind(), to.Kind()
	switch {
	case signed(fk):
		switch {
		case signed(tk):
			return to.Bits() >= from.Bits()
		case float(tk):
			return from.Bits() <= mantissa(to)
		}

	case unsigned(fk):
		switch {
		case unsigned(tk):
			return to.Bits() >= from.Bits()
		case signed(tk):
			return to.Bits() > from.Bits()
		case float(tk):
			return from.Bits() <= mantissa(to)
		}

	case float(fk):
		return float(tk) && to.Bits() >= from.Bits()
	}

	return false
}

// mantissa returns the number of significand bits of a float type,
// including the implicit bit.
func mantissa(t reflect.Type) int {
	if t.Kind() == reflect.Float32 {
		return 24
	}

	return 53
}

func negative(v reflect.Value) bool {
	switch {
	case signed(v.Kind()):
		return v.Int() < 0
	case float(v.Kind()):
		return v.Float() < 0
	}

	return false
}

func sameNumber(a, b reflect.Value) bool {
	switch {
	case signed(a.Kind()):
		return a.Int() == b.Int()
	case unsigned(a.Kind()):
		return a.Uint() == b.Uint()
	case float(a.Kind()):
		fa, fb := a.Float(), b.Float()
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}

	return false
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}

	return false
}

func numeric(k reflect.Kind) bool {
	return signed(k) || unsigned(k) || float(k)
}

func signed(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}

	return false
}

func unsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	}

	return false
}

func float(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// typeName returns a printable name for the type of v.
func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return v.Type().String()
}
