// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	var nilErr error

	cases := []struct {
		Name     string
		Value    interface{}
		Target   interface{}
		Expected interface{}
		OK       bool
	}{
		{
			"identical type",
			42,
			(*int)(nil),
			42,
			true,
		},

		{
			"interface implementation",
			P2,
			(*fmt.Stringer)(nil),
			P2,
			true,
		},

		{
			"numeric widening",
			int32(7),
			(*int64)(nil),
			int64(7),
			true,
		},

		{
			"int to float",
			3,
			(*float64)(nil),
			3.0,
			true,
		},

		{
			"integral float to int",
			3.0,
			(*int)(nil),
			3,
			true,
		},

		{
			"fractional float to int",
			3.7,
			(*int)(nil),
			nil,
			false,
		},

		{
			"int overflowing int8",
			300,
			(*int8)(nil),
			nil,
			false,
		},

		{
			"int fitting int8",
			-100,
			(*int8)(nil),
			int8(-100),
			true,
		},

		{
			"negative int to uint",
			-1,
			(*uint)(nil),
			nil,
			false,
		},

		{
			"uint overflowing int64",
			uint64(math.MaxUint64),
			(*int64)(nil),
			nil,
			false,
		},

		{
			"int beyond float64 precision",
			int64(1<<53 + 1),
			(*float64)(nil),
			nil,
			false,
		},

		{
			"float64 beyond float32 precision",
			0.1,
			(*float32)(nil),
			nil,
			false,
		},

		{
			"float64 exact in float32",
			0.5,
			(*float32)(nil),
			float32(0.5),
			true,
		},

		{
			"float beyond int64 range",
			1e19,
			(*int64)(nil),
			nil,
			false,
		},

		{
			"nil to interface",
			nil,
			(*error)(nil),
			nilErr,
			true,
		},

		{
			"nil to slice",
			nil,
			(*[]int)(nil),
			[]int(nil),
			true,
		},

		{
			"nil to value",
			nil,
			(*int)(nil),
			nil,
			false,
		},

		{
			"string to int",
			"42",
			(*int)(nil),
			nil,
			false,
		},

		{
			"int to string",
			42,
			(*string)(nil),
			nil,
			false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			target := reflect.TypeOf(tt.Target).Elem()
			v, ok := assign(reflect.ValueOf(tt.Value), target)
			require.Equal(tt.OK, ok)
			if !ok {
				return
			}

			require.Equal(target, v.Type())
			require.Equal(tt.Expected, v.Interface())
		})
	}
}

func TestAssign_unwrapsInterface(t *testing.T) {
	require := require.New(t)

	var anyVal interface{} = 5
	v := reflect.ValueOf(&anyVal).Elem()
	require.Equal(reflect.Interface, v.Kind())

	out, ok := assign(v, reflect.TypeOf(0))
	require.True(ok)
	require.Equal(5, out.Interface())

	var e error = errors.New("x")
	ev := reflect.ValueOf(&e).Elem()
	_, ok = assign(ev, reflect.TypeOf(0))
	require.False(ok)
}

func TestAssignableType(t *testing.T) {
	require := require.New(t)

	intType := reflect.TypeOf(0)
	require.True(assignableType(intType, intType))
	require.True(assignableType(reflect.TypeOf(int8(0)), intType))
	require.True(assignableType(reflect.TypeOf((*interface{})(nil)).Elem(), intType))
	require.False(assignableType(reflect.TypeOf(""), intType))
}

func TestAssignableType_numeric(t *testing.T) {
	cases := []struct {
		From interface{}
		To   interface{}
		OK   bool
	}{
		{int32(0), int64(0), true},
		{int(0), int8(0), false},
		{int(0), uint(0), false},
		{int32(0), float64(0), true},
		{int64(0), float64(0), false},
		{int16(0), float32(0), true},
		{int32(0), float32(0), false},
		{uint8(0), uint16(0), true},
		{uint32(0), int64(0), true},
		{uint64(0), int64(0), false},
		{uint32(0), float64(0), true},
		{float32(0), float64(0), true},
		{float64(0), float32(0), false},
		{float64(0), int(0), false},
	}

	for _, tt := range cases {
		from, to := reflect.TypeOf(tt.From), reflect.TypeOf(tt.To)
		t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
			require.Equal(t, tt.OK, assignableType(from, to))
		})
	}
}
