// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrArity(t *testing.T) {
	require := require.New(t)

	f, err := NewFunc(func(a, b, c int) int { return a + b + c }, WithName("sum3"))
	require.NoError(err)

	b, err := f.Bind(P1, 5, MustBind(neg, P4))
	require.NoError(err)

	result := b.Call(1, 2)
	err = result.Err()

	var arityErr *ErrArity
	require.True(errors.As(err, &arityErr))
	require.True(arityErr.Bound == b)
	require.Equal(4, arityErr.Required)
	require.Equal([]Placeholder{P4}, arityErr.Missing)

	msg := err.Error()
	require.Contains(msg, `"sum3"`)
	require.Contains(msg, "refers to 4 eventual argument(s) but the call supplied 2")
	require.Contains(msg, "    - _4")
	require.Contains(msg, "    - 1: 5")
}

func TestErrArgumentType_fields(t *testing.T) {
	require := require.New(t)

	f, err := NewFunc(neg, WithName("neg"))
	require.NoError(err)

	_, err = f.Bind("x")
	require.True(errors.Is(err, ErrArgumentType))
	require.Contains(err.Error(), ErrorFieldFunc+": neg")
	require.Contains(err.Error(), ErrorFieldExpected+": int")
	require.Contains(err.Error(), ErrorFieldActual+": string")
}
