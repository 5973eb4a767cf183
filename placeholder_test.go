// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	require := require.New(t)

	require.Equal([]int{1, 2, 3, 4}, []int{P1.Index(), P2.Index(), P3.Index(), P4.Index()})
	require.Equal(P3, P(3))
	require.Equal("_12", P(12).String())

	require.True(P1.valid())
	require.False(P(0).valid())
	require.False(P(-1).valid())
}
