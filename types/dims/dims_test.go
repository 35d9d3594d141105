// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package dims_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moderato/relay/types/dims"
)

func TestConsts(t *testing.T) {
	exprs := dims.Consts(1, 2, 3)
	assert.Equal(t, []dims.Expr{dims.Const(1), dims.Const(2), dims.Const(3)}, exprs)

	// Any integer type works.
	assert.Equal(t, []dims.Expr{dims.Const(7)}, dims.Consts(int64(7)))
	assert.Empty(t, dims.Consts[int]())
}

func TestString(t *testing.T) {
	assert.Equal(t, "3", dims.Const(3).String())
	assert.Equal(t, "batch", dims.Symbol("batch").String())
	assert.Equal(t, "[1, batch, 3]",
		dims.Format([]dims.Expr{dims.Const(1), dims.Symbol("batch"), dims.Const(3)}))
	assert.Equal(t, "[]", dims.Format(nil))
}

func TestComparable(t *testing.T) {
	assert.True(t, dims.Const(2) == dims.Const(2))
	assert.True(t, dims.Symbol("n") == dims.Symbol("n"))
	var a, b dims.Expr = dims.Const(2), dims.Symbol("2")
	assert.NotEqual(t, a, b)
}
