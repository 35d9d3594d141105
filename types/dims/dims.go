// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package dims provides symbolic dimension expressions, the vocabulary used
// for tensor extents in operator attributes: strides, padding, dilation and
// kernel sizes are sequences of dims.Expr, and channel counts a single one.
//
// A dimension is either a Const, already concrete at graph construction
// time, or a Symbol, a named extent that only type inference (or runtime)
// resolves. Builders treat both opaquely; nothing here is required to be
// constant-foldable.
package dims

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Expr is a dimension expression. It is a closed interface: the only
// implementations are Const and Symbol.
//
// Expr values are immutable and comparable with ==.
type Expr interface {
	// String returns the dimension in diagnostic form.
	String() string

	dimExpr()
}

// Const is a concrete dimension extent.
type Const int

func (Const) dimExpr() {}

func (c Const) String() string { return strconv.Itoa(int(c)) }

// Symbol is a named symbolic extent, e.g. a batch size unknown until type
// inference binds it.
type Symbol string

func (Symbol) dimExpr() {}

func (s Symbol) String() string { return string(s) }

// Consts converts integers to a sequence of constant dimension expressions.
func Consts[T constraints.Integer](values ...T) []Expr {
	exprs := make([]Expr, len(values))
	for ii, value := range values {
		exprs[ii] = Const(value)
	}
	return exprs
}

// Format renders a sequence of dimension expressions as "[d0, d1, ...]".
func Format(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for ii, expr := range exprs {
		parts[ii] = expr.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
