// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package ir holds the expression nodes of the tensor-program intermediate
// representation, and the attribute-record interface that ties a typed
// configuration record to an operator invocation.
//
// Nodes are immutable after construction and structurally shared across the
// graph and across compiler passes; no pass may mutate a node it did not
// just create.
package ir

import (
	"fmt"
)

// Expr is a node in the IR graph. It is a closed interface: the
// implementations are Var and Call.
type Expr interface {
	fmt.Stringer

	expr()
}

// Var is a named leaf expression, the usual source of operand tensors
// (data, weights, biases, offsets) fed into Call expressions.
type Var struct {
	nameHint string
}

// NewVar creates a variable with the given name hint. The hint is for
// diagnostics only and carries no identity: two vars with the same hint are
// still distinct nodes.
func NewVar(nameHint string) *Var {
	return &Var{nameHint: nameHint}
}

func (*Var) expr() {}

// NameHint returns the diagnostic name given at construction.
func (v *Var) NameHint() string { return v.nameHint }

func (v *Var) String() string { return "%" + v.nameHint }
