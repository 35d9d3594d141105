// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strings"

	"github.com/moderato/relay/ir/op"
)

// Attrs is implemented by every operator attribute record: the immutable,
// typed configuration a Call expression carries alongside its operands.
//
// Passes dispatch on TypeKey (or type-switch on the concrete record), never
// mutate a record, and may assume the record variant matches the operator
// the Call is bound to.
type Attrs interface {
	// TypeKey tags the record variant, e.g. "relay.attrs.Conv2DAttrs".
	TypeKey() string

	// String renders the record for diagnostics.
	String() string
}

// Call is the invocation of an operator over an ordered list of operand
// expressions, configured by one attribute record.
//
// A Call exclusively owns its attribute record and holds a non-owning
// reference to its operator (the registry's shared descriptor). The operand
// order is fixed per operator and must never be reordered downstream.
type Call struct {
	operator *op.Operator
	attrs    Attrs
	args     []Expr
}

// NewCall assembles a Call from an already-resolved operator, an attribute
// record and the operand expressions. Ownership of attrs and args transfers
// to the Call; callers must not modify them afterwards.
//
// NewCall performs no validation: builders resolve the operator and check
// whatever their variant requires before assembly.
func NewCall(operator *op.Operator, attrs Attrs, args ...Expr) *Call {
	return &Call{operator: operator, attrs: attrs, args: args}
}

func (*Call) expr() {}

// Operator returns the shared operator descriptor this call is bound to.
func (c *Call) Operator() *op.Operator { return c.operator }

// Attrs returns the attribute record owned by this call.
func (c *Call) Attrs() Attrs { return c.attrs }

// Args returns the operand expressions in their fixed positional order.
// The returned slice is owned by the Call and must not be modified.
func (c *Call) Args() []Expr { return c.args }

// NumArgs returns the operand count.
func (c *Call) NumArgs() int { return len(c.args) }

func (c *Call) String() string {
	parts := make([]string, len(c.args))
	for ii, arg := range c.args {
		parts[ii] = arg.String()
	}
	return c.operator.Name + "(" + strings.Join(parts, ", ") + ")"
}
