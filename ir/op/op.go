// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package op defines operator descriptors and the process-wide operator
// registry.
//
// An Operator is the identity a Call expression is bound to: type relations,
// optimization rules and lowering all dispatch on it. Operators are
// registered once, during package initialization, and looked up by name for
// the rest of the process lifetime. The registry is frozen after the first
// lookup, so concurrent lookups never need synchronization.
package op

// ArgInfo documents one operand of an operator, in positional order.
type ArgInfo struct {
	Name        string
	Description string
}

// Operator describes a registered operator. The descriptor is shared: every
// Call expression invoking the operator holds the same *Operator, and
// downstream passes compare operators by pointer identity.
//
// Operators are immutable once registered.
type Operator struct {
	// Name is the canonical, namespaced operator name, e.g. "nn.conv2d".
	// Names are opaque and case-sensitive.
	Name string

	// Description is a human-readable summary used in diagnostics and docs.
	Description string

	// NumInputs is the fixed operand count of the operator.
	NumInputs int

	// Arguments documents each operand, in the positional order every Call
	// to this operator must follow.
	Arguments []ArgInfo

	// SupportLevel ranks how established the operator is (1 = core, higher
	// is more experimental). Informational only.
	SupportLevel int

	// AttrsTypeKey is the type key of the attribute record variant that
	// Calls to this operator carry.
	AttrsTypeKey string
}

func (o *Operator) String() string { return o.Name }
