// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package op

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrUnregistered is returned by Get when no operator is registered under
// the requested name. Use errors.Is to test for it.
var ErrUnregistered = errors.New("operator not registered")

var (
	registry = make(map[string]*Operator)

	// frozen is set by the first lookup. Registration is an init-time,
	// single-goroutine phase; once lookups start, the table is read-only
	// and lookups are plain (unsynchronized) map reads.
	frozen atomic.Bool
)

// Register adds an operator to the process-wide registry and returns it, so
// registrations can be assigned to package-level variables.
//
// Register must be called during package initialization, before any Get.
// A duplicate name, an empty name, or a registration after lookups have
// started is a programming error and panics.
func Register(operator *Operator) *Operator {
	if operator.Name == "" {
		exceptions.Panicf("op.Register: operator name must not be empty")
	}
	if frozen.Load() {
		exceptions.Panicf("op.Register(%q): registry is already in use; operators must be registered during package initialization", operator.Name)
	}
	if _, found := registry[operator.Name]; found {
		exceptions.Panicf("op.Register(%q): an operator with that name is already registered", operator.Name)
	}
	registry[operator.Name] = operator
	klog.V(1).Infof("registered operator %q (%d inputs)", operator.Name, operator.NumInputs)
	return operator
}

// Get returns the operator registered under name.
//
// The returned pointer is stable for the process lifetime: callers hold it
// without copying, and operator equality is pointer identity. An unknown
// name returns an error wrapping ErrUnregistered.
//
// Get is safe for unlimited concurrent use.
func Get(name string) (*Operator, error) {
	if !frozen.Load() {
		frozen.Store(true)
	}
	operator, found := registry[name]
	if !found {
		return nil, errors.Wrapf(ErrUnregistered, "operator %q", name)
	}
	return operator, nil
}

// MustGet is like Get but panics on unknown names. For init-time wiring and
// tests.
func MustGet(name string) *Operator {
	operator, err := Get(name)
	if err != nil {
		exceptions.Panicf("op.MustGet: %+v", err)
	}
	return operator
}

// Registered returns the sorted names of all registered operators.
func Registered() []string {
	return slices.Sorted(maps.Keys(registry))
}
