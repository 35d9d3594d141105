// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package op

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRegistry swaps in an empty, unfrozen registry for one test.
func resetRegistry(t *testing.T) {
	saved := registry
	savedFrozen := frozen.Load()
	registry = make(map[string]*Operator)
	frozen.Store(false)
	t.Cleanup(func() {
		registry = saved
		frozen.Store(savedFrozen)
	})
}

func TestRegisterAndGet(t *testing.T) {
	resetRegistry(t)
	registered := Register(&Operator{Name: "test.conv", NumInputs: 2})

	got, err := Get("test.conv")
	require.NoError(t, err)
	assert.Same(t, registered, got, "Get must return the registered descriptor itself, not a copy")

	// Repeated lookups return the same reference.
	again, err := Get("test.conv")
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestGetUnregistered(t *testing.T) {
	resetRegistry(t)
	operator, err := Get("nonexistent.op")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnregistered))
	assert.Contains(t, err.Error(), "nonexistent.op")
	assert.Nil(t, operator)
}

func TestRegisterMisusePanics(t *testing.T) {
	resetRegistry(t)
	Register(&Operator{Name: "test.dup"})
	assert.Panics(t, func() { Register(&Operator{Name: "test.dup"}) })
	assert.Panics(t, func() { Register(&Operator{}) })
}

func TestRegisterAfterLookupPanics(t *testing.T) {
	resetRegistry(t)
	Register(&Operator{Name: "test.early"})
	_, _ = Get("test.early")
	assert.Panics(t, func() { Register(&Operator{Name: "test.late"}) })
}

func TestMustGet(t *testing.T) {
	resetRegistry(t)
	registered := Register(&Operator{Name: "test.must"})
	assert.Same(t, registered, MustGet("test.must"))
	assert.Panics(t, func() { MustGet("test.missing") })
}

func TestRegistered(t *testing.T) {
	resetRegistry(t)
	Register(&Operator{Name: "b.op"})
	Register(&Operator{Name: "a.op"})
	assert.Equal(t, []string{"a.op", "b.op"}, Registered())
}

func TestConcurrentGet(t *testing.T) {
	resetRegistry(t)
	registered := Register(&Operator{Name: "test.concurrent"})

	const numGoroutines = 32
	var wg sync.WaitGroup
	results := make([]*Operator, numGoroutines)
	for ii := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[ii], _ = Get("test.concurrent")
		}()
	}
	wg.Wait()
	for _, result := range results {
		assert.Same(t, registered, result)
	}
}
