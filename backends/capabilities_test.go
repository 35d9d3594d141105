// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package backends_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moderato/relay/backends"
)

func TestEnabled(t *testing.T) {
	// The host CPU backend is always compiled in; accelerator backends only
	// behind their build tags (absent in this test build).
	assert.True(t, backends.Enabled(backends.LLVM))
	assert.False(t, backends.Enabled(backends.CUDA))
	assert.False(t, backends.Enabled(backends.CuDNN))
}

func TestCompiledIsACopy(t *testing.T) {
	capabilities := backends.Compiled()
	capabilities[backends.Metal] = true
	assert.False(t, backends.Enabled(backends.Metal))
	assert.NotEqual(t, capabilities, backends.Compiled())
}

func TestTargets(t *testing.T) {
	set := backends.Capabilities{backends.OpenCL: true, backends.CUDA: true, backends.Metal: false}
	assert.Equal(t, []backends.Target{backends.CUDA, backends.OpenCL}, set.Targets())

	clone := set.Clone()
	clone[backends.Metal] = true
	assert.False(t, set[backends.Metal])
}
