// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package backends records which codegen backends were compiled into this
// build.
//
// The capability set is the Go rendition of build-time backend flags: a
// backend's build-tag-gated file flips its flag at init, and lowering
// queries the frozen set to decide which implementations exist for a given
// operator. The IR builders never consume these flags; an absent backend
// makes lowering fail, not graph construction.
package backends

import (
	"maps"
	"slices"
	"sync"

	"k8s.io/klog/v2"
)

// Target names a codegen backend or vendor math library.
type Target string

const (
	LLVM   Target = "llvm"
	CUDA   Target = "cuda"
	CuDNN  Target = "cudnn"
	CuBLAS Target = "cublas"
	OpenCL Target = "opencl"
	Metal  Target = "metal"
)

// Capabilities maps targets to whether their codegen was compiled in.
// Targets not listed are not compiled in.
type Capabilities map[Target]bool

// Clone returns a deep copy of the capability set.
func (c Capabilities) Clone() Capabilities {
	c2 := make(Capabilities, len(c))
	maps.Copy(c2, c)
	return c2
}

// Targets returns the sorted enabled targets.
func (c Capabilities) Targets() []Target {
	targets := make([]Target, 0, len(c))
	for target, enabled := range c {
		if enabled {
			targets = append(targets, target)
		}
	}
	slices.Sort(targets)
	return targets
}

var (
	// compiled is written only by init-time Register calls; the host CPU
	// backend is always present.
	compiled = Capabilities{LLVM: true}

	logOnce sync.Once
)

// Register marks target as compiled in. Called from init() of
// build-tag-gated backend files only; never after initialization.
func Register(target Target) {
	compiled[target] = true
}

// Enabled reports whether target's codegen was compiled into this build.
func Enabled(target Target) bool {
	logCompiled()
	return compiled[target]
}

// Compiled returns a copy of the full compiled-in capability set.
func Compiled() Capabilities {
	logCompiled()
	return compiled.Clone()
}

func logCompiled() {
	logOnce.Do(func() {
		klog.V(2).Infof("compiled-in backends: %v", compiled.Targets())
	})
}
