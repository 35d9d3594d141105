// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

//go:build cuda

package backends

func init() {
	Register(CUDA)
	Register(CuBLAS)
}
