// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package nn builds invocations of the neural-network operators: it defines
// the convolution attribute-record family and the construction functions
// that assemble Call expressions from raw configuration parameters.
//
// The operator family itself is registered here at package initialization;
// builders then resolve operators by name, so a frontend can target
// specialized variants (winograd, gemm) by supplying the variant's
// registered name.
package nn

import (
	"github.com/moderato/relay/ir/op"
)

// Registered names of the 2D convolution operator family. Names are the
// protocol between builders and every pass that dispatches on operator
// identity; they are opaque, case-sensitive and namespaced.
const (
	Conv2DOp           = "nn.conv2d"
	Conv2DWinogradOp   = "nn.contrib_conv2d_winograd_without_weight_transform"
	Conv2DGemmOp       = "nn.contrib_conv2d_gemm_without_weight_transform"
	Conv2DTransposeOp  = "nn.conv2d_transpose"
	DeformableConv2DOp = "nn.deformable_conv2d"
	FusedConv2DOp      = "nn.fused_conv2d"
)

func init() {
	dataWeight := []op.ArgInfo{
		{Name: "data", Description: "The input tensor."},
		{Name: "weight", Description: "The weight tensor."},
	}

	op.Register(&op.Operator{
		Name:         Conv2DOp,
		Description:  "2D convolution of data with a kernel.",
		NumInputs:    2,
		Arguments:    dataWeight,
		SupportLevel: 2,
		AttrsTypeKey: new(Conv2DAttrs).TypeKey(),
	})
	op.Register(&op.Operator{
		Name:         Conv2DWinogradOp,
		Description:  "2D convolution using the Winograd algorithm, on an already weight-transformed kernel.",
		NumInputs:    2,
		Arguments:    dataWeight,
		SupportLevel: 10,
		AttrsTypeKey: new(Conv2DWinogradAttrs).TypeKey(),
	})
	op.Register(&op.Operator{
		Name:         Conv2DGemmOp,
		Description:  "2D convolution lowered to matrix multiplication, on an already weight-transformed kernel.",
		NumInputs:    2,
		Arguments:    dataWeight,
		SupportLevel: 10,
		AttrsTypeKey: new(Conv2DGemmAttrs).TypeKey(),
	})
	op.Register(&op.Operator{
		Name:         Conv2DTransposeOp,
		Description:  "Transposed 2D convolution, aka. deconvolution.",
		NumInputs:    2,
		Arguments:    dataWeight,
		SupportLevel: 2,
		AttrsTypeKey: new(Conv2DTransposeAttrs).TypeKey(),
	})
	op.Register(&op.Operator{
		Name:        DeformableConv2DOp,
		Description: "2D convolution sampling the input at offsets learned per output location.",
		NumInputs:   3,
		Arguments: []op.ArgInfo{
			{Name: "data", Description: "The input tensor."},
			{Name: "offset", Description: "The sampling offset tensor."},
			{Name: "weight", Description: "The weight tensor."},
		},
		SupportLevel: 5,
		AttrsTypeKey: new(DeformableConv2DAttrs).TypeKey(),
	})
	op.Register(&op.Operator{
		Name:        FusedConv2DOp,
		Description: "Two chained 2D convolutions fused into one operator, each followed by a post-operation.",
		NumInputs:   5,
		Arguments: []op.ArgInfo{
			{Name: "data", Description: "The input tensor."},
			{Name: "weight1", Description: "The first layer's weight tensor."},
			{Name: "bias1", Description: "The first layer's bias tensor."},
			{Name: "weight2", Description: "The second layer's weight tensor."},
			{Name: "bias2", Description: "The second layer's bias tensor."},
		},
		SupportLevel: 10,
		AttrsTypeKey: new(FusedConv2DAttrs).TypeKey(),
	})
}
