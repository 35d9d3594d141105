// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package nn

import (
	"github.com/pkg/errors"

	"github.com/moderato/relay/ir"
	"github.com/moderato/relay/ir/op"
	"github.com/moderato/relay/types/dims"
)

// Construction of convolution Call expressions. Each Make* variant
// populates its attribute record and funnels through makeCall; the
// simple-shaped variants (plain, winograd, gemm) share the Conv2DAttrs
// population and differ only by record type and operator name.
//
// Attribute values are passed by value and boxed here: the heap record is
// allocated once per call and solely owned by the resulting Call. Callers
// must not modify the slices the record references after the call.
//
// Beyond the fused variant's layer-count check, no parameter validation
// happens here: sequence-length-vs-rank, layout consistency and group
// divisibility are the type checker's job.

// ErrArityMismatch is returned when the per-layer arrays of a fused
// convolution disagree with its layer count. Use errors.Is to test for it.
var ErrArityMismatch = errors.New("per-layer arrays disagree on layer count")

// makeCall resolves opName in the operator registry and assembles the Call.
// Fails if the name has no registered operator.
func makeCall(opName string, attrs ir.Attrs, args ...ir.Expr) (*ir.Call, error) {
	operator, err := op.Get(opName)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(operator, attrs, args...), nil
}

// MakeConv2D builds a call to a plain 2D convolution operator over
// operands {data, weight}.
func MakeConv2D(opName string, data, weight ir.Expr, attrs Conv2DAttrs) (*ir.Call, error) {
	return makeCall(opName, &attrs, data, weight)
}

// MakeConv2DWinograd builds a call to a tiled (Winograd) 2D convolution
// operator over operands {data, weight}, with the given Winograd tile size.
func MakeConv2DWinograd(opName string, data, weight ir.Expr, tileSize int, attrs Conv2DAttrs) (*ir.Call, error) {
	return makeCall(opName, &Conv2DWinogradAttrs{TileSize: tileSize, Conv2DAttrs: attrs}, data, weight)
}

// MakeConv2DGemm builds a call to a matrix-multiplication-based 2D
// convolution operator over operands {data, weight}.
func MakeConv2DGemm(opName string, data, weight ir.Expr, attrs Conv2DAttrs) (*ir.Call, error) {
	return makeCall(opName, &Conv2DGemmAttrs{Conv2DAttrs: attrs}, data, weight)
}

// MakeConv2DTranspose builds a call to a transposed 2D convolution operator
// over operands {data, weight}, with a per-spatial-axis output padding.
func MakeConv2DTranspose(opName string, data, weight ir.Expr, outputPadding []dims.Expr, attrs Conv2DAttrs) (*ir.Call, error) {
	return makeCall(opName, &Conv2DTransposeAttrs{Conv2DAttrs: attrs, OutputPadding: outputPadding}, data, weight)
}

// MakeDeformableConv2D builds a call to a deformable 2D convolution
// operator over operands {data, offset, weight}, in that order.
func MakeDeformableConv2D(opName string, data, offset, weight ir.Expr, attrs DeformableConv2DAttrs) (*ir.Call, error) {
	return makeCall(opName, &attrs, data, offset, weight)
}

// MakeFusedConv2D builds a call to a fused two-layer convolution operator
// over operands {data, weight1, bias1, weight2, bias2}, in that order.
//
// Every per-layer array in attrs must have exactly attrs.NumLayers entries;
// a disagreement fails with an error wrapping ErrArityMismatch and no Call
// is constructed. This is the one check owned by the builder, since no
// later pass can attribute the failure to a specific array as cheaply.
func MakeFusedConv2D(opName string, data, weight1, bias1, weight2, bias2 ir.Expr, attrs FusedConv2DAttrs) (*ir.Call, error) {
	if err := attrs.checkLayerArity(); err != nil {
		return nil, err
	}
	return makeCall(opName, &attrs, data, weight1, bias1, weight2, bias2)
}

func (a *FusedConv2DAttrs) checkLayerArity() error {
	arrays := []struct {
		name string
		len  int
	}{
		{"strides_array", len(a.StridesArray)},
		{"padding_array", len(a.PaddingArray)},
		{"dilation_array", len(a.DilationArray)},
		{"groups_array", len(a.GroupsArray)},
		{"channels_array", len(a.ChannelsArray)},
		{"kernel_size_array", len(a.KernelSizeArray)},
		{"post_op_array", len(a.PostOpArray)},
		{"data_layout_array", len(a.DataLayoutArray)},
		{"kernel_layout_array", len(a.KernelLayoutArray)},
		{"out_layout_array", len(a.OutLayoutArray)},
	}
	for _, array := range arrays {
		if array.len != a.NumLayers {
			return errors.Wrapf(ErrArityMismatch, "%s has %d entries, want num_layers=%d",
				array.name, array.len, a.NumLayers)
		}
	}
	return nil
}
