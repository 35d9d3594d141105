// Copyright 2025-2026 The Relay-Go Authors. SPDX-License-Identifier: Apache-2.0

package nn

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"

	"github.com/moderato/relay/types/dims"
)

// The attribute-record family for the convolution operators. One record
// variant per operator configuration shape; each is constructed once by a
// builder, moved into the Call that owns it, and never mutated afterwards.

// Conv2DAttrs configures a plain 2D convolution.
//
// Strides, Padding, Dilation and KernelSize are per-spatial-axis sequences
// of dimension expressions; their length-vs-rank agreement is checked by
// type inference, not here. Groups partitions the input channels; its
// divisibility constraints are likewise deferred.
type Conv2DAttrs struct {
	Strides    []dims.Expr
	Padding    []dims.Expr
	Dilation   []dims.Expr
	Groups     int
	Channels   dims.Expr
	KernelSize []dims.Expr

	DataLayout   string
	KernelLayout string
	OutLayout    string

	OutDType dtypes.DType
}

func (*Conv2DAttrs) TypeKey() string { return "relay.attrs.Conv2DAttrs" }

func (a *Conv2DAttrs) String() string {
	return fmt.Sprintf("Conv2DAttrs{strides=%s, padding=%s, dilation=%s, groups=%d, kernel_size=%s, layout=%s}",
		dims.Format(a.Strides), dims.Format(a.Padding), dims.Format(a.Dilation),
		a.Groups, dims.Format(a.KernelSize), a.DataLayout)
}

// Conv2DWinogradAttrs configures a tiled (Winograd) 2D convolution: the
// plain convolution fields plus the Winograd tile size.
type Conv2DWinogradAttrs struct {
	TileSize int
	Conv2DAttrs
}

func (*Conv2DWinogradAttrs) TypeKey() string { return "relay.attrs.Conv2DWinogradAttrs" }

func (a *Conv2DWinogradAttrs) String() string {
	return fmt.Sprintf("Conv2DWinogradAttrs{tile_size=%d, strides=%s, padding=%s, kernel_size=%s}",
		a.TileSize, dims.Format(a.Strides), dims.Format(a.Padding), dims.Format(a.KernelSize))
}

// Conv2DGemmAttrs configures a matrix-multiplication-based 2D convolution.
// The field shape is identical to Conv2DAttrs; only the record identity
// (and the operator it is bound to) differs.
type Conv2DGemmAttrs struct {
	Conv2DAttrs
}

func (*Conv2DGemmAttrs) TypeKey() string { return "relay.attrs.Conv2DGemmAttrs" }

// Conv2DTransposeAttrs configures a transposed 2D convolution: the plain
// convolution fields plus a per-spatial-axis output padding.
type Conv2DTransposeAttrs struct {
	Conv2DAttrs
	OutputPadding []dims.Expr
}

func (*Conv2DTransposeAttrs) TypeKey() string { return "relay.attrs.Conv2DTransposeAttrs" }

func (a *Conv2DTransposeAttrs) String() string {
	return fmt.Sprintf("Conv2DTransposeAttrs{strides=%s, padding=%s, output_padding=%s, kernel_size=%s}",
		dims.Format(a.Strides), dims.Format(a.Padding), dims.Format(a.OutputPadding), dims.Format(a.KernelSize))
}

// DeformableConv2DAttrs configures a deformable 2D convolution.
//
// Channels is a plain integer, not a dimension expression: the deformable
// group partitioning must be concrete at build time. The divisibility of
// Channels by Groups and DeformableGroups is still checked by type
// inference, not here.
type DeformableConv2DAttrs struct {
	Strides          []dims.Expr
	Padding          []dims.Expr
	Dilation         []dims.Expr
	DeformableGroups int
	Groups           int
	Channels         int
	KernelSize       []dims.Expr

	DataLayout   string
	KernelLayout string
	OutLayout    string

	OutDType dtypes.DType
}

func (*DeformableConv2DAttrs) TypeKey() string { return "relay.attrs.DeformableConv2DAttrs" }

func (a *DeformableConv2DAttrs) String() string {
	return fmt.Sprintf("DeformableConv2DAttrs{strides=%s, padding=%s, deformable_groups=%d, groups=%d, channels=%d, kernel_size=%s}",
		dims.Format(a.Strides), dims.Format(a.Padding), a.DeformableGroups, a.Groups, a.Channels, dims.Format(a.KernelSize))
}

// FusedConv2DAttrs configures a fused multi-layer convolution: NumLayers
// chained convolutions whose per-layer configuration is carried as
// NumLayers-length parallel arrays, kept flat so passes can iterate layers
// without dispatching on an inner record type.
//
// Every *Array field must have exactly NumLayers entries; MakeFusedConv2D
// enforces this. PostOpArray names the post-operation fused after each
// layer (e.g. "bias", "relu", "bias_relu"). OutDType is shared by all
// layers.
type FusedConv2DAttrs struct {
	NumLayers int

	StridesArray    [][]dims.Expr
	PaddingArray    [][]dims.Expr
	DilationArray   [][]dims.Expr
	GroupsArray     []int
	ChannelsArray   []dims.Expr
	KernelSizeArray [][]dims.Expr
	PostOpArray     []string

	DataLayoutArray   []string
	KernelLayoutArray []string
	OutLayoutArray    []string

	OutDType dtypes.DType
}

func (*FusedConv2DAttrs) TypeKey() string { return "relay.attrs.FusedConv2DAttrs" }

func (a *FusedConv2DAttrs) String() string {
	return fmt.Sprintf("FusedConv2DAttrs{num_layers=%d, post_ops=%v}", a.NumLayers, a.PostOpArray)
}
