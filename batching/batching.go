// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package batching provides tensors with private batch dimensions, the
// bookkeeping underneath vmap-style transforms.
//
// A batched tensor hides some physical dimensions of an underlying tensor.
// Shape queries report only the remaining logical dimensions, and ActualDim
// translates a logical dimension index into a physical one:
//
//	x, _ := tensor.Empty(tensor.Shape{2, 3, 5, 7}, tensor.Float32, tensor.CPU)
//	bx, _ := batching.AddBatchDim(x, 1, 0)
//	bx.Sizes()                                        // [3 5 7]
//	batching.UnsafeGetBatched(bx).ActualDim(0, true) // 1, nil
package batching

import (
	"github.com/born-ml/vmap/internal/batching"
	"github.com/born-ml/vmap/tensor"
)

// Limits.
const (
	MaxTensorDims      = batching.MaxTensorDims
	BatchDimsStackSize = batching.BatchDimsStackSize
)

// BatchDim is a (level, dim) pair marking one private dimension.
type BatchDim = batching.BatchDim

// BatchDims is the level-sorted list of batch dims of one tensor.
type BatchDims = batching.BatchDims

// DimBitset is a membership mask over physical dimensions.
type DimBitset = batching.DimBitset

// BatchedTensor is the tensor implementation with private batch dims.
type BatchedTensor = batching.BatchedTensor

// PhysicalView is a batched tensor's value with batch dims moved to the front.
type PhysicalView = batching.PhysicalView

// Levels hands out vmap nesting levels.
type Levels = batching.Levels

// UnsupportedError is returned by layout queries on a batched tensor.
type UnsupportedError = batching.UnsupportedError

// Errors reported by the batching layer.
var (
	ErrTooManyDims      = batching.ErrTooManyDims
	ErrDimOutOfRange    = batching.ErrDimOutOfRange
	ErrUnsupported      = batching.ErrUnsupported
	ErrAlreadyBatched   = batching.ErrAlreadyBatched
	ErrDuplicateLevel   = batching.ErrDuplicateLevel
	ErrInvalidBatchDims = batching.ErrInvalidBatchDims
)

// NewBatchDim returns the pair (level, dim).
func NewBatchDim(level, dim int) BatchDim {
	return batching.NewBatchDim(level, dim)
}

// NewBatchDims builds a list holding dims in the given order.
func NewBatchDims(dims ...BatchDim) BatchDims {
	return batching.NewBatchDims(dims...)
}

// NewBatchedTensor wraps value with the given batch dims.
func NewBatchedTensor(value tensor.Tensor, bdims BatchDims) (*BatchedTensor, error) {
	return batching.NewBatchedTensor(value, bdims)
}

// MakeBatched wraps a tensor that is not batched with bdims.
func MakeBatched(t tensor.Tensor, bdims BatchDims) (tensor.Tensor, error) {
	return batching.MakeBatched(t, bdims)
}

// AddBatchDim marks dim of t as a batch dimension at the given level.
// See the internal documentation of AddBatchDim for nesting rules.
func AddBatchDim(t tensor.Tensor, level, dim int) (tensor.Tensor, error) {
	return batching.AddBatchDim(t, level, dim)
}

// IsBatched reports whether t is a batched tensor.
func IsBatched(t tensor.Tensor) bool {
	return batching.IsBatched(t)
}

// UnsafeGetBatched returns the BatchedTensor backing t without checking.
func UnsafeGetBatched(t tensor.Tensor) *BatchedTensor {
	return batching.UnsafeGetBatched(t)
}

// MaybeGetBatched returns the BatchedTensor backing t, or nil.
func MaybeGetBatched(t tensor.Tensor) *BatchedTensor {
	return batching.MaybeGetBatched(t)
}

// CreateBatchDimBitset returns the mask of dims occupied by bdims.
func CreateBatchDimBitset(bdims BatchDims) DimBitset {
	return batching.CreateBatchDimBitset(bdims)
}

// LogicalToPhysical builds the physical view of t.
func LogicalToPhysical(t tensor.Tensor) (*PhysicalView, error) {
	return batching.LogicalToPhysical(t)
}
