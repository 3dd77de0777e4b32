package batching

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
)

// IsBatched reports whether t carries the Batched dispatch key.
func IsBatched(t tensor.Tensor) bool {
	return t.Keys().Has(tensor.BatchedKey)
}

// UnsafeGetBatched returns the BatchedTensor backing t without checking.
// It panics if t is not batched; use MaybeGetBatched whenever possible.
func UnsafeGetBatched(t tensor.Tensor) *BatchedTensor {
	return t.Impl().(*BatchedTensor)
}

// MaybeGetBatched returns the BatchedTensor backing t, or nil if t is not batched.
func MaybeGetBatched(t tensor.Tensor) *BatchedTensor {
	if !IsBatched(t) {
		return nil
	}
	return UnsafeGetBatched(t)
}

// MakeBatched wraps a tensor that is not batched with bdims.
func MakeBatched(t tensor.Tensor, bdims BatchDims) (tensor.Tensor, error) {
	if IsBatched(t) {
		return tensor.Tensor{}, fmt.Errorf("make batched: %w", ErrAlreadyBatched)
	}
	if t.Defined() && t.Dim() > MaxTensorDims {
		return tensor.Tensor{}, tooManyDims(t.Dim())
	}

	bt, err := NewBatchedTensor(t, bdims)
	if err != nil {
		return tensor.Tensor{}, err
	}
	return tensor.New(bt), nil
}

// AddBatchDim marks dim of t as a batch dimension at the given level.
//
// For a plain tensor, dim is a physical dimension of t. For a tensor that is
// already batched, dim is deliberately a logical dimension of t, not a
// physical dimension of its underlying value; it is translated with
// ActualDim and the new batch dim joins the existing ones in level order on a
// single wrapper around the innermost value. Wrappers are never stacked.
// A level already present on t fails with ErrDuplicateLevel.
//
// The result shares storage with t.
func AddBatchDim(t tensor.Tensor, level, dim int) (tensor.Tensor, error) {
	if !t.Defined() {
		return tensor.Tensor{}, fmt.Errorf("add batch dim: %w", tensor.ErrUndefined)
	}

	batched := MaybeGetBatched(t)
	if batched == nil {
		if t.Dim() > MaxTensorDims {
			return tensor.Tensor{}, tooManyDims(t.Dim())
		}
		physical, err := tensor.WrapDim(dim, t.Dim())
		if err != nil {
			return tensor.Tensor{}, fmt.Errorf("add batch dim: %w", err)
		}
		return MakeBatched(t, NewBatchDims(NewBatchDim(level, physical)))
	}

	physical, err := batched.ActualDim(dim, true)
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("add batch dim: %w", err)
	}
	bdims, err := batched.bdims.insertSorted(NewBatchDim(level, physical))
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("add batch dim: %w", err)
	}
	return MakeBatched(batched.value, bdims)
}
