package batching

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
)

// BatchedTensor holds an underlying tensor and the list of its physical
// dimensions that are private batch dimensions.
//
// BatchedTensor implements tensor.Impl. Dim and Sizes answer in logical
// dimensions; every layout query or setter fails with an *UnsupportedError.
// Its metadata is never written after construction, so concurrent reads are safe.
type BatchedTensor struct {
	value tensor.Tensor
	bdims BatchDims    // Sorted by strictly increasing level
	sizes tensor.Shape // Logical sizes, computed once
}

// NewBatchedTensor wraps value with the given batch dims.
//
// bdims must have strictly increasing levels and distinct dims inside
// [0, value.Dim()); value must have at most MaxTensorDims dimensions.
// The value is shared, not copied.
func NewBatchedTensor(value tensor.Tensor, bdims BatchDims) (*BatchedTensor, error) {
	if !value.Defined() {
		return nil, fmt.Errorf("batched tensor: %w", tensor.ErrUndefined)
	}
	rank := value.Dim()
	if rank > MaxTensorDims {
		return nil, tooManyDims(rank)
	}
	if err := bdims.validate(rank); err != nil {
		return nil, err
	}

	bt := &BatchedTensor{
		value: value,
		bdims: bdims.Clone(),
	}

	valueSizes := value.Sizes()
	publicDims := rank - len(bt.bdims)
	bt.sizes = make(tensor.Shape, 0, publicDims)
	for dim := 0; dim < publicDims; dim++ {
		actualDim, err := bt.ActualDim(dim, false)
		if err != nil {
			return nil, err
		}
		bt.sizes = append(bt.sizes, valueSizes[actualDim])
	}

	return bt, nil
}

// Bdims returns the batch dims in increasing level order.
// The returned list must not be modified.
func (bt *BatchedTensor) Bdims() BatchDims {
	return bt.bdims
}

// Value returns the underlying tensor.
func (bt *BatchedTensor) Value() tensor.Tensor {
	return bt.value
}

// ActualDim translates a logical dimension index into the index of the same
// dimension in Value().
//
// When wrapDim is true, negative indices count from the last logical
// dimension. For example, with
//
//	bt := BatchedTensor(ones(2, 3, 5, 7), [(lvl=1, dim=0), (lvl=2, dim=2)])
//
// bt.ActualDim(0, true) is 1, bt.ActualDim(1, true) is 3 and
// bt.ActualDim(2, true) fails with ErrDimOutOfRange.
func (bt *BatchedTensor) ActualDim(dim int, wrapDim bool) (int, error) {
	ndim := bt.value.Dim() - len(bt.bdims)
	if wrapDim && ndim > 0 {
		wrapped, err := tensor.WrapDim(dim, ndim)
		if err != nil {
			return 0, err
		}
		dim = wrapped
	}
	if dim < 0 || dim >= ndim {
		return 0, fmt.Errorf("%w: dimension %d for a tensor with %d logical dimensions", ErrDimOutOfRange, dim, ndim)
	}

	// The answer is the position of the dim-th zero bit in the mask.
	// E.g. dim = 3 with is_bdim = 10010011000... gives 5.
	isBdim := CreateBatchDimBitset(bt.bdims)
	nonBdimCount := 0
	for actualDim := 0; actualDim < bt.value.Dim(); actualDim++ {
		if isBdim.Has(actualDim) {
			continue
		}
		if nonBdimCount == dim {
			return actualDim, nil
		}
		nonBdimCount++
	}
	panic(fmt.Sprintf("actualDim: no physical dimension for logical dim %d in %v with bdims %s",
		dim, bt.value.Sizes(), bt.bdims))
}

// Keys returns {Batched}.
func (bt *BatchedTensor) Keys() tensor.KeySet {
	return tensor.NewKeySet(tensor.BatchedKey)
}

// DType returns the data type of the underlying tensor.
func (bt *BatchedTensor) DType() tensor.DataType {
	return bt.value.Impl().DType()
}

// Device returns the device of the underlying tensor.
func (bt *BatchedTensor) Device() tensor.Device {
	return bt.value.Impl().Device()
}

// Dim returns the logical rank: physical rank minus the number of batch dims.
func (bt *BatchedTensor) Dim() int {
	return len(bt.sizes)
}

// Sizes returns the logical shape. Batch dimensions never appear in it.
func (bt *BatchedTensor) Sizes() tensor.Shape {
	return bt.sizes
}

// IsContiguous is not supported.
func (bt *BatchedTensor) IsContiguous() (bool, error) {
	return false, unsupported("IsContiguous")
}

// Strides is not supported.
func (bt *BatchedTensor) Strides() ([]int, error) {
	return nil, unsupported("Strides")
}

// Stride is not supported.
func (bt *BatchedTensor) Stride(int) (int, error) {
	return 0, unsupported("Stride")
}

// SetSize is not supported.
func (bt *BatchedTensor) SetSize(int, int) error {
	return unsupported("SetSize")
}

// SetStride is not supported.
func (bt *BatchedTensor) SetStride(int, int) error {
	return unsupported("SetStride")
}

// SetStorageOffset is not supported.
func (bt *BatchedTensor) SetStorageOffset(int) error {
	return unsupported("SetStorageOffset")
}

// HasStorage is not supported.
func (bt *BatchedTensor) HasStorage() (bool, error) {
	return false, unsupported("HasStorage")
}

// Storage is not supported.
func (bt *BatchedTensor) Storage() (*tensor.Storage, error) {
	return nil, unsupported("Storage")
}

// StorageOffset is not supported.
func (bt *BatchedTensor) StorageOffset() (int, error) {
	return 0, unsupported("StorageOffset")
}

var _ tensor.Impl = (*BatchedTensor)(nil)
