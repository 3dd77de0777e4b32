package batching

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
)

// PhysicalView is the underlying tensor of a batched tensor, permuted so that
// all batch dimensions come first in level order. Batching rules work on this
// view: logical dim d is physical dim NumBatchDims()+d.
type PhysicalView struct {
	tensor tensor.Tensor
	levels []int
}

// LogicalToPhysical builds the physical view of t.
// A tensor that is not batched maps to itself with no levels.
//
// Example:
//
//	// value shape [2, 3, 5, 7], bdims [(lvl=1, dim=2), (lvl=3, dim=0)]
//	view, _ := LogicalToPhysical(bt)
//	view.Tensor().Sizes() // [5 2 3 7]
//	view.Levels()         // [1 3]
func LogicalToPhysical(t tensor.Tensor) (*PhysicalView, error) {
	bt := MaybeGetBatched(t)
	if bt == nil {
		if !t.Defined() {
			return nil, fmt.Errorf("logical to physical: %w", tensor.ErrUndefined)
		}
		return &PhysicalView{tensor: t}, nil
	}

	raw, ok := bt.value.Raw()
	if !ok {
		return nil, fmt.Errorf("logical to physical: underlying tensor %s is not dense", bt.value)
	}

	rank := raw.Dim()
	perm := make([]int, 0, rank)
	levels := make([]int, 0, len(bt.bdims))
	for _, bd := range bt.bdims {
		perm = append(perm, bd.dim)
		levels = append(levels, bd.level)
	}
	isBdim := CreateBatchDimBitset(bt.bdims)
	for d := 0; d < rank; d++ {
		if !isBdim.Has(d) {
			perm = append(perm, d)
		}
	}

	permuted, err := raw.Permute(perm...)
	if err != nil {
		return nil, fmt.Errorf("logical to physical: %w", err)
	}
	return &PhysicalView{tensor: tensor.New(permuted), levels: levels}, nil
}

// Release drops the view's reference to the shared storage. It is a no-op
// for the view of a tensor that is not batched.
func (v *PhysicalView) Release() {
	if len(v.levels) == 0 {
		return
	}
	if raw, ok := v.tensor.Raw(); ok {
		raw.Release()
	}
}

// Tensor returns the permuted physical tensor.
func (v *PhysicalView) Tensor() tensor.Tensor {
	return v.tensor
}

// Levels returns the batch levels of the leading dims, in increasing order.
func (v *PhysicalView) Levels() []int {
	return v.levels
}

// NumBatchDims returns how many leading dims are batch dims.
func (v *PhysicalView) NumBatchDims() int {
	return len(v.levels)
}

// PhysicalDim maps a logical dim (negative indexing supported) to its
// position in Tensor().
func (v *PhysicalView) PhysicalDim(logical int) (int, error) {
	ndim := v.tensor.Dim() - len(v.levels)
	if ndim == 0 {
		return 0, fmt.Errorf("%w: dimension %d for a tensor with no logical dimensions", ErrDimOutOfRange, logical)
	}
	dim, err := tensor.WrapDim(logical, ndim)
	if err != nil {
		return 0, err
	}
	return dim + len(v.levels), nil
}

// PhysicalDims maps several logical dims at once.
func (v *PhysicalView) PhysicalDims(logicals ...int) ([]int, error) {
	dims := make([]int, len(logicals))
	for i, l := range logicals {
		d, err := v.PhysicalDim(l)
		if err != nil {
			return nil, err
		}
		dims[i] = d
	}
	return dims, nil
}

// PhysicalShape prefixes a logical shape with the batch sizes of the view.
func (v *PhysicalView) PhysicalShape(logical tensor.Shape) tensor.Shape {
	sizes := v.tensor.Sizes()
	shape := make(tensor.Shape, 0, len(v.levels)+len(logical))
	shape = append(shape, sizes[:len(v.levels)]...)
	return append(shape, logical...)
}

// NewLogicalFromPhysical wraps a result computed on the physical view back
// into a batched tensor whose leading dims carry the view's levels.
// The result's leading sizes must equal the view's batch sizes.
func (v *PhysicalView) NewLogicalFromPhysical(physical tensor.Tensor) (tensor.Tensor, error) {
	if len(v.levels) == 0 {
		return physical, nil
	}
	if !physical.Defined() {
		return tensor.Tensor{}, fmt.Errorf("new logical from physical: %w", tensor.ErrUndefined)
	}
	if physical.Dim() < len(v.levels) {
		return tensor.Tensor{}, fmt.Errorf("new logical from physical: %w: %dD result cannot hold %d batch dims",
			ErrInvalidBatchDims, physical.Dim(), len(v.levels))
	}

	n := len(v.levels)
	if want, got := v.tensor.Sizes()[:n], physical.Sizes()[:n]; !want.Equal(got) {
		return tensor.Tensor{}, fmt.Errorf("new logical from physical: %w: batch sizes %v, want %v",
			ErrInvalidBatchDims, got, want)
	}

	bdims := make(BatchDims, 0, max(n, BatchDimsStackSize))
	for i, level := range v.levels {
		bdims = append(bdims, NewBatchDim(level, i))
	}
	return MakeBatched(physical, bdims)
}
