package batching

import (
	"errors"
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
)

// Common errors.
var (
	ErrTooManyDims      = errors.New("dimensionality exceeds maximum")
	ErrDimOutOfRange    = tensor.ErrDimOutOfRange
	ErrUnsupported      = errors.New("operation not supported on a batched tensor")
	ErrAlreadyBatched   = errors.New("tensor is already batched")
	ErrDuplicateLevel   = errors.New("batch level already present")
	ErrInvalidBatchDims = errors.New("invalid batch dims")
)

// UnsupportedError is returned by every layout query a BatchedTensor refuses.
type UnsupportedError struct {
	Op string // Name of the refused query (e.g. "Strides", "SetSize")
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %v; the tensor has private batch dimensions", e.Op, ErrUnsupported)
}

// Unwrap lets errors.Is match ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(op string) error {
	return &UnsupportedError{Op: op}
}

func tooManyDims(rank int) error {
	return fmt.Errorf("%w: vmap only supports tensors of dimensionality up to %d; got a tensor with dim %d",
		ErrTooManyDims, MaxTensorDims, rank)
}
