package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// isContiguous reports whether strides describe a row-major layout of s.
// Dimensions of size 1 may carry any stride.
func (s Shape) isContiguous(strides []int) bool {
	expected := 1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 1 {
			continue
		}
		if strides[i] != expected {
			return false
		}
		expected *= s[i]
	}
	return true
}

// WrapDim normalizes a possibly negative dimension index against ndim.
//
// Accepted inputs are in [-ndim, ndim); negative values count from the end
// (-1 = last dimension). A 0-d tensor is addressed as if it had one dimension,
// so 0 and -1 are both valid there.
//
// Example:
//
//	WrapDim(-1, 4) // 3, nil
//	WrapDim(4, 4)  // error: dimension out of range
func WrapDim(dim, ndim int) (int, error) {
	if ndim <= 0 {
		ndim = 1
	}
	lo, hi := -ndim, ndim-1
	if dim < lo || dim > hi {
		return 0, fmt.Errorf("%w: expected to be in range of [%d, %d], but got %d", ErrDimOutOfRange, lo, hi, dim)
	}
	if dim < 0 {
		dim += ndim
	}
	return dim, nil
}
