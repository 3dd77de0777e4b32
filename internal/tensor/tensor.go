package tensor

import "fmt"

// Tensor is the handle user code passes around. It holds exactly one Impl;
// which implementation it is can be told from Keys without a type switch.
type Tensor struct {
	impl Impl
}

// New wraps an implementation in a Tensor handle.
func New(impl Impl) Tensor {
	return Tensor{impl: impl}
}

// Empty allocates a dense zero-filled tensor.
func Empty(shape Shape, dtype DataType, device Device) (Tensor, error) {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return Tensor{}, err
	}
	return New(raw), nil
}

// Impl returns the implementation backing the handle.
func (t Tensor) Impl() Impl {
	return t.impl
}

// Defined reports whether the handle holds an implementation.
func (t Tensor) Defined() bool {
	return t.impl != nil
}

// Keys returns the dispatch keys of the implementation, or an empty set for
// an undefined tensor.
func (t Tensor) Keys() KeySet {
	if t.impl == nil {
		return 0
	}
	return t.impl.Keys()
}

// Dim returns the number of user-visible dimensions.
// The tensor must be defined.
func (t Tensor) Dim() int {
	return t.impl.Dim()
}

// Sizes returns the user-visible shape.
// The tensor must be defined.
func (t Tensor) Sizes() Shape {
	return t.impl.Sizes()
}

// Size returns the size of dimension d (negative indexing supported).
// An undefined tensor reports ErrUndefined.
func (t Tensor) Size(d int) (int, error) {
	if t.impl == nil {
		return 0, fmt.Errorf("size: %w", ErrUndefined)
	}
	sizes := t.impl.Sizes()
	if len(sizes) == 0 {
		return 0, fmt.Errorf("size: %w: dimension specified as %d but tensor has no dimensions", ErrDimOutOfRange, d)
	}
	d, err := WrapDim(d, len(sizes))
	if err != nil {
		return 0, fmt.Errorf("size: %w", err)
	}
	return sizes[d], nil
}

// Raw returns the dense implementation when the tensor is one.
func (t Tensor) Raw() (*RawTensor, bool) {
	raw, ok := t.impl.(*RawTensor)
	return raw, ok
}

// String returns a human-readable representation of the tensor.
func (t Tensor) String() string {
	if t.impl == nil {
		return "Tensor(undefined)"
	}
	return fmt.Sprintf("Tensor%s[%s]%v on %s", t.impl.Keys(), t.impl.DType(), t.impl.Sizes(), t.impl.Device())
}
