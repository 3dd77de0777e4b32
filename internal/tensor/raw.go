package tensor

import "fmt"

// RawTensor is the dense strided tensor implementation.
// It shares a reference-counted Storage with every view derived from it.
//
// Shape-mutating setters are not synchronized; a RawTensor that is read from
// several goroutines must not be resized concurrently.
type RawTensor struct {
	storage *Storage // Shared reference-counted buffer
	shape   Shape    // Tensor dimensions
	stride  []int    // Element strides
	dtype   DataType // Runtime type information
	device  Device   // Compute device
	offset  int      // Element offset into storage for views
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated but not initialized (contains zeros).
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		storage: newStorage(byteSize),
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		dtype:   dtype,
		device:  device,
	}, nil
}

// Keys returns {Dense}.
func (r *RawTensor) Keys() KeySet {
	return NewKeySet(DenseKey)
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// Dim returns the number of dimensions.
func (r *RawTensor) Dim() int {
	return len(r.shape)
}

// Sizes returns the tensor's shape.
func (r *RawTensor) Sizes() Shape {
	return r.shape
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// IsContiguous reports whether the tensor is laid out row-major without gaps.
func (r *RawTensor) IsContiguous() (bool, error) {
	return r.shape.isContiguous(r.stride), nil
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() ([]int, error) {
	return r.stride, nil
}

// Stride returns the stride of dimension d (negative indexing supported).
func (r *RawTensor) Stride(d int) (int, error) {
	d, err := WrapDim(d, len(r.shape))
	if err != nil {
		return 0, fmt.Errorf("stride: %w", err)
	}
	return r.stride[d], nil
}

// SetSize overrides the size of one dimension in place.
func (r *RawTensor) SetSize(dim, size int) error {
	dim, err := WrapDim(dim, len(r.shape))
	if err != nil {
		return fmt.Errorf("set_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("set_size: %w: size %d (must be > 0)", ErrInvalidShape, size)
	}
	r.shape[dim] = size
	return nil
}

// SetStride overrides the stride of one dimension in place.
func (r *RawTensor) SetStride(dim, stride int) error {
	dim, err := WrapDim(dim, len(r.shape))
	if err != nil {
		return fmt.Errorf("set_stride: %w", err)
	}
	r.stride[dim] = stride
	return nil
}

// SetStorageOffset moves the view's start within its storage.
// The offset must stay inside the buffer.
func (r *RawTensor) SetStorageOffset(offset int) error {
	if offset < 0 {
		return fmt.Errorf("set_storage_offset: negative offset %d", offset)
	}
	if offset*r.dtype.Size() > r.storage.Len() {
		return fmt.Errorf("set_storage_offset: %w: offset %d past the end of a %d-byte %s storage",
			ErrInvalidShape, offset, r.storage.Len(), r.dtype)
	}
	r.offset = offset
	return nil
}

// HasStorage reports whether the tensor is backed by a buffer.
func (r *RawTensor) HasStorage() (bool, error) {
	return r.storage != nil, nil
}

// Storage returns the shared buffer backing this tensor.
func (r *RawTensor) Storage() (*Storage, error) {
	return r.storage, nil
}

// StorageOffset returns the element offset of this view within its storage.
func (r *RawTensor) StorageOffset() (int, error) {
	return r.offset, nil
}

// Data returns the raw bytes starting at the view's offset.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.storage.Bytes()[r.offset*r.dtype.Size():]
}

// Permute returns a view with dimensions reordered so that dimension i of the
// result is dimension dims[i] of r. No data is copied.
//
// Example:
//
//	x, _ := tensor.NewRaw(Shape{2, 3, 5}, Float32, CPU)
//	y, _ := x.Permute(2, 0, 1) // Shape: [5, 2, 3]
func (r *RawTensor) Permute(dims ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(dims) != ndim {
		return nil, fmt.Errorf("permute: got %d dims for a %dD tensor", len(dims), ndim)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	stride := make([]int, ndim)
	for i, d := range dims {
		d, err := WrapDim(d, ndim)
		if err != nil {
			return nil, fmt.Errorf("permute: %w", err)
		}
		if seen[d] {
			return nil, fmt.Errorf("permute: dimension %d repeated in %v", d, dims)
		}
		seen[d] = true
		shape[i] = r.shape[d]
		stride[i] = r.stride[d]
	}

	r.storage.Retain()
	return &RawTensor{
		storage: r.storage,
		shape:   shape,
		stride:  stride,
		dtype:   r.dtype,
		device:  r.device,
		offset:  r.offset,
	}, nil
}

// Release drops this view's reference to its storage.
func (r *RawTensor) Release() {
	r.storage.Release()
}
