package tensor

// Impl is the extension contract every tensor implementation satisfies.
//
// Dim and Sizes describe the shape user code sees. The layout queries and
// setters return an error so that an implementation can refuse them outright
// instead of answering in terms of a layout the caller does not expect.
type Impl interface {
	Keys() KeySet
	DType() DataType
	Device() Device

	Dim() int
	Sizes() Shape

	IsContiguous() (bool, error)
	Strides() ([]int, error)
	Stride(d int) (int, error)

	SetSize(dim, size int) error
	SetStride(dim, stride int) error
	SetStorageOffset(offset int) error

	HasStorage() (bool, error)
	Storage() (*Storage, error)
	StorageOffset() (int, error)
}
