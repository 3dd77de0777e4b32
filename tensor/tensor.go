// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vmap/internal/tensor"
)

// Type aliases for public API

// Tensor is the handle user code passes around.
type Tensor = tensor.Tensor

// Impl is the extension contract every tensor implementation satisfies.
type Impl = tensor.Impl

// RawTensor is the dense strided tensor implementation.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	view, _ := raw.Permute(1, 0) // Shares storage
type RawTensor = tensor.RawTensor

// Storage is the reference-counted buffer shared by tensor views.
type Storage = tensor.Storage

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// DispatchKey tags a tensor implementation with a capability.
type DispatchKey = tensor.DispatchKey

// KeySet is a set of dispatch keys.
type KeySet = tensor.KeySet

// Dispatch key constants.
const (
	DenseKey   DispatchKey = tensor.DenseKey
	BatchedKey DispatchKey = tensor.BatchedKey
)

// Errors reported by the tensor engine.
var (
	ErrDimOutOfRange = tensor.ErrDimOutOfRange
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrUndefined     = tensor.ErrUndefined
)

// New wraps an implementation in a Tensor handle.
func New(impl Impl) Tensor {
	return tensor.New(impl)
}

// Empty allocates a dense zero-filled tensor.
func Empty(shape Shape, dtype DataType, device Device) (Tensor, error) {
	return tensor.Empty(shape, dtype, device)
}

// NewRaw creates a dense tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...DispatchKey) KeySet {
	return tensor.NewKeySet(keys...)
}

// WrapDim normalizes a possibly negative dimension index against ndim.
func WrapDim(dim, ndim int) (int, error) {
	return tensor.WrapDim(dim, ndim)
}
