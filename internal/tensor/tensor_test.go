package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	x, err := Empty(Shape{2, 3, 5}, Float32, CPU)
	require.NoError(t, err)

	assert.True(t, x.Defined())
	assert.Equal(t, 3, x.Dim())
	assert.Equal(t, Shape{2, 3, 5}, x.Sizes())
	assert.Equal(t, "Tensor{Dense}[float32][2 3 5] on CPU", x.String())

	raw, ok := x.Raw()
	require.True(t, ok)
	assert.Same(t, raw, x.Impl())
}

func TestTensorSize(t *testing.T) {
	x, _ := Empty(Shape{2, 3, 5}, Float32, CPU)

	n, err := x.Size(-1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = x.Size(3)
	require.ErrorIs(t, err, ErrDimOutOfRange)

	scalar, _ := Empty(Shape{}, Float32, CPU)
	_, err = scalar.Size(0)
	require.ErrorIs(t, err, ErrDimOutOfRange)
}

func TestUndefinedTensor(t *testing.T) {
	var x Tensor
	assert.False(t, x.Defined())
	assert.Equal(t, KeySet(0), x.Keys())
	assert.Equal(t, "Tensor(undefined)", x.String())

	_, err := x.Size(0)
	require.ErrorIs(t, err, ErrUndefined)

	_, ok := x.Raw()
	assert.False(t, ok)
}

func TestKeySet(t *testing.T) {
	ks := NewKeySet(DenseKey)
	assert.True(t, ks.Has(DenseKey))
	assert.False(t, ks.Has(BatchedKey))
	assert.Equal(t, "{Dense}", ks.String())

	ks = ks.Add(BatchedKey)
	assert.True(t, ks.Has(BatchedKey))
	assert.Equal(t, "{Dense, Batched}", ks.String())
}

func TestDataTypeAndDevice(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, 1, Bool.Size())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Panics(t, func() { _ = DataType(99).Size() })
}
