package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)

	assert.Equal(t, 2, raw.Dim())
	assert.Equal(t, Shape{2, 3}, raw.Sizes())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, Float32, raw.DType())
	assert.Equal(t, CPU, raw.Device())
	assert.Len(t, raw.Data(), 24)
	assert.True(t, raw.Keys().Has(DenseKey))
	assert.False(t, raw.Keys().Has(BatchedKey))

	strides, err := raw.Strides()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, strides)

	contiguous, err := raw.IsContiguous()
	require.NoError(t, err)
	assert.True(t, contiguous)

	has, err := raw.HasStorage()
	require.NoError(t, err)
	assert.True(t, has)
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{3, -1}, Float32, CPU)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawStride(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 4}, Int64, CPU)

	s, err := raw.Stride(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, s)

	s, err = raw.Stride(0)
	require.NoError(t, err)
	assert.Equal(t, 12, s)

	_, err = raw.Stride(3)
	require.ErrorIs(t, err, ErrDimOutOfRange)
}

func TestRawPermute(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 5}, Float32, CPU)

	view, err := raw.Permute(2, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, Shape{5, 2, 3}, view.Sizes())
	strides, _ := view.Strides()
	assert.Equal(t, []int{1, 15, 5}, strides)

	contiguous, _ := view.IsContiguous()
	assert.False(t, contiguous)

	// View shares storage with its source
	src, _ := raw.Storage()
	dst, _ := view.Storage()
	assert.Same(t, src, dst)
}

func TestRawPermuteNegativeDims(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)

	view, err := raw.Permute(-1, -2)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, view.Sizes())
}

func TestRawPermuteInvalid(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)

	_, err := raw.Permute(0)
	require.Error(t, err)

	_, err = raw.Permute(1, 1)
	require.Error(t, err)

	_, err = raw.Permute(0, 2)
	require.ErrorIs(t, err, ErrDimOutOfRange)
}

func TestRawSetters(t *testing.T) {
	raw, _ := NewRaw(Shape{4, 6}, Float32, CPU)

	require.NoError(t, raw.SetSize(1, 3))
	require.NoError(t, raw.SetStride(0, 3))
	require.NoError(t, raw.SetStorageOffset(2))

	assert.Equal(t, Shape{4, 3}, raw.Sizes())
	strides, _ := raw.Strides()
	assert.Equal(t, []int{3, 1}, strides)
	offset, _ := raw.StorageOffset()
	assert.Equal(t, 2, offset)
	assert.Len(t, raw.Data(), 4*(24-2))

	require.ErrorIs(t, raw.SetSize(2, 1), ErrDimOutOfRange)
	require.ErrorIs(t, raw.SetSize(0, 0), ErrInvalidShape)
	require.Error(t, raw.SetStorageOffset(-1))

	// Offsets past the buffer are refused and the previous offset is kept.
	require.ErrorIs(t, raw.SetStorageOffset(100), ErrInvalidShape)
	offset, _ = raw.StorageOffset()
	assert.Equal(t, 2, offset)
	assert.NotPanics(t, func() { _ = raw.Data() })

	// The end of the buffer is a valid (empty) view start.
	require.NoError(t, raw.SetStorageOffset(24))
	assert.Empty(t, raw.Data())
}

func TestRawViewsShareStorage(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)
	view, err := raw.Permute(1, 0)
	require.NoError(t, err)

	view.Data()[0] = 7
	assert.Equal(t, byte(7), raw.Data()[0])

	// Metadata is independent
	require.NoError(t, view.SetSize(0, 1))
	assert.Equal(t, Shape{2, 2}, raw.Sizes())

	s, _ := raw.Storage()
	view.Release()
	assert.NotNil(t, s.Bytes(), "storage must outlive one view")
	raw.Release()
	assert.Nil(t, s.Bytes())
	assert.Equal(t, 0, s.Len())
}
