package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{}.Validate())

	err := Shape{2, 0}.Validate()
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "index 1")
}

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 210, Shape{2, 3, 5, 7}.NumElements())
}

func TestShapeCloneDoesNotAlias(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])
	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(c))
}

func TestWrapDim(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		ndim    int
		want    int
		wantErr bool
	}{
		{"first", 0, 4, 0, false},
		{"last", 3, 4, 3, false},
		{"negative last", -1, 4, 3, false},
		{"negative first", -4, 4, 0, false},
		{"past end", 4, 4, 0, true},
		{"before start", -5, 4, 0, true},
		{"scalar zero", 0, 0, 0, false},
		{"scalar minus one", -1, 0, 0, false},
		{"scalar one", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WrapDim(tt.dim, tt.ndim)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDimOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
