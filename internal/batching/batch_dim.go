package batching

import (
	"fmt"
	"strings"
)

// MaxTensorDims is the highest physical rank a batched tensor may have.
const MaxTensorDims = 64

// BatchDimsStackSize is the capacity BatchDims are allocated with.
// Most programs nest five vmaps or fewer.
const BatchDimsStackSize = 5

// BatchDim is a private dimension of a tensor created inside vmap: Dim is the
// physical dimension being mapped over and Level identifies the vmap that
// created it.
type BatchDim struct {
	level int
	dim   int
}

// NewBatchDim returns the pair (level, dim). No validation happens here.
func NewBatchDim(level, dim int) BatchDim {
	return BatchDim{level: level, dim: dim}
}

// Level returns the nesting level.
func (b BatchDim) Level() int {
	return b.level
}

// Dim returns the physical dimension index.
func (b BatchDim) Dim() int {
	return b.dim
}

// String formats the pair as "(lvl=1, dim=0)".
func (b BatchDim) String() string {
	return fmt.Sprintf("(lvl=%d, dim=%d)", b.level, b.dim)
}

// BatchDims is the ordered list of batch dimensions of one tensor.
//
// The list type itself does not sort or validate; whoever builds it must
// keep levels strictly increasing.
type BatchDims []BatchDim

// NewBatchDims builds a list holding dims in the given order.
func NewBatchDims(dims ...BatchDim) BatchDims {
	bdims := make(BatchDims, 0, max(len(dims), BatchDimsStackSize))
	return append(bdims, dims...)
}

// Len returns the number of batch dims.
func (b BatchDims) Len() int {
	return len(b)
}

// At returns the i-th batch dim.
func (b BatchDims) At(i int) BatchDim {
	return b[i]
}

// Levels returns the levels in list order.
func (b BatchDims) Levels() []int {
	levels := make([]int, len(b))
	for i, bd := range b {
		levels[i] = bd.level
	}
	return levels
}

// Clone returns a copy that does not alias b.
func (b BatchDims) Clone() BatchDims {
	return NewBatchDims(b...)
}

// String formats the list as "[(lvl=1, dim=0), (lvl=2, dim=1)]".
func (b BatchDims) String() string {
	parts := make([]string, len(b))
	for i, bd := range b {
		parts[i] = bd.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// insertSorted returns a new list with bd placed at its level-sorted position.
func (b BatchDims) insertSorted(bd BatchDim) (BatchDims, error) {
	pos := len(b)
	for i, cur := range b {
		if cur.level == bd.level {
			return nil, fmt.Errorf("%w: %s conflicts with %s", ErrDuplicateLevel, bd, cur)
		}
		if cur.level > bd.level {
			pos = i
			break
		}
	}

	out := make(BatchDims, 0, max(len(b)+1, BatchDimsStackSize))
	out = append(out, b[:pos]...)
	out = append(out, bd)
	return append(out, b[pos:]...), nil
}

// validate checks the list against a tensor of the given physical rank:
// levels strictly increasing, dims in range and pairwise distinct.
func (b BatchDims) validate(rank int) error {
	var seen DimBitset
	for i, bd := range b {
		if i > 0 && b[i-1].level >= bd.level {
			return fmt.Errorf("%w: levels must be strictly increasing, got %s", ErrInvalidBatchDims, b)
		}
		if bd.dim < 0 || bd.dim >= rank {
			return fmt.Errorf("%w: %s out of range for a tensor with %d dimensions", ErrInvalidBatchDims, bd, rank)
		}
		if seen.Has(bd.dim) {
			return fmt.Errorf("%w: dim %d appears twice in %s", ErrInvalidBatchDims, bd.dim, b)
		}
		seen = seen.Set(bd.dim)
	}
	return nil
}
