package batching

import "math/bits"

// DimBitset is a membership mask over physical dimensions [0, MaxTensorDims).
type DimBitset uint64

// Has reports whether dim is set. Indices outside [0, MaxTensorDims) are never set.
func (s DimBitset) Has(dim int) bool {
	if dim < 0 || dim >= MaxTensorDims {
		return false
	}
	return s&(1<<uint(dim)) != 0
}

// Set returns a copy of s with dim set.
func (s DimBitset) Set(dim int) DimBitset {
	if dim < 0 || dim >= MaxTensorDims {
		panic("bitset: dimension out of range")
	}
	return s | 1<<uint(dim)
}

// Count returns the number of set dims.
func (s DimBitset) Count() int {
	return bits.OnesCount64(uint64(s))
}

// CreateBatchDimBitset returns a mask where bit i is set iff some batch dim
// in bdims has Dim() == i.
func CreateBatchDimBitset(bdims BatchDims) DimBitset {
	var isBdim DimBitset
	for _, bd := range bdims {
		isBdim = isBdim.Set(bd.dim)
	}
	return isBdim
}
