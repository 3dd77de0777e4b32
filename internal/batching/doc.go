// Package batching implements tensors with private batch dimensions.
//
// A BatchedTensor wraps an underlying tensor and marks some of its physical
// dimensions as batch dimensions. Those dimensions are hidden from every
// shape query, so code written for a single example sees only the remaining
// (logical) dimensions. Each batch dimension records the nesting level of the
// vmap invocation that created it, which lets nested vmaps compose.
//
// For example, in
//
//	bt := BatchedTensor(ones(2, 3, 5, 7), [(lvl=1, dim=0), (lvl=2, dim=1)])
//
// dimensions 0 and 1 are batch dimensions. bt.Sizes() returns [5 7] and a
// reduction over logical dim 0 is a reduction over physical dim 2 of the
// underlying tensor.
//
// Batch dimensions are always stored in increasing level order. Layout
// queries (strides, contiguity, storage) are refused on a BatchedTensor
// because a physical answer would be wrong for a caller working in logical
// dimensions.
package batching
