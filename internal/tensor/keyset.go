package tensor

import "strings"

// DispatchKey tags a tensor implementation with a capability the dispatcher
// can test for without inspecting the concrete type.
type DispatchKey uint8

// Known dispatch keys.
const (
	DenseKey DispatchKey = iota
	BatchedKey
	numDispatchKeys
)

// String returns the key name.
func (k DispatchKey) String() string {
	switch k {
	case DenseKey:
		return "Dense"
	case BatchedKey:
		return "Batched"
	default:
		return "Unknown"
	}
}

// KeySet is a set of dispatch keys. Membership tests are O(1).
type KeySet uint64

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...DispatchKey) KeySet {
	var ks KeySet
	for _, k := range keys {
		ks = ks.Add(k)
	}
	return ks
}

// Has reports whether k is in the set.
func (ks KeySet) Has(k DispatchKey) bool {
	return ks&(1<<k) != 0
}

// Add returns a copy of the set with k added.
func (ks KeySet) Add(k DispatchKey) KeySet {
	return ks | 1<<k
}

// String lists the keys in the set, e.g. "{Dense, Batched}".
func (ks KeySet) String() string {
	names := make([]string, 0, numDispatchKeys)
	for k := DispatchKey(0); k < numDispatchKeys; k++ {
		if ks.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
