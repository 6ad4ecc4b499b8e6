package hash

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - Bucket selection using xxhash (XXH64) of the key
type XXHashAlgorithm struct {
	table
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64, sizing Sizing) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{table: table{sizing: sizing}}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key []byte) int64 {
	return X.index(xxhash.Sum64(key))
}
