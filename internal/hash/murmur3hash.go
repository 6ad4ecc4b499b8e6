package hash

import (
	"github.com/spaolacci/murmur3"
)

// Murmur3HashAlgorithm - Bucket selection using the 64 bit murmur3 hash of the key
type Murmur3HashAlgorithm struct {
	table
}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
func NewMurmur3HashAlgorithm(tableSize int64, sizing Sizing) *Murmur3HashAlgorithm {
	ha := &Murmur3HashAlgorithm{table: table{sizing: sizing}}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *Murmur3HashAlgorithm) HashFunc1(key []byte) int64 {
	return M.index(murmur3.Sum64(key))
}
