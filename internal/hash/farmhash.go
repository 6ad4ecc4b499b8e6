package hash

import (
	"github.com/dgryski/go-farm"
)

// FarmHashAlgorithm - Bucket selection using Google's farmhash Hash64 of the key
type FarmHashAlgorithm struct {
	table
}

// NewFarmHashAlgorithm - Returns a pointer to a new FarmHashAlgorithm instance
func NewFarmHashAlgorithm(tableSize int64, sizing Sizing) *FarmHashAlgorithm {
	ha := &FarmHashAlgorithm{table: table{sizing: sizing}}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (F *FarmHashAlgorithm) HashFunc1(key []byte) int64 {
	return F.index(farm.Hash64(key))
}
