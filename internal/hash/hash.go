package hash

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"sort"
)

// Algorithm names as used in configuration
const (
	CRC32      = "crc32"
	Murmur3    = "murmur3"
	XXHash     = "xxhash"
	Farm       = "farm"
	Polynomial = "polynomial"
)

// defaultSizing - The sizing each algorithm uses unless told otherwise
var defaultSizing = map[string]Sizing{
	CRC32:      PowerOfTwo,
	Murmur3:    PowerOfTwo,
	XXHash:     PowerOfTwo,
	Farm:       PowerOfTwo,
	Polynomial: Prime,
}

// Names - Returns the names of all internal hash algorithms in alphabetical order
func Names() []string {
	names := make([]string, 0, len(defaultSizing))
	for name := range defaultSizing {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NewHashAlgorithm - Returns an internal hash algorithm given its name.
//   - name is one of the names returned by Names
//   - sizing is either "pow2", "prime" or empty to use the default sizing of the algorithm
//   - tableSize is the initial requested table size
func NewHashAlgorithm(name, sizing string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	s, ok := defaultSizing[name]
	if !ok {
		err = fmt.Errorf("unknown hash algorithm '%s'", name)
		return
	}
	if sizing != "" {
		s, err = ParseSizing(sizing)
		if err != nil {
			return
		}
	}

	switch name {
	case CRC32:
		ha := &SeparateChainingHashAlgorithm{table: table{sizing: s}}
		ha.SetTableSize(tableSize)
		hashAlgorithm = ha
	case Murmur3:
		hashAlgorithm = NewMurmur3HashAlgorithm(tableSize, s)
	case XXHash:
		hashAlgorithm = NewXXHashAlgorithm(tableSize, s)
	case Farm:
		hashAlgorithm = NewFarmHashAlgorithm(tableSize, s)
	case Polynomial:
		hashAlgorithm = NewPolynomialHashAlgorithm(tableSize, s)
	}

	return
}

// IsInternal - Returns true if the hash algorithm is one of the internal implementations, which are known to always
// return bucket numbers within their table size
func IsInternal(hashAlgorithm hashfunc.HashAlgorithm) bool {
	switch hashAlgorithm.(type) {
	case *SeparateChainingHashAlgorithm, *Murmur3HashAlgorithm, *XXHashAlgorithm, *FarmHashAlgorithm, *PolynomialHashAlgorithm:
		return true
	default:
		return false
	}
}
