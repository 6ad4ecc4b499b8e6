package hash

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// Sizing - How an algorithm rounds a requested table size and reduces a hash value to a bucket index
type Sizing int

const (
	// PowerOfTwo - Table size is rounded up to 2 to the power of x and the hash is masked with table size - 1
	PowerOfTwo Sizing = iota
	// Prime - Table size is rounded up to the nearest prime and the hash is reduced modulo table size
	Prime
)

// String - Returns the configuration name of the sizing
func (S Sizing) String() string {
	switch S {
	case PowerOfTwo:
		return "pow2"
	case Prime:
		return "prime"
	default:
		return fmt.Sprintf("Sizing(%d)", int(S))
	}
}

// ParseSizing - Returns the Sizing given its configuration name
func ParseSizing(name string) (sizing Sizing, err error) {
	switch name {
	case "pow2":
		sizing = PowerOfTwo
	case "prime":
		sizing = Prime
	default:
		err = fmt.Errorf("unknown table sizing '%s', use pow2 or prime", name)
	}

	return
}

// table - Table size bookkeeping shared by all internal hash algorithms
type table struct {
	tableSize int64
	sizing    Sizing
}

// SetTableSize - Sets the table size rounded according to sizing.
// If no prime can be found the table size is left as is, which the map reports as a failed resize.
//   - tableSize is the minimum number of buckets the map wants to address
func (T *table) SetTableSize(tableSize int64) {
	switch T.sizing {
	case Prime:
		if p, ok := utils.NextPrime(tableSize); ok {
			T.tableSize = p
		}
	default:
		T.tableSize = utils.RoundUp2(tableSize)
	}
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (T *table) GetTableSize() int64 {
	return T.tableSize
}

// index - Reduces an unsigned hash value to a bucket number between 0 and table size - 1
func (T *table) index(h uint64) int64 {
	if T.sizing == PowerOfTwo {
		return int64(h & uint64(T.tableSize-1))
	}
	return int64(h % uint64(T.tableSize))
}
