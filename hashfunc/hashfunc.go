package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ChainHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new chain hash map and every time the map grows. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the number of buckets the map asks for.
	//   - tableSize is the minimum number of buckets the map wants to address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be pure, keys that are equal must always give the same index for a given table size.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	// It is very important that this function return the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x, or to
	// the nearest prime, and if such operations are built in the implementation of this interface it must be covered
	// in the GetTableSize.
	GetTableSize() int64
}
