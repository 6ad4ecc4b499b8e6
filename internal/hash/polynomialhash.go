package hash

// PolynomialHashAlgorithm - Bucket selection using the classic 31 based polynomial string hash computed with 32 bit
// signed overflow (Horner's rule). The hash may come out negative so the sign bit is masked off before it is
// reduced to a bucket number.
type PolynomialHashAlgorithm struct {
	table
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64, sizing Sizing) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{table: table{sizing: sizing}}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc1(key []byte) int64 {
	h := PolynomialHash(key)
	return P.index(uint64(h & 0x7fffffff))
}

// PolynomialHash - Returns s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1] in int32 arithmetic
func PolynomialHash(key []byte) int32 {
	var h int32
	for _, b := range key {
		h = 31*h + int32(b)
	}
	return h
}
