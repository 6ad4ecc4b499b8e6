package model

// TableParameters - Represents the current sizing of a chain hash map
type TableParameters struct {
	NumberOfBuckets   int64
	Records           int
	LoadFactor        float64
	Resizes           int
	InternalAlgorithm bool
}

// FillFactor - Returns the current ratio of records to buckets
func (T TableParameters) FillFactor() float64 {
	if T.NumberOfBuckets == 0 {
		return 0
	}
	return float64(T.Records) / float64(T.NumberOfBuckets)
}
