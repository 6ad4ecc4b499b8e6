package conf

// DefaultInitialCapacity - Number of buckets requested for a new map when no capacity is given
const DefaultInitialCapacity int64 = 16

// DefaultLoadFactor - Max ratio of records to buckets before the map grows
const DefaultLoadFactor float64 = 0.75

// MaxLoadFactor - Upper limit for a configured load factor, higher values only make chains long
const MaxLoadFactor float64 = 8.0

// GrowthFactor - Each resize asks the hash algorithm for at least this many times the current table size
const GrowthFactor int64 = 2
