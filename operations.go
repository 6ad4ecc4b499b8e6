package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/record"
)

// Insert - Adds a record to the map or, if a record with the same identity (slug) already exists, overwrites it.
// When the number of records exceeds the load factor the map grows, as many times as needed, and rehashes all records.
//   - rec is the record to insert, its Slug is the key
//
// It returns:
//   - err is nil in normal operation. It is of type ResizeFailed if the map needed to grow but could not, the record
//     is then stored but the map no longer honours its load factor. It is a standard error if a custom hash algorithm
//     returned a bucket number out of range.
func (C *ChainHashMap) Insert(rec record.Record) (err error) {
	bucketNo, err := C.GetBucketNo(rec.Key())
	if err != nil {
		return
	}

	if !C.buckets[bucketNo].Upsert(rec) {
		return
	}
	C.records++

	for float64(C.records) > C.loadFactor*float64(len(C.buckets)) {
		if err = C.resize(); err != nil {
			return
		}
	}

	return
}

// Contains - Returns true if a record with the same identity as rec is stored in the map
func (C *ChainHashMap) Contains(rec record.Record) bool {
	return C.ContainsKey(rec.Slug)
}

// ContainsKey - Returns true if a record with the given slug is stored in the map
func (C *ChainHashMap) ContainsKey(slug string) bool {
	bucketNo, err := C.GetBucketNo([]byte(slug))
	if err != nil {
		return false
	}

	return C.buckets[bucketNo].Find(slug) != nil
}

// Get - Gets the record that corresponds to the given slug.
//   - slug is the identity of a record
//
// It returns:
//   - rec is the matching record if found.
//   - err is of type NoRecordFound if no record was found, or a standard error if the hash algorithm failed.
func (C *ChainHashMap) Get(slug string) (rec record.Record, err error) {
	bucketNo, err := C.GetBucketNo([]byte(slug))
	if err != nil {
		return
	}

	entry := C.buckets[bucketNo].Find(slug)
	if entry == nil {
		err = NoRecordFound{}
		return
	}

	rec = entry.Record

	return
}

// Remove - Removes the record with the same identity as rec. Removing a record that is not stored is a no-op.
// The map never shrinks.
// It returns true if a record was removed.
func (C *ChainHashMap) Remove(rec record.Record) bool {
	return C.RemoveKey(rec.Slug)
}

// RemoveKey - Removes the record with the given slug, see Remove
func (C *ChainHashMap) RemoveKey(slug string) bool {
	bucketNo, err := C.GetBucketNo([]byte(slug))
	if err != nil {
		return false
	}

	if !C.buckets[bucketNo].Unlink(slug) {
		return false
	}
	C.records--

	return true
}

// Len - Returns the number of records stored
func (C *ChainHashMap) Len() int {
	return C.records
}

// NumberOfBuckets - Returns the current number of buckets
func (C *ChainHashMap) NumberOfBuckets() int64 {
	return int64(len(C.buckets))
}

// LoadFactor - Returns the configured load factor
func (C *ChainHashMap) LoadFactor() float64 {
	return C.loadFactor
}

// Resizes - Returns the number of times the map has grown
func (C *ChainHashMap) Resizes() int {
	return C.resizes
}

// Range - Calls fn for every stored record, bucket by bucket, until fn returns false.
// The map must not be modified from within fn.
func (C *ChainHashMap) Range(fn func(rec record.Record) bool) {
	for i := range C.buckets {
		iter := C.buckets[i].Iterator()
		for iter.HasNext() {
			rec, err := iter.Next()
			if err != nil {
				return
			}
			if !fn(rec) {
				return
			}
		}
	}
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (C *ChainHashMap) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo = C.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= int64(len(C.buckets)) {
		err = fmt.Errorf("received bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}
