package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/record"
	"math"
)

// Conf - Configuration for a new chain hash map, Go zero values select the defaults.
//   - InitialCapacity is the number of buckets to start with, the hash algorithm may round it up (default 16)
//   - LoadFactor is the max ratio of records to buckets, exceeding it makes the map grow (default 0.75)
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
type Conf struct {
	InitialCapacity int64
	LoadFactor      float64
	HashAlgorithm   hashfunc.HashAlgorithm
}

// TableInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the number of buckets the map starts with
//   - LoadFactor is the load factor in use
//   - InternalAlgorithm is true if one of the internal hash algorithms is used
type TableInfo struct {
	NumberOfBuckets   int64
	LoadFactor        float64
	InternalAlgorithm bool
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the current number of buckets
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the fullest bucket
//   - AverageChainLength is the average number of records in used buckets
//   - FillFactor is records divided by buckets
//   - Resizes is the number of times the map has grown
//   - BucketDistribution is the number of records stored in each bucket
type TableStat struct {
	Records            int
	NumberOfBuckets    int64
	UsedBuckets        int64
	LongestChain       int
	AverageChainLength float64
	FillFactor         float64
	Resizes            int
	BucketDistribution []int64
}

// ChainHashMap - The main implementation struct. It is not safe for concurrent use.
type ChainHashMap struct {
	buckets           []chain.Chain
	records           int
	loadFactor        float64
	resizes           int
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewChainHashMap - Returns a new empty chain hash map.
//   - mapConf is a Conf struct, its zero value gives a map with 16 buckets, load factor 0.75 and the internal hash algorithm.
//
// It returns:
//   - chainHashMap is a pointer to a ChainHashMap struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewChainHashMap(mapConf Conf) (chainHashMap *ChainHashMap, tableInfo TableInfo, err error) {
	initialCapacity := mapConf.InitialCapacity
	if initialCapacity == 0 {
		initialCapacity = conf.DefaultInitialCapacity
	}
	loadFactor := mapConf.LoadFactor
	if loadFactor == 0 {
		loadFactor = conf.DefaultLoadFactor
	}

	// Check if initialCapacity is valid
	if initialCapacity < 0 {
		err = fmt.Errorf("initial capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if loadFactor is valid
	if loadFactor < 0 || loadFactor > conf.MaxLoadFactor || math.IsNaN(loadFactor) {
		err = fmt.Errorf("load factor must be higher than 0 (zero) and at most %.1f", conf.MaxLoadFactor)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	hashAlgorithm := mapConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm(initialCapacity)
	} else {
		hashAlgorithm.SetTableSize(initialCapacity)
	}
	internalAlg := hash.IsInternal(hashAlgorithm)

	tableSize := hashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reported a table size of %d, it must be higher than 0 (zero)", tableSize)
		return
	}

	buckets, err := allocateBuckets(tableSize)
	if err != nil {
		return
	}

	chainHashMap = &ChainHashMap{
		buckets:           buckets,
		loadFactor:        loadFactor,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	tp := chainHashMap.getTableParameters()

	tableInfo = TableInfo{
		NumberOfBuckets:   tp.NumberOfBuckets,
		LoadFactor:        tp.LoadFactor,
		InternalAlgorithm: tp.InternalAlgorithm,
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (C *ChainHashMap) Stat(includeDistribution bool) (tableStat *TableStat) {
	tp := C.getTableParameters()
	ts := TableStat{
		Records:         tp.Records,
		NumberOfBuckets: tp.NumberOfBuckets,
		FillFactor:      tp.FillFactor(),
		Resizes:         tp.Resizes,
	}

	if includeDistribution {
		ts.BucketDistribution = make([]int64, len(C.buckets))
	}

	// Iterate over every available bucket
	for i := range C.buckets {
		n := C.buckets[i].Len()
		if n > 0 {
			ts.UsedBuckets++
		}
		if n > ts.LongestChain {
			ts.LongestChain = n
		}
		if includeDistribution {
			ts.BucketDistribution[i] = int64(n)
		}
	}

	if ts.UsedBuckets > 0 {
		ts.AverageChainLength = float64(ts.Records) / float64(ts.UsedBuckets)
	}

	tableStat = &ts
	return
}

// getTableParameters - Returns a struct with the current sizing of the map
func (C *ChainHashMap) getTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		NumberOfBuckets:   int64(len(C.buckets)),
		Records:           C.records,
		LoadFactor:        C.loadFactor,
		Resizes:           C.resizes,
		InternalAlgorithm: C.internalAlgorithm,
	}

	return
}

// resize - Grows the bucket array to at least GrowthFactor times its current size, or more if that is what the
// load factor needs for the current number of records, and relinks every entry into the bucket its hash gives under
// the new table size. Entries are moved, not copied, so each one ends up in exactly one chain.
// On failure the map keeps its old bucket array and table size.
func (C *ChainHashMap) resize() (err error) {
	oldSize := int64(len(C.buckets))
	if oldSize > math.MaxInt64/conf.GrowthFactor {
		err = crt.NewResizeFailed(fmt.Sprintf("can not grow beyond %d buckets", oldSize))
		return
	}

	targetSize := oldSize * conf.GrowthFactor
	if needed := math.Ceil(float64(C.records) / C.loadFactor); needed > float64(targetSize) {
		if needed >= math.MaxInt64 {
			err = crt.NewResizeFailed(fmt.Sprintf("can not grow to %.0f buckets", needed))
			return
		}
		targetSize = int64(needed)
	}

	C.hashAlgorithm.SetTableSize(targetSize)
	newSize := C.hashAlgorithm.GetTableSize()
	if newSize <= oldSize {
		C.hashAlgorithm.SetTableSize(oldSize)
		err = crt.NewResizeFailed(fmt.Sprintf("hash algorithm did not grow table size beyond %d buckets", oldSize))
		return
	}

	// A custom algorithm must be checked before anything is moved, the internal ones are known to stay in range
	if !C.internalAlgorithm {
		if err = C.checkBucketRange(newSize); err != nil {
			C.hashAlgorithm.SetTableSize(oldSize)
			return
		}
	}

	newBuckets, err := allocateBuckets(newSize)
	if err != nil {
		C.hashAlgorithm.SetTableSize(oldSize)
		return
	}

	for i := range C.buckets {
		C.buckets[i].Drain(func(entry *chain.Entry) {
			newBuckets[C.hashAlgorithm.HashFunc1(entry.Record.Key())].Push(entry)
		})
	}

	C.buckets = newBuckets
	C.resizes++

	return
}

// checkBucketRange - Verifies that every stored key hashes within the given table size
func (C *ChainHashMap) checkBucketRange(tableSize int64) (err error) {
	C.Range(func(rec record.Record) bool {
		bucketNo := C.hashAlgorithm.HashFunc1(rec.Key())
		if bucketNo < 0 || bucketNo >= tableSize {
			err = crt.NewResizeFailed(fmt.Sprintf("hash algorithm gave bucket %d outside new table size %d", bucketNo, tableSize))
			return false
		}
		return true
	})

	return
}

// allocateBuckets - Allocates a bucket array. A size the runtime refuses to allocate is reported as ResizeFailed
// instead of a panic.
func allocateBuckets(tableSize int64) (buckets []chain.Chain, err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = crt.NewResizeFailed(fmt.Sprintf("can not allocate %d buckets: %v", tableSize, r))
		}
	}()

	if int64(int(tableSize)) != tableSize {
		err = crt.NewResizeFailed(fmt.Sprintf("can not allocate %d buckets on this platform", tableSize))
		return
	}
	buckets = make([]chain.Chain, tableSize)

	return
}
