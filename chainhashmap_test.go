//go:build unit

package chainhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/record"
	"github.com/stretchr/testify/assert"
	"testing"
)

// stuckHashAlgorithm - Accepts its first table size and then refuses to grow
type stuckHashAlgorithm struct {
	tableSize int64
}

func (S *stuckHashAlgorithm) SetTableSize(tableSize int64) {
	if S.tableSize == 0 {
		S.tableSize = tableSize
	}
}
func (S *stuckHashAlgorithm) HashFunc1(key []byte) int64 { return int64(len(key)) % S.tableSize }
func (S *stuckHashAlgorithm) GetTableSize() int64        { return S.tableSize }

// collidingHashAlgorithm - Puts every key in bucket 0
type collidingHashAlgorithm struct {
	tableSize int64
}

func (O *collidingHashAlgorithm) SetTableSize(tableSize int64) { O.tableSize = tableSize }
func (O *collidingHashAlgorithm) HashFunc1(key []byte) int64   { return 0 }
func (O *collidingHashAlgorithm) GetTableSize() int64          { return O.tableSize }

// outOfRangeHashAlgorithm - Returns a bucket number equal to the table size once the table has grown
type outOfRangeHashAlgorithm struct {
	tableSize int64
	grown     bool
}

func (O *outOfRangeHashAlgorithm) SetTableSize(tableSize int64) {
	O.grown = O.tableSize != 0 && tableSize > O.tableSize
	O.tableSize = tableSize
}
func (O *outOfRangeHashAlgorithm) HashFunc1(key []byte) int64 {
	if O.grown {
		return O.tableSize
	}
	return 0
}
func (O *outOfRangeHashAlgorithm) GetTableSize() int64 { return O.tableSize }

func player(slug string, overall int) record.Record {
	return record.New(slug, fmt.Sprintf("Name %s", slug), fmt.Sprintf("Full Name %s", slug), "CM", overall, overall+2)
}

func TestNewChainHashMap(t *testing.T) {
	t.Run("creates chain hash map with defaults", func(t *testing.T) {
		// Execute
		chm, info, err := NewChainHashMap(Conf{})

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.Equal(t, int64(16), info.NumberOfBuckets, "default capacity")
		assert.Equal(t, 0.75, info.LoadFactor, "default load factor")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
		assert.Equal(t, 0, chm.Len(), "empty")
		assert.Equal(t, int64(16), chm.NumberOfBuckets(), "buckets allocated")
	})

	t.Run("rounds capacity according to hash algorithm", func(t *testing.T) {
		// Prepare
		ha, err := hash.NewHashAlgorithm(hash.Polynomial, "prime", 10)
		assert.NoError(t, err)

		// Execute
		chm, info, err := NewChainHashMap(Conf{InitialCapacity: 100, HashAlgorithm: ha})

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.Equal(t, int64(101), info.NumberOfBuckets, "prime capacity")
		assert.Equal(t, int64(101), chm.NumberOfBuckets(), "prime capacity")
		assert.True(t, info.InternalAlgorithm, "named algorithms are internal")
	})

	t.Run("custom algorithm is not internal", func(t *testing.T) {
		// Execute
		_, info, err := NewChainHashMap(Conf{HashAlgorithm: &collidingHashAlgorithm{}})

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.False(t, info.InternalAlgorithm, "custom algorithm")
	})

	t.Run("error when supplying an invalid capacity", func(t *testing.T) {
		// Execute
		_, _, err := NewChainHashMap(Conf{InitialCapacity: -1})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying an invalid load factor", func(t *testing.T) {
		// Execute
		_, _, err1 := NewChainHashMap(Conf{LoadFactor: -0.5})
		_, _, err2 := NewChainHashMap(Conf{LoadFactor: 9})

		// Check
		assert.Error(t, err1)
		assert.Error(t, err2)
	})
}

func TestChainHashMap_Insert(t *testing.T) {
	t.Run("insert, search and remove", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{})
		assert.NoError(t, err)

		// Execute
		assert.NoError(t, chm.Insert(player("a", 70)))
		assert.NoError(t, chm.Insert(player("b", 85)))
		assert.NoError(t, chm.Insert(player("c", 85)))

		// Check
		assert.True(t, chm.ContainsKey("b"), "b is member")
		assert.False(t, chm.ContainsKey("z"), "z is not member")
		assert.True(t, chm.Remove(player("b", 85)), "b removed")
		assert.False(t, chm.Contains(player("b", 85)), "b no longer member")
		assert.Equal(t, 2, chm.Len(), "two left")
	})

	t.Run("grows and keeps all records findable", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 16, LoadFactor: 0.75})
		assert.NoError(t, err)

		// Execute
		for i := 0; i < 1000; i++ {
			err = chm.Insert(player(fmt.Sprintf("player-%d", i), 50+i%50))
			assert.NoError(t, err, "insert")
			assert.LessOrEqual(t, float64(chm.Len())/float64(chm.NumberOfBuckets()), 0.75, "load factor bound")
		}

		// Check
		assert.Equal(t, 1000, chm.Len(), "all distinct records counted")
		assert.GreaterOrEqual(t, float64(chm.NumberOfBuckets()), 1000/0.75, "capacity grown")
		assert.Equal(t, int64(2048), chm.NumberOfBuckets(), "doubled up to power of two")
		assert.Equal(t, 7, chm.Resizes(), "16 -> 2048 takes seven doublings")
		for i := 0; i < 1000; i++ {
			if !chm.ContainsKey(fmt.Sprintf("player-%d", i)) {
				assert.Fail(t, "all records findable", "player-%d missing", i)
			}
		}
		var n int
		chm.Range(func(rec record.Record) bool { n++; return true })
		assert.Equal(t, 1000, n, "no record duplicated by rehash")
	})

	t.Run("small load factors grow past a single doubling", func(t *testing.T) {
		// Prepare
		tests := []struct {
			capacity   int64
			loadFactor float64
			sizing     string
		}{
			{capacity: 1, loadFactor: 0.25, sizing: "pow2"},
			{capacity: 16, loadFactor: 0.01, sizing: "pow2"},
			{capacity: 4, loadFactor: 0.1, sizing: "pow2"},
			{capacity: 3, loadFactor: 0.1, sizing: "prime"},
		}

		for _, test := range tests {
			ha, err := hash.NewHashAlgorithm(hash.CRC32, test.sizing, test.capacity)
			assert.NoError(t, err)
			chm, _, err := NewChainHashMap(Conf{InitialCapacity: test.capacity, LoadFactor: test.loadFactor, HashAlgorithm: ha})
			assert.NoError(t, err)

			// Execute and Check
			for i := 0; i < 5; i++ {
				assert.NoError(t, chm.Insert(player(fmt.Sprintf("p%d", i), 70)), "insert")
				assert.LessOrEqual(t, float64(chm.Len()), test.loadFactor*float64(chm.NumberOfBuckets()),
					"capacity %d, load factor %v, after insert %d", test.capacity, test.loadFactor, i+1)
			}
			assert.Equal(t, 5, chm.Len(), "all records counted")
		}
	})

	t.Run("reaches the needed size in one resize", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 1, LoadFactor: 0.25})
		assert.NoError(t, err)

		// Execute
		err = chm.Insert(player("p0", 70))

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(4), chm.NumberOfBuckets(), "1 record at load factor 0.25 needs 4 buckets")
		assert.Equal(t, 1, chm.Resizes(), "one resize")
	})

	t.Run("duplicate identity overwrites", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{})
		assert.NoError(t, err)

		// Execute
		assert.NoError(t, chm.Insert(player("dup", 60)))
		assert.NoError(t, chm.Insert(player("dup", 90)))

		// Check
		assert.True(t, chm.ContainsKey("dup"), "dup is member")
		assert.Equal(t, 1, chm.Len(), "counted once")
		rec, err := chm.Get("dup")
		assert.NoError(t, err, "gets dup")
		assert.Equal(t, 90, rec.Overall, "latest record wins")
	})

	t.Run("degrades gracefully when every key collides", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{HashAlgorithm: &collidingHashAlgorithm{}})
		assert.NoError(t, err)

		// Execute
		for i := 0; i < 200; i++ {
			assert.NoError(t, chm.Insert(player(fmt.Sprintf("p%d", i), 70)))
		}

		// Check
		stat := chm.Stat(false)
		assert.Equal(t, 200, stat.Records, "all stored")
		assert.Equal(t, int64(1), stat.UsedBuckets, "one bucket used")
		assert.Equal(t, 200, stat.LongestChain, "one long chain")
		assert.True(t, chm.ContainsKey("p199"), "still findable")
	})

	t.Run("reports ResizeFailed when the table can not grow", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 4, LoadFactor: 1, HashAlgorithm: &stuckHashAlgorithm{}})
		assert.NoError(t, err)
		for i := 0; i < 4; i++ {
			assert.NoError(t, chm.Insert(player(fmt.Sprintf("p%d", i), 70)))
		}

		// Execute
		err = chm.Insert(player("p4", 70))

		// Check
		assert.True(t, errors.Is(err, ResizeFailed{}), "resize failed")
		assert.Equal(t, int64(4), chm.NumberOfBuckets(), "old bucket array kept")
		assert.Equal(t, 5, chm.Len(), "record stored")
		for i := 0; i < 5; i++ {
			assert.True(t, chm.ContainsKey(fmt.Sprintf("p%d", i)), "membership intact")
		}
	})

	t.Run("reports ResizeFailed when a custom algorithm leaves the new range", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 2, LoadFactor: 1, HashAlgorithm: &outOfRangeHashAlgorithm{}})
		assert.NoError(t, err)
		assert.NoError(t, chm.Insert(player("p0", 70)))
		assert.NoError(t, chm.Insert(player("p1", 70)))

		// Execute
		err = chm.Insert(player("p2", 70))

		// Check
		assert.True(t, errors.Is(err, ResizeFailed{}), "resize failed")
		assert.Equal(t, int64(2), chm.NumberOfBuckets(), "old bucket array kept")
		assert.True(t, chm.ContainsKey("p2"), "record reachable with restored table size")
	})
}

func TestChainHashMap_Remove(t *testing.T) {
	t.Run("removing an absent record is a no-op", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{})
		assert.NoError(t, err)
		assert.NoError(t, chm.Insert(player("a", 70)))

		// Execute
		removed1 := chm.RemoveKey("ghost")
		removed2 := chm.RemoveKey("ghost")

		// Check
		assert.False(t, removed1, "nothing removed")
		assert.False(t, removed2, "nothing removed")
		assert.Equal(t, 1, chm.Len(), "size unaffected")
	})

	t.Run("capacity never shrinks", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 4})
		assert.NoError(t, err)
		for i := 0; i < 100; i++ {
			assert.NoError(t, chm.Insert(player(fmt.Sprintf("p%d", i), 70)))
		}
		buckets := chm.NumberOfBuckets()

		// Execute
		for i := 0; i < 100; i++ {
			assert.True(t, chm.RemoveKey(fmt.Sprintf("p%d", i)), "removed")
		}

		// Check
		assert.Equal(t, 0, chm.Len(), "empty")
		assert.Equal(t, buckets, chm.NumberOfBuckets(), "capacity kept")
	})
}

func TestChainHashMap_Get(t *testing.T) {
	t.Run("returns NoRecordFound for absent slug", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{})
		assert.NoError(t, err)

		// Execute
		_, err = chm.Get("nobody")

		// Check
		assert.True(t, errors.Is(err, NoRecordFound{}), "no record found")
	})
}

func TestChainHashMap_Stat(t *testing.T) {
	t.Run("collects distribution", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 64})
		assert.NoError(t, err)
		for i := 0; i < 40; i++ {
			assert.NoError(t, chm.Insert(player(fmt.Sprintf("p%d", i), 70)))
		}

		// Execute
		stat := chm.Stat(true)

		// Check
		var sum int64
		for _, n := range stat.BucketDistribution {
			sum += n
		}
		assert.Equal(t, 40, stat.Records, "records counted")
		assert.Equal(t, int64(64), stat.NumberOfBuckets, "no resize needed")
		assert.Len(t, stat.BucketDistribution, 64, "one entry per bucket")
		assert.Equal(t, int64(40), sum, "distribution adds up")
		assert.InDelta(t, 40.0/64.0, stat.FillFactor, 1e-9, "fill factor")
		assert.Greater(t, stat.UsedBuckets, int64(0), "buckets used")
		assert.GreaterOrEqual(t, stat.AverageChainLength, 1.0, "average over used buckets")
	})

	t.Run("no distribution unless asked for", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Conf{})
		assert.NoError(t, err)

		// Execute
		stat := chm.Stat(false)

		// Check
		assert.Nil(t, stat.BucketDistribution, "no distribution")
		assert.Zero(t, stat.AverageChainLength, "no used buckets")
	})
}

func TestChainHashMap_GetBucketNo(t *testing.T) {
	t.Run("error when algorithm returns bucket out of range", func(t *testing.T) {
		// Prepare
		ha := &outOfRangeHashAlgorithm{}
		chm, _, err := NewChainHashMap(Conf{InitialCapacity: 2, HashAlgorithm: ha})
		assert.NoError(t, err)
		ha.grown = true

		// Execute
		_, err = chm.GetBucketNo([]byte("x"))
		insertErr := chm.Insert(player("x", 70))

		// Check
		assert.Error(t, err, "bucket out of range")
		assert.Error(t, insertErr, "insert refused")
		assert.False(t, chm.ContainsKey("x"), "lookup is a plain miss")
		assert.Equal(t, 0, chm.Len(), "nothing stored")
	})
}
