// Package bench times insert, search and delete of a dataset against fresh chain hash maps, once per input ordering.
package bench

import (
	"context"
	"time"

	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/logutil"
	"github.com/gostonefire/chainhashmap/record"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// TableOptions - How the chain hash map of every phase is built
type TableOptions struct {
	InitialCapacity int64   `json:"initial_capacity"`
	LoadFactor      float64 `json:"load_factor"`
	Hash            string  `json:"hash"`
	Sizing          string  `json:"sizing,omitempty"`
}

// Options - Options of a run
//   - Table describes the chain hash maps to build
//   - Seed is the seed of the shuffled ordering, 0 picks a time based seed
//   - Metrics receives phase timings if not nil
type Options struct {
	Table   TableOptions
	Seed    int64
	Metrics *Metrics
}

// PhaseResult - Timings of one ordering
type PhaseResult struct {
	Ordering Ordering
	Insert   time.Duration
	Search   time.Duration
	Delete   time.Duration
	// Buckets is the number of buckets the map ended with
	Buckets int64
	// Resizes is the number of times the map grew during the insert loop
	Resizes int
}

// Result - Outcome of a run
type Result struct {
	N         int
	Seed      int64
	Table     TableOptions
	Timestamp time.Time
	Phases    []PhaseResult
}

// Phase - Returns the result of an ordering
func (r Result) Phase(o Ordering) (PhaseResult, bool) {
	for _, p := range r.Phases {
		if p.Ordering == o {
			return p, true
		}
	}
	return PhaseResult{}, false
}

// newHashAlgorithm - Builds the hash algorithm of each phase, replaced in tests
var newHashAlgorithm = hash.NewHashAlgorithm

// newTable - Returns a new empty chain hash map with its own hash algorithm instance
func (t TableOptions) newTable() (*chainhashmap.ChainHashMap, error) {
	ha, err := newHashAlgorithm(t.Hash, t.Sizing, t.InitialCapacity)
	if err != nil {
		return nil, errors.Trace(err)
	}

	table, _, err := chainhashmap.NewChainHashMap(chainhashmap.Conf{
		InitialCapacity: t.InitialCapacity,
		LoadFactor:      t.LoadFactor,
		HashAlgorithm:   ha,
	})

	return table, errors.Trace(err)
}

// Run - Runs the sorted, shuffled and reversed phases one after the other. Each phase gets a new empty map, inserts
// all records, searches all records and finally removes all records, timing each of the three loops.
// The context is checked between phases. A map that fails to grow aborts the run.
func Run(ctx context.Context, records []record.Record, opts Options) (Result, error) {
	views := NewViews(records, opts.Seed)
	result := Result{
		N:         len(records),
		Seed:      views.Seed,
		Table:     opts.Table,
		Timestamp: time.Now(),
	}

	for _, o := range Orderings {
		if err := ctx.Err(); err != nil {
			return result, errors.Trace(err)
		}

		phase, err := runPhase(o, views.Get(o), opts.Table)
		if err != nil {
			return result, errors.Annotatef(err, "%s phase", o)
		}
		opts.Metrics.observe(phase, len(records))
		result.Phases = append(result.Phases, phase)

		logutil.BgLogger().Info("phase done",
			zap.String("ordering", string(o)),
			zap.Int("records", len(records)),
			zap.Duration("insert", phase.Insert),
			zap.Duration("search", phase.Search),
			zap.Duration("delete", phase.Delete),
			zap.Int64("buckets", phase.Buckets),
			zap.Int("resizes", phase.Resizes))
	}

	return result, nil
}

// runPhase - Times the three loops of one ordering against a fresh map
func runPhase(o Ordering, records []record.Record, tableOpts TableOptions) (phase PhaseResult, err error) {
	phase.Ordering = o

	table, err := tableOpts.newTable()
	if err != nil {
		return
	}

	start := time.Now()
	for _, r := range records {
		if err = table.Insert(r); err != nil {
			err = errors.Annotatef(err, "insert %s", r.Slug)
			return
		}
	}
	phase.Insert = time.Since(start)

	var found int
	start = time.Now()
	for _, r := range records {
		if table.Contains(r) {
			found++
		}
	}
	phase.Search = time.Since(start)

	phase.Buckets = table.NumberOfBuckets()
	phase.Resizes = table.Resizes()

	start = time.Now()
	for _, r := range records {
		table.Remove(r)
	}
	phase.Delete = time.Since(start)

	if found != len(records) {
		err = errors.Errorf("search found %d of %d records", found, len(records))
		return
	}
	if table.Len() != 0 {
		err = errors.Errorf("%d records left after removing all", table.Len())
		return
	}

	return
}
