package bench

import (
	"math/rand"
	"slices"
	"time"

	"github.com/gostonefire/chainhashmap/record"
)

// Ordering - Name of one of the three input orders a phase is run with
type Ordering string

const (
	Sorted   Ordering = "sorted"
	Shuffled Ordering = "shuffled"
	Reversed Ordering = "reversed"
)

// Orderings - The phases of a run in the order they are executed
var Orderings = []Ordering{Sorted, Shuffled, Reversed}

// Title - Capitalized name used in the printed summary
func (o Ordering) Title() string {
	switch o {
	case Sorted:
		return "Sorted"
	case Shuffled:
		return "Shuffled"
	case Reversed:
		return "Reversed"
	default:
		return string(o)
	}
}

// Views - The same records in each of the three orders. The slices are copies, the records are shared.
type Views struct {
	Sorted   []record.Record
	Shuffled []record.Record
	Reversed []record.Record
	// Seed is the seed the shuffled view was made with
	Seed int64
}

// Get - Returns the view for an ordering
func (v Views) Get(o Ordering) []record.Record {
	switch o {
	case Sorted:
		return v.Sorted
	case Shuffled:
		return v.Shuffled
	case Reversed:
		return v.Reversed
	default:
		return nil
	}
}

// NewViews - Builds the three orderings of records. Sorted follows record.Compare, reversed is the opposite order and
// shuffled is a permutation drawn from seed, where a seed of 0 is replaced by a time based one.
func NewViews(records []record.Record, seed int64) Views {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b record.Record) int { return a.Compare(b) })

	reversed := slices.Clone(records)
	slices.SortStableFunc(reversed, func(a, b record.Record) int { return b.Compare(a) })

	shuffled := slices.Clone(records)
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return Views{Sorted: sorted, Shuffled: shuffled, Reversed: reversed, Seed: seed}
}
