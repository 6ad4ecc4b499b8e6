package record

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Record - One player entry of the dataset. Records are immutable values and are shared between all orderings
// and all tables of a benchmark run.
//   - Slug is the identity of the record and the only field used for hashing and equality
//   - Name is the short display name
//   - FullName is the full display name
//   - BestPosition is the position code, e.g. "ST" or "CB"
//   - Overall is the overall rating (conventionally 0-99)
//   - Potential is the potential rating (conventionally 0-99)
type Record struct {
	Slug         string
	Name         string
	FullName     string
	BestPosition string
	Overall      int
	Potential    int
}

// New - Returns a new Record
func New(slug, name, fullName, bestPosition string, overall, potential int) Record {
	return Record{
		Slug:         slug,
		Name:         name,
		FullName:     fullName,
		BestPosition: bestPosition,
		Overall:      overall,
		Potential:    potential,
	}
}

// Key - Returns the identity as bytes, which is what hash algorithms are fed with
func (R Record) Key() []byte {
	return []byte(R.Slug)
}

// Equal - Returns true if both records have the exact same identity (case-sensitive)
func (R Record) Equal(other Record) bool {
	return R.Slug == other.Slug
}

// Compare - Natural order of records: overall rating descending, then name ascending and at last slug ascending.
// Name and slug are compared ignoring case, which gives a total order even when many players share rating and name.
// It returns a negative number if R sorts before other, zero if equal in order and positive if after.
func (R Record) Compare(other Record) int {
	if R.Overall != other.Overall {
		if R.Overall > other.Overall {
			return -1
		}
		return 1
	}

	if c := compareIgnoreCase(R.Name, other.Name); c != 0 {
		return c
	}

	return compareIgnoreCase(R.Slug, other.Slug)
}

// String - Short representation with the key info of the player
func (R Record) String() string {
	return fmt.Sprintf("Record{name='%s', overall=%d, potential=%d, best_position='%s'}",
		R.Name, R.Overall, R.Potential, R.BestPosition)
}

// compareIgnoreCase - Compares two strings rune by rune where each rune pair is folded to upper and then to lower
// case before comparison. Shorter strings sort first when one is a prefix of the other.
func compareIgnoreCase(a, b string) int {
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		a, b = a[sa:], b[sb:]

		if ra == rb {
			continue
		}
		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			return int(ra) - int(rb)
		}
	}

	return len(a) - len(b)
}
