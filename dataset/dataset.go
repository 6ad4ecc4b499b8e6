// Package dataset loads player records from the FIFA players CSV export.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gostonefire/chainhashmap/internal/logutil"
	"github.com/gostonefire/chainhashmap/record"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Column positions in the export
const (
	colSlug         = 0
	colName         = 2
	colFullName     = 3
	colBestPosition = 10
	colOverall      = 11
	colPotential    = 12

	minColumns = 13
)

// LoadStats - Counts of what happened to the data rows of the input
type LoadStats struct {
	Lines            int
	Accepted         int
	SkippedShort     int
	SkippedBadRating int
	SkippedEmptySlug int
	SkippedMalformed int
}

// Skipped - Returns the total number of rows that did not become records
func (s LoadStats) Skipped() int {
	return s.SkippedShort + s.SkippedBadRating + s.SkippedEmptySlug + s.SkippedMalformed
}

// Load - Reads records from the CSV file at path, see Parse
func Load(path string, limit int) ([]record.Record, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, errors.Annotatef(err, "open dataset %s", path)
	}
	defer func() { _ = f.Close() }()

	records, stats, err := Parse(f, limit)
	if err != nil {
		return nil, stats, errors.Annotatef(err, "parse dataset %s", path)
	}

	return records, stats, nil
}

// Parse - Reads records from CSV data. The first line is a header and is skipped. Rows with too few columns,
// an empty slug or ratings that are not integers are skipped. Reading stops once limit records have been
// accepted, a limit of 0 or less reads everything.
func Parse(r io.Reader, limit int) ([]record.Record, LoadStats, error) {
	var stats LoadStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, stats, errors.New("empty input, expected a header line")
		}
		return nil, stats, errors.Annotate(err, "read header")
	}

	var records []record.Record
	for limit <= 0 || len(records) < limit {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		stats.Lines++
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				stats.SkippedMalformed++
				continue
			}
			return nil, stats, errors.Trace(err)
		}

		rec, ok := toRecord(fields, &stats)
		if !ok {
			continue
		}
		records = append(records, rec)
		stats.Accepted++
	}

	logutil.BgLogger().Debug("dataset parsed",
		zap.Int("lines", stats.Lines),
		zap.Int("accepted", stats.Accepted),
		zap.Int("skipped", stats.Skipped()))

	return records, stats, nil
}

// toRecord - Converts one CSV row, counting the reason in stats if it has to be skipped
func toRecord(fields []string, stats *LoadStats) (record.Record, bool) {
	if len(fields) < minColumns {
		stats.SkippedShort++
		return record.Record{}, false
	}

	slug := fields[colSlug]
	if slug == "" {
		stats.SkippedEmptySlug++
		return record.Record{}, false
	}

	overall, err1 := strconv.Atoi(strings.TrimSpace(fields[colOverall]))
	potential, err2 := strconv.Atoi(strings.TrimSpace(fields[colPotential]))
	if err1 != nil || err2 != nil {
		stats.SkippedBadRating++
		return record.Record{}, false
	}

	return record.New(slug, fields[colName], fields[colFullName], fields[colBestPosition], overall, potential), true
}
