package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pingcap/errors"
)

// ReportHeader - Column header of the CSV report, timings are in nanoseconds
const ReportHeader = "N,sorted_insert_ns,sorted_search_ns,sorted_delete_ns," +
	"shuffled_insert_ns,shuffled_search_ns,shuffled_delete_ns," +
	"reversed_insert_ns,reversed_search_ns,reversed_delete_ns"

// WriteSummary - Prints the timings of a run in milliseconds
func WriteSummary(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Number of lines evaluated: %d\n\n", r.N)
	for _, p := range r.Phases {
		fmt.Fprintf(bw, "%s list timings:\n", p.Ordering.Title())
		fmt.Fprintf(bw, "  Insert: %.3f ms\n", millis(p.Insert))
		fmt.Fprintf(bw, "  Search: %.3f ms\n", millis(p.Search))
		fmt.Fprintf(bw, "  Delete: %.3f ms\n\n", millis(p.Delete))
	}

	return errors.Trace(bw.Flush())
}

// ReportRow - Returns the CSV report row of a run, without line ending
func ReportRow(r Result) (string, error) {
	cols := []string{strconv.Itoa(r.N)}
	for _, o := range Orderings {
		p, ok := r.Phase(o)
		if !ok {
			return "", errors.Errorf("result has no %s phase", o)
		}
		cols = append(cols,
			strconv.FormatInt(p.Insert.Nanoseconds(), 10),
			strconv.FormatInt(p.Search.Nanoseconds(), 10),
			strconv.FormatInt(p.Delete.Nanoseconds(), 10))
	}

	return strings.Join(cols, ","), nil
}

// AppendReport - Appends the report row of a run to the file at path. The header is written first if the file
// does not exist or is empty.
func AppendReport(path string, r Result) error {
	row, err := ReportRow(r)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Annotatef(err, "open report %s", path)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return errors.Trace(err)
	}

	var sb strings.Builder
	if stat.Size() == 0 {
		sb.WriteString(ReportHeader)
		sb.WriteByte('\n')
	}
	sb.WriteString(row)
	sb.WriteByte('\n')

	if _, err = f.WriteString(sb.String()); err != nil {
		return errors.Annotatef(err, "append report %s", path)
	}

	return errors.Trace(f.Close())
}

// jsonOperation - One timed loop in the JSON summary
type jsonOperation struct {
	Ordering  string  `json:"ordering"`
	Operation string  `json:"operation"`
	Ns        int64   `json:"ns"`
	NsPerOp   float64 `json:"ns_per_op"`
}

// jsonSummary - The JSON summary of a run
type jsonSummary struct {
	Timestamp string          `json:"timestamp"`
	GoVersion string          `json:"go_version"`
	N         int             `json:"n"`
	Seed      int64           `json:"seed"`
	Table     TableOptions    `json:"table"`
	Results   []jsonOperation `json:"results"`
}

// WriteJSON - Writes the run as an indented JSON document
func WriteJSON(w io.Writer, r Result) error {
	s := jsonSummary{
		Timestamp: r.Timestamp.Format(time.RFC3339),
		GoVersion: runtime.Version(),
		N:         r.N,
		Seed:      r.Seed,
		Table:     r.Table,
		Results:   make([]jsonOperation, 0, 3*len(r.Phases)),
	}

	for _, p := range r.Phases {
		for _, op := range []struct {
			name string
			d    time.Duration
		}{{"insert", p.Insert}, {"search", p.Search}, {"delete", p.Delete}} {
			jo := jsonOperation{Ordering: string(p.Ordering), Operation: op.name, Ns: op.d.Nanoseconds()}
			if r.N > 0 {
				jo.NsPerOp = float64(op.d.Nanoseconds()) / float64(r.N)
			}
			s.Results = append(s.Results, jo)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Trace(enc.Encode(s))
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
