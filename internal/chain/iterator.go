package chain

import (
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/record"
)

// Records - Is used to iterate over chain records one by one.
type Records struct {
	entry *Entry
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.entry != nil
}

// Next - Returns record.
// It returns:
//   - rec is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (O *Records) Next() (rec record.Record, err error) {
	if O.entry == nil {
		err = crt.NoRecordFound{}
		return
	}

	rec = O.entry.Record
	O.entry = O.entry.next

	return
}
