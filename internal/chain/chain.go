package chain

import (
	"github.com/gostonefire/chainhashmap/record"
)

// Entry - One link in a chain, holding a record and the address of the next link
type Entry struct {
	Record record.Record
	next   *Entry
}

// Chain - Single linked list of entries that all landed in the same bucket.
// The zero value is an empty chain ready to use.
type Chain struct {
	head   *Entry
	length int
}

// Len - Returns the number of entries in the chain
func (C *Chain) Len() int {
	return C.length
}

// Find - Returns the entry with the given slug, or nil if there is none
func (C *Chain) Find(slug string) *Entry {
	for e := C.head; e != nil; e = e.next {
		if e.Record.Slug == slug {
			return e
		}
	}

	return nil
}

// Upsert - Overwrites the record of an entry with equal identity, or appends a new entry at the end of the chain.
// It returns true if a new entry was added.
func (C *Chain) Upsert(rec record.Record) (added bool) {
	var last *Entry
	for e := C.head; e != nil; e = e.next {
		if e.Record.Equal(rec) {
			e.Record = rec
			return false
		}
		last = e
	}

	entry := &Entry{Record: rec}
	if last == nil {
		C.head = entry
	} else {
		last.next = entry
	}
	C.length++

	return true
}

// Push - Links an existing entry in first in the chain without checking for duplicates.
// It is used when rehashing, where entries are known to be unique and are moved rather than copied.
func (C *Chain) Push(entry *Entry) {
	entry.next = C.head
	C.head = entry
	C.length++
}

// Unlink - Removes the entry with the given slug from the chain.
// It returns true if an entry was removed.
func (C *Chain) Unlink(slug string) bool {
	var prev *Entry
	for e := C.head; e != nil; e = e.next {
		if e.Record.Slug == slug {
			if prev == nil {
				C.head = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			C.length--
			return true
		}
		prev = e
	}

	return false
}

// Drain - Detaches all entries from the chain and hands them one by one to fn, leaving the chain empty.
// Each entry is unlinked before fn is called so fn may link it into another chain.
func (C *Chain) Drain(fn func(entry *Entry)) {
	e := C.head
	C.head = nil
	C.length = 0
	for e != nil {
		next := e.next
		e.next = nil
		fn(e)
		e = next
	}
}

// Iterator - Returns a new Records iterator positioned at the start of the chain
func (C *Chain) Iterator() *Records {
	return &Records{entry: C.head}
}
