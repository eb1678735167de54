package hob

import (
	"github.com/firmworks/fspkit/internal/format"
)

// List is a read-only view over one hand-off buffer. Base is the physical
// address of the first record, used to report record and payload addresses in
// the platform's address space.
//
// A List is valid only until the next invocation of the module stage that
// produced it. It is never mutated through this package.
type List struct {
	data []byte
	base uint64
}

// NewList wraps data as a hand-off list whose first record sits at physical
// address base. Returns nil when data is empty so callers can treat "module
// produced nothing" and "no list" identically.
func NewList(data []byte, base uint64) *List {
	if len(data) == 0 {
		return nil
	}
	return &List{data: data, base: base}
}

// Bytes returns the backing buffer.
func (l *List) Bytes() []byte {
	if l == nil {
		return nil
	}
	return l.data
}

// Base returns the physical address of the first record.
func (l *List) Base() uint64 {
	if l == nil {
		return 0
	}
	return l.base
}

// Addr translates a record offset into a physical address.
func (l *List) Addr(off int) uint64 {
	if l == nil {
		return 0
	}
	return l.base + uint64(off)
}

// Records returns a bounded iterator over the list. A nil list yields an
// iterator that reports io.EOF immediately.
func (l *List) Records() *Iterator {
	return &Iterator{list: l, limit: format.MaxListRecords}
}
