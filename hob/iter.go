package hob

import (
	"fmt"
	"io"

	"github.com/firmworks/fspkit/internal/format"
)

// Iterator walks a hand-off list one record at a time. Traversal is bounded:
// after limit records without an end-of-list marker the iterator reports
// format.ErrListCorrupt instead of continuing, so a cyclic or truncated list
// cannot hang the boot sequence.
type Iterator struct {
	list  *List
	off   int
	count int
	limit int
	done  bool
}

// Next returns the next record in list order. The end-of-list marker record
// itself is not returned; reaching it ends iteration with io.EOF. Any
// structural violation surfaces as an error wrapping format.ErrListCorrupt.
func (it *Iterator) Next() (Record, error) {
	if it.done || it.list == nil {
		it.done = true
		return Record{}, io.EOF
	}

	if it.count >= it.limit {
		it.done = true
		return Record{}, fmt.Errorf("hob: no end-of-list marker within %d records: %w",
			it.limit, format.ErrListCorrupt)
	}

	b := it.list.data
	hdr, next, err := format.NextRecord(b, it.off)
	if err != nil {
		it.done = true
		return Record{}, err
	}
	if hdr.End() {
		it.done = true
		return Record{}, io.EOF
	}

	rec := Record{
		Type:   hdr.Type,
		Length: int(hdr.Length),
		Offset: hdr.Offset,
		list:   it.list,
	}
	it.off = next
	it.count++
	return rec, nil
}
