// Package cbmem models the boot loader's in-memory allocation bookkeeping:
// a table of reserved blocks keyed by 32-bit ID, carved downward from the top
// of usable memory. The boot-stage orchestration consults it to cross-check
// the external module's self-reported reservations against what the boot
// loader actually set aside.
//
// The table is deliberately simple: single-threaded, no concurrency, matching
// the execution environment it models (pre-scheduler boot). Blocks are never
// freed; a fresh boot rebuilds the table from scratch and a resume recovers
// the one retained in memory.
package cbmem

import (
	"errors"
	"fmt"
)

// rootOverhead is the bookkeeping space the table itself claims below the
// top of usable memory. The boot loader reports this to the external module
// as the size of its reserved low region boundary.
const rootOverhead = 0x1000

// blockAlign is the alignment applied to block sizes and placement.
const blockAlign = 16

// ErrNotRecovered indicates a resume-path recovery found no retained block
// for the requested ID.
var ErrNotRecovered = errors.New("cbmem: block not recovered")

// Block is one tracked reservation.
type Block struct {
	ID   uint32
	Addr uint64
	Size uint64
}

// Table tracks reserved blocks below a fixed top-of-memory address.
type Table struct {
	top    uint64
	next   uint64
	blocks []Block
	index  map[uint32]int
}

// New creates a table whose arena grows downward from top.
func New(top uint64) *Table {
	return &Table{
		top:   top,
		next:  top - rootOverhead,
		index: make(map[uint32]int),
	}
}

// Top returns the top-of-memory address the table was created with.
func (t *Table) Top() uint64 {
	return t.top
}

// Overhead returns the bookkeeping bytes the table claims below its top.
func (t *Table) Overhead() uint32 {
	return rootOverhead
}

// Add reserves size bytes for id and returns the block's start address.
// Adding an ID twice is an error; blocks are never resized in place.
func (t *Table) Add(id uint32, size uint64) (uint64, error) {
	if _, dup := t.index[id]; dup {
		return 0, fmt.Errorf("cbmem: duplicate block id %#08x", id)
	}
	size = (size + blockAlign - 1) &^ uint64(blockAlign-1)
	if size > t.next {
		return 0, fmt.Errorf("cbmem: block id %#08x of %d bytes exceeds arena", id, size)
	}
	addr := (t.next - size) &^ uint64(blockAlign-1)
	t.next = addr
	t.index[id] = len(t.blocks)
	t.blocks = append(t.blocks, Block{ID: id, Addr: addr, Size: size})
	return addr, nil
}

// InitializeEmpty discards all tracked blocks and reserves size bytes for id
// in the fresh table. This is the fresh-boot path; the returned address is
// where the block landed.
func (t *Table) InitializeEmpty(id uint32, size uint64) uint64 {
	t.next = t.top - rootOverhead
	t.blocks = t.blocks[:0]
	t.index = make(map[uint32]int)
	addr, err := t.Add(id, size)
	if err != nil {
		// Add cannot fail on an empty table unless size exceeds the
		// arena; report that as address zero and let the caller's
		// consistency checks catch it.
		return 0
	}
	return addr
}

// Recover validates that a block for id survived in the retained table, as
// required on the resume path where memory contents must not be rebuilt.
// The retained block must be at least as large as the requested size.
func (t *Table) Recover(id uint32, size uint64) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("cbmem: id %#08x: %w", id, ErrNotRecovered)
	}
	if t.blocks[i].Size < size {
		return fmt.Errorf("cbmem: id %#08x retained %d bytes, need %d: %w",
			id, t.blocks[i].Size, size, ErrNotRecovered)
	}
	return nil
}

// Find returns the start address of the tracked block for id.
func (t *Table) Find(id uint32) (uint64, bool) {
	i, ok := t.index[id]
	if !ok {
		return 0, false
	}
	return t.blocks[i].Addr, true
}

// Blocks returns the tracked blocks in allocation order.
func (t *Table) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}
