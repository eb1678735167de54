package format

import (
	"fmt"

	"github.com/firmworks/fspkit/internal/buf"
)

// RecordHeader is the decoded generic header of one HOB.
type RecordHeader struct {
	Type   uint16
	Length uint16
	Offset int // offset of this record within the list buffer
}

// End reports whether the record terminates the list.
func (h RecordHeader) End() bool {
	return h.Type == HOBTypeEndOfList
}

// NextRecord decodes the HOB header at off within b and returns the header
// plus the offset of the following record. The declared length must cover at
// least the generic header and must not run past the buffer end; either
// violation is reported as ErrListCorrupt because the walk cannot continue
// safely past it.
func NextRecord(b []byte, off int) (RecordHeader, int, error) {
	if off < 0 || !buf.Has(b, off, HOBHeaderSize) {
		return RecordHeader{}, 0, fmt.Errorf("record at %#x: %w", off, ErrTruncated)
	}
	h := RecordHeader{
		Type:   buf.U16LE(b[off+HOBTypeOffset:]),
		Length: buf.U16LE(b[off+HOBLengthOffset:]),
		Offset: off,
	}
	if int(h.Length) < HOBHeaderSize {
		return RecordHeader{}, 0, fmt.Errorf("record at %#x: declared length %d below header size: %w",
			off, h.Length, ErrListCorrupt)
	}
	next := off + int(h.Length)
	if next > len(b) {
		return RecordHeader{}, 0, fmt.Errorf("record at %#x: length %d runs past list end: %w",
			off, h.Length, ErrListCorrupt)
	}
	return h, next, nil
}

// ResourceDescriptor is the decoded body of a resource descriptor HOB.
type ResourceDescriptor struct {
	Owner          GUID
	ResourceType   uint32
	Attribute      uint32
	PhysicalStart  uint64
	ResourceLength uint64
}

// ParseResourceDescriptor decodes the resource descriptor HOB starting at off
// within b. The caller must already have matched the record's type code.
func ParseResourceDescriptor(b []byte, off int) (ResourceDescriptor, error) {
	if !buf.Has(b, off, ResDescriptorSize) {
		return ResourceDescriptor{}, fmt.Errorf("resource descriptor at %#x: %w", off, ErrTruncated)
	}
	return ResourceDescriptor{
		Owner:          GUIDAt(b, off+ResOwnerOffset),
		ResourceType:   buf.U32LE(b[off+ResTypeOffset:]),
		Attribute:      buf.U32LE(b[off+ResAttributeOffset:]),
		PhysicalStart:  buf.U64LE(b[off+ResPhysStartOffset:]),
		ResourceLength: buf.U64LE(b[off+ResLengthOffset:]),
	}, nil
}

// GUIDName decodes the name GUID of a GUID extension HOB starting at off.
func GUIDName(b []byte, off int) (GUID, error) {
	if !buf.Has(b, off, GUIDHeaderSize) {
		return GUID{}, fmt.Errorf("guid hob at %#x: %w", off, ErrTruncated)
	}
	return GUIDAt(b, off+GUIDNameOffset), nil
}
