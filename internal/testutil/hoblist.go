// Package testutil assembles synthetic module images and hand-off buffers
// for tests. Nothing here is compiled into release binaries.
package testutil

import (
	"encoding/binary"

	"github.com/firmworks/fspkit/internal/format"
)

// ListBuilder assembles a hand-off record buffer record by record.
type ListBuilder struct {
	buf []byte
}

// NewListBuilder returns an empty builder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

func (b *ListBuilder) header(hobType uint16, length uint16) {
	var hdr [format.HOBHeaderSize]byte
	binary.LittleEndian.PutUint16(hdr[format.HOBTypeOffset:], hobType)
	binary.LittleEndian.PutUint16(hdr[format.HOBLengthOffset:], length)
	b.buf = append(b.buf, hdr[:]...)
}

// Resource appends a resource descriptor record.
func (b *ListBuilder) Resource(owner format.GUID, resType uint32, start, length uint64) *ListBuilder {
	b.header(format.HOBTypeResourceDescriptor, format.ResDescriptorSize)
	body := make([]byte, format.ResDescriptorSize-format.HOBHeaderSize)
	copy(body[0:], owner[:])
	binary.LittleEndian.PutUint32(body[format.ResTypeOffset-format.HOBHeaderSize:], resType)
	binary.LittleEndian.PutUint64(body[format.ResPhysStartOffset-format.HOBHeaderSize:], start)
	binary.LittleEndian.PutUint64(body[format.ResLengthOffset-format.HOBHeaderSize:], length)
	b.buf = append(b.buf, body...)
	return b
}

// Payload appends a GUID extension record carrying data.
func (b *ListBuilder) Payload(name format.GUID, data []byte) *ListBuilder {
	length := format.GUIDHeaderSize + len(data)
	b.header(format.HOBTypeGUIDExtension, uint16(length))
	b.buf = append(b.buf, name[:]...)
	b.buf = append(b.buf, data...)
	return b
}

// Raw appends a record with an arbitrary type code, declared length, and
// body. The declared length need not match the body; corruption tests depend
// on that.
func (b *ListBuilder) Raw(hobType uint16, declaredLen uint16, body []byte) *ListBuilder {
	b.header(hobType, declaredLen)
	b.buf = append(b.buf, body...)
	return b
}

// End appends the end-of-list marker and returns the finished buffer.
func (b *ListBuilder) End() []byte {
	b.header(format.HOBTypeEndOfList, format.HOBHeaderSize)
	return b.buf
}

// Bytes returns the buffer without an end marker, for corruption tests.
func (b *ListBuilder) Bytes() []byte {
	return b.buf
}
