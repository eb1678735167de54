package hob

import (
	"fmt"

	"github.com/firmworks/fspkit/internal/format"
)

// Record is the generic view of one hand-off record. It aliases the list
// buffer; no bytes are copied.
type Record struct {
	Type   uint16
	Length int
	Offset int

	list *List
}

// Addr returns the physical address of the record.
func (r Record) Addr() uint64 {
	return r.list.Addr(r.Offset)
}

// Bytes returns the full record including its generic header.
func (r Record) Bytes() []byte {
	return r.list.data[r.Offset : r.Offset+r.Length]
}

// Resource decodes the record as a resource descriptor. Fails when the record
// has a different type code or is undersized.
func (r Record) Resource() (ResourceDescriptor, error) {
	if r.Type != format.HOBTypeResourceDescriptor {
		return ResourceDescriptor{}, fmt.Errorf("hob: record type %#04x is not a resource descriptor", r.Type)
	}
	if r.Length < format.ResDescriptorSize {
		return ResourceDescriptor{}, fmt.Errorf("hob: resource descriptor at %#x: declared length %d below %d: %w",
			r.Offset, r.Length, format.ResDescriptorSize, format.ErrTruncated)
	}
	body, err := format.ParseResourceDescriptor(r.list.data, r.Offset)
	if err != nil {
		return ResourceDescriptor{}, err
	}
	return ResourceDescriptor{ResourceDescriptor: body, rec: r}, nil
}

// Payload decodes the record as a GUID extension payload. Fails when the
// record has a different type code or is undersized.
func (r Record) Payload() (GUIDPayload, error) {
	if r.Type != format.HOBTypeGUIDExtension {
		return GUIDPayload{}, fmt.Errorf("hob: record type %#04x is not a guid extension", r.Type)
	}
	if r.Length < format.GUIDHeaderSize {
		return GUIDPayload{}, fmt.Errorf("hob: guid record at %#x: declared length %d below %d: %w",
			r.Offset, r.Length, format.GUIDHeaderSize, format.ErrTruncated)
	}
	name, err := format.GUIDName(r.list.data, r.Offset)
	if err != nil {
		return GUIDPayload{}, err
	}
	return GUIDPayload{Name: name, rec: r}, nil
}

// ResourceDescriptor is the typed view of a record claiming a physical memory
// region.
type ResourceDescriptor struct {
	format.ResourceDescriptor

	rec Record
}

// Addr returns the physical address of the descriptor record itself (not the
// region it describes).
func (d ResourceDescriptor) Addr() uint64 {
	return d.rec.Addr()
}

// GUIDPayload is the typed view of a record carrying opaque bytes under a
// published name GUID.
type GUIDPayload struct {
	Name format.GUID

	rec Record
}

// Data returns the payload bytes following the name GUID. The slice aliases
// the list buffer; callers needing the bytes past the current invocation must
// copy them out.
func (p GUIDPayload) Data() []byte {
	start := p.rec.Offset + format.GUIDHeaderSize
	end := p.rec.Offset + p.rec.Length
	if start > end {
		return nil
	}
	return p.rec.list.data[start:end]
}

// DataLen returns the payload length in bytes.
func (p GUIDPayload) DataLen() int {
	n := p.rec.Length - format.GUIDHeaderSize
	if n < 0 {
		return 0
	}
	return n
}

// DataAddr returns the physical address of the first payload byte.
func (p GUIDPayload) DataAddr() uint64 {
	return p.rec.list.Addr(p.rec.Offset + format.GUIDHeaderSize)
}
