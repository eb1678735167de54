package fsp

import (
	"github.com/firmworks/fspkit/internal/buf"
	"github.com/firmworks/fspkit/internal/format"
)

// Image is a read-only view of the external module's binary. The information
// header is located once at open time; the configuration regions are resolved
// on demand through their two-level indirection.
type Image struct {
	data      []byte
	header    format.InfoHeader
	headerOff int
}

// OpenImage locates and decodes the module's information header within data.
func OpenImage(data []byte) (*Image, error) {
	h, off, err := format.FindInfoHeader(data)
	if err != nil {
		return nil, haltf(PostInvalidVendorBinary, "module image: %v", err)
	}
	return &Image{data: data, header: h, headerOff: off}, nil
}

// Header returns the decoded information header.
func (im *Image) Header() format.InfoHeader {
	return im.header
}

// Bytes returns the backing image bytes.
func (im *Image) Bytes() []byte {
	return im.data
}

// updRegion resolves the two-level indirection from the information header to
// the module's updatable configuration region: CfgRegionOffset locates the
// vendor configuration region, whose PcdUpdRegionOffset locates the UPD
// region. Every offset must be non-zero and in bounds before use; a zero or
// out-of-range offset marks a malformed module image and boot must not
// proceed with partially-resolved pointers.
func (im *Image) updRegion() (int, error) {
	vpdOff := int(im.header.CfgRegionOffset)
	if vpdOff == 0 {
		return 0, haltf(PostInvalidVendorBinary, "module image: vendor configuration region offset is zero")
	}
	if !buf.Has(im.data, vpdOff, format.VPDMinSize) {
		return 0, haltf(PostInvalidVendorBinary,
			"module image: vendor configuration region at %#x outside image", vpdOff)
	}

	updOff := int(buf.U32LE(im.data[vpdOff+format.VPDUpdOffsetOffset:]))
	if updOff == 0 {
		return 0, haltf(PostInvalidVendorBinary, "module image: updatable region offset is zero")
	}
	if !buf.Has(im.data, updOff, format.UPDMinSize) {
		return 0, haltf(PostInvalidVendorBinary,
			"module image: updatable region at %#x outside image", updOff)
	}
	return updOff, nil
}

// MemoryInitUPD returns the module's default memory init configuration
// sub-structure. The returned slice aliases the image; callers copy it into
// a working buffer before customization, never mutating the defaults.
func (im *Image) MemoryInitUPD() ([]byte, error) {
	updOff, err := im.updRegion()
	if err != nil {
		return nil, err
	}
	sub := int(buf.U32LE(im.data[updOff+format.UPDMemoryInitOffset:]))
	if sub == 0 {
		return nil, haltf(PostInvalidVendorBinary, "module image: memory init configuration offset is zero")
	}
	region, ok := buf.Slice(im.data, updOff+sub, format.MemoryInitUPDSize)
	if !ok {
		return nil, haltf(PostInvalidVendorBinary,
			"module image: memory init configuration at %#x outside image", updOff+sub)
	}
	return region, nil
}

// SiliconInitUPD returns the module's default silicon init configuration
// sub-structure, resolved the same way as MemoryInitUPD.
func (im *Image) SiliconInitUPD() ([]byte, error) {
	updOff, err := im.updRegion()
	if err != nil {
		return nil, err
	}
	sub := int(buf.U32LE(im.data[updOff+format.UPDSiliconInitOffset:]))
	if sub == 0 {
		return nil, haltf(PostInvalidVendorBinary, "module image: silicon init configuration offset is zero")
	}
	region, ok := buf.Slice(im.data, updOff+sub, format.SiliconInitUPDSize)
	if !ok {
		return nil, haltf(PostInvalidVendorBinary,
			"module image: silicon init configuration at %#x outside image", updOff+sub)
	}
	return region, nil
}
