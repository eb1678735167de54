package format

import (
	"bytes"
	"fmt"

	"github.com/firmworks/fspkit/internal/buf"
)

// InfoHeader is the decoded FSP information header.
type InfoHeader struct {
	HeaderLength     uint32
	HeaderRevision   uint8
	ImageRevision    uint32
	ImageID          [FIHImageIDSize]byte
	ImageSize        uint32
	ImageBase        uint32
	ImageAttribute   uint32
	CfgRegionOffset  uint32
	CfgRegionSize    uint32
	MemoryInitEntry  uint32
	SiliconInitEntry uint32
}

// ImageIDString returns the image identifier with trailing NULs stripped.
func (h InfoHeader) ImageIDString() string {
	return string(bytes.TrimRight(h.ImageID[:], "\x00"))
}

// GraphicsSupported reports whether the module advertises graphics bring-up.
func (h InfoHeader) GraphicsSupported() bool {
	return h.ImageAttribute&FIHAttrGraphicsSupport != 0
}

// ParseInfoHeader decodes the FSP information header at off within b.
func ParseInfoHeader(b []byte, off int) (InfoHeader, error) {
	if !buf.Has(b, off, FIHMinSize) {
		return InfoHeader{}, fmt.Errorf("info header at %#x: %w", off, ErrTruncated)
	}
	if !bytes.Equal(b[off+FIHSignatureOffset:off+FIHSignatureOffset+4], FIHSignature) {
		return InfoHeader{}, fmt.Errorf("info header at %#x: %w", off, ErrSignatureMismatch)
	}
	h := InfoHeader{
		HeaderLength:     buf.U32LE(b[off+FIHHeaderLengthOffset:]),
		HeaderRevision:   b[off+FIHHeaderRevisionOffset],
		ImageRevision:    buf.U32LE(b[off+FIHImageRevisionOffset:]),
		ImageSize:        buf.U32LE(b[off+FIHImageSizeOffset:]),
		ImageBase:        buf.U32LE(b[off+FIHImageBaseOffset:]),
		ImageAttribute:   buf.U32LE(b[off+FIHImageAttributeOffset:]),
		CfgRegionOffset:  buf.U32LE(b[off+FIHCfgRegionOffOffset:]),
		CfgRegionSize:    buf.U32LE(b[off+FIHCfgRegionSizeOffset:]),
		MemoryInitEntry:  buf.U32LE(b[off+FIHMemoryInitEntryOff:]),
		SiliconInitEntry: buf.U32LE(b[off+FIHSiliconInitEntryOff:]),
	}
	copy(h.ImageID[:], b[off+FIHImageIDOffset:off+FIHImageIDOffset+FIHImageIDSize])
	if h.HeaderLength < FIHMinSize {
		return InfoHeader{}, fmt.Errorf("info header at %#x: declared length %d below minimum: %w",
			off, h.HeaderLength, ErrTruncated)
	}
	return h, nil
}

// FindInfoHeader scans b for the information header signature and decodes the
// first match. Returns ErrSignatureMismatch when no header is present.
func FindInfoHeader(b []byte) (InfoHeader, int, error) {
	off := bytes.Index(b, FIHSignature)
	if off < 0 {
		return InfoHeader{}, 0, fmt.Errorf("image: no info header: %w", ErrSignatureMismatch)
	}
	h, err := ParseInfoHeader(b, off)
	if err != nil {
		return InfoHeader{}, 0, err
	}
	return h, off, nil
}
