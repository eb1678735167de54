package testutil

import (
	"encoding/binary"

	"github.com/firmworks/fspkit/internal/format"
)

// ImageSpec controls BuildImage. Zero offsets in the spec produce the
// corresponding zero-offset defects in the image for negative tests.
type ImageSpec struct {
	CfgRegionOffset  uint32 // offset of the vendor configuration region
	UpdRegionOffset  uint32 // offset of the updatable region
	MemoryInitOffset uint32 // sub-structure offset relative to the UPD region
	SiliconOffset    uint32 // sub-structure offset relative to the UPD region
	ImageAttribute   uint32
}

// DefaultImageSpec lays the regions out back to back with room for both
// configuration sub-structures.
func DefaultImageSpec() ImageSpec {
	return ImageSpec{
		CfgRegionOffset:  0x100,
		UpdRegionOffset:  0x140,
		MemoryInitOffset: 0x40,
		SiliconOffset:    0x40 + format.MemoryInitUPDSize,
	}
}

// BuildImage assembles a synthetic module image: an information header at
// offset zero, a vendor configuration region, an updatable region, and both
// configuration sub-structures filled with a recognizable byte pattern.
func BuildImage(spec ImageSpec) []byte {
	size := int(spec.UpdRegionOffset) + int(spec.SiliconOffset) + format.SiliconInitUPDSize + 0x40
	if size < 0x400 {
		size = 0x400
	}
	img := make([]byte, size)

	// Information header.
	copy(img[format.FIHSignatureOffset:], format.FIHSignature)
	binary.LittleEndian.PutUint32(img[format.FIHHeaderLengthOffset:], format.FIHMinSize)
	img[format.FIHHeaderRevisionOffset] = 1
	binary.LittleEndian.PutUint32(img[format.FIHImageRevisionOffset:], 0x01010000)
	copy(img[format.FIHImageIDOffset:], "TEST-FSP")
	binary.LittleEndian.PutUint32(img[format.FIHImageSizeOffset:], uint32(size))
	binary.LittleEndian.PutUint32(img[format.FIHImageAttributeOffset:], spec.ImageAttribute)
	binary.LittleEndian.PutUint32(img[format.FIHCfgRegionOffOffset:], spec.CfgRegionOffset)
	binary.LittleEndian.PutUint32(img[format.FIHMemoryInitEntryOff:], 0x1000)
	binary.LittleEndian.PutUint32(img[format.FIHSiliconInitEntryOff:], 0x2000)

	// Vendor configuration region.
	if spec.CfgRegionOffset != 0 {
		vpd := img[spec.CfgRegionOffset:]
		binary.LittleEndian.PutUint32(vpd[format.VPDUpdOffsetOffset:], spec.UpdRegionOffset)
	}

	// Updatable region and sub-structures.
	if spec.UpdRegionOffset != 0 {
		updr := img[spec.UpdRegionOffset:]
		binary.LittleEndian.PutUint32(updr[format.UPDMemoryInitOffset:], spec.MemoryInitOffset)
		binary.LittleEndian.PutUint32(updr[format.UPDSiliconInitOffset:], spec.SiliconOffset)

		if spec.MemoryInitOffset != 0 {
			memUPD := img[int(spec.UpdRegionOffset)+int(spec.MemoryInitOffset):]
			for i := 0; i < format.MemoryInitUPDSize; i++ {
				memUPD[i] = 0xA5
			}
		}
		if spec.SiliconOffset != 0 {
			silUPD := img[int(spec.UpdRegionOffset)+int(spec.SiliconOffset):]
			for i := 0; i < format.SiliconInitUPDSize; i++ {
				silUPD[i] = 0x5A
			}
		}
	}
	return img
}
