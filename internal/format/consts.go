// Package format houses low-level decoders for the FSP hand-off block (HOB)
// list and the FSP information header / configuration regions. The goal is to
// keep the parsing focused, allocation-free where possible, and independent
// from the public API so higher-level packages can orchestrate the data in a
// more ergonomic form.
package format

// HOB header layout (little-endian):
//
//	Offset  Size  Field
//	0x00    2     HobType
//	0x02    2     HobLength (includes this header)
//	0x04    4     Reserved (must be zero)
//
// Every HOB in the list starts with this header. The list is walked by adding
// HobLength to the current HOB's offset until an end-of-list HOB is reached.
const (
	HOBTypeOffset   = 0x00
	HOBLengthOffset = 0x02
	HOBReservedOff  = 0x04

	// HOBHeaderSize is the size of the generic HOB header in bytes. Every
	// declared HobLength must be at least this large.
	HOBHeaderSize = 8
)

// HOB type codes from the UEFI Platform Initialization specification.
const (
	HOBTypeHandoff            uint16 = 0x0001
	HOBTypeMemoryAllocation   uint16 = 0x0002
	HOBTypeResourceDescriptor uint16 = 0x0003
	HOBTypeGUIDExtension      uint16 = 0x0004
	HOBTypeFirmwareVolume     uint16 = 0x0005
	HOBTypeCPU                uint16 = 0x0006
	HOBTypeMemoryPool         uint16 = 0x0007
	HOBTypeFirmwareVolume2    uint16 = 0x0009
	HOBTypeUEFICapsule        uint16 = 0x000B
	HOBTypeUnused             uint16 = 0xFFFE
	HOBTypeEndOfList          uint16 = 0xFFFF
)

// Resource descriptor HOB layout (EFI_HOB_RESOURCE_DESCRIPTOR):
//
//	Offset  Size  Field
//	0x00    8     Generic HOB header
//	0x08    16    Owner GUID
//	0x18    4     ResourceType
//	0x1C    4     ResourceAttribute
//	0x20    8     PhysicalStart
//	0x28    8     ResourceLength
const (
	ResOwnerOffset     = 0x08
	ResTypeOffset      = 0x18
	ResAttributeOffset = 0x1C
	ResPhysStartOffset = 0x20
	ResLengthOffset    = 0x28

	// ResDescriptorSize is the fixed size of a resource descriptor HOB.
	ResDescriptorSize = 0x30
)

// Resource type codes (EFI_RESOURCE_TYPE).
const (
	ResTypeSystemMemory   uint32 = 0x00000000
	ResTypeMemoryMappedIO uint32 = 0x00000001
	ResTypeIOPort         uint32 = 0x00000002
	ResTypeMemoryReserved uint32 = 0x00000005
)

// GUID extension HOB layout (EFI_HOB_GUID_TYPE):
//
//	Offset  Size  Field
//	0x00    8     Generic HOB header
//	0x08    16    Name GUID
//	0x18    ...   Payload bytes (HobLength - 0x18)
const (
	GUIDNameOffset = 0x08

	// GUIDHeaderSize is the number of bytes preceding a GUID extension
	// HOB's payload.
	GUIDHeaderSize = 0x18
)

const (
	// MaxListRecords bounds HOB list traversal. A well-formed FSP hand-off
	// carries a few dozen HOBs; a list that runs past this count without an
	// end-of-list marker is treated as corrupt rather than walked forever.
	MaxListRecords = 1024

	// Align16Boundary is the 16-byte alignment boundary applied to saved
	// configuration data sizes before persistence.
	Align16Boundary = 16

	// Align16Mask is the bitmask used for aligning to 16-byte boundaries.
	Align16Mask = Align16Boundary - 1
)

// FSP information header layout (FSP_INFO_HEADER, revision 1.1):
//
//	Offset  Size  Field
//	0x00    4     Signature 'FSPH'
//	0x04    4     HeaderLength
//	0x08    3     Reserved
//	0x0B    1     HeaderRevision
//	0x0C    4     ImageRevision
//	0x10    8     ImageId
//	0x18    4     ImageSize
//	0x1C    4     ImageBase
//	0x20    4     ImageAttribute
//	0x24    4     CfgRegionOffset
//	0x28    4     CfgRegionSize
//	0x2C    4     ApiEntryNum
//	0x30    4     TempRamInitEntryOffset
//	0x34    4     FspInitEntryOffset
//	0x38    4     NotifyPhaseEntryOffset
//	0x3C    4     FspMemoryInitEntryOffset
//	0x40    4     TempRamExitEntryOffset
//	0x44    4     FspSiliconInitEntryOffset
const (
	FIHSignatureOffset      = 0x00
	FIHHeaderLengthOffset   = 0x04
	FIHHeaderRevisionOffset = 0x0B
	FIHImageRevisionOffset  = 0x0C
	FIHImageIDOffset        = 0x10
	FIHImageIDSize          = 8
	FIHImageSizeOffset      = 0x18
	FIHImageBaseOffset      = 0x1C
	FIHImageAttributeOffset = 0x20
	FIHCfgRegionOffOffset   = 0x24
	FIHCfgRegionSizeOffset  = 0x28
	FIHMemoryInitEntryOff   = 0x3C
	FIHSiliconInitEntryOff  = 0x44

	// FIHMinSize is the smallest header length that still carries the
	// SiliconInit entry offset.
	FIHMinSize = 0x48
)

// FIHSignature is the four-byte signature at the start of the FSP information
// header.
var FIHSignature = []byte{'F', 'S', 'P', 'H'}

// ImageAttribute bits.
const (
	// FIHAttrGraphicsSupport indicates the module carries a graphics output
	// driver and may publish a graphics info HOB after silicon init.
	FIHAttrGraphicsSupport uint32 = 0x00000001
)

// VPD data region layout (vendor configuration region, pointed to by
// CfgRegionOffset):
//
//	Offset  Size  Field
//	0x00    8     PcdVpdRegionSign
//	0x08    4     PcdImageRevision
//	0x0C    4     PcdUpdRegionOffset (relative to image base)
const (
	VPDSignatureOffset = 0x00
	VPDRevisionOffset  = 0x08
	VPDUpdOffsetOffset = 0x0C

	VPDMinSize = 0x10
)

// UPD data region layout (updatable product data, pointed to by
// PcdUpdRegionOffset):
//
//	Offset  Size  Field
//	0x00    8     Signature
//	0x08    4     MemoryInitUpdOffset (relative to UPD region start)
//	0x0C    4     SiliconInitUpdOffset (relative to UPD region start)
const (
	UPDSignatureOffset   = 0x00
	UPDMemoryInitOffset  = 0x08
	UPDSiliconInitOffset = 0x0C

	UPDMinSize = 0x10
)

// UPD sub-structure sizes. Each sub-structure begins with its own 2-byte
// signature echo and is copied wholesale into a caller-owned working buffer
// before customization, so only the total sizes matter here.
const (
	MemoryInitUPDSize  = 256
	SiliconInitUPDSize = 192
)
