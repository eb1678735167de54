package format

import (
	"encoding/binary"
	"fmt"
)

// GUIDSize is the wire size of a GUID.
const GUIDSize = 16

// GUID is an EFI-style GUID in its wire representation: the first three
// fields little-endian, the final eight bytes verbatim.
type GUID [GUIDSize]byte

// MakeGUID assembles a GUID from its published field form, e.g.
//
//	MakeGUID(0x69a79759, 0x1373, 0x4367, [8]byte{0xa6, 0xc4, ...})
func MakeGUID(a uint32, b, c uint16, d [8]byte) GUID {
	var g GUID
	binary.LittleEndian.PutUint32(g[0:4], a)
	binary.LittleEndian.PutUint16(g[4:6], b)
	binary.LittleEndian.PutUint16(g[6:8], c)
	copy(g[8:], d[:])
	return g
}

// GUIDAt reads the GUID stored at off within b. Returns the zero GUID when
// the buffer is too short.
func GUIDAt(b []byte, off int) GUID {
	var g GUID
	if off < 0 || off+GUIDSize > len(b) {
		return g
	}
	copy(g[:], b[off:off+GUIDSize])
	return g
}

// String renders the GUID in the canonical registry form.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		binary.LittleEndian.Uint32(g[0:4]),
		binary.LittleEndian.Uint16(g[4:6]),
		binary.LittleEndian.Uint16(g[6:8]),
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// Published HOB name GUIDs consumed by the boot-stage verification protocol.
// Matching is bit-exact; these are externally published constants of the FSP
// 1.1 interface.
var (
	// FSPReservedMemoryGUID names the resource descriptor HOB describing
	// the memory region the module reserves for its own use.
	FSPReservedMemoryGUID = MakeGUID(0x69a79759, 0x1373, 0x4367,
		[8]byte{0xa6, 0xc4, 0xc7, 0xf5, 0x9e, 0xfd, 0x98, 0x6e})

	// BootloaderTolumGUID names the resource descriptor HOB marking the
	// boot loader's reserved region at the top of low usable memory.
	BootloaderTolumGUID = MakeGUID(0x73ff4f56, 0xaa8e, 0x4451,
		[8]byte{0xb3, 0x16, 0x36, 0x35, 0x36, 0x67, 0xad, 0x44})

	// NonVolatileStorageGUID names the GUID extension HOB carrying memory
	// training results to be persisted for the next boot.
	NonVolatileStorageGUID = MakeGUID(0x721acf02, 0x4d77, 0x4c2a,
		[8]byte{0xb3, 0xdc, 0x27, 0x0b, 0x7b, 0xa9, 0xe4, 0xb0})

	// SMBIOSMemoryInfoGUID names the GUID extension HOB carrying memory
	// topology information for the SMBIOS tables.
	SMBIOSMemoryInfoGUID = MakeGUID(0x01a1108c, 0x9dee, 0x4984,
		[8]byte{0x88, 0xc3, 0xee, 0xe8, 0xc4, 0x9e, 0xfb, 0x89})

	// GraphicsInfoGUID names the GUID extension HOB published after silicon
	// init when the module brought up the display.
	GraphicsInfoGUID = MakeGUID(0x39f62cce, 0x6825, 0x4669,
		[8]byte{0xbb, 0x56, 0x54, 0x1a, 0xba, 0x75, 0x3a, 0x07})
)
