package format

// Align16 returns n aligned up to the next 16-byte boundary.
// Saved configuration payload sizes are rounded up to this boundary before
// being handed to the persistence collaborator.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n int) int {
	return (n + Align16Mask) & ^Align16Mask
}
