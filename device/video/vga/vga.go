// Package vga defines the register map, geometry and 16-color palette of
// VGA mode 12h (640x480, 16 colors, 4 bit planes).
package vga

// I/O ports used to program the adapter.
const (
	SeqIndex      uint16 = 0x3c4
	SeqData       uint16 = 0x3c5
	DACReadIndex  uint16 = 0x3c7
	DACWriteIndex uint16 = 0x3c8
	DACData       uint16 = 0x3c9
	GCIndex       uint16 = 0x3ce
	GCData        uint16 = 0x3cf
)

// Sequencer register indices.
const (
	SeqMapMask uint8 = 0x02
)

// Graphics controller register indices.
const (
	GCSetReset       uint8 = 0x00
	GCEnableSetReset uint8 = 0x01
	GCDataRotate     uint8 = 0x03
	GCReadMap        uint8 = 0x04
	GCMode           uint8 = 0x05
	GCBitMask        uint8 = 0x08
)

// Mode 12h geometry.
const (
	Width  = 640
	Height = 480

	// Planes is the number of bit planes; plane p holds bit p of each
	// pixel's color index.
	Planes = 4

	// Pitch is the number of bytes per row in a single plane. Each byte
	// holds 8 horizontally adjacent pixels, most significant bit first.
	Pitch = Width / 8

	// PlaneSize is the number of bytes in a single plane.
	PlaneSize = Pitch * Height

	// AllPlanes enables writes to every plane through the map mask.
	AllPlanes uint8 = 0x0f

	// VRAMBase is the physical address of the graphics window.
	VRAMBase uintptr = 0xa0000
)

// Offset returns the byte offset of pixel (x, y) inside a plane and the bit
// mask selecting it within that byte.
func Offset(x, y int) (offset uint32, mask uint8) {
	return uint32((y*Width + x) >> 3), 0x80 >> uint(x&7)
}

// InBounds reports whether (x, y) lies on the screen.
func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}
