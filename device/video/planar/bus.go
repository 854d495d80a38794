package planar

import (
	"unsafe"

	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/cpu"
	"github.com/TheBigEye/monarch-os/kernel/mem"
)

var (
	portWriteByteFn = cpu.PortWriteByte
	portReadByteFn  = cpu.PortReadByte
	mapVRAMFn       = identityMapVRAM
)

// Bus gives the driver access to the adapter registers and the graphics
// window. VRAM accesses go through the adapter latches, so a read has side
// effects and a write only reaches the planes and bits selected by the map
// mask and bit mask registers.
type Bus interface {
	WritePort(port uint16, val uint8)
	ReadPort(port uint16) uint8

	ReadVRAM(offset uint32) uint8
	WriteVRAM(offset uint32, val uint8)

	// FillVRAM writes val to n consecutive bytes starting at offset.
	FillVRAM(offset uint32, val uint8, n uint32)

	// CopyVRAM writes src to consecutive bytes starting at offset.
	CopyVRAM(offset uint32, src []uint8)
}

// hwBus drives a real adapter through port I/O and the mapped graphics
// window.
type hwBus struct {
	vram []uint8
}

func (b *hwBus) WritePort(port uint16, val uint8) { portWriteByteFn(port, val) }

func (b *hwBus) ReadPort(port uint16) uint8 { return portReadByteFn(port) }

func (b *hwBus) ReadVRAM(offset uint32) uint8 {
	if offset >= uint32(len(b.vram)) {
		return 0
	}
	return b.vram[offset]
}

func (b *hwBus) WriteVRAM(offset uint32, val uint8) {
	if offset < uint32(len(b.vram)) {
		b.vram[offset] = val
	}
}

// FillVRAM stores every byte individually; mem.Memset reads back what it
// has already written, which would reload the latches mid-fill.
func (b *hwBus) FillVRAM(offset uint32, val uint8, n uint32) {
	if offset >= uint32(len(b.vram)) {
		return
	}
	if end := uint32(len(b.vram)) - offset; n > end {
		n = end
	}

	dst := b.vram[offset : offset+n]
	for i := range dst {
		dst[i] = val
	}
}

func (b *hwBus) CopyVRAM(offset uint32, src []uint8) {
	if offset < uint32(len(b.vram)) {
		mem.Memcopy(b.vram[offset:], src)
	}
}

// identityMapVRAM overlays a slice on the graphics window. The legacy VGA
// window lives in the identity-mapped first megabyte of physical memory.
func identityMapVRAM(physAddr uintptr, size mem.Size) ([]uint8, *kernel.Error) {
	return unsafe.Slice((*uint8)(unsafe.Pointer(physAddr)), int(size)), nil
}
