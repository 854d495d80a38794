// Package vgaemu emulates the subset of a VGA adapter used in mode 12h: the
// sequencer map mask, the graphics controller bit mask, read map and
// set/reset registers, the four latches and the DAC. It implements the
// planar driver bus so drawing code can run and be inspected on a host.
package vgaemu

import (
	"image"
	"image/color"
	"sync"

	"github.com/TheBigEye/monarch-os/device/video/vga"
)

// PortWrite records a single port write.
type PortWrite struct {
	Port  uint16
	Value uint8
}

// Adapter is an emulated VGA adapter in mode 12h. It is safe for
// concurrent use.
type Adapter struct {
	mu sync.Mutex

	planes [vga.Planes][vga.PlaneSize]uint8
	latch  [vga.Planes]uint8

	seqIndex uint8
	seqRegs  [8]uint8
	gcIndex  uint8
	gcRegs   [9]uint8

	dacWriteIndex, dacWritePhase uint8
	dacReadIndex, dacReadPhase   uint8
	dac                          [256][3]uint8

	tracing bool
	trace   []PortWrite
}

// New returns an adapter in the state the BIOS leaves after setting mode
// 12h: black screen, all planes enabled, full bit mask and the default
// palette loaded into the DAC.
func New() *Adapter {
	a := &Adapter{}
	a.seqRegs[vga.SeqMapMask] = vga.AllPlanes
	a.gcRegs[vga.GCBitMask] = 0xff

	for index, c := range vga.DefaultPalette {
		r, g, b, _ := c.RGBA()
		a.dac[index] = [3]uint8{uint8(r>>8) >> 2, uint8(g>>8) >> 2, uint8(b>>8) >> 2}
	}

	return a
}

// StartTrace starts recording port writes, discarding any previous trace.
func (a *Adapter) StartTrace() {
	a.mu.Lock()
	a.tracing = true
	a.trace = a.trace[:0]
	a.mu.Unlock()
}

// StopTrace stops recording and returns the port writes since StartTrace.
func (a *Adapter) StopTrace() []PortWrite {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tracing = false
	out := make([]PortWrite, len(a.trace))
	copy(out, a.trace)
	return out
}

// WritePort implements the planar driver bus.
func (a *Adapter) WritePort(port uint16, val uint8) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tracing {
		a.trace = append(a.trace, PortWrite{Port: port, Value: val})
	}

	switch port {
	case vga.SeqIndex:
		a.seqIndex = val
	case vga.SeqData:
		if int(a.seqIndex) < len(a.seqRegs) {
			a.seqRegs[a.seqIndex] = val
		}
	case vga.GCIndex:
		a.gcIndex = val
	case vga.GCData:
		if int(a.gcIndex) < len(a.gcRegs) {
			a.gcRegs[a.gcIndex] = val
		}
	case vga.DACWriteIndex:
		a.dacWriteIndex, a.dacWritePhase = val, 0
	case vga.DACReadIndex:
		a.dacReadIndex, a.dacReadPhase = val, 0
	case vga.DACData:
		a.dac[a.dacWriteIndex][a.dacWritePhase] = val & 0x3f
		if a.dacWritePhase++; a.dacWritePhase == 3 {
			a.dacWritePhase = 0
			a.dacWriteIndex++
		}
	}
}

// ReadPort implements the planar driver bus.
func (a *Adapter) ReadPort(port uint16) uint8 {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch port {
	case vga.SeqIndex:
		return a.seqIndex
	case vga.SeqData:
		if int(a.seqIndex) < len(a.seqRegs) {
			return a.seqRegs[a.seqIndex]
		}
	case vga.GCIndex:
		return a.gcIndex
	case vga.GCData:
		if int(a.gcIndex) < len(a.gcRegs) {
			return a.gcRegs[a.gcIndex]
		}
	case vga.DACData:
		val := a.dac[a.dacReadIndex][a.dacReadPhase]
		if a.dacReadPhase++; a.dacReadPhase == 3 {
			a.dacReadPhase = 0
			a.dacReadIndex++
		}
		return val
	}

	return 0xff
}

// ReadVRAM loads all four latches from offset and returns the byte of the
// plane selected by the read map register.
func (a *Adapter) ReadVRAM(offset uint32) uint8 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if offset >= vga.PlaneSize {
		return 0xff
	}

	for p := range a.latch {
		a.latch[p] = a.planes[p][offset]
	}
	return a.planes[a.gcRegs[vga.GCReadMap]&3][offset]
}

// WriteVRAM performs a write mode 0 store: planes disabled in the map mask
// are untouched, bits cleared in the bit mask come from the latches and,
// for planes enabled in the enable set/reset register, the data byte is
// replaced by the set/reset bit.
func (a *Adapter) WriteVRAM(offset uint32, val uint8) {
	a.mu.Lock()
	a.write(offset, val)
	a.mu.Unlock()
}

func (a *Adapter) write(offset uint32, val uint8) {
	if offset >= vga.PlaneSize {
		return
	}

	var (
		mapMask  = a.seqRegs[vga.SeqMapMask]
		bitMask  = a.gcRegs[vga.GCBitMask]
		enableSR = a.gcRegs[vga.GCEnableSetReset]
		setReset = a.gcRegs[vga.GCSetReset]
	)

	for p := uint(0); p < vga.Planes; p++ {
		if mapMask&(1<<p) == 0 {
			continue
		}

		data := val
		if enableSR&(1<<p) != 0 {
			data = 0
			if setReset&(1<<p) != 0 {
				data = 0xff
			}
		}

		a.planes[p][offset] = data&bitMask | a.latch[p]&^bitMask
	}
}

// FillVRAM implements the planar driver bus.
func (a *Adapter) FillVRAM(offset uint32, val uint8, n uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := uint32(0); i < n; i++ {
		a.write(offset+i, val)
	}
}

// CopyVRAM implements the planar driver bus.
func (a *Adapter) CopyVRAM(offset uint32, src []uint8) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, val := range src {
		a.write(offset+uint32(i), val)
	}
}

// Register returns the value of a sequencer (seq = true) or graphics
// controller register.
func (a *Adapter) Register(seq bool, index uint8) uint8 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if seq {
		return a.seqRegs[index&7]
	}
	if int(index) < len(a.gcRegs) {
		return a.gcRegs[index]
	}
	return 0xff
}

// PlaneByte returns the raw byte stored at offset in a plane without
// touching the latches.
func (a *Adapter) PlaneByte(plane int, offset uint32) uint8 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.planes[plane&3][offset]
}

// ColorAt returns the color index of the pixel at (x, y), combining the
// matching bit of all four planes.
func (a *Adapter) ColorAt(x, y int) vga.Color {
	if !vga.InBounds(x, y) {
		return vga.Black
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.colorAt(x, y)
}

func (a *Adapter) colorAt(x, y int) vga.Color {
	offset, mask := vga.Offset(x, y)

	var c vga.Color
	for p := 0; p < vga.Planes; p++ {
		if a.planes[p][offset]&mask != 0 {
			c |= 1 << uint(p)
		}
	}
	return c
}

// Palette returns the DAC contents for the 16 mode 12h colors expanded to
// 8 bits per component.
func (a *Adapter) Palette() color.Palette {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.palette()
}

func (a *Adapter) palette() color.Palette {
	pal := make(color.Palette, vga.NumColors)
	for i := range pal {
		e := a.dac[i]
		pal[i] = color.RGBA{R: expand6(e[0]), G: expand6(e[1]), B: expand6(e[2]), A: 0xff}
	}
	return pal
}

func expand6(v uint8) uint8 {
	return v<<2 | v>>4
}

// Snapshot returns the current screen contents.
func (a *Adapter) Snapshot() *image.Paletted {
	a.mu.Lock()
	defer a.mu.Unlock()

	img := image.NewPaletted(image.Rect(0, 0, vga.Width, vga.Height), a.palette())
	for y := 0; y < vga.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < vga.Width; x++ {
			row[x] = uint8(a.colorAt(x, y))
		}
	}
	return img
}
