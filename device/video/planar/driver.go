// Package planar drives VGA mode 12h, where each pixel is spread over four
// bit planes and every byte of the graphics window addresses 8 horizontally
// adjacent pixels of the planes enabled by the sequencer map mask.
package planar

import (
	"image"
	"image/color"
	"io"

	"github.com/TheBigEye/monarch-os/device/video/raster"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/kfmt"
	"github.com/TheBigEye/monarch-os/kernel/mem"
	"github.com/TheBigEye/monarch-os/kernel/sync"
)

var (
	// ErrShortBitmap is returned by DrawBitmap when the pixel data is
	// smaller than its declared dimensions.
	ErrShortBitmap = &kernel.Error{Module: "planar_vga", Message: "bitmap data is shorter than its dimensions"}
)

// Driver implements 640x480x16 graphics on top of the planar memory layout.
//
// Every register sequence the driver issues runs under a spinlock, so a
// Driver may be shared between callers. The driver cannot protect against
// interrupt handlers that reprogram the same registers; callers that install
// such handlers must mask interrupts while drawing.
type Driver struct {
	lock  sync.Spinlock
	bus   Bus
	alloc mem.Allocator

	fbPhysAddr uintptr
	palette    color.Palette
}

// NewDriver returns a driver that accesses the adapter through bus.
func NewDriver(bus Bus) *Driver {
	return &Driver{
		bus:     bus,
		alloc:   mem.Heap,
		palette: defaultPalette(),
	}
}

// newHardwareDriver returns a driver whose graphics window at fbPhysAddr is
// mapped by DriverInit.
func newHardwareDriver(fbPhysAddr uintptr) *Driver {
	return &Driver{
		alloc:      mem.Heap,
		fbPhysAddr: fbPhysAddr,
		palette:    defaultPalette(),
	}
}

func defaultPalette() color.Palette {
	pal := make(color.Palette, len(vga.DefaultPalette))
	copy(pal, vga.DefaultPalette)
	return pal
}

// SetAllocator selects the allocator used for DrawBitmap scratch buffers.
func (d *Driver) SetAllocator(a mem.Allocator) {
	if a != nil {
		d.alloc = a
	}
}

// Dimensions returns the screen size in pixels.
func (d *Driver) Dimensions() (int, int) {
	return vga.Width, vga.Height
}

// SetPixel sets the pixel at (x, y) to c. Off-screen coordinates are
// ignored.
func (d *Driver) SetPixel(c vga.Color, x, y int) {
	if d.bus == nil || !vga.InBounds(x, y) {
		return
	}

	d.lock.Acquire()
	d.plot(c, x, y)
	d.lock.Release()
}

// plot writes a single pixel. The caller must hold the lock.
//
// The bit mask limits the update to the target pixel. With all planes
// enabled the bit is first cleared in every plane, then only the planes
// whose bit is set in c are enabled and the bit is set again. Both VRAM
// reads reload the latches that supply the unmasked bits.
func (d *Driver) plot(c vga.Color, x, y int) {
	offset, mask := vga.Offset(x, y)

	d.bus.WritePort(vga.SeqIndex, vga.SeqMapMask)
	d.bus.WritePort(vga.GCIndex, vga.GCBitMask)
	d.bus.WritePort(vga.GCData, mask)
	d.bus.WritePort(vga.SeqData, vga.AllPlanes)

	d.bus.WriteVRAM(offset, d.bus.ReadVRAM(offset)&^mask)

	d.bus.WritePort(vga.SeqData, c.Byte())

	d.bus.WriteVRAM(offset, d.bus.ReadVRAM(offset)|mask)
}

// plotClipped is a raster.PlotFn that drops off-screen pixels. The caller
// must hold the lock.
func (d *Driver) plotClipped(c vga.Color) raster.PlotFn {
	return func(x, y int) {
		if vga.InBounds(x, y) {
			d.plot(c, x, y)
		}
	}
}

// Pixel returns the color at (x, y) or vga.Black for off-screen
// coordinates.
func (d *Driver) Pixel(x, y int) vga.Color {
	if d.bus == nil || !vga.InBounds(x, y) {
		return vga.Black
	}

	offset, mask := vga.Offset(x, y)

	d.lock.Acquire()
	defer d.lock.Release()

	var c vga.Color
	d.bus.WritePort(vga.GCIndex, vga.GCReadMap)
	for plane := uint8(0); plane < vga.Planes; plane++ {
		d.bus.WritePort(vga.GCData, plane)
		if d.bus.ReadVRAM(offset)&mask != 0 {
			c |= 1 << plane
		}
	}

	return c
}

// Clear fills the whole screen with c. The first pass zeroes every plane,
// the second sets all bits in the planes selected by c.
func (d *Driver) Clear(c vga.Color) {
	if d.bus == nil {
		return
	}

	d.lock.Acquire()
	defer d.lock.Release()

	d.bus.WritePort(vga.SeqIndex, vga.SeqMapMask)
	d.bus.WritePort(vga.SeqData, vga.AllPlanes)
	d.bus.WritePort(vga.GCIndex, vga.GCBitMask)
	d.bus.WritePort(vga.GCData, 0xff)

	d.bus.FillVRAM(0, 0x00, vga.PlaneSize)
	d.bus.WritePort(vga.SeqData, c.Byte())
	d.bus.FillVRAM(0, 0xff, vga.PlaneSize)
}

// DrawBitmap draws a w x h packed 4bpp bitmap with its top-left corner at
// (x, y). Rows are PackedStride(w) bytes long and the left pixel of each
// byte is stored in the high nibble. The bitmap is clipped to the screen.
//
// A single plane-sized scratch buffer is allocated before any register is
// touched. If the allocation fails the screen is left unchanged and the
// allocator error is returned.
func (d *Driver) DrawBitmap(pixels []byte, x, y, w, h int) *kernel.Error {
	if d.bus == nil || w <= 0 || h <= 0 {
		return nil
	}

	if len(pixels) < PackedStride(w)*h {
		return ErrShortBitmap
	}

	clip := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, vga.Width, vga.Height))
	if clip.Empty() {
		return nil
	}

	scratch, err := d.alloc.Alloc(mem.Size(PlaneBufferSize(w, h)))
	if err != nil {
		return err
	}
	defer d.alloc.Free(scratch)

	d.lock.Acquire()
	defer d.lock.Release()

	aligned := x&7 == 0 && clip.Dx()&7 == 0
	for plane := uint8(0); plane < vga.Planes; plane++ {
		EncodePlane(scratch, pixels, w, h, uint(plane))

		d.bus.WritePort(vga.GCIndex, vga.GCReadMap)
		d.bus.WritePort(vga.GCData, plane)
		d.bus.WritePort(vga.SeqIndex, vga.SeqMapMask)
		d.bus.WritePort(vga.SeqData, 1<<plane)

		if aligned {
			d.copyPlaneRows(scratch, x, y, w, clip)
		} else {
			d.mergePlaneRows(scratch, x, y, w, clip)
		}
	}

	// Leave the adapter in the state Clear and SetPixel expect.
	d.bus.WritePort(vga.SeqData, vga.AllPlanes)
	d.bus.WritePort(vga.GCIndex, vga.GCBitMask)
	d.bus.WritePort(vga.GCData, 0xff)

	return nil
}

// copyPlaneRows writes whole plane bytes; both the bitmap origin and the
// clipped width are multiples of 8.
func (d *Driver) copyPlaneRows(plane []byte, x, y, w int, clip image.Rectangle) {
	var (
		stride    = PlaneStride(w)
		srcStart  = (clip.Min.X - x) >> 3
		byteCount = clip.Dx() >> 3
	)

	d.bus.WritePort(vga.GCIndex, vga.GCBitMask)
	d.bus.WritePort(vga.GCData, 0xff)

	for row := clip.Min.Y; row < clip.Max.Y; row++ {
		src := plane[(row-y)*stride+srcStart:]
		offset, _ := vga.Offset(clip.Min.X, row)
		d.bus.CopyVRAM(offset, src[:byteCount])
	}
}

// mergePlaneRows handles bitmaps that do not start or end on a byte
// boundary. Each screen byte is assembled from the shifted bitmap bits and
// written under a bit mask covering only the pixels inside clip.
func (d *Driver) mergePlaneRows(plane []byte, x, y, w int, clip image.Rectangle) {
	var (
		stride  = PlaneStride(w)
		curMask = -1
	)

	for row := clip.Min.Y; row < clip.Max.Y; row++ {
		src := plane[(row-y)*stride:]

		for px := clip.Min.X; px < clip.Max.X; {
			offset, _ := vga.Offset(px, row)

			byteEnd := (px | 7) + 1
			if byteEnd > clip.Max.X {
				byteEnd = clip.Max.X
			}

			var mask, val uint8
			for ; px < byteEnd; px++ {
				bit := uint8(0x80) >> uint(px&7)
				mask |= bit

				sx := px - x
				if src[sx>>3]&(0x80>>uint(sx&7)) != 0 {
					val |= bit
				}
			}

			if int(mask) != curMask {
				d.bus.WritePort(vga.GCIndex, vga.GCBitMask)
				d.bus.WritePort(vga.GCData, mask)
				curMask = int(mask)
			}

			d.bus.ReadVRAM(offset)
			d.bus.WriteVRAM(offset, val)
		}
	}
}

// Line draws a line from (x0, y0) to (x1, y1), both end points included.
func (d *Driver) Line(c vga.Color, x0, y0, x1, y1 int) {
	if d.bus == nil {
		return
	}

	d.lock.Acquire()
	raster.Line(x0, y0, x1, y1, d.plotClipped(c))
	d.lock.Release()
}

// Circle draws a circle of radius r centered at (cx, cy). Filled circles
// cover the points with x*x+y*y < r*r-r.
func (d *Driver) Circle(c vga.Color, cx, cy, r int, filled bool) {
	if d.bus == nil {
		return
	}

	d.lock.Acquire()
	if filled {
		raster.FilledCircle(cx, cy, r, d.plotClipped(c))
	} else {
		raster.Circle(cx, cy, r, d.plotClipped(c))
	}
	d.lock.Release()
}

// Rect draws the outline of the rectangle spanning (x, y) to (x+w, y+h).
// Solid rectangles also fill rows y through y+h-1.
func (d *Driver) Rect(c vga.Color, x, y, w, h int, solid bool) {
	if d.bus == nil {
		return
	}

	d.lock.Acquire()
	raster.Rect(x, y, w, h, solid, d.plotClipped(c))
	d.lock.Release()
}

// Palette returns the active palette.
func (d *Driver) Palette() color.Palette {
	return d.palette
}

// SetPaletteColor loads rgba into DAC entry index. Indices outside the
// 16-color palette are ignored.
func (d *Driver) SetPaletteColor(index uint8, rgba color.RGBA) {
	if int(index) >= len(d.palette) {
		return
	}

	d.palette[index] = rgba
	if d.bus == nil {
		return
	}

	// Each DAC component is a 6-bit value.
	d.lock.Acquire()
	d.bus.WritePort(vga.DACWriteIndex, index)
	d.bus.WritePort(vga.DACData, rgba.R>>2)
	d.bus.WritePort(vga.DACData, rgba.G>>2)
	d.bus.WritePort(vga.DACData, rgba.B>>2)
	d.lock.Release()
}

func (d *Driver) loadDefaultPalette() {
	for index, c := range vga.DefaultPalette {
		d.SetPaletteColor(uint8(index), c.(color.RGBA))
	}
}

// DriverName returns the name of this driver.
func (d *Driver) DriverName() string {
	return "planar_vga"
}

// DriverVersion returns the version of this driver.
func (d *Driver) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit maps the graphics window, loads the default palette and
// clears the screen.
func (d *Driver) DriverInit(w io.Writer) *kernel.Error {
	if d.bus == nil {
		vram, err := mapVRAMFn(d.fbPhysAddr, mem.Size(vga.PlaneSize))
		if err != nil {
			return err
		}

		d.bus = &hwBus{vram: vram}
		kfmt.Fprintf(w, "mapped graphics window at 0x%x\n", d.fbPhysAddr)
	}

	d.loadDefaultPalette()
	d.Clear(vga.Black)
	kfmt.Fprintf(w, "mode 12h %dx%d, %d colors\n", vga.Width, vga.Height, vga.NumColors)

	return nil
}
