package planar

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/TheBigEye/monarch-os/device"
	"github.com/TheBigEye/monarch-os/device/video/planar/vgaemu"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/cpu"
	"github.com/TheBigEye/monarch-os/kernel/mem"
)

func newTestDriver() (*Driver, *vgaemu.Adapter) {
	emu := vgaemu.New()
	return NewDriver(emu), emu
}

func TestSetPixelPortProtocol(t *testing.T) {
	drv, emu := newTestDriver()

	emu.StartTrace()
	drv.SetPixel(vga.LightRed, 3, 1)
	trace := emu.StopTrace()

	exp := []vgaemu.PortWrite{
		{Port: vga.SeqIndex, Value: vga.SeqMapMask},
		{Port: vga.GCIndex, Value: vga.GCBitMask},
		{Port: vga.GCData, Value: 0x10},
		{Port: vga.SeqData, Value: vga.AllPlanes},
		{Port: vga.SeqData, Value: 0xcc},
	}

	if len(trace) != len(exp) {
		t.Fatalf("expected %d port writes; got %d: %+v", len(exp), len(trace), trace)
	}
	for i := range exp {
		if trace[i] != exp[i] {
			t.Errorf("port write %d: expected %+v; got %+v", i, exp[i], trace[i])
		}
	}
}

func TestSetPixelGetPixel(t *testing.T) {
	drv, emu := newTestDriver()

	// Fill a couple of bytes with a pattern so that writes that leak into
	// neighbouring pixels are detected.
	for x := 0; x < 24; x++ {
		drv.SetPixel(vga.Color(x%16), x, 7)
	}

	for c := vga.Color(0); c < vga.NumColors; c++ {
		x := 4 + int(c)
		drv.SetPixel(c, x, 7)

		if got := drv.Pixel(x, 7); got != c {
			t.Errorf("expected Pixel(%d, 7) to return %d; got %d", x, c, got)
		}
	}

	for x := 0; x < 24; x++ {
		exp := vga.Color(x % 16)
		if x >= 4 && x < 20 {
			exp = vga.Color(x - 4)
		}
		if got := emu.ColorAt(x, 7); got != exp {
			t.Errorf("expected pixel (%d, 7) to be %d; got %d", x, exp, got)
		}
	}

	for _, x := range []int{0, 23} {
		if got := emu.ColorAt(x, 6); got != vga.Black {
			t.Errorf("expected row above to stay black at x=%d; got %d", x, got)
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	drv, emu := newTestDriver()

	emu.StartTrace()
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {vga.Width, 0}, {0, vga.Height}} {
		drv.SetPixel(vga.White, pt[0], pt[1])
		if got := drv.Pixel(pt[0], pt[1]); got != vga.Black {
			t.Errorf("expected Pixel(%d, %d) to return black; got %d", pt[0], pt[1], got)
		}
	}

	if trace := emu.StopTrace(); len(trace) != 0 {
		t.Fatalf("expected off-screen access to skip the hardware; got %d port writes", len(trace))
	}
}

func TestClear(t *testing.T) {
	drv, emu := newTestDriver()

	drv.SetPixel(vga.Yellow, 100, 100)
	drv.Clear(vga.Cyan)

	for _, pt := range [][2]int{{0, 0}, {100, 100}, {639, 479}, {321, 17}} {
		if got := emu.ColorAt(pt[0], pt[1]); got != vga.Cyan {
			t.Errorf("expected pixel (%d, %d) to be cyan; got %d", pt[0], pt[1], got)
		}
	}

	for p, exp := range []uint8{0xff, 0xff, 0x00, 0x00} {
		if got := emu.PlaneByte(p, vga.PlaneSize-1); got != exp {
			t.Errorf("plane %d: expected 0x%x; got 0x%x", p, exp, got)
		}
	}

	drv.Clear(vga.Black)
	if got := emu.ColorAt(100, 100); got != vga.Black {
		t.Errorf("expected screen to be black after Clear(Black); got %d", got)
	}
}

func TestDrawBitmap(t *testing.T) {
	specs := []struct {
		x, y, w, h int
	}{
		// byte aligned fast path
		{8, 2, 16, 3},
		// unaligned origin and width
		{3, 5, 5, 4},
		// aligned origin, ragged width
		{16, 1, 11, 2},
		// clipped at the top-left corner
		{-3, -2, 9, 6},
		// clipped at the bottom-right corner
		{636, 477, 8, 6},
		// aligned origin off screen to the left
		{-8, 0, 24, 2},
	}

	for specIndex, spec := range specs {
		drv, emu := newTestDriver()
		drv.Clear(vga.Brown)

		indices := testIndices(spec.w, spec.h)
		packed := make([]byte, PackedStride(spec.w)*spec.h)
		Pack(packed, indices, spec.w, spec.h)

		if err := drv.DrawBitmap(packed, spec.x, spec.y, spec.w, spec.h); err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}

		for y := spec.y - 2; y < spec.y+spec.h+2; y++ {
			for x := spec.x - 9; x < spec.x+spec.w+9; x++ {
				if !vga.InBounds(x, y) {
					continue
				}

				exp := vga.Brown
				if x >= spec.x && x < spec.x+spec.w && y >= spec.y && y < spec.y+spec.h {
					exp = vga.Color(indices[(y-spec.y)*spec.w+(x-spec.x)])
				}

				if got := emu.ColorAt(x, y); got != exp {
					t.Errorf("[spec %d] pixel (%d, %d): expected %d; got %d", specIndex, x, y, exp, got)
				}
			}
		}

		if got := emu.Register(true, vga.SeqMapMask); got != vga.AllPlanes {
			t.Errorf("[spec %d] expected map mask to be restored; got 0x%x", specIndex, got)
		}
		if got := emu.Register(false, vga.GCBitMask); got != 0xff {
			t.Errorf("[spec %d] expected bit mask to be restored; got 0x%x", specIndex, got)
		}
	}
}

func TestDrawBitmapErrors(t *testing.T) {
	t.Run("short bitmap", func(t *testing.T) {
		drv, _ := newTestDriver()
		if err := drv.DrawBitmap(make([]byte, 3), 0, 0, 4, 2); err != ErrShortBitmap {
			t.Fatalf("expected ErrShortBitmap; got %v", err)
		}
	})

	t.Run("empty or off-screen", func(t *testing.T) {
		drv, emu := newTestDriver()
		emu.StartTrace()
		for _, args := range [][4]int{{0, 0, 0, 4}, {0, 0, 4, 0}, {vga.Width, 0, 4, 4}, {-4, -4, 4, 4}} {
			if err := drv.DrawBitmap(make([]byte, 16), args[0], args[1], args[2], args[3]); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
		if trace := emu.StopTrace(); len(trace) != 0 {
			t.Fatalf("expected no port writes; got %d", len(trace))
		}
	})

	t.Run("allocation failure", func(t *testing.T) {
		drv, emu := newTestDriver()
		drv.Clear(vga.Green)
		drv.SetAllocator(mem.NewBudgetAllocator(0))

		packed := bytes.Repeat([]byte{0xff}, PackedStride(16)*4)

		emu.StartTrace()
		if err := drv.DrawBitmap(packed, 0, 0, 16, 4); err != mem.ErrOutOfMemory {
			t.Fatalf("expected mem.ErrOutOfMemory; got %v", err)
		}
		if trace := emu.StopTrace(); len(trace) != 0 {
			t.Fatalf("expected a failed allocation to leave the hardware untouched; got %d port writes", len(trace))
		}
		if got := emu.ColorAt(0, 0); got != vga.Green {
			t.Fatalf("expected screen to be unchanged; got %d", got)
		}
	})

	t.Run("scratch buffer is released", func(t *testing.T) {
		drv, _ := newTestDriver()
		alloc := mem.NewBudgetAllocator(mem.Kb)
		drv.SetAllocator(alloc)

		if err := drv.DrawBitmap(make([]byte, PackedStride(13)*7), 5, 5, 13, 7); err != nil {
			t.Fatal(err)
		}
		if got := alloc.InUse(); got != 0 {
			t.Fatalf("expected scratch buffer to be freed; %d bytes still in use", got)
		}
	})
}

func TestLine(t *testing.T) {
	drv, emu := newTestDriver()
	drv.Line(vga.White, 0, 0, 10, 0)

	var plotted int
	for y := 0; y < 4; y++ {
		for x := 0; x < 24; x++ {
			if emu.ColorAt(x, y) == vga.White {
				plotted++
				if y != 0 || x > 10 {
					t.Errorf("unexpected pixel at (%d, %d)", x, y)
				}
			}
		}
	}

	if plotted != 11 {
		t.Fatalf("expected 11 pixels to be plotted; got %d", plotted)
	}

	// lines leaving the screen are clipped, not wrapped
	drv.Line(vga.Yellow, 630, 10, 650, 10)
	if got := emu.ColorAt(0, 11); got != vga.Black {
		t.Fatalf("expected clipped line to not wrap to the next row; got %d", got)
	}
	if got := emu.ColorAt(639, 10); got != vga.Yellow {
		t.Fatalf("expected last on-screen pixel to be plotted; got %d", got)
	}
}

func TestCircle(t *testing.T) {
	drv, emu := newTestDriver()
	drv.Circle(vga.LightGreen, 50, 50, 10, false)

	if got := emu.ColorAt(50, 50); got != vga.Black {
		t.Fatalf("expected circle center to be left untouched; got %d", got)
	}

	for y := 38; y <= 62; y++ {
		for x := 38; x <= 62; x++ {
			got := emu.ColorAt(x, y)
			for _, m := range [][2]int{{100 - x, y}, {x, 100 - y}, {50 + (y - 50), 50 + (x - 50)}} {
				if mirror := emu.ColorAt(m[0], m[1]); mirror != got {
					t.Fatalf("expected (%d, %d) and its mirror (%d, %d) to match", x, y, m[0], m[1])
				}
			}
		}
	}

	drv.Circle(vga.Red, 200, 200, 10, true)
	if got := emu.ColorAt(200, 200); got != vga.Red {
		t.Fatalf("expected filled circle to cover its center; got %d", got)
	}
	if got := emu.ColorAt(210, 200); got != vga.Black {
		t.Fatalf("expected filled circle to leave (cx+r, cy) empty; got %d", got)
	}
}

func TestRect(t *testing.T) {
	drv, emu := newTestDriver()
	drv.Rect(vga.Magenta, 10, 10, 4, 3, false)

	exp := strings.Join([]string{
		"000000",
		"055555",
		"050005",
		"050005",
		"055555",
		"000000",
	}, "\n")
	if got := dumpScreen(emu, 9, 9, 6, 6); got != exp {
		t.Fatalf("unexpected outline:\n%s", diffScreens(exp, got))
	}

	drv.Rect(vga.Magenta, 10, 10, 4, 3, true)
	exp = strings.Join([]string{
		"000000",
		"055555",
		"055555",
		"055555",
		"055555",
		"000000",
	}, "\n")
	if got := dumpScreen(emu, 9, 9, 6, 6); got != exp {
		t.Fatalf("unexpected solid rect:\n%s", diffScreens(exp, got))
	}
}

func TestPalette(t *testing.T) {
	drv, emu := newTestDriver()

	custom := color.RGBA{R: 252, G: 128, B: 4, A: 255}
	drv.SetPaletteColor(3, custom)
	drv.SetPaletteColor(16, custom)

	if got := drv.Palette()[3]; got != custom {
		t.Fatalf("expected driver palette entry 3 to be %v; got %v", custom, got)
	}
	if len(drv.Palette()) != vga.NumColors {
		t.Fatalf("expected palette to keep %d entries; got %d", vga.NumColors, len(drv.Palette()))
	}

	if got := emu.Palette()[3]; got != (color.RGBA{R: 255, G: 130, B: 4, A: 255}) {
		t.Fatalf("expected DAC entry 3 to hold the 6-bit version of %v; got %v", custom, got)
	}

	if vga.DefaultPalette[3] == custom {
		t.Fatal("expected SetPaletteColor to leave the default palette untouched")
	}
}

func TestDriverInterface(t *testing.T) {
	defer func() {
		mapVRAMFn = identityMapVRAM
		portWriteByteFn = cpu.PortWriteByte
	}()

	var dev device.Driver = newHardwareDriver(vga.VRAMBase)

	if dev.DriverName() == "" {
		t.Fatal("DriverName() returned an empty string")
	}

	if major, minor, patch := dev.DriverVersion(); major+minor+patch == 0 {
		t.Fatal("DriverVersion() returned an invalid version number")
	}

	t.Run("init fail", func(t *testing.T) {
		expErr := &kernel.Error{Module: "test", Message: "something went wrong"}
		mapVRAMFn = func(_ uintptr, _ mem.Size) ([]uint8, *kernel.Error) {
			return nil, expErr
		}

		if err := dev.DriverInit(nil); err != expErr {
			t.Fatalf("expected error: %v; got %v", expErr, err)
		}
	})

	t.Run("init success", func(t *testing.T) {
		vram := bytes.Repeat([]byte{0xaa}, vga.PlaneSize)
		var mappedAddr uintptr
		mapVRAMFn = func(addr uintptr, size mem.Size) ([]uint8, *kernel.Error) {
			mappedAddr = addr
			return vram[:size], nil
		}

		var dacWrites int
		portWriteByteFn = func(port uint16, _ uint8) {
			if port == vga.DACData {
				dacWrites++
			}
		}

		var buf bytes.Buffer
		if err := dev.DriverInit(&buf); err != nil {
			t.Fatal(err)
		}

		if mappedAddr != vga.VRAMBase {
			t.Errorf("expected graphics window at 0x%x to be mapped; got 0x%x", vga.VRAMBase, mappedAddr)
		}
		if exp := 3 * vga.NumColors; dacWrites != exp {
			t.Errorf("expected %d DAC writes; got %d", exp, dacWrites)
		}
		if vram[0] != 0xff || vram[vga.PlaneSize-1] != 0xff {
			t.Errorf("expected the clear passes to reach the mapped window")
		}
		if !strings.Contains(buf.String(), "mode 12h 640x480, 16 colors") {
			t.Errorf("unexpected init output %q", buf.String())
		}
	})
}

// testIndices returns a w x h bitmap with one color index per pixel.
func testIndices(w, h int) []byte {
	indices := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			indices[y*w+x] = byte((x*3 + y*5 + 1) % 16)
		}
	}
	return indices
}

// dumpScreen renders a region of the emulated screen as hex digits, one
// row per line.
func dumpScreen(emu *vgaemu.Adapter, x, y, w, h int) string {
	var buf bytes.Buffer
	for row := y; row < y+h; row++ {
		if row != y {
			buf.WriteByte('\n')
		}
		for col := x; col < x+w; col++ {
			fmt.Fprintf(&buf, "%x", uint8(emu.ColorAt(col, row)))
		}
	}
	return buf.String()
}

func diffScreens(exp, got string) string {
	expLines := strings.Split(exp, "\n")
	gotLines := strings.Split(got, "\n")

	maxLines := len(expLines)
	if l := len(gotLines); l > maxLines {
		maxLines = l
	}

	var buf bytes.Buffer
	buf.WriteString("exp:")
	buf.WriteString(strings.Repeat(" ", max(len(expLines[0])-4, 0)))
	buf.WriteString(" | got:\n")

	var left, right string
	for line := 0; line < maxLines; line++ {
		left, right = "", ""
		if line < len(expLines) {
			left = expLines[line]
		}
		if line < len(gotLines) {
			right = gotLines[line]
		}
		fmt.Fprintf(&buf, "%s | %s\n", left, right)
	}

	return buf.String()
}
