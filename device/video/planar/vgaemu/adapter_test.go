package vgaemu

import (
	"image/color"
	"testing"

	"github.com/TheBigEye/monarch-os/device/video/vga"
)

func TestWriteMode0(t *testing.T) {
	a := New()

	// Full bit mask writes the data byte to the enabled planes only.
	a.WritePort(vga.SeqIndex, vga.SeqMapMask)
	a.WritePort(vga.SeqData, 0x05)
	a.WriteVRAM(10, 0xa5)

	for p, exp := range []uint8{0xa5, 0x00, 0xa5, 0x00} {
		if got := a.PlaneByte(p, 10); got != exp {
			t.Errorf("plane %d: expected 0x%x; got 0x%x", p, exp, got)
		}
	}

	// Bits outside the bit mask come from the latches loaded by a read.
	a.WritePort(vga.SeqData, vga.AllPlanes)
	a.WritePort(vga.GCIndex, vga.GCBitMask)
	a.WritePort(vga.GCData, 0x0f)
	a.ReadVRAM(10)
	a.WriteVRAM(10, 0x00)

	for p, exp := range []uint8{0xa0, 0x00, 0xa0, 0x00} {
		if got := a.PlaneByte(p, 10); got != exp {
			t.Errorf("plane %d: expected 0x%x after masked write; got 0x%x", p, exp, got)
		}
	}
}

func TestSetReset(t *testing.T) {
	a := New()
	a.WritePort(vga.GCIndex, vga.GCSetReset)
	a.WritePort(vga.GCData, 0x02)
	a.WritePort(vga.GCIndex, vga.GCEnableSetReset)
	a.WritePort(vga.GCData, 0x03)

	a.WriteVRAM(0, 0x81)

	for p, exp := range []uint8{0x00, 0xff, 0x81, 0x81} {
		if got := a.PlaneByte(p, 0); got != exp {
			t.Errorf("plane %d: expected 0x%x; got 0x%x", p, exp, got)
		}
	}
}

func TestReadMap(t *testing.T) {
	a := New()
	a.WritePort(vga.SeqIndex, vga.SeqMapMask)
	a.WritePort(vga.SeqData, 0x08)
	a.WriteVRAM(3, 0x42)

	a.WritePort(vga.GCIndex, vga.GCReadMap)
	for plane := uint8(0); plane < vga.Planes; plane++ {
		a.WritePort(vga.GCData, plane)

		exp := uint8(0)
		if plane == 3 {
			exp = 0x42
		}
		if got := a.ReadVRAM(3); got != exp {
			t.Errorf("read map %d: expected 0x%x; got 0x%x", plane, exp, got)
		}
	}

	if got := a.ReadVRAM(vga.PlaneSize); got != 0xff {
		t.Errorf("expected out of range reads to return 0xff; got 0x%x", got)
	}
}

func TestColorAtAndSnapshot(t *testing.T) {
	a := New()
	offset, mask := vga.Offset(9, 2)

	a.WritePort(vga.SeqIndex, vga.SeqMapMask)
	a.WritePort(vga.SeqData, uint8(vga.LightRed))
	a.WriteVRAM(offset, mask)

	if got := a.ColorAt(9, 2); got != vga.LightRed {
		t.Fatalf("expected ColorAt(9, 2) to return %d; got %d", vga.LightRed, got)
	}
	if got := a.ColorAt(8, 2); got != vga.Black {
		t.Fatalf("expected neighbouring pixel to stay black; got %d", got)
	}
	if got := a.ColorAt(-1, 0); got != vga.Black {
		t.Fatalf("expected off-screen ColorAt to return black; got %d", got)
	}

	img := a.Snapshot()
	if got := img.ColorIndexAt(9, 2); got != uint8(vga.LightRed) {
		t.Fatalf("expected snapshot pixel (9, 2) to be %d; got %d", vga.LightRed, got)
	}
	if got := img.At(9, 2); got != (color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}) {
		t.Fatalf("expected snapshot pixel (9, 2) to be light red; got %v", got)
	}
}

func TestDAC(t *testing.T) {
	a := New()

	a.WritePort(vga.DACWriteIndex, 4)
	for _, v := range []uint8{63, 0, 32, 1, 2, 3} {
		a.WritePort(vga.DACData, v)
	}

	pal := a.Palette()
	if got := pal[4]; got != (color.RGBA{R: 255, G: 0, B: 130, A: 0xff}) {
		t.Errorf("expected DAC entry 4 to be updated; got %v", got)
	}
	if got := pal[5]; got != (color.RGBA{R: 4, G: 8, B: 12, A: 0xff}) {
		t.Errorf("expected the write index to advance to entry 5; got %v", got)
	}

	a.WritePort(vga.DACReadIndex, 4)
	for i, exp := range []uint8{63, 0, 32, 1} {
		if got := a.ReadPort(vga.DACData); got != exp {
			t.Errorf("DAC read %d: expected %d; got %d", i, exp, got)
		}
	}
}

func TestTrace(t *testing.T) {
	a := New()
	a.WritePort(vga.SeqIndex, 1)

	a.StartTrace()
	a.WritePort(vga.GCIndex, vga.GCBitMask)
	a.WritePort(vga.GCData, 0x80)
	trace := a.StopTrace()
	a.WritePort(vga.GCData, 0x40)

	exp := []PortWrite{{vga.GCIndex, vga.GCBitMask}, {vga.GCData, 0x80}}
	if len(trace) != len(exp) {
		t.Fatalf("expected %d traced writes; got %d", len(exp), len(trace))
	}
	for i := range exp {
		if trace[i] != exp[i] {
			t.Errorf("trace entry %d: expected %+v; got %+v", i, exp[i], trace[i])
		}
	}

	if got := a.Register(false, vga.GCBitMask); got != 0x40 {
		t.Errorf("expected bit mask register to be 0x40; got 0x%x", got)
	}
}
