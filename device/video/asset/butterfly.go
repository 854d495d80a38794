package asset

import "github.com/TheBigEye/monarch-os/device/video/vga"

var butterfly32x32 = Bitmap{
	Name:             "butterfly",
	Width:            32,
	Height:           32,
	Align:            AlignCenter,
	Transparent:      true,
	TransparentIndex: vga.Black,
	Data: []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x06, 0x66, 0x66, 0x66, 0x88, 0x00, 0x00, 0x88, 0x66, 0x66, 0x66, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x66, 0xcc, 0xcc, 0xcc, 0x68, 0x88, 0x88, 0x86, 0xcc, 0xcc, 0xcc, 0x66, 0x00, 0x00,
		0x00, 0x06, 0x6c, 0xcc, 0xcc, 0xcc, 0xc6, 0x88, 0x88, 0x6c, 0xcc, 0xcc, 0xcc, 0xc6, 0x60, 0x00,
		0x00, 0x66, 0xcc, 0xce, 0xee, 0xec, 0xcc, 0x88, 0x88, 0xcc, 0xce, 0xee, 0xec, 0xcc, 0x66, 0x00,
		0x00, 0x6c, 0xcf, 0xfe, 0xee, 0xee, 0xcc, 0x88, 0x88, 0xcc, 0xee, 0xee, 0xef, 0xfc, 0xc6, 0x00,
		0x06, 0x6c, 0xcf, 0xfe, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xef, 0xfc, 0xc6, 0x60,
		0x06, 0xcc, 0xee, 0xee, 0xee, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xee, 0xee, 0xee, 0xcc, 0x60,
		0x06, 0xcc, 0xee, 0xee, 0xee, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xee, 0xee, 0xee, 0xcc, 0x60,
		0x06, 0xcc, 0xee, 0xee, 0xee, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xee, 0xee, 0xee, 0xcc, 0x60,
		0x06, 0xcc, 0xee, 0xee, 0xee, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xee, 0xee, 0xee, 0xcc, 0x60,
		0x06, 0x6c, 0xce, 0xee, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xee, 0xec, 0xc6, 0x60,
		0x00, 0x6c, 0xcc, 0xee, 0xee, 0xee, 0xcc, 0x88, 0x88, 0xcc, 0xee, 0xee, 0xee, 0xcc, 0xc6, 0x00,
		0x00, 0x66, 0xcc, 0xce, 0xee, 0xec, 0xcc, 0x88, 0x88, 0xcc, 0xce, 0xee, 0xec, 0xcc, 0x66, 0x00,
		0x00, 0x06, 0x6c, 0xcc, 0xcc, 0xcc, 0xc6, 0x88, 0x88, 0x6c, 0xcc, 0xcc, 0xcc, 0xc6, 0x60, 0x00,
		0x00, 0x00, 0x66, 0xcc, 0x66, 0x66, 0x66, 0x88, 0x88, 0x66, 0x66, 0x66, 0xcc, 0x66, 0x00, 0x00,
		0x00, 0x00, 0x06, 0x66, 0xcc, 0xcc, 0xc6, 0x88, 0x88, 0x6c, 0xcc, 0xcc, 0x66, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x6c, 0xcc, 0xec, 0xcc, 0x88, 0x88, 0xcc, 0xce, 0xcc, 0xc6, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x6c, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xc6, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x06, 0xcc, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xcc, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x06, 0xce, 0xff, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xff, 0xec, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x06, 0xce, 0xff, 0xee, 0xee, 0x88, 0x88, 0xee, 0xee, 0xff, 0xec, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x06, 0xcc, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xcc, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x6c, 0xee, 0xee, 0xec, 0x88, 0x88, 0xce, 0xee, 0xee, 0xc6, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x6c, 0xcc, 0xec, 0xcc, 0x88, 0x88, 0xcc, 0xce, 0xcc, 0xc6, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x06, 0xcc, 0xcc, 0xc6, 0x88, 0x88, 0x6c, 0xcc, 0xcc, 0x60, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x66, 0x66, 0x60, 0x00, 0x00, 0x06, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}

func init() {
	Register(&butterfly32x32)
}
