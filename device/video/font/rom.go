package font

// romGlyphs holds the 8x16 glyphs of the standard VGA ROM font for the
// first 128 code points, one MSB-first byte per row.
var romGlyphs = [128 * romGlyphHeight]byte{
	// 0x00
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x01
	0x00, 0x00, 0x7e, 0x81, 0xa5, 0x81, 0x81, 0xbd,
	0x99, 0x81, 0x81, 0x7e, 0x00, 0x00, 0x00, 0x00,
	// 0x02
	0x00, 0x00, 0x7e, 0xff, 0xdb, 0xff, 0xff, 0xc3,
	0xe7, 0xff, 0xff, 0x7e, 0x00, 0x00, 0x00, 0x00,
	// 0x03
	0x00, 0x00, 0x00, 0x00, 0x6c, 0xfe, 0xfe, 0xfe,
	0xfe, 0x7c, 0x38, 0x10, 0x00, 0x00, 0x00, 0x00,
	// 0x04
	0x00, 0x00, 0x00, 0x00, 0x10, 0x38, 0x7c, 0xfe,
	0x7c, 0x38, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x05
	0x00, 0x00, 0x00, 0x18, 0x3c, 0x3c, 0xe7, 0xe7,
	0xe7, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 0x06
	0x00, 0x00, 0x00, 0x18, 0x3c, 0x7e, 0xff, 0xff,
	0x7e, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 0x07
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x3c,
	0x3c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x08
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xe7, 0xc3,
	0xc3, 0xe7, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	// 0x09
	0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0x66, 0x42,
	0x42, 0x66, 0x3c, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x0a
	0xff, 0xff, 0xff, 0xff, 0xff, 0xc3, 0x99, 0xbd,
	0xbd, 0x99, 0xc3, 0xff, 0xff, 0xff, 0xff, 0xff,
	// 0x0b
	0x00, 0x00, 0x1e, 0x0e, 0x1a, 0x32, 0x78, 0xcc,
	0xcc, 0xcc, 0xcc, 0x78, 0x00, 0x00, 0x00, 0x00,
	// 0x0c
	0x00, 0x00, 0x3c, 0x66, 0x66, 0x66, 0x66, 0x3c,
	0x18, 0x7e, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 0x0d
	0x00, 0x00, 0x3f, 0x33, 0x3f, 0x30, 0x30, 0x30,
	0x30, 0x70, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00,
	// 0x0e
	0x00, 0x00, 0x7f, 0x63, 0x7f, 0x63, 0x63, 0x63,
	0x63, 0x67, 0xe7, 0xe6, 0xc0, 0x00, 0x00, 0x00,
	// 0x0f
	0x00, 0x00, 0x00, 0x18, 0x18, 0xdb, 0x3c, 0xe7,
	0x3c, 0xdb, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 0x10
	0x00, 0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0xfe, 0xf8,
	0xf0, 0xe0, 0xc0, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x11
	0x00, 0x02, 0x06, 0x0e, 0x1e, 0x3e, 0xfe, 0x3e,
	0x1e, 0x0e, 0x06, 0x02, 0x00, 0x00, 0x00, 0x00,
	// 0x12
	0x00, 0x00, 0x18, 0x3c, 0x7e, 0x18, 0x18, 0x18,
	0x7e, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x13
	0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x00, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
	// 0x14
	0x00, 0x00, 0x7f, 0xdb, 0xdb, 0xdb, 0x7b, 0x1b,
	0x1b, 0x1b, 0x1b, 0x1b, 0x00, 0x00, 0x00, 0x00,
	// 0x15
	0x00, 0x7c, 0xc6, 0x60, 0x38, 0x6c, 0xc6, 0xc6,
	0x6c, 0x38, 0x0c, 0xc6, 0x7c, 0x00, 0x00, 0x00,
	// 0x16
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xfe, 0xfe, 0xfe, 0xfe, 0x00, 0x00, 0x00, 0x00,
	// 0x17
	0x00, 0x00, 0x18, 0x3c, 0x7e, 0x18, 0x18, 0x18,
	0x7e, 0x3c, 0x18, 0x7e, 0x00, 0x00, 0x00, 0x00,
	// 0x18
	0x00, 0x00, 0x18, 0x3c, 0x7e, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 0x19
	0x00, 0x00, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18,
	0x18, 0x7e, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 0x1a
	0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x0c, 0xfe,
	0x0c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x1b
	0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x60, 0xfe,
	0x60, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x1c
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0xc0,
	0xc0, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x1d
	0x00, 0x00, 0x00, 0x00, 0x00, 0x24, 0x66, 0xff,
	0x66, 0x24, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x1e
	0x00, 0x00, 0x00, 0x00, 0x10, 0x38, 0x38, 0x7c,
	0x7c, 0xfe, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x1f
	0x00, 0x00, 0x00, 0x00, 0xfe, 0xfe, 0x7c, 0x7c,
	0x38, 0x38, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x20
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '!'
	0x00, 0x00, 0x18, 0x3c, 0x3c, 0x3c, 0x18, 0x18,
	0x18, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// '"'
	0x00, 0x66, 0x66, 0x66, 0x24, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '#'
	0x00, 0x00, 0x00, 0x6c, 0x6c, 0xfe, 0x6c, 0x6c,
	0x6c, 0xfe, 0x6c, 0x6c, 0x00, 0x00, 0x00, 0x00,
	// '$'
	0x18, 0x18, 0x7c, 0xc6, 0xc2, 0xc0, 0x7c, 0x06,
	0x06, 0x86, 0xc6, 0x7c, 0x18, 0x18, 0x00, 0x00,
	// '%'
	0x00, 0x00, 0x00, 0x00, 0xc2, 0xc6, 0x0c, 0x18,
	0x30, 0x60, 0xc6, 0x86, 0x00, 0x00, 0x00, 0x00,
	// '&'
	0x00, 0x00, 0x38, 0x6c, 0x6c, 0x38, 0x76, 0xdc,
	0xcc, 0xcc, 0xcc, 0x76, 0x00, 0x00, 0x00, 0x00,
	// "'"
	0x00, 0x30, 0x30, 0x30, 0x60, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '('
	0x00, 0x00, 0x0c, 0x18, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x18, 0x0c, 0x00, 0x00, 0x00, 0x00,
	// ')'
	0x00, 0x00, 0x30, 0x18, 0x0c, 0x0c, 0x0c, 0x0c,
	0x0c, 0x0c, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00,
	// '*'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x66, 0x3c, 0xff,
	0x3c, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '+'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x7e,
	0x18, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// ','
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x18, 0x18, 0x18, 0x30, 0x00, 0x00, 0x00,
	// '-'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfe,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '.'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// '/'
	0x00, 0x00, 0x00, 0x00, 0x02, 0x06, 0x0c, 0x18,
	0x30, 0x60, 0xc0, 0x80, 0x00, 0x00, 0x00, 0x00,
	// '0'
	0x00, 0x00, 0x3c, 0x66, 0xc3, 0xc3, 0xdb, 0xdb,
	0xc3, 0xc3, 0x66, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// '1'
	0x00, 0x00, 0x18, 0x38, 0x78, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x7e, 0x00, 0x00, 0x00, 0x00,
	// '2'
	0x00, 0x00, 0x7c, 0xc6, 0x06, 0x0c, 0x18, 0x30,
	0x60, 0xc0, 0xc6, 0xfe, 0x00, 0x00, 0x00, 0x00,
	// '3'
	0x00, 0x00, 0x7c, 0xc6, 0x06, 0x06, 0x3c, 0x06,
	0x06, 0x06, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// '4'
	0x00, 0x00, 0x0c, 0x1c, 0x3c, 0x6c, 0xcc, 0xfe,
	0x0c, 0x0c, 0x0c, 0x1e, 0x00, 0x00, 0x00, 0x00,
	// '5'
	0x00, 0x00, 0xfe, 0xc0, 0xc0, 0xc0, 0xfc, 0x06,
	0x06, 0x06, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// '6'
	0x00, 0x00, 0x38, 0x60, 0xc0, 0xc0, 0xfc, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// '7'
	0x00, 0x00, 0xfe, 0xc6, 0x06, 0x06, 0x0c, 0x18,
	0x30, 0x30, 0x30, 0x30, 0x00, 0x00, 0x00, 0x00,
	// '8'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0xc6, 0x7c, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// '9'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0xc6, 0x7e, 0x06,
	0x06, 0x06, 0x0c, 0x78, 0x00, 0x00, 0x00, 0x00,
	// ':'
	0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00,
	0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
	// ';'
	0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00,
	0x00, 0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00,
	// '<'
	0x00, 0x00, 0x00, 0x06, 0x0c, 0x18, 0x30, 0x60,
	0x30, 0x18, 0x0c, 0x06, 0x00, 0x00, 0x00, 0x00,
	// '='
	0x00, 0x00, 0x00, 0x00, 0x00, 0x7e, 0x00, 0x00,
	0x7e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '>'
	0x00, 0x00, 0x00, 0x60, 0x30, 0x18, 0x0c, 0x06,
	0x0c, 0x18, 0x30, 0x60, 0x00, 0x00, 0x00, 0x00,
	// '?'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0x0c, 0x18, 0x18,
	0x18, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// '@'
	0x00, 0x00, 0x00, 0x7c, 0xc6, 0xc6, 0xde, 0xde,
	0xde, 0xdc, 0xc0, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'A'
	0x00, 0x00, 0x10, 0x38, 0x6c, 0xc6, 0xc6, 0xfe,
	0xc6, 0xc6, 0xc6, 0xc6, 0x00, 0x00, 0x00, 0x00,
	// 'B'
	0x00, 0x00, 0xfc, 0x66, 0x66, 0x66, 0x7c, 0x66,
	0x66, 0x66, 0x66, 0xfc, 0x00, 0x00, 0x00, 0x00,
	// 'C'
	0x00, 0x00, 0x3c, 0x66, 0xc2, 0xc0, 0xc0, 0xc0,
	0xc0, 0xc2, 0x66, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'D'
	0x00, 0x00, 0xf8, 0x6c, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x6c, 0xf8, 0x00, 0x00, 0x00, 0x00,
	// 'E'
	0x00, 0x00, 0xfe, 0x66, 0x62, 0x68, 0x78, 0x68,
	0x60, 0x62, 0x66, 0xfe, 0x00, 0x00, 0x00, 0x00,
	// 'F'
	0x00, 0x00, 0xfe, 0x66, 0x62, 0x68, 0x78, 0x68,
	0x60, 0x60, 0x60, 0xf0, 0x00, 0x00, 0x00, 0x00,
	// 'G'
	0x00, 0x00, 0x3c, 0x66, 0xc2, 0xc0, 0xc0, 0xde,
	0xc6, 0xc6, 0x66, 0x3a, 0x00, 0x00, 0x00, 0x00,
	// 'H'
	0x00, 0x00, 0xc6, 0xc6, 0xc6, 0xc6, 0xfe, 0xc6,
	0xc6, 0xc6, 0xc6, 0xc6, 0x00, 0x00, 0x00, 0x00,
	// 'I'
	0x00, 0x00, 0x3c, 0x18, 0x18, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'J'
	0x00, 0x00, 0x1e, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c,
	0xcc, 0xcc, 0xcc, 0x78, 0x00, 0x00, 0x00, 0x00,
	// 'K'
	0x00, 0x00, 0xe6, 0x66, 0x66, 0x6c, 0x78, 0x78,
	0x6c, 0x66, 0x66, 0xe6, 0x00, 0x00, 0x00, 0x00,
	// 'L'
	0x00, 0x00, 0xf0, 0x60, 0x60, 0x60, 0x60, 0x60,
	0x60, 0x62, 0x66, 0xfe, 0x00, 0x00, 0x00, 0x00,
	// 'M'
	0x00, 0x00, 0xc3, 0xe7, 0xff, 0xff, 0xdb, 0xc3,
	0xc3, 0xc3, 0xc3, 0xc3, 0x00, 0x00, 0x00, 0x00,
	// 'N'
	0x00, 0x00, 0xc6, 0xe6, 0xf6, 0xfe, 0xde, 0xce,
	0xc6, 0xc6, 0xc6, 0xc6, 0x00, 0x00, 0x00, 0x00,
	// 'O'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0xc6, 0xc6, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'P'
	0x00, 0x00, 0xfc, 0x66, 0x66, 0x66, 0x7c, 0x60,
	0x60, 0x60, 0x60, 0xf0, 0x00, 0x00, 0x00, 0x00,
	// 'Q'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0xc6, 0xc6, 0xc6,
	0xc6, 0xd6, 0xde, 0x7c, 0x0c, 0x0e, 0x00, 0x00,
	// 'R'
	0x00, 0x00, 0xfc, 0x66, 0x66, 0x66, 0x7c, 0x6c,
	0x66, 0x66, 0x66, 0xe6, 0x00, 0x00, 0x00, 0x00,
	// 'S'
	0x00, 0x00, 0x7c, 0xc6, 0xc6, 0x60, 0x38, 0x0c,
	0x06, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'T'
	0x00, 0x00, 0xff, 0xdb, 0x99, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'U'
	0x00, 0x00, 0xc6, 0xc6, 0xc6, 0xc6, 0xc6, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'V'
	0x00, 0x00, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3,
	0xc3, 0x66, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 'W'
	0x00, 0x00, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xdb,
	0xdb, 0xff, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
	// 'X'
	0x00, 0x00, 0xc3, 0xc3, 0x66, 0x3c, 0x18, 0x18,
	0x3c, 0x66, 0xc3, 0xc3, 0x00, 0x00, 0x00, 0x00,
	// 'Y'
	0x00, 0x00, 0xc3, 0xc3, 0xc3, 0x66, 0x3c, 0x18,
	0x18, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'Z'
	0x00, 0x00, 0xff, 0xc3, 0x86, 0x0c, 0x18, 0x30,
	0x60, 0xc1, 0xc3, 0xff, 0x00, 0x00, 0x00, 0x00,
	// '['
	0x00, 0x00, 0x3c, 0x30, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x30, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// '\\'
	0x00, 0x00, 0x00, 0x80, 0xc0, 0xe0, 0x70, 0x38,
	0x1c, 0x0e, 0x06, 0x02, 0x00, 0x00, 0x00, 0x00,
	// ']'
	0x00, 0x00, 0x3c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c,
	0x0c, 0x0c, 0x0c, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// '^'
	0x10, 0x38, 0x6c, 0xc6, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// '_'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00,
	// '`'
	0x30, 0x30, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 'a'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x78, 0x0c, 0x7c,
	0xcc, 0xcc, 0xcc, 0x76, 0x00, 0x00, 0x00, 0x00,
	// 'b'
	0x00, 0x00, 0xe0, 0x60, 0x60, 0x78, 0x6c, 0x66,
	0x66, 0x66, 0x66, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'c'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0xc6, 0xc0,
	0xc0, 0xc0, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'd'
	0x00, 0x00, 0x1c, 0x0c, 0x0c, 0x3c, 0x6c, 0xcc,
	0xcc, 0xcc, 0xcc, 0x76, 0x00, 0x00, 0x00, 0x00,
	// 'e'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0xc6, 0xfe,
	0xc0, 0xc0, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'f'
	0x00, 0x00, 0x38, 0x6c, 0x64, 0x60, 0xf0, 0x60,
	0x60, 0x60, 0x60, 0xf0, 0x00, 0x00, 0x00, 0x00,
	// 'g'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x76, 0xcc, 0xcc,
	0xcc, 0xcc, 0xcc, 0x7c, 0x0c, 0xcc, 0x78, 0x00,
	// 'h'
	0x00, 0x00, 0xe0, 0x60, 0x60, 0x6c, 0x76, 0x66,
	0x66, 0x66, 0x66, 0xe6, 0x00, 0x00, 0x00, 0x00,
	// 'i'
	0x00, 0x00, 0x18, 0x18, 0x00, 0x38, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'j'
	0x00, 0x00, 0x06, 0x06, 0x00, 0x0e, 0x06, 0x06,
	0x06, 0x06, 0x06, 0x06, 0x66, 0x66, 0x3c, 0x00,
	// 'k'
	0x00, 0x00, 0xe0, 0x60, 0x60, 0x66, 0x6c, 0x78,
	0x78, 0x6c, 0x66, 0xe6, 0x00, 0x00, 0x00, 0x00,
	// 'l'
	0x00, 0x00, 0x38, 0x18, 0x18, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x3c, 0x00, 0x00, 0x00, 0x00,
	// 'm'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xe6, 0xff, 0xdb,
	0xdb, 0xdb, 0xdb, 0xdb, 0x00, 0x00, 0x00, 0x00,
	// 'n'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xdc, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
	// 'o'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0xc6, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 'p'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xdc, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x7c, 0x60, 0x60, 0xf0, 0x00,
	// 'q'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x76, 0xcc, 0xcc,
	0xcc, 0xcc, 0xcc, 0x7c, 0x0c, 0x0c, 0x1e, 0x00,
	// 'r'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xdc, 0x76, 0x66,
	0x60, 0x60, 0x60, 0xf0, 0x00, 0x00, 0x00, 0x00,
	// 's'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0xc6, 0x60,
	0x38, 0x0c, 0xc6, 0x7c, 0x00, 0x00, 0x00, 0x00,
	// 't'
	0x00, 0x00, 0x10, 0x30, 0x30, 0xfc, 0x30, 0x30,
	0x30, 0x30, 0x36, 0x1c, 0x00, 0x00, 0x00, 0x00,
	// 'u'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xcc, 0xcc, 0xcc,
	0xcc, 0xcc, 0xcc, 0x76, 0x00, 0x00, 0x00, 0x00,
	// 'v'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xc3, 0xc3, 0xc3,
	0xc3, 0x66, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00,
	// 'w'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xc3, 0xc3, 0xc3,
	0xdb, 0xdb, 0xff, 0x66, 0x00, 0x00, 0x00, 0x00,
	// 'x'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xc3, 0x66, 0x3c,
	0x18, 0x3c, 0x66, 0xc3, 0x00, 0x00, 0x00, 0x00,
	// 'y'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xc6, 0xc6, 0xc6,
	0xc6, 0xc6, 0xc6, 0x7e, 0x06, 0x0c, 0xf8, 0x00,
	// 'z'
	0x00, 0x00, 0x00, 0x00, 0x00, 0xfe, 0xcc, 0x18,
	0x30, 0x60, 0xc6, 0xfe, 0x00, 0x00, 0x00, 0x00,
	// '{'
	0x00, 0x00, 0x0e, 0x18, 0x18, 0x18, 0x70, 0x18,
	0x18, 0x18, 0x18, 0x0e, 0x00, 0x00, 0x00, 0x00,
	// '|'
	0x00, 0x00, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18,
	0x18, 0x18, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	// '}'
	0x00, 0x00, 0x70, 0x18, 0x18, 0x18, 0x0e, 0x18,
	0x18, 0x18, 0x18, 0x70, 0x00, 0x00, 0x00, 0x00,
	// '~'
	0x00, 0x00, 0x76, 0xdc, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x7f
	0x00, 0x00, 0x00, 0x00, 0x10, 0x38, 0x6c, 0xc6,
	0xc6, 0xc6, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00,
}
