package planar

import "github.com/TheBigEye/monarch-os/device/video/vga"

// PackedStride returns the row size in bytes of a packed 4bpp bitmap that
// is w pixels wide. Each byte holds two pixels, the left one in the high
// nibble.
func PackedStride(w int) int {
	return (w + 1) / 2
}

// PlaneStride returns the row size in bytes of a single 1bpp plane that is
// w pixels wide.
func PlaneStride(w int) int {
	return (w + 7) / 8
}

// PlaneBufferSize returns the number of bytes EncodePlane writes for a
// w x h bitmap.
func PlaneBufferSize(w, h int) int {
	return PlaneStride(w) * h
}

// EncodePlane extracts the requested plane of a packed 4bpp bitmap into dst
// as MSB-first 1bpp rows of PlaneStride(w) bytes. dst must hold at least
// PlaneBufferSize(w, h) bytes and pixels at least PackedStride(w)*h bytes.
// Padding bits at the end of each row are cleared.
func EncodePlane(dst, pixels []byte, w, h int, plane uint) {
	var (
		srcStride = PackedStride(w)
		dstStride = PlaneStride(w)
		planeBit  = uint8(1) << plane
	)

	for row := 0; row < h; row++ {
		src := pixels[row*srcStride : (row+1)*srcStride]
		out := dst[row*dstStride : (row+1)*dstStride]
		for i := range out {
			out[i] = 0
		}

		for col := 0; col < w; col++ {
			packed := src[col>>1]
			nibble := packed >> 4
			if col&1 == 1 {
				nibble = packed & 0x0f
			}

			if nibble&planeBit != 0 {
				out[col>>3] |= 0x80 >> uint(col&7)
			}
		}
	}
}

// EncodePlanes encodes all four planes of a packed 4bpp bitmap into a newly
// allocated slice per plane.
func EncodePlanes(pixels []byte, w, h int) [vga.Planes][]byte {
	var planes [vga.Planes][]byte
	for p := range planes {
		planes[p] = make([]byte, PlaneBufferSize(w, h))
		EncodePlane(planes[p], pixels, w, h, uint(p))
	}
	return planes
}

// Pack converts one color index per pixel into a packed 4bpp bitmap. Only
// the low nibble of each input byte is kept.
func Pack(dst, indices []byte, w, h int) {
	stride := PackedStride(w)
	for row := 0; row < h; row++ {
		out := dst[row*stride : (row+1)*stride]
		for i := range out {
			out[i] = 0
		}

		for col, c := range indices[row*w : (row+1)*w] {
			if col&1 == 0 {
				out[col>>1] |= (c & 0x0f) << 4
			} else {
				out[col>>1] |= c & 0x0f
			}
		}
	}
}
