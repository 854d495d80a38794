// Package multiboot reads the boot information handed over by a
// multiboot2-compliant bootloader.
package multiboot

import (
	"strings"
	"unsafe"
)

var (
	infoData  uintptr
	cmdLineKV map[string]string
)

type tagType uint32

const (
	tagMbSectionEnd    tagType = 0
	tagBootCmdLine     tagType = 1
	tagFramebufferInfo tagType = 8
)

// tagHeader precedes each tag. Tags start at 8-byte aligned addresses.
type tagHeader struct {
	tagType tagType

	// The size of the tag including the header but not the padding.
	size uint32
}

// FramebufferType defines the type of the initialized framebuffer.
type FramebufferType uint8

const (
	// FramebufferTypeIndexed specifies a palette-based framebuffer.
	FramebufferTypeIndexed FramebufferType = iota

	// FramebufferTypeRGB specifies direct RGB mode.
	FramebufferTypeRGB

	// FramebufferTypeEGA specifies EGA text mode.
	FramebufferTypeEGA
)

// FramebufferInfo provides information about the framebuffer set up by the
// bootloader.
type FramebufferInfo struct {
	// The framebuffer physical address.
	PhysAddr uint64

	// Row pitch in bytes.
	Pitch uint32

	// Width and height in pixels (or characters if Type = FramebufferTypeEGA)
	Width, Height uint32

	// Bits per pixel (non EGA modes only).
	Bpp uint8

	// Framebuffer type.
	Type FramebufferType

	reserved uint16
}

// SetInfoPtr sets the address of the multiboot info block. It must be called
// before any other function in this package.
func SetInfoPtr(ptr uintptr) {
	infoData = ptr
	cmdLineKV = nil
}

// GetFramebufferInfo returns the framebuffer description supplied by the
// bootloader or nil if none is available.
func GetFramebufferInfo() *FramebufferInfo {
	curPtr, size := findTagByType(tagFramebufferInfo)
	if size == 0 {
		return nil
	}

	return (*FramebufferInfo)(unsafe.Pointer(curPtr))
}

// GetBootCmdLine returns the key-value pairs from the kernel command line.
// Flags without a value map to themselves ("nosplash" -> "nosplash"). Only
// call it once the Go allocator is available.
func GetBootCmdLine() map[string]string {
	if cmdLineKV != nil {
		return cmdLineKV
	}

	cmdLineKV = make(map[string]string)

	curPtr, size := findTagByType(tagBootCmdLine)
	if size == 0 {
		return cmdLineKV
	}

	// The command line is NUL-terminated.
	raw := unsafe.Slice((*byte)(unsafe.Pointer(curPtr)), size)
	if n := strings.IndexByte(string(raw), 0); n >= 0 {
		raw = raw[:n]
	}

	for _, field := range strings.Fields(string(raw)) {
		key, value, found := strings.Cut(field, "=")
		if !found {
			value = key
		}
		cmdLineKV[key] = value
	}

	return cmdLineKV
}

// findTagByType returns the address and length of the payload of the first
// tag with the requested type, or (0, 0) if the tag is not present.
func findTagByType(tagType tagType) (uintptr, uint32) {
	if infoData == 0 {
		return 0, 0
	}

	curPtr := infoData + 8
	for {
		hdr := (*tagHeader)(unsafe.Pointer(curPtr))
		switch hdr.tagType {
		case tagMbSectionEnd:
			return 0, 0
		case tagType:
			return curPtr + 8, hdr.size - 8
		}

		curPtr += uintptr((hdr.size + 7) &^ 7)
	}
}
