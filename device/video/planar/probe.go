package planar

import (
	"github.com/TheBigEye/monarch-os/device"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/multiboot"
)

var (
	getFramebufferInfoFn = multiboot.GetFramebufferInfo
	getBootCmdLineFn     = multiboot.GetBootCmdLine
)

// probeForPlanarVGA returns a driver when the bootloader left the adapter in
// a 640x480 4bpp indexed mode. Passing gfxMode=off on the kernel command
// line disables the driver.
func probeForPlanarVGA() device.Driver {
	if getBootCmdLineFn()["gfxMode"] == "off" {
		return nil
	}

	fbInfo := getFramebufferInfoFn()
	if fbInfo == nil || fbInfo.Type != multiboot.FramebufferTypeIndexed || fbInfo.Bpp != 4 {
		return nil
	}

	if fbInfo.Width != vga.Width || fbInfo.Height != vga.Height {
		return nil
	}

	physAddr := uintptr(fbInfo.PhysAddr)
	if physAddr == 0 {
		physAddr = vga.VRAMBase
	}

	return newHardwareDriver(physAddr)
}

func init() {
	device.RegisterDriver(&device.DriverInfo{
		Order: device.DetectOrderNormal,
		Probe: probeForPlanarVGA,
	})
}
