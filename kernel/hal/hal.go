// Package hal detects the available hardware, initializes the matching
// drivers and selects the graphics resources used by the kernel.
package hal

import (
	"bytes"

	"github.com/TheBigEye/monarch-os/device"
	"github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/kernel/kfmt"
	"github.com/TheBigEye/monarch-os/multiboot"
)

// maxFontScale is the largest scale accepted through gfxFontScale.
const maxFontScale = 4

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeScreen *planar.Driver
	activeFont   *font.Font

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var (
	devices managedDevices
	strBuf  bytes.Buffer

	getBootCmdLineFn = multiboot.GetBootCmdLine
	driverListFn     = device.DriverList
)

// ActiveScreen returns the initialized planar display or nil if none was
// detected.
func ActiveScreen() *planar.Driver {
	return devices.activeScreen
}

// ActiveFont returns the font selected for the active screen.
func ActiveFont() *font.Font {
	if devices.activeFont == nil {
		return font.Default()
	}
	return devices.activeFont
}

// DetectHardware probes for hardware devices and initializes the appropriate
// drivers.
func DetectHardware() {
	probe(driverListFn())
}

// probe executes the probe function for each driver and invokes
// onDriverInit for each successfully initialized driver.
func probe(driverInfoList device.DriverInfoList) {
	var w = kfmt.PrefixWriter{Sink: kfmt.GetOutputSink()}

	for _, info := range driverInfoList {
		drv := info.Probe()
		if drv == nil {
			continue
		}

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		kfmt.Fprintf(&w, "initialized\n")
		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked by probe() whenever a piece of hardware is detected
// and successfully initialized.
func onDriverInit(drv device.Driver) {
	switch drvImpl := drv.(type) {
	case *planar.Driver:
		onScreenInit(drvImpl)
	}
}

// onScreenInit makes the first initialized display the active one and
// selects its font. The gfxFont and gfxFontScale boot command line options
// override the built-in font and its scale.
func onScreenInit(screen *planar.Driver) {
	if devices.activeScreen != nil {
		return
	}
	devices.activeScreen = screen

	cmdLine := getBootCmdLineFn()

	selFont := font.Default()
	if name, ok := cmdLine["gfxFont"]; ok {
		if f := font.FindByName(name); f != nil {
			selFont = f
		} else {
			kfmt.Printf("[hal] unknown font %s; using %s\n", name, selFont.Name)
		}
	}

	if v := cmdLine["gfxFontScale"]; len(v) == 1 && v[0] >= '1' && v[0] <= '0'+maxFontScale {
		selFont = selFont.WithScale(int(v[0] - '0'))
	}

	devices.activeFont = selFont
	kfmt.Printf("[hal] font %s, scale %d\n", selFont.Name, selFont.Scale)
}
