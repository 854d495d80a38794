package device

import (
	"io"
	"sort"

	"github.com/TheBigEye/monarch-os/kernel"
)

// Driver is an interface implemented by all drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. Init output should be
	// written to the supplied io.Writer with kfmt.Fprintf.
	DriverInit(io.Writer) *kernel.Error
}

// ProbeFn is a function that scans for the presence of a particular
// piece of hardware and returns a driver for it, or nil if the hardware is
// missing.
type ProbeFn func() Driver

// DetectOrder controls when a driver is probed relative to the others.
type DetectOrder int8

// Detection orders, from earliest to latest.
const (
	DetectOrderEarly DetectOrder = iota - 1
	DetectOrderNormal
	DetectOrderLast
)

// DriverInfo describes a registered driver.
type DriverInfo struct {
	// Order defines when the driver is probed.
	Order DetectOrder

	// Probe detects the hardware and returns a driver for it.
	Probe ProbeFn
}

// DriverInfoList is a list of registered drivers that sorts by
// detection order.
type DriverInfoList []*DriverInfo

// Len implements sort.Interface.
func (l DriverInfoList) Len() int { return len(l) }

// Swap implements sort.Interface.
func (l DriverInfoList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less implements sort.Interface.
func (l DriverInfoList) Less(i, j int) bool { return l[i].Order < l[j].Order }

var registeredDrivers DriverInfoList

// RegisterDriver adds a driver to the list probed by the HAL. Drivers call
// it from an init() block.
func RegisterDriver(info *DriverInfo) {
	registeredDrivers = append(registeredDrivers, info)
}

// DriverList returns the registered drivers sorted by detection order.
// Drivers sharing an order keep their registration order.
func DriverList() DriverInfoList {
	list := make(DriverInfoList, len(registeredDrivers))
	copy(list, registeredDrivers)
	sort.Stable(list)
	return list
}
