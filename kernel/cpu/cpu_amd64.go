// Package cpu exposes the handful of privileged x86 instructions needed by
// the video drivers. The functions are implemented in assembly and can only
// be executed in ring 0; drivers reach them through swappable function
// variables so that tests never call them.
package cpu

// EnableInterrupts enables interrupt handling.
func EnableInterrupts()

// DisableInterrupts disables interrupt handling.
func DisableInterrupts()

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(port uint16) uint8

// Halt disables interrupts and stops the CPU. It never returns.
func Halt()
