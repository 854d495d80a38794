package main

import "github.com/TheBigEye/monarch-os/kernel/kmain"

// multibootInfoPtr is filled in by the rt0 code before main runs.
var multibootInfoPtr uintptr

// main is the trampoline between the rt0 assembly and kmain.Kmain. Passing a
// package-level variable keeps the compiler from proving the call dead and
// dropping the kernel from the linked image.
func main() {
	kmain.Kmain(multibootInfoPtr)
}
