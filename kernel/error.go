package kernel

// Error describes a kernel error. Kernel errors are declared as package-level
// pointers to Error so that failing paths never need the allocator; a failed
// allocation is itself one of the errors that has to be reported.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
