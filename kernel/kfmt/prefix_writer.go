package kfmt

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and starts every line written through it
// with Prefix. The HAL uses it to tag driver init output with the driver
// name and version.
type PrefixWriter struct {
	// Sink receives the prefixed output. A nil Sink sends it to the early
	// print buffer.
	Sink io.Writer

	// Prefix is emitted before the first byte of each line.
	Prefix []byte

	midLine bool
}

// Write writes p to the sink, emitting the prefix whenever a new line
// starts. The returned count excludes prefix bytes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written int

	sink := w.Sink
	if sink == nil {
		sink = &earlyPrintBuffer
	}

	for len(p) > 0 {
		if !w.midLine {
			if _, err := sink.Write(w.Prefix); err != nil {
				return written, err
			}
			w.midLine = true
		}

		end := len(p)
		if idx := bytes.IndexByte(p, '\n'); idx >= 0 {
			end = idx + 1
			w.midLine = false
		}

		n, err := sink.Write(p[:end])
		written += n
		if err != nil {
			return written, err
		}
		p = p[end:]
	}

	return written, nil
}
