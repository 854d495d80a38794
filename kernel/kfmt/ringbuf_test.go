package kfmt

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRingBuffer(t *testing.T) {
	t.Run("read/write", func(t *testing.T) {
		var rb ringBuffer
		exp := "the big brown fox jumped over the lazy dog"

		n, err := rb.Write([]byte(exp))
		if err != nil {
			t.Fatal(err)
		}
		if n != len(exp) {
			t.Fatalf("expected to write %d bytes; wrote %d", len(exp), n)
		}

		if got := readByteByByte(&rb); got != exp {
			t.Fatalf("expected to read %q; got %q", exp, got)
		}

		if n, err := rb.Read(make([]byte, 1)); n != 0 || err != io.EOF {
			t.Fatalf("expected empty buffer to return (0, io.EOF); got (%d, %v)", n, err)
		}
	})

	t.Run("overflow keeps latest bytes", func(t *testing.T) {
		var rb ringBuffer
		rb.Write([]byte(strings.Repeat("a", ringBufferSize)))
		rb.Write([]byte("xyz"))

		var buf bytes.Buffer
		io.Copy(&buf, &rb)

		exp := strings.Repeat("a", ringBufferSize-3) + "xyz"
		if got := buf.String(); got != exp {
			t.Fatalf("expected %d bytes ending in %q; got %d bytes ending in %q", len(exp), "xyz", len(got), got[len(got)-3:])
		}
	})

	t.Run("wrapped indices", func(t *testing.T) {
		var rb ringBuffer
		rb.start = ringBufferSize - 2

		rb.Write([]byte("wrap"))
		if got := readByteByByte(&rb); got != "wrap" {
			t.Fatalf("expected to read %q; got %q", "wrap", got)
		}
	})
}

func readByteByByte(rb *ringBuffer) string {
	var (
		buf bytes.Buffer
		b   = make([]byte, 1)
	)

	for {
		if _, err := rb.Read(b); err == io.EOF {
			return buf.String()
		}
		buf.Write(b)
	}
}
