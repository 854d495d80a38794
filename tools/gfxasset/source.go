package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
)

const generatedHeader = "// Code generated by gfxasset; DO NOT EDIT.\n\n"

// writeHexBytes emits data as a comma separated list of hex literals, 16 per
// line.
func writeHexBytes(buf *bytes.Buffer, data []byte) {
	for i, b := range data {
		if i != 0 && i%16 == 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "0x%02x, ", b)
	}
	buf.WriteByte('\n')
}

// formatSource runs the generated code through gofmt.
func formatSource(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("could not format generated source: %w", err)
	}
	return out, nil
}

// writeOutput writes data to the named file or to stdout when name is "-".
func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}

	slog.Info("wrote asset", "file", name, "bytes", len(data))
	return nil
}
