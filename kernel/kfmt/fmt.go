// Package kfmt implements the formatted output used by drivers before and
// after the console comes up. Nothing in this package allocates; every
// formatted value is written straight to the destination io.Writer.
package kfmt

import (
	"io"
	"unsafe"
)

// numBufSize bounds the width of a formatted integer including its sign.
const numBufSize = 32

const digits = "0123456789abcdef"

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errBadVerb      = []byte("%!(BADVERB)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	numBuf  [numBufSize]byte
	charBuf [1]byte

	// earlyPrintBuffer collects Printf output until SetOutputSink is called.
	earlyPrintBuffer ringBuffer

	// outputSink receives Printf output. While nil, output is kept in
	// earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink redirects Printf output to w and flushes anything that was
// buffered while no sink was available.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the current Printf target, or nil while output is
// still being buffered.
func GetOutputSink() io.Writer {
	return outputSink
}

// Printf formats according to format and writes to the active output sink.
//
// The supported verbs are a subset of the ones offered by the fmt package:
//
//	%s  string or []byte
//	%d  integer, base 10
//	%x  integer, base 16 (lower-case)
//	%o  integer, base 8
//	%t  bool
//	%c  single byte or rune; runes outside ASCII print as '?'
//	%%  a literal percent sign
//
// An optional decimal width may precede the verb. Strings and base-10
// integers are left-padded with spaces; base-8 and base-16 integers are
// left-padded with zeroes.
//
// Arguments are never inspected through reflection or the Stringer interface
// as both would make the compiler emit allocating conversions.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves like Printf but writes its output to w. A nil w sends the
// output to the early print buffer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var argIndex int

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			writeByte(w, format[i])
			continue
		}

		width := 0
		for i++; i < len(format) && format[i] >= '0' && format[i] <= '9'; i++ {
			width = width*10 + int(format[i]-'0')
		}

		if i == len(format) {
			doWrite(w, errNoVerb)
			break
		}

		verb := format[i]
		if verb == '%' {
			writeByte(w, '%')
			continue
		}

		if argIndex >= len(args) {
			doWrite(w, errMissingArg)
			continue
		}

		arg := args[argIndex]
		argIndex++

		switch verb {
		case 'd':
			fmtInt(w, arg, 10, width)
		case 'x':
			fmtInt(w, arg, 16, width)
		case 'o':
			fmtInt(w, arg, 8, width)
		case 's':
			fmtString(w, arg, width)
		case 't':
			fmtBool(w, arg)
		case 'c':
			fmtChar(w, arg)
		default:
			doWrite(w, errBadVerb)
		}
	}

	for ; argIndex < len(args); argIndex++ {
		doWrite(w, errExtraArg)
	}
}

func fmtBool(w io.Writer, v interface{}) {
	b, ok := v.(bool)
	switch {
	case !ok:
		doWrite(w, errWrongArgType)
	case b:
		doWrite(w, trueValue)
	default:
		doWrite(w, falseValue)
	}
}

func fmtChar(w io.Writer, v interface{}) {
	switch ch := v.(type) {
	case byte:
		writeByte(w, ch)
	case rune:
		if ch < 0 || ch > 0x7f {
			ch = '?'
		}
		writeByte(w, byte(ch))
	default:
		doWrite(w, errWrongArgType)
	}
}

func fmtString(w io.Writer, v interface{}, width int) {
	switch s := v.(type) {
	case string:
		pad(w, ' ', width-len(s))
		// string to []byte conversions allocate.
		for i := 0; i < len(s); i++ {
			writeByte(w, s[i])
		}
	case []byte:
		pad(w, ' ', width-len(s))
		doWrite(w, s)
	default:
		doWrite(w, errWrongArgType)
	}
}

func pad(w io.Writer, ch byte, count int) {
	for ; count > 0; count-- {
		writeByte(w, ch)
	}
}

// fmtInt writes v in the requested base. All built-in integer types are
// accepted.
func fmtInt(w io.Writer, v interface{}, base uint64, width int) {
	var (
		u   uint64
		neg bool
	)

	switch n := v.(type) {
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	case uint:
		u = uint64(n)
	case uintptr:
		u = uint64(n)
	case int8:
		u, neg = abs(int64(n))
	case int16:
		u, neg = abs(int64(n))
	case int32:
		u, neg = abs(int64(n))
	case int64:
		u, neg = abs(n)
	case int:
		u, neg = abs(int64(n))
	default:
		doWrite(w, errWrongArgType)
		return
	}

	if width >= numBufSize {
		width = numBufSize - 1
	}

	pos := numBufSize
	for {
		pos--
		numBuf[pos] = digits[u%base]
		if u /= base; u == 0 {
			break
		}
	}

	padCh := byte('0')
	if base == 10 {
		padCh = ' '
	}

	// Spaces go in front of the sign, zeroes between the sign and digits.
	if neg && padCh == ' ' {
		pos--
		numBuf[pos] = '-'
	}

	limit := width
	if neg && padCh == '0' {
		limit--
	}
	for numBufSize-pos < limit {
		pos--
		numBuf[pos] = padCh
	}

	if neg && padCh == '0' {
		pos--
		numBuf[pos] = '-'
	}

	doWrite(w, numBuf[pos:])
}

func abs(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

func writeByte(w io.Writer, b byte) {
	charBuf[0] = b
	doWrite(w, charBuf[:])
}

// doWrite hides p from escape analysis. The destination io.Writer is not
// known at compile time so the compiler would otherwise assume that p escapes
// and heap-allocate every argument slice handed to Fprintf.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w == nil {
		earlyPrintBuffer.Write(p)
		return
	}
	w.Write(p)
}

// noEscape hides a pointer from escape analysis (see runtime/stubs.go).
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
