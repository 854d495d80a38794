package mem

// Memset sets every byte of buf to value using log2(len(buf)) copy calls.
func Memset(buf []byte, value byte) {
	if len(buf) == 0 {
		return
	}

	buf[0] = value
	for filled := 1; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// Memcopy copies min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes copied.
func Memcopy(dst, src []byte) int {
	return copy(dst, src)
}
