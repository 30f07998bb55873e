// Package conv formats numbers into caller-provided buffers without fmt, for
// firmware that prints through println.
package conv

const hexd = "0123456789abcdef"

// U8Hex writes n as 0x-prefixed two-digit hex into buf and returns the used
// slice. buf must hold at least 4 bytes.
func U8Hex(buf []byte, n uint8) []byte {
	if len(buf) < 4 {
		return buf[:0]
	}
	buf[0], buf[1] = '0', 'x'
	buf[2] = hexd[n>>4]
	buf[3] = hexd[n&0x0F]
	return buf[:4]
}

// AppendHex appends p as space-separated two-digit hex to dst.
func AppendHex(dst, p []byte) []byte {
	for i, c := range p {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = append(dst, hexd[c>>4], hexd[c&0x0F])
	}
	return dst
}
