package voovan

import (
	"unsafe"
)

const hexDigits = "0123456789abcdef"

// b2s converts a byte slice to a string without allocation.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// s2b converts a string to a byte slice without allocation.
//
// The returned slice must not be mutated.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// appendUint appends the decimal form of n to dst and returns the extended dst.
func appendUint(dst []byte, n int) []byte {
	if n < 0 {
		// developer sanity-check
		panic("BUG: int must be positive")
	}
	var b [20]byte
	i := len(b)
	var q int
	for n >= 10 {
		i--
		q = n / 10
		b[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	b[i] = '0' + byte(n)
	return append(dst, b[i:]...)
}

// appendHexUint appends the lowercase hex form of n to dst.
func appendHexUint(dst []byte, n int) []byte {
	if n < 0 {
		panic("BUG: int must be positive")
	}
	var b [16]byte
	i := len(b)
	for {
		i--
		b[i] = hexDigits[n&0xf]
		n >>= 4
		if n == 0 {
			break
		}
	}
	return append(dst, b[i:]...)
}
