package clap

// #include <stdlib.h>
// #include <string.h>
import "C"
import (
	"strings"
	"unsafe"
)

// maxStringLen bounds every read of a plugin-owned C string.
const maxStringLen = 64 * 1024

// maxFeatures bounds the walk of a descriptor's NULL-terminated feature list.
const maxFeatures = 256

// MaxEntries bounds how many entries are read from any plugin-reported count.
// Counts themselves are reported unchanged.
const MaxEntries = 1 << 16

// goString copies a plugin-owned C string. A nil pointer yields "".
// Invalid UTF-8 is replaced rather than reported.
func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	n := C.strnlen(p, C.size_t(maxStringLen))
	return sanitize(C.GoStringN(p, C.int(n)))
}

// goStringN copies a fixed-size char array, stopping at the first NUL.
func goStringN(p *C.char, size int) string {
	if p == nil || size <= 0 {
		return ""
	}
	raw := C.GoBytes(unsafe.Pointer(p), C.int(size))
	for i, b := range raw {
		if b == 0 {
			raw = raw[:i]
			break
		}
	}
	return sanitize(string(raw))
}

func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
