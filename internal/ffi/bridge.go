package ffi

import (
	"strings"
	"unsafe"
)

// Fallback strings returned when the library cannot describe itself.
const (
	UnknownError   = "Unknown error"
	UnknownVersion = "unknown"
)

// maxCString bounds the scan for a terminating NUL.
const maxCString = 1 << 20

// goString copies a NUL-terminated UTF-8 string out of native memory.
// Invalid UTF-8 sequences become U+FFFD.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var length int
	for length < maxCString && *(*byte)(unsafe.Add(unsafe.Pointer(p), length)) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return strings.ToValidUTF8(string(unsafe.Slice(p, length)), "\uFFFD")
}

// takeString runs get with an out slot, copies the returned string and
// releases it through free. The native pointer is freed exactly once and
// never read after that; on any failure fallback is returned instead.
func takeString(get func(out **byte) int32, free func(*byte), fallback string) string {
	var p *byte
	if Status(get(&p)) != StatusSuccess || p == nil {
		return fallback
	}
	defer free(p)
	return goString(p)
}
