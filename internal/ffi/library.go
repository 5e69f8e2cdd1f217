// Package ffi provides Go bindings to blur_lib, the native compositor blur library.
//
// Library is the raw entry-point table using only primitive types. On Windows it
// is bound to blur_lib.dll with purego; everywhere else Open reports
// ErrUnsupportedPlatform. Adapter wraps a Library and is the only place that
// deals with out-pointers, packed structs and native string ownership.
package ffi

import "errors"

// ErrUnsupportedPlatform is returned on platforms blur_lib does not target.
var ErrUnsupportedPlatform = errors.New("Only supported on Windows")

// ErrNotExported is returned when an optional entry point is missing from the loaded library.
var ErrNotExported = errors.New("entry point not exported by blur_lib")

// Library is the fixed set of blur_lib exports.
//
// Out parameters are typed pointers so the Go memory they refer to stays
// reachable for the duration of the call. Native strings come back as
// pointers to NUL-terminated bytes owned by the library until FreeString
// releases them.
type Library interface {
	Init(capsOut *uint32) int32
	Shutdown()
	Apply(window uintptr, params *byte, timeoutMs uint32) int32
	Clear(window uintptr, timeoutMs uint32) int32
	RestoreAll() int32
	GetVersion(out **byte) int32
	GetLastError(out **byte) int32
	FreeString(ptr *byte)
}

// Extensions are exports that older builds of blur_lib may lack.
// A Library implements this when it can at least attempt them; a missing
// symbol is reported by the ok result.
type Extensions interface {
	GetBlurredList(out **byte) (status int32, ok bool)
	SetLogLevel(level int32) (ok bool)
}
