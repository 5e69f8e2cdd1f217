package winblur

import (
	"errors"

	"github.com/agiangrant/winblur/internal/ffi"
)

// Lifecycle misuse is rejected locally, before any native call.
var (
	ErrAlreadyInitialized = errors.New("Already initialized")
	ErrNotInitialized     = errors.New("Library not initialized")
)

// ErrUnsupportedPlatform is returned by every operation except Version on
// platforms blur_lib does not target.
var ErrUnsupportedPlatform = ffi.ErrUnsupportedPlatform

// ErrNotExported is returned by optional operations the loaded blur_lib
// build does not export.
var ErrNotExported = ffi.ErrNotExported

// Error is a failure reported by blur_lib. Message is the text callers
// should show as-is: the library's last error for window operations, or a
// description embedding the status code for init.
type Error struct {
	Op      string
	Status  Status
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error with the same status. An empty Op in target
// matches any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && (t.Op == "" || t.Op == e.Op)
}

// StatusOf extracts the native status from err, or StatusSuccess if err
// did not come from blur_lib.
func StatusOf(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusSuccess
}
