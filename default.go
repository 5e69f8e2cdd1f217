package winblur

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/agiangrant/winblur/internal/ffi"
)

// Open loads blur_lib from path (empty searches the usual locations) and
// returns an uninitialized controller. On platforms other than Windows it
// returns ErrUnsupportedPlatform; Unsupported gives a usable stand-in.
func Open(path string, opts ...Option) (*Controller, error) {
	adapter, err := ffi.Open(path)
	if err != nil {
		return nil, err
	}
	return New(adapter, opts...), nil
}

// Unsupported returns a controller for platforms without blur_lib. Every
// operation fails with ErrUnsupportedPlatform and Version reports "N/A".
func Unsupported(opts ...Option) *Controller {
	return New(ffi.Unsupported(), opts...)
}

// SetLogger routes the native bindings' logs, including blur_lib's own log
// lines when the library supports a log callback.
func SetLogger(l *zap.Logger) {
	ffi.SetLogger(l)
}

var (
	defaultOnce       sync.Once
	defaultController *Controller
)

// Default returns the process-wide controller, loading blur_lib on first use.
// A load failure is reported by Init; window operations then fail with
// ErrNotInitialized as usual.
func Default() *Controller {
	defaultOnce.Do(func() {
		c, err := Open("")
		switch {
		case err == nil:
			defaultController = c
		case errors.Is(err, ErrUnsupportedPlatform):
			defaultController = Unsupported()
		default:
			ffi.Logger().Error("blur_lib unavailable", zap.Error(err))
			defaultController = New(ffi.Unsupported(), withLoadError(err))
		}
	})
	return defaultController
}

// Initialize initializes the default controller and returns its capability bits.
func Initialize() (uint32, error) {
	caps, err := Default().Init()
	return uint32(caps), err
}

// ApplyBlur blurs window through the default controller.
func ApplyBlur(window uintptr, intensity float32, colorARGB uint32) error {
	return Default().Apply(WindowHandle(window), intensity, colorARGB)
}

// ClearBlur removes the blur from window through the default controller.
func ClearBlur(window uintptr) error {
	return Default().Clear(WindowHandle(window))
}

// BlurVersion reports the library version through the default controller.
func BlurVersion() string {
	return Default().Version()
}
