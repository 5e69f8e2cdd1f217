package ffi

import (
	"encoding/json"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Native is the safe view of blur_lib used by the effect controller.
// Statuses are exposed as-is; interpreting them is the caller's job.
type Native interface {
	// Supported reports whether calls reach a real library.
	Supported() bool
	Init() (Capabilities, Status)
	Shutdown()
	Apply(window WindowHandle, params EffectParams, timeoutMs uint32) Status
	Clear(window WindowHandle, timeoutMs uint32) Status
	RestoreAll() Status
	Version() string
	LastError() string
	BlurredWindows() ([]BlurredWindow, error)
	SetLogLevel(level LogLevel) error
}

// BlurredWindow is one entry of blur_get_blurred_list.
type BlurredWindow struct {
	Window    WindowHandle `json:"hwnd"`
	Intensity float32      `json:"intensity"`
}

// Adapter implements Native on top of a raw Library.
type Adapter struct {
	lib Library
}

// NewAdapter wraps lib.
func NewAdapter(lib Library) *Adapter {
	return &Adapter{lib: lib}
}

func (a *Adapter) Supported() bool {
	return true
}

func (a *Adapter) Init() (Capabilities, Status) {
	var caps uint32
	status := Status(a.lib.Init(&caps))
	Logger().Debug("blur_init", zap.Stringer("status", status), zap.Uint32("capabilities", caps))
	return Capabilities(caps), status
}

func (a *Adapter) Shutdown() {
	a.lib.Shutdown()
	Logger().Debug("blur_shutdown")
}

func (a *Adapter) Apply(window WindowHandle, params EffectParams, timeoutMs uint32) Status {
	buf := params.Encode()
	status := Status(a.lib.Apply(uintptr(window), &buf[0], timeoutMs))
	runtime.KeepAlive(&buf)
	Logger().Debug("blur_apply_to_window",
		zap.Uintptr("window", uintptr(window)),
		zap.Float32("intensity", params.Intensity),
		zap.Uint32("color", params.ColorARGB),
		zap.Stringer("status", status),
	)
	return status
}

func (a *Adapter) Clear(window WindowHandle, timeoutMs uint32) Status {
	status := Status(a.lib.Clear(uintptr(window), timeoutMs))
	Logger().Debug("blur_clear_from_window", zap.Uintptr("window", uintptr(window)), zap.Stringer("status", status))
	return status
}

func (a *Adapter) RestoreAll() Status {
	return Status(a.lib.RestoreAll())
}

// Version returns the library version, or UnknownVersion.
func (a *Adapter) Version() string {
	return takeString(a.lib.GetVersion, a.lib.FreeString, UnknownVersion)
}

// LastError returns the library's last error message, or UnknownError.
func (a *Adapter) LastError() string {
	return takeString(a.lib.GetLastError, a.lib.FreeString, UnknownError)
}

// BlurredWindows lists windows the library is currently tracking.
func (a *Adapter) BlurredWindows() ([]BlurredWindow, error) {
	ext, ok := a.lib.(Extensions)
	if !ok {
		return nil, ErrNotExported
	}

	exported := true
	get := func(out **byte) int32 {
		status, found := ext.GetBlurredList(out)
		if !found {
			exported = false
			return int32(StatusAPIUnsupported)
		}
		return status
	}
	raw := takeString(get, a.lib.FreeString, "")
	if !exported {
		return nil, ErrNotExported
	}
	if raw == "" {
		return nil, fmt.Errorf("blur_get_blurred_list: %s", a.LastError())
	}

	var windows []BlurredWindow
	if err := json.Unmarshal([]byte(raw), &windows); err != nil {
		return nil, fmt.Errorf("blur_get_blurred_list: decode %q: %w", raw, err)
	}
	return windows, nil
}

// SetLogLevel changes blur_lib's internal verbosity. blur_init resets it,
// so call this after a successful Init.
func (a *Adapter) SetLogLevel(level LogLevel) error {
	ext, ok := a.lib.(Extensions)
	if !ok || !ext.SetLogLevel(int32(level)) {
		return ErrNotExported
	}
	return nil
}

// unsupported is the Native used where blur_lib cannot exist.
type unsupported struct{}

// Unsupported returns a Native that never calls into native code.
// Every operation reports StatusAPIUnsupported.
func Unsupported() Native {
	return unsupported{}
}

func (unsupported) Supported() bool { return false }

func (unsupported) Init() (Capabilities, Status) { return 0, StatusAPIUnsupported }

func (unsupported) Shutdown() {}

func (unsupported) Apply(WindowHandle, EffectParams, uint32) Status { return StatusAPIUnsupported }

func (unsupported) Clear(WindowHandle, uint32) Status { return StatusAPIUnsupported }

func (unsupported) RestoreAll() Status { return StatusAPIUnsupported }

func (unsupported) Version() string { return UnknownVersion }

func (unsupported) LastError() string { return ErrUnsupportedPlatform.Error() }

func (unsupported) BlurredWindows() ([]BlurredWindow, error) { return nil, ErrUnsupportedPlatform }

func (unsupported) SetLogLevel(LogLevel) error { return ErrUnsupportedPlatform }
