package winblur

import "github.com/agiangrant/winblur/internal/ffi"

// These are re-exports of the ffi types for consumer convenience.
type (
	EffectParams  = ffi.EffectParams
	WindowHandle  = ffi.WindowHandle
	Capabilities  = ffi.Capabilities
	Status        = ffi.Status
	LogLevel      = ffi.LogLevel
	BlurredWindow = ffi.BlurredWindow
	Native        = ffi.Native
)

const (
	StatusSuccess          = ffi.StatusSuccess
	StatusNotInitialized   = ffi.StatusNotInitialized
	StatusInvalidHandle    = ffi.StatusInvalidHandle
	StatusPermissionDenied = ffi.StatusPermissionDenied
	StatusAPIUnsupported   = ffi.StatusAPIUnsupported
	StatusTimeout          = ffi.StatusTimeout
	StatusOutOfMemory      = ffi.StatusOutOfMemory
	StatusInternalError    = ffi.StatusInternalError
	StatusInvalidParams    = ffi.StatusInvalidParams
	StatusAlreadyApplied   = ffi.StatusAlreadyApplied
)

const (
	CapSetWindowComposition = ffi.CapSetWindowComposition
	CapDWMBlur              = ffi.CapDWMBlur
	CapOverlayFallback      = ffi.CapOverlayFallback
	CapColorControl         = ffi.CapColorControl
	CapAnimationControl     = ffi.CapAnimationControl
)

const (
	LogError = ffi.LogError
	LogWarn  = ffi.LogWarn
	LogInfo  = ffi.LogInfo
	LogDebug = ffi.LogDebug
)

// DefaultEffectParams returns the parameters Apply starts from.
func DefaultEffectParams() EffectParams {
	return ffi.DefaultEffectParams()
}

// NewEffectParams returns default parameters with intensity and color overridden.
func NewEffectParams(intensity float32, colorARGB uint32) EffectParams {
	return ffi.NewEffectParams(intensity, colorARGB)
}

// ParseLogLevel maps "error", "warn", "info" or "debug" to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	return ffi.ParseLogLevel(s)
}
