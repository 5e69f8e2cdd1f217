package ffi

import (
	"fmt"
	"strings"
)

// WindowHandle is an opaque top-level window handle (an HWND on Windows).
// It is passed through to blur_lib without validation.
type WindowHandle uintptr

// Status is a return code from blur_lib.
type Status int32

const (
	StatusSuccess          Status = 0
	StatusNotInitialized   Status = 1
	StatusInvalidHandle    Status = 2
	StatusPermissionDenied Status = 3
	StatusAPIUnsupported   Status = 4
	StatusTimeout          Status = 5
	StatusOutOfMemory      Status = 6
	StatusInternalError    Status = 7
	StatusInvalidParams    Status = 8
	StatusAlreadyApplied   Status = 9
)

// OK reports whether s is StatusSuccess.
func (s Status) OK() bool {
	return s == StatusSuccess
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotInitialized:
		return "not initialized"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusPermissionDenied:
		return "permission denied"
	case StatusAPIUnsupported:
		return "api unsupported"
	case StatusTimeout:
		return "timeout"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInternalError:
		return "internal error"
	case StatusInvalidParams:
		return "invalid params"
	case StatusAlreadyApplied:
		return "already applied"
	default:
		return fmt.Sprintf("unknown status %d", int32(s))
	}
}

// Capabilities is the feature bitmask reported by blur_init.
type Capabilities uint32

const (
	CapSetWindowComposition Capabilities = 0x0001
	CapDWMBlur              Capabilities = 0x0002
	CapOverlayFallback      Capabilities = 0x0004
	CapColorControl         Capabilities = 0x0008
	CapAnimationControl     Capabilities = 0x0010
)

var capNames = []struct {
	bit  Capabilities
	name string
}{
	{CapSetWindowComposition, "composition"},
	{CapDWMBlur, "dwm"},
	{CapOverlayFallback, "overlay"},
	{CapColorControl, "color"},
	{CapAnimationControl, "animation"},
}

// Has reports whether every bit in want is set.
func (c Capabilities) Has(want Capabilities) bool {
	return c&want == want
}

func (c Capabilities) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	rest := c
	for _, n := range capNames {
		if c.Has(n.bit) {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// LogLevel is blur_lib's internal log verbosity.
type LogLevel int32

const (
	LogError LogLevel = 0
	LogWarn  LogLevel = 1
	LogInfo  LogLevel = 2
	LogDebug LogLevel = 3
)

func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "error"
	case LogWarn:
		return "warn"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// ParseLogLevel maps a level name to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogError, nil
	case "warn", "warning":
		return LogWarn, nil
	case "info":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	default:
		return LogWarn, fmt.Errorf("unknown log level %q", s)
	}
}
