package winblur

import "runtime"

// Platform represents the current operating system
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the process is running on
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// SupportsBlur reports whether blur_lib can exist on p. Only Windows has a
// compositor API the library targets.
func (p Platform) SupportsBlur() bool {
	return p == PlatformWindows
}
