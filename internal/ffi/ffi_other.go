//go:build !windows

package ffi

// Open always fails: blur_lib only exists for Windows.
func Open(path string) (*Adapter, error) {
	return nil, ErrUnsupportedPlatform
}
