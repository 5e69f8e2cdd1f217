package winblur

import (
	"go.uber.org/zap"
)

// Window operations always pass timeout 0 so blur_lib applies its own default.
const nativeTimeoutMs = 0

// Version returns the library version. It never fails: "N/A" on unsupported
// platforms, "unknown" when the library cannot report it.
func (c *Controller) Version() string {
	if c.loadErr != nil {
		return "unknown"
	}
	if !c.native.Supported() {
		return "N/A"
	}
	return c.native.Version()
}

// Apply blurs window with the given intensity and ARGB tint. Applying to a
// window that already has the effect succeeds.
func (c *Controller) Apply(window WindowHandle, intensity float32, colorARGB uint32) error {
	return c.ApplyParams(window, NewEffectParams(intensity, colorARGB))
}

// ApplyParams is Apply with caller-built parameters, e.g. to request an
// animated transition.
func (c *Controller) ApplyParams(window WindowHandle, params EffectParams) error {
	if err := c.ready(); err != nil {
		return err
	}

	status := c.native.Apply(window, params, nativeTimeoutMs)
	switch status {
	case StatusSuccess:
		return nil
	case StatusAlreadyApplied:
		c.logger.Debug("blur already applied", zap.Uintptr("window", uintptr(window)))
		return nil
	default:
		return c.failure("apply", window, status)
	}
}

// Clear removes the blur from window.
func (c *Controller) Clear(window WindowHandle) error {
	if err := c.ready(); err != nil {
		return err
	}

	status := c.native.Clear(window, nativeTimeoutMs)
	if status.OK() {
		return nil
	}
	return c.failure("clear", window, status)
}

// RestoreAll clears the blur from every window blur_lib is tracking.
func (c *Controller) RestoreAll() error {
	if err := c.ready(); err != nil {
		return err
	}

	status := c.native.RestoreAll()
	if status.OK() {
		return nil
	}
	return c.failure("restore_all", 0, status)
}

// BlurredWindows lists the windows blur_lib currently has blurred.
// Libraries without blur_get_blurred_list return an error.
func (c *Controller) BlurredWindows() ([]BlurredWindow, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.native.BlurredWindows()
}

// SetNativeLogLevel changes blur_lib's own log verbosity. blur_init resets
// the level, so this only has an effect once initialized.
func (c *Controller) SetNativeLogLevel(level LogLevel) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.native.SetLogLevel(level)
}

func (c *Controller) failure(op string, window WindowHandle, status Status) error {
	msg := c.native.LastError()
	c.logger.Warn("blur_lib call failed",
		zap.String("op", op),
		zap.Uintptr("window", uintptr(window)),
		zap.Stringer("status", status),
		zap.String("message", msg),
	)
	return &Error{Op: op, Status: status, Message: msg}
}
