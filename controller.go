// Package winblur controls blur_lib, a native library that asks the platform
// compositor to draw a translucent blur behind a top-level window.
//
// A Controller owns the init/shutdown state machine. Window operations are
// accepted only between a successful Init and the next Shutdown. Every call
// is synchronous and may block inside the native library.
package winblur

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// The state word holds the lifecycle phase in its low byte and, once
// initialized, the capability bits above it. Readers see both in one load.
const (
	stateUninitialized uint64 = iota
	stateInitializing
	stateInitialized

	phaseMask = 0xff
	capsShift = 8
)

// Controller drives one blur_lib instance.
type Controller struct {
	native  Native
	logger  *zap.Logger
	loadErr error

	state atomic.Uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// withLoadError makes Init report err; used when the library failed to load.
func withLoadError(err error) Option {
	return func(c *Controller) {
		c.loadErr = err
	}
}

// New returns an uninitialized controller bound to native.
func New(native Native, opts ...Option) *Controller {
	c := &Controller{
		native: native,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Supported reports whether the platform has blur_lib at all. A library
// that exists but failed to load still counts as supported.
func (c *Controller) Supported() bool {
	return c.loadErr != nil || c.native.Supported()
}

// Init initializes blur_lib and returns its capability bits.
//
// Only one Init can win: a call made while initialized, or while another
// Init is still in flight, fails with ErrAlreadyInitialized. If the library
// rejects initialization the controller stays uninitialized and Init may be
// retried.
func (c *Controller) Init() (Capabilities, error) {
	if c.loadErr != nil {
		return 0, c.loadErr
	}
	if !c.native.Supported() {
		return 0, ErrUnsupportedPlatform
	}
	if !c.state.CompareAndSwap(stateUninitialized, stateInitializing) {
		return 0, ErrAlreadyInitialized
	}

	caps, status := c.native.Init()
	if !status.OK() {
		c.state.Store(stateUninitialized)
		c.logger.Warn("blur_init failed", zap.Stringer("status", status))
		return 0, &Error{
			Op:      "init",
			Status:  status,
			Message: fmt.Sprintf("blur_init failed with code %d", int32(status)),
		}
	}

	c.state.Store(uint64(caps)<<capsShift | stateInitialized)
	c.logger.Info("blur_lib initialized", zap.Stringer("capabilities", caps))
	return caps, nil
}

// Shutdown calls the native shutdown and returns to the uninitialized state.
// It does not check the current state: calling it while uninitialized still
// reaches blur_shutdown, which tolerates that.
func (c *Controller) Shutdown() {
	if !c.native.Supported() {
		return
	}
	c.native.Shutdown()
	c.state.Store(stateUninitialized)
	c.logger.Info("blur_lib shut down")
}

// Initialized reports whether window operations are currently accepted.
func (c *Controller) Initialized() bool {
	return c.state.Load()&phaseMask == stateInitialized
}

// Capabilities returns the bits recorded by the last successful Init, or
// zero while uninitialized.
func (c *Controller) Capabilities() Capabilities {
	v := c.state.Load()
	if v&phaseMask != stateInitialized {
		return 0
	}
	return Capabilities(v >> capsShift)
}

// ready gates every window operation.
func (c *Controller) ready() error {
	if !c.Supported() {
		return ErrUnsupportedPlatform
	}
	if !c.Initialized() {
		return ErrNotInitialized
	}
	return nil
}
