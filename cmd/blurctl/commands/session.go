package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/agiangrant/winblur"
)

// commonFlags are accepted by every command that talks to blur_lib.
type commonFlags struct {
	config  *string
	library *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config:  fs.String("config", "", "Config file (default: blurctl.toml or blurctl.yaml if present)"),
		library: fs.String("lib", "", "Path to blur_lib.dll (overrides config)"),
	}
}

func (f commonFlags) load() (Config, error) {
	config, err := LoadConfig(*f.config)
	if err != nil {
		return config, err
	}
	if *f.library != "" {
		config.Library.Path = *f.library
	}
	return config, nil
}

// newLogger builds the CLI logger. Output goes to stderr so command output
// on stdout stays parseable.
func newLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// session is an opened controller plus the logger wired into it.
type session struct {
	ctl    *winblur.Controller
	logger *zap.Logger
	config Config
}

// openSession loads blur_lib without initializing it. On platforms without
// blur_lib the controller is the unsupported stand-in, so version still works.
func openSession(config Config) (*session, error) {
	logger, err := newLogger(config.Log)
	if err != nil {
		return nil, err
	}
	winblur.SetLogger(logger.Named("ffi"))

	ctl, err := winblur.Open(config.Library.Path, winblur.WithLogger(logger))
	switch {
	case err == nil:
	case errors.Is(err, winblur.ErrUnsupportedPlatform):
		ctl = winblur.Unsupported(winblur.WithLogger(logger))
	default:
		logger.Sync()
		return nil, fmt.Errorf("failed to load blur_lib: %w", err)
	}
	return &session{ctl: ctl, logger: logger, config: config}, nil
}

// start initializes blur_lib and applies the configured native log level.
func (s *session) start() (winblur.Capabilities, error) {
	caps, err := s.ctl.Init()
	if err != nil {
		return 0, err
	}
	if s.config.Library.LogLevel == "" {
		return caps, nil
	}
	level, err := winblur.ParseLogLevel(s.config.Library.LogLevel)
	if err != nil {
		return caps, err
	}
	if err := s.ctl.SetNativeLogLevel(level); err != nil {
		s.logger.Debug("native log level not applied", zap.Error(err))
	}
	return caps, nil
}

func (s *session) close() {
	s.logger.Sync()
}

// parseWindow accepts a window handle in decimal or 0x-prefixed hex.
func parseWindow(s string) (winblur.WindowHandle, error) {
	if s == "" {
		return 0, fmt.Errorf("--hwnd is required")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", s)
	}
	if v == 0 {
		return 0, fmt.Errorf("window handle must be non-zero")
	}
	return winblur.WindowHandle(uintptr(v)), nil
}
