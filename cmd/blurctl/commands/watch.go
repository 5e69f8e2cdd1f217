package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/agiangrant/winblur"
)

// DefaultWatchDebounce is the default delay between the last config write
// and the re-apply.
const DefaultWatchDebounce = 300 * time.Millisecond

// windowList is a repeatable --hwnd flag.
type windowList []winblur.WindowHandle

func (w *windowList) String() string {
	parts := make([]string, len(*w))
	for i, h := range *w {
		parts[i] = fmt.Sprintf("0x%X", uintptr(h))
	}
	return strings.Join(parts, ",")
}

func (w *windowList) Set(s string) error {
	h, err := parseWindow(s)
	if err != nil {
		return err
	}
	*w = append(*w, h)
	return nil
}

// Watch implements the 'blurctl watch' command. It blurs the given windows,
// re-applies the [effect] section whenever the config file changes, and
// restores every window when interrupted.
func Watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	common := addCommonFlags(fs)
	var windows windowList
	fs.Var(&windows, "hwnd", "Window handle (decimal or 0x hex); repeatable")
	debounce := fs.Duration("debounce", DefaultWatchDebounce, "Delay before re-applying after a change")
	fs.Parse(args)

	if len(windows) == 0 {
		return fmt.Errorf("--hwnd is required")
	}
	path := *common.config
	if path == "" {
		for _, candidate := range configCandidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return fmt.Errorf("no config file to watch (run 'blurctl init-config' or pass --config)")
	}
	*common.config = path

	config, err := common.load()
	if err != nil {
		return err
	}
	s, err := openSession(config)
	if err != nil {
		return err
	}
	defer s.close()

	// Catch signals before anything is blurred so an early Ctrl+C still
	// reaches the deferred stop.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return s.run(ctx, path, windows, *debounce, common.load)
}

// run initializes blur_lib, blurs windows and keeps them in line with the
// config at path until ctx is done. Every window is restored on return.
func (s *session) run(ctx context.Context, path string, windows []winblur.WindowHandle, debounce time.Duration, load func() (Config, error)) error {
	if _, err := s.start(); err != nil {
		return err
	}
	defer s.stop()

	if err := s.reconcile(windows, s.config.Effect); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}

	fmt.Printf("Watching %s for %d window(s); press Ctrl+C to restore and exit\n", path, len(windows))

	reload := func() error {
		next, err := load()
		if err != nil {
			return err
		}
		s.logger.Info("config changed", zap.String("path", path))
		s.config = next
		return s.reconcile(windows, next.Effect)
	}
	onError := func(err error) {
		s.logger.Warn("reload failed", zap.String("path", path), zap.Error(err))
	}
	return watchFile(ctx, path, debounce, reload, onError)
}

// reconcile brings every window in line with effect: applied with its
// parameters, or cleared when the effect is disabled. All windows are
// attempted; the first error is returned.
func (s *session) reconcile(windows []winblur.WindowHandle, effect EffectConfig) error {
	params, err := effect.Params()
	if err != nil {
		return err
	}

	var first error
	for _, w := range windows {
		if effect.Disabled {
			err = s.ctl.Clear(w)
		} else {
			err = s.ctl.ApplyParams(w, params)
		}
		if err != nil {
			s.logger.Warn("window not updated", zap.Uintptr("window", uintptr(w)), zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}

	blurred, err := s.ctl.BlurredWindows()
	switch {
	case errors.Is(err, winblur.ErrNotExported):
		s.logger.Debug("blurred window list not available")
	case err != nil:
		s.logger.Warn("failed to list blurred windows", zap.Error(err))
	default:
		s.logger.Info("windows reconciled", zap.Int("blurred", len(blurred)))
	}
	return first
}

// stop restores every tracked window and shuts blur_lib down.
func (s *session) stop() {
	if err := s.ctl.RestoreAll(); err != nil {
		s.logger.Warn("restore failed", zap.Error(err))
	}
	s.ctl.Shutdown()
}

// watchFile calls onChange once writes to path have settled for debounce,
// until ctx is done. The directory is watched rather than the file so that
// editors which save by rename keep being followed.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error, onError func(error)) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(path)
	baseName := filepath.Base(path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := onChange(); err != nil && onError != nil {
				onError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
