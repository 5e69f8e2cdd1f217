//go:build windows

package ffi

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// dllLibrary is the Library bound to blur_lib.dll.
type dllLibrary struct {
	dll *windows.DLL

	fnInit         func(capsOut *uint32) int32
	fnShutdown     func()
	fnApply        func(window uintptr, params *byte, timeoutMs uint32) int32
	fnClear        func(window uintptr, timeoutMs uint32) int32
	fnRestoreAll   func() int32
	fnGetVersion   func(out **byte) int32
	fnGetLastError func(out **byte) int32
	fnFreeString   func(ptr *byte)

	// Optional exports, nil when the DLL predates them
	fnGetBlurredList func(out **byte) int32
	fnSetLogLevel    func(level int32)
	fnSetLogCallback func(callback uintptr, userData uintptr)
}

// Open loads blur_lib.dll and binds its exports. An empty path searches
// LibraryPathEnv and the usual locations.
func Open(path string) (*Adapter, error) {
	libPath := libraryPath(path)
	Logger().Info("loading blur_lib", zap.String("path", libPath))

	dll, err := windows.LoadDLL(libPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load blur_lib from %s: %w", libPath, err)
	}

	lib := &dllLibrary{dll: dll}
	if err := lib.register(); err != nil {
		dll.Release()
		return nil, err
	}
	return NewAdapter(lib), nil
}

func (l *dllLibrary) register() error {
	required := []struct {
		fn   any
		name string
	}{
		{&l.fnInit, "blur_init"},
		{&l.fnShutdown, "blur_shutdown"},
		{&l.fnApply, "blur_apply_to_window"},
		{&l.fnClear, "blur_clear_from_window"},
		{&l.fnRestoreAll, "blur_restore_all"},
		{&l.fnGetVersion, "blur_get_version"},
		{&l.fnGetLastError, "blur_get_last_error"},
		{&l.fnFreeString, "blur_free_string"},
	}
	for _, r := range required {
		proc, err := l.dll.FindProc(r.name)
		if err != nil {
			return fmt.Errorf("FindProc(%s) failed: %w", r.name, err)
		}
		purego.RegisterFunc(r.fn, proc.Addr())
	}

	l.registerOptional(&l.fnGetBlurredList, "blur_get_blurred_list")
	l.registerOptional(&l.fnSetLogLevel, "blur_set_log_level")
	l.registerOptional(&l.fnSetLogCallback, "blur_set_log_callback")
	return nil
}

// registerOptional binds fn when the export exists and leaves it nil otherwise.
func (l *dllLibrary) registerOptional(fn any, name string) {
	proc, err := l.dll.FindProc(name)
	if err != nil {
		Logger().Debug("optional export missing", zap.String("name", name))
		return
	}
	purego.RegisterFunc(fn, proc.Addr())
}

func (l *dllLibrary) Init(capsOut *uint32) int32 {
	status := l.fnInit(capsOut)
	// blur_init resets the log callback, so install ours afterwards.
	if Status(status) == StatusSuccess && l.fnSetLogCallback != nil {
		l.fnSetLogCallback(nativeLogCallback(), 0)
	}
	return status
}

func (l *dllLibrary) Shutdown() {
	l.fnShutdown()
}

func (l *dllLibrary) Apply(window uintptr, params *byte, timeoutMs uint32) int32 {
	return l.fnApply(window, params, timeoutMs)
}

func (l *dllLibrary) Clear(window uintptr, timeoutMs uint32) int32 {
	return l.fnClear(window, timeoutMs)
}

func (l *dllLibrary) RestoreAll() int32 {
	return l.fnRestoreAll()
}

func (l *dllLibrary) GetVersion(out **byte) int32 {
	return l.fnGetVersion(out)
}

func (l *dllLibrary) GetLastError(out **byte) int32 {
	return l.fnGetLastError(out)
}

func (l *dllLibrary) FreeString(ptr *byte) {
	l.fnFreeString(ptr)
}

func (l *dllLibrary) GetBlurredList(out **byte) (int32, bool) {
	if l.fnGetBlurredList == nil {
		return 0, false
	}
	return l.fnGetBlurredList(out), true
}

func (l *dllLibrary) SetLogLevel(level int32) bool {
	if l.fnSetLogLevel == nil {
		return false
	}
	l.fnSetLogLevel(level)
	return true
}

var (
	logCallbackOnce sync.Once
	logCallback     uintptr
)

// nativeLogCallback returns the BlurLogCallback trampoline. Windows callbacks
// are never freed, so it is created once per process.
func nativeLogCallback() uintptr {
	logCallbackOnce.Do(func() {
		logCallback = purego.NewCallback(func(level uintptr, msg *byte, userData uintptr) uintptr {
			forwardNativeLog(LogLevel(int32(level)), goString(msg))
			return 0
		})
	})
	return logCallback
}
