// Package ffitest provides an in-memory stand-in for blur_lib.
package ffitest

import (
	"sync"
	"unsafe"

	"github.com/agiangrant/winblur/internal/ffi"
)

// Call names recorded by Fake.
const (
	CallInit         = "init"
	CallShutdown     = "shutdown"
	CallApply        = "apply"
	CallClear        = "clear"
	CallRestoreAll   = "restore_all"
	CallGetVersion   = "get_version"
	CallGetLastError = "get_last_error"
	CallFreeString   = "free_string"
	CallBlurredList  = "get_blurred_list"
	CallSetLogLevel  = "set_log_level"
)

// ApplyCall records one blur_apply_to_window invocation.
type ApplyCall struct {
	Window    uintptr
	Params    [ffi.EffectParamsSize]byte
	TimeoutMs uint32
}

// Fake implements ffi.Library and ffi.Extensions. Configure the exported
// fields before handing it out; zero statuses mean success.
//
// Strings are handed out as pointers into Go-owned, NUL-terminated heap
// buffers. FreeString overwrites a buffer before releasing it, so a read after
// free shows up as garbage. An empty string with a success status yields a
// null pointer.
type Fake struct {
	InitStatus    int32
	Caps          uint32
	ApplyStatus   int32
	ClearStatus   int32
	RestoreStatus int32

	Version       string
	VersionStatus int32
	LastErr       string
	LastErrStatus int32

	// BlurredList is returned by GetBlurredList; NoExtensions hides the optional exports.
	BlurredList  string
	NoExtensions bool

	// OnInit runs inside Init before it returns, e.g. to hold callers in a race.
	OnInit func()

	mu       sync.Mutex
	calls    map[string]int
	applies  []ApplyCall
	live     map[*byte][]byte
	freed    map[*byte]int // keys keep freed buffers reachable so addresses are never reused
	issued   []*byte
	badFrees int
	logLevel int32
}

// NewFake returns a Fake whose every call succeeds.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

// Calls returns how many times the named entry point ran.
func (f *Fake) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

// TotalCalls counts every entry point invocation.
func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// Applies returns the recorded apply calls.
func (f *Fake) Applies() []ApplyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ApplyCall(nil), f.applies...)
}

// Freed reports how many times ptr was passed to FreeString.
func (f *Fake) Freed(ptr *byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.freed[ptr]
}

// Issued returns every string pointer handed out, in order.
func (f *Fake) Issued() []*byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*byte(nil), f.issued...)
}

// Outstanding is the number of strings handed out and not yet freed.
func (f *Fake) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// BadFrees counts frees of pointers that were not live (double or foreign frees).
func (f *Fake) BadFrees() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.badFrees
}

// LogLevel returns the last level passed to SetLogLevel.
func (f *Fake) LogLevel() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logLevel
}

func (f *Fake) alloc(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	ptr := &b[0]
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.live == nil {
		f.live = make(map[*byte][]byte)
	}
	f.live[ptr] = b
	f.issued = append(f.issued, ptr)
	return ptr
}

func (f *Fake) giveString(out **byte, status int32, s string) int32 {
	if status != int32(ffi.StatusSuccess) {
		return status
	}
	*out = f.alloc(s)
	return status
}

func (f *Fake) Init(capsOut *uint32) int32 {
	f.record(CallInit)
	if f.OnInit != nil {
		f.OnInit()
	}
	if f.InitStatus == int32(ffi.StatusSuccess) {
		*capsOut = f.Caps
	}
	return f.InitStatus
}

func (f *Fake) Shutdown() {
	f.record(CallShutdown)
}

func (f *Fake) Apply(window uintptr, params *byte, timeoutMs uint32) int32 {
	f.record(CallApply)
	call := ApplyCall{Window: window, TimeoutMs: timeoutMs}
	copy(call.Params[:], unsafe.Slice(params, ffi.EffectParamsSize))
	f.mu.Lock()
	f.applies = append(f.applies, call)
	f.mu.Unlock()
	return f.ApplyStatus
}

func (f *Fake) Clear(window uintptr, timeoutMs uint32) int32 {
	f.record(CallClear)
	return f.ClearStatus
}

func (f *Fake) RestoreAll() int32 {
	f.record(CallRestoreAll)
	return f.RestoreStatus
}

func (f *Fake) GetVersion(out **byte) int32 {
	f.record(CallGetVersion)
	return f.giveString(out, f.VersionStatus, f.Version)
}

func (f *Fake) GetLastError(out **byte) int32 {
	f.record(CallGetLastError)
	return f.giveString(out, f.LastErrStatus, f.LastErr)
}

func (f *Fake) FreeString(ptr *byte) {
	f.record(CallFreeString)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.freed == nil {
		f.freed = make(map[*byte]int)
	}
	f.freed[ptr]++
	b, ok := f.live[ptr]
	if !ok {
		f.badFrees++
		return
	}
	for i := range b[:len(b)-1] {
		b[i] = 'X'
	}
	delete(f.live, ptr)
}

func (f *Fake) GetBlurredList(out **byte) (int32, bool) {
	if f.NoExtensions {
		return 0, false
	}
	f.record(CallBlurredList)
	return f.giveString(out, int32(ffi.StatusSuccess), f.BlurredList), true
}

func (f *Fake) SetLogLevel(level int32) bool {
	if f.NoExtensions {
		return false
	}
	f.record(CallSetLogLevel)
	f.mu.Lock()
	f.logLevel = level
	f.mu.Unlock()
	return true
}
