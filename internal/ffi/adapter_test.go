package ffi_test

import (
	"errors"
	"testing"

	"github.com/agiangrant/winblur/internal/ffi"
	"github.com/agiangrant/winblur/internal/ffi/ffitest"
)

func TestAdapterInit(t *testing.T) {
	fake := ffitest.NewFake()
	fake.Caps = uint32(ffi.CapSetWindowComposition | ffi.CapColorControl)

	caps, status := ffi.NewAdapter(fake).Init()
	if !status.OK() {
		t.Fatalf("Init() status = %v, want success", status)
	}
	if caps != ffi.CapSetWindowComposition|ffi.CapColorControl {
		t.Errorf("Init() caps = %v", caps)
	}

	fake = ffitest.NewFake()
	fake.InitStatus = int32(ffi.StatusInternalError)
	fake.Caps = 0xFF
	caps, status = ffi.NewAdapter(fake).Init()
	if status != ffi.StatusInternalError {
		t.Errorf("Init() status = %v, want internal error", status)
	}
	if caps != 0 {
		t.Errorf("Init() caps = %v on failure, want none", caps)
	}
}

func TestAdapterApplyPassesPackedParams(t *testing.T) {
	fake := ffitest.NewFake()
	fake.ApplyStatus = int32(ffi.StatusAlreadyApplied)
	a := ffi.NewAdapter(fake)

	params := ffi.NewEffectParams(0.5, 0xFF112233)
	if got := a.Apply(0x1234, params, 0); got != ffi.StatusAlreadyApplied {
		t.Errorf("Apply() = %v, want status passed through", got)
	}

	applies := fake.Applies()
	if len(applies) != 1 {
		t.Fatalf("apply calls = %d, want 1", len(applies))
	}
	call := applies[0]
	if call.Window != 0x1234 {
		t.Errorf("window = %#x, want 0x1234", call.Window)
	}
	if call.TimeoutMs != 0 {
		t.Errorf("timeout = %d, want 0", call.TimeoutMs)
	}
	if call.Params != params.Encode() {
		t.Errorf("params = % x, want % x", call.Params, params.Encode())
	}
}

func TestAdapterStatusesPassThrough(t *testing.T) {
	fake := ffitest.NewFake()
	fake.ClearStatus = int32(ffi.StatusInvalidHandle)
	fake.RestoreStatus = 77
	a := ffi.NewAdapter(fake)

	if got := a.Clear(1, 0); got != ffi.StatusInvalidHandle {
		t.Errorf("Clear() = %v, want invalid handle", got)
	}
	if got := a.RestoreAll(); got != ffi.Status(77) {
		t.Errorf("RestoreAll() = %v, want 77", got)
	}
	a.Shutdown()
	if fake.Calls(ffitest.CallShutdown) != 1 {
		t.Errorf("shutdown calls = %d, want 1", fake.Calls(ffitest.CallShutdown))
	}
}

func TestAdapterLastError(t *testing.T) {
	t.Run("null pointer falls back", func(t *testing.T) {
		fake := ffitest.NewFake()
		if got := ffi.NewAdapter(fake).LastError(); got != "Unknown error" {
			t.Errorf("LastError() = %q, want %q", got, "Unknown error")
		}
		if fake.Calls(ffitest.CallFreeString) != 0 {
			t.Errorf("free called %d times for a null pointer", fake.Calls(ffitest.CallFreeString))
		}
	})

	t.Run("failure status falls back", func(t *testing.T) {
		fake := ffitest.NewFake()
		fake.LastErr = "ignored"
		fake.LastErrStatus = int32(ffi.StatusOutOfMemory)
		if got := ffi.NewAdapter(fake).LastError(); got != ffi.UnknownError {
			t.Errorf("LastError() = %q, want fallback", got)
		}
	})

	t.Run("string is copied and freed once", func(t *testing.T) {
		fake := ffitest.NewFake()
		fake.LastErr = "Invalid window handle"
		if got := ffi.NewAdapter(fake).LastError(); got != "Invalid window handle" {
			t.Errorf("LastError() = %q", got)
		}
		issued := fake.Issued()
		if len(issued) != 1 {
			t.Fatalf("issued %d strings, want 1", len(issued))
		}
		if n := fake.Freed(issued[0]); n != 1 {
			t.Errorf("pointer freed %d times, want 1", n)
		}
		if fake.Outstanding() != 0 || fake.BadFrees() != 0 {
			t.Errorf("outstanding = %d, bad frees = %d", fake.Outstanding(), fake.BadFrees())
		}
	})

	t.Run("invalid utf8 is replaced", func(t *testing.T) {
		fake := ffitest.NewFake()
		fake.LastErr = "Fenster \xe4ndern fehlgeschlagen"
		want := "Fenster \uFFFDndern fehlgeschlagen"
		if got := ffi.NewAdapter(fake).LastError(); got != want {
			t.Errorf("LastError() = %q, want %q", got, want)
		}
		if fake.Outstanding() != 0 {
			t.Errorf("%d strings not freed", fake.Outstanding())
		}
	})
}

func TestAdapterVersion(t *testing.T) {
	fake := ffitest.NewFake()
	fake.Version = "1.2.3"
	if got := ffi.NewAdapter(fake).Version(); got != "1.2.3" {
		t.Errorf("Version() = %q, want 1.2.3", got)
	}
	if fake.Outstanding() != 0 {
		t.Errorf("%d version strings leaked", fake.Outstanding())
	}

	fake = ffitest.NewFake()
	fake.Version = "1.2.3"
	fake.VersionStatus = int32(ffi.StatusInternalError)
	if got := ffi.NewAdapter(fake).Version(); got != "unknown" {
		t.Errorf("Version() = %q, want unknown", got)
	}
}

func TestAdapterBlurredWindows(t *testing.T) {
	fake := ffitest.NewFake()
	fake.BlurredList = `[{"hwnd":4660,"intensity":0.5},{"hwnd":17,"intensity":1}]`

	got, err := ffi.NewAdapter(fake).BlurredWindows()
	if err != nil {
		t.Fatalf("BlurredWindows() error = %v", err)
	}
	want := []ffi.BlurredWindow{{Window: 4660, Intensity: 0.5}, {Window: 17, Intensity: 1}}
	if len(got) != len(want) {
		t.Fatalf("BlurredWindows() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if fake.Outstanding() != 0 {
		t.Errorf("list string not freed")
	}

	fake = ffitest.NewFake()
	fake.NoExtensions = true
	if _, err := ffi.NewAdapter(fake).BlurredWindows(); !errors.Is(err, ffi.ErrNotExported) {
		t.Errorf("BlurredWindows() error = %v, want ErrNotExported", err)
	}

	fake = ffitest.NewFake()
	fake.BlurredList = `{not json`
	if _, err := ffi.NewAdapter(fake).BlurredWindows(); err == nil {
		t.Error("expected decode error")
	}
	if fake.Outstanding() != 0 {
		t.Errorf("list string not freed on decode error")
	}
}

func TestAdapterSetLogLevel(t *testing.T) {
	fake := ffitest.NewFake()
	if err := ffi.NewAdapter(fake).SetLogLevel(ffi.LogDebug); err != nil {
		t.Fatalf("SetLogLevel() error = %v", err)
	}
	if fake.LogLevel() != int32(ffi.LogDebug) {
		t.Errorf("log level = %d, want %d", fake.LogLevel(), ffi.LogDebug)
	}

	fake = ffitest.NewFake()
	fake.NoExtensions = true
	if err := ffi.NewAdapter(fake).SetLogLevel(ffi.LogDebug); !errors.Is(err, ffi.ErrNotExported) {
		t.Errorf("SetLogLevel() error = %v, want ErrNotExported", err)
	}
}

func TestUnsupportedNeverCalls(t *testing.T) {
	n := ffi.Unsupported()
	if n.Supported() {
		t.Fatal("Unsupported().Supported() = true")
	}
	if _, status := n.Init(); status != ffi.StatusAPIUnsupported {
		t.Errorf("Init() = %v, want api unsupported", status)
	}
	if got := n.Apply(1, ffi.DefaultEffectParams(), 0); got != ffi.StatusAPIUnsupported {
		t.Errorf("Apply() = %v, want api unsupported", got)
	}
	if _, err := n.BlurredWindows(); !errors.Is(err, ffi.ErrUnsupportedPlatform) {
		t.Errorf("BlurredWindows() error = %v", err)
	}
}
