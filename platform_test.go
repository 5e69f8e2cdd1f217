package winblur

import "testing"

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos     string
		want     Platform
		wantBlur bool
	}{
		{"windows", PlatformWindows, true},
		{"darwin", PlatformMacOS, false},
		{"linux", PlatformLinux, false},
		{"plan9", PlatformUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			p := platformFor(tt.goos)
			if p != tt.want {
				t.Errorf("platformFor(%q) = %v, want %v", tt.goos, p, tt.want)
			}
			if p.SupportsBlur() != tt.wantBlur {
				t.Errorf("SupportsBlur() = %v, want %v", p.SupportsBlur(), tt.wantBlur)
			}
		})
	}
}

func TestDefaultMatchesPlatform(t *testing.T) {
	c := Default()
	if c != Default() {
		t.Fatal("Default() returned different instances")
	}
	if !CurrentPlatform().SupportsBlur() {
		if c.Supported() {
			t.Error("default controller claims support on a platform without blur_lib")
		}
		if got := BlurVersion(); got != "N/A" {
			t.Errorf("BlurVersion() = %q, want N/A", got)
		}
		if _, err := Initialize(); err != ErrUnsupportedPlatform {
			t.Errorf("Initialize() error = %v, want ErrUnsupportedPlatform", err)
		}
		if err := ApplyBlur(1, 1, 0x80000000); err != ErrUnsupportedPlatform {
			t.Errorf("ApplyBlur() error = %v", err)
		}
		if err := ClearBlur(1); err != ErrUnsupportedPlatform {
			t.Errorf("ClearBlur() error = %v", err)
		}
	}
}
