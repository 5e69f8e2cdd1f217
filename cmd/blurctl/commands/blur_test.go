package commands

import (
	"flag"
	"strings"
	"testing"
)

func TestApplyOptionsOverride(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantIntensity float32
		wantColor     string
		wantAnimate   bool
		wantErr       string
	}{
		{"no flags keeps config", nil, 1.0, "0x80000000", false, ""},
		{"intensity", []string{"--intensity", "0.4"}, 0.4, "0x80000000", false, ""},
		{"zero intensity", []string{"--intensity", "0"}, 0, "0x80000000", false, ""},
		{"color and animate", []string{"--color", "#FF112233", "--animate"}, 1.0, "#FF112233", true, ""},
		{"negative intensity rejected", []string{"--intensity", "-0.5"}, -0.5, "0x80000000", false, "effect.intensity"},
		{"intensity above one rejected", []string{"--intensity", "1.5"}, 1.5, "0x80000000", false, "effect.intensity"},
		{"bad color rejected", []string{"--color", "blue"}, 1.0, "blue", false, "effect.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newApplyOptions(flag.ContinueOnError)
			if err := o.fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}
			config := DefaultConfig()
			o.override(&config)

			if config.Effect.Intensity != tt.wantIntensity {
				t.Errorf("Intensity = %v, want %v", config.Effect.Intensity, tt.wantIntensity)
			}
			if config.Effect.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", config.Effect.Color, tt.wantColor)
			}
			if config.Effect.Animate != tt.wantAnimate {
				t.Errorf("Animate = %v, want %v", config.Effect.Animate, tt.wantAnimate)
			}

			err := config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
