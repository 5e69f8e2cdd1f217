package winblur

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := &Error{Op: "apply", Status: StatusInvalidHandle, Message: "Invalid window handle"}
	wrapped := fmt.Errorf("blur window: %w", err)

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"same status any op", &Error{Status: StatusInvalidHandle}, true},
		{"same status same op", &Error{Op: "apply", Status: StatusInvalidHandle}, true},
		{"same status other op", &Error{Op: "clear", Status: StatusInvalidHandle}, false},
		{"other status", &Error{Status: StatusTimeout}, false},
		{"sentinel", ErrNotInitialized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(wrapped, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != StatusSuccess {
		t.Errorf("StatusOf(nil) = %v", got)
	}
	if got := StatusOf(ErrNotInitialized); got != StatusSuccess {
		t.Errorf("StatusOf(lifecycle error) = %v", got)
	}
	err := fmt.Errorf("wrap: %w", &Error{Status: StatusTimeout})
	if got := StatusOf(err); got != StatusTimeout {
		t.Errorf("StatusOf() = %v, want timeout", got)
	}
}
