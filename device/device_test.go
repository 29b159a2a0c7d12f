package device

import (
	"errors"
	"testing"

	"github.com/fenwicklabs/svs-stereo/stereo"
)

func TestMultiErrorFormatsAllEntries(t *testing.T) {
	me := MultiError{errors.New("bad left device"), errors.New("bad right device")}
	s := me.Error()
	if s == "" {
		t.Fatal("MultiError.Error() returned an empty string for a non-empty MultiError")
	}
	for _, want := range []string{"bad left device", "bad right device"} {
		if !contains(s, want) {
			t.Errorf("MultiError.Error() = %q, missing %q", s, want)
		}
	}
}

func TestMultiErrorPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MultiError.Error() on an empty MultiError to panic")
		}
	}()
	var me MultiError
	_ = me.Error()
}

func TestCheckDimensionsAcceptsMatchingFrames(t *testing.T) {
	left := &stereo.Frame{Pix: make([]uint8, 12), Width: 4, Height: 3, Channels: 1}
	right := &stereo.Frame{Pix: make([]uint8, 12), Width: 4, Height: 3, Channels: 1}
	if err := CheckDimensions(left, right); err != nil {
		t.Fatalf("CheckDimensions on identically-shaped frames returned %v", err)
	}
}

func TestCheckDimensionsRejectsMismatch(t *testing.T) {
	left := &stereo.Frame{Pix: make([]uint8, 12), Width: 4, Height: 3, Channels: 1}
	right := &stereo.Frame{Pix: make([]uint8, 8), Width: 4, Height: 2, Channels: 1}
	if err := CheckDimensions(left, right); err == nil {
		t.Fatal("expected an error for mismatched frame dimensions")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
