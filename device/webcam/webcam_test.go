package webcam

import (
	"testing"

	"github.com/fenwicklabs/svs-stereo/device"
)

var _ device.StereoSource = (*Source)(nil)

func TestNewSourceIsNotRunning(t *testing.T) {
	s := New(0, 1)
	if s.IsRunning() {
		t.Fatal("a freshly constructed Source must not report itself as running")
	}
	if s.Name() != "webcam" {
		t.Errorf("got Name()=%q, want %q", s.Name(), "webcam")
	}
}

func TestStopBeforeStartIsNoop(t *testing.T) {
	s := New(0, 1)
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop on a never-started Source returned an error: %v", err)
	}
	if s.IsRunning() {
		t.Fatal("Source reports running after Stop")
	}
}

func TestReadBeforeStart(t *testing.T) {
	s := New(0, 1)
	if _, _, err := s.Read(); err == nil {
		t.Fatal("expected an error reading before Start")
	}
}
