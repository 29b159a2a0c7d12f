/*
DESCRIPTION
  webcam.go implements a StereoSource backed by a pair of gocv.VideoCapture
  devices, for live capture from a rectified stereo camera rig. gocv is used
  here purely as a frame grabber, never for matching.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

// Package webcam provides a live StereoSource backed by two
// gocv.VideoCapture devices, one per camera of the rectified pair.
package webcam

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/fenwicklabs/svs-stereo/device"
	"github.com/fenwicklabs/svs-stereo/stereo"
)

// Source captures synchronized frames from two video devices, identified
// by OS device index (e.g. /dev/video0, /dev/video1 on Linux).
type Source struct {
	LeftDevice, RightDevice int

	left, right *gocv.VideoCapture
	leftMat     gocv.Mat
	rightMat    gocv.Mat
	running     bool
}

// New returns a Source that will open the given left/right device indices
// on Start.
func New(leftDevice, rightDevice int) *Source {
	return &Source{LeftDevice: leftDevice, RightDevice: rightDevice}
}

func (s *Source) Name() string { return "webcam" }

// Start opens both video devices. Unlike a fail-fast open, it attempts
// both even if the first fails, so a caller misconfiguring both indices
// at once sees both problems instead of fixing them one at a time.
func (s *Source) Start() error {
	var errs device.MultiError

	left, leftErr := gocv.OpenVideoCapture(s.LeftDevice)
	if leftErr != nil {
		errs = append(errs, errors.Wrap(leftErr, "webcam: opening left device"))
	}
	right, rightErr := gocv.OpenVideoCapture(s.RightDevice)
	if rightErr != nil {
		errs = append(errs, errors.Wrap(rightErr, "webcam: opening right device"))
	}

	if len(errs) > 0 {
		if leftErr == nil {
			left.Close()
		}
		if rightErr == nil {
			right.Close()
		}
		return errs
	}

	s.left, s.right = left, right
	s.leftMat, s.rightMat = gocv.NewMat(), gocv.NewMat()
	s.running = true
	return nil
}

func (s *Source) Stop() error {
	if !s.running {
		return nil
	}
	s.leftMat.Close()
	s.rightMat.Close()
	s.left.Close()
	s.right.Close()
	s.running = false
	return nil
}

func (s *Source) IsRunning() bool { return s.running }

// Read grabs the next frame from each device and returns them as
// stereo.Frame values. The returned frames alias internal scratch buffers
// and are only valid until the next call to Read.
func (s *Source) Read() (*stereo.Frame, *stereo.Frame, error) {
	if !s.running {
		return nil, nil, errors.New("webcam: source has not been started")
	}
	if ok := s.left.Read(&s.leftMat); !ok || s.leftMat.Empty() {
		return nil, nil, errors.New("webcam: failed to read left frame")
	}
	if ok := s.right.Read(&s.rightMat); !ok || s.rightMat.Empty() {
		return nil, nil, errors.New("webcam: failed to read right frame")
	}

	left := frameFromMat(s.leftMat)
	right := frameFromMat(s.rightMat)
	if err := device.CheckDimensions(left, right); err != nil {
		return nil, nil, errors.Wrap(err, "webcam")
	}
	return left, right, nil
}

var _ device.StereoSource = (*Source)(nil)

// frameFromMat copies a BGR gocv.Mat into a stereo.Frame, reordering
// 3-channel pixels to R, G, B. The copy is necessary because the Mat's
// backing memory is reused on the next Read.
func frameFromMat(m gocv.Mat) *stereo.Frame {
	w, h := m.Cols(), m.Rows()
	channels := m.Channels()
	pix := make([]uint8, w*h*channels)
	copy(pix, m.ToBytes())
	if channels == 3 {
		for i := 0; i+2 < len(pix); i += 3 {
			pix[i], pix[i+2] = pix[i+2], pix[i]
		}
	}
	return &stereo.Frame{Pix: pix, Width: w, Height: h, Channels: channels}
}
