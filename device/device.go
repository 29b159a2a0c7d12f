/*
DESCRIPTION
  device.go defines StereoSource, an interface for a configurable left/right
  camera pair that can be started and stopped, generalizing a single-stream
  device interface for the stereo rig this engine targets.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

// Package device provides frame-source implementations that feed rectified
// left/right image pairs to the stereo engine: a BMP file pair for offline
// batch runs, and a live webcam pair for online capture. Rectification
// itself, and the BMP/PPM codec used to read image bytes, are treated as
// external collaborators and are not reimplemented here.
package device

import (
	"fmt"

	"github.com/fenwicklabs/svs-stereo/stereo"
)

// StereoSource is a configurable source of rectified left/right frame
// pairs. It must be started before Read is called, and stopped when no
// longer needed.
type StereoSource interface {
	// Name returns the name of the StereoSource.
	Name() string

	// Start prepares the source for reading.
	Start() error

	// Stop releases any resources held by the source.
	Stop() error

	// IsRunning reports whether Start has been called without a matching
	// Stop.
	IsRunning() bool

	// Read returns the next rectified left and right frames. Both frames
	// are guaranteed to share identical dimensions and channel count.
	Read() (left, right *stereo.Frame, err error)
}

// MultiError collects every setup error encountered while bringing a
// StereoSource online, so a caller sees all of them at once instead of
// just the first. Start implementations that open more than one
// underlying device (e.g. two video capture handles) should attempt
// every open and report the accumulated failures together.
type MultiError []error

func (me MultiError) Error() string {
	if len(me) == 0 {
		panic("device: invalid use of MultiError")
	}
	return fmt.Sprintf("%v", []error(me))
}

// errMismatchedFrames is returned by a StereoSource when the left and right
// frames it read do not share identical dimensions, violating the
// rectified-pair assumption the stereo engine relies on.
var errMismatchedFrames = fmt.Errorf("device: left and right frame dimensions differ")

// CheckDimensions reports an error if left and right do not share identical
// width, height, and channel count. StereoSource implementations call this
// at the end of Read to enforce the rectified-pair invariant before handing
// frames to the engine.
func CheckDimensions(left, right *stereo.Frame) error {
	if left.Width != right.Width || left.Height != right.Height || left.Channels != right.Channels {
		return errMismatchedFrames
	}
	return nil
}
