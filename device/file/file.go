/*
DESCRIPTION
  file.go implements a StereoSource that reads rectified left/right frame
  pairs from BMP files on disk, using golang.org/x/image/bmp as the
  external BMP codec collaborator.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

// Package file provides a StereoSource backed by paired BMP files, for
// offline batch processing and golden-file tests.
package file

import (
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/pkg/errors"

	"github.com/fenwicklabs/svs-stereo/device"
	"github.com/fenwicklabs/svs-stereo/stereo"
)

// Source reads one fixed left/right BMP pair, repeatedly. Each call to Read
// re-decodes both files; it is intended for batch and test use, not a live
// feed.
type Source struct {
	LeftPath, RightPath string
	running             bool
}

// New returns a Source that will read the given left/right BMP file paths.
func New(leftPath, rightPath string) *Source {
	return &Source{LeftPath: leftPath, RightPath: rightPath}
}

func (s *Source) Name() string { return "file" }

func (s *Source) Start() error {
	s.running = true
	return nil
}

func (s *Source) Stop() error {
	s.running = false
	return nil
}

func (s *Source) IsRunning() bool { return s.running }

// Read decodes both BMP files and returns them as rectified stereo.Frame
// values. It does not cache the decoded frames; every call re-reads disk.
func (s *Source) Read() (*stereo.Frame, *stereo.Frame, error) {
	if !s.running {
		return nil, nil, errors.New("file: source has not been started")
	}
	left, err := readBMP(s.LeftPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "file: reading left image")
	}
	right, err := readBMP(s.RightPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "file: reading right image")
	}
	if err := device.CheckDimensions(left, right); err != nil {
		return nil, nil, errors.Wrap(err, "file")
	}
	return left, right, nil
}

var _ device.StereoSource = (*Source)(nil)

func readBMP(path string) (*stereo.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, err
	}
	return frameFromImage(img), nil
}

// frameFromImage converts a decoded image.Image into a row-major,
// top-left-origin stereo.Frame with 3 channels per pixel.
func frameFromImage(img image.Image) *stereo.Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return &stereo.Frame{Pix: pix, Width: w, Height: h, Channels: 3}
}
