/*
DESCRIPTION
  svsvis draws ranked stereo matches onto a side-by-side composite of the
  left/right frames, using gocv's line/circle drawing primitives. This is
  exactly the visualization-only drawing kept out of the core
  matching engine; it never feeds back into stereo.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"gocv.io/x/gocv"

	"github.com/fenwicklabs/svs-stereo/device/file"
	"github.com/fenwicklabs/svs-stereo/stereo"
	"github.com/fenwicklabs/svs-stereo/stereo/config"
)

func main() {
	left := flag.String("left", "", "path to the left rectified BMP image")
	right := flag.String("right", "", "path to the right rectified BMP image")
	out := flag.String("out", "matches.png", "path to write the annotated composite image")
	verticalSampling := flag.Int("vs", 8, "vertical scanline stride in pixels")
	flag.Parse()

	if *left == "" || *right == "" {
		fmt.Fprintln(os.Stderr, "svsvis: -left and -right are required")
		os.Exit(2)
	}

	src := file.New(*left, *right)
	if err := src.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer src.Stop()

	leftFrame, rightFrame, err := src.Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pat := stereo.BresenhamRing24
	cfg := config.Default()

	leftEngine := stereo.NewEngine(pat, *verticalSampling)
	leftEngine.Detect(leftFrame, cfg)

	rightEngine := stereo.NewEngine(pat, *verticalSampling)
	rightEngine.Detect(rightFrame, cfg)

	leftEngine.SetOpposite(rightEngine.Local())
	if _, err := leftEngine.Match(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	k, err := leftEngine.Rank(cfg.MaxDisparityPercent, cfg.Tolerance, cfg.IdealMatches)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	composite := newComposite(leftFrame, rightFrame)
	defer composite.Close()

	for _, m := range leftEngine.Matches(k) {
		xL := image.Pt(int(m.X), int(m.Y))
		xR := image.Pt(int(m.X-m.Disp)+leftFrame.Width, int(m.Y))
		col := color.RGBA{0, 255, 0, 0}
		gocv.Circle(&composite, xL, 3, col, 1)
		gocv.Circle(&composite, xR, 3, col, 1)
		gocv.Line(&composite, xL, xR, col, 1)
	}

	if ok := gocv.IMWrite(*out, composite); !ok {
		fmt.Fprintln(os.Stderr, "svsvis: failed to write", *out)
		os.Exit(1)
	}
}

// newComposite builds a side-by-side BGR Mat from the left and right
// frames for annotation.
func newComposite(left, right *stereo.Frame) gocv.Mat {
	w := left.Width + right.Width
	h := left.Height
	if right.Height > h {
		h = right.Height
	}
	m := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	putFrame(&m, left, 0)
	putFrame(&m, right, left.Width)
	return m
}

func putFrame(m *gocv.Mat, f *stereo.Frame, xOffset int) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := (y*f.Width + x) * f.Channels
			var r, g, b uint8
			if f.Channels == 3 {
				r, g, b = f.Pix[idx], f.Pix[idx+1], f.Pix[idx+2]
			} else {
				r, g, b = f.Pix[idx], f.Pix[idx], f.Pix[idx]
			}
			m.SetUCharAt(y, (x+xOffset)*3, b)
			m.SetUCharAt(y, (x+xOffset)*3+1, g)
			m.SetUCharAt(y, (x+xOffset)*3+2, r)
		}
	}
}
