/*
DESCRIPTION
  svshist renders the disparity distribution of every candidate match, as
  produced by Match before histogram filtering and ranking, as a PNG
  histogram using gonum/plot, to help tune tolerance and
  max-disparity-percent offline. This is a diagnostic tool; it never feeds
  back into the stereo engine.

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
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fenwicklabs/svs-stereo/device/file"
	"github.com/fenwicklabs/svs-stereo/stereo"
	"github.com/fenwicklabs/svs-stereo/stereo/config"
)

func main() {
	left := flag.String("left", "", "path to the left rectified BMP image")
	right := flag.String("right", "", "path to the right rectified BMP image")
	out := flag.String("out", "disparity_hist.png", "path to write the histogram PNG")
	verticalSampling := flag.Int("vs", 8, "vertical scanline stride in pixels")
	flag.Parse()

	if *left == "" || *right == "" {
		fmt.Fprintln(os.Stderr, "svshist: -left and -right are required")
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

	n, err := leftEngine.Match(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	values := make(plotter.Values, 0, n)
	for _, m := range leftEngine.Matches(n) {
		values = append(values, float64(m.Disp))
	}

	p := plot.New()
	p.Title.Text = "disparity distribution"
	p.X.Label.Text = "disparity (px)"
	p.Y.Label.Text = "candidates"

	h, err := plotter.NewHist(values, 50)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
