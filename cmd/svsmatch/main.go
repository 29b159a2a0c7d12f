/*
DESCRIPTION
  svsmatch is a batch command-line runner for the stereo correspondence
  engine: it reads a rectified left/right BMP pair, runs detect/match/rank,
  and prints the ranked matches. It is modeled on cmd/rv/main.go's flag
  parsing and logging setup.

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

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/fenwicklabs/svs-stereo/device/file"
	"github.com/fenwicklabs/svs-stereo/stereo"
	"github.com/fenwicklabs/svs-stereo/stereo/config"
)

// Logging configuration, matching cmd/rv's log-rolling setup.
const (
	logPath      = "svsmatch.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
)

func main() {
	left := flag.String("left", "", "path to the left rectified BMP image")
	right := flag.String("right", "", "path to the right rectified BMP image")
	pattern := flag.String("pattern", "bresenham", "descriptor pattern: bresenham or bar")
	verticalSampling := flag.Int("vs", 8, "vertical scanline stride in pixels")
	idealMatches := flag.Int("ideal", config.DefaultIdealMatches, "ideal number of ranked matches to return")
	maxDisparityPercent := flag.Int("max-disparity-percent", config.DefaultMaxDisparityPercent, "max disparity as a percent of image width")
	logLevel := flag.Int("log-level", int(logging.Info), "log level (0=debug .. 4=fatal)")
	flag.Parse()

	if *left == "" || *right == "" {
		fmt.Fprintln(os.Stderr, "svsmatch: -left and -right are required")
		os.Exit(2)
	}

	roller := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxAge:     logMaxAge,
		MaxBackups: logMaxBackup,
	}
	log := logging.New(int8(*logLevel), roller, true)

	var pat stereo.Pattern
	switch *pattern {
	case "bresenham":
		pat = stereo.BresenhamRing24
	case "bar":
		pat = stereo.HorizontalBar30
	default:
		log.Error("unknown descriptor pattern", "pattern", *pattern)
		os.Exit(2)
	}

	src := file.New(*left, *right)
	if err := src.Start(); err != nil {
		log.Error("failed to start frame source", "error", err.Error())
		os.Exit(1)
	}
	defer src.Stop()

	leftFrame, rightFrame, err := src.Read()
	if err != nil {
		log.Error("failed to read frame pair", "error", err.Error())
		os.Exit(1)
	}

	cfg := config.Default()
	cfg.IdealMatches = *idealMatches
	cfg.MaxDisparityPercent = *maxDisparityPercent
	if err := cfg.Validate(log); err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(2)
	}

	// The left camera CPU runs the matcher; the right camera CPU only
	// detects and ships its FeatureTable over (here, in-process).
	leftEngine := stereo.NewEngine(pat, *verticalSampling)
	leftEngine.SetLogger(log)
	leftEngine.Detect(leftFrame, cfg)

	rightEngine := stereo.NewEngine(pat, *verticalSampling)
	rightEngine.Detect(rightFrame, cfg)

	leftEngine.SetOpposite(rightEngine.Local())
	n, err := leftEngine.Match(cfg)
	if err != nil {
		log.Error("match failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("matched candidates", "count", n)

	k, err := leftEngine.Rank(cfg.MaxDisparityPercent, cfg.Tolerance, cfg.IdealMatches)
	if err != nil {
		log.Error("rank failed", "error", err.Error())
		os.Exit(1)
	}

	for _, m := range leftEngine.Matches(k) {
		fmt.Printf("x=%d y=%d disp=%d prob=%d\n", m.X, m.Y, m.Disp, m.Prob)
	}
}
