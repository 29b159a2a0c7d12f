/*
DESCRIPTION
  detect.go implements feature collection: walking scanlines
  at the engine's fixed vertical sampling, running the row accumulator, the
  non-maximum suppressor and the descriptor builder for each row, and
  appending accepted features to the local FeatureTable right-to-left.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

package stereo

import "github.com/fenwicklabs/svs-stereo/stereo/config"

// Detect runs the row accumulator, non-maximum suppressor and descriptor
// builder over every sampled scanline of f, unconditionally resetting and
// then repopulating the local FeatureTable. It returns the number of
// features stored, which may be less than the number of peaks found if
// MaxFeatures is reached; in that case detection is truncated, not failed.
func (e *Engine) Detect(f *Frame, cfg config.Config) int {
	e.local.Reset()
	e.state = stateIdle
	e.frameWidth = f.Width
	e.frameHeight = f.Height

	margin := e.margin

	truncated := false
	for y := margin + cfg.CalibrationOffsetY; y < f.Height-margin; y += e.verticalSampling {
		row := e.local.startRow()
		n := 0
		if y >= margin && y <= f.Height-margin {
			n = e.detectRow(f, y, cfg, margin)
		}
		e.local.setRowCount(row, n)
		if e.local.full() {
			truncated = true
			break
		}
	}

	if truncated {
		e.log.Warning("stereo feature buffer full", "max_features", MaxFeatures)
	}

	e.state = stateDetected
	return e.local.Count()
}

// detectRow runs the per-row pipeline for a single scanline and appends
// accepted features to the local table, walking x from right to left so
// that features are stored right-to-left within the row (and, if capacity
// runs out mid-row, the rightmost ones are kept). Non-maximum suppression
// has already run by then, so the walk order does not affect which peaks
// survive. It returns the number of features accepted on this row.
func (e *Engine) detectRow(f *Frame, y int, cfg config.Config, margin int) int {
	rowMean := e.updateSums(f, y)
	e.nonMax(f.Width, cfg.InhibitionRadius, cfg.MinimumResponse)

	// rowPeaks only ever holds a meaningful value for indices in
	// [4, width-5); a small inhibition radius must not push the starting
	// column past that range into stale scratch data.
	start := f.Width - 1 - cfg.InhibitionRadius
	if validEnd := f.Width - 5; start >= validEnd {
		start = validEnd - 1
	}

	n := 0
	for x := start; x > margin; x-- {
		if e.rowPeaks[x] == 0 {
			continue
		}
		desc, mean, ok := e.computeDescriptor(f, x, y, rowMean)
		if !ok {
			continue
		}
		stored := int16(x + cfg.CalibrationOffsetX)
		if !e.local.append(stored, desc, mean) {
			return n
		}
		n++
	}
	return n
}
