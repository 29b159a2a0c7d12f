/*
DESCRIPTION
  config.go holds the per-frame tunables of the stereo engine,
  validated and defaulted the way revid/config.Config is: soft fields are
  defaulted with a logged diagnostic, structurally required fields produce
  a hard error.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

// Package config defines the caller-supplied tunables for the stereo
// engine: inhibition radius, minimum response, calibration offsets, ideal
// match count, disparity bound, descriptor match threshold, scoring
// weights and histogram filter tolerance.
package config

import "github.com/pkg/errors"

// Defaults matching the original SVS stereo vision firmware's typical
// operating parameters.
const (
	DefaultInhibitionRadius         = 16
	DefaultMinimumResponse          = 100
	DefaultIdealMatches             = 200
	DefaultMaxDisparityPercent      = 20
	DefaultDescriptorMatchThreshold = 4
	DefaultLearnDesc                = 18
	DefaultLearnLuma                = 4
	DefaultLearnDisp                = 1
	DefaultTolerance                = 3
)

// Config holds every tunable a caller supplies each frame.
type Config struct {
	// InhibitionRadius is the non-maximum-suppression window width, in
	// pixels.
	InhibitionRadius int

	// MinimumResponse is the row-average multiplier, as a percent (typical
	// 100-200).
	MinimumResponse int

	// CalibrationOffsetX and CalibrationOffsetY are integer rectification
	// corrections applied once, at detection time, to the local camera's
	// feature coordinates only.
	CalibrationOffsetX int
	CalibrationOffsetY int

	// IdealMatches is K, the number of top matches the ranker should
	// produce.
	IdealMatches int

	// MaxDisparityPercent bounds disparity as a percent of image width.
	MaxDisparityPercent int

	// DescriptorMatchThreshold is the minimum number of correlation bits
	// required before a candidate pair is scored at all.
	DescriptorMatchThreshold int

	// LearnDesc, LearnLuma and LearnDisp are the integer weights applied to
	// the descriptor-correlation, luminance-difference and disparity terms
	// of the matching score.
	LearnDesc int
	LearnLuma int
	LearnDisp int

	// Tolerance is the histogram filter's disparity tolerance tau.
	Tolerance int
}

// Default returns a Config populated with the typical operating parameters
// listed above.
func Default() Config {
	return Config{
		InhibitionRadius:         DefaultInhibitionRadius,
		MinimumResponse:          DefaultMinimumResponse,
		IdealMatches:             DefaultIdealMatches,
		MaxDisparityPercent:      DefaultMaxDisparityPercent,
		DescriptorMatchThreshold: DefaultDescriptorMatchThreshold,
		LearnDesc:                DefaultLearnDesc,
		LearnLuma:                DefaultLearnLuma,
		LearnDisp:                DefaultLearnDisp,
		Tolerance:                DefaultTolerance,
	}
}

// diagnostic is satisfied by stereo.Logger; declared locally to avoid an
// import cycle (stereo imports config for tunables, so config cannot
// import stereo back).
type diagnostic interface {
	Warning(msg string, args ...interface{})
}

// Validate checks c for structurally required fields and defaults any
// soft, out-of-range tunables, logging a diagnostic for each one defaulted.
// log may be nil, in which case defaulting happens silently.
func (c *Config) Validate(log diagnostic) error {
	if c.InhibitionRadius <= 0 {
		return errors.New("config: inhibition radius must be positive")
	}
	if c.MaxDisparityPercent <= 0 || c.MaxDisparityPercent > 100 {
		return errors.New("config: max disparity percent must be in (0, 100]")
	}

	if c.MinimumResponse <= 0 {
		c.warn(log, "minimum response", DefaultMinimumResponse)
		c.MinimumResponse = DefaultMinimumResponse
	}
	if c.IdealMatches <= 0 {
		c.warn(log, "ideal matches", DefaultIdealMatches)
		c.IdealMatches = DefaultIdealMatches
	}
	if c.DescriptorMatchThreshold < 0 {
		c.warn(log, "descriptor match threshold", DefaultDescriptorMatchThreshold)
		c.DescriptorMatchThreshold = DefaultDescriptorMatchThreshold
	}
	if c.LearnDesc <= 0 {
		c.warn(log, "learn desc weight", DefaultLearnDesc)
		c.LearnDesc = DefaultLearnDesc
	}
	if c.Tolerance < 0 {
		c.warn(log, "tolerance", DefaultTolerance)
		c.Tolerance = DefaultTolerance
	}
	return nil
}

func (c *Config) warn(log diagnostic, field string, def int) {
	if log == nil {
		return
	}
	log.Warning(field+" bad or unset, defaulting", "value", def)
}
