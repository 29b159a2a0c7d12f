/*
DESCRIPTION
  stereo.go defines the fixed capacities and core data types of the sparse
  stereo correspondence engine: a row-keyed FeatureTable, the flat match
  table, and the Engine that owns every preallocated scratch buffer used by
  the pipeline (row accumulator, non-max suppression, descriptor builder,
  row matcher, histogram filter, ranker).

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

// Package stereo implements a sparse stereo correspondence engine for a
// fixed-baseline, rectified left/right camera pair. It extracts edge-like
// feature points along horizontal scanlines, encodes each as a compact
// binary descriptor plus mean luminance, matches features across the two
// views row by row, and ranks the resulting (x, y, disparity, confidence)
// tuples by confidence.
//
// All buffers are preallocated at construction time; no stage allocates on
// the hot path and all arithmetic is integer-only, matching the embedded
// coprocessor target this engine was designed for.
package stereo

// Fixed, compile-time capacities. These size every preallocated buffer the
// Engine owns and bound the worst-case work per frame.
const (
	// MaxFeatures is the maximum number of features that can be held in a
	// single FeatureTable, and the maximum number of match records that can
	// be produced in a single match() call.
	MaxFeatures = 2000

	// MaxImageWidth and MaxImageHeight bound the rectified frames this
	// engine can process. Scanline scratch buffers are sized to the width;
	// the feature table's per-row counters are sized to the height.
	MaxImageWidth  = 1280
	MaxImageHeight = 1024
)

// MatchRecord is one candidate or accepted stereo correspondence. Prob lies
// in [0, 999] by construction (see Engine.Match); a Prob of 0 means the
// record has been suppressed by the histogram filter and must not be
// emitted to the caller.
type MatchRecord struct {
	Prob uint32
	X    uint32
	Y    uint32
	Disp uint32
}

// engineState tracks the per-frame lifecycle of an Engine:
// IDLE -> DETECTED -> PAIRED -> MATCHED -> READY -> IDLE.
type engineState int

const (
	stateIdle engineState = iota
	stateDetected
	statePaired
	stateMatched
	stateReady
)

// Engine holds every buffer the stereo pipeline touches: the local camera's
// FeatureTable, a copy of the opposite camera's FeatureTable, scanline
// scratch space, the match table and histogram-filter scratch. An Engine is
// not safe for concurrent or reentrant use; a single call sequence
// (Detect, SetOpposite, Match, Rank, Consume) owns it exclusively, matching
// the single-threaded, cooperative resource model.
type Engine struct {
	pattern          Pattern
	verticalSampling int
	margin           int // row/column margin imposed by pattern reach, >= 4

	local    FeatureTable
	opposite FeatureTable

	// Scanline scratch, reused every row. rowSum is the running prefix sum
	// of pixel intensities; rowPeaks carries the edge response during
	// detection and is reused to carry matching scores during matching.
	rowSum   [MaxImageWidth]int32
	rowPeaks [MaxImageWidth]uint32

	matches    [MaxFeatures]MatchRecord
	numMatches int

	// Histogram-filter scratch.
	histogram      [MaxImageWidth]int32
	validQuadrants [MaxFeatures]uint8
	regionMask     [MaxFeatures]bool

	frameWidth  int
	frameHeight int

	state        engineState
	haveOpposite bool
	log          Logger
}

// NewEngine constructs an Engine for a fixed descriptor pattern and vertical
// scanline stride. Both are compile-time choices of the deployed engine
// and are fixed for the Engine's lifetime.
func NewEngine(pattern Pattern, verticalSampling int) *Engine {
	margin := pattern.reach()
	if margin < 4 {
		margin = 4
	}
	e := &Engine{
		pattern:          pattern,
		verticalSampling: verticalSampling,
		margin:           margin,
		log:              nopLogger{},
	}
	return e
}

// SetLogger installs a diagnostic logger. Without one, diagnostics (feature
// buffer overflow) are silently dropped rather than surfaced as errors.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	e.log = l
}

// DescriptorBits returns the effective descriptor width in bits, including
// the three color-dominance flag bits packed above the pattern's own
// comparison bits.
func (e *Engine) DescriptorBits() int {
	return e.pattern.Bits + 3
}

// Local returns a read-only view of the local camera's most recent
// FeatureTable, populated by Detect.
func (e *Engine) Local() *FeatureTable { return &e.local }

// Opposite returns a read-only view of the opposite camera's FeatureTable,
// populated by SetOpposite.
func (e *Engine) Opposite() *FeatureTable { return &e.opposite }

// Matches returns the top n ranked match records after Rank has been
// called. It is the caller's slice into Engine-owned storage and is only
// valid until the next Detect/Match call.
func (e *Engine) Matches(n int) []MatchRecord {
	if n > e.numMatches {
		n = e.numMatches
	}
	return e.matches[:n]
}

// Consume transitions the Engine back to IDLE. It
// does not clear any buffers; the next Detect call resets the local table
// unconditionally.
func (e *Engine) Consume() {
	e.state = stateIdle
}
