/*
DESCRIPTION
  errors.go defines the error taxonomy of the stereo engine.

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

import "github.com/pkg/errors"

// Sentinel errors for the stereo engine's error taxonomy. CapacityExceeded
// is deliberately not one of these: it is not a failure, it is reported as
// a truncated count plus a logged diagnostic (see Engine.Detect). Wire
// corruption is owned by the wire package, which sits below stereo in the
// dependency graph.
var (
	// ErrStageMisorder is returned by Match when called before a received
	// opposite FeatureTable has been loaded via SetOpposite.
	ErrStageMisorder = errors.New("stereo: match called before opposite feature table was received")

	// ErrNotReady is returned by Rank when called before Match has run for
	// the current frame.
	ErrNotReady = errors.New("stereo: rank called before match")
)
