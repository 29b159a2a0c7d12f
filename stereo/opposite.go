/*
DESCRIPTION
  opposite.go implements the transition that installs a value copy of the
  opposite camera's FeatureTable so matching can proceed.

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

// SetOpposite installs a value copy of the opposite camera's FeatureTable,
// received verbatim over a transport (see the wire package). The table's
// coordinates are used as-is; calibration offsets are never reapplied
// downstream.
func (e *Engine) SetOpposite(t *FeatureTable) {
	e.opposite.CopyFrom(t)
	e.haveOpposite = true
	if e.state == stateDetected {
		e.state = statePaired
	}
}
