/*
DESCRIPTION
  rank.go implements the final ranking stage: a partial in-place
  selection sort over the match table, descending by probability, stopping
  early once a slot's probability is zero. It also folds in the histogram
  filter so that Rank is the single "produce the output list" operation of
  the engine's state machine.

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

// Rank applies the histogram filter over the current match table, deriving
// the four overlapping regions from the frame dimensions supplied to the
// most recent Detect, and then partially selection-sorts the survivors,
// descending by probability, keeping only the top min(ideal, survivors).
// It returns the number of matches placed at the front of the table; call
// Matches(k) to retrieve them. Rank requires Match to have run this frame.
func (e *Engine) Rank(maxDisparityPercent, tolerance, ideal int) (int, error) {
	if e.state != stateMatched {
		return 0, ErrNotReady
	}

	maxDisp := maxDisparityPercent * e.frameWidth / 100
	e.Filter(maxDisp, tolerance, uint32(e.frameWidth/2), uint32(e.frameHeight/2))

	k := e.partialSort(ideal)
	e.state = stateReady
	return k, nil
}

// partialSort performs a partial selection sort over e.matches[:e.numMatches],
// descending by Prob, and returns how many leading slots hold a non-zero
// probability (i.e. survived filtering).
func (e *Engine) partialSort(ideal int) int {
	possible := e.numMatches
	if ideal > possible {
		ideal = possible
	}

	for i := 0; i < ideal; i++ {
		best := i
		for j := i + 1; j < possible; j++ {
			if e.matches[j].Prob > e.matches[best].Prob {
				best = j
			}
		}
		if best != i {
			e.matches[i], e.matches[best] = e.matches[best], e.matches[i]
		}
		if e.matches[i].Prob == 0 {
			return i
		}
	}
	return ideal
}
