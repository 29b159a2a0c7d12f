package stereo

import "testing"

// TestFilterSuppressesOutlier builds a single region (the whole frame falls
// in "left" plus "upper" since midX/midY are set past every point) with a
// dense cluster of matches at disp=10 and one outlier at disp=60; the
// histogram-filter peak should sit at 10 and the outlier should be zeroed.
func TestFilterSuppressesOutlier(t *testing.T) {
	e := &Engine{}
	disps := []uint32{10, 10, 10, 10, 10, 60}
	for i, d := range disps {
		e.matches[i] = MatchRecord{Prob: 500, X: 10, Y: 10, Disp: d}
	}
	e.numMatches = len(disps)

	e.Filter(100, 3, 1000, 1000)

	for i, d := range disps {
		if d == 60 {
			if e.matches[i].Prob != 0 {
				t.Errorf("outlier at index %d (disp=%d) was not suppressed: prob=%d", i, d, e.matches[i].Prob)
			}
			continue
		}
		if e.matches[i].Prob == 0 {
			t.Errorf("inlier at index %d (disp=%d) was suppressed", i, d)
		}
	}
}

// TestFilterEmptyTableIsNoop confirms Filter tolerates zero matches.
func TestFilterEmptyTableIsNoop(t *testing.T) {
	e := &Engine{}
	e.Filter(50, 3, 100, 100)
	if e.numMatches != 0 {
		t.Fatalf("numMatches changed on empty table: %d", e.numMatches)
	}
}

// TestFilterRegionsAreIndependent checks that a match surviving in one
// region but not another still counts as kept, since Filter only zeroes
// candidates with zero votes across all four regions.
func TestFilterRegionsAreIndependent(t *testing.T) {
	e := &Engine{}
	// A cluster on the left half at disp=5, and a single lonely point on
	// the right half at disp=1. The right-half histogram has no bucket at
	// d>=3, so its peak stays 0 and the point lies within tolerance of it;
	// the upper region's peak is 5, so the point is rejected there.
	e.matches[0] = MatchRecord{Prob: 500, X: 1, Y: 1, Disp: 5}
	e.matches[1] = MatchRecord{Prob: 500, X: 2, Y: 1, Disp: 5}
	e.matches[2] = MatchRecord{Prob: 500, X: 3, Y: 1, Disp: 5}
	e.matches[3] = MatchRecord{Prob: 500, X: 90, Y: 1, Disp: 1}
	e.numMatches = 4

	e.Filter(100, 3, 50, 1000)

	for i := 0; i < 3; i++ {
		if e.matches[i].Prob == 0 {
			t.Errorf("left-cluster match %d suppressed unexpectedly", i)
		}
	}
	if e.matches[3].Prob == 0 {
		t.Errorf("right-half match suppressed although the right region voted to keep it")
	}
}
