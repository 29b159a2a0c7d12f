/*
DESCRIPTION
  filter.go implements the 2-D disparity-histogram filter:
  four overlapping image-region votes (left half, right half, upper half,
  lower half), each building a disparity histogram, computing a
  mass-weighted peak and a near/far classifier, and voting to keep or
  suppress each candidate match in its region.

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

// region selects a subset of the match table by a predicate over (x, y).
type region struct {
	name string
	in   func(x, y, midX, midY uint32) bool
}

var regions = [4]region{
	{"left", func(x, _, midX, _ uint32) bool { return x < midX }},
	{"right", func(x, _, midX, _ uint32) bool { return x >= midX }},
	{"upper", func(_, y, _, midY uint32) bool { return y < midY }},
	{"lower", func(_, y, _, midY uint32) bool { return y >= midY }},
}

// Filter suppresses candidate matches whose disparity is far from the
// disparity-histogram peak of every image region they fall in. A candidate
// survives only if at least one of the four overlapping regions votes to
// keep it; candidates with zero votes have their probability zeroed so
// they are dropped from the ranked output.
func (e *Engine) Filter(maxDisp, tolerance int, midX, midY uint32) {
	n := e.numMatches
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		e.validQuadrants[i] = 0
	}

	for _, reg := range regions {
		e.filterRegion(reg, maxDisp, tolerance, midX, midY)
	}

	for i := 0; i < n; i++ {
		if e.validQuadrants[i] == 0 {
			e.matches[i].Prob = 0
		}
	}
}

// filterRegion builds the disparity histogram for one region, derives its
// peak and near/far classification, and increments validQuadrants for
// every candidate in the region that the classifier accepts.
func (e *Engine) filterRegion(reg region, maxDisp, tolerance int, midX, midY uint32) {
	n := e.numMatches
	for d := 0; d < maxDisp && d < MaxImageWidth; d++ {
		e.histogram[d] = 0
	}

	for i := 0; i < n; i++ {
		e.regionMask[i] = false
	}
	for i := 0; i < n; i++ {
		m := e.matches[i]
		if !reg.in(m.X, m.Y, midX, midY) {
			continue
		}
		e.regionMask[i] = true
		d := int(m.Disp)
		if d >= 0 && d < maxDisp && d < MaxImageWidth {
			e.histogram[d]++
		}
	}

	var hMax int32
	for d := 0; d < maxDisp && d < MaxImageWidth; d++ {
		if e.histogram[d] > hMax {
			hMax = e.histogram[d]
		}
	}
	if hMax == 0 {
		return
	}
	threshold := hMax / 4

	var massNum, massDen int64
	for d := 3; d < maxDisp-1 && d < MaxImageWidth-1; d++ {
		if e.histogram[d] <= threshold {
			continue
		}
		m := e.histogram[d-1] + e.histogram[d] + e.histogram[d+1]
		massNum += int64(d) * int64(m)
		massDen += int64(m)
	}
	var peak int64
	if massDen > 0 {
		peak = massNum / massDen
	}

	// Near/far classifier: compare four times the mean non-zero histogram
	// bucket against the zero-disparity bucket.
	var sum int64
	var nonZero int64
	for d := 0; d < maxDisp && d < MaxImageWidth; d++ {
		if e.histogram[d] > 0 {
			sum += int64(e.histogram[d])
			nonZero++
		}
	}
	near := false
	if nonZero > 0 {
		mean := sum / nonZero
		near = mean*4 > int64(e.histogram[0])
	}

	for i := 0; i < n; i++ {
		if !e.regionMask[i] {
			continue
		}
		d := int64(e.matches[i].Disp)
		keep := false
		if near {
			diff := d - peak
			if diff < 0 {
				diff = -diff
			}
			keep = diff <= int64(tolerance)
		} else {
			keep = d <= 2
		}
		if keep {
			e.validQuadrants[i]++
		}
	}
}
