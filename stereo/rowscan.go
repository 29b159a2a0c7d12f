/*
DESCRIPTION
  rowscan.go implements the row accumulator and non-maximum suppression
  stages: a prefix-sum of pixel intensities along one scanline, a two-scale
  second-difference edge response, and in-place suppression of all but the
  locally-maximal peaks.

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

// updateSums fills e.rowSum with the prefix sum of channel sums along row y
// and e.rowPeaks[4:w-5] with the combined 2-radius/4-radius second
// difference edge response. It returns the row's mean pixel value.
func (e *Engine) updateSums(f *Frame, y int) int {
	w := f.Width

	e.rowSum[0] = int32(f.channelSum(0, y))
	for x := 1; x < w; x++ {
		e.rowSum[x] = e.rowSum[x-1] + int32(f.channelSum(x, y))
	}

	rowMean := int(e.rowSum[w-1]) / (w * f.Channels)

	for x := 4; x < w-5; x++ {
		p0 := (e.rowSum[x] - e.rowSum[x-2]) - (e.rowSum[x+2] - e.rowSum[x])
		if p0 < 0 {
			p0 = -p0
		}
		p1 := (e.rowSum[x] - e.rowSum[x-4]) - (e.rowSum[x+4] - e.rowSum[x])
		if p1 < 0 {
			p1 = -p1
		}
		e.rowPeaks[x] = uint32(p0 + p1)
	}
	return rowMean
}

// nonMax performs in-place non-maximum suppression over e.rowPeaks[4:w-5],
// keeping at most one surviving peak per window of width inhibitionRadius.
// A peak is zeroed only when a strictly larger one lies ahead of it inside
// the window; of two equal peaks, the left one survives.
func (e *Engine) nonMax(width, inhibitionRadius int, minResponsePercent int) {
	var avg uint32
	for x := 4; x < width-5; x++ {
		avg += e.rowPeaks[x]
	}
	if n := width - 9; n > 0 {
		avg /= uint32(n)
	}
	threshold := avg * uint32(minResponsePercent) / 100

	// row_peaks is only ever written for indices in [4, width-5); the loop
	// and its lookahead must never read or suppress outside that range.
	validEnd := width - 5
	for x := 4; x < width-inhibitionRadius && x < validEnd; x++ {
		if e.rowPeaks[x] < threshold {
			e.rowPeaks[x] = 0
		}
		v := e.rowPeaks[x]
		if v == 0 {
			continue
		}
		end := x + inhibitionRadius
		if end > validEnd {
			end = validEnd
		}
		for r := x + 1; r < end; r++ {
			if e.rowPeaks[r] <= v {
				e.rowPeaks[r] = 0
			} else {
				e.rowPeaks[x] = 0
				break
			}
		}
	}
}
