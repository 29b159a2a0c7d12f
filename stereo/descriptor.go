/*
DESCRIPTION
  descriptor.go implements the binary patch descriptor builder:
  sampling the engine's fixed offset pattern around a candidate
  feature, binarizing against the patch mean, rejecting flat patches, and
  storing a row-normalized luminance alongside the descriptor bitfield.

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

// minPopcount and maxPopcountMargin bound the accepted descriptor popcount:
// a descriptor is rejected unless popcount lies in (minPopcount,
// Bits-maxPopcountMargin), i.e. the patch is neither near-flat nor
// near-saturated.
const (
	minPopcount       = 3
	maxPopcountMargin = 3
)

// computeDescriptor samples f.pattern's offsets around (px, py), builds the
// DESCRIPTOR_BITS-wide bitfield, and returns it with the row-normalized
// mean luminance. ok is false if the patch is too flat to be useful (an
// open interval rejection, not an error).
//
// The descriptor's low Bits bits carry the pattern comparison; for 3-channel
// frames, three additional high bits carry the color-dominance flags from
// Frame.colorFlags.
func (e *Engine) computeDescriptor(f *Frame, px, py, rowMean int) (desc uint32, mean uint8, ok bool) {
	offsets := e.pattern.Offsets
	n := len(offsets)

	patchMean := 0
	for _, o := range offsets {
		patchMean += f.channelSum(px+int(o.DX), py+int(o.DY))
	}
	patchMean /= n

	var bits uint32
	bitCount := 0
	for i, o := range offsets {
		if f.channelSum(px+int(o.DX), py+int(o.DY)) > patchMean {
			bits |= 1 << uint(i)
			bitCount++
		}
	}

	if bitCount <= minPopcount || bitCount >= e.pattern.Bits-maxPopcountMargin {
		return 0, 0, false
	}

	bits |= f.colorFlags(px, py) << uint(e.pattern.Bits)

	// Normalize the patch luminance against the row mean so left/right
	// comparisons are fair under illumination differences. Quantizes to 0-85.
	m := patchMean/3 - rowMean + 127
	if m < 0 {
		m = 0
	}
	if m > 255 {
		m = 255
	}
	return bits, uint8(m / 3), true
}
