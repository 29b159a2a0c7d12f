/*
DESCRIPTION
  match.go implements the row matcher: a per-row
  eigendescriptor mask, bitwise pairwise scoring between every left/right
  feature pair on a row, and per-left-feature probability extraction into
  the flat match table.

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

import (
	"math/bits"

	"github.com/fenwicklabs/svs-stereo/stereo/config"
)

// Match scores every (L, R) feature pair row by row and records the single
// best-scoring right feature for each left feature into the match table.
// It requires a FeatureTable to have been installed via SetOpposite; if not,
// it returns ErrStageMisorder and leaves the match table untouched.
//
// Disparity is scored and recorded only in the strictly positive range
// (0, maxDisp); non-positive disparities down to -maxDisp only add prior
// mass to the probability denominator.
func (e *Engine) Match(cfg config.Config) (int, error) {
	if !e.haveOpposite {
		return 0, ErrStageMisorder
	}

	e.numMatches = 0
	// descBits covers the pattern's comparison bits plus the three
	// color-dominance flag bits packed above them, so both contribute to
	// the eigendescriptor mask and the correlation/anti-correlation score.
	descBits := uint(e.pattern.Bits) + 3
	maxDisp := uint32(cfg.MaxDisparityPercent) * uint32(e.frameWidth) / 100

	rows := e.local.rows
	if or := e.opposite.rows; or < rows {
		rows = or
	}

	fL, fR := 0, 0
	for row := 0; row < rows; row++ {
		nL := e.local.FeaturesPerRow(row)
		nR := e.opposite.FeaturesPerRow(row)

		if nL > 0 && nR > 0 {
			maskL, maskR := e.eigenMasks(fL, nL, descBits)
			e.matchRow(fL, nL, fR, nR, row, maskL, maskR, descBits, maxDisp, cfg)
		}

		fL += nL
		fR += nR
	}

	e.state = stateMatched
	return e.numMatches, nil
}

// eigenMasks computes the per-row eigendescriptor masks: for each bit
// position, count set vs. unset occurrences across the row's local
// descriptors. The left mask's bit is set if ones >= zeros; the right
// mask's bit is set only if ones strictly outnumber zeros. This asymmetric
// tie-break carries over from the firmware this engine's matcher descends
// from and is not relied upon by tests.
func (e *Engine) eigenMasks(fL, nL int, descBits uint) (maskL, maskR uint32) {
	for b := uint(0); b < descBits; b++ {
		ones, zeros := 0, 0
		for i := 0; i < nL; i++ {
			if e.local.descriptor[fL+i]&(1<<b) != 0 {
				ones++
			} else {
				zeros++
			}
		}
		if ones-zeros >= 0 {
			maskL |= 1 << b
		}
		if ones-zeros > 0 {
			maskR |= 1 << b
		}
	}
	return maskL, maskR
}

// matchRow scores every (L, R) pair on one row and records the best R for
// each L into the match table.
func (e *Engine) matchRow(fL, nL, fR, nR, row int, maskL, maskR uint32, descBits uint, maxDisp uint32, cfg config.Config) {
	for l := 0; l < nL; l++ {
		xL := e.local.featureX[fL+l]
		meanL := e.local.mean[fL+l]
		descL := e.local.descriptor[fL+l] & maskL
		antiL := reverseBits(descL, descBits)

		var total uint32
		for r := 0; r < nR; r++ {
			e.rowPeaks[r] = 0
			xR := e.opposite.featureX[fR+r]
			disp := int32(xL) - int32(xR)

			switch {
			case disp > 0 && disp < int32(maxDisp):
				descR := e.opposite.descriptor[fR+r] & maskR
				correlation := uint32(bits.OnesCount32(descL & descR))
				if int(correlation) <= cfg.DescriptorMatchThreshold {
					continue
				}
				anticorrelation := uint32(bits.OnesCount32(antiL & descR))

				meanR := e.opposite.mean[fR+r]
				lumaDiff := int32(meanR) - int32(meanL)
				if lumaDiff < 0 {
					lumaDiff = -lumaDiff
				}

				score := int64(maxDisp)*int64(cfg.LearnDisp) +
					int64(correlation+(uint32(descBits)-anticorrelation))*int64(cfg.LearnDesc) -
					int64(lumaDiff)*int64(cfg.LearnLuma) -
					int64(disp)*int64(cfg.LearnDisp)
				if score < 0 {
					score = 0
				}
				e.rowPeaks[r] = uint32(score)
				total += e.rowPeaks[r]

			case disp <= 0 && disp >= -int32(maxDisp):
				// Prior for non-positive disparities, (maxDisp - disp) *
				// LearnDisp, which grows as disp becomes more negative: it
				// adds probability mass to total, and any such entry that
				// wins is discarded by the disp>0 filter below.
				prior := (int64(maxDisp) - int64(disp)) * int64(cfg.LearnDisp)
				if prior < 0 {
					prior = 0
				}
				e.rowPeaks[r] = uint32(prior)
				total += e.rowPeaks[r]
			}
		}

		if total == 0 {
			continue
		}

		bestProb, bestR := uint32(0), -1
		for r := 0; r < nR; r++ {
			if e.rowPeaks[r] == 0 {
				continue
			}
			prob := e.rowPeaks[r] * 1000 / total
			if prob > bestProb {
				bestProb = prob
				bestR = r
			}
		}
		if bestR < 0 || bestProb == 0 || bestProb >= 1000 {
			continue
		}

		xR := e.opposite.featureX[fR+bestR]
		disp := int32(xL) - int32(xR)
		if disp <= 0 {
			continue
		}
		if e.numMatches >= MaxFeatures {
			continue
		}

		e.matches[e.numMatches] = MatchRecord{
			Prob: bestProb,
			X:    uint32(xL),
			Y:    uint32(e.margin + row*e.verticalSampling),
			Disp: uint32(disp),
		}
		e.numMatches++
	}
}

// reverseBits reverses the low n bits of v, used to build the
// anti-correlation descriptor.
func reverseBits(v uint32, n uint) uint32 {
	var out uint32
	for i := uint(0); i < n; i++ {
		out <<= 1
		out |= v & 1
		v >>= 1
	}
	return out
}
