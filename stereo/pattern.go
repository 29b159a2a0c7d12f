/*
DESCRIPTION
  pattern.go defines the two sampling patterns used to build a feature's
  binary descriptor: a Bresenham-ring pattern and a horizontal-bar pattern.
  The pattern in use, and therefore the descriptor bit width, is a
  compile-time choice of the deployed Engine.

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

// Offset is one (dx, dy) sample position relative to a candidate feature
// point, used to build its descriptor.
type Offset struct {
	DX, DY int8
}

// Pattern is a fixed sampling pattern used by the descriptor builder. Bits
// is the number of pattern samples, i.e. the descriptor width before the
// three color-dominance flag bits computeDescriptor appends above it (see
// Engine.DescriptorBits). The descriptor bit width always equals
// len(Offsets), and is always <= 32 so a descriptor fits a single uint32.
type Pattern struct {
	Name    string
	Offsets []Offset
	Bits    int
}

// BresenhamRing24 is a 24-sample ring pattern approximating a Bresenham
// circle of radius 3 around the feature point, ported from the
// pixel_offsets table in the original SVS stereo.cpp.
var BresenhamRing24 = Pattern{
	Name: "bresenham-ring-24",
	Bits: 24,
	Offsets: []Offset{
		{-2, -2}, {-2, -3}, {-1, -3}, {0, -3}, {1, -3}, {2, -3}, {2, -2},
		{3, -2}, {3, -1}, {3, 0}, {3, 1}, {3, 2}, {2, 2},
		{2, 3}, {1, 3}, {0, 3}, {-1, 3}, {-2, 3}, {-2, 2},
		{-3, 2}, {-3, 1}, {-3, 0}, {-3, -1}, {-3, -2},
	},
}

// HorizontalBar30 is a 30-sample pattern spread across two horizontal bars
// above and below the feature point, the alternative to BresenhamRing24.
var HorizontalBar30 = Pattern{
	Name: "horizontal-bar-30",
	Bits: 30,
	Offsets: func() []Offset {
		offs := make([]Offset, 0, 30)
		for _, dy := range [2]int8{-4, 4} {
			for dx := int8(-7); dx <= 7; dx++ {
				offs = append(offs, Offset{dx, dy})
				if len(offs) == 30 {
					return offs
				}
			}
		}
		return offs
	}(),
}

// reach returns the maximum absolute offset coordinate in the pattern, used
// to size the margin that detection must leave at image edges.
func (p Pattern) reach() int {
	m := 0
	for _, o := range p.Offsets {
		if a := abs8(o.DX); a > m {
			m = a
		}
		if a := abs8(o.DY); a > m {
			m = a
		}
	}
	return m
}

func abs8(v int8) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}
