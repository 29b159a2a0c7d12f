package stereo

import "testing"

func TestPatternBitsMatchesOffsetCount(t *testing.T) {
	for _, p := range []Pattern{BresenhamRing24, HorizontalBar30} {
		if len(p.Offsets) != p.Bits {
			t.Errorf("%s: len(Offsets)=%d, Bits=%d", p.Name, len(p.Offsets), p.Bits)
		}
		if p.Bits > 32 {
			t.Errorf("%s: Bits=%d exceeds a uint32 descriptor", p.Name, p.Bits)
		}
	}
}

func TestPatternReach(t *testing.T) {
	if got := BresenhamRing24.reach(); got != 3 {
		t.Errorf("BresenhamRing24.reach() = %d, want 3", got)
	}
	if got := HorizontalBar30.reach(); got != 7 {
		t.Errorf("HorizontalBar30.reach() = %d, want 7", got)
	}
}

func TestNewEngineMarginIsAtLeastFour(t *testing.T) {
	e := NewEngine(BresenhamRing24, 8)
	if e.margin != 4 {
		t.Errorf("margin for a reach-3 pattern = %d, want the floor of 4", e.margin)
	}
	e2 := NewEngine(HorizontalBar30, 8)
	if e2.margin != 7 {
		t.Errorf("margin for HorizontalBar30 = %d, want 7", e2.margin)
	}
}
