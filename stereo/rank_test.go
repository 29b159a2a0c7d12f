package stereo

import "testing"

func newMatchEngine(probs []uint32) *Engine {
	e := &Engine{}
	e.numMatches = len(probs)
	for i, p := range probs {
		e.matches[i] = MatchRecord{Prob: p, X: uint32(i)}
	}
	return e
}

func TestPartialSortOrdersDescending(t *testing.T) {
	e := newMatchEngine([]uint32{10, 900, 300, 50, 700})
	k := e.partialSort(5)
	if k != 5 {
		t.Fatalf("got k=%d, want 5", k)
	}
	for i := 1; i < k; i++ {
		if e.matches[i-1].Prob < e.matches[i].Prob {
			t.Fatalf("not descending at %d: %v", i, e.matches[:k])
		}
	}
}

func TestPartialSortStopsAtZeroProbability(t *testing.T) {
	e := newMatchEngine([]uint32{500, 0, 300, 0, 900})
	k := e.partialSort(5)
	// Only 3 of the 5 records are non-zero; each pass brings the largest
	// remaining probability forward, so a zero reaches the front only once
	// every non-zero record has been placed, and the sort stops there.
	for i := 0; i < k; i++ {
		if e.matches[i].Prob == 0 {
			t.Fatalf("zero-probability record at rank %d within k=%d", i, k)
		}
	}
}

func TestPartialSortRespectsIdealCap(t *testing.T) {
	e := newMatchEngine([]uint32{100, 200, 300, 400, 500})
	k := e.partialSort(2)
	if k != 2 {
		t.Fatalf("got k=%d, want 2", k)
	}
	if e.matches[0].Prob != 500 || e.matches[1].Prob != 400 {
		t.Fatalf("top-2 not the two highest probabilities: %v", e.matches[:2])
	}
}

func TestPartialSortEmptyTable(t *testing.T) {
	e := newMatchEngine(nil)
	if k := e.partialSort(10); k != 0 {
		t.Fatalf("got k=%d, want 0 for an empty match table", k)
	}
}
