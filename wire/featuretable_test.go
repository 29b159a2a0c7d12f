package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fenwicklabs/svs-stereo/stereo"
)

func sampleSnapshot() Snapshot {
	var s Snapshot
	s.FeatureX[0] = 120
	s.FeatureX[1] = -4
	s.FeatureX[2] = 999
	s.FeaturesPerRow[0] = 2
	s.FeaturesPerRow[1] = 1
	s.Descriptor[0] = 0xABCD1234
	s.Descriptor[1] = 0x1
	s.Mean[0] = 200
	s.Mean[1] = 7
	return s
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleSnapshot()
	buf := Encode(want)
	if len(buf) != Size {
		t.Fatalf("encoded length = %d, want %d", len(buf), Size)
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	buf := Encode(sampleSnapshot())
	// Flip every bit of one byte in the payload; the trailing CRC must no longer
	// match and Decode must refuse to return the corrupted snapshot.
	buf[100] ^= 0xFF

	_, err := Decode(buf)
	if err != ErrCorrupt {
		t.Fatalf("got err=%v, want ErrCorrupt", err)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(make([]byte, Size-1))
	if err == nil {
		t.Fatal("expected an error for a short buffer")
	}
}

func TestFromTableRoundTripsThroughLoadSnapshot(t *testing.T) {
	var src stereo.FeatureTable
	src.Reset()
	// Simulate two scanline rows with 2 and 1 features respectively,
	// matching the right-to-left append order Detect uses.
	src.LoadSnapshot(
		[]int16{50, 40, 30},
		[]uint16{2, 1},
		[]uint32{0x1, 0x2, 0x3},
		[]uint8{10, 20, 30},
	)

	snap := FromTable(&src)
	buf := Encode(snap)
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var dst stereo.FeatureTable
	decoded.ToTable(&dst)

	if dst.Count() != src.Count() {
		t.Fatalf("count mismatch after round trip: got %d, want %d", dst.Count(), src.Count())
	}
	for i := 0; i < src.Count(); i++ {
		if dst.X(i) != src.X(i) || dst.Descriptor(i) != src.Descriptor(i) || dst.Mean(i) != src.Mean(i) {
			t.Errorf("feature %d mismatch after round trip", i)
		}
	}
}
