/*
DESCRIPTION
  stereo_test.go covers the end-to-end seed scenarios: a
  constant image producing no features, a matching vertical-stripe pair, a
  pair of identical images producing only zero-disparity (and therefore
  rejected) matches, and detection capacity truncation.

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
	"testing"

	"github.com/fenwicklabs/svs-stereo/stereo/config"
)

func uniformFrame(w, h int, v uint8) *Frame {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = v
	}
	return &Frame{Pix: pix, Width: w, Height: h, Channels: 1}
}

// stripeFrame returns a white field with a dark vertical band of width
// 2*halfWidth+1 centered on stripeX.
func stripeFrame(w, h, stripeX, halfWidth int) *Frame {
	f := uniformFrame(w, h, 255)
	for y := 0; y < h; y++ {
		for x := stripeX - halfWidth; x <= stripeX+halfWidth; x++ {
			if x < 0 || x >= w {
				continue
			}
			f.Pix[y*w+x] = 0
		}
	}
	return f
}

func TestDetectConstantImage(t *testing.T) {
	f := uniformFrame(64, 64, 128)
	e := NewEngine(BresenhamRing24, 8)
	cfg := config.Default()
	cfg.InhibitionRadius = 8

	n := e.Detect(f, cfg)
	if n != 0 {
		t.Fatalf("constant image: got %d features, want 0", n)
	}
}

func TestMatchConstantImage(t *testing.T) {
	left := uniformFrame(64, 64, 128)
	right := uniformFrame(64, 64, 128)

	le := NewEngine(BresenhamRing24, 8)
	re := NewEngine(BresenhamRing24, 8)
	cfg := config.Default()
	cfg.InhibitionRadius = 8

	le.Detect(left, cfg)
	re.Detect(right, cfg)
	le.SetOpposite(re.Local())

	n, err := le.Match(cfg)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if n != 0 {
		t.Fatalf("constant image: got %d matches, want 0", n)
	}
}

func TestMatchVerticalStripe(t *testing.T) {
	// A 3px-wide stripe gives the Bresenham ring pattern enough on-stripe
	// samples to clear the flatness rejection while still leaving most
	// ring samples off-stripe. A single stripe per image would leave one
	// feature per row on each side, and that lone pair would take the whole
	// probability mass (1000), which Match rejects; a second stripe 10px to
	// the right gives the first stripe's left feature a second,
	// negative-disparity candidate, so its disp=5 pair scores below 1000.
	left := stripeFrame(64, 64, 40, 1)
	right := stripeFrame(64, 64, 35, 1)
	for y := 0; y < 64; y++ {
		for x := 49; x <= 51; x++ {
			left.Pix[y*64+x] = 0
			right.Pix[y*64+x-5] = 0
		}
	}

	le := NewEngine(BresenhamRing24, 8)
	re := NewEngine(BresenhamRing24, 8)

	cfg := config.Default()
	cfg.InhibitionRadius = 8
	cfg.MinimumResponse = 100
	cfg.MaxDisparityPercent = 20
	cfg.DescriptorMatchThreshold = 0

	nl := le.Detect(left, cfg)
	nr := re.Detect(right, cfg)
	if nl == 0 || nr == 0 {
		t.Fatalf("expected features on both sides, got left=%d right=%d", nl, nr)
	}

	le.SetOpposite(re.Local())
	n, err := le.Match(cfg)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if n == 0 {
		t.Fatal("expected at least one candidate match")
	}

	found := false
	for _, m := range le.Matches(n) {
		if m.Prob == 0 || m.Prob >= 1000 {
			t.Errorf("match probability out of range: %d", m.Prob)
		}
		if m.Disp == 5 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a match with disp=5 among %d candidates", n)
	}
}

func TestMatchIdenticalImagesYieldsNoDisparity(t *testing.T) {
	img := stripeFrame(64, 64, 32, 1)

	le := NewEngine(BresenhamRing24, 8)
	re := NewEngine(BresenhamRing24, 8)
	cfg := config.Default()
	cfg.InhibitionRadius = 8
	cfg.DescriptorMatchThreshold = 0

	le.Detect(img, cfg)
	re.Detect(img, cfg)
	le.SetOpposite(re.Local())

	n, err := le.Match(cfg)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	// Every feature pairs with itself at disp=0, which the disp>0 filter
	// in Engine.Match discards; any surviving match would have to come
	// from a different, spurious feature and would still violate the
	// invariant that identical images cannot produce positive disparity
	// at the matching feature.
	for _, m := range le.Matches(n) {
		if m.Disp == 0 {
			t.Errorf("disp=0 match leaked through the disp>0 filter")
		}
	}
}

func TestDetectCapacityTruncation(t *testing.T) {
	// Busy, high-frequency 2px vertical stripes leave a peak roughly every
	// inhibition radius on every sampled row; with a small inhibition
	// radius and dense vertical sampling this exceeds MaxFeatures well
	// before the image is exhausted.
	w, h := MaxImageWidth, MaxImageHeight
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/2)%2 == 0 {
				pix[y*w+x] = 255
			}
		}
	}
	f := &Frame{Pix: pix, Width: w, Height: h, Channels: 1}

	e := NewEngine(BresenhamRing24, 2)
	cfg := config.Default()
	cfg.InhibitionRadius = 4
	cfg.MinimumResponse = 1
	cfg.DescriptorMatchThreshold = 0

	n := e.Detect(f, cfg)
	if n != MaxFeatures {
		t.Fatalf("got %d features, want exactly MaxFeatures=%d on a capacity-exceeding image", n, MaxFeatures)
	}

	sum := 0
	for r := 0; r < e.Local().Rows(); r++ {
		sum += e.Local().FeaturesPerRow(r)
	}
	if sum != n {
		t.Fatalf("sum(features_per_row)=%d does not match reported count %d", sum, n)
	}
}
