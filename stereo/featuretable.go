/*
DESCRIPTION
  featuretable.go implements the fixed-capacity, row-keyed feature store.
  One FeatureTable holds the local camera's detected features;
  a second, identically-shaped FeatureTable holds a value copy of the
  opposite camera's table, received over the wire package rather than held
  by reference.

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

// FeatureTable is an ordered, row-keyed collection of up to MaxFeatures
// detected features. Features are stored row-major, right-to-left within a
// row, matching the original detector's iteration order; this order fixes
// each feature's index within its row and which features are kept when
// capacity runs out mid-row.
type FeatureTable struct {
	featureX       [MaxFeatures]int16
	descriptor     [MaxFeatures]uint32
	mean           [MaxFeatures]uint8
	featuresPerRow [MaxImageHeight]uint16

	count int // total features stored, == sum(featuresPerRow[:rows])
	rows  int // number of rows written to featuresPerRow
}

// Reset clears the table to empty. Detect calls this unconditionally at the
// start of every frame.
func (t *FeatureTable) Reset() {
	t.count = 0
	t.rows = 0
	for i := range t.featuresPerRow {
		t.featuresPerRow[i] = 0
	}
}

// Count returns the total number of features currently stored.
func (t *FeatureTable) Count() int { return t.count }

// Rows returns the number of scanline rows this table has entries for.
func (t *FeatureTable) Rows() int { return t.rows }

// FeaturesPerRow returns the number of features stored on row r.
func (t *FeatureTable) FeaturesPerRow(r int) int {
	if r < 0 || r >= t.rows {
		return 0
	}
	return int(t.featuresPerRow[r])
}

// X returns the stored x-coordinate of feature i.
func (t *FeatureTable) X(i int) int { return int(t.featureX[i]) }

// Descriptor returns the stored descriptor bitfield of feature i.
func (t *FeatureTable) Descriptor(i int) uint32 { return t.descriptor[i] }

// Mean returns the stored row-normalized luminance of feature i.
func (t *FeatureTable) Mean(i int) uint8 { return t.mean[i] }

// full reports whether the table has reached MaxFeatures.
func (t *FeatureTable) full() bool { return t.count >= MaxFeatures }

// append stores one feature at the end of the table and returns false if
// capacity has been reached (the caller must stop the detection pass).
func (t *FeatureTable) append(x int16, desc uint32, mean uint8) bool {
	if t.full() {
		return false
	}
	t.featureX[t.count] = x
	t.descriptor[t.count] = desc
	t.mean[t.count] = mean
	t.count++
	return true
}

// startRow records that a new scanline row is beginning; it must be called
// once per scanline, in scanline order, even for rows that yield zero
// features.
func (t *FeatureTable) startRow() int {
	r := t.rows
	t.rows++
	return r
}

// setRowCount finalizes the feature count for row r.
func (t *FeatureTable) setRowCount(r, n int) {
	t.featuresPerRow[r] = uint16(n)
}

// CopyFrom overwrites t with a full value copy of src. Used to install a
// received opposite-camera table without retaining a reference into
// whatever transport buffer decoded it.
func (t *FeatureTable) CopyFrom(src *FeatureTable) {
	t.featureX = src.featureX
	t.descriptor = src.descriptor
	t.mean = src.mean
	t.featuresPerRow = src.featuresPerRow
	t.count = src.count
	t.rows = src.rows
}

// LoadSnapshot installs a decoded wire image into t. featureX, descriptor
// and mean are copied into the front of t's arrays (at most MaxFeatures
// entries; slots past a shorter slice keep their previous values);
// featuresPerRow's length is used
// directly as the row count and must be <= MaxImageHeight. It is used by
// the wire package and should not be needed by ordinary callers, who should
// prefer CopyFrom for in-process transfers.
func (t *FeatureTable) LoadSnapshot(featureX []int16, featuresPerRow []uint16, descriptor []uint32, mean []uint8) {
	t.count = 0
	copy(t.featureX[:], featureX)
	copy(t.descriptor[:], descriptor)
	copy(t.mean[:], mean)

	rows := len(featuresPerRow)
	if rows > MaxImageHeight {
		rows = MaxImageHeight
	}
	t.rows = rows
	total := 0
	for r := 0; r < rows; r++ {
		t.featuresPerRow[r] = featuresPerRow[r]
		total += int(featuresPerRow[r])
	}
	if total > MaxFeatures {
		total = MaxFeatures
	}
	t.count = total
}
