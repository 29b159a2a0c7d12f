/*
DESCRIPTION
  featuretable.go implements the FeatureTable wire image: the
  concatenation of feature_x, features_per_row, descriptor and mean arrays,
  little-endian, followed by a 16-bit CRC-CCITT of the preceding bytes. This
  is the byte-oriented synchronous-link transport concern treated
  as external to the matching core; stereo.FeatureTable never serializes
  itself.

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/fenwicklabs/svs-stereo/stereo"
)

// ErrCorrupt is returned by Decode when a FeatureTable's trailing CRC does
// not match its payload.
var ErrCorrupt = errors.New("wire: feature table CRC mismatch")

// rows is the number of features_per_row entries carried on the wire: the
// full MaxImageHeight span, since a byte-oriented synchronous link needs a
// fixed-size layout regardless of the sending engine's vertical sampling.
const rows = stereo.MaxImageHeight

// Size is the fixed byte length of an encoded FeatureTable, including its
// trailing CRC.
const Size = stereo.MaxFeatures*2 + // feature_x, int16
	rows*2 + // features_per_row, uint16
	stereo.MaxFeatures*4 + // descriptor, uint32
	stereo.MaxFeatures + // mean, uint8
	2 // CRC-CCITT

// Snapshot is a plain-data mirror of what stereo.FeatureTable's exported
// accessors expose,
// used as the payload for Encode/Decode so the wire package never needs
// access to stereo's internal arrays.
type Snapshot struct {
	FeatureX       [stereo.MaxFeatures]int16
	FeaturesPerRow [rows]uint16
	Descriptor     [stereo.MaxFeatures]uint32
	Mean           [stereo.MaxFeatures]uint8
}

// FromTable builds a Snapshot from a populated FeatureTable.
func FromTable(t *stereo.FeatureTable) Snapshot {
	var s Snapshot
	for i := 0; i < stereo.MaxFeatures; i++ {
		s.FeatureX[i] = int16(t.X(i))
		s.Descriptor[i] = t.Descriptor(i)
		s.Mean[i] = t.Mean(i)
	}
	for r := 0; r < rows && r < t.Rows(); r++ {
		s.FeaturesPerRow[r] = uint16(t.FeaturesPerRow(r))
	}
	return s
}

// Encode serializes s into its fixed-size wire image, appending a 16-bit
// CRC-CCITT of the preceding bytes.
func Encode(s Snapshot) []byte {
	buf := make([]byte, Size)
	off := 0

	for i := 0; i < stereo.MaxFeatures; i++ {
		binary.LittleEndian.PutUint16(buf[off:], uint16(s.FeatureX[i]))
		off += 2
	}
	for i := 0; i < rows; i++ {
		binary.LittleEndian.PutUint16(buf[off:], s.FeaturesPerRow[i])
		off += 2
	}
	for i := 0; i < stereo.MaxFeatures; i++ {
		binary.LittleEndian.PutUint32(buf[off:], s.Descriptor[i])
		off += 4
	}
	for i := 0; i < stereo.MaxFeatures; i++ {
		buf[off] = s.Mean[i]
		off++
	}

	crc := checksum(buf[:off])
	binary.LittleEndian.PutUint16(buf[off:], crc)
	return buf
}

// Decode parses a wire image produced by Encode, verifying its trailing
// CRC-CCITT against the payload. A mismatch returns ErrCorrupt and the
// frame must be discarded.
func Decode(buf []byte) (Snapshot, error) {
	var s Snapshot
	if len(buf) != Size {
		return s, errors.Errorf("wire: expected %d bytes, got %d", Size, len(buf))
	}

	payload := buf[:len(buf)-2]
	want := binary.LittleEndian.Uint16(buf[len(buf)-2:])
	if checksum(payload) != want {
		return s, ErrCorrupt
	}

	off := 0
	for i := 0; i < stereo.MaxFeatures; i++ {
		s.FeatureX[i] = int16(binary.LittleEndian.Uint16(buf[off:]))
		off += 2
	}
	for i := 0; i < rows; i++ {
		s.FeaturesPerRow[i] = binary.LittleEndian.Uint16(buf[off:])
		off += 2
	}
	for i := 0; i < stereo.MaxFeatures; i++ {
		s.Descriptor[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	for i := 0; i < stereo.MaxFeatures; i++ {
		s.Mean[i] = buf[off]
		off++
	}
	return s, nil
}

// ToTable installs s into t as a value copy, suitable for passing directly
// to Engine.SetOpposite.
func (s Snapshot) ToTable(t *stereo.FeatureTable) {
	t.LoadSnapshot(s.FeatureX[:], s.FeaturesPerRow[:], s.Descriptor[:], s.Mean[:])
}
