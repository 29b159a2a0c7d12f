/*
DESCRIPTION
  crc.go implements a table-driven CRC-CCITT (poly 0x1021, init 0xFFFF,
  MSB-first, no reflection, no xorout — the "CCITT-FALSE" convention
  commonly used over embedded synchronous links) for the FeatureTable wire
  image. Nothing in the standard library does 16-bit CRC-CCITT (crc32 and
  crc64 are the only table-driven CRCs on offer), so this is a small
  hand-rolled table-then-update implementation, built the same way as any
  other table-driven CRC.

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

const (
	crcPoly = 0x1021
	crcInit = 0xFFFF
)

var crcTable = makeCRCTable(crcPoly)

func makeCRCTable(poly uint16) *[256]uint16 {
	var t [256]uint16
	for i := range t {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// checksum computes the CRC-CCITT of b.
func checksum(b []byte) uint16 {
	crc := uint16(crcInit)
	for _, v := range b {
		crc = (crc << 8) ^ crcTable[byte(crc>>8)^v]
	}
	return crc
}
