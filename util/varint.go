// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// the first eight bytes carry seven bits each with the top bit set
// when more bytes follow, a ninth byte (if needed) carries the
// remaining eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 0; i < Varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert a buffer starting with a Varint64 to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)
	for i, b := range buffer {
		if i == Varint64MaximumBytes-1 {
			return result | uint64(b)<<shift, i + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, i + 1
		}
		shift += 7
	}
	return 0, 0
}
