// Package bytesutil defines helper methods for converting integers to byte slices.
package bytesutil

import (
	"encoding/binary"

	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// ToBytes returns integer x to bytes in little-endian format at the specified length.
// ToBytes(n, 8) is uint_to_bytes(n).
func ToBytes(x uint64, length int) []byte {
	if length < 0 {
		length = 0
	}
	makeLength := length
	if length < 8 {
		makeLength = 8
	}
	bytes := make([]byte, makeLength)
	binary.LittleEndian.PutUint64(bytes, x)
	return bytes[:length]
}

// Bytes8 returns integer x to bytes in little-endian format, x.to_bytes(8, 'little').
func Bytes8(x uint64) []byte {
	bytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(bytes, x)
	return bytes
}

// SlotToBytesBigEndian converts a slot to big endian bytes so keys sort by slot in the db.
func SlotToBytesBigEndian(slot primitives.Slot) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(slot))
	return b
}

// BytesToSlotBigEndian reverses SlotToBytesBigEndian. Short input is left padded with zeroes.
func BytesToSlotBigEndian(b []byte) primitives.Slot {
	if len(b) < 8 {
		b = append(make([]byte, 8-len(b)), b...)
	}
	return primitives.Slot(binary.BigEndian.Uint64(b))
}
