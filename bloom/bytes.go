package bloom

import "encoding/binary"

func readU64BE(b []byte) uint64     { return binary.BigEndian.Uint64(b) }
func writeU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// foldU64BE folds digest into a uint64 as acc = acc<<8 | b over every byte.
// The accumulator wraps, so only the trailing eight bytes survive.
func foldU64BE(digest []byte) uint64 {
	if len(digest) < 8 {
		var acc uint64
		for _, b := range digest {
			acc = acc<<8 | uint64(b)
		}
		return acc
	}
	return readU64BE(digest[len(digest)-8:])
}
