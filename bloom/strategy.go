package bloom

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Strategy selects how one probe position turns a value into a 64-bit hash.
type Strategy uint8

const (
	// StrategyXXHash is the fast general purpose hash of the raw value.
	StrategyXXHash Strategy = iota
	// StrategyMD5 digests the little-endian xxhash of the value with MD5.
	StrategyMD5
	// StrategySHA256 digests the little-endian xxhash of the value with SHA-256.
	StrategySHA256
	// StrategyMurmur3 runs murmur3 over the little-endian xxhash of the value.
	StrategyMurmur3

	strategyCount
)

// DefaultPalette is cycled to build the strategy sequence of a filter when no
// palette is configured.
var DefaultPalette = []Strategy{StrategyXXHash, StrategyMD5, StrategySHA256}

func (s Strategy) Valid() bool { return s < strategyCount }

func (s Strategy) String() string {
	switch s {
	case StrategyXXHash:
		return "xxhash"
	case StrategyMD5:
		return "md5"
	case StrategySHA256:
		return "sha256"
	case StrategyMurmur3:
		return "murmur3"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Sum64 returns the 64-bit hash of value under s.
func (s Strategy) Sum64(value []byte) uint64 {
	return s.probe(baseHash(value), 0)
}

// baseHash is the xxhash every strategy starts from. It is computed once per
// Insert or Check and shared by all k probes.
func baseHash(value []byte) uint64 {
	return xxhash.Sum64(value)
}

// probe derives the hash for s from the base hash of a value.
//
// round is the palette cycle the probe position falls in. Round 0, and every
// round when salting is off, hashes only the 8 byte little-endian base. A
// non-zero round appends its own little-endian encoding so positions sharing
// a strategy stop sharing a hash.
func (s Strategy) probe(base uint64, round uint64) uint64 {
	if s == StrategyXXHash && round == 0 {
		return base
	}

	var buf [ProbeBytes + SaltBytes]byte
	n := ProbeBytes
	writeU64LE(buf[:ProbeBytes], base)
	if round != 0 {
		writeU64LE(buf[ProbeBytes:], round)
		n += SaltBytes
	}

	switch s {
	case StrategyXXHash:
		return xxhash.Sum64(buf[:n])
	case StrategyMD5:
		sum := md5.Sum(buf[:n])
		return foldU64BE(sum[:])
	case StrategySHA256:
		sum := sha256.Sum256(buf[:n])
		return foldU64BE(sum[:])
	case StrategyMurmur3:
		return murmur3.Sum64(buf[:n])
	default:
		// New rejects unknown strategies.
		panic(fmt.Sprintf("bloom: %v has no hash", s))
	}
}

// cyclePalette returns k strategies, position j using palette[j%len(palette)].
func cyclePalette(palette []Strategy, k uint) []Strategy {
	strategies := make([]Strategy, k)
	for j := range strategies {
		strategies[j] = palette[j%len(palette)]
	}
	return strategies
}

func checkPalette(palette []Strategy) error {
	if len(palette) == 0 {
		return ErrEmptyPalette
	}
	for _, s := range palette {
		if !s.Valid() {
			return fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
		}
	}
	return nil
}
