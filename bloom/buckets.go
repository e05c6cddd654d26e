package bloom

import "github.com/bits-and-blooms/bitset"

// Buckets is the fixed length bit store backing a Filter. One bit per bucket.
//
// Indices are reduced modulo Len() by the hash scheme before they get here,
// so an out of range index is a programming error and panics.
type Buckets struct {
	bits *bitset.BitSet
	m    uint
}

// NewBuckets returns m zeroed buckets.
func NewBuckets(m uint) *Buckets {
	return &Buckets{bits: bitset.New(m), m: m}
}

// Set marks bucket i occupied.
func (b *Buckets) Set(i uint) {
	b.mustBeInRange(i)
	b.bits.Set(i)
}

// Get reports whether bucket i is occupied.
func (b *Buckets) Get(i uint) bool {
	b.mustBeInRange(i)
	return b.bits.Test(i)
}

// Reset marks every bucket unoccupied.
func (b *Buckets) Reset() {
	b.bits.ClearAll()
}

// Len returns the number of buckets.
func (b *Buckets) Len() uint { return b.m }

// Count returns the number of occupied buckets.
func (b *Buckets) Count() uint { return b.bits.Count() }

func (b *Buckets) mustBeInRange(i uint) {
	// bitset grows on an out of range Set and answers false on Test, both of
	// which would hide the bug.
	if i >= b.m {
		panic("bloom: bucket index out of range")
	}
}
