package bloom

import (
	"math"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Filter is a Bloom filter over byte string values.
//
// Check returning false means the value was never inserted since the last
// Clear. Check returning true means it possibly was.
//
// A Filter is not safe for concurrent use. See SyncFilter.
type Filter struct {
	buckets    *Buckets
	strategies []Strategy
	palette    int
	salted     bool
	items      uint64
	log        logger.Logger
}

// New returns an empty filter with size buckets and hashCount probes per
// value. The probe strategies cycle DefaultPalette unless WithPalette is given.
func New(size uint, hashCount uint, opts ...Option) (*Filter, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	if hashCount == 0 {
		return nil, ErrInvalidHashCount
	}

	o := newFilterOptions(opts...)
	if err := checkPalette(o.Palette); err != nil {
		return nil, err
	}

	f := &Filter{
		buckets:    NewBuckets(size),
		strategies: cyclePalette(o.Palette, hashCount),
		palette:    len(o.Palette),
		salted:     o.SaltedProbes,
		log:        o.Log,
	}
	if f.log != nil {
		f.log.Debugf("bloom: new filter m=%d k=%d palette=%v salted=%v", size, hashCount, o.Palette, f.salted)
	}
	return f, nil
}

// Insert adds value to the filter and counts the call, even if value was
// inserted before.
func (f *Filter) Insert(value []byte) {
	base := baseHash(value)
	for j := range f.strategies {
		f.buckets.Set(f.index(base, j))
	}
	f.items++
}

func (f *Filter) InsertString(s string) { f.Insert([]byte(s)) }

// Check reports whether value is possibly in the filter.
func (f *Filter) Check(value []byte) bool {
	base := baseHash(value)
	for j := range f.strategies {
		if !f.buckets.Get(f.index(base, j)) {
			return false
		}
	}
	return true
}

func (f *Filter) CheckString(s string) bool { return f.Check([]byte(s)) }

// Clear empties the filter. The size and strategies are kept.
func (f *Filter) Clear() {
	f.buckets.Reset()
	if f.log != nil && f.items != 0 {
		f.log.Debugf("bloom: cleared %d items from m=%d", f.items, f.buckets.Len())
	}
	f.items = 0
}

// ErrorChance estimates the current false positive probability as
//
//	(1 - e^(-k*n/m))^k
//
// for k probes, n insertions and m buckets. It assumes independent probes,
// which the palette only approximates once k exceeds its size.
func (f *Filter) ErrorChance() float32 {
	k := float64(len(f.strategies))
	n := float64(f.items)
	m := float64(f.buckets.Len())
	return float32(math.Pow(1-math.Exp(-k*n/m), k))
}

// Capacity returns the number of buckets.
func (f *Filter) Capacity() uint { return f.buckets.Len() }

// Len returns the number of Insert calls since construction or the last Clear.
func (f *Filter) Len() uint64 { return f.items }

func (f *Filter) IsEmpty() bool { return f.items == 0 }

func (f *Filter) HashCount() uint { return uint(len(f.strategies)) }

// Strategies returns a copy of the per position strategy sequence.
func (f *Filter) Strategies() []Strategy {
	return append([]Strategy(nil), f.strategies...)
}

func (f *Filter) Salted() bool { return f.salted }

// FillRatio returns the measured fraction of occupied buckets.
func (f *Filter) FillRatio() float64 {
	return float64(f.buckets.Count()) / float64(f.buckets.Len())
}

// BucketIndex returns the bucket probed for value at position, which must be
// in [0, HashCount()).
func (f *Filter) BucketIndex(value []byte, position int) uint {
	return f.index(baseHash(value), position)
}

func (f *Filter) index(base uint64, position int) uint {
	var round uint64
	if f.salted {
		round = uint64(position / f.palette)
	}
	h := f.strategies[position].probe(base, round)
	return uint(h % uint64(f.buckets.Len()))
}
