package bloom

import "math"

// maxUintFloat is the largest float64 that converts to uint without
// overflowing. float64(^uint(0)) rounds up to 2^64 (or 2^32), which is already
// out of range.
var maxUintFloat = math.Nextafter(float64(^uint(0)), 0)

// OptimalSize returns the bucket count m that holds n items at a false
// positive rate of p:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
func OptimalSize(n uint64, p float64) (uint, error) {
	if n == 0 {
		return 0, ErrInvalidItemCount
	}
	if !(p > 0 && p < 1) {
		return 0, ErrInvalidFalsePositiveRate
	}
	return ceilToUint(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
}

// OptimalHashCount returns the probe count k minimising the false positive
// rate of m buckets holding n items:
//
//	k = max(1, ceil(ln(2) * m / n))
func OptimalHashCount(m uint, n uint64) (uint, error) {
	if m == 0 {
		return 0, ErrInvalidSize
	}
	if n == 0 {
		return 0, ErrInvalidItemCount
	}
	k, err := ceilToUint(math.Ln2 * float64(m) / float64(n))
	if err != nil {
		return 0, err
	}
	return max(k, 1), nil
}

// NewWithEstimates returns a filter sized by OptimalSize and OptimalHashCount
// for n items at false positive rate p.
func NewWithEstimates(n uint64, p float64, opts ...Option) (*Filter, error) {
	m, err := OptimalSize(n, p)
	if err != nil {
		return nil, err
	}
	k, err := OptimalHashCount(m, n)
	if err != nil {
		return nil, err
	}
	return New(m, k, opts...)
}

func ceilToUint(x float64) (uint, error) {
	x = math.Ceil(x)
	if math.IsNaN(x) || x > maxUintFloat {
		return 0, ErrOverflow
	}
	if x < 0 {
		return 0, nil
	}
	return uint(x), nil
}
