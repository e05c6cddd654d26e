package bloomtesting

import (
	"fmt"

	"github.com/google/uuid"
)

// Membership is the read side of a filter.
type Membership interface {
	Check(value []byte) bool
}

// FormattedKeys returns n keys "<prefix>_<i>" for i in [start, start+n).
func FormattedKeys(prefix string, start, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("%s_%d", prefix, start+i))
	}
	return keys
}

// UUIDKeys returns n name based (SHA-1) uuids in the namespace derived from
// label. The same label and n always give the same keys, and different labels
// give disjoint keys.
func UUIDKeys(label string, n int) [][]byte {
	space := uuid.NewSHA1(uuid.NameSpaceOID, []byte(label))
	keys := make([][]byte, n)
	for i := range keys {
		id := uuid.NewSHA1(space, []byte(fmt.Sprintf("%d", i)))
		keys[i] = id[:]
	}
	return keys
}

// FalsePositiveRate returns the fraction of probes m reports as possibly
// present. The caller guarantees none of probes were inserted.
func FalsePositiveRate(m Membership, probes [][]byte) float64 {
	if len(probes) == 0 {
		return 0
	}
	hits := 0
	for _, p := range probes {
		if m.Check(p) {
			hits++
		}
	}
	return float64(hits) / float64(len(probes))
}
