package bloom

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// valueEncMode encodes with the CBOR core deterministic rules, so values a
// caller considers equal (maps included) produce identical bytes.
var valueEncMode = mustEncMode(cbor.CoreDetEncOptions())

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// EncodeValue returns the bytes InsertValue and CheckValue hash for v.
//
// The encoding is not the raw byte form: InsertValue("a") and
// InsertString("a") set different buckets.
func EncodeValue(v any) ([]byte, error) {
	b, err := valueEncMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodableValue, err)
	}
	return b, nil
}

// InsertValue inserts the deterministic encoding of v. On error the filter is
// unchanged.
func (f *Filter) InsertValue(v any) error {
	b, err := EncodeValue(v)
	if err != nil {
		return err
	}
	f.Insert(b)
	return nil
}

// CheckValue reports whether the deterministic encoding of v is possibly in
// the filter.
func (f *Filter) CheckValue(v any) (bool, error) {
	b, err := EncodeValue(v)
	if err != nil {
		return false, err
	}
	return f.Check(b), nil
}
