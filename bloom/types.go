package bloom

import "errors"

const (
	// ProbeBytes is the width of the base hash fed to the digest strategies.
	ProbeBytes = 8

	// SaltBytes is the width of the round salt appended when salting is on.
	SaltBytes = 8
)

var (
	ErrInvalidSize      = errors.New("bloom: size must be greater than zero")
	ErrInvalidHashCount = errors.New("bloom: hash count must be greater than zero")
	ErrOverflow         = errors.New("bloom: size computation overflow")

	ErrEmptyPalette    = errors.New("bloom: palette must name at least one strategy")
	ErrUnknownStrategy = errors.New("bloom: unknown hash strategy")

	ErrInvalidItemCount         = errors.New("bloom: expected item count must be greater than zero")
	ErrInvalidFalsePositiveRate = errors.New("bloom: false positive rate must be in (0, 1)")

	ErrUnencodableValue = errors.New("bloom: value has no deterministic encoding")
)
