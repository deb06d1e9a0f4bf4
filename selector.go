package bitpack

import "github.com/wippyai/bitpack/errors"

// Preference states whether storage selection should favor access
// speed or memory footprint.
type Preference uint8

const (
	// Fast favors the storage class with the best native arithmetic,
	// promoting to the platform word above one byte.
	Fast Preference = iota
	// Small favors the narrowest storage class that fits.
	Small
)

func (p Preference) String() string {
	switch p {
	case Fast:
		return "fast"
	case Small:
		return "small"
	}
	return "unknown"
}

// Selector maps a preference and a total bit count to a storage class.
// It must be pure: the same inputs always yield the same Kind. Layout
// construction calls it exactly once for the whole record and once per
// field, and caches the results.
//
// Callers may substitute their own policy via NewWithSelector, for
// example to pin every layout to u64 regardless of width.
type Selector func(pref Preference, totalBits uint) (Kind, error)

// DefaultSelector is the policy used by New. Widths of 0 through 8
// bits map to the u8 class, 9 through 16 to u16, 17 through 32 to u32,
// and 33 through 64 to u64. Anything wider is rejected: this engine
// stores a record in a single machine integer.
//
// Small returns the minimal class. Fast returns the minimal class for
// totals up to 8 bits and the native word above that, mirroring the
// uint_fast types of C: sub-word arithmetic costs extra zero-extension
// on common targets, while a single byte never does.
func DefaultSelector(pref Preference, totalBits uint) (Kind, error) {
	var k Kind
	switch {
	case totalBits <= 8:
		k = KindU8
	case totalBits <= 16:
		k = KindU16
	case totalBits <= 32:
		k = KindU32
	case totalBits <= 64:
		k = KindU64
	default:
		return 0, errors.UnsupportedWidth(errors.PhaseSelect, totalBits, 64)
	}
	if pref == Fast && totalBits > 8 && k < wordKind {
		k = wordKind
	}
	return k, nil
}
