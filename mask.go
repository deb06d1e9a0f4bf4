package bitpack

import (
	"unsafe"

	"github.com/wippyai/bitpack/errors"
)

// Unsigned is the constraint satisfied by every type that can back a
// record. The tilde terms admit user-defined types (a domain-specific
// register type declared as ~uint32, say) as long as their underlying
// type is an unsigned integer.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// bitSizeOf returns the width of T in bits. unsafe.Sizeof on a zero
// value is resolved at compile time, so this folds to a constant.
func bitSizeOf[T Unsigned]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Mask returns the value of type T with the low width bits set and all
// higher bits zero. A width of zero yields zero; a width equal to T's
// bit size yields all ones.
//
// Widths beyond T's bit size panic. Mask is always called with widths
// that were validated when the layout was built, so a violation here is
// a programming error, not a runtime condition to recover from.
func Mask[T Unsigned](width uint) T {
	if size := bitSizeOf[T](); width > size {
		panic(errors.New(errors.PhaseLayout, errors.KindUnsupportedWidth).
			Bits(width).
			Limit(size).
			Detail("mask width exceeds storage width").
			Build())
	}
	// A shift by the full bit size is defined in Go and produces zero,
	// so the all-ones case needs no special path.
	return T(1)<<width - 1
}
