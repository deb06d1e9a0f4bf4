package bitpack

import "math/bits"

// Kind tags one of the storage classes a layout can be backed by. Go
// has no way to name a type from a value, so the piecewise storage
// selection is expressed over this closed set of tags: the selector
// resolves a Kind once when the layout is built, and the caller
// instantiates Record with the matching concrete type.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
)

var kindNames = [...]string{
	KindU8:  "u8",
	KindU16: "u16",
	KindU32: "u32",
	KindU64: "u64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Bits returns the width of the storage class in bits.
func (k Kind) Bits() uint {
	return uint(8) << k
}

// Max returns the largest value the storage class can hold.
func (k Kind) Max() uint64 {
	return uint64(1)<<k.Bits() - 1
}

// wordKind is the storage class matching the platform's native word.
// The fast preference promotes to it.
var wordKind = func() Kind {
	if bits.UintSize == 64 {
		return KindU64
	}
	return KindU32
}()
