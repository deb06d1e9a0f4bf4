package bitpack

import (
	"fmt"

	"github.com/wippyai/bitpack/errors"
)

// Record is a packed record: one storage value of type T carved into
// the fields of its layout. T must be at least as wide as the layout's
// total bit count; Layout.Kind names the class the selector picked.
//
// A Record is an ordinary value. Copying it copies the bits; two
// records with equal raw values are indistinguishable.
type Record[T Unsigned] struct {
	layout *Layout
	data   T
}

// NewRecord returns a zeroed record over l. It fails if T cannot hold
// the layout's total bit count.
func NewRecord[T Unsigned](l *Layout) (Record[T], error) {
	var zero Record[T]
	if l == nil {
		return zero, errors.InvalidInput(errors.PhaseAccess, "nil layout")
	}
	if size := bitSizeOf[T](); size < l.total {
		return zero, errors.StorageTooNarrow(errors.PhaseAccess,
			fmt.Sprintf("%T", zero.data), size, l.total)
	}
	return Record[T]{layout: l}, nil
}

// NewRecordFrom returns a record over l seeded with raw. The value is
// taken as-is, field boundaries are not consulted; it is the caller's
// responsibility that raw is meaningful for the layout.
func NewRecordFrom[T Unsigned](l *Layout, raw T) (Record[T], error) {
	r, err := NewRecord[T](l)
	if err != nil {
		return r, err
	}
	r.data = raw
	return r, nil
}

// MustRecord is NewRecord, panicking on error.
func MustRecord[T Unsigned](l *Layout) Record[T] {
	r, err := NewRecord[T](l)
	if err != nil {
		panic(err)
	}
	return r
}

// MustRecordFrom is NewRecordFrom, panicking on error.
func MustRecordFrom[T Unsigned](l *Layout, raw T) Record[T] {
	r, err := NewRecordFrom(l, raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the value of the field at index i: one shift, one mask.
// It panics if i is out of range.
func (r Record[T]) Get(i int) T {
	f := r.layout.Field(i)
	return (r.data >> f.Offset) & T(f.Mask)
}

// Set writes v into the field at index i, clearing the field's bits
// and or-ing in the low Width bits of v. Bits of v beyond the field's
// width are silently discarded; callers needing a hard guarantee must
// validate before calling. Under the bitpackcheck build tag an
// oversized v panics instead.
func (r *Record[T]) Set(i int, v T) {
	f := r.layout.Field(i)
	if overflowChecks && uint64(v)&^f.Mask != 0 {
		panic(errors.ValueOverflow(errors.PhaseAccess, i, uint64(v), f.Width))
	}
	r.data = r.data&^(T(f.Mask)<<f.Offset) | (v&T(f.Mask))<<f.Offset
}

// Raw returns the whole storage value.
func (r Record[T]) Raw() T {
	return r.data
}

// SetRaw replaces the whole storage value, bypassing field boundaries.
func (r *Record[T]) SetRaw(raw T) {
	r.data = raw
}

// Layout returns the layout the record was built over.
func (r Record[T]) Layout() *Layout {
	return r.layout
}
