// Package bitpack packs ordered, fixed-width bit fields into a single
// unsigned integer and provides type-checked accessors over them.
//
// A layout declares field widths once; everything derived from it (field
// offsets, masks, the backing storage class) is computed at construction
// and cached, so Get and Set reduce to one or two shift/mask operations
// on the stored value. The intended uses are protocol headers, hardware
// style flag registers, and compact in-memory records where hand-written
// shift arithmetic is easy to get wrong.
//
// # Architecture Overview
//
// The repository is organized as a small core with supporting packages:
//
//	bitpack/         Root package: mask primitive, storage selection, Layout, Record
//	├── errors/      Structured error types for debugging
//	├── inspect/     Human-readable layout and record rendering
//	├── cmd/bitpack  CLI for describing layouts and editing records interactively
//	└── examples/    Usage example programs
//
// # Quick Start
//
// Declare a layout and pack values into a record:
//
//	l := bitpack.MustNew(bitpack.Small, 8, 9)
//	fmt.Println(l.TotalBits()) // 17
//	fmt.Println(l.Kind())      // u32
//
//	r := bitpack.MustRecord[uint32](l)
//	r.Set(0, 255)
//	r.Set(1, 511)
//	fmt.Println(r.Get(1)) // 511
//	fmt.Println(r.Raw())  // 0x1ffff
//
// Fields may be addressed by a named enumeration instead of raw ordinals:
//
//	type hdr int
//	const (
//	    hdrVersion hdr = iota
//	    hdrLength
//	)
//	bitpack.Set(&r, hdrLength, 511)
//	v := bitpack.Get(r, hdrVersion)
//
// # Storage Selection
//
// The storage class backing a layout is chosen by a Selector, a pure
// function of (preference, total bits). The default selector picks the
// smallest class that fits (Small) or promotes to the native word (Fast).
// Callers may substitute their own policy via NewWithSelector.
//
// # Error Model
//
// Malformed layouts (total width beyond 64 bits, a selector result too
// narrow for the declared fields) fail at construction. Out-of-range
// field indices panic: layouts are fixed shapes, and indexing past the
// field count is a programming error on par with indexing past the end
// of an array. The only advisory check is value overflow on Set, enabled
// by the bitpackcheck build tag; without the tag oversized values are
// silently truncated to the field width.
//
// # Thread Safety
//
// A Layout is immutable after construction and safe for concurrent use.
// A Record is a plain value; concurrent mutation of a shared Record is a
// data race like any shared scalar and must be synchronized by the caller.
package bitpack
