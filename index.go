package bitpack

// Index is the constraint for field index arguments: any integer-kinded
// type, which includes user-declared enumerations such as
//
//	type packetField int
//	const (
//	    packetVersion packetField = iota
//	    packetLength
//	)
//
// Named constants and plain integers both reduce to the same ordinal.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Get reads the field selected by idx. It is Record.Get for callers
// indexing with a named enumeration type: no conversion needed at the
// call site.
func Get[T Unsigned, I Index](r Record[T], idx I) T {
	return r.Get(int(idx))
}

// Set writes the field selected by idx; see Record.Set for the
// truncation policy.
func Set[T Unsigned, I Index](r *Record[T], idx I, v T) {
	r.Set(int(idx), v)
}
