package bitpack

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/bitpack/errors"
)

// Field is the cached shape of one packed field. Offsets and masks are
// derived once, when the layout is built; accessors only look them up.
type Field struct {
	Index  int
	Width  uint
	Offset uint   // sum of the widths of all preceding fields
	Mask   uint64 // unshifted: the low Width bits set
	Kind   Kind   // storage class for this field's width alone
}

// Layout is the immutable schema of a packed record: an ordered list of
// field widths, a storage preference, and everything derived from them.
// Field 0 occupies the lowest bits of the storage value.
type Layout struct {
	fields []Field
	total  uint
	kind   Kind
	pref   Preference
}

// New builds a layout from ordered field widths using DefaultSelector.
func New(pref Preference, widths ...uint) (*Layout, error) {
	return NewWithSelector(DefaultSelector, pref, widths...)
}

// NewWithSelector builds a layout using a caller-supplied storage
// selection policy. The selector is consulted once for the record's
// total width and once per field; its results are cached in the layout
// and it is never called again.
func NewWithSelector(sel Selector, pref Preference, widths ...uint) (*Layout, error) {
	if sel == nil {
		return nil, errors.InvalidInput(errors.PhaseLayout, "nil selector")
	}

	fields := make([]Field, len(widths))
	total := uint(0)
	for i, w := range widths {
		// Checked before the selector runs: a permissive policy may
		// accept any width, but no single field can span more than
		// one 64-bit storage word.
		if w > 64 {
			return nil, errors.New(errors.PhaseLayout, errors.KindUnsupportedWidth).
				Field(i).
				Bits(w).
				Limit(64).
				Detail("field wider than any storage class").
				Build()
		}
		fk, err := sel(pref, w)
		if err != nil {
			return nil, errors.New(errors.PhaseLayout, errors.KindUnsupportedWidth).
				Field(i).
				Bits(w).
				Cause(err).
				Detail("no storage class for field width %d", w).
				Build()
		}
		fields[i] = Field{
			Index:  i,
			Width:  w,
			Offset: total,
			Mask:   Mask[uint64](w),
			Kind:   fk,
		}
		total += w
	}

	kind, err := sel(pref, total)
	if err != nil {
		return nil, err
	}
	if int(kind) >= len(kindNames) {
		return nil, errors.InvalidInput(errors.PhaseLayout,
			fmt.Sprintf("selector returned unknown storage class %d", kind))
	}
	if kind.Bits() < total {
		return nil, errors.StorageTooNarrow(errors.PhaseLayout, kind.String(), kind.Bits(), total)
	}

	l := &Layout{
		fields: fields,
		total:  total,
		kind:   kind,
		pref:   pref,
	}
	Logger().Debug("layout built",
		zap.Int("fields", len(fields)),
		zap.Uint("total_bits", total),
		zap.Stringer("kind", kind),
		zap.Stringer("pref", pref))
	return l, nil
}

// MustNew is New for layouts declared as package-level variables; it
// panics on error.
func MustNew(pref Preference, widths ...uint) *Layout {
	l, err := New(pref, widths...)
	if err != nil {
		panic(err)
	}
	return l
}

// MustNewWithSelector is NewWithSelector, panicking on error.
func MustNewWithSelector(sel Selector, pref Preference, widths ...uint) *Layout {
	l, err := NewWithSelector(sel, pref, widths...)
	if err != nil {
		panic(err)
	}
	return l
}

// NumFields returns the number of fields in the layout.
func (l *Layout) NumFields() int {
	return len(l.fields)
}

// TotalBits returns the sum of all field widths.
func (l *Layout) TotalBits() uint {
	return l.total
}

// Kind returns the storage class selected for the whole record.
func (l *Layout) Kind() Kind {
	return l.kind
}

// Preference returns the storage preference the layout was built with.
func (l *Layout) Preference() Preference {
	return l.pref
}

// Field returns the cached shape of the field at index i. It panics if
// i is out of range: field indices are part of a program's fixed shape,
// and a bad one is a bug, not a runtime condition.
func (l *Layout) Field(i int) Field {
	if i < 0 || i >= len(l.fields) {
		panic(errors.IndexOutOfRange(errors.PhaseAccess, i, len(l.fields)))
	}
	return l.fields[i]
}

// Width returns the bit width of the field at index i.
func (l *Layout) Width(i int) uint {
	return l.Field(i).Width
}

// Offset returns the bit offset of the field at index i.
func (l *Layout) Offset(i int) uint {
	return l.Field(i).Offset
}

// Widths returns the ordered field widths as declared.
func (l *Layout) Widths() []uint {
	ws := make([]uint, len(l.fields))
	for i, f := range l.fields {
		ws[i] = f.Width
	}
	return ws
}

// Fields returns a copy of the cached field table.
func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}
