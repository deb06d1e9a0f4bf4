package inspect

import (
	"fmt"
	"strings"

	"github.com/wippyai/bitpack"
)

// FieldValue is one field's shape together with its decoded value.
type FieldValue struct {
	Index  int
	Width  uint
	Offset uint
	Value  uint64
}

// Fields decodes every field of l from the raw storage word.
func Fields(l *bitpack.Layout, raw uint64) []FieldValue {
	if l == nil {
		return nil
	}
	out := make([]FieldValue, l.NumFields())
	for i := range out {
		f := l.Field(i)
		out[i] = FieldValue{
			Index:  i,
			Width:  f.Width,
			Offset: f.Offset,
			Value:  (raw >> f.Offset) & f.Mask,
		}
	}
	return out
}

// Record decodes every field of a typed record.
func Record[T bitpack.Unsigned](r bitpack.Record[T]) []FieldValue {
	return Fields(r.Layout(), uint64(r.Raw()))
}

// Describe returns a one-layout summary: storage line plus a field
// table with widths, offsets, masks, and per-field storage classes.
func Describe(l *bitpack.Layout) string {
	if l == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "layout: %d fields, %d bits, storage %s (%s)\n",
		l.NumFields(), l.TotalBits(), l.Kind(), l.Preference())
	if l.NumFields() == 0 {
		return b.String()
	}

	b.WriteString("  field  width  offset  mask                kind\n")
	for _, f := range l.Fields() {
		fmt.Fprintf(&b, "  %-5d  %-5d  %-6d  %-#18x  %s\n",
			f.Index, f.Width, f.Offset, f.Mask, f.Kind)
	}
	return b.String()
}

// BitString renders the low TotalBits of raw in binary, most
// significant field first, with '|' separating adjacent fields:
//
//	[8, 9] raw 0x1ffff -> "111111111|11111111"
func BitString(l *bitpack.Layout, raw uint64) string {
	if l == nil || l.NumFields() == 0 {
		return ""
	}

	var b strings.Builder
	for i := l.NumFields() - 1; i >= 0; i-- {
		f := l.Field(i)
		v := (raw >> f.Offset) & f.Mask
		for bit := int(f.Width) - 1; bit >= 0; bit-- {
			if v>>uint(bit)&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if i > 0 {
			b.WriteByte('|')
		}
	}
	return b.String()
}
