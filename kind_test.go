package bitpack

import "testing"

func TestKind(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		bits uint
		max  uint64
	}{
		{KindU8, "u8", 8, 0xff},
		{KindU16, "u16", 16, 0xffff},
		{KindU32, "u32", 32, 0xffffffff},
		{KindU64, "u64", 64, 0xffffffffffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Bits(); got != tt.bits {
				t.Errorf("Bits() = %d, want %d", got, tt.bits)
			}
			if got := tt.kind.Max(); got != tt.max {
				t.Errorf("Max() = %#x, want %#x", got, tt.max)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if got := Kind(9).String(); got != "unknown" {
			t.Errorf("String() = %q, want %q", got, "unknown")
		}
	})
}

func TestPreferenceString(t *testing.T) {
	if Fast.String() != "fast" || Small.String() != "small" {
		t.Errorf("got %q/%q, want fast/small", Fast, Small)
	}
	if Preference(7).String() != "unknown" {
		t.Errorf("Preference(7) = %q, want unknown", Preference(7))
	}
}
