package bitpack

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/bitpack/errors"
)

func TestDefaultSelectorSmall(t *testing.T) {
	tests := []struct {
		name string
		bits uint
		want Kind
	}{
		{"zero", 0, KindU8},
		{"one", 1, KindU8},
		{"eight", 8, KindU8},
		{"nine", 9, KindU16},
		{"sixteen", 16, KindU16},
		{"seventeen", 17, KindU32},
		{"thirty_two", 32, KindU32},
		{"thirty_three", 33, KindU64},
		{"sixty_four", 64, KindU64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultSelector(Small, tt.bits)
			if err != nil {
				t.Fatalf("DefaultSelector(Small, %d): %v", tt.bits, err)
			}
			if got != tt.want {
				t.Errorf("DefaultSelector(Small, %d) = %s, want %s", tt.bits, got, tt.want)
			}
		})
	}
}

func TestDefaultSelectorFast(t *testing.T) {
	// The fast class must always hold the bits and must keep a single
	// byte at a single byte, mirroring the C uint_fast family.
	for bits := uint(0); bits <= 64; bits++ {
		k, err := DefaultSelector(Fast, bits)
		if err != nil {
			t.Fatalf("DefaultSelector(Fast, %d): %v", bits, err)
		}
		if k.Bits() < bits {
			t.Errorf("DefaultSelector(Fast, %d) = %s: too narrow", bits, k)
		}
		if bits <= 8 && k != KindU8 {
			t.Errorf("DefaultSelector(Fast, %d) = %s, want u8", bits, k)
		}
		if bits > 8 && k < wordKind {
			t.Errorf("DefaultSelector(Fast, %d) = %s, want at least %s", bits, k, wordKind)
		}
	}
}

func TestSelectorMonotonic(t *testing.T) {
	for _, pref := range []Preference{Fast, Small} {
		t.Run(pref.String(), func(t *testing.T) {
			prev := KindU8
			for bits := uint(0); bits <= 64; bits++ {
				k, err := DefaultSelector(pref, bits)
				if err != nil {
					t.Fatalf("DefaultSelector(%s, %d): %v", pref, bits, err)
				}
				if k < prev {
					t.Fatalf("DefaultSelector(%s, %d) = %s narrower than %s at fewer bits",
						pref, bits, k, prev)
				}
				prev = k
			}
		})
	}
}

func TestDefaultSelectorTooWide(t *testing.T) {
	for _, pref := range []Preference{Fast, Small} {
		_, err := DefaultSelector(pref, 65)
		if err == nil {
			t.Fatalf("DefaultSelector(%s, 65): expected error", pref)
		}
		want := &errors.Error{Phase: errors.PhaseSelect, Kind: errors.KindUnsupportedWidth}
		if !stderrors.Is(err, want) {
			t.Errorf("DefaultSelector(%s, 65) = %v, want unsupported_width", pref, err)
		}
	}
}

func TestCustomSelector(t *testing.T) {
	// Pin every layout to u64 regardless of width or preference.
	always64 := func(Preference, uint) (Kind, error) {
		return KindU64, nil
	}

	l, err := NewWithSelector(always64, Small, 3, 2)
	if err != nil {
		t.Fatalf("NewWithSelector: %v", err)
	}
	if l.Kind() != KindU64 {
		t.Errorf("Kind() = %s, want u64", l.Kind())
	}

	r := MustRecord[uint64](l)
	r.Set(0, 5)
	r.Set(1, 3)
	if r.Get(0) != 5 || r.Get(1) != 3 {
		t.Errorf("got %d/%d, want 5/3", r.Get(0), r.Get(1))
	}
}

func TestCustomSelectorTooNarrow(t *testing.T) {
	always8 := func(Preference, uint) (Kind, error) {
		return KindU8, nil
	}

	_, err := NewWithSelector(always8, Small, 8, 9)
	if err == nil {
		t.Fatal("expected error for u8 storage over a 17-bit layout")
	}
	want := &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindStorageTooNarrow}
	if !stderrors.Is(err, want) {
		t.Errorf("got %v, want storage_too_narrow", err)
	}
}

func TestCustomSelectorFieldTooWide(t *testing.T) {
	// A permissive policy can accept any total, but a single field
	// beyond 64 bits must still fail with an error, not a panic.
	always64 := func(Preference, uint) (Kind, error) {
		return KindU64, nil
	}

	_, err := NewWithSelector(always64, Small, 96)
	if err == nil {
		t.Fatal("expected error for a 96-bit field")
	}
	want := &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindUnsupportedWidth}
	if !stderrors.Is(err, want) {
		t.Errorf("got %v, want unsupported_width", err)
	}

	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		t.Fatal("As() failed")
	}
	if structured.Field != 0 {
		t.Errorf("Field = %d, want 0", structured.Field)
	}
}

func TestCustomSelectorUnknownKind(t *testing.T) {
	bogus := func(Preference, uint) (Kind, error) {
		return Kind(42), nil
	}

	if _, err := NewWithSelector(bogus, Small, 4); err == nil {
		t.Fatal("expected error for unknown storage class")
	}
}

func TestNilSelector(t *testing.T) {
	if _, err := NewWithSelector(nil, Small, 4); err == nil {
		t.Fatal("expected error for nil selector")
	}
}
