package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLayout  Phase = "layout"  // layout construction
	PhaseSelect  Phase = "select"  // storage class selection
	PhaseAccess  Phase = "access"  // record get/set
	PhaseInspect Phase = "inspect" // rendering and decoding
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedWidth Kind = "unsupported_width"
	KindStorageTooNarrow Kind = "storage_too_narrow"
	KindIndexOutOfRange  Kind = "index_out_of_range"
	KindValueOverflow    Kind = "value_overflow"
	KindInvalidInput     Kind = "invalid_input"
)

// noField marks the Field slot as unused.
const noField = -1

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Field  int  // field index, or -1 when not field-specific
	Bits   uint // offending bit count or field count
	Limit  uint // largest permitted value for Bits
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != noField {
		b.WriteString(" at field ")
		b.WriteString(strconv.Itoa(e.Field))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Field: noField,
		},
	}
}

// Field sets the field index
func (b *Builder) Field(i int) *Builder {
	b.err.Field = i
	return b
}

// Bits sets the offending bit count
func (b *Builder) Bits(n uint) *Builder {
	b.err.Bits = n
	return b
}

// Limit sets the largest permitted bit count
func (b *Builder) Limit(n uint) *Builder {
	b.err.Limit = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedWidth reports a bit count beyond what any storage class holds
func UnsupportedWidth(phase Phase, bits, limit uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedWidth,
		Field:  noField,
		Bits:   bits,
		Limit:  limit,
		Detail: fmt.Sprintf("storage beyond %d bits unsupported (layout needs %d)", limit, bits),
	}
}

// StorageTooNarrow reports a storage class unable to hold a layout's bits
func StorageTooNarrow(phase Phase, storage string, have, need uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStorageTooNarrow,
		Field:  noField,
		Bits:   need,
		Limit:  have,
		Detail: fmt.Sprintf("storage %s holds %d bits, layout needs %d", storage, have, need),
	}
}

// IndexOutOfRange reports a field index past the layout's field count
func IndexOutOfRange(phase Phase, index, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIndexOutOfRange,
		Field:  index,
		Bits:   uint(count),
		Detail: fmt.Sprintf("field index %d out of range (layout has %d fields)", index, count),
	}
}

// ValueOverflow reports a value wider than its target field
func ValueOverflow(phase Phase, index int, value uint64, width uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueOverflow,
		Field:  index,
		Bits:   width,
		Detail: fmt.Sprintf("value %#x overflows the %d-bit field", value, width),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Field:  noField,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Field:  noField,
		Detail: detail,
		Cause:  cause,
	}
}
