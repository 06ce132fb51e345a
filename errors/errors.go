package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig   Phase = "config"   // handle layout validation
	PhaseGenerate Phase = "generate" // source emission
	PhaseDecode   Phase = "decode"   // image decoding
	PhaseEncode   Phase = "encode"   // image encoding
	PhaseResize   Phase = "resize"   // image resampling
	PhaseShutdown Phase = "shutdown" // subsystem teardown
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidBits        Kind = "invalid_bits"
	KindUnsupportedWidth   Kind = "unsupported_width"
	KindInvalidIdentifier  Kind = "invalid_identifier"
	KindDuplicateType      Kind = "duplicate_type"
	KindInvalidManifest    Kind = "invalid_manifest"
	KindInvalidData        Kind = "invalid_data"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindEmptyImage         Kind = "empty_image"
	KindInvalidChannels    Kind = "invalid_channels"
	KindBuffersOutstanding Kind = "buffers_outstanding"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindIO                 Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // handle or Go type involved, if any
	File   string // file involved, if any
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" || e.File != "" {
		b.WriteString(": ")
		if e.Type != "" && e.File != "" {
			b.WriteString("type ")
			b.WriteString(e.Type)
			b.WriteString(", file ")
			b.WriteString(e.File)
		} else if e.Type != "" {
			b.WriteString("type ")
			b.WriteString(e.Type)
		} else {
			b.WriteString("file ")
			b.WriteString(e.File)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.File != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the handle or Go type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// File sets the file name
func (b *Builder) File(f string) *Builder {
	b.err.File = f
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// ZeroBits creates an error for a zero-width handle field
func ZeroBits(phase Phase, field string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBits,
		Detail: fmt.Sprintf("%s bit width must be greater than 0", field),
	}
}

// WidthMismatch creates an error for a layout that does not fill its word
func WidthMismatch(phase Phase, indexBits, cycleBits, width uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBits,
		Detail: fmt.Sprintf("index and cycle bits must sum to the word width %d (got %d+%d)", width, indexBits, cycleBits),
		Value:  indexBits + cycleBits,
	}
}

// UnsupportedWidth creates an error for a total width outside the standard set
func UnsupportedWidth(total uint) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindUnsupportedWidth,
		Detail: fmt.Sprintf("index and cycle bits must sum to 8, 16, 32, 64, 128 or 256 (got %d)", total),
		Value:  total,
	}
}

// InvalidIdentifier creates an error for an unusable handle type name
func InvalidIdentifier(name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidIdentifier,
		Type:   name,
		Detail: fmt.Sprintf("type name %q is not an exported Go identifier", name),
	}
}

// DuplicateType creates an error for a handle type declared twice
func DuplicateType(name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindDuplicateType,
		Type:   name,
		Detail: fmt.Sprintf("handle type %q declared more than once", name),
	}
}

// ManifestFailed creates a manifest parsing error
func ManifestFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidManifest,
		File:   path,
		Detail: "parse manifest",
		Cause:  cause,
	}
}

// DecodeFailed creates an image decoding error
func DecodeFailed(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		File:   file,
		Detail: "decode image",
		Cause:  cause,
	}
}

// UnknownFormat creates an error for an unrecognized image format
func UnknownFormat(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedFormat,
		File:   file,
		Detail: "image format not recognized",
		Cause:  cause,
	}
}

// EmptyImage creates an error for a decode that produced no pixels
func EmptyImage(file string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindEmptyImage,
		File:   file,
		Detail: "decoder returned no pixels",
	}
}

// InvalidChannels creates an error for an unusable channel count
func InvalidChannels(phase Phase, n int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidChannels,
		Detail: fmt.Sprintf("channel count must be between 1 and 4 (got %d)", n),
		Value:  n,
	}
}

// BuffersOutstanding creates a shutdown error for unreleased pixel buffers
func BuffersOutstanding(buffers int, bytes int64) *Error {
	return &Error{
		Phase:  PhaseShutdown,
		Kind:   KindBuffersOutstanding,
		Detail: fmt.Sprintf("%d pixel buffer(s) still allocated (%d bytes)", buffers, bytes),
		Value:  buffers,
	}
}

// ReadFailed creates a file read error
func ReadFailed(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIO,
		File:   file,
		Detail: "read file",
		Cause:  cause,
	}
}

// WriteFailed creates a file write error
func WriteFailed(phase Phase, file string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		File:   file,
		Detail: "write file",
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
