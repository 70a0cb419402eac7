package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for font package.
var (
	// ErrMalformed is returned when a metrics document cannot be decoded.
	ErrMalformed = errors.New("font: malformed metrics document")

	// ErrInvalidAtlas is returned when the atlas descriptor has unusable dimensions.
	ErrInvalidAtlas = errors.New("font: invalid atlas descriptor")
)

// MalformedError describes why a metrics document failed to decode.
type MalformedError struct {
	// Offset is the byte offset of the failure, or -1 if unknown.
	Offset int64

	// Err is the underlying decoder error.
	Err error
}

func (e *MalformedError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("font: malformed metrics document at offset %d: %v", e.Offset, e.Err)
	}
	return "font: malformed metrics document: " + e.Err.Error()
}

// Unwrap returns the decoder error.
func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformed.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// AtlasError reports an atlas descriptor field that cannot be used.
type AtlasError struct {
	Field  string
	Reason string
}

func (e *AtlasError) Error() string {
	return "font: invalid atlas." + e.Field + ": " + e.Reason
}

// Is reports whether target is ErrInvalidAtlas.
func (e *AtlasError) Is(target error) bool {
	return target == ErrInvalidAtlas
}
