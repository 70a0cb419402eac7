package atlas

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for atlas package.
var (
	// ErrNotLoaded is returned when a font is requested before Load succeeded for it.
	ErrNotLoaded = errors.New("atlas: font not loaded")

	// ErrMissingAsset is returned when a metrics or atlas file does not exist.
	ErrMissingAsset = errors.New("atlas: asset file not found")

	// ErrMalformedImage is returned when the atlas image cannot be decoded.
	ErrMalformedImage = errors.New("atlas: malformed atlas image")

	// ErrInvalidName is returned when a font name cannot be mapped to a path.
	ErrInvalidName = errors.New("atlas: invalid font name")

	// ErrClosed is returned when loading into a closed cache.
	ErrClosed = errors.New("atlas: cache is closed")
)

// Resource names used in NotLoadedError.
const (
	ResourceMetrics = "metrics"
	ResourceTexture = "atlas texture"
)

// NotLoadedError reports which resource of which font was never loaded.
type NotLoadedError struct {
	Font     string
	Resource string
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("atlas: font %q not loaded (%s)", e.Font, e.Resource)
}

// Is reports whether target is ErrNotLoaded.
func (e *NotLoadedError) Is(target error) bool {
	return target == ErrNotLoaded
}

// AssetError is returned when a font file cannot be read or decoded.
type AssetError struct {
	Font string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("atlas: load font %q from %s: %v", e.Font, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *AssetError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMissingAsset and the file did not exist.
func (e *AssetError) Is(target error) bool {
	return target == ErrMissingAsset && errors.Is(e.Err, fs.ErrNotExist)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
