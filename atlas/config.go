package atlas

import (
	"io/fs"
	"os"
	"path"
	"strings"
)

// Config holds loader configuration.
type Config struct {
	// FS is the file system fonts are read from.
	// Default: os.DirFS(".")
	FS fs.FS

	// Dir is the directory inside FS holding font files.
	// Default: "Assets/Fonts"
	Dir string

	// MetricsExt is the metrics document extension.
	// Default: ".json"
	MetricsExt string

	// ImageExt is the atlas image extension.
	// Default: ".png"
	ImageExt string

	// Mipmaps enables mipmap chain generation for atlas textures.
	// Default: true
	Mipmaps bool
}

// DefaultConfig returns the default configuration, reading
// Assets/Fonts/<name>.json and Assets/Fonts/<name>.png relative to the
// working directory.
func DefaultConfig() Config {
	return Config{
		FS:         os.DirFS("."),
		Dir:        "Assets/Fonts",
		MetricsExt: ".json",
		ImageExt:   ".png",
		Mipmaps:    true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FS == nil {
		return &ConfigError{Field: "FS", Reason: "must not be nil"}
	}
	if !fs.ValidPath(c.Dir) {
		return &ConfigError{Field: "Dir", Reason: "must be a valid slash-separated path"}
	}
	if !validExt(c.MetricsExt) {
		return &ConfigError{Field: "MetricsExt", Reason: "must start with '.' and contain no '/'"}
	}
	if !validExt(c.ImageExt) {
		return &ConfigError{Field: "ImageExt", Reason: "must start with '.' and contain no '/'"}
	}
	if c.MetricsExt == c.ImageExt {
		return &ConfigError{Field: "ImageExt", Reason: "must differ from MetricsExt"}
	}
	return nil
}

func validExt(ext string) bool {
	return len(ext) > 1 && ext[0] == '.' && !strings.Contains(ext, "/")
}

// MetricsPath returns the path of the metrics document for font name.
func (c *Config) MetricsPath(name string) string {
	return path.Join(c.Dir, name+c.MetricsExt)
}

// ImagePath returns the path of the atlas image for font name.
func (c *Config) ImagePath(name string) string {
	return path.Join(c.Dir, name+c.ImageExt)
}

// validName reports whether name maps to a file directly inside Dir.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\\") && fs.ValidPath(name)
}
