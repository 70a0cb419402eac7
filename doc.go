// Package msdftext lays out text for GPU instanced rendering with
// multi-channel signed distance field (MSDF) font atlases.
//
// # Overview
//
// An MSDF font is a pair of files produced by msdf-atlas-gen: a JSON metrics
// document (atlas descriptor, per-glyph plane and atlas bounds, advances,
// kerning, named variants) and an atlas image whose RGB channels encode
// directional distances. msdftext turns such a font plus a string into a
// sequence of positioned, UV-mapped quads that a renderer uploads to an
// instance buffer and draws with a single instanced call.
//
// # Quick Start
//
//	device, err := gpu.NewDeviceFromProvider(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache, err := atlas.New(atlas.DefaultConfig(), device)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cache.Load("Inter"); err != nil {
//	    log.Fatal(err)
//	}
//
//	engine := layout.NewEngine(cache)
//	glyphs, err := engine.Layout("Inter", font.Regular, "Hello", layout.Vec2{X: 20, Y: 40}, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	instances := gpu.NewInstanceBuffer(device, "")
//	if err := instances.Update(glyphs); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - font: metrics document, glyph and kerning tables, variant keys
//   - atlas: owned cache of loaded documents and uploaded atlas textures
//   - layout: the text layout engine producing glyph instances
//   - gpu: wgpu HAL texture upload and grow-only instance buffer
//
// # Coordinate System
//
// Layout output uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - The start position of a line is on its baseline
//
// UV coordinates are flipped so that V grows downward in the atlas.
package msdftext

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
