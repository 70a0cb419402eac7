// Package layout turns a string into positioned, UV-mapped glyph quads for
// instanced MSDF rendering.
//
// [Text] walks the string one UTF-16 code unit at a time, resolves each unit
// through a [font.Document] and emits one [GlyphInstance] per drawable glyph.
// Positions are in Y-down screen space: the cursor starts at the baseline
// origin, and plane bounds (Y-up em space) are flipped when scaled by the
// font size. UV rectangles are normalized by the atlas size with the V axis
// flipped, so the top of a glyph in the atlas maps to the smaller V.
//
// Text is a single line. There is no wrapping, no newline handling and no
// shaping; a character without a glyph is dropped together with its advance.
//
// [Engine] binds layout to an [atlas.Cache] so callers can lay out by font
// name, and [Batcher] groups the resulting instances per font and variant so
// a renderer issues one instanced draw per group.
package layout
