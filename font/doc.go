// Package font holds the data model of an MSDF font: the metrics document
// produced by msdf-atlas-gen (atlas descriptor, font-wide metrics, glyph
// table, kerning pairs) and the optional named variants that share one atlas.
//
// # Coordinate Spaces
//
// Glyph plane bounds are expressed in em units with Y growing upward from the
// baseline. Atlas bounds are expressed in atlas pixels. Converting either into
// screen space is the job of package layout.
//
// # Glyph Resolution
//
// [Document.ResolveGlyph] selects the glyph table of the variant whose name
// matches the requested one (exact, case-insensitive) and falls back to the
// document's default table only when no variant matches. A matched variant
// that lacks the glyph answers "absent"; the default table is not consulted.
//
//	doc, err := font.ParseBytes(data)
//	if err != nil {
//	    return err
//	}
//	g, ok := doc.ResolveGlyph('A', font.BoldItalic)
package font
