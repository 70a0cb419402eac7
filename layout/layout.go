package layout

import (
	"unicode/utf16"

	"github.com/gogpu/msdftext/font"
)

// Options tunes Text. The zero value reproduces the plain behavior:
// black glyphs and no kerning.
type Options struct {
	// Color of every emitted glyph. The zero Color selects Black.
	Color Color

	// Kerning applies the pair adjustments of the metrics document between
	// consecutive resolved glyphs. Off by default: enabling it changes
	// positions relative to unkerned output.
	Kerning bool
}

func (o Options) color() Color {
	if o.Color.IsZero() {
		return Black
	}
	return o.Color
}

// GlyphUV maps atlas-pixel bounds to a normalized UV rectangle, flipping
// the V axis so the top edge of b becomes VMin.
func GlyphUV(a *font.Atlas, b font.Bounds) UVRect {
	w := float32(a.Width)
	h := float32(a.Height)
	return UVRect{
		UMin: b.Left / w,
		VMin: (h - b.Top) / h,
		UMax: b.Right / w,
		VMax: (h - b.Bottom) / h,
	}
}

// Text lays out text on a single line starting at start and returns one
// instance per drawable glyph, in input order.
//
// text is processed as UTF-16 code units. For each unit:
//   - a unit without a glyph in the selected variant is skipped and does not
//     advance the cursor;
//   - nothing is drawn or advanced when doc has no atlas descriptor;
//   - a glyph without both plane and atlas bounds only advances the cursor;
//   - otherwise an instance is emitted at cursor + (left, -top) * fontSize
//     with size (width, height) * fontSize.
//
// The cursor then moves right by advance * fontSize; Y never changes.
// A nil doc yields no instances.
func Text(doc *font.Document, variantName, text string, start Vec2, fontSize float32, opts Options) []GlyphInstance {
	if doc == nil || text == "" {
		return nil
	}

	var instances []GlyphInstance
	walk(doc, variantName, text, start, fontSize, opts, func(g *font.Glyph, cursor Vec2) {
		if instances == nil {
			instances = make([]GlyphInstance, 0, len(text))
		}
		pl := g.PlaneBounds
		instances = append(instances, GlyphInstance{
			Position: cursor.Add(Vec2{X: pl.Left, Y: -pl.Top}.Scale(fontSize)),
			Size:     Vec2{X: pl.Width(), Y: pl.Height()}.Scale(fontSize),
			UV:       GlyphUV(doc.Atlas, *g.AtlasBounds),
			Color:    opts.color(),
		})
	})
	return instances
}

// Measure returns the cursor position after laying out text, applying the
// same skip and advance rules as Text without building instances.
// Measure(...).X - start.X is the line width.
func Measure(doc *font.Document, variantName, text string, start Vec2, fontSize float32, opts Options) Vec2 {
	if doc == nil {
		return start
	}
	return walk(doc, variantName, text, start, fontSize, opts, nil)
}

// walk advances a cursor over text and calls emit for every glyph with a
// shape. It returns the final cursor.
func walk(doc *font.Document, variantName, text string, start Vec2, fontSize float32, opts Options, emit func(*font.Glyph, Vec2)) Vec2 {
	var kerning font.KerningTable
	if opts.Kerning {
		kerning = doc.KerningFor(variantName)
	}

	cursor := start
	var prev rune
	havePrev := false

	for _, unit := range utf16.Encode([]rune(text)) {
		r := rune(unit)

		g, ok := doc.ResolveGlyph(r, variantName)
		if !ok {
			continue
		}
		if doc.Atlas == nil {
			continue
		}

		if havePrev {
			if adj, ok := kerning.Lookup(prev, r); ok {
				cursor.X += adj * fontSize
			}
		}
		prev, havePrev = r, true

		if g.HasShape() && emit != nil {
			emit(&g, cursor)
		}
		cursor.X += g.Advance * fontSize
	}
	return cursor
}
