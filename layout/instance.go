package layout

// Vec2 is a 2D point or extent in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// UVRect is a normalized texture rectangle. VMin is the top edge.
type UVRect struct {
	UMin, VMin, UMax, VMax float32
}

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Black is the default glyph color.
var Black = Color{A: 1}

// IsZero reports whether c is the zero value (transparent black).
func (c Color) IsZero() bool {
	return c == Color{}
}

// GlyphInstance is one glyph quad ready for instanced drawing.
type GlyphInstance struct {
	// Position is the top-left corner of the quad in screen pixels.
	Position Vec2

	// Size is the quad extent in screen pixels.
	Size Vec2

	// UV is the atlas region sampled by the quad.
	UV UVRect

	// Color is the fill color.
	Color Color
}
