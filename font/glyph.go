package font

// Glyph is the shape and advance data of one character.
//
// A glyph without plane and atlas bounds (a space, for example) still
// advances the cursor but has nothing to draw.
type Glyph struct {
	Unicode     rune    `json:"unicode"`
	Advance     float32 `json:"advance"`
	PlaneBounds *Bounds `json:"planeBounds,omitempty"`
	AtlasBounds *Bounds `json:"atlasBounds,omitempty"`
}

// HasShape returns true if the glyph has both plane and atlas bounds.
func (g *Glyph) HasShape() bool {
	return g.PlaneBounds != nil && g.AtlasBounds != nil
}

// GlyphTable maps a codepoint to its glyph.
type GlyphTable map[rune]Glyph

// NewGlyphTable builds a table from a glyph list.
// Later entries replace earlier ones with the same codepoint.
func NewGlyphTable(glyphs []Glyph) GlyphTable {
	t := make(GlyphTable, len(glyphs))
	for _, g := range glyphs {
		t[g.Unicode] = g
	}
	return t
}

// Lookup returns the glyph for r.
func (t GlyphTable) Lookup(r rune) (Glyph, bool) {
	g, ok := t[r]
	return g, ok
}

// Kerning is a pairwise advance adjustment in em units.
type Kerning struct {
	Unicode1 rune    `json:"unicode1"`
	Unicode2 rune    `json:"unicode2"`
	Advance  float32 `json:"advance"`
}

type kerningPair struct {
	first, second rune
}

// KerningTable indexes kerning pairs for lookup.
// The zero value is an empty table.
type KerningTable struct {
	pairs map[kerningPair]float32
}

// NewKerningTable builds a table from a kerning list.
func NewKerningTable(kerning []Kerning) KerningTable {
	if len(kerning) == 0 {
		return KerningTable{}
	}
	pairs := make(map[kerningPair]float32, len(kerning))
	for _, k := range kerning {
		pairs[kerningPair{k.Unicode1, k.Unicode2}] = k.Advance
	}
	return KerningTable{pairs: pairs}
}

// Lookup returns the adjustment applied between first and second.
func (t KerningTable) Lookup(first, second rune) (float32, bool) {
	adv, ok := t.pairs[kerningPair{first, second}]
	return adv, ok
}

// Len returns the number of pairs.
func (t KerningTable) Len() int {
	return len(t.pairs)
}
