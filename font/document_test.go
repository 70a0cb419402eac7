package font

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testDocumentJSON = `{
  "atlas": {"type": "msdf", "distanceRange": 4, "distanceRangeMiddle": 0, "size": 48,
            "width": 100, "height": 100, "yOrigin": "bottom"},
  "metrics": {"emSize": 1, "lineHeight": 1.25, "ascender": 0.95, "descender": -0.3,
              "underlineY": -0.1, "underlineThickness": 0.05},
  "glyphs": [
    {"unicode": 32, "advance": 0.5},
    {"unicode": 72, "advance": 12,
     "planeBounds": {"left": 0, "bottom": 0, "right": 10, "top": 10},
     "atlasBounds": {"left": 0, "bottom": 90, "right": 10, "top": 100}},
    {"unicode": 105, "advance": 6,
     "planeBounds": {"left": 0, "bottom": 0, "right": 4, "top": 10},
     "atlasBounds": {"left": 10, "bottom": 90, "right": 14, "top": 100}}
  ],
  "kerning": [{"unicode1": 72, "unicode2": 105, "advance": -0.5}],
  "variants": [
    {"name": "Bold Italic Bold Normal",
     "glyphs": [{"unicode": 72, "advance": 13}],
     "kerning": [{"unicode1": 72, "unicode2": 72, "advance": 0.25}]},
    {"name": "Medium Normal Medium Normal",
     "metrics": {"emSize": 1, "lineHeight": 1.5},
     "glyphs": [{"unicode": 105, "advance": 7}]}
  ]
}`

// parseTestDocument decodes testDocumentJSON.
func parseTestDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseBytes([]byte(testDocumentJSON))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	return doc
}

func TestParse_Document(t *testing.T) {
	doc := parseTestDocument(t)

	wantAtlas := &Atlas{
		Type:          "msdf",
		DistanceRange: 4,
		Size:          48,
		Width:         100,
		Height:        100,
		YOrigin:       "bottom",
	}
	if diff := cmp.Diff(wantAtlas, doc.Atlas); diff != "" {
		t.Errorf("atlas mismatch (-want +got):\n%s", diff)
	}

	if doc.Metrics == nil || doc.Metrics.LineHeight != 1.25 {
		t.Errorf("metrics = %+v, want lineHeight 1.25", doc.Metrics)
	}
	if doc.LineHeight() != 1.25 {
		t.Errorf("LineHeight() = %v, want 1.25", doc.LineHeight())
	}
	if doc.GlyphCount() != 3 {
		t.Errorf("GlyphCount() = %d, want 3", doc.GlyphCount())
	}
	if len(doc.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(doc.Variants))
	}

	space, ok := doc.Glyphs.Lookup(' ')
	if !ok {
		t.Fatal("space glyph missing")
	}
	if space.HasShape() {
		t.Error("space glyph should have no shape")
	}
	if space.PlaneBounds != nil || space.AtlasBounds != nil {
		t.Error("space glyph bounds should be nil")
	}

	h, ok := doc.Glyphs.Lookup('H')
	if !ok {
		t.Fatal("H glyph missing")
	}
	want := Glyph{
		Unicode:     'H',
		Advance:     12,
		PlaneBounds: &Bounds{Left: 0, Bottom: 0, Right: 10, Top: 10},
		AtlasBounds: &Bounds{Left: 0, Bottom: 90, Right: 10, Top: 100},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("H glyph mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Minimal(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"glyphs": []}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Atlas != nil {
		t.Error("expected nil atlas")
	}
	if doc.Metrics != nil {
		t.Error("expected nil metrics")
	}
	if doc.Variants != nil {
		t.Error("expected nil variants")
	}
	if doc.LineHeight() != 0 {
		t.Errorf("LineHeight() = %v, want 0", doc.LineHeight())
	}
	if _, ok := doc.ResolveGlyph('A', Regular); ok {
		t.Error("expected absent glyph in empty document")
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	_, err := ParseBytes([]byte(`{"glyphs": [], "name": "Inter", "extra": {"a": 1}}`))
	if err != nil {
		t.Fatalf("unknown keys should be ignored, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset bool
	}{
		{"syntax error", `{"glyphs": [}`, true},
		{"wrong type", `{"glyphs": [{"unicode": "A"}]}`, true},
		{"atlas width string", `{"atlas": {"width": "wide"}}`, true},
		{"truncated", `{"glyphs": [`, false},
		{"empty input", ``, false},
		{"trailing data", `{"glyphs": []} {}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseBytes([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error, got document %+v", doc)
			}
			if doc != nil {
				t.Error("expected nil document on error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MalformedError, got %T", err)
			}
			if tt.wantOffset && me.Offset < 0 {
				t.Errorf("expected offset, got %d", me.Offset)
			}
		})
	}
}

func TestParse_TruncatedIsUnexpectedEOF(t *testing.T) {
	_, err := ParseBytes([]byte(`{"glyphs": [`))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestResolveGlyph_DefaultTable(t *testing.T) {
	doc := parseTestDocument(t)

	g, ok := doc.ResolveGlyph('H', Regular)
	if !ok {
		t.Fatal("expected H from default table")
	}
	if g.Advance != 12 {
		t.Errorf("advance = %v, want 12", g.Advance)
	}
}

func TestResolveGlyph_MatchedVariant(t *testing.T) {
	doc := parseTestDocument(t)

	tests := []struct {
		name    string
		variant string
	}{
		{"exact", BoldItalic},
		{"lower case", "bold italic bold normal"},
		{"upper case", "BOLD ITALIC BOLD NORMAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := doc.ResolveGlyph('H', tt.variant)
			if !ok {
				t.Fatal("expected H from variant")
			}
			if g.Advance != 13 {
				t.Errorf("advance = %v, want 13 (variant glyph)", g.Advance)
			}
		})
	}
}

func TestResolveGlyph_MatchedVariantDoesNotFallBack(t *testing.T) {
	doc := parseTestDocument(t)

	// The bold italic variant has no 'i'; the default table does.
	if _, ok := doc.ResolveGlyph('i', BoldItalic); ok {
		t.Error("matched variant must not fall back to the default table")
	}
	if _, ok := doc.ResolveGlyph('i', Regular); !ok {
		t.Error("default table should have 'i'")
	}
}

func TestResolveGlyph_NoTokenNormalization(t *testing.T) {
	doc := parseTestDocument(t)

	// Extra whitespace is not normalized: no variant matches, so the
	// default table answers.
	g, ok := doc.ResolveGlyph('H', "Bold  Italic Bold Normal")
	if !ok {
		t.Fatal("expected fallback to default table")
	}
	if g.Advance != 12 {
		t.Errorf("advance = %v, want 12 (default glyph)", g.Advance)
	}
}

func TestResolveGlyph_NoVariantsFallsBack(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"glyphs": [{"unicode": 65, "advance": 0.6}]}`))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	a1, ok1 := doc.ResolveGlyph('A', "AnyVariant")
	a2, ok2 := doc.ResolveGlyph('A', "Regular")
	if !ok1 || !ok2 {
		t.Fatalf("expected both lookups to succeed, got %v %v", ok1, ok2)
	}
	if diff := cmp.Diff(a1, a2); diff != "" {
		t.Errorf("fallback lookups differ (-any +regular):\n%s", diff)
	}
}

func TestResolveGlyph_Absent(t *testing.T) {
	doc := parseTestDocument(t)
	if g, ok := doc.ResolveGlyph('\n', Regular); ok {
		t.Errorf("expected newline to be absent, got %+v", g)
	}
}

func TestDocument_KerningFor(t *testing.T) {
	doc := parseTestDocument(t)

	adv, ok := doc.KerningFor(Regular).Lookup('H', 'i')
	if !ok || adv != -0.5 {
		t.Errorf("document kerning H,i = %v,%v want -0.5,true", adv, ok)
	}

	bold := doc.KerningFor(BoldItalic)
	if _, ok := bold.Lookup('H', 'i'); ok {
		t.Error("variant kerning should replace the document table")
	}
	if adv, ok := bold.Lookup('H', 'H'); !ok || adv != 0.25 {
		t.Errorf("variant kerning H,H = %v,%v want 0.25,true", adv, ok)
	}

	// Variant without kerning uses the document's pairs.
	if _, ok := doc.KerningFor(Medium).Lookup('H', 'i'); !ok {
		t.Error("variant without kerning should use document kerning")
	}
}

func TestDocument_MetricsFor(t *testing.T) {
	doc := parseTestDocument(t)

	if m := doc.MetricsFor(Medium); m == nil || m.LineHeight != 1.5 {
		t.Errorf("Medium metrics = %+v, want lineHeight 1.5", m)
	}
	if m := doc.MetricsFor(BoldItalic); m == nil || m.LineHeight != 1.25 {
		t.Errorf("BoldItalic metrics = %+v, want document metrics", m)
	}
}

func TestDocument_Variant(t *testing.T) {
	doc := parseTestDocument(t)

	v, ok := doc.Variant("medium normal medium normal")
	if !ok {
		t.Fatal("expected Medium variant")
	}
	if v.Name != Medium {
		t.Errorf("Name = %q, want %q", v.Name, Medium)
	}
	if _, ok := doc.Variant("Black Normal Black Normal"); ok {
		t.Error("unexpected variant match")
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Left: 1, Bottom: -2, Right: 4, Top: 3}
	if got := b.Width(); got != 3 {
		t.Errorf("Width() = %v, want 3", got)
	}
	if got := b.Height(); got != 5 {
		t.Errorf("Height() = %v, want 5", got)
	}
	if b.IsEmpty() {
		t.Error("expected non-empty bounds")
	}
	if !(Bounds{Left: 1, Right: 1, Top: 2}).IsEmpty() {
		t.Error("zero-width bounds should be empty")
	}
}

func TestAtlas_Validate(t *testing.T) {
	tests := []struct {
		name    string
		atlas   Atlas
		wantErr bool
	}{
		{"valid", Atlas{Width: 256, Height: 128}, false},
		{"zero width", Atlas{Width: 0, Height: 128}, true},
		{"negative height", Atlas{Width: 256, Height: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.atlas.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAtlas) {
				t.Errorf("expected ErrInvalidAtlas, got %v", err)
			}
		})
	}
}

func TestKerningTable(t *testing.T) {
	var empty KerningTable
	if _, ok := empty.Lookup('A', 'V'); ok {
		t.Error("zero table should be empty")
	}

	tbl := NewKerningTable([]Kerning{
		{Unicode1: 'A', Unicode2: 'V', Advance: -0.1},
		{Unicode1: 'V', Unicode2: 'A', Advance: -0.08},
	})
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	if adv, ok := tbl.Lookup('A', 'V'); !ok || adv != -0.1 {
		t.Errorf("Lookup(A,V) = %v,%v", adv, ok)
	}
	if _, ok := tbl.Lookup('V', 'V'); ok {
		t.Error("unexpected pair")
	}
}

func TestNewGlyphTable_LastWins(t *testing.T) {
	tbl := NewGlyphTable([]Glyph{
		{Unicode: 'x', Advance: 1},
		{Unicode: 'x', Advance: 2},
	})
	got, _ := tbl.Lookup('x')
	if diff := cmp.Diff(Glyph{Unicode: 'x', Advance: 2}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("duplicate glyph (-want +got):\n%s", diff)
	}
}
