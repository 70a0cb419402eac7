package font

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Document is the metrics document of one font family: atlas descriptor,
// font-wide metrics, the default glyph table and optional variants.
//
// A Document is immutable after decoding and safe for concurrent reads.
type Document struct {
	Atlas    *Atlas
	Metrics  *Metrics
	Glyphs   GlyphTable
	Kerning  []Kerning
	Variants []Variant

	kerning KerningTable
}

// documentJSON mirrors the on-disk layout of a metrics file.
type documentJSON struct {
	Atlas    *Atlas        `json:"atlas"`
	Metrics  *Metrics      `json:"metrics"`
	Glyphs   []Glyph       `json:"glyphs"`
	Kerning  []Kerning     `json:"kerning"`
	Variants []variantJSON `json:"variants"`
}

type variantJSON struct {
	Name    string    `json:"name"`
	Metrics *Metrics  `json:"metrics"`
	Glyphs  []Glyph   `json:"glyphs"`
	Kerning []Kerning `json:"kerning"`
}

// Parse decodes a metrics document from r.
// The whole input must be a single JSON object; trailing data is rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	var raw documentJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, malformed(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return nil, malformed(err)
	}

	return newDocument(&raw), nil
}

// ParseBytes decodes a metrics document from data.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

func newDocument(raw *documentJSON) *Document {
	doc := &Document{
		Atlas:   raw.Atlas,
		Metrics: raw.Metrics,
		Glyphs:  NewGlyphTable(raw.Glyphs),
		Kerning: raw.Kerning,
		kerning: NewKerningTable(raw.Kerning),
	}
	if raw.Variants != nil {
		doc.Variants = make([]Variant, len(raw.Variants))
		for i, v := range raw.Variants {
			doc.Variants[i] = Variant{
				Name:    v.Name,
				Metrics: v.Metrics,
				Glyphs:  NewGlyphTable(v.Glyphs),
				Kerning: v.Kerning,
				kerning: NewKerningTable(v.Kerning),
			}
		}
	}
	return doc
}

// malformed wraps a decoder error, keeping the offset when the decoder
// reports one.
func malformed(err error) error {
	offset := int64(-1)
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		err = io.ErrUnexpectedEOF
	}
	return &MalformedError{Offset: offset, Err: err}
}

// Variant returns the variant whose name matches name, ignoring case.
func (d *Document) Variant(name string) (*Variant, bool) {
	for i := range d.Variants {
		if matchVariantName(d.Variants[i].Name, name) {
			return &d.Variants[i], true
		}
	}
	return nil, false
}

// ResolveGlyph finds the glyph to draw for codepoint r in the named variant.
//
// When a variant matches, its table alone answers, even if it lacks r.
// When none matches (or the document has no variants) the default table
// answers. An absent glyph is reported with ok == false, never an error.
func (d *Document) ResolveGlyph(r rune, variantName string) (Glyph, bool) {
	if v, ok := d.Variant(variantName); ok {
		return v.Glyph(r)
	}
	return d.Glyphs.Lookup(r)
}

// KerningFor returns the kerning pairs that apply to the named variant:
// the variant's own pairs when it matches and has any, the document's
// otherwise.
func (d *Document) KerningFor(variantName string) KerningTable {
	if v, ok := d.Variant(variantName); ok && v.kerning.Len() > 0 {
		return v.kerning
	}
	return d.kerning
}

// MetricsFor returns the metrics of the named variant, falling back to the
// document metrics. Returns nil if neither is present.
func (d *Document) MetricsFor(variantName string) *Metrics {
	if v, ok := d.Variant(variantName); ok && v.Metrics != nil {
		return v.Metrics
	}
	return d.Metrics
}

// LineHeight returns the document line height in em units, or 0 if the
// document carries no metrics.
func (d *Document) LineHeight() float32 {
	if d.Metrics == nil {
		return 0
	}
	return d.Metrics.LineHeight
}

// GlyphCount returns the number of glyphs in the default table.
func (d *Document) GlyphCount() int {
	return len(d.Glyphs)
}
