package font

import (
	tsfont "github.com/go-text/typesetting/font"
	"golang.org/x/text/cases"
)

// Face is the leading token of a variant key, usually the weight name or
// "Regular"/"Italic" for normal-weight faces.
type Face string

// Style is the slant token of a variant key.
type Style string

// Weight is the weight token of a variant key.
type Weight string

// Stretch is the width token of a variant key.
type Stretch string

// Face tokens used by the stock metrics files.
const (
	FaceRegular  Face = "Regular"
	FaceItalic   Face = "Italic"
	FaceMedium   Face = "Medium"
	FaceSemiBold Face = "SemiBold"
	FaceBold     Face = "Bold"
)

// Style tokens.
const (
	StyleNormal Style = "Normal"
	StyleItalic Style = "Italic"
)

// Weight tokens, lightest first.
const (
	WeightThin       Weight = "Thin"
	WeightExtraLight Weight = "ExtraLight"
	WeightLight      Weight = "Light"
	WeightNormal     Weight = "Normal"
	WeightMedium     Weight = "Medium"
	WeightSemiBold   Weight = "SemiBold"
	WeightBold       Weight = "Bold"
	WeightExtraBold  Weight = "ExtraBold"
	WeightBlack      Weight = "Black"
)

// Stretch tokens, narrowest first.
const (
	StretchUltraCondensed Stretch = "UltraCondensed"
	StretchExtraCondensed Stretch = "ExtraCondensed"
	StretchCondensed      Stretch = "Condensed"
	StretchSemiCondensed  Stretch = "SemiCondensed"
	StretchNormal         Stretch = "Normal"
	StretchSemiExpanded   Stretch = "SemiExpanded"
	StretchExpanded       Stretch = "Expanded"
	StretchExtraExpanded  Stretch = "ExtraExpanded"
	StretchUltraExpanded  Stretch = "UltraExpanded"
)

// Variant keys found in the stock metrics files.
const (
	Regular        = "Regular Normal Normal Normal"
	Bold           = "Bold Normal Bold Normal"
	Medium         = "Medium Normal Medium Normal"
	SemiBold       = "SemiBold Normal SemiBold Normal"
	Italic         = "Italic Italic Normal Normal"
	BoldItalic     = "Bold Italic Bold Normal"
	MediumItalic   = "Medium Italic Medium Normal"
	SemiBoldItalic = "SemiBold Italic SemiBold Normal"
)

// ComposeVariantKey returns "{face} {style} {weight} {stretch}".
func ComposeVariantKey(face Face, style Style, weight Weight, stretch Stretch) string {
	return string(face) + " " + string(style) + " " + string(weight) + " " + string(stretch)
}

// VariantKeyFromAspect derives the variant key for an OpenType aspect.
// Normal-weight faces are named "Regular" or "Italic"; other faces carry
// their weight name.
func VariantKeyFromAspect(a tsfont.Aspect) string {
	style := StyleNormal
	if a.Style == tsfont.StyleItalic {
		style = StyleItalic
	}
	weight := weightName(a.Weight)
	face := Face(weight)
	if weight == WeightNormal {
		face = FaceRegular
		if style == StyleItalic {
			face = FaceItalic
		}
	}
	return ComposeVariantKey(face, style, weight, stretchName(a.Stretch))
}

// weightName maps a numeric weight class to the nearest named weight.
func weightName(w tsfont.Weight) Weight {
	switch {
	case w == 0:
		return WeightNormal
	case w < 150:
		return WeightThin
	case w < 250:
		return WeightExtraLight
	case w < 350:
		return WeightLight
	case w < 450:
		return WeightNormal
	case w < 550:
		return WeightMedium
	case w < 650:
		return WeightSemiBold
	case w < 750:
		return WeightBold
	case w < 850:
		return WeightExtraBold
	default:
		return WeightBlack
	}
}

// stretchName maps a width ratio to the nearest named stretch.
func stretchName(s tsfont.Stretch) Stretch {
	switch {
	case s == 0:
		return StretchNormal
	case s < 0.5625:
		return StretchUltraCondensed
	case s < 0.6875:
		return StretchExtraCondensed
	case s < 0.8125:
		return StretchCondensed
	case s < 0.9375:
		return StretchSemiCondensed
	case s < 1.0625:
		return StretchNormal
	case s < 1.1875:
		return StretchSemiExpanded
	case s < 1.375:
		return StretchExpanded
	case s < 1.75:
		return StretchExtraExpanded
	default:
		return StretchUltraExpanded
	}
}

// Variant is a named sub-collection of glyphs sharing the document's atlas,
// for example the bold italic cut of a family.
type Variant struct {
	Name    string
	Metrics *Metrics
	Glyphs  GlyphTable
	Kerning []Kerning

	kerning KerningTable
}

// Glyph returns the variant's glyph for r.
func (v *Variant) Glyph(r rune) (Glyph, bool) {
	return v.Glyphs.Lookup(r)
}

// KerningTable returns the variant's indexed kerning pairs.
func (v *Variant) KerningTable() KerningTable {
	return v.kerning
}

// matchVariantName reports whether two variant names are equal under
// Unicode case folding. No token normalization is applied.
func matchVariantName(a, b string) bool {
	if a == b {
		return true
	}
	return cases.Fold().String(a) == cases.Fold().String(b)
}
