package font

// Bounds is an axis-aligned rectangle in either em space (plane bounds) or
// atlas pixels (atlas bounds). All four edges share the same unit.
//
// Consumers assume Right >= Left and Top >= Bottom; it is not enforced.
type Bounds struct {
	Left   float32 `json:"left"`
	Bottom float32 `json:"bottom"`
	Right  float32 `json:"right"`
	Top    float32 `json:"top"`
}

// Width returns Right - Left.
func (b Bounds) Width() float32 {
	return b.Right - b.Left
}

// Height returns Top - Bottom.
func (b Bounds) Height() float32 {
	return b.Top - b.Bottom
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (b Bounds) IsEmpty() bool {
	return b.Left >= b.Right || b.Bottom >= b.Top
}

// Metrics holds font-wide vertical metrics in em units.
type Metrics struct {
	EmSize             float32 `json:"emSize"`
	LineHeight         float32 `json:"lineHeight"`
	Ascender           float32 `json:"ascender"`
	Descender          float32 `json:"descender"`
	UnderlineY         float32 `json:"underlineY"`
	UnderlineThickness float32 `json:"underlineThickness"`
}

// Atlas describes the encoding and pixel dimensions of the atlas texture.
type Atlas struct {
	// Type is the distance field flavor ("msdf", "mtsdf", "sdf", ...).
	Type string `json:"type"`

	// DistanceRange is the distance field range in atlas pixels.
	DistanceRange float32 `json:"distanceRange"`

	// DistanceRangeMiddle is the offset of the zero distance inside the range.
	DistanceRangeMiddle float32 `json:"distanceRangeMiddle"`

	// Size is the em size in atlas pixels the glyphs were rendered at.
	Size float32 `json:"size"`

	// Width and Height are the atlas dimensions in pixels.
	// They are the denominators of UV normalization.
	Width  int `json:"width"`
	Height int `json:"height"`

	// YOrigin is "bottom" or "top".
	YOrigin string `json:"yOrigin"`
}

// Validate checks that the atlas dimensions can normalize UVs.
func (a *Atlas) Validate() error {
	if a.Width <= 0 {
		return &AtlasError{Field: "Width", Reason: "must be positive"}
	}
	if a.Height <= 0 {
		return &AtlasError{Field: "Height", Reason: "must be positive"}
	}
	return nil
}
