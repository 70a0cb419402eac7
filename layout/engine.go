package layout

import (
	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/atlas"
	"github.com/gogpu/msdftext/font"
)

// Engine lays out text by font name using the documents held by a cache.
//
// Engine holds no state of its own and is safe for concurrent use as long
// as the cache is.
type Engine struct {
	cache *atlas.Cache
	runs  *RunCache
	opts  Options
}

// NewEngine creates an engine reading metrics from cache.
func NewEngine(cache *atlas.Cache) *Engine {
	return &Engine{cache: cache}
}

// WithOptions returns a copy of e that lays out with opts.
func (e *Engine) WithOptions(opts Options) *Engine {
	return &Engine{cache: e.cache, runs: e.runs, opts: opts}
}

// WithRunCache returns a copy of e that memoizes runs in runs. A nil runs
// disables memoization.
//
// Cached runs are laid out at the origin and translated to the start
// position, so coordinates may differ from uncached output in the last bit.
func (e *Engine) WithRunCache(runs *RunCache) *Engine {
	return &Engine{cache: e.cache, runs: runs, opts: e.opts}
}

// Options returns the layout options of e.
func (e *Engine) Options() Options {
	return e.opts
}

// Layout lays out text in fontName at fontSize starting at start.
//
// It fails with an error matching atlas.ErrNotLoaded when the metrics of
// fontName were never loaded; no other font is substituted.
func (e *Engine) Layout(fontName, variantName, text string, start Vec2, fontSize float32) ([]GlyphInstance, error) {
	doc, err := e.document(fontName)
	if err != nil {
		return nil, err
	}
	if e.runs != nil {
		key := RunKey{Font: fontName, Variant: variantName, Text: text, FontSize: fontSize, Options: e.opts}
		run := e.runs.GetOrCreate(key, func() []GlyphInstance {
			return Text(doc, variantName, text, Vec2{}, fontSize, e.opts)
		})
		return translate(run, start), nil
	}

	instances := Text(doc, variantName, text, start, fontSize, e.opts)
	msdftext.Logger().Debug("layout: text laid out",
		"font", fontName, "variant", variantName,
		"units", len(text), "instances", len(instances))
	return instances, nil
}

// Measure returns the cursor after laying out text; see the package-level
// Measure.
func (e *Engine) Measure(fontName, variantName, text string, start Vec2, fontSize float32) (Vec2, error) {
	doc, err := e.document(fontName)
	if err != nil {
		return start, err
	}
	return Measure(doc, variantName, text, start, fontSize, e.opts), nil
}

// LineHeight returns the line height of fontName at fontSize, using the
// variant's metrics when it has any.
func (e *Engine) LineHeight(fontName, variantName string, fontSize float32) (float32, error) {
	doc, err := e.document(fontName)
	if err != nil {
		return 0, err
	}
	m := doc.MetricsFor(variantName)
	if m == nil {
		return 0, nil
	}
	return m.LineHeight * fontSize, nil
}

func (e *Engine) document(fontName string) (*font.Document, error) {
	if e.cache == nil {
		return nil, &atlas.NotLoadedError{Font: fontName, Resource: atlas.ResourceMetrics}
	}
	return e.cache.Document(fontName)
}
