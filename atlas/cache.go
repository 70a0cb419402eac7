package atlas

import (
	"fmt"
	"image"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/font"
)

// loadCall marks a Load in progress for one font name.
type loadCall struct {
	done chan struct{}
	err  error
}

// Cache owns loaded metrics documents and atlas textures, keyed by font
// name. Entries live until Close; there is no eviction.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	config    Config
	uploader  TextureUploader
	documents map[string]*font.Document
	textures  map[string]Texture
	loading   map[string]*loadCall
	closed    bool

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a cache that reads fonts according to config and uploads
// atlases through up. A nil uploader keeps atlases in host memory
// (see MemoryUploader).
func New(config Config, up TextureUploader) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if up == nil {
		up = MemoryUploader{}
	}
	return &Cache{
		config:    config,
		uploader:  up,
		documents: make(map[string]*font.Document),
		textures:  make(map[string]Texture),
		loading:   make(map[string]*loadCall),
	}, nil
}

// Load reads the metrics document and atlas image of font name, unless
// they are already cached. Load is idempotent: once both resources are
// cached, further calls perform no I/O.
//
// Concurrent calls for the same name wait for the first one and return
// its result. A failed resource is not cached, so a later Load retries it.
func (c *Cache) Load(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if call, ok := c.loading[name]; ok {
		c.mu.Unlock()
		<-call.done
		return call.err
	}
	_, haveDoc := c.documents[name]
	_, haveTex := c.textures[name]
	if haveDoc && haveTex {
		c.mu.Unlock()
		c.hits.Add(1)
		msdftext.Logger().Debug("atlas: font already loaded", "font", name)
		return nil
	}
	call := &loadCall{done: make(chan struct{})}
	c.loading[name] = call
	c.mu.Unlock()

	c.misses.Add(1)
	call.err = c.load(name, !haveDoc, !haveTex)

	c.mu.Lock()
	delete(c.loading, name)
	c.mu.Unlock()
	close(call.done)

	if call.err != nil {
		msdftext.Logger().Warn("atlas: font load failed", "font", name, "err", call.err)
	}
	return call.err
}

// load performs the I/O for the missing resources of name.
func (c *Cache) load(name string, needDoc, needTex bool) error {
	if needDoc {
		doc, err := c.readDocument(name)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.documents[name] = doc
		c.mu.Unlock()
		msdftext.Logger().Debug("atlas: metrics loaded",
			"font", name, "glyphs", doc.GlyphCount(), "variants", len(doc.Variants))
	}

	if needTex {
		tex, err := c.readTexture(name)
		if err != nil {
			return err
		}
		c.mu.Lock()
		closed := c.closed
		if !closed {
			c.textures[name] = tex
		}
		c.mu.Unlock()
		if closed {
			destroyTexture(tex)
			return ErrClosed
		}
		msdftext.Logger().Debug("atlas: texture loaded", "font", name)
	}

	return nil
}

// readDocument reads and decodes the metrics document of name.
func (c *Cache) readDocument(name string) (*font.Document, error) {
	p := c.config.MetricsPath(name)
	f, err := c.config.FS.Open(p)
	if err != nil {
		return nil, &AssetError{Font: name, Path: p, Err: err}
	}
	defer f.Close()

	doc, err := font.Parse(f)
	if err != nil {
		return nil, &AssetError{Font: name, Path: p, Err: err}
	}
	if doc.Atlas != nil {
		if err := doc.Atlas.Validate(); err != nil {
			return nil, &AssetError{Font: name, Path: p, Err: err}
		}
	}
	return doc, nil
}

// readTexture decodes the atlas image of name and uploads it.
func (c *Cache) readTexture(name string) (Texture, error) {
	p := c.config.ImagePath(name)
	f, err := c.config.FS.Open(p)
	if err != nil {
		return nil, &AssetError{Font: name, Path: p, Err: err}
	}
	defer f.Close()

	img, format, err := decodeImage(f)
	if err != nil {
		return nil, &AssetError{Font: name, Path: p, Err: fmt.Errorf("%w: %w", ErrMalformedImage, err)}
	}

	levels := []*image.RGBA{img}
	if c.config.Mipmaps {
		levels = GenerateMipmaps(img)
	}
	msdftext.Logger().Debug("atlas: image decoded",
		"font", name, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "levels", len(levels))

	tex, err := c.uploader.UploadAtlas(name, levels)
	if err != nil {
		return nil, fmt.Errorf("atlas: upload %q: %w", name, err)
	}
	return tex, nil
}

// Texture returns the atlas texture of font name.
func (c *Cache) Texture(name string) (Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tex, ok := c.textures[name]
	if !ok {
		return nil, &NotLoadedError{Font: name, Resource: ResourceTexture}
	}
	return tex, nil
}

// Document returns the metrics document of font name.
func (c *Cache) Document(name string) (*font.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.documents[name]
	if !ok {
		return nil, &NotLoadedError{Font: name, Resource: ResourceMetrics}
	}
	return doc, nil
}

// IsLoaded returns true if both resources of name are cached.
func (c *Cache) IsLoaded(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, haveDoc := c.documents[name]
	_, haveTex := c.textures[name]
	return haveDoc && haveTex
}

// Loaded returns the names of fully loaded fonts in sorted order.
func (c *Cache) Loaded() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.textures))
	for name := range c.textures {
		if _, ok := c.documents[name]; ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of fully loaded fonts.
func (c *Cache) Len() int {
	return len(c.Loaded())
}

// Stats returns cache statistics: Load calls satisfied without I/O and
// Load calls that read files.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Config returns the loader configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Close destroys uploaded textures that hold device resources and empties
// the cache. Close is idempotent.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	textures := c.textures
	c.textures = make(map[string]Texture)
	c.documents = make(map[string]*font.Document)
	c.mu.Unlock()

	for _, tex := range textures {
		destroyTexture(tex)
	}
	return nil
}

func destroyTexture(tex Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
