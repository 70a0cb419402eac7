package atlas

import "image"

// Texture is an opaque handle to an uploaded atlas texture. Its concrete
// type is whatever the TextureUploader returns.
type Texture = any

// TextureUploader moves a decoded atlas onto a graphics device.
//
// levels holds the mipmap chain, level 0 first; it has a single entry when
// mipmaps are disabled. Pixel data is linear and must be stored in a
// non-sRGB texture format.
type TextureUploader interface {
	UploadAtlas(name string, levels []*image.RGBA) (Texture, error)
}

// textureDestroyer is implemented by textures that hold device resources.
type textureDestroyer interface {
	Destroy()
}

// MemoryTexture is an atlas kept in host memory.
type MemoryTexture struct {
	Name   string
	Levels []*image.RGBA
}

// Width returns the width of level 0.
func (t *MemoryTexture) Width() int {
	if len(t.Levels) == 0 {
		return 0
	}
	return t.Levels[0].Bounds().Dx()
}

// Height returns the height of level 0.
func (t *MemoryTexture) Height() int {
	if len(t.Levels) == 0 {
		return 0
	}
	return t.Levels[0].Bounds().Dy()
}

// MemoryUploader keeps atlases in host memory. It is used when a Cache is
// created without a device, for tools that only need layout.
type MemoryUploader struct{}

// UploadAtlas returns a *MemoryTexture referencing levels.
func (MemoryUploader) UploadAtlas(name string, levels []*image.RGBA) (Texture, error) {
	return &MemoryTexture{Name: name, Levels: levels}, nil
}
