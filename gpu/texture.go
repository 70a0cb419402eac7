//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/atlas"
)

// AtlasFormat is the texture format of uploaded atlases. MSDF channels are
// distances, so the format is linear; the sRGB variant would gamma-decode
// them on sampling.
const AtlasFormat = gputypes.TextureFormatRGBA8Unorm

// ErrInvalidLevels is returned when a mipmap chain is empty or its levels
// do not halve.
var ErrInvalidLevels = errors.New("gpu: invalid mipmap chain")

// AtlasTexture is an atlas uploaded to the device.
type AtlasTexture struct {
	Name      string
	Texture   hal.Texture
	View      hal.TextureView
	Width     uint32
	Height    uint32
	MipLevels uint32

	device hal.Device
}

// Destroy releases the texture and its view. Safe to call twice.
func (t *AtlasTexture) Destroy() {
	if t.device == nil {
		return
	}
	if t.View != nil {
		t.device.DestroyTextureView(t.View)
		t.View = nil
	}
	if t.Texture != nil {
		t.device.DestroyTexture(t.Texture)
		t.Texture = nil
	}
	t.device = nil
}

// UploadAtlas creates a 2D texture holding every level of the chain and a
// view covering all of them. It implements atlas.TextureUploader; the
// returned atlas.Texture is an *AtlasTexture.
func (d *Device) UploadAtlas(name string, levels []*image.RGBA) (atlas.Texture, error) {
	return d.uploadAtlas(name, levels)
}

func (d *Device) uploadAtlas(name string, levels []*image.RGBA) (*AtlasTexture, error) {
	if d == nil || d.device == nil {
		return nil, ErrNoDevice
	}
	if err := checkLevels(levels); err != nil {
		return nil, err
	}

	b := levels[0].Bounds()
	width := uint32(b.Dx())  //nolint:gosec // image bounds are non-negative
	height := uint32(b.Dy()) //nolint:gosec // image bounds are non-negative
	mipLevels := uint32(len(levels))

	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         fmt.Sprintf("msdf_atlas_%s", name),
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: mipLevels,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        AtlasFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create atlas texture %q: %w", name, err)
	}

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         fmt.Sprintf("msdf_atlas_%s_view", name),
		Format:        AtlasFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: mipLevels,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: create atlas texture view %q: %w", name, err)
	}

	for i, level := range levels {
		d.writeLevel(tex, uint32(i), level) //nolint:gosec // level count fits uint32
	}

	msdftext.Logger().Debug("gpu: atlas uploaded",
		"font", name, "width", width, "height", height, "levels", mipLevels)

	return &AtlasTexture{
		Name:      name,
		Texture:   tex,
		View:      view,
		Width:     width,
		Height:    height,
		MipLevels: mipLevels,
		device:    d.device,
	}, nil
}

// writeLevel uploads one mip level.
func (d *Device) writeLevel(tex hal.Texture, mip uint32, img *image.RGBA) {
	b := img.Bounds()
	w := uint32(b.Dx()) //nolint:gosec // image bounds are non-negative
	h := uint32(b.Dy()) //nolint:gosec // image bounds are non-negative

	d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: mip,
			Origin:   hal.Origin3D{},
			Aspect:   gputypes.TextureAspectAll,
		},
		tightPixels(img),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
}

// tightPixels returns the pixels of img with rows packed back to back.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	if img.Stride == rowLen && b.Min == (image.Point{}) {
		return img.Pix[:rowLen*b.Dy()]
	}
	out := make([]byte, rowLen*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out[y*rowLen:(y+1)*rowLen], img.Pix[off:off+rowLen])
	}
	return out
}

// checkLevels verifies that each level is half the previous one, rounded
// down and clamped to 1.
func checkLevels(levels []*image.RGBA) error {
	if len(levels) == 0 || levels[0] == nil || levels[0].Bounds().Empty() {
		return fmt.Errorf("%w: empty base level", ErrInvalidLevels)
	}
	w, h := levels[0].Bounds().Dx(), levels[0].Bounds().Dy()
	for i := 1; i < len(levels); i++ {
		w, h = max(1, w/2), max(1, h/2)
		l := levels[i]
		if l == nil || l.Bounds().Dx() != w || l.Bounds().Dy() != h {
			return fmt.Errorf("%w: level %d is not %dx%d", ErrInvalidLevels, i, w, h)
		}
	}
	return nil
}
