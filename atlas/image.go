package atlas

import (
	"image"
	"io"

	// Atlas images are usually PNG; the other decoders cover atlases
	// exported by different tool chains.
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes an atlas image into an RGBA buffer holding the raw
// channel values of the file.
//
// The returned *image.RGBA is used as a plain byte container: straight
// alpha sources are copied without premultiplication, so an MTSDF alpha
// channel does not scale the RGB distances.
func decodeImage(r io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return toRGBA(img), format, nil
}

// toRGBA converts img to a zero-origin RGBA buffer without color conversion
// of straight-alpha data.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.RGBA:
		if b.Min == (image.Point{}) && src.Stride == 4*b.Dx() {
			return src
		}
	case *image.NRGBA:
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			srcOff := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+4*b.Dx()], src.Pix[srcOff:srcOff+4*b.Dx()])
		}
		return dst
	case *image.NRGBA64:
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			srcOff := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < b.Dx(); x++ {
				// Keep the high byte of each 16-bit channel.
				row[x*4+0] = src.Pix[srcOff+x*8+0]
				row[x*4+1] = src.Pix[srcOff+x*8+2]
				row[x*4+2] = src.Pix[srcOff+x*8+4]
				row[x*4+3] = src.Pix[srcOff+x*8+6]
			}
		}
		return dst
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
