package main

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/msdftext/layout"
)

// previewMargin is the border around the rendered line, in pixels.
const previewMargin = 8

// writePreview rasterizes instances on a white canvas by scaling each
// glyph's atlas region to its quad and resolving the distance field with
// the median of the three channels.
func writePreview(path string, src *image.RGBA, instances []layout.GlyphInstance, end layout.Vec2, lineHeight float32) error {
	img := renderPreview(src, instances, end, lineHeight)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func renderPreview(src *image.RGBA, instances []layout.GlyphInstance, end layout.Vec2, lineHeight float32) *image.RGBA {
	bounds := image.Rect(0, int(math.Floor(float64(end.Y-lineHeight))), int(math.Ceil(float64(end.X))), int(math.Ceil(float64(end.Y+lineHeight/2))))
	for _, inst := range instances {
		bounds = bounds.Union(quadRect(inst))
	}
	bounds = bounds.Inset(-previewMargin)

	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	sb := src.Bounds()
	w, h := float32(sb.Dx()), float32(sb.Dy())
	for _, inst := range instances {
		region := image.Rect(
			int(inst.UV.UMin*w), int(inst.UV.VMin*h),
			int(math.Ceil(float64(inst.UV.UMax*w))), int(math.Ceil(float64(inst.UV.VMax*h))),
		).Add(sb.Min)
		quad := quadRect(inst).Sub(bounds.Min)
		if region.Empty() || quad.Empty() {
			continue
		}

		field := image.NewRGBA(image.Rect(0, 0, quad.Dx(), quad.Dy()))
		draw.BiLinear.Scale(field, field.Bounds(), src, region, draw.Src, nil)
		resolve(dst, quad.Min, field, inst.Color)
	}
	return dst
}

func quadRect(inst layout.GlyphInstance) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(inst.Position.X))), int(math.Floor(float64(inst.Position.Y))),
		int(math.Ceil(float64(inst.Position.X+inst.Size.X))), int(math.Ceil(float64(inst.Position.Y+inst.Size.Y))),
	)
}

// resolve blends c over dst at origin with coverage from the median of the
// field channels.
func resolve(dst *image.RGBA, origin image.Point, field *image.RGBA, c layout.Color) {
	fb := field.Bounds()
	for y := 0; y < fb.Dy(); y++ {
		for x := 0; x < fb.Dx(); x++ {
			p := field.RGBAAt(x, y)
			d := float64(median(p.R, p.G, p.B))/255 - 0.5
			cov := math.Max(0, math.Min(1, d*4+0.5)) * float64(c.A)
			if cov == 0 {
				continue
			}
			q := dst.RGBAAt(origin.X+x, origin.Y+y)
			dst.SetRGBA(origin.X+x, origin.Y+y, color.RGBA{
				R: blend(q.R, c.R, cov),
				G: blend(q.G, c.G, cov),
				B: blend(q.B, c.B, cov),
				A: 255,
			})
		}
	}
}

func median(a, b, c uint8) uint8 {
	return max(min(a, b), min(max(a, b), c))
}

func blend(bg uint8, fg float32, cov float64) uint8 {
	v := float64(bg)*(1-cov) + float64(fg)*255*cov
	return uint8(math.Round(v))
}
