package atlas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodeImage_NRGBAKeepsStraightChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 10})
	src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}

	img, format, err := decodeImage(&buf)
	if err != nil {
		t.Fatalf("decodeImage failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	// Raw channels survive: no premultiplication by the low alpha.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 200, G: 100, B: 50, A: 10}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("pixel (1,0) = %v", got)
	}
}

func TestToRGBA(t *testing.T) {
	t.Run("rgba passthrough", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 3, 3))
		if toRGBA(src) != src {
			t.Error("zero-origin RGBA should be returned as is")
		}
	})

	t.Run("rgba subimage copied", func(t *testing.T) {
		base := image.NewRGBA(image.Rect(0, 0, 4, 4))
		base.SetRGBA(2, 2, color.RGBA{R: 9, A: 255})
		sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)
		got := toRGBA(sub)
		if got.Bounds() != image.Rect(0, 0, 2, 2) {
			t.Fatalf("bounds = %v", got.Bounds())
		}
		if got.RGBAAt(0, 0).R != 9 {
			t.Errorf("R = %d, want 9", got.RGBAAt(0, 0).R)
		}
	})

	t.Run("gray converted", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.SetGray(0, 0, color.Gray{Y: 77})
		got := toRGBA(src).RGBAAt(0, 0)
		if got != (color.RGBA{R: 77, G: 77, B: 77, A: 255}) {
			t.Errorf("pixel = %v", got)
		}
	})

	t.Run("nrgba64 high byte", func(t *testing.T) {
		src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
		src.SetNRGBA64(0, 0, color.NRGBA64{R: 0xAB00, G: 0x1200, B: 0xFFFF, A: 0x0100})
		got := toRGBA(src).RGBAAt(0, 0)
		if got != (color.RGBA{R: 0xAB, G: 0x12, B: 0xFF, A: 0x01}) {
			t.Errorf("pixel = %v", got)
		}
	})
}

func TestDecodeImage_Invalid(t *testing.T) {
	if _, _, err := decodeImage(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("expected error for garbage input")
	}
}
