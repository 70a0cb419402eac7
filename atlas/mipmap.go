package atlas

import (
	"image"
	"math"
)

// GenerateMipmaps returns the mipmap chain of src, level 0 first.
//
// Each level halves both dimensions (never below 1) using a 2x2 box filter
// that averages raw channel values; distances are linear so no gamma
// correction is applied. The chain ends when the largest dimension reaches
// 1 pixel. src becomes level 0 and is not copied.
//
// Returns nil if src is nil or empty.
func GenerateMipmaps(src *image.RGBA) []*image.RGBA {
	if src == nil || src.Bounds().Empty() {
		return nil
	}

	maxDim := max(src.Bounds().Dx(), src.Bounds().Dy())
	numLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))

	levels := make([]*image.RGBA, numLevels)
	levels[0] = src
	for i := 1; i < numLevels; i++ {
		levels[i] = downsample(levels[i-1])
	}
	return levels
}

// MipLevelCount returns the number of levels GenerateMipmaps produces for
// a width x height image.
func MipLevelCount(width, height int) int {
	maxDim := max(width, height)
	if maxDim <= 0 {
		return 0
	}
	return 1 + int(math.Floor(math.Log2(float64(maxDim))))
}

// downsample creates a half-size version of src using a box filter.
// Odd edges reuse the last row or column.
func downsample(src *image.RGBA) *image.RGBA {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	dstW := max(1, srcW/2)
	dstH := max(1, srcH/2)

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))

	for dy := 0; dy < dstH; dy++ {
		sy0 := sb.Min.Y + min(dy*2, srcH-1)
		sy1 := sb.Min.Y + min(dy*2+1, srcH-1)
		for dx := 0; dx < dstW; dx++ {
			sx0 := sb.Min.X + min(dx*2, srcW-1)
			sx1 := sb.Min.X + min(dx*2+1, srcW-1)

			p0 := src.PixOffset(sx0, sy0)
			p1 := src.PixOffset(sx1, sy0)
			p2 := src.PixOffset(sx0, sy1)
			p3 := src.PixOffset(sx1, sy1)

			d := dst.PixOffset(dx, dy)
			for c := 0; c < 4; c++ {
				sum := uint16(src.Pix[p0+c]) + uint16(src.Pix[p1+c]) +
					uint16(src.Pix[p2+c]) + uint16(src.Pix[p3+c])
				dst.Pix[d+c] = uint8((sum + 2) / 4)
			}
		}
	}

	return dst
}
