package icon

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Fit returns src as a size x size RGBA image. An RGBA source that already
// has those exact bounds is returned as is; anything else is resampled with
// Lanczos3 into a fresh image.
func Fit(src image.Image, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	want := image.Rect(0, 0, size, size)
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds() == want {
		return rgba
	}
	scaled := resize.Resize(uint(size), uint(size), src, resize.Lanczos3)
	if rgba, ok := scaled.(*image.RGBA); ok && rgba.Bounds() == want {
		return rgba
	}
	// resize keeps the source's pixel model for some formats.
	dst := image.NewRGBA(want)
	draw.Draw(dst, want, scaled, scaled.Bounds().Min, draw.Src)
	return dst
}
