package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	CandleColor     = color.RGBA{34, 197, 94, 255}
	HighlightColor  = color.RGBA{68, 217, 124, 255}
)

// Geometry holds the candlestick rectangles for one icon size. Rectangles are
// half-open like every image.Rectangle; an empty one is not drawn.
type Geometry struct {
	Size      int
	UpperWick image.Rectangle
	LowerWick image.Rectangle
	Body      image.Rectangle
	Highlight image.Rectangle
}

func NewGeometry(size int) Geometry {
	if size < 1 {
		size = 1
	}
	center := size / 2

	wickWidth := max(2, size/50)
	wickHalf := wickWidth / 2
	wickTop := int(float64(size) * 0.15)
	wickBottom := int(float64(size) * 0.85)

	bodyWidth := int(float64(size) * 0.3)
	bodyHeight := int(float64(size) * 0.25)
	bodyLeft := center - bodyWidth/2
	bodyRight := center + bodyWidth/2
	bodyTop := center - bodyHeight/2
	bodyBottom := center + bodyHeight/2

	highlightWidth := bodyWidth / 3

	return Geometry{
		Size:      size,
		UpperWick: span(center-wickHalf, wickTop, center+wickHalf, bodyTop),
		LowerWick: span(center-wickHalf, bodyBottom, center+wickHalf, wickBottom),
		Body:      span(bodyLeft, bodyTop, bodyRight, bodyBottom),
		Highlight: span(bodyLeft+2, bodyTop+2, bodyLeft+highlightWidth, bodyBottom-2),
	}
}

// span converts inclusive pixel coordinates into a half-open rectangle.
// Inverted corners must stay inverted so the result is empty; image.Rect
// would swap them.
func span(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1+1, y1+1)}
}

// Render draws the candlestick icon at pixelSize x pixelSize. Sizes below 1
// are treated as 1.
func Render(pixelSize int) *image.RGBA {
	g := NewGeometry(pixelSize)
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))

	fill(img, img.Bounds(), BackgroundColor)
	fill(img, g.UpperWick, CandleColor)
	fill(img, g.LowerWick, CandleColor)
	fill(img, g.Body, CandleColor)
	fill(img, g.Highlight, HighlightColor)
	return img
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
