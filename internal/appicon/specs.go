package appicon

import "math"

// Spec is one entry of the iOS app icon set: a point size, a pixel density
// multiplier and the filename Xcode expects for that pair.
type Spec struct {
	NominalSize float64
	Scale       int
	Filename    string
}

// PixelSize is the edge length in pixels of the file written for s.
func (s Spec) PixelSize() int {
	return int(math.Round(s.NominalSize * float64(s.Scale)))
}

var iosSpecs = [...]Spec{
	{NominalSize: 20, Scale: 1, Filename: "Icon-App-20x20@1x.png"},
	{NominalSize: 20, Scale: 2, Filename: "Icon-App-20x20@2x.png"},
	{NominalSize: 20, Scale: 3, Filename: "Icon-App-20x20@3x.png"},
	{NominalSize: 29, Scale: 1, Filename: "Icon-App-29x29@1x.png"},
	{NominalSize: 29, Scale: 2, Filename: "Icon-App-29x29@2x.png"},
	{NominalSize: 29, Scale: 3, Filename: "Icon-App-29x29@3x.png"},
	{NominalSize: 40, Scale: 1, Filename: "Icon-App-40x40@1x.png"},
	{NominalSize: 40, Scale: 2, Filename: "Icon-App-40x40@2x.png"},
	{NominalSize: 40, Scale: 3, Filename: "Icon-App-40x40@3x.png"},
	{NominalSize: 60, Scale: 2, Filename: "Icon-App-60x60@2x.png"},
	{NominalSize: 60, Scale: 3, Filename: "Icon-App-60x60@3x.png"},
	{NominalSize: 76, Scale: 1, Filename: "Icon-App-76x76@1x.png"},
	{NominalSize: 76, Scale: 2, Filename: "Icon-App-76x76@2x.png"},
	{NominalSize: 83.5, Scale: 2, Filename: "Icon-App-83.5x83.5@2x.png"},
	{NominalSize: 1024, Scale: 1, Filename: "Icon-App-1024x1024@1x.png"},
}

// Specs returns the icon set in write order. The slice is a fresh copy.
func Specs() []Spec {
	out := make([]Spec, len(iosSpecs))
	copy(out, iosSpecs[:])
	return out
}
