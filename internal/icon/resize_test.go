package icon

import (
	"image"
	"testing"
)

func TestFit_ExactSizeIsIdentity(t *testing.T) {
	src := Render(40)
	if got := Fit(src, 40); got != src {
		t.Fatalf("Fit returned a copy for an image that already has the target size")
	}
}

func TestFit_Resamples(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
	}{
		{name: "downscale", from: 1024, to: 167},
		{name: "upscale", from: 20, to: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Render(tt.from)
			got := Fit(src, tt.to)
			if got.Bounds() != image.Rect(0, 0, tt.to, tt.to) {
				t.Fatalf("Fit bounds = %v", got.Bounds())
			}
			if !got.Opaque() {
				t.Fatalf("Fit output is not opaque")
			}
			if corner := got.RGBAAt(0, 0); corner != BackgroundColor {
				t.Fatalf("corner = %v, want background", corner)
			}
			again := Fit(src, tt.to)
			for i := range got.Pix {
				if got.Pix[i] != again.Pix[i] {
					t.Fatalf("Fit is not deterministic at byte %d", i)
				}
			}
		})
	}
}

func TestFit_NonRGBASource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	got := Fit(src, 8)
	if got.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("Fit bounds = %v", got.Bounds())
	}
}

func TestFit_DownscaleKeepsFlatRegions(t *testing.T) {
	got := Fit(Render(1024), 512)
	if c := got.RGBAAt(256, 256); c != CandleColor {
		t.Fatalf("body center = %v, want %v", c, CandleColor)
	}
	if c := got.RGBAAt(20, 480); c != BackgroundColor {
		t.Fatalf("background = %v, want %v", c, BackgroundColor)
	}
}
