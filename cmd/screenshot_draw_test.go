package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return img
}

func TestScaleImage(t *testing.T) {
	tests := []struct {
		factor float64
		wantW  int
		wantH  int
	}{
		{1, 200, 100},
		{0.5, 100, 50},
		{0.25, 50, 25},
		{0.001, 1, 1},
	}
	for _, tt := range tests {
		got, err := ScaleImage(testImage(200, 100), tt.factor)
		if err != nil {
			t.Fatalf("factor %g: %v", tt.factor, err)
		}
		b := got.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("factor %g: got %dx%d, want %dx%d", tt.factor, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestScaleImage_Invalid(t *testing.T) {
	for _, f := range []float64{0, -1, 1.5} {
		if _, err := ScaleImage(testImage(10, 10), f); err == nil {
			t.Errorf("factor %g: expected error", f)
		}
	}
}

func TestLabelImage(t *testing.T) {
	img := LabelImage(testImage(200, 50), "0x2a Settings")
	if img.Bounds() != image.Rect(0, 0, 200, 50) {
		t.Fatalf("bounds changed: %v", img.Bounds())
	}
	// The band darkens the corner; the far corner keeps its colour.
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 >= 200 {
		t.Errorf("label band not drawn, corner red = %d", r>>8)
	}
	if r, _, _, _ := img.At(199, 49).RGBA(); r>>8 != 200 {
		t.Errorf("far corner changed, red = %d", r>>8)
	}
}

func TestImageToRGBA(t *testing.T) {
	rgba := testImage(4, 4)
	if ImageToRGBA(rgba) != rgba {
		t.Error("RGBA input should be returned as-is")
	}
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	got := ImageToRGBA(gray)
	if got.Bounds() != gray.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), gray.Bounds())
	}
}

func TestEncodeImage(t *testing.T) {
	img := testImage(8, 8)

	data, err := EncodeImage(img, "png", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("png output does not decode: %v", err)
	}

	data, err = EncodeImage(img, "jpg", 80)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("jpg output does not decode: %v", err)
	}

	if _, err := EncodeImage(img, "jpg", 0); err == nil {
		t.Error("expected error for quality 0")
	}
	if _, err := EncodeImage(img, "bmp", 80); err == nil {
		t.Error("expected error for unsupported format")
	}
}
