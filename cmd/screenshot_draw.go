package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScaleImage resizes img by factor (0 < factor <= 1) with bilinear
// filtering. factor 1 returns img unchanged.
func ScaleImage(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("scale must be in (0, 1], got %g", factor)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor))
	h := max(1, int(float64(b.Dy())*factor))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// LabelImage stamps text in the top-left corner on a dark band so it stays
// readable over any window content.
func LabelImage(img image.Image, text string) *image.RGBA {
	rgba := ImageToRGBA(img)
	face := basicfont.Face7x13
	pad := 3
	width := font.MeasureString(face, text).Ceil() + 2*pad
	height := face.Metrics().Height.Ceil() + 2*pad

	band := image.Rect(0, 0, width, height).Intersect(rgba.Bounds())
	draw.Draw(rgba, band, image.NewUniform(color.RGBA{A: 200}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(pad, pad+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return rgba
}

// ImageToRGBA converts any image to *image.RGBA, copying when needed.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// EncodeImage renders img as png or jpg.
func EncodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("png encode: %w", err)
		}
	case "jpg", "jpeg":
		if quality < 1 || quality > 100 {
			return nil, fmt.Errorf("jpeg quality must be 1-100, got %d", quality)
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("jpeg encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s (use png or jpg)", format)
	}
	return buf.Bytes(), nil
}
