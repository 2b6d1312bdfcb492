// Package capture writes rendered frames to disk as PNG or WebP, with
// supersample-aware downscaling for clean exported images.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// WriteWebP encodes img to a lossless WebP file at path.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return f.Close()
}

// Downsample resizes img to width x height with premultiplied-alpha-aware
// CatmullRom filtering. Premultiplying first avoids halo artifacts where
// alpha varies. Images already at or below the target size are returned
// unchanged.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			d := premul.PixOffset(x, y)
			a := float64(img.Pix[i+3]) / 255.0
			premul.Pix[d] = uint8(float64(img.Pix[i])*a + 0.5)
			premul.Pix[d+1] = uint8(float64(img.Pix[i+1])*a + 0.5)
			premul.Pix[d+2] = uint8(float64(img.Pix[i+2])*a + 0.5)
			premul.Pix[d+3] = img.Pix[i+3]
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewRGBA(scaled.Bounds())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := scaled.PixOffset(x, y)
			a := float64(scaled.Pix[i+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[i] = clamp8(float64(scaled.Pix[i]) * inv)
				out.Pix[i+1] = clamp8(float64(scaled.Pix[i+1]) * inv)
				out.Pix[i+2] = clamp8(float64(scaled.Pix[i+2]) * inv)
			}
			out.Pix[i+3] = scaled.Pix[i+3]
		}
	}

	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
