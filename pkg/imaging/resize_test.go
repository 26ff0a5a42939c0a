package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestDownscale(t *testing.T) {
	t.Run("指定サイズの正方形PNGに縮小されるのだ", func(t *testing.T) {
		src := encodeTestPNG(t, 64, 64)

		out, err := Downscale(src, 16)
		if err != nil {
			t.Fatalf("Downscale failed: %v", err)
		}

		decoded, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("output is not a valid png: %v", err)
		}
		bounds := decoded.Bounds()
		if bounds.Dx() != 16 || bounds.Dy() != 16 {
			t.Errorf("expected 16x16, got %dx%d", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("画像ではないデータはエラーなのだ", func(t *testing.T) {
		if _, err := Downscale([]byte("not an image"), 16); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("非正のサイズは弾くのだ", func(t *testing.T) {
		if _, err := Downscale(encodeTestPNG(t, 8, 8), 0); err == nil {
			t.Error("expected size validation error")
		}
	})
}
