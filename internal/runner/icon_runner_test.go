package runner

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/shouni/go-image-forge/pkg/domain"
)

func basePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode base png: %v", err)
	}
	return buf.Bytes()
}

func TestIconRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("1回の生成から全サイズが保存されるのだ", func(t *testing.T) {
		dir := t.TempDir()
		gen := &mockGenerator{
			generateFunc: func(_ context.Context, _ domain.ImageRequest) (*domain.ImageResponse, error) {
				return &domain.ImageResponse{Data: basePNG(t), MimeType: "image/png"}, nil
			},
		}
		r, err := NewIconRunner(gen, nil, dir, false)
		if err != nil {
			t.Fatalf("NewIconRunner failed: %v", err)
		}

		items, err := r.Run(ctx, "Create a clean icon: rocket", "rocket", []int{8, 16}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if len(gen.calls) != 1 {
			t.Errorf("API should be called exactly once, got %d", len(gen.calls))
		}
		if got := domain.CountWritten(items); got != 2 {
			t.Fatalf("expected 2 written icons, got %d", got)
		}
		for _, item := range items {
			data, err := os.ReadFile(item.Path)
			if err != nil {
				t.Fatalf("icon should exist: %v", err)
			}
			if _, err := png.Decode(bytes.NewReader(data)); err != nil {
				t.Errorf("saved icon should be a valid png: %v", err)
			}
		}
	})

	t.Run("ベース生成の失敗は全体の失敗なのだ", func(t *testing.T) {
		wantErr := errors.New("api down")
		gen := &mockGenerator{
			generateFunc: func(_ context.Context, _ domain.ImageRequest) (*domain.ImageResponse, error) {
				return nil, wantErr
			},
		}
		r, err := NewIconRunner(gen, nil, t.TempDir(), false)
		if err != nil {
			t.Fatalf("NewIconRunner failed: %v", err)
		}

		if _, err := r.Run(ctx, "prompt", "rocket", []int{16}, nil); !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped base error, got %v", err)
		}
	})

	t.Run("1サイズの縮小失敗は他のサイズを道連れにしないのだ", func(t *testing.T) {
		dir := t.TempDir()
		gen := &mockGenerator{
			generateFunc: func(_ context.Context, _ domain.ImageRequest) (*domain.ImageResponse, error) {
				return &domain.ImageResponse{Data: basePNG(t), MimeType: "image/png"}, nil
			},
		}
		r, err := NewIconRunner(gen, nil, dir, false)
		if err != nil {
			t.Fatalf("NewIconRunner failed: %v", err)
		}

		items, err := r.Run(ctx, "prompt", "rocket", []int{-1, 16}, nil)
		if err != nil {
			t.Fatalf("Run should not fail as a whole: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Err == nil {
			t.Error("invalid size should produce a failed item")
		}
		if items[1].Err != nil {
			t.Errorf("valid size should still be written: %v", items[1].Err)
		}
	})
}
