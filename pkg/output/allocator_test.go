package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"記号は落ちて空白はアンダースコアになるのだ", "A Beautiful Sunset!", "a_beautiful_sunset"},
		{"英数字が1つも残らなければフォールバックなのだ", "!!!", "image"},
		{"空文字もフォールバックなのだ", "", "image"},
		{"連続する空白は1つに圧縮されるのだ", "red   fox\t\tjumping", "red_fox_jumping"},
		{"大文字は小文字に揃えるのだ", "PIXEL Art 2D", "pixel_art_2d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.prompt); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}

	t.Run("長いプロンプトは32文字で切り詰めるのだ", func(t *testing.T) {
		long := strings.Repeat("abcde ", 20) // 100文字超
		got := Slugify(long)
		if len(got) > 32 {
			t.Errorf("slug length = %d, want <= 32 (%q)", len(got), got)
		}
	})
}

func TestAllocate(t *testing.T) {
	t.Run("空のディレクトリではスラッグそのままの名前になるのだ", func(t *testing.T) {
		dir := t.TempDir()
		got := Allocate("A Beautiful Sunset!", 0, dir)
		if got != "a_beautiful_sunset.png" {
			t.Errorf("expected a_beautiful_sunset.png, got %q", got)
		}
	})

	t.Run("衝突のたびに連番サフィックスが進むのだ", func(t *testing.T) {
		dir := t.TempDir()

		first := Allocate("sunset", 0, dir)
		writeDummy(t, dir, first)
		second := Allocate("sunset", 0, dir)
		writeDummy(t, dir, second)
		third := Allocate("sunset", 0, dir)

		if first != "sunset.png" {
			t.Errorf("first allocation: got %q", first)
		}
		if second != "sunset_1.png" {
			t.Errorf("second allocation: got %q", second)
		}
		if third != "sunset_2.png" {
			t.Errorf("third allocation: got %q", third)
		}
	})

	t.Run("ordinalが正なら衝突カウンタの初期値になるのだ", func(t *testing.T) {
		dir := t.TempDir()
		writeDummy(t, dir, "sunset.png")

		got := Allocate("sunset", 3, dir)
		if got != "sunset_3.png" {
			t.Errorf("expected sunset_3.png, got %q", got)
		}
	})

	t.Run("記号だけのプロンプトはimage.pngに落ちるのだ", func(t *testing.T) {
		dir := t.TempDir()
		got := Allocate("!!!", 0, dir)
		if got != "image.png" {
			t.Errorf("expected image.png, got %q", got)
		}
	})
}

func TestEnsureDir(t *testing.T) {
	t.Run("中間ディレクトリごと冪等に作成できるのだ", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "generated_images")
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("first EnsureDir failed: %v", err)
		}
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("second EnsureDir should be idempotent: %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory was not created: %v", err)
		}
	})
}

func writeDummy(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
		t.Fatalf("failed to write dummy file: %v", err)
	}
}
