// Package imaging は、生成済み画像のローカル加工（縮小）を担当します。
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Downscale は画像データを size×size のPNGに縮小するのだ。
// アイコン用途なので、品質重視の CatmullRom 補間を使うのだよ。
func Downscale(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("サイズは正の値で指定してください: %d", size)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}
