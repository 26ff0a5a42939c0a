// Package output は、生成画像の保存先ファイル名の割り当てを担当します。
//
// 割り当ては「存在確認してから使う」方式で、同一プロセス内の逐次利用を
// 前提としています。同じディレクトリを狙う別プロセスとの競合までは
// 保護しません（意図的にロックは導入していないのだ）。
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// slugFallback は、プロンプトから有効な文字が1つも残らなかったときの代替スラッグです。
const slugFallback = "image"

// slugMaxLen は、サニタイズ後のスラッグの最大長です。
const slugMaxLen = 32

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Slugify は、プロンプト文字列をファイル名に使える安全なスラッグへ変換するのだ。
// 小文字化 → 英数字と空白以外を除去 → 空白の連なりをアンダースコア1つに圧縮 →
// 先頭32文字に切り詰め、という順で加工するのだよ。
func Slugify(promptText string) string {
	s := strings.ToLower(promptText)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = spaceRuns.ReplaceAllString(s, "_")
	if len(s) > slugMaxLen {
		s = s[:slugMaxLen]
	}
	if s == "" {
		return slugFallback
	}
	return s
}

// Allocate は、dir の中で衝突しないファイル名を決定して返すのだ。
// ordinal はバッチ内の0始まりの位置で、正の値なら衝突カウンタの初期値になる。
// 存在確認と利用の間に別プロセスが割り込む競合は仕様上のままにしてあるのだ。
func Allocate(promptText string, ordinal int, dir string) string {
	slug := Slugify(promptText)
	name := slug + ".png"

	counter := 1
	if ordinal > 0 {
		counter = ordinal
	}

	for fileExists(filepath.Join(dir, name)) {
		name = fmt.Sprintf("%s_%d.png", slug, counter)
		counter++
	}
	return name
}

// EnsureDir は、出力ディレクトリを中間パスごと冪等に作成します。
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリ '%s' の作成に失敗しました: %w", dir, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
