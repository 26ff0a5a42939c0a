// Package viewer は、生成したファイルをOS標準のビューアで開くベストエフォート機能です。
// 起動の失敗は呼び出し元に一切伝搬しません（リトライもしないのだ）。
package viewer

import (
	"os/exec"
	"runtime"
)

// Open は path をデフォルトビューアで開こうと試みるのだ。
// 失敗しても何も起きない。生成処理の成否には影響させないのだよ。
func Open(path string) {
	name, args := openCommand(runtime.GOOS, path)
	_ = exec.Command(name, args...).Start()
}

// openCommand は GOOS ごとの起動コマンドを返します。
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
