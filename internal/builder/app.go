package builder

import (
	"github.com/shouni/go-image-forge/internal/config"
	"github.com/shouni/go-image-forge/pkg/generator"

	"golang.org/x/time/rate"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// これを各コマンドに渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config             // Configは、起動時に環境変数から一度だけ解決されたグローバル設定です。
	Generator  generator.ImageGenerator   // Generatorは、画像生成AIへのアダプターです。
	References *generator.ReferenceLoader // Referencesは、編集・復元用の参照画像ローダーです。
	Limiter    *rate.Limiter              // Limiterは、逐次生成ループの呼び出し間隔を制御します。
}
