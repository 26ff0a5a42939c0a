package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel   = "gemini-2.5-flash-image-preview"
	DefaultOutputDir    = "generated_images" // カレントディレクトリ直下の固定出力先
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = 2 * time.Second // 逐次生成ループの呼び出し間隔
	DefaultReferenceTTL = 10 * time.Minute
)

// credentialEnvVars は APIキーを探す環境変数の優先順です。先に見つかった方が勝つのだ。
var credentialEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "FORGE_API_KEY"}

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
// 生成途中で環境変数に手を伸ばさないよう、起動時に一度だけ解決して持ち回るのだよ。
type Config struct {
	APIKey       string
	ImageModel   string
	RateInterval time.Duration
	HTTPTimeout  time.Duration
	ReferenceTTL time.Duration
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		APIKey:       resolveAPIKey(),
		ImageModel:   envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		RateInterval: DefaultRateInterval,
		HTTPTimeout:  DefaultHTTPTimeout,
		ReferenceTTL: DefaultReferenceTTL,
	}
}

// HasCredential は、利用可能なAPIキーが解決できたかを返します。
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}

func resolveAPIKey() string {
	for _, key := range credentialEnvVars {
		if v := envutil.GetEnv(key, ""); v != "" {
			return v
		}
	}
	return ""
}
