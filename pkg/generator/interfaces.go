package generator

import (
	"context"
	"time"

	"github.com/shouni/go-image-forge/pkg/domain"

	"google.golang.org/genai"
)

// ImageGenerator はビジネスロジック層が利用する画像生成の統合窓口です。
type ImageGenerator interface {
	// Generate は1つのプロンプト（と任意の参照画像）から0または1枚の画像を生成します。
	Generate(ctx context.Context, req domain.ImageRequest) (*domain.ImageResponse, error)
}

// ModelCaller は Gemini SDK のモデル呼び出し面を抽象化するインターフェースです。
// *genai.Models がそのまま満たします。
type ModelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ByteFetcher は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type ByteFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ByteCacher は、取得済みの参照画像バイト列をキャッシュするためのインターフェースです。
type ByteCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
