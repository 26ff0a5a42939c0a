package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-image-forge/internal/config"
	"github.com/shouni/go-image-forge/pkg/generator"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/httpkit"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// NewAppContext は、設定を基にすべての共有コンポーネントを初期化して返すのだ。
// APIキーの検証はここで行われ、欠けていればネットワークに触れる前に失敗するのだ。
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg (config.Config) is required")
	}
	if !cfg.HasCredential() {
		return nil, fmt.Errorf("APIキーが設定されていません。GEMINI_API_KEY / GOOGLE_API_KEY / FORGE_API_KEY のいずれかを設定してほしいのだ")
	}

	aiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}

	imgGen, err := generator.NewGeminiGenerator(aiClient.Models, cfg.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	httpClient := httpkit.New(cfg.HTTPTimeout)
	refCache := gocache.New(cfg.ReferenceTTL, 2*cfg.ReferenceTTL)
	refs, err := generator.NewReferenceLoader(httpClient, refCache, cfg.ReferenceTTL)
	if err != nil {
		return nil, fmt.Errorf("ReferenceLoaderの初期化に失敗したのだ: %w", err)
	}

	return &AppContext{
		Config:     cfg,
		Generator:  imgGen,
		References: refs,
		Limiter:    rate.NewLimiter(rate.Every(cfg.RateInterval), 1),
	}, nil
}
