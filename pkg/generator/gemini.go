package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-image-forge/pkg/domain"

	"google.golang.org/genai"
)

// base64MinLen は、テキストパートを画像の base64 とみなす最小の長さです。
// この閾値と文字種チェックは外部プロトコル側の観測に基づく契約なので変更しないこと。
const base64MinLen = 1000

var base64Shape = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// GeminiGenerator は、プロンプトと参照画像を Gemini API の形式に変換して
// 1枚の画像を取り出すアダプターです。リトライは一切行いません。
type GeminiGenerator struct {
	caller ModelCaller
	model  string
}

// NewGeminiGenerator は依存関係を注入して GeminiGenerator を初期化するのだ。
func NewGeminiGenerator(caller ModelCaller, model string) (*GeminiGenerator, error) {
	if caller == nil {
		return nil, fmt.Errorf("caller (ModelCaller) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &GeminiGenerator{
		caller: caller,
		model:  model,
	}, nil
}

// Generate はリクエストをパート列に変換して通信し、最初の画像パートを返すのだ。
func (g *GeminiGenerator) Generate(ctx context.Context, req domain.ImageRequest) (*domain.ImageResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("プロンプトが空です")
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, ref := range req.References {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: ref.MIMEType, Data: ref.Data},
		})
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := g.caller.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	return parseResponse(resp)
}

// parseResponse は、最初の候補の中から最初の「画像らしい」パートを取り出すのだ。
// 明示的なバイナリフィールドか、base64の形をした長いテキストのどちらかを画像として扱う。
func parseResponse(resp *genai.GenerateContentResponse) (*domain.ImageResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return &domain.ImageResponse{Data: part.InlineData.Data, MimeType: mime}, nil
			}
			if looksLikeBase64Image(part.Text) {
				if data, err := base64.StdEncoding.DecodeString(part.Text); err == nil && len(data) > 0 {
					return &domain.ImageResponse{Data: data, MimeType: "image/png"}, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("画像データが見つかりませんでした")
}

func looksLikeBase64Image(text string) bool {
	return len(text) > base64MinLen && base64Shape.MatchString(text)
}
