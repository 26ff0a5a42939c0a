package generator

import (
	"context"
	"time"

	"google.golang.org/genai"
)

// mockCaller は ModelCaller のテスト用モックなのだ。
type mockCaller struct {
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls        int
}

func (m *mockCaller) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, contents, config)
	}
	return nil, nil
}

// mockFetcher は ByteFetcher のテスト用モックなのだ。
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	calls     int
}

func (m *mockFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, nil
}

// mockCache は ByteCacher のテスト用モックなのだ。
type mockCache struct {
	store map[string]any
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]any)}
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.store[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, _ time.Duration) {
	m.store[key] = value
}

// inlineImageResponse は InlineData 入りの応答を組み立てるテストヘルパーなのだ。
func inlineImageResponse(data []byte, mime string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
					},
				},
			},
		},
	}
}

// textResponse はテキストパートだけの応答を組み立てるテストヘルパーなのだ。
func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, &genai.Part{Text: t})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}
