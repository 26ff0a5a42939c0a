package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-image-forge/pkg/domain"
	"github.com/shouni/go-image-forge/pkg/generator"
	"github.com/shouni/go-image-forge/pkg/output"
	"github.com/shouni/go-image-forge/pkg/viewer"

	"golang.org/x/time/rate"
)

// Batch は、展開済みプロンプト列を処理して保存まで行うインターフェース。
type Batch interface {
	// Run は全プロンプトを順に処理し、アイテムごとの結果リストを返す。
	Run(ctx context.Context, prompts []string, refs []domain.ReferenceImage) ([]domain.BatchItem, error)
}

// BatchRunner は、プロンプトを1件ずつAIへ投げて結果を保存する実体なのだ。
// 呼び出しは厳密に逐次で、各呼び出しの完了を待ってから次へ進むのだ。
// 1件の失敗はそのアイテムの結果に記録するだけで、バッチ全体は止めないのだよ。
type BatchRunner struct {
	imageGen  generator.ImageGenerator
	limiter   *rate.Limiter
	outputDir string
	preview   bool
}

// NewBatchRunner は、BatchRunnerの新しいインスタンスを生成して返す。
// limiter は nil を許容します（流量制限なし動作）。
func NewBatchRunner(imageGen generator.ImageGenerator, limiter *rate.Limiter, outputDir string, preview bool) (*BatchRunner, error) {
	if imageGen == nil {
		return nil, fmt.Errorf("imageGen (generator.ImageGenerator) is required")
	}
	if outputDir == "" {
		return nil, fmt.Errorf("outputDir is required")
	}
	return &BatchRunner{
		imageGen:  imageGen,
		limiter:   limiter,
		outputDir: outputDir,
		preview:   preview,
	}, nil
}

// Run は逐次生成のメインループなのだ。
func (r *BatchRunner) Run(ctx context.Context, prompts []string, refs []domain.ReferenceImage) ([]domain.BatchItem, error) {
	items := make([]domain.BatchItem, 0, len(prompts))

	for i, promptText := range prompts {
		// 流量制限に従って、自分の番が来るまで待機するのだ
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return items, fmt.Errorf("待機中に中断されたのだ: %w", err)
			}
		}

		slog.Info("画像を生成中なのだ...", "index", i+1, "total", len(prompts), "prompt", promptText)

		resp, err := r.imageGen.Generate(ctx, domain.ImageRequest{Prompt: promptText, References: refs})
		if err != nil {
			slog.Error("画像生成に失敗したのだ。次のプロンプトへ進むのだ", "index", i+1, "error", err)
			items = append(items, domain.BatchItem{Prompt: promptText, Err: err})
			continue
		}

		path, err := r.save(promptText, i, resp.Data)
		if err != nil {
			slog.Error("画像の保存に失敗したのだ", "index", i+1, "error", err)
			items = append(items, domain.BatchItem{Prompt: promptText, Err: err})
			continue
		}

		slog.Info("保存したのだ！", "path", path)
		if r.preview {
			viewer.Open(path)
		}
		items = append(items, domain.BatchItem{Prompt: promptText, Path: path})
	}

	return items, nil
}

// save は、出力ディレクトリを冪等に用意してから衝突しない名前で書き込むのだ。
func (r *BatchRunner) save(promptText string, ordinal int, data []byte) (string, error) {
	if err := output.EnsureDir(r.outputDir); err != nil {
		return "", err
	}
	name := output.Allocate(promptText, ordinal, r.outputDir)
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	return path, nil
}
