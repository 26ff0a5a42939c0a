package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-image-forge/pkg/domain"
	"github.com/shouni/go-image-forge/pkg/generator"
	"github.com/shouni/go-image-forge/pkg/imaging"
	"github.com/shouni/go-image-forge/pkg/output"
	"github.com/shouni/go-image-forge/pkg/viewer"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// IconRunner は、1回の生成結果を複数サイズのアイコンに展開して保存する実体なのだ。
// API呼び出しは1回だけで、サイズ展開はローカルの縮小処理で行うのだよ。
type IconRunner struct {
	imageGen  generator.ImageGenerator
	limiter   *rate.Limiter
	outputDir string
	preview   bool
}

// NewIconRunner は、IconRunnerの新しいインスタンスを生成して返す。
func NewIconRunner(imageGen generator.ImageGenerator, limiter *rate.Limiter, outputDir string, preview bool) (*IconRunner, error) {
	if imageGen == nil {
		return nil, fmt.Errorf("imageGen (generator.ImageGenerator) is required")
	}
	if outputDir == "" {
		return nil, fmt.Errorf("outputDir is required")
	}
	return &IconRunner{
		imageGen:  imageGen,
		limiter:   limiter,
		outputDir: outputDir,
		preview:   preview,
	}, nil
}

// Run はベース画像を1枚生成し、要求された各サイズへ縮小して保存するのだ。
// ベース生成の失敗は全体の失敗。個々のサイズの失敗はそのアイテムだけに留まるのだ。
func (r *IconRunner) Run(ctx context.Context, promptText, description string, sizes []int, refs []domain.ReferenceImage) ([]domain.BatchItem, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("待機中に中断されたのだ: %w", err)
		}
	}

	slog.Info("ベースアイコンを生成中なのだ...", "prompt", promptText)
	resp, err := r.imageGen.Generate(ctx, domain.ImageRequest{Prompt: promptText, References: refs})
	if err != nil {
		return nil, fmt.Errorf("ベースアイコンの生成に失敗したのだ: %w", err)
	}

	// 縮小はローカルのCPU仕事なので並列で済ませるのだ。
	// API呼び出し自体は上の1回だけで、逐次契約は崩れないのだよ。
	resized := make([][]byte, len(sizes))
	resizeErrs := make([]error, len(sizes))
	eg, _ := errgroup.WithContext(ctx)
	for i, size := range sizes {
		eg.Go(func() error {
			resized[i], resizeErrs[i] = imaging.Downscale(resp.Data, size)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 名前の割り当てと書き込みは、割り当て器の逐次契約に合わせて直列で行うのだ
	items := make([]domain.BatchItem, 0, len(sizes))
	for i, size := range sizes {
		label := fmt.Sprintf("%s icon %dx%d", description, size, size)
		if resizeErrs[i] != nil {
			slog.Error("アイコンの縮小に失敗したのだ", "size", size, "error", resizeErrs[i])
			items = append(items, domain.BatchItem{Prompt: label, Err: resizeErrs[i]})
			continue
		}

		path, err := r.save(label, resized[i])
		if err != nil {
			slog.Error("アイコンの保存に失敗したのだ", "size", size, "error", err)
			items = append(items, domain.BatchItem{Prompt: label, Err: err})
			continue
		}

		slog.Info("アイコンを保存したのだ！", "size", size, "path", path)
		if r.preview {
			viewer.Open(path)
		}
		items = append(items, domain.BatchItem{Prompt: label, Path: path})
	}

	return items, nil
}

func (r *IconRunner) save(label string, data []byte) (string, error) {
	if err := output.EnsureDir(r.outputDir); err != nil {
		return "", err
	}
	name := output.Allocate(label, 0, r.outputDir)
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	return path, nil
}
