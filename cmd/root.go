package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/go-image-forge/internal/builder"
	"github.com/shouni/go-image-forge/internal/config"
	"github.com/shouni/go-image-forge/internal/runner"
	"github.com/shouni/go-image-forge/pkg/domain"
	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

// グローバルフラグなのだ
var (
	optOutputDir string
	optPreview   bool
)

// rootCmd は image-forge のルートコマンドなのだ。
// 未知のサブコマンドや素の引数は、すべて自由形式の generate プロンプトとして扱うのだよ。
var rootCmd = &cobra.Command{
	Use:   "image-forge [prompt...]",
	Short: "テキストプロンプトからGeminiで画像を生成するCLIなのだ。",
	Long: `image-forge は、短いテキストプロンプトを Gemini の画像生成APIに変換して、
結果のPNGをローカルの出力ディレクトリへ保存するコマンドラインツールなのだ。
サブコマンドを指定しなければ、引数全体を1つの生成プロンプトとして扱うのだよ。`,
	Example: `  image-forge "a watercolor fox in a snowy forest"
  image-forge generate "logo" --styles=modern,minimal
  image-forge edit photo.png "make it sunset lighting"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runExpandedBatch(cmd.Context(), strings.Join(args, " "), nil, nil, 1)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&optOutputDir, "output", "o", config.DefaultOutputDir, "生成画像を保存するディレクトリなのだ。")
	rootCmd.PersistentFlags().BoolVarP(&optPreview, "preview", "p", false, "保存後にデフォルトビューアで開くのだ（ベストエフォート）。")

	rootCmd.AddCommand(
		generateCmd,
		editCmd,
		restoreCmd,
		iconCmd,
		patternCmd,
		diagramCmd,
		storyCmd,
		tipsCmd,
	)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// setup は、設定のロードと共有コンポーネントの初期化をまとめるのだ。
// APIキーが無ければここで失敗して、ネットワークには一切触れないのだ。
func setup(ctx context.Context) (*builder.AppContext, error) {
	cfg := config.LoadConfig()
	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("image-forge を起動するのだ！",
		"image_model", cfg.ImageModel,
		"output_dir", optOutputDir)
	return appCtx, nil
}

// runExpandedBatch は generate 系コマンドの共通実行ロジックなのだ。
func runExpandedBatch(ctx context.Context, base string, styles, variations []string, count int) error {
	appCtx, err := setup(ctx)
	if err != nil {
		return err
	}

	prompts := prompt.Expand(base, styles, variations, count)
	slog.Info("プロンプトを展開したのだ", "base", base, "expanded", len(prompts))

	batch, err := runner.NewBatchRunner(appCtx.Generator, appCtx.Limiter, optOutputDir, optPreview)
	if err != nil {
		return fmt.Errorf("BatchRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := batch.Run(ctx, prompts, nil)
	if err != nil {
		return fmt.Errorf("バッチ実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("バッチが完了したのだ！", "written", domain.CountWritten(items), "total", len(items))
	return nil
}

// runSinglePrompt は、定型プロンプト1本を生成して保存する共通ロジックなのだ。
// pattern / diagram のような単発コマンドは、失敗をそのまま終了コードへ反映するのだ。
func runSinglePrompt(ctx context.Context, promptText string) error {
	appCtx, err := setup(ctx)
	if err != nil {
		return err
	}

	batch, err := runner.NewBatchRunner(appCtx.Generator, appCtx.Limiter, optOutputDir, optPreview)
	if err != nil {
		return fmt.Errorf("BatchRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := batch.Run(ctx, []string{promptText}, nil)
	if err != nil {
		return fmt.Errorf("生成の実行中にエラーが発生したのだ: %w", err)
	}
	if len(items) == 1 && items[0].Err != nil {
		return fmt.Errorf("画像の生成に失敗したのだ: %w", items[0].Err)
	}

	slog.Info("生成が完了したのだ！", "path", items[0].Path)
	return nil
}

// splitCSV はカンマ区切りフラグをトリム済みの要素リストへ変換するのだ。
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
