package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-image-forge/internal/runner"
	"github.com/shouni/go-image-forge/pkg/domain"

	"github.com/spf13/cobra"
)

// editCmd は、既存画像への自然言語編集を実行するのだ。
var editCmd = &cobra.Command{
	Use:   "edit <image> <instruction...>",
	Short: "既存の画像を自然言語の指示で編集するのだ。",
	Long: `ローカルの画像ファイル（または http(s) URL）を参照画像として添えて、
編集指示のプロンプトと一緒にAIへ送るのだ。結果は新しいPNGとして保存されるのだよ。`,
	Example: `  image-forge edit photo.png "make it sunset lighting"
  image-forge edit landscape.png "add a rainbow in the sky" --preview`,
	Args: cobra.MinimumNArgs(2),
	RunE: editCommand,
}

func editCommand(cmd *cobra.Command, args []string) error {
	source := args[0]
	instruction := strings.Join(args[1:], " ")
	return runEdit(cmd.Context(), source, instruction)
}

// runEdit は edit / restore の共通実行ロジックなのだ。
// 参照画像が見つからない場合は、API呼び出しの前に入力エラーとして失敗するのだ。
func runEdit(ctx context.Context, source, instruction string) error {
	appCtx, err := setup(ctx)
	if err != nil {
		return err
	}

	ref, err := appCtx.References.Load(ctx, source)
	if err != nil {
		return err
	}

	batch, err := runner.NewBatchRunner(appCtx.Generator, appCtx.Limiter, optOutputDir, optPreview)
	if err != nil {
		return fmt.Errorf("BatchRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := batch.Run(ctx, []string{instruction}, []domain.ReferenceImage{ref})
	if err != nil {
		return fmt.Errorf("編集の実行中にエラーが発生したのだ: %w", err)
	}

	// 単発バッチなので、失敗はそのまま終了コードに反映するのだ
	if len(items) == 1 && items[0].Err != nil {
		return fmt.Errorf("画像の編集に失敗したのだ: %w", items[0].Err)
	}

	slog.Info("編集が完了したのだ！", "path", items[0].Path)
	return nil
}
