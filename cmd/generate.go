package cmd

import (
	"fmt"
	"strings"

	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

var (
	optCount      int
	optStyles     string
	optVariations string
)

// generateCmd は、テキストプロンプトからの画像生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate [prompt...]",
	Short: "テキストから画像を生成するのだ。",
	Long: `ベースプロンプトをスタイル・バリエーション指定と掛け合わせて展開し、
1件ずつ順番にAIへ投げて出力ディレクトリへ保存するのだ。
途中で失敗したプロンプトがあっても、残りはそのまま続行されるのだよ。`,
	Example: `  image-forge generate "watercolor painting of a fox"
  image-forge generate "mountain landscape" --count=3
  image-forge generate "logo" --styles=modern,minimal
  image-forge generate "castle" --variations=lighting,mood --preview`,
	Args: cobra.MinimumNArgs(1),
	RunE: generateCommand,
}

func init() {
	generateCmd.Flags().IntVarP(&optCount, "count", "c", 1, fmt.Sprintf("生成する画像の枚数なのだ（1〜%d）。", prompt.MaxCount))
	generateCmd.Flags().StringVar(&optStyles, "styles", "", "カンマ区切りのスタイル一覧なのだ（択一展開される）。")
	generateCmd.Flags().StringVar(&optVariations, "variations", "", "カンマ区切りのバリエーションタグなのだ（lighting / mood は2通りに増える）。")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	if optCount < 1 || optCount > prompt.MaxCount {
		return fmt.Errorf("--count は 1〜%d で指定してほしいのだ: %d", prompt.MaxCount, optCount)
	}

	base := strings.Join(args, " ")
	return runExpandedBatch(
		cmd.Context(),
		base,
		splitCSV(optStyles),
		splitCSV(optVariations),
		optCount,
	)
}
