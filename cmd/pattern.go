package cmd

import (
	"strings"

	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

var (
	optPatternType    string
	optPatternDensity string
	optPatternColors  string
)

// patternCmd は、シームレスな繰り返しパターンを生成するのだ。
var patternCmd = &cobra.Command{
	Use:   "pattern [description...]",
	Short: "シームレスな繰り返しパターンを生成するのだ。",
	Long: `説明文を「継ぎ目なくタイリングできるパターン」用の定型プロンプトに整形して
1枚生成するのだ。壁紙や背景素材づくりに便利なのだよ。`,
	Example: `  image-forge pattern "autumn leaves"
  image-forge pattern "tiny stars" --type=geometric --density=dense --colors="navy and gold"`,
	Args: cobra.MinimumNArgs(1),
	RunE: patternCommand,
}

func init() {
	patternCmd.Flags().StringVar(&optPatternType, "type", "decorative", "パターン種別なのだ（geometric / floral / decorative など）。")
	patternCmd.Flags().StringVar(&optPatternDensity, "density", "", "モチーフの密度なのだ（sparse / dense など）。")
	patternCmd.Flags().StringVar(&optPatternColors, "colors", "", "カラーパレットの指定なのだ。")
}

func patternCommand(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	promptText := prompt.BuildPatternPrompt(description, optPatternType, optPatternDensity, optPatternColors)
	return runSinglePrompt(cmd.Context(), promptText)
}
