package cmd

import (
	"strings"

	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

var (
	optDiagramType       string
	optDiagramLayout     string
	optDiagramComplexity string
	optDiagramSize       string
)

// diagramCmd は、ドキュメント向けの図解画像を生成するのだ。
var diagramCmd = &cobra.Command{
	Use:   "diagram [description...]",
	Short: "フローチャートなどの図解画像を生成するのだ。",
	Long: `説明文を図解向けの定型プロンプト（読めるラベル・フラットな作風）に整形して
1枚生成するのだ。資料やREADMEの挿絵づくりに使えるのだよ。`,
	Example: `  image-forge diagram "user login flow"
  image-forge diagram "microservice architecture" --type=architecture --layout=left-to-right`,
	Args: cobra.MinimumNArgs(1),
	RunE: diagramCommand,
}

func init() {
	diagramCmd.Flags().StringVar(&optDiagramType, "type", "flowchart", "図の種別なのだ（flowchart / architecture / mindmap など）。")
	diagramCmd.Flags().StringVar(&optDiagramLayout, "layout", "", "図のレイアウト方向なのだ（top-down / left-to-right など）。")
	diagramCmd.Flags().StringVar(&optDiagramComplexity, "complexity", "", "図の複雑さなのだ（simple / detailed など）。")
	diagramCmd.Flags().StringVar(&optDiagramSize, "size", "", "想定する表示サイズなのだ（wide / square など）。")
}

func diagramCommand(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	promptText := prompt.BuildDiagramPrompt(description, optDiagramType, optDiagramLayout, optDiagramComplexity, optDiagramSize)
	return runSinglePrompt(cmd.Context(), promptText)
}
