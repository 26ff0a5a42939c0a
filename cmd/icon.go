package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shouni/go-image-forge/internal/runner"
	"github.com/shouni/go-image-forge/pkg/domain"
	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

var (
	optIconSizes      string
	optIconType       string
	optIconBackground string
	optIconCorners    string
	optIconInput      string
)

// iconCmd は、アプリアイコンやファビコンを複数サイズで生成するのだ。
var iconCmd = &cobra.Command{
	Use:   "icon [description...]",
	Short: "アプリアイコンやUI素材を複数サイズで生成するのだ。",
	Long: `説明文をアイコン向けの定型プロンプトに整形して1枚だけ生成し、
要求された各サイズへローカルで縮小して保存するのだ。
--input で既存画像を渡せば、それをアイコン化することもできるのだよ。`,
	Example: `  image-forge icon "coffee cup logo"
  image-forge icon "rocket ship" --sizes=64,128,256 --type=app-icon
  image-forge icon "hamburger menu" --type=ui-element --corners=rounded
  image-forge icon "simplify this" --input=logo.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: iconCommand,
}

func init() {
	iconCmd.Flags().StringVar(&optIconSizes, "sizes", "64,128,256", "カンマ区切りのアイコンサイズ一覧なのだ。")
	iconCmd.Flags().StringVar(&optIconType, "type", "app-icon", "アイコン種別なのだ（app-icon / favicon / ui-element）。")
	iconCmd.Flags().StringVar(&optIconBackground, "background", "", "背景の指定なのだ（transparent, solid white など）。")
	iconCmd.Flags().StringVar(&optIconCorners, "corners", "", "角の形状なのだ（rounded / sharp など）。")
	iconCmd.Flags().StringVarP(&optIconInput, "input", "i", "", "アイコン化する既存画像のパスまたはURLなのだ。")
}

func iconCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := strings.Join(args, " ")

	sizes, err := parseSizes(optIconSizes)
	if err != nil {
		return err
	}

	appCtx, err := setup(ctx)
	if err != nil {
		return err
	}

	var refs []domain.ReferenceImage
	if optIconInput != "" {
		ref, err := appCtx.References.Load(ctx, optIconInput)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	promptText := prompt.BuildIconPrompt(description, optIconType, optIconBackground, optIconCorners)

	iconRunner, err := runner.NewIconRunner(appCtx.Generator, appCtx.Limiter, optOutputDir, optPreview)
	if err != nil {
		return fmt.Errorf("IconRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := iconRunner.Run(ctx, promptText, description, sizes, refs)
	if err != nil {
		return fmt.Errorf("アイコン生成に失敗したのだ: %w", err)
	}

	slog.Info("アイコン生成が完了したのだ！", "written", domain.CountWritten(items), "sizes", len(sizes))
	return nil
}

// parseSizes は --sizes フラグを正のサイズ列に変換するのだ。
func parseSizes(raw string) ([]int, error) {
	parts := splitCSV(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("--sizes に有効なサイズが1つもないのだ: %q", raw)
	}

	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		size, err := strconv.Atoi(p)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("不正なサイズ指定なのだ: %q", p)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
