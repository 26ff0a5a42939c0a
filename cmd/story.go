package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-image-forge/internal/runner"
	"github.com/shouni/go-image-forge/pkg/domain"
	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

var (
	optStorySteps      int
	optStoryStyle      string
	optStoryTransition string
)

const (
	storyMinSteps = 2
	storyMaxSteps = 8
)

// storyCmd は、ひとつの物語を連続したシーン画像として生成するのだ。
var storyCmd = &cobra.Command{
	Use:   "story [description...]",
	Short: "物語をシーンごとの連続画像として生成するのだ。",
	Long: `説明文をN個のシーンプロンプトへ展開して、1枚ずつ順番に生成するのだ。
各シーンには「登場人物と舞台を一貫させる」指示が付くので、
続き物の挿絵や絵コンテづくりに向いているのだよ。`,
	Example: `  image-forge story "a cat's adventure in the city"
  image-forge story "seed growing into a tree" --steps=6 --style=watercolor
  image-forge story "hero's journey" --transition="time passes"`,
	Args: cobra.MinimumNArgs(1),
	RunE: storyCommand,
}

func init() {
	storyCmd.Flags().IntVar(&optStorySteps, "steps", 4, "シーンの数なのだ（2〜8）。")
	storyCmd.Flags().StringVar(&optStoryStyle, "style", "", "全シーン共通の画風なのだ。")
	storyCmd.Flags().StringVar(&optStoryTransition, "transition", "", "シーン間のつなぎ方の指示なのだ。")
}

func storyCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := strings.Join(args, " ")

	if optStorySteps < storyMinSteps || optStorySteps > storyMaxSteps {
		return fmt.Errorf("--steps は %d〜%d の範囲で指定するのだ: %d", storyMinSteps, storyMaxSteps, optStorySteps)
	}

	appCtx, err := setup(ctx)
	if err != nil {
		return err
	}

	prompts := prompt.BuildStorySteps(description, optStorySteps, optStoryStyle, optStoryTransition)
	slog.Info("物語をシーンに展開したのだ", "description", description, "scenes", len(prompts))

	batch, err := runner.NewBatchRunner(appCtx.Generator, appCtx.Limiter, optOutputDir, optPreview)
	if err != nil {
		return fmt.Errorf("BatchRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := batch.Run(ctx, prompts, nil)
	if err != nil {
		return fmt.Errorf("物語の生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("物語の生成が完了したのだ！", "written", domain.CountWritten(items), "scenes", len(items))
	return nil
}
