package cmd

import (
	"github.com/shouni/go-image-forge/pkg/prompt"

	"github.com/spf13/cobra"
)

// restoreCmd は、古い写真の修復を定型指示で実行するのだ。
// 中身は edit プリミティブに固定の復元プロンプトを渡しているだけなのだよ。
var restoreCmd = &cobra.Command{
	Use:   "restore <image>",
	Short: "古い写真や傷んだ写真を修復するのだ。",
	Long: `傷・破れ・退色の修復と色調の回復を指示する定型プロンプトで、
指定した写真をAIに復元させるのだ。構図や人物はそのまま保たれるのだよ。`,
	Example: `  image-forge restore old_family_photo.png
  image-forge restore scan.jpg --preview`,
	Args: cobra.ExactArgs(1),
	RunE: restoreCommand,
}

func restoreCommand(cmd *cobra.Command, args []string) error {
	return runEdit(cmd.Context(), args[0], prompt.RestoreInstruction)
}
