package cmd

import (
	"github.com/spf13/cobra"
)

// promptTips は、良い画像プロンプトを書くためのローカルなガイドなのだ。
// APIキーもネットワークも不要で、いつでも表示できるのだよ。
const promptTips = `=== 画像プロンプトのコツなのだ ===

1. 具体的に書くのだ
   悪い例: "a dog"
   良い例: "a golden retriever puppy playing in autumn leaves, soft morning light"

2. 画風を指定するのだ
   例: "watercolor", "oil painting", "pixel art", "flat vector illustration"
   コマンドなら --styles=watercolor,minimal のように渡せるのだ。

3. 光と雰囲気を足すのだ
   例: "dramatic lighting", "golden hour", "cheerful mood", "moody atmosphere"
   --variations=lighting,mood で自動バリエーションも作れるのだよ。

4. 構図を伝えるのだ
   例: "close-up portrait", "wide landscape shot", "bird's-eye view"

5. 用途別サブコマンドを使うのだ
   icon    : アイコン向けの定型プロンプト + 複数サイズ出力
   pattern : シームレスな繰り返しパターン
   diagram : ラベルが読める図解
   story   : 登場人物が一貫した連続シーン
   restore : 古い写真の修復

6. 編集は指示を1つに絞るのだ
   悪い例: "fix everything and make it better"
   良い例: "remove the power lines from the sky"

まずは短いプロンプトで試して、結果を見ながら言葉を足していくのが近道なのだ！`

// tipsCmd は、プロンプト作成のガイドを表示するだけのコマンドなのだ。
var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "画像プロンプト作成のコツを表示するのだ。",
	Long:  `効果的な画像生成プロンプトの書き方を表示するのだ。APIキーは不要なのだよ。`,
	Args:  cobra.NoArgs,
	RunE:  tipsCommand,
}

func tipsCommand(cmd *cobra.Command, args []string) error {
	cmd.Println(promptTips)
	return nil
}
