package prompt

import (
	"fmt"
)

// MaxCount は、1回のバッチで展開できるプロンプト数の上限です。
const MaxCount = 8

// Expand は、ベースプロンプトとスタイル・バリエーション指定から、
// 実際にAIへ投げる具体的なプロンプト列を決定論的に組み立てるのだ。
//
// 展開は次の順で行われる:
//  1. スタイル指定があれば、素のベースは捨てて「スタイルごとの択一」に置き換える。
//  2. バリエーション指定があれば、各プロンプトにタグごとのサフィックスを掛け合わせる。
//     "lighting" と "mood" だけは1タグで2通りに増えるのだ。
//  3. スタイルもバリエーションも無く1件のままなら、count 回だけベースを複製する。
//  4. count を超えた分は末尾から黙って切り捨てる（再配分はしない）。
func Expand(base string, styles, variations []string, count int) []string {
	prompts := []string{base}

	if len(styles) > 0 {
		styled := make([]string, 0, len(styles))
		for _, style := range styles {
			styled = append(styled, fmt.Sprintf("%s, %s style", base, style))
		}
		prompts = styled
	}

	if len(variations) > 0 {
		expanded := make([]string, 0, len(prompts)*len(variations))
		for _, p := range prompts {
			for _, tag := range variations {
				for _, suffix := range variationSuffixes(tag) {
					expanded = append(expanded, p+suffix)
				}
			}
		}
		prompts = expanded
	}

	// 複製はあくまで「修飾による多重化が起きなかった」場合だけなのだ。
	if count > 1 && len(prompts) == 1 {
		replicated := make([]string, count)
		for i := range replicated {
			replicated[i] = base
		}
		prompts = replicated
	}

	if count > 0 && len(prompts) > count {
		prompts = prompts[:count]
	}

	return prompts
}

// variationSuffixes は、バリエーションタグ1つが生むサフィックス列を返すのだ。
// タグの出力順はここで固定されていて、呼び出し側の展開順の土台になるのだ。
func variationSuffixes(tag string) []string {
	switch tag {
	case "lighting":
		return []string{", dramatic lighting", ", soft lighting"}
	case "mood":
		return []string{", cheerful mood", ", dramatic mood"}
	default:
		return []string{", " + tag}
	}
}
