package prompt

import (
	"fmt"
	"strings"
)

// RestoreInstruction は、restore コマンドが編集プリミティブに渡す固定の復元指示です。
const RestoreInstruction = "Restore this old or damaged photograph. Repair scratches, tears, stains and fading, recover lost detail, correct the color balance, and reduce noise while keeping the original composition, faces and era-appropriate look intact. Do not add new objects."

// BuildIconPrompt は、アイコン生成用のプロンプトを組み立てます。
// 小さいサイズでも視認できるよう、構図の制約をテンプレートとして固定しています。
func BuildIconPrompt(description, iconType, background, corners string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a clean, professional %s icon: %s.", iconType, description))
	sb.WriteString(" The icon should be simple, recognizable, and work well at small sizes.")
	sb.WriteString(" Use a square 1:1 aspect ratio and center the subject.")
	if background != "" {
		sb.WriteString(fmt.Sprintf(" Background: %s.", background))
	}
	if corners != "" {
		sb.WriteString(fmt.Sprintf(" Corner style: %s corners.", corners))
	}
	return sb.String()
}

// BuildPatternPrompt は、シームレスパターン生成用のプロンプトを組み立てます。
func BuildPatternPrompt(description, patternType, density, colors string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a seamless repeating %s pattern: %s.", patternType, description))
	sb.WriteString(" The pattern must tile perfectly with no visible seams at the edges.")
	if density != "" {
		sb.WriteString(fmt.Sprintf(" Element density: %s.", density))
	}
	if colors != "" {
		sb.WriteString(fmt.Sprintf(" Color palette: %s.", colors))
	}
	return sb.String()
}

// BuildDiagramPrompt は、図解・ダイアグラム生成用のプロンプトを組み立てます。
func BuildDiagramPrompt(description, diagramType, layout, complexity, size string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a clear %s diagram: %s.", diagramType, description))
	sb.WriteString(" Use legible labels, strong contrast and a flat professional style suitable for documentation.")
	if layout != "" {
		sb.WriteString(fmt.Sprintf(" Layout: %s.", layout))
	}
	if complexity != "" {
		sb.WriteString(fmt.Sprintf(" Complexity level: %s.", complexity))
	}
	if size != "" {
		sb.WriteString(fmt.Sprintf(" Target size: %s.", size))
	}
	return sb.String()
}

// BuildStorySteps は、1つの題材を steps 個の連続シーンに割ったプロンプト列を返すのだ。
// 各シーンに通し番号を埋め込むことで、前後のつながりをAIに意識させるのだ。
func BuildStorySteps(description string, steps int, style, transition string) []string {
	prompts := make([]string, 0, steps)
	for i := 1; i <= steps; i++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s, scene %d of %d in a visual story sequence", description, i, steps))
		if style != "" {
			sb.WriteString(fmt.Sprintf(", %s style", style))
		}
		if transition != "" && i > 1 {
			sb.WriteString(fmt.Sprintf(", %s transition from the previous scene", transition))
		}
		sb.WriteString(", consistent characters and setting across all scenes")
		prompts = append(prompts, sb.String())
	}
	return prompts
}
