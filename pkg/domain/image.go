package domain

// ImageRequest は、画像生成AIへの1回分の要求です。
// Prompt は必須で、References は編集・復元時に同梱する参照画像です。
type ImageRequest struct {
	Prompt     string
	References []ReferenceImage
}

// ReferenceImage は、インライン送信する参照画像のバイト列とMIMEタイプです。
type ReferenceImage struct {
	MIMEType string
	Data     []byte
}

// ImageResponse は、生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
}

// BatchItem は、バッチ内の1プロンプトに対する結果なのだ。
// 成功なら Path に保存先が入り、失敗なら Err に理由が入るのだ。
// 途中で失敗したプロンプトがあっても、残りの処理はそのまま続行されるのだよ。
type BatchItem struct {
	Prompt string
	Path   string
	Err    error
}

// Succeeded は、このアイテムが保存まで完了したかを返します。
func (b BatchItem) Succeeded() bool {
	return b.Err == nil
}

// CountWritten は、バッチ結果のうち保存に成功した件数を数えるのだ。
func CountWritten(items []BatchItem) int {
	n := 0
	for _, item := range items {
		if item.Succeeded() {
			n++
		}
	}
	return n
}
