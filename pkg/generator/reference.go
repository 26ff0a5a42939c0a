package generator

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shouni/go-image-forge/pkg/domain"

	"github.com/shouni/gemini-image-kit/imgutil"
)

const (
	// compressThreshold を超える参照画像はインライン送信前にJPEGへ圧縮します。
	compressThreshold = 4 << 20
	compressQuality   = 75
)

// ReferenceLoader は、編集・復元に使う参照画像をローカルファイルまたは
// URL から取得して、インライン送信できる形に整えるコンポーネントです。
type ReferenceLoader struct {
	fetcher ByteFetcher
	cache   ByteCacher
	ttl     time.Duration
}

// NewReferenceLoader は依存関係を注入して ReferenceLoader を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewReferenceLoader(fetcher ByteFetcher, cache ByteCacher, ttl time.Duration) (*ReferenceLoader, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher (ByteFetcher) is required")
	}
	return &ReferenceLoader{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
	}, nil
}

// Load は、参照元（ファイルパス or http(s) URL）から画像を読み込むのだ。
// 画像以外のデータだった場合はエラーになるのだよ。
func (l *ReferenceLoader) Load(ctx context.Context, source string) (domain.ReferenceImage, error) {
	data, err := l.fetch(ctx, source)
	if err != nil {
		return domain.ReferenceImage{}, err
	}

	// 大きすぎる参照画像はリクエスト肥大を避けるためJPEGに圧縮する。
	// 圧縮に失敗しても元データのまま続行する。
	if len(data) > compressThreshold {
		if compressed, cerr := imgutil.CompressToJPEG(bytes.NewReader(data), compressQuality); cerr == nil {
			data = compressed
		}
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.ReferenceImage{}, fmt.Errorf("参照元 '%s' は画像ではありません (MIME: %s)", source, mimeType)
	}

	return domain.ReferenceImage{MIMEType: mimeType, Data: data}, nil
}

func (l *ReferenceLoader) fetch(ctx context.Context, source string) ([]byte, error) {
	if isHTTPSource(source) {
		return l.fetchRemote(ctx, source)
	}

	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("参照画像が見つかりません: %s", source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("参照画像 '%s' の読み込みに失敗しました: %w", source, err)
	}
	return data, nil
}

func (l *ReferenceLoader) fetchRemote(ctx context.Context, rawURL string) ([]byte, error) {
	if l.cache != nil {
		if cached, found := l.cache.Get(rawURL); found {
			if data, ok := cached.([]byte); ok {
				return data, nil
			}
		}
	}

	if safe, err := isSafeURL(rawURL); !safe || err != nil {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}

	data, err := l.fetcher.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("参照画像のダウンロードに失敗しました: %w", err)
	}

	if l.cache != nil {
		l.cache.Set(rawURL, data, l.ttl)
	}
	return data, nil
}

func isHTTPSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// isSafeURL は SSRF 対策として URL を検証します。
// 名前解決されたすべての IP アドレスに対してプライベート IP チェックを行います。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolved, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolved
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
