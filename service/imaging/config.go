package imaging

import (
	"errors"
	"image"
)

var (
	ErrPixelLimitExceeded = errors.New("the image exceeds max pixels limit")
	ErrInvalidImageSrc    = errors.New("invalid image src")
)

type Config struct {
	// MaxPixels 処理可能な最大画素数
	// この値を超える画素数の画像は全てErrPixelLimitExceededになります
	MaxPixels int
	// Concurrency 同時にデコードする画像の数
	Concurrency int
	// MaxSize 正規化後の画像が収まる大きさ
	MaxSize image.Point
}

// DefaultConfig 投稿・プロフィール画像用の設定
func DefaultConfig() Config {
	return Config{
		MaxPixels:   4096 * 4096,
		Concurrency: 2,
		MaxSize:     image.Pt(1080, 1080),
	}
}
