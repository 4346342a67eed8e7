package imaging

import (
	"bytes"
	"context"
	"image"
	"io"
)

// Processor アップロード画像の処理
type Processor interface {
	// Fit 画像をboxに収まるように縮小します
	//
	// 既に収まっている場合はデコードした画像をそのまま返します。
	// 画像として読み込めない場合、ErrInvalidImageSrcを返します。
	// 画素数が多すぎる場合、ErrPixelLimitExceededを返します。
	// ctxが終了した場合、ctx.Err()を返します。
	Fit(ctx context.Context, src io.ReadSeeker, box image.Point) (image.Image, error)
	// Normalize 画像をConfig.MaxSizeに収め、PNGにエンコードします
	Normalize(ctx context.Context, src io.ReadSeeker) (*bytes.Buffer, error)
}
