package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // image.Decode用
	_ "image/jpeg" // image.Decode用
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // image.Decode用
	"golang.org/x/sync/semaphore"
)

type processor struct {
	c   Config
	sem *semaphore.Weighted
	enc png.Encoder
}

func NewProcessor(c Config) Processor {
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	return &processor{
		c:   c,
		sem: semaphore.NewWeighted(int64(c.Concurrency)),
		enc: png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

func (p *processor) decode(src io.ReadSeeker) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, ErrInvalidImageSrc
	}
	if cfg.Width*cfg.Height > p.c.MaxPixels {
		return nil, ErrPixelLimitExceeded
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind src: %w", err)
	}

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrInvalidImageSrc
	}
	return img, nil
}

func (p *processor) Fit(ctx context.Context, src io.ReadSeeker, box image.Point) (image.Image, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.sem.Release(1)

	img, err := p.decode(src)
	if err != nil {
		return nil, err
	}
	// EXIFの向きを反映した後の大きさで判定する
	if size := img.Bounds().Size(); size.X <= box.X && size.Y <= box.Y {
		return img, nil
	}
	return imaging.Fit(img, box.X, box.Y, imaging.Lanczos), nil
}

func (p *processor) Normalize(ctx context.Context, src io.ReadSeeker) (*bytes.Buffer, error) {
	img, err := p.Fit(ctx, src, p.c.MaxSize)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := p.enc.Encode(&b, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return &b, nil
}
