package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config S3互換オブジェクトストレージの接続設定
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// ForcePathStyle MinIOなどバーチャルホスト形式に対応していない場合にtrue
	ForcePathStyle bool
}

// S3FileStorage S3互換オブジェクトストレージ
type S3FileStorage struct {
	bucket *string
	client *s3.Client
}

func NewS3FileStorage(ctx context.Context, c S3Config) (*S3FileStorage, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if len(c.Endpoint) > 0 {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.ForcePathStyle
	})
	return &S3FileStorage{bucket: aws.String(c.Bucket), client: client}, nil
}

func (s *S3FileStorage) Save(ctx context.Context, key string, src io.Reader, contentType string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	// 署名計算のためにシーク可能なBodyが必要
	body, ok := src.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(src)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       s.bucket,
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	return err
}

func (s *S3FileStorage) Open(ctx context.Context, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: s.bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &Object{
		ReadCloser:  out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

func (s *S3FileStorage) Delete(ctx context.Context, key string) error {
	// DeleteObjectは存在しないキーでも成功する
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: s.bucket,
		Key:    aws.String(key),
	}); err != nil {
		if isNotFound(err) {
			return ErrFileNotFound
		}
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: s.bucket,
		Key:    aws.String(key),
	})
	return err
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	return errors.As(err, &nsk) || errors.As(err, &nf)
}
