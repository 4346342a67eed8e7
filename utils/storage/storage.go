package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	// ErrFileNotFound 指定されたキーのファイルは見つかりません
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidKey キーにパス区切りなどの使用できない文字が含まれています
	ErrInvalidKey = errors.New("invalid key")
)

// Object 保存されているファイル
type Object struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage アップロードされたファイルの保存先
type FileStorage interface {
	// Save srcをkeyのファイルとして保存します。既に存在する場合は上書きします
	Save(ctx context.Context, key string, src io.Reader, contentType string) error
	// Open keyのファイルを開きます
	//
	// 存在しない場合、ErrFileNotFoundを返します。
	Open(ctx context.Context, key string) (*Object, error)
	// Delete keyのファイルを削除します
	//
	// 存在しない場合、ErrFileNotFoundを返します。
	Delete(ctx context.Context, key string) error
}

// ValidateKey keyがファイル名として使用できるか検証します
func ValidateKey(key string) error {
	if len(key) == 0 || len(key) > 255 || key == "." || key == ".." || strings.ContainsAny(key, "/\\\x00") {
		return ErrInvalidKey
	}
	return nil
}
