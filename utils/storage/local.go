package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

// LocalFileStorage ローカルディレクトリに保存するストレージ
type LocalFileStorage struct {
	dir string
}

// NewLocalFileStorage dirに保存するLocalFileStorageを生成します。dirが無い場合は作成します
func NewLocalFileStorage(dir string) (*LocalFileStorage, error) {
	if len(dir) == 0 {
		dir = "./storage"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalFileStorage{dir: dir}, nil
}

func (s *LocalFileStorage) Save(_ context.Context, key string, src io.Reader, _ string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	// 書き込み途中のファイルが読まれないように一時ファイルからリネームする
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, key))
}

func (s *LocalFileStorage) Open(_ context.Context, key string) (*Object, error) {
	if err := ValidateKey(key); err != nil {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if len(contentType) == 0 {
		contentType = "application/octet-stream"
	}
	return &Object{ReadCloser: f, ContentType: contentType, Size: stat.Size()}, nil
}

func (s *LocalFileStorage) Delete(_ context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return ErrFileNotFound
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}
