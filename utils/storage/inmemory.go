package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryFile struct {
	body        []byte
	contentType string
}

// InMemoryFileStorage メモリ上に保存するストレージ。主にテスト用
type InMemoryFileStorage struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

func NewInMemoryFileStorage() *InMemoryFileStorage {
	return &InMemoryFileStorage{files: map[string]memoryFile{}}
}

func (s *InMemoryFileStorage) Save(_ context.Context, key string, src io.Reader, contentType string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.files[key] = memoryFile{body: b, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *InMemoryFileStorage) Open(_ context.Context, key string) (*Object, error) {
	s.mu.RLock()
	f, ok := s.files[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrFileNotFound
	}
	return &Object{
		ReadCloser:  io.NopCloser(bytes.NewReader(f.body)),
		ContentType: f.contentType,
		Size:        int64(len(f.body)),
	}, nil
}

func (s *InMemoryFileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[key]; !ok {
		return ErrFileNotFound
	}
	delete(s.files, key)
	return nil
}
