package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// MediaStorage persists recipe images and hands back the reference path
// stored on the Recipe record.
type MediaStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type localStorage struct {
	mediaRoot string
}

// NewLocalStorage stores media files under a media root on the local
// filesystem.
func NewLocalStorage(mediaRoot string) MediaStorage {
	return &localStorage{mediaRoot: mediaRoot}
}

func (s *localStorage) Save(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	path := filepath.Join(s.mediaRoot, key)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		return "", err
	}
	return key, nil
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.mediaRoot, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
