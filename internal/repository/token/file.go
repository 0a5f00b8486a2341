package token

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"khaogully-admin/internal/repository"
	"khaogully-admin/internal/service/session"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// FileStore хранит токен в файле, доступном только владельцу.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if repository.IsMissing(err) {
			return "", session.ErrTokenNotFound
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", session.ErrTokenNotFound
	}
	return token, nil
}

func (s *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	// запись через временный файл, чтобы не оставить обрезанный токен
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), filePerm); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !repository.IsMissing(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
