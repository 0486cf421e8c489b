package client

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

// TokenStore holds the bearer credential attached to outgoing requests.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Clear() error { return s.SetToken("") }

// FileTokenStore persists the token in a single 0600 file. A missing file
// means no token.
type FileTokenStore struct {
	Path string
}

func NewFileTokenStore(path string) *FileTokenStore { return &FileTokenStore{Path: path} }

func (s *FileTokenStore) Token() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) SetToken(token string) error {
	if token == "" {
		return s.Clear()
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("token dir: %w", err)
	}
	if err := atomic.WriteFile(s.Path, bytes.NewReader([]byte(token+"\n"))); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := os.Chmod(s.Path, 0o600); err != nil {
		return fmt.Errorf("chmod token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
