package credential

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	xerrors "petbloom/internal/pkg/errors"
)

// Store persists a single bearer credential between runs. It is the
// durable slot the gateway reads when attaching the Authorization header,
// so requests issued outside an explicit session operation still carry
// the signed-in credential.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// ========== File store ==========

// FileStore keeps the credential in a single file under the user's
// config directory.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path. When path
// is empty, DefaultPath is used.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, xerrors.Wrap(err, "failed to create credential dir")
	}
	return &FileStore{path: path}, nil
}

// DefaultPath returns the standard credential location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", xerrors.Wrap(err, "failed to resolve config dir")
	}
	return filepath.Join(dir, "petbloom", "credential"), nil
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", xerrors.Wrap(err, "failed to read credential")
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return xerrors.Wrap(err, "failed to write credential")
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return xerrors.Wrap(err, "failed to remove credential")
	}
	return nil
}

// ========== Memory store ==========

// MemoryStore holds the credential in memory only. Used in tests and by
// callers that do not want persistence between runs.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
