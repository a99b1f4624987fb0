package docstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_store.go -package=mocks docrag/internal/docstore FileStore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for filenames or session IDs that would escape
// the store root.
var ErrInvalidName = errors.New("invalid file or session name")

// StoredFile describes one uploaded file inside a session directory.
type StoredFile struct {
	Name    string
	AbsPath string
	Size    int64
}

// FileStore manages uploaded documents on disk, one directory per session.
type FileStore interface {
	// Save writes an uploaded file into a session directory, creating the
	// directory if needed. An existing file with the same name is replaced.
	Save(ctx context.Context, sessionID, filename string, data []byte) error

	// ListFiles returns the files in a session directory. A session with no
	// directory yet has no files.
	ListFiles(ctx context.Context, sessionID string) ([]StoredFile, error)

	// Read returns the content of one file in a session directory.
	Read(ctx context.Context, sessionID, filename string) ([]byte, error)

	// DeleteSession removes a session directory and everything in it.
	DeleteSession(ctx context.Context, sessionID string) error
}

// DiskStore implements FileStore on the local filesystem under a single root,
// with layout <root>/<session_id>/<filename>.
type DiskStore struct {
	root string
}

// NewDiskStore creates a file store rooted at the given directory.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create document root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// sessionDir resolves a session directory path, rejecting names that contain
// path separators or traversal components.
func (s *DiskStore) sessionDir(sessionID string) (string, error) {
	if err := validateName(sessionID); err != nil {
		return "", err
	}
	return filepath.Join(s.root, sessionID), nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

// Save writes data to <root>/<session_id>/<filename>.
func (s *DiskStore) Save(ctx context.Context, sessionID, filename string, data []byte) error {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return err
	}
	if err := validateName(filename); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}

	return nil
}

// ListFiles returns the regular files in a session directory.
func (s *DiskStore) ListFiles(ctx context.Context, sessionID string) ([]StoredFile, error) {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session directory: %w", err)
	}

	var files []StoredFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Name:    entry.Name(),
			AbsPath: filepath.Join(dir, entry.Name()),
			Size:    info.Size(),
		})
	}

	return files, nil
}

// Read returns the content of one stored file.
func (s *DiskStore) Read(ctx context.Context, sessionID, filename string) ([]byte, error) {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateName(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return data, nil
}

// DeleteSession removes a session directory. Deleting a session that never
// uploaded anything is a no-op.
func (s *DiskStore) DeleteSession(ctx context.Context, sessionID string) error {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete session directory: %w", err)
	}

	return nil
}
