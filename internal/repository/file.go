package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "coach-planner-backend/internal/errors"
)

// FileStateRepository stores each state document as <dir>/<key>.json.
// Writes go to a temporary file that is renamed over the target, so a
// reader never observes a partially written document.
type FileStateRepository struct {
	dir      string
	maxBytes int
}

// Ensure FileStateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*FileStateRepository)(nil)

// NewFileStateRepository creates the directory if needed and returns a file-backed repository
func NewFileStateRepository(dir string, maxBytes int) (*FileStateRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStateRepository{dir: dir, maxBytes: maxBytes}, nil
}

func (r *FileStateRepository) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(r.dir, safe+".json")
}

// Read returns the document stored under key
func (r *FileStateRepository) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write atomically replaces the document stored under key
func (r *FileStateRepository) Write(_ context.Context, key string, data []byte) error {
	if r.maxBytes > 0 && len(data) > r.maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", apperrors.ErrQuotaExceeded, len(data), r.maxBytes)
	}

	tmp, err := os.CreateTemp(r.dir, ".state-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmpName, r.path(key))
}

// Ping verifies the state directory is still accessible
func (r *FileStateRepository) Ping(context.Context) error {
	info, err := os.Stat(r.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", r.dir)
	}
	return nil
}
