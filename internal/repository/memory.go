package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	apperrors "coach-planner-backend/internal/errors"
)

// MemoryStateRepository keeps state documents in process memory. A non-zero
// MaxBytes rejects oversized writes the way a browser storage quota does.
type MemoryStateRepository struct {
	mu       sync.RWMutex
	blobs    map[string][]byte
	MaxBytes int
}

// Ensure MemoryStateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*MemoryStateRepository)(nil)

// NewMemoryStateRepository creates an empty in-memory state repository
func NewMemoryStateRepository(maxBytes int) *MemoryStateRepository {
	return &MemoryStateRepository{
		blobs:    make(map[string][]byte),
		MaxBytes: maxBytes,
	}
}

// Read returns a copy of the document stored under key
func (r *MemoryStateRepository) Read(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.blobs[key]
	if !ok {
		return nil, apperrors.ErrStateNotFound
	}
	return slices.Clone(data), nil
}

// Write stores a copy of data under key
func (r *MemoryStateRepository) Write(_ context.Context, key string, data []byte) error {
	if r.MaxBytes > 0 && len(data) > r.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", apperrors.ErrQuotaExceeded, len(data), r.MaxBytes)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[key] = slices.Clone(data)
	return nil
}

// Ping always succeeds
func (r *MemoryStateRepository) Ping(context.Context) error {
	return nil
}
