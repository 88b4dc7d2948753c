package repository

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StateRepositoryInterface defines the operations of a state blob backend.
// Each key holds one serialized document that is always replaced whole.
type StateRepositoryInterface interface {
	// Read returns the stored document, or errors.ErrStateNotFound when the key is absent
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the document stored under key
	Write(ctx context.Context, key string, data []byte) error
	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error
}
