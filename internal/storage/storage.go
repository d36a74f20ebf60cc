package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path; deleting a missing file is
	// not an error
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // local filesystem root
	BaseURL  string // public URL base
}

// NewStorage creates a storage instance. Only the local backend exists;
// the factory stays so callers never depend on the concrete type.
func NewStorage(cfg Config) (Storage, error) {
	s, err := NewLocalStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}
	return s, nil
}
