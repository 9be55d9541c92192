package storage

import (
	"context"
	"time"
)

// Metadata contains descriptive fields stored alongside a quote document.
type Metadata struct {
	ContentType string            `json:"contentType,omitempty"`
	POID        string            `json:"poId,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt,omitempty"`
	Custom      map[string]string `json:"custom,omitempty"`
}

// FileInfo describes a stored quote document.
type FileInfo struct {
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	Checksum   string    `json:"checksum"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Metadata   *Metadata `json:"metadata,omitempty"`
}

// Archive is the interface for quote document storage. The default
// implementation is local filesystem; object stores would fit the same
// interface.
type Archive interface {
	// Put stores content under key and returns its file info.
	Put(ctx context.Context, key string, content []byte, meta *Metadata) (*FileInfo, error)
	// Get retrieves stored content by key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Exists reports whether a key is stored.
	Exists(ctx context.Context, key string) (bool, error)
	// List returns info for every stored document.
	List(ctx context.Context) ([]*FileInfo, error)
}
