package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalArchive implements Archive on the local filesystem. Each document
// is written next to a .meta.json sidecar carrying its metadata.
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates a filesystem-backed quote archive.
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory %s: %w", basePath, err)
	}
	return &LocalArchive{basePath: basePath}, nil
}

// Put stores content under key, replacing any previous version.
func (a *LocalArchive) Put(_ context.Context, key string, content []byte, meta *Metadata) (*FileInfo, error) {
	path, err := a.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", key, err)
	}

	if meta != nil {
		metaBytes, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata for %s: %w", key, err)
		}
		if err := os.WriteFile(path+".meta.json", metaBytes, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write metadata for %s: %w", key, err)
		}
	}

	sum := sha256.Sum256(content)
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Key:        key,
		Size:       stat.Size(),
		Checksum:   hex.EncodeToString(sum[:]),
		ModifiedAt: stat.ModTime(),
		Metadata:   meta,
	}, nil
}

// Get retrieves stored content by key.
func (a *LocalArchive) Get(_ context.Context, key string) ([]byte, error) {
	path, err := a.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Exists reports whether a key is stored.
func (a *LocalArchive) Exists(_ context.Context, key string) (bool, error) {
	path, err := a.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns info for every stored document, skipping metadata sidecars.
func (a *LocalArchive) List(_ context.Context) ([]*FileInfo, error) {
	entries, err := os.ReadDir(a.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}

	infos := make([]*FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".meta.json") {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			continue
		}
		info := &FileInfo{
			Key:        entry.Name(),
			Size:       stat.Size(),
			ModifiedAt: stat.ModTime(),
		}
		if metaBytes, err := os.ReadFile(filepath.Join(a.basePath, entry.Name()+".meta.json")); err == nil {
			var meta Metadata
			if json.Unmarshal(metaBytes, &meta) == nil {
				info.Metadata = &meta
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// resolve maps a key to a path under basePath, rejecting traversal.
func (a *LocalArchive) resolve(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid archive key %q", key)
	}
	return filepath.Join(a.basePath, key), nil
}
