package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalArchivePutGet tests the write/read round trip with metadata.
func TestLocalArchivePutGet(t *testing.T) {
	ctx := context.Background()
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)

	content := []byte(`{"po_id": "PO-1234-Ab9z"}`)
	meta := &Metadata{
		ContentType: "application/json",
		POID:        "PO-1234-Ab9z",
		GeneratedAt: time.Now().UTC(),
	}

	info, err := archive.Put(ctx, "PO-1234-Ab9z.json", content, meta)
	require.NoError(t, err)
	assert.Equal(t, "PO-1234-Ab9z.json", info.Key)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Len(t, info.Checksum, 64)

	got, err := archive.Get(ctx, "PO-1234-Ab9z.json")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	exists, err := archive.Exists(ctx, "PO-1234-Ab9z.json")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = archive.Exists(ctx, "other.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestLocalArchiveList skips metadata sidecars and restores metadata.
func TestLocalArchiveList(t *testing.T) {
	ctx := context.Background()
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)

	_, err = archive.Put(ctx, "a.json", []byte("a"), &Metadata{POID: "PO-A"})
	require.NoError(t, err)
	_, err = archive.Put(ctx, "b.json", []byte("b"), nil)
	require.NoError(t, err)

	infos, err := archive.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byKey := make(map[string]*FileInfo)
	for _, info := range infos {
		byKey[info.Key] = info
	}
	require.NotNil(t, byKey["a.json"].Metadata)
	assert.Equal(t, "PO-A", byKey["a.json"].Metadata.POID)
	assert.Nil(t, byKey["b.json"].Metadata)
}

// TestLocalArchiveRejectsBadKeys verifies traversal and path separators
// are rejected.
func TestLocalArchiveRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.json", "dir/file.json", `dir\file.json`, "a..b"} {
		_, err := archive.Put(ctx, key, []byte("x"), nil)
		assert.Error(t, err, "key %q", key)
	}
}

// TestLocalArchiveOverwrite replaces previous content.
func TestLocalArchiveOverwrite(t *testing.T) {
	ctx := context.Background()
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)

	_, err = archive.Put(ctx, "q.json", []byte("v1"), nil)
	require.NoError(t, err)
	info, err := archive.Put(ctx, "q.json", []byte("version 2"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), info.Size)

	got, err := archive.Get(ctx, "q.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("version 2"), got)
}
