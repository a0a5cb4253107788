package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_List(t *testing.T) {
	root := t.TempDir()
	files := map[string]int{
		"b.png":             10,
		"a/deep/nested.mp4": 20,
		"a/c.pdf":           5,
		"x/y/z/w/far.txt":   1,
	}
	for rel, size := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, make([]byte, size), 0o644))
	}

	objs, err := NewLocal(root).List(context.Background())
	require.NoError(t, err)
	require.Len(t, objs, 4)

	keys := make([]string, 0, len(objs))
	for _, o := range objs {
		keys = append(keys, o.Key)
		assert.Equal(t, int64(files[o.Key]), o.Size)
		assert.False(t, o.LastModified.IsZero())
	}
	assert.Equal(t, []string{"a/c.pdf", "a/deep/nested.mp4", "b.png", "x/y/z/w/far.txt"}, keys)
}

func TestLocal_MissingRoot(t *testing.T) {
	_, err := NewLocal(filepath.Join(t.TempDir(), "nope")).List(context.Background())
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestLocal_Capacity(t *testing.T) {
	c, err := NewLocal(t.TempDir()).Capacity(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c, int64(0))
}
