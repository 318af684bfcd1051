package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageService_RoundTrip(t *testing.T) {
	service, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	err = service.Upload(ctx, "req-1/notes.txt", []byte("hello"), "text/plain")
	require.NoError(t, err)

	data, err := service.Download(ctx, "req-1/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	keys, err := service.ListKeys(ctx, "req-1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1/notes.txt"}, keys)

	err = service.Delete(ctx, "req-1/notes.txt")
	require.NoError(t, err)

	keys, err = service.ListKeys(ctx, "req-1/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLocalStorageService_PrefixFilter(t *testing.T) {
	service, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, service.Upload(ctx, "req-1/a.txt", []byte("a"), "text/plain"))
	require.NoError(t, service.Upload(ctx, "req-2/b.txt", []byte("b"), "text/plain"))

	keys, err := service.ListKeys(ctx, "req-2/")
	require.NoError(t, err)
	assert.Equal(t, []string{"req-2/b.txt"}, keys)
}

func TestLocalStorageService_RejectsTraversal(t *testing.T) {
	service, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	err = service.Upload(context.Background(), "../escape.txt", []byte("x"), "text/plain")
	assert.Error(t, err)
}
