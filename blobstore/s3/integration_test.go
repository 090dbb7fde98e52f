package s3

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/blobstore"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	store, err := New(ctx, bucket, fmt.Sprintf("test-hepvec-%d/", time.Now().UnixNano()))
	require.NoError(t, err)

	data := make([]byte, 1024*1024)
	_, _ = rand.Read(data)
	require.NoError(t, store.Put(ctx, "test.blob", data))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "test.blob")

	b, err := store.Open(ctx, "test.blob")
	require.NoError(t, err)
	all, err := blobstore.ReadAll(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	assert.ErrorIs(t, store.PutIfAbsent(ctx, "test.blob", data), blobstore.ErrExists)
	require.NoError(t, store.Delete(ctx, "test.blob"))

	_, err = store.Open(ctx, "test.blob")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
