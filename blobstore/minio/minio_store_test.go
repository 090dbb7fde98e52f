package minio

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/hupe1980/hepvec/blobstore"
)

func newClient(t *testing.T) *minio.Client {
	t.Helper()
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err)
	return client
}

func TestStore_Key(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "a.hvec", "a.hvec"},
		{"run-3/", "a.hvec", "run-3/a.hvec"},
		{"run-3", "jets/a.hvec", "run-3/jets/a.hvec"},
	}
	for _, tt := range tests {
		s := NewStore(nil, "b", tt.prefix)
		assert.Equal(t, tt.want, s.key(tt.name))
	}
}

func TestStore_RateLimiterCancels(t *testing.T) {
	store := NewStore(newClient(t), "b", "", WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The burst token is free; the next request must wait and sees the
	// canceled context.
	require.True(t, store.limiter.Allow())
	_, err := store.Open(ctx, "x")
	assert.Error(t, err)
}

// TestMinioStore_Integration requires a running MinIO instance.
func TestMinioStore_Integration(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()
	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	bucket := "test-hepvec"
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, fmt.Sprintf("test-%d/", time.Now().UnixNano()))
	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "test.hvec", data))

	blob, err := store.Open(ctx, "test.hvec")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "minio", string(buf[:n]))

	all, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"test.hvec"}, names)

	require.NoError(t, store.Delete(ctx, "test.hvec"))
	_, err = store.Open(ctx, "test.hvec")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
