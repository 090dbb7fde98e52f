package resource

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})
	assert.Equal(t, int64(100), c.MemoryLimit())

	require.NoError(t, c.AcquireMemory(50))
	require.NoError(t, c.AcquireMemory(40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	assert.ErrorIs(t, c.AcquireMemory(20), ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	c.ReleaseMemory(50)
	require.NoError(t, c.AcquireMemory(20))
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})
	require.NoError(t, c.AcquireMemory(1000))
	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
	assert.Equal(t, 1, c.Workers())
}

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	ctx := context.Background()

	require.NoError(t, c.AcquireWorker(ctx))
	require.NoError(t, c.AcquireWorker(ctx))
	assert.False(t, c.TryAcquireWorker())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, c.AcquireWorker(canceled), context.Canceled)

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	c.ReleaseWorker()
}

func TestController_WorkersBlock(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	ctx := context.Background()
	require.NoError(t, c.AcquireWorker(ctx))

	var wg sync.WaitGroup
	acquired := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.AcquireWorker(ctx)
		close(acquired)
		c.ReleaseWorker()
	}()

	select {
	case <-acquired:
		t.Fatal("second worker acquired a busy slot")
	case <-time.After(20 * time.Millisecond):
	}
	c.ReleaseWorker()
	wg.Wait()
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	ctx := context.Background()
	require.NoError(t, c.AcquireIO(ctx, 1024))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, c.AcquireIO(canceled, 4<<20))
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller
	ctx := context.Background()
	require.NoError(t, c.AcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Zero(t, c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())
	assert.Equal(t, 1, c.Workers())
	require.NoError(t, c.AcquireWorker(ctx))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	require.NoError(t, c.AcquireIO(ctx, 1<<30))
}
