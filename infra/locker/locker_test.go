package locker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryAcquireAndRelease(t *testing.T) {
	l := New()

	require.True(t, l.TryAcquire("batch:a"))
	require.False(t, l.TryAcquire("batch:a"))
	require.True(t, l.IsProcessing("batch:a"))

	// A different key is independent.
	require.True(t, l.TryAcquire("batch:b"))

	l.Release("batch:a")
	require.False(t, l.IsProcessing("batch:a"))
	require.True(t, l.TryAcquire("batch:a"))
}

func TestTryAcquireConcurrent(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryAcquire("shared") {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, acquired)
}
