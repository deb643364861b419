package boundedqueue

import (
	stderrors "errors"
	"testing"

	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/flowkit/corekit/pkg/apperror"
	"github.com/flowkit/corekit/pkg/config"
)

func TestBoundedQueueReject(t *testing.T) {
	q := NewBoundedQueue[int](2, PolicyReject)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	assert.True(t, q.IsFull())

	err := q.Push(3)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, errors.Cause(err), &appErr)
	assert.Equal(t, apperror.ErrorTypeQueueFull, appErr.GetType())

	// The rejected element is not enqueued.
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 1, q.Pop().Unwrap())
	assert.NoError(t, q.Push(3))
	assert.Equal(t, []int{2, 3}, drain(q))
}

func TestBoundedQueueDropOldest(t *testing.T) {
	q := NewBoundedQueue[int](3, PolicyDropOldest)

	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, int64(2), q.Dropped())
	assert.Equal(t, []int{3, 4, 5}, drain(q))
}

func TestBoundedQueueForcePush(t *testing.T) {
	q := NewBoundedQueue[int](2, PolicyReject)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	q.ForcePush(3)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, int64(1), q.Dropped())
	assert.Equal(t, []int{2, 3}, drain(q))
}

func TestBoundedQueuePeekPop(t *testing.T) {
	q := NewBoundedQueue[string](4, PolicyReject)
	assert.True(t, q.Pop().IsNone())
	assert.True(t, q.Peek().IsNone())
	assert.True(t, q.IsEmpty())

	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))

	assert.Equal(t, "a", q.Peek().Unwrap())
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "a", q.Pop().Unwrap())
	assert.Equal(t, "b", q.Pop().Unwrap())
	assert.True(t, q.Pop().IsNone())
}

func TestBoundedQueueDefaultCapacity(t *testing.T) {
	q := NewBoundedQueue[int](0, PolicyReject)
	assert.Equal(t, config.DefaultInitialCapacity, q.Cap())
}

func TestPolicyFromName(t *testing.T) {
	{
		p, err := PolicyFromName(config.QueuePolicyReject)
		require.NoError(t, err)
		assert.Equal(t, PolicyReject, p)
	}
	{
		p, err := PolicyFromName(config.QueuePolicyDropOldest)
		require.NoError(t, err)
		assert.Equal(t, PolicyDropOldest, p)
	}
	{
		_, err := PolicyFromName("bogus")
		assert.Error(t, err)
	}
}

func TestBoundedQueueConcurrent(t *testing.T) {
	const (
		producers = 4
		perWorker = 500
	)
	q := NewBoundedQueue[int](64, PolicyReject)

	consumed := make(chan int, producers*perWorker)
	stop := make(chan struct{})
	go func() {
		for {
			if v, ok := q.Pop().Get(); ok {
				consumed <- v
				continue
			}
			select {
			case <-stop:
				// Producers are done; drain what is left.
				for {
					v, ok := q.Pop().Get()
					if !ok {
						close(consumed)
						return
					}
					consumed <- v
				}
			default:
			}
		}
	}()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				// Spin on a full queue instead of dropping.
				for {
					err := q.Push(i)
					if err == nil {
						break
					}
					var appErr *apperror.AppError
					if !stderrors.As(errors.Cause(err), &appErr) ||
						appErr.GetType() != apperror.ErrorTypeQueueFull {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(stop)

	count := 0
	for range consumed {
		count++
	}
	assert.Equal(t, producers*perWorker, count)
	assert.Equal(t, int64(0), q.Dropped())
}

func TestInitMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	InitMetrics(registry)

	q := NewBoundedQueue[int](2, PolicyDropOldest)
	for i := 0; i < 4; i++ {
		require.NoError(t, q.Push(i))
	}
	q.Pop()

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "corekit_bounded_queue_push_total")
	assert.Contains(t, names, "corekit_bounded_queue_drop_total")
}

func drain[T any](q *BoundedQueue[T]) []T {
	items := make([]T, 0, q.Len())
	for {
		v, ok := q.Pop().Get()
		if !ok {
			return items
		}
		items = append(items, v)
	}
}
