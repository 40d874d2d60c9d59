//go:build unit

package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"savesphere/internal/pkg/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	t.Run("delivers exactly one completion", func(t *testing.T) {
		r := task.NewRunner(10 * time.Millisecond)

		ch, err := r.Schedule(context.Background(), "k1", func() (any, error) {
			return "done", nil
		})
		require.NoError(t, err)

		c := <-ch
		require.NoError(t, c.Err)
		assert.Equal(t, "done", c.Payload)
	})

	t.Run("propagates fn error", func(t *testing.T) {
		r := task.NewRunner(time.Millisecond)
		boom := errors.New("boom")

		ch, err := r.Schedule(context.Background(), "k1", func() (any, error) {
			return nil, boom
		})
		require.NoError(t, err)

		c := <-ch
		assert.ErrorIs(t, c.Err, boom)
		assert.Nil(t, c.Payload)
	})

	t.Run("rejects overlapping schedules for the same key", func(t *testing.T) {
		r := task.NewRunner(time.Second)

		_, err := r.Schedule(context.Background(), "k1", func() (any, error) { return nil, nil })
		require.NoError(t, err)

		_, err = r.Schedule(context.Background(), "k1", func() (any, error) { return nil, nil })
		assert.ErrorIs(t, err, task.ErrInFlight)
	})

	t.Run("distinct keys run independently", func(t *testing.T) {
		r := task.NewRunner(time.Second)

		_, err := r.Schedule(context.Background(), "k1", func() (any, error) { return nil, nil })
		require.NoError(t, err)

		_, err = r.Schedule(context.Background(), "k2", func() (any, error) { return nil, nil })
		assert.NoError(t, err)
	})

	t.Run("key is free again after completion", func(t *testing.T) {
		r := task.NewRunner(time.Millisecond)

		ch, err := r.Schedule(context.Background(), "k1", func() (any, error) { return 1, nil })
		require.NoError(t, err)
		<-ch

		// The inflight entry is cleared by the worker goroutine right
		// after it sends, so give it a moment.
		assert.Eventually(t, func() bool {
			ch, err := r.Schedule(context.Background(), "k1", func() (any, error) { return 2, nil })
			if err != nil {
				return false
			}
			c := <-ch
			return c.Payload == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("cancellation delivers ctx error", func(t *testing.T) {
		r := task.NewRunner(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())

		ch, err := r.Schedule(ctx, "k1", func() (any, error) { return "never", nil })
		require.NoError(t, err)

		cancel()
		c := <-ch
		assert.ErrorIs(t, c.Err, context.Canceled)
		assert.Nil(t, c.Payload)
	})
}
