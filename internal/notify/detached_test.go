package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/folio-labs/portfolio-backend/internal/logging"
)

func TestDetached_OutlivesCaller(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDetached(zap.NewNop(), time.Second)
	ctx, cancel := context.WithCancel(logging.WithRequestID(context.Background(), "rid-1"))

	var sawRID atomic.Value
	var ran atomic.Bool
	release := make(chan struct{})
	d.Go(ctx, "mail", func(ctx context.Context) error {
		<-release
		sawRID.Store(logging.RequestID(ctx))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ran.Store(true)
		return nil
	})

	cancel()
	close(release)
	require.NoError(t, d.Wait(context.Background()))

	assert.True(t, ran.Load())
	assert.Equal(t, "rid-1", sawRID.Load())
}

func TestDetached_LogsFailuresAndPanics(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.ErrorLevel)
	d := NewDetached(zap.New(core), time.Second)

	d.Go(context.Background(), "fails", func(context.Context) error { return errors.New("relay refused") })
	d.Go(context.Background(), "panics", func(context.Context) error { panic("boom") })
	require.NoError(t, d.Wait(context.Background()))

	entries := logs.FilterMessage("detached task failed").All()
	require.Len(t, entries, 2)

	tasks := map[string]bool{}
	for _, e := range entries {
		tasks[e.ContextMap()["task"].(string)] = true
	}
	assert.True(t, tasks["fails"])
	assert.True(t, tasks["panics"])
}

func TestDetached_TimeoutBoundsTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDetached(zap.NewNop(), 20*time.Millisecond)
	var err atomic.Value
	d.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()
		err.Store(ctx.Err())
		return ctx.Err()
	})

	require.NoError(t, d.Wait(context.Background()))
	assert.ErrorIs(t, err.Load().(error), context.DeadlineExceeded)
}

func TestDetached_WaitHonoursContext(t *testing.T) {
	d := NewDetached(zap.NewNop(), time.Second)
	release := make(chan struct{})
	d.Go(context.Background(), "blocked", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Wait(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, d.Wait(context.Background()))
}
