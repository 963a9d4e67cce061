package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/logging"
)

// Detached runs side effects whose outcome never reaches the caller.
// Failures and panics are logged; Wait drains in-flight work at shutdown.
type Detached struct {
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDetached(log *zap.Logger, timeout time.Duration) *Detached {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Detached{log: log, timeout: timeout}
}

// Go runs fn in the background. fn gets a context that keeps ctx's values
// but not its cancellation, bounded by the runner timeout.
func (d *Detached) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	log := d.log.With(zap.String("task", name))
	if rid := logging.RequestID(ctx); rid != "" {
		log = log.With(zap.String("request_id", rid))
	}
	bg := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		tctx, cancel := context.WithTimeout(bg, d.timeout)
		defer cancel()

		if err := run(tctx, fn); err != nil {
			log.Error("detached task failed", zap.Error(err))
			return
		}
		log.Debug("detached task done")
	}()
}

func run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}

// Wait blocks until every started task finished or ctx is done.
func (d *Detached) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
