package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/catharsis/core"
	"github.com/poiesic/catharsis/storage"
)

// Reprocessor re-runs analysis for failed units on a worker pool.
type Reprocessor struct {
	repository     storage.ContentRepository
	processor      *Processor
	pool           *ants.Pool
	maxAttempts    int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

// ReprocessorOption configures a Reprocessor.
type ReprocessorOption func(*Reprocessor) error

// WithPoolSize sets the worker pool size for concurrent reprocessing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) ReprocessorOption {
	return func(r *Reprocessor) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithRetry sets the per-unit attempt budget and the base delay for
// exponential backoff. Defaults are 3 attempts and a 1 second base.
func WithRetry(maxAttempts int, baseDelay time.Duration) ReprocessorOption {
	return func(r *Reprocessor) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		r.maxAttempts = maxAttempts
		r.retryBaseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) ReprocessorOption {
	return func(r *Reprocessor) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewReprocessor creates a reprocessor over the given repository and
// processor.
func NewReprocessor(repository storage.ContentRepository, processor *Processor, opts ...ReprocessorOption) (*Reprocessor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if processor == nil {
		return nil, ErrEngineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Reprocessor{
		repository:     repository,
		processor:      processor,
		pool:           pool,
		maxAttempts:    3,
		retryBaseDelay: time.Second,
		logger:         slog.Default().With("component", "lifecycle-reprocessor"),
	}
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// Release frees the worker pool.
func (r *Reprocessor) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// ReprocessFailed retries every failed unit concurrently and returns
// how many recovered. Per-unit errors are joined; a unit that fails
// again simply stays failed and can be retried later.
func (r *Reprocessor) ReprocessFailed(ctx context.Context, limit int) (int, error) {
	failed, err := r.repository.GetContentUnitsByStatus(ctx, core.StatusFailed, limit)
	if err != nil {
		return 0, err
	}
	if len(failed) == 0 {
		return 0, nil
	}

	r.logger.Info("reprocessing failed units", "count", len(failed))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		recovered int
		errs      []error
	)

	for _, unit := range failed {
		id := unit.Id
		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()

			// Transient provider failures get a few spaced attempts
			// before the unit is left failed for a later sweep.
			err := RetryWithBackoff(ctx, func() error {
				_, processErr := r.processor.Process(ctx, id)
				return processErr
			}, r.maxAttempts, r.retryBaseDelay)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			mu.Lock()
			recovered++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}

	wg.Wait()
	return recovered, errors.Join(errs...)
}
