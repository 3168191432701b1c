package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metrics"
)

// DefaultCooldown is the delay between the completion of one task and the start of the next
const DefaultCooldown = time.Second

// TaskFunc is one unit of outbound publish work
type TaskFunc func(ctx context.Context) (interface{}, error)

// Config holds queue configuration
type Config struct {
	// Cooldown is enforced between the completion of a task and the start of the next one
	Cooldown time.Duration
	// QueueSize bounds the number of pending tasks; Submit blocks when it is reached. 0 means unbounded.
	QueueSize int
}

// Task is a handle to a submitted task
type Task interface {
	// ID returns the task identifier
	ID() string
	// Wait blocks until the task has run and returns its own result.
	// It returns early with the submitter's context error once that context is done;
	// the task itself still runs in its turn.
	Wait() (interface{}, error)
}

// Queue serializes tasks through a single worker with a fixed cooldown between them
//
//go:generate mockgen -source=queue.go -destination=../mocks/ratelimit_queue.go -package=mocks -mock_names=Queue=MockUploadQueue
type Queue interface {
	// Submit appends a task to the queue and returns immediately
	Submit(ctx context.Context, fn TaskFunc) Task

	// Enqueue submits a task and waits for its result.
	// A failing task only fails its own caller; later tasks still run.
	Enqueue(ctx context.Context, fn TaskFunc) (interface{}, error)

	// Close stops accepting tasks, runs the ones already queued and returns
	Close() error
}

type taskResult struct {
	value interface{}
	err   error
}

type task struct {
	id     ulid.ULID
	ctx    context.Context
	result pond.ResultTask[*taskResult]
}

func (t *task) ID() string {
	return t.id.String()
}

func (t *task) Wait() (interface{}, error) {
	select {
	case <-t.result.Done():
	default:
		select {
		case <-t.result.Done():
		case <-t.ctx.Done():
			return nil, t.ctx.Err()
		}
	}

	res, err := t.result.Wait()
	if err != nil {
		if errors.Is(err, pond.ErrPoolStopped) {
			return nil, domain.ErrQueueClosed
		}
		return nil, err
	}
	return res.value, res.err
}

// closedTask is returned by Submit once the queue is closed
type closedTask struct {
	id ulid.ULID
}

func (t *closedTask) ID() string { return t.id.String() }

func (t *closedTask) Wait() (interface{}, error) { return nil, domain.ErrQueueClosed }

type queue struct {
	config    Config
	pool      pond.ResultPool[*taskResult]
	clock     adapter.Clock
	closed    atomic.Bool
	closeOnce sync.Once

	mu           sync.Mutex
	lastFinished time.Time
}

// NewQueue creates a single worker FIFO queue
func NewQueue(cfg Config, clock adapter.Clock) Queue {
	if cfg.Cooldown < 0 {
		cfg.Cooldown = 0
	}

	opts := []pond.Option{}
	if cfg.QueueSize > 0 {
		opts = append(opts, pond.WithQueueSize(cfg.QueueSize))
	}

	logger.Info("Upload queue initialized",
		zap.Duration("cooldown", cfg.Cooldown),
		zap.Int("queue_size", cfg.QueueSize),
	)

	return &queue{
		config: cfg,
		// a single worker gives mutual exclusion and FIFO order
		pool:  pond.NewResultPool[*taskResult](1, opts...),
		clock: clock,
	}
}

// Enqueue submits fn to q and returns its result with type safety
func Enqueue[T any](ctx context.Context, q Queue, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if q == nil {
		return fn(ctx)
	}

	result, err := q.Enqueue(ctx, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	value, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected task result type %T", result)
	}
	return value, nil
}

func (q *queue) Submit(ctx context.Context, fn TaskFunc) Task {
	id := ulid.Make()
	if q.closed.Load() {
		return &closedTask{id: id}
	}

	logger.DebugCtx(ctx, "upload task queued", zap.String("task_id", id.String()))

	// queued work outlives its submitter; only Wait honours the caller's cancellation
	runCtx := context.WithoutCancel(ctx)

	result := q.pool.Submit(func() *taskResult {
		if err := q.waitCooldown(runCtx); err != nil {
			metrics.UploadTasks.WithLabelValues(metrics.ResultError).Inc()
			return &taskResult{err: err}
		}
		defer q.markFinished()

		logger.DebugCtx(runCtx, "upload task started", zap.String("task_id", id.String()))
		value, err := run(runCtx, fn)
		if err != nil {
			metrics.UploadTasks.WithLabelValues(metrics.ResultError).Inc()
			logger.WarnCtx(runCtx, "upload task failed", zap.String("task_id", id.String()), zap.Error(err))
		} else {
			metrics.UploadTasks.WithLabelValues(metrics.ResultOK).Inc()
		}
		return &taskResult{value: value, err: err}
	})

	return &task{id: id, ctx: ctx, result: result}
}

func (q *queue) Enqueue(ctx context.Context, fn TaskFunc) (interface{}, error) {
	return q.Submit(ctx, fn).Wait()
}

func (q *queue) Close() error {
	q.closeOnce.Do(func() {
		q.closed.Store(true)
		q.pool.StopAndWait()
		logger.Info("Upload queue closed")
	})
	return nil
}

// run executes fn and turns a panic into an error so the worker keeps going
func run(ctx context.Context, fn TaskFunc) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// waitCooldown blocks until the cooldown since the previous task has elapsed
func (q *queue) waitCooldown(ctx context.Context) error {
	q.mu.Lock()
	last := q.lastFinished
	q.mu.Unlock()

	if last.IsZero() || q.config.Cooldown == 0 {
		return nil
	}

	if wait := q.config.Cooldown - q.clock.Since(last); wait > 0 {
		return q.clock.Sleep(ctx, wait)
	}
	return nil
}

func (q *queue) markFinished() {
	q.mu.Lock()
	q.lastFinished = q.clock.Now()
	q.mu.Unlock()
}
