package profile

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"tradex-bot/core/logger"
)

// Syncer is the fire-and-forget boundary the dispatch engine depends on.
// Implementations must never block the caller on network I/O.
type Syncer interface {
	SyncCreate(snap Snapshot)
}

// QueueOptions controls the background sync worker pool.
type QueueOptions struct {
	QueueSize int
	Workers   int
	// Timeout bounds one sync attempt. There are no retries at this layer.
	Timeout time.Duration
}

type job struct {
	id   string
	snap Snapshot
}

// Queue executes profile syncs on background workers. Enqueueing never
// blocks: when the queue is saturated the job is dropped and counted, which
// is acceptable for a shadow copy. Close abandons queued and in-flight work;
// shutdown is deliberately not graceful for syncs.
type Queue struct {
	client *Client
	opts   QueueOptions

	jobs chan job
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup

	errs    atomic.Uint64
	dropped atomic.Uint64
}

// NewQueue starts a queue with sane defaults for zeroed options.
func NewQueue(client *Client, opts QueueOptions) *Queue {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	q := &Queue{
		client: client,
		opts:   opts,
		jobs:   make(chan job, opts.QueueSize),
		stop:   make(chan struct{}),
	}

	q.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go q.worker()
	}
	return q
}

// SyncCreate schedules a create-or-exists replication of the snapshot.
// It returns immediately; the outcome is observable only via logs and
// counters.
func (q *Queue) SyncCreate(snap Snapshot) {
	j := job{id: uuid.NewString(), snap: snap}

	select {
	case <-q.stop:
		q.dropped.Add(1)
		return
	default:
	}

	select {
	case q.jobs <- j:
	default:
		q.dropped.Add(1)
		logger.Warn(logger.Background(), "profile.sync", "queue.full",
			slog.String("sync_id", j.id),
			slog.Int64("user_id", snap.UserID),
		)
	}
}

// ErrorCount reports failed sync attempts since start.
func (q *Queue) ErrorCount() uint64 { return q.errs.Load() }

// DroppedCount reports jobs rejected because of saturation or shutdown.
func (q *Queue) DroppedCount() uint64 { return q.dropped.Load() }

// Close stops the workers. Pending jobs are abandoned, not drained.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.stop)
		q.wg.Wait()
	})
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for {
		select {
		case <-q.stop:
			return
		case j := <-q.jobs:
			q.run(j)
		}
	}
}

func (q *Queue) run(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.opts.Timeout)
	defer cancel()

	start := time.Now()
	err := q.client.Create(ctx, j.snap)
	took := logger.RoundMS(time.Since(start))

	if err != nil {
		q.errs.Add(1)
		logger.Error(logger.Background(), "profile.sync", "create.fail",
			slog.String("sync_id", j.id),
			slog.Int64("user_id", j.snap.UserID),
			slog.Duration("duration", took),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return
	}

	logger.Debug(logger.Background(), "profile.sync", "create.ok",
		slog.String("sync_id", j.id),
		slog.Int64("user_id", j.snap.UserID),
		slog.Duration("duration", took),
	)
}
