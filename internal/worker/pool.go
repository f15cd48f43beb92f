// Package worker implements the buffered worker pool behind the score
// archive. It decouples request handling from database writes: calculation
// responses return immediately while results are batched into Postgres,
// with load shedding when the queue is full and a flush guarantee on
// shutdown.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/store"
)

// Prometheus metrics
var (
	scoresEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppapi_scores_enqueued_total",
		Help: "Total number of scores accepted into the archive queue",
	})

	scoresArchived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppapi_scores_archived_total",
		Help: "Total number of scores written to the archive",
	})

	scoresFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppapi_scores_failed_total",
		Help: "Total number of scores that failed archiving",
	})

	scoresLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ppapi_scores_load_shed_total",
		Help: "Total number of scores dropped because the queue was full",
	})

	queueDepthGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ppapi_archive_queue_depth",
		Help: "Current depth of the archive queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ppapi_archive_batch_duration_seconds",
		Help:    "Duration of batch inserts into the archive",
		Buckets: prometheus.DefBuckets,
	})
)

// PoolConfig configures the archive worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Archive       store.Archive
	Logger        *zap.Logger
}

// Pool manages workers that batch score writes into the archive.
type Pool struct {
	config   PoolConfig
	jobQueue chan store.Score
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new archive worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 5000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan store.Score, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Archive worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the pool, flushing whatever is queued.
func (p *Pool) Stop() {
	p.logger.Info("Stopping archive worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Archive worker pool stopped")
}

// Enqueue adds a score to the queue. Returns false when the queue is full;
// archiving is best-effort and a shed score never fails a calculation.
func (p *Pool) Enqueue(score store.Score) bool {
	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue score (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- score:
		scoresEnqueued.Inc()
		return true
	default:
		scoresLoadShed.Inc()
		return false
	}
}

// QueueDepth returns the current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker drains the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]store.Score, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		ctx, cancelFlush := context.WithTimeout(context.Background(), 10*time.Second)
		err := p.config.Archive.InsertScores(ctx, batch)
		cancelFlush()

		if err != nil {
			p.logger.Errorw("Archive batch failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			scoresFailed.Add(float64(len(batch)))
		} else {
			scoresArchived.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case score, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, score)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepthGauge.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
