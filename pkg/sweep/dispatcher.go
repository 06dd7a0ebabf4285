package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/regression-io/aws-list-all/pkg/catalog"
	"github.com/regression-io/aws-list-all/pkg/cloud"
)

// Config configures dispatcher behavior.
type Config struct {
	// Parallelism is the number of jobs executed concurrently.
	// Default: 32
	Parallelism int

	// RateLimit is the maximum invocations per second across all
	// workers. Zero means unlimited.
	// Default: 0
	RateLimit float64

	// MaxAttempts bounds invocation attempts per call when throttled.
	// Default: 4
	MaxAttempts int

	// RetryBase is the first backoff delay; it doubles per attempt.
	// Default: 250ms
	RetryBase time.Duration

	// Profile is the credentials profile passed to the client factory.
	Profile string
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		Parallelism: 32,
		MaxAttempts: 4,
		RetryBase:   250 * time.Millisecond,
	}
}

// Dispatcher executes a job set under a bounded worker pool and collects
// one classified record per job.
//
// A Dispatcher owns its client cache; both live for exactly one run.
type Dispatcher struct {
	clients *cloud.Cache
	config  Config
	logger  *zap.Logger
	limiter *rate.Limiter
	runID   string
}

// New creates a dispatcher over the given client factory.
func New(factory cloud.Factory, cfg Config, logger *zap.Logger) *Dispatcher {
	def := DefaultConfig()
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = def.Parallelism
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = def.RetryBase
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{
		clients: cloud.NewCache(factory),
		config:  cfg,
		logger:  logger,
		runID:   uuid.New().String(),
	}
	if cfg.RateLimit > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return d
}

// RunID returns the correlation ID for this run.
func (d *Dispatcher) RunID() string {
	return d.runID
}

// Run executes all jobs and returns their records in completion order.
//
// Jobs are independent and may complete in any order on any worker.
// Cancelling the context stops the admission of queued jobs; in-flight
// jobs drain and contribute their records, so a partial result set is
// returned rather than none.
func (d *Dispatcher) Run(ctx context.Context, jobs []Job) []Record {
	workers := d.config.Parallelism
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return nil
	}

	d.logger.Info("starting sweep",
		zap.String("run_id", d.runID),
		zap.Int("jobs", len(jobs)),
		zap.Int("parallelism", workers))

	jobCh := make(chan Job)
	resultCh := make(chan Record)

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case jobCh <- job:
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- d.execute(ctx, job)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	records := make([]Record, 0, len(jobs))
	for rec := range resultCh {
		records = append(records, rec)
	}

	d.logger.Info("sweep finished",
		zap.String("run_id", d.runID),
		zap.Int("records", len(records)),
		zap.Int("clients", d.clients.Len()))
	return records
}

// execute runs one job to completion and classifies it. Every failure
// mode lands in the record; nothing propagates to sibling jobs.
func (d *Dispatcher) execute(ctx context.Context, job Job) Record {
	start := time.Now()
	d.logger.Debug("job start", zap.String("run_id", d.runID), zap.Stringer("job", job))

	pages, err := d.invokeAll(ctx, job)
	outcome := Classify(pages, err, catalog.BoilerplateKeys(job.Service, job.Operation))
	outcome.Elapsed = time.Since(start)

	d.logger.Debug("job finish",
		zap.String("run_id", d.runID),
		zap.Stringer("job", job),
		zap.String("class", string(outcome.Class)),
		zap.Duration("elapsed", outcome.Elapsed))
	return Record{Job: job, Outcome: outcome}
}

// invokeAll obtains the cached client for the job's triple and drains
// the full pagination sequence, concatenating pages.
func (d *Dispatcher) invokeAll(ctx context.Context, job Job) ([]*cloud.Page, error) {
	client, err := d.clients.Client(ctx, job.Service, job.Region, d.config.Profile)
	if err != nil {
		return nil, err
	}

	var (
		pages  []*cloud.Page
		params map[string]any
	)
	for {
		page, err := d.invokeOnce(ctx, client, job, params)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
		if !page.Paginated() {
			return pages, nil
		}
		params = map[string]any{page.TokenParam: page.NextToken}
	}
}

// invokeOnce performs a single call with bounded retry on throttling.
func (d *Dispatcher) invokeOnce(ctx context.Context, client cloud.Client, job Job, params map[string]any) (*cloud.Page, error) {
	delay := d.config.RetryBase
	for attempt := 1; ; attempt++ {
		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		page, err := client.Invoke(ctx, job.Operation, params)
		if err == nil || !cloud.IsThrottled(err) || attempt >= d.config.MaxAttempts {
			return page, err
		}

		d.logger.Debug("throttled, backing off",
			zap.Stringer("job", job),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, err
		case <-timer.C:
		}
		delay *= 2
	}
}
