package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"photoflow/internal/jobspec"
	"photoflow/internal/logging"
	"photoflow/internal/services"
	"photoflow/internal/services/photoshop"
)

// Driver executes a single job against the external editor.
type Driver interface {
	Execute(ctx context.Context, job jobspec.Job) photoshop.Result
}

// Options configures a runner.
type Options struct {
	Logger *slog.Logger
	// LockPath guards the editor against concurrent runs. Empty disables
	// locking (tests).
	LockPath string
	// Settle is how long to pause between jobs so the editor can release
	// resources. Not applied after the final job.
	Settle time.Duration
}

// Runner coordinates one run of jobs.
type Runner struct {
	driver Driver
	logger *slog.Logger
	lock   *flock.Flock
	settle time.Duration
}

// New constructs a runner around the given driver.
func New(driver Driver, opts Options) (*Runner, error) {
	if driver == nil {
		return nil, errors.New("runner requires a driver")
	}
	r := &Runner{
		driver: driver,
		logger: logging.NewComponentLogger(opts.Logger, "runner"),
		settle: opts.Settle,
	}
	if opts.LockPath != "" {
		r.lock = flock.New(opts.LockPath)
	}
	return r, nil
}

// Run executes jobs one at a time and aggregates the summary. warnings are
// attached to the summary up front (dropped bracket remainders, quality
// clamping). Results are appended in submission order regardless of outcome;
// cancellation stops dispatch after the current job and the summary keeps
// what completed.
func (r *Runner) Run(ctx context.Context, jobs []jobspec.Job, warnings []string) (*Summary, error) {
	if r.lock != nil {
		ok, err := r.lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrExternalTool, "runner", "lock", "acquire run lock", err)
		}
		if !ok {
			return nil, services.Wrap(services.ErrExternalTool, "runner", "lock",
				"another photoflow run is already driving the editor", nil)
		}
		defer func() {
			if err := r.lock.Unlock(); err != nil {
				r.logger.Warn("failed to release run lock", logging.Args(logging.Error(err))...)
			}
		}()
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	summary := &Summary{RunID: runID, Warnings: append([]string(nil), warnings...)}
	for _, warning := range summary.Warnings {
		logger.Warn(warning)
	}
	logger.Info("run started", logging.Args(logging.Int("jobs", len(jobs)))...)

	for i, job := range jobs {
		if ctx.Err() != nil {
			summary.Canceled = true
			logger.Warn("run canceled; keeping completed results",
				logging.Args(logging.Int("remaining", len(jobs)-i))...)
			break
		}

		jobCtx := services.WithJobID(ctx, job.ID())
		jobLogger := logging.WithContext(jobCtx, r.logger)
		jobLogger.Info("job started", logging.Args(logging.String("kind", string(job.Kind())))...)

		result := r.driver.Execute(jobCtx, job)
		summary.append(result)

		if result.Succeeded() {
			jobLogger.Info("job succeeded", logging.Args(
				logging.String("output", result.OutputPath),
				logging.Duration("took", result.Duration),
			)...)
		} else {
			jobLogger.Error("job failed", logging.Args(
				logging.String("reason", result.Message),
				logging.Duration("took", result.Duration),
			)...)
		}

		if r.settle > 0 && i < len(jobs)-1 {
			select {
			case <-time.After(r.settle):
			case <-ctx.Done():
			}
		}
	}

	if ctx.Err() != nil && !summary.Canceled {
		summary.Canceled = true
	}

	logger.Info("run finished", logging.Args(
		logging.Int("total", summary.Total()),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Bool("canceled", summary.Canceled),
	)...)
	return summary, nil
}
