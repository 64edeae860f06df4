package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"photoflow/internal/jobspec"
	"photoflow/internal/runner"
	"photoflow/internal/scan"
	"photoflow/internal/services/photoshop"
)

type fakeDriver struct {
	failIDs  map[string]bool
	executed []string
	cancel   context.CancelFunc
	cancelAt int
}

func (d *fakeDriver) Execute(_ context.Context, job jobspec.Job) photoshop.Result {
	d.executed = append(d.executed, job.ID())
	if d.cancel != nil && len(d.executed) == d.cancelAt {
		d.cancel()
	}
	result := photoshop.Result{
		JobID:      job.ID(),
		JobKind:    job.Kind(),
		Status:     photoshop.StatusSucceeded,
		Message:    "ok",
		OutputPath: job.OutputPath(),
	}
	if d.failIDs[job.ID()] {
		result.Status = photoshop.StatusFailed
		result.Message = "editor process failed: exit status 1"
	}
	return result
}

func makeJobs(names ...string) []jobspec.Job {
	items := make([]scan.InputItem, 0, len(names))
	for _, name := range names {
		items = append(items, scan.InputItem{Path: "/photos/" + name, Name: name})
	}
	jobs, _ := jobspec.BuildBatchJobs(items, jobspec.BatchOptions{
		OutputDir: "/out",
		Format:    jobspec.FormatJPEG,
		Quality:   80,
	})
	return jobs
}

func TestRunProducesOrderedResults(t *testing.T) {
	driver := &fakeDriver{}
	r, err := runner.New(driver, runner.Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	jobs := makeJobs("a.jpg", "b.jpg", "c.jpg")
	summary, err := r.Run(context.Background(), jobs, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Total() != 3 || summary.Succeeded != 3 || summary.Failed != 0 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	for i, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if summary.Results[i].JobID != name {
			t.Fatalf("expected result %d for %s, got %s", i, name, summary.Results[i].JobID)
		}
	}
	if summary.RunID == "" {
		t.Fatal("expected a run identifier")
	}
}

func TestRunContinuesPastFailure(t *testing.T) {
	driver := &fakeDriver{failIDs: map[string]bool{"b.jpg": true}}
	r, err := runner.New(driver, runner.Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	summary, err := r.Run(context.Background(), makeJobs("a.jpg", "b.jpg", "c.jpg"), nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Total() != 3 {
		t.Fatalf("expected all jobs dispatched, got %d", summary.Total())
	}
	if summary.Failed != 1 || summary.Succeeded != 2 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if len(driver.executed) != 3 {
		t.Fatalf("expected run to continue after failure, executed %v", driver.executed)
	}
}

func TestRunCancellationKeepsCompletedResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	driver := &fakeDriver{cancel: cancel, cancelAt: 2}
	r, err := runner.New(driver, runner.Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	summary, err := r.Run(ctx, makeJobs("a.jpg", "b.jpg", "c.jpg", "d.jpg"), nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !summary.Canceled {
		t.Fatal("expected summary to record cancellation")
	}
	if summary.Total() != 2 {
		t.Fatalf("expected two completed results, got %d", summary.Total())
	}
	if len(driver.executed) != 2 {
		t.Fatalf("expected dispatch to stop after cancellation, executed %v", driver.executed)
	}
}

func TestRunAttachesWarnings(t *testing.T) {
	driver := &fakeDriver{}
	r, err := runner.New(driver, runner.Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	warnings := []string{"1 file ignored: incomplete bracket set"}
	summary, err := r.Run(context.Background(), makeJobs("a.jpg"), warnings)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(summary.Warnings) != 1 || summary.Warnings[0] != warnings[0] {
		t.Fatalf("expected warnings on summary, got %v", summary.Warnings)
	}
}

func TestRunCreatesLockFile(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "photoflow.lock")
	driver := &fakeDriver{}
	r, err := runner.New(driver, runner.Options{LockPath: lockPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := r.Run(context.Background(), makeJobs("a.jpg"), nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}
}

func TestRunEmptyJobList(t *testing.T) {
	r, err := runner.New(&fakeDriver{}, runner.Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	summary, err := r.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Total() != 0 || summary.Failed != 0 || summary.Succeeded != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestNewRequiresDriver(t *testing.T) {
	if _, err := runner.New(nil, runner.Options{}); err == nil {
		t.Fatal("expected error for nil driver")
	}
}
