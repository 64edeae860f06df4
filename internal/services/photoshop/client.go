package photoshop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"photoflow/internal/jobspec"
)

// Status is the terminal state of one job.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is the outcome of executing one job spec. Never mutated after
// creation.
type Result struct {
	JobID      string
	JobKind    jobspec.Kind
	Status     Status
	Message    string
	OutputPath string
	LogLines   []string
	Duration   time.Duration
}

// Succeeded reports whether the job completed cleanly.
func (r Result) Succeeded() bool { return r.Status == StatusSucceeded }

// failureMarkers are the log fragments the editor's scripts emit when a step
// fails internally even though the process may still exit zero.
var failureMarkers = []struct {
	fragment string
	reason   string
}{
	{"File not found", "input file missing"},
	{"Error processing file", "adjustment pipeline failed"},
	{"Error saving file", "save failed"},
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithPlatform overrides the host platform used to pick the invocation
// convention (primarily for tests).
func WithPlatform(goos string) Option {
	return func(c *Client) {
		if goos != "" {
			c.goos = goos
		}
	}
}

// WithOutputCheck overrides the artifact-existence probe (primarily for tests).
func WithOutputCheck(check func(path string) bool) Option {
	return func(c *Client) {
		if check != nil {
			c.checkOutput = check
		}
	}
}

// Client drives the editor for one job at a time. It owns the external
// process handle only for the duration of a single Execute call.
type Client struct {
	handle      Handle
	timeout     time.Duration
	goos        string
	exec        Executor
	checkOutput func(path string) bool
}

// NewClient constructs a driver bound to a resolved editor handle.
func NewClient(handle Handle, timeout time.Duration, opts ...Option) (*Client, error) {
	if strings.TrimSpace(handle.Path) == "" {
		return nil, errors.New("editor handle required")
	}
	client := &Client{
		handle:  handle,
		timeout: timeout,
		goos:    runtime.GOOS,
		exec:    commandExecutor{},
		checkOutput: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Execute runs one job to completion and classifies the outcome. Exit code
// zero with no recognized failure marker and an existing output artifact means
// success; any non-zero exit, timeout, or marker means failure. Host-side
// problems (temp files, pipes) are absorbed into a failed result so the run
// can continue with the next job.
func (c *Client) Execute(ctx context.Context, job jobspec.Job) Result {
	started := time.Now()
	result := Result{
		JobID:      job.ID(),
		JobKind:    job.Kind(),
		Status:     StatusFailed,
		OutputPath: job.OutputPath(),
	}
	finish := func(r Result) Result {
		r.Duration = time.Since(started)
		return r
	}

	script, err := materialize(job)
	if err != nil {
		result.Message = fmt.Sprintf("prepare script: %v", err)
		return finish(result)
	}
	defer script.cleanup()

	jobCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	binary, args := c.command(script.scriptPath)

	var mu sync.Mutex
	var lines []string
	runErr := c.exec.Run(jobCtx, binary, args, func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})
	result.LogLines = lines

	if marker, ok := findFailureMarker(lines); ok {
		result.Message = marker
		return finish(result)
	}

	if runErr != nil {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result.Message = fmt.Sprintf("timed out after %s; editor process terminated", c.timeout)
		case errors.Is(jobCtx.Err(), context.Canceled):
			result.Message = "canceled before completion"
		default:
			result.Message = fmt.Sprintf("editor process failed: %v", runErr)
		}
		return finish(result)
	}

	if !c.checkOutput(job.OutputPath()) {
		result.Message = fmt.Sprintf("editor exited cleanly but %s was not written", job.OutputPath())
		return finish(result)
	}

	result.Status = StatusSucceeded
	result.Message = "ok"
	return finish(result)
}

// command builds the platform-specific invocation. macOS drives the editor
// through osascript; elsewhere the executable takes the script directly.
func (c *Client) command(scriptPath string) (string, []string) {
	if c.goos == "darwin" {
		return "osascript", []string{
			"-e",
			fmt.Sprintf("tell application \"Adobe Photoshop\" to open file %q as JavaScript", scriptPath),
		}
	}
	return c.handle.Path, []string{"--javascript", scriptPath}
}

func findFailureMarker(lines []string) (string, bool) {
	for _, line := range lines {
		for _, marker := range failureMarkers {
			if strings.Contains(line, marker.fragment) {
				return fmt.Sprintf("%s: %s", marker.reason, strings.TrimSpace(line)), true
			}
		}
	}
	return "", false
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
