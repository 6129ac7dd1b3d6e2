package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/engine"
)

// Result records the outcome of one invocation.
type Result struct {
	Index    int
	TaskName string
	Command  string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
	// Err is non-nil when the process failed to start, exited non-zero, or
	// the run was cancelled before it started.
	Err error
}

// Executor runs invocations through os/exec. The engine emits commands with
// no quoting, so the command string is split on whitespace; arguments must
// not contain spaces.
type Executor struct {
	workers  int
	dryRun   bool
	failFast bool
}

// New creates an Executor. workers bounds the number of concurrently running
// processes; dryRun logs the command lines without spawning anything;
// failFast stops handing out new runs after the first failure.
func New(workers int, dryRun, failFast bool) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers, dryRun: dryRun, failFast: failFast}
}

// Run executes every invocation and returns one Result per invocation, in
// invocation order. A non-nil error summarizes how many runs failed; the
// per-run detail stays in the results.
func (e *Executor) Run(ctx context.Context, invocations []engine.Invocation) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, len(invocations))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(e.workers)
	for w := 0; w < e.workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			e.worker(runCtx, cancel, jobs, invocations, results, workerID)
		}(w)
	}

feed:
	for i := range invocations {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			// Runs never handed out are marked skipped. Indices from i on
			// were not sent, so only this goroutine writes them.
			for j := i; j < len(invocations); j++ {
				results[j] = Result{
					Index:    j,
					TaskName: invocations[j].TaskName,
					Command:  invocations[j].Command,
					Err:      runCtx.Err(),
				}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.Debug("executor finished", "runs", len(results), "failed", failed)
	if failed > 0 {
		return results, fmt.Errorf("%d of %d runs failed", failed, len(results))
	}
	return results, nil
}

// worker is the processing loop of one concurrent worker.
func (e *Executor) worker(ctx context.Context, cancel context.CancelFunc, jobs chan int, invocations []engine.Invocation, results []Result, workerID int) {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)

	for i := range jobs {
		inv := invocations[i]
		runLogger := logger.With("run", i)
		if inv.TaskName != "" {
			runLogger = runLogger.With("task", inv.TaskName)
		}

		if ctx.Err() != nil {
			runLogger.Debug("run skipped")
			results[i] = Result{Index: i, TaskName: inv.TaskName, Command: inv.Command, Err: ctx.Err()}
			continue
		}

		results[i] = e.runOne(ctx, runLogger, i, inv)
		if results[i].Err != nil {
			runLogger.Error("run failed", "command", inv.Command, "error", results[i].Err)
			if e.failFast {
				cancel()
			}
		}
	}
}

func (e *Executor) runOne(ctx context.Context, logger *slog.Logger, index int, inv engine.Invocation) Result {
	result := Result{Index: index, TaskName: inv.TaskName, Command: inv.Command}

	argv := strings.Fields(inv.Command)
	if len(argv) == 0 {
		result.Err = errors.New("command is empty")
		return result
	}

	if e.dryRun {
		logger.Info("dry run", "command", inv.Command)
		return result
	}

	logger.Debug("spawning", "command", inv.Command)
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if err != nil {
		result.Err = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result
	}

	logger.Debug("run finished", "duration", result.Duration)
	return result
}
