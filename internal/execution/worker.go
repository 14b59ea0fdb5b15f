package execution

import (
	"context"
	"sync"
	"time"

	"datacheck/internal/check"
	"datacheck/internal/config"
	"datacheck/internal/domain"
	"datacheck/internal/ui"
)

// WorkerPool manages a pool of workers validating files in parallel
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner) *WorkerPool {
	return &WorkerPool{config: cfg, runner: runner}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute validates all files with the suite in parallel (no fail-fast).
func (wp *WorkerPool) Execute(suite *check.Suite, files []string) ([]domain.FileResult, time.Duration, error) {
	return wp.ExecuteWithOptions(suite, files, false)
}

// ExecuteWithOptions validates files with optional fail-fast (stop on first failing file).
func (wp *WorkerPool) ExecuteWithOptions(suite *check.Suite, files []string, failFast bool) ([]domain.FileResult, time.Duration, error) {
	if len(files) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(suite, files)
	}
	return wp.executeFailFast(suite, files)
}

func (wp *WorkerPool) executeAll(suite *check.Suite, files []string) ([]domain.FileResult, time.Duration, error) {
	fileQueue := make(chan string, len(files))
	results := make(chan domain.FileResult, len(files))
	for _, file := range files {
		fileQueue <- file
	}
	close(fileQueue)

	var mu sync.Mutex
	var completed, passedChecks, failedChecks int
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range fileQueue {
				result := wp.runner.Run(suite, path)
				results <- result
				mu.Lock()
				completed++
				passedChecks += result.Passed
				failedChecks += result.Failed
				if wp.progress != nil {
					wp.progress.Update(completed, passedChecks, failedChecks)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.FileResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) executeFailFast(suite *check.Suite, files []string) ([]domain.FileResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileQueue := make(chan string, 1)
	results := make(chan domain.FileResult, len(files))

	go func() {
		defer close(fileQueue)
		for _, file := range files {
			select {
			case <-ctx.Done():
				return
			case fileQueue <- file:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passedChecks, failedChecks int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range fileQueue {
				result := wp.runner.Run(suite, path)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				completed++
				passedChecks += result.Passed
				failedChecks += result.Failed
				if wp.progress != nil {
					wp.progress.Update(completed, passedChecks, failedChecks)
				}
				if !result.Success() {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.FileResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) workerCount() int {
	if wp.config.Processors <= 0 {
		return 1
	}
	return wp.config.Processors
}
