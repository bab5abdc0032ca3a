package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/facturio/qascan/domain"
)

// ExecutorState tracks the orchestrator's lifecycle
type ExecutorState string

const (
	ExecutorIdle     ExecutorState = "idle"
	ExecutorRunning  ExecutorState = "running"
	ExecutorComplete ExecutorState = "complete"
)

// ExecutorImpl runs catalog definitions sequentially. Sequential execution
// is intentional: several checks mutate shared server-side state (credit
// balances, rate-limit counters) and running them concurrently would make
// the outcomes nondeterministic.
type ExecutorImpl struct {
	progress domain.ProgressManager

	mu       sync.RWMutex
	state    ExecutorState
	executed int
	total    int
}

// NewExecutor creates a sequential executor
func NewExecutor() *ExecutorImpl {
	return &ExecutorImpl{state: ExecutorIdle}
}

// NewExecutorWithProgress creates a sequential executor with progress tracking
func NewExecutorWithProgress(pm domain.ProgressManager) *ExecutorImpl {
	return &ExecutorImpl{state: ExecutorIdle, progress: pm}
}

// State returns the current lifecycle state
func (e *ExecutorImpl) State() ExecutorState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Progress returns the completed percentage of the current or last run
func (e *ExecutorImpl) Progress() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.total == 0 {
		return 0
	}
	return int(math.Round(float64(e.executed) / float64(e.total) * 100))
}

// Execute runs every definition in selection order and returns one result
// per definition. Each result carries the definition's identity, measured
// duration and a timestamp. There is no mid-run cancellation: the run
// completes in full once started; ctx only bounds individual probes.
func (e *ExecutorImpl) Execute(ctx context.Context, defs []domain.TestDefinition, rc *domain.RunContext) []domain.TestResult {
	e.mu.Lock()
	e.state = ExecutorRunning
	e.executed = 0
	e.total = len(defs)
	e.mu.Unlock()

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if e.progress != nil {
		task = e.progress.StartTask("Running checks", len(defs))
	}
	defer task.Complete()

	results := make([]domain.TestResult, 0, len(defs))
	for _, def := range defs {
		task.Describe(def.Name)
		results = append(results, e.runOne(ctx, def, rc))

		e.mu.Lock()
		e.executed++
		e.mu.Unlock()
		task.Increment(1)
	}

	e.mu.Lock()
	e.state = ExecutorComplete
	e.mu.Unlock()
	return results
}

// runOne invokes a single definition and stamps identity and timing onto
// its result. The run contract says definitions never panic; the recover
// here is the last line of defense so one fault cannot abort the run.
func (e *ExecutorImpl) runOne(ctx context.Context, def domain.TestDefinition, rc *domain.RunContext) (result domain.TestResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = domain.TestResult{
				Status:    domain.StatusFailed,
				Severity:  domain.SeverityError,
				Error:     fmt.Sprintf("check panicked: %v", r),
				RootCause: "the check itself is broken, not the system under test",
			}
			stamp(&result, def, start)
		}
	}()

	result = def.Run(ctx, rc)
	stamp(&result, def, start)
	return result
}

func stamp(r *domain.TestResult, def domain.TestDefinition, start time.Time) {
	r.ID = def.ID
	r.Name = def.Name
	r.Category = string(def.Component)
	r.Priority = def.Priority
	r.System = def.System
	r.Service = def.Service
	r.CrossSystem = def.CrossSystem
	r.DurationMs = time.Since(start).Milliseconds()
	r.Timestamp = time.Now()
}
