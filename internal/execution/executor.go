package execution

import (
	"time"

	"datacheck/internal/check"
	"datacheck/internal/domain"
)

// Executor executes a suite against targets and returns results
type Executor interface {
	Execute(suite *check.Suite, files []string) ([]domain.FileResult, time.Duration, error)
}
