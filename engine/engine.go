package engine

import (
	"errors"

	"checkers/experiments/metrics"
)

var (
	ErrNoAction      = errors.New("agent returned no action")
	ErrIllegalAction = errors.New("agent returned an illegal action")
)

type Runner interface {
	// Run plays a game till there's a terminal state or a max number of turns
	// is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
