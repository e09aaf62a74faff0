package engine

import "multiagent/experiments/metrics"

const MaxMoves = 10000

type Engine[S any] interface {
	// Run plays a game till it is finished or the move limit is reached
	Run() (final S, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
