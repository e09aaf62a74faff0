package agent

import (
	"multiagent/searcher"

	"github.com/pkg/errors"
)

// ErrNoMove is returned by agents asked to move in a state without any legal action.
var ErrNoMove = errors.New("no legal move")

type Agent[S, A any] interface {
	// FindMove returns the action to play in state
	FindMove(state S) (A, error)
}

// Report describes how an agent found its last move.
type Report struct {
	Utility string
	Search  searcher.SearchMetric
}

// Reporter is implemented by agents that collect a Report for every move.
type Reporter interface {
	LastReport() Report
}
