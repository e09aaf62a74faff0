package agent

import (
	"fmt"

	"multiagent/game"
	"multiagent/searcher"

	"github.com/pkg/errors"
)

type SearchAgent[S game.State[S, A, G], A, G any, U game.Utility[U]] struct {
	algorithm searcher.Algorithm
	depth     int
	actions   game.Enumerator[A]
	evaluate  game.Evaluate[S, U]
	classify  searcher.Classifier[G]
	metrics   *recorder
}

// NewSearchAgent returns an agent that plays the action recommended by a search of the given
// algorithm and depth.
func NewSearchAgent[S game.State[S, A, G], A, G any, U game.Utility[U]](
	algorithm searcher.Algorithm,
	depth int,
	actions game.Enumerator[A],
	evaluate game.Evaluate[S, U],
	classify searcher.Classifier[G],
) (*SearchAgent[S, A, G, U], error) {
	if _, err := searcher.ParseAlgorithm(string(algorithm)); err != nil {
		return nil, err
	}
	return &SearchAgent[S, A, G, U]{
		algorithm: algorithm,
		depth:     depth,
		actions:   actions,
		evaluate:  evaluate,
		classify:  classify,
		metrics:   &recorder{Collector: searcher.NewCollector()},
	}, nil
}

func (a *SearchAgent[S, A, G, U]) FindMove(state S) (A, error) {
	result := searcher.Search(a.algorithm, state, a.depth, a.actions, a.evaluate, a.classify, searcher.WithMetrics(a.metrics))
	a.metrics.utility = fmt.Sprint(result.Utility)
	if !result.Decided {
		var none A
		return none, errors.Wrapf(ErrNoMove, "%s search at depth %d decided nothing", a.algorithm, a.depth)
	}
	return result.Action, nil
}

func (a *SearchAgent[S, A, G, U]) LastReport() Report {
	return Report{Utility: a.metrics.utility, Search: a.metrics.last}
}

// recorder keeps the metric of the last completed search.
type recorder struct {
	searcher.Collector
	last    searcher.SearchMetric
	utility string
}

func (r *recorder) Complete() searcher.SearchMetric {
	r.last = r.Collector.Complete()
	return r.last
}
