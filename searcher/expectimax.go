package searcher

import (
	"fmt"

	"multiagent/game"

	"github.com/rs/zerolog/log"
)

// Expectimax searches for the best action of the agent to move in state. Maximizer and
// Minimizer nodes behave as in Minimax without pruning. Chance nodes recommend no action and
// are worth the uniform average of their legal successors, accumulated from the zero value of
// U.
//
// Finished states, states reached with depth 0 and states without a legal action are scored
// with evaluate and carry no action, whatever the role of the agent to move.
func Expectimax[S game.State[S, A, G], A, G any, U game.Utility[U]](
	state S,
	depth int,
	actions game.Enumerator[A],
	evaluate game.Evaluate[S, U],
	classify Classifier[G],
	options ...Option,
) Result[A, U] {
	s := newSettings(options)
	e := &expectimax[S, A, G, U]{
		actions:  actions,
		evaluate: evaluate,
		classify: classify,
		metrics:  s.metrics,
	}

	e.metrics.Start(string(AlgorithmExpectimax), depth)
	result := e.search(state, depth)
	metric := e.metrics.Complete()

	event := log.Debug().
		Str("algorithm", string(AlgorithmExpectimax)).
		Int("depth", depth).
		Bool("decided", result.Decided).
		Interface("utility", result.Utility)
	if s.collecting {
		event = event.Int64("nodes", metric.Nodes).Int64("chance_nodes", metric.ChanceNodes)
	}
	event.Msg("search complete")
	return result
}

type expectimax[S game.State[S, A, G], A, G any, U game.Utility[U]] struct {
	actions  game.Enumerator[A]
	evaluate game.Evaluate[S, U]
	classify Classifier[G]
	metrics  Collector
}

func (e *expectimax[S, A, G, U]) search(state S, depth int) Result[A, U] {
	e.metrics.AddNode()

	agent, ok := state.NextAgent()
	if !ok || depth == 0 {
		return e.leaf(state)
	}

	switch role := e.classify(agent); role {
	case Maximizer, Minimizer:
		return e.decide(state, depth, role)
	case Chance:
		return e.average(state, depth)
	default:
		panic(fmt.Sprintf("expectimax: unsupported role %v for agent %v", role, agent))
	}
}

func (e *expectimax[S, A, G, U]) decide(state S, depth int, role Role) Result[A, U] {
	var best Result[A, U]
	for action, next := range game.Successors[S, A, G](state, e.actions) {
		child := e.search(next, deeper(depth))

		if best.Decided {
			cmp := child.Utility.Compare(best.Utility)
			if (role == Maximizer && cmp <= 0) || (role == Minimizer && cmp >= 0) {
				continue
			}
		}
		best = Result[A, U]{Action: action, Decided: true, Utility: child.Utility}
	}

	if !best.Decided {
		return e.leaf(state)
	}
	return best
}

func (e *expectimax[S, A, G, U]) average(state S, depth int) Result[A, U] {
	var children []S
	for _, next := range game.Successors[S, A, G](state, e.actions) {
		children = append(children, next)
	}
	if len(children) == 0 {
		return e.leaf(state)
	}

	e.metrics.AddChance()
	weight := 1.0 / float64(len(children))
	var utility U
	for _, child := range children {
		utility = utility.Add(e.search(child, deeper(depth)).Utility.Scale(weight))
	}
	return Result[A, U]{Utility: utility}
}

func (e *expectimax[S, A, G, U]) leaf(state S) Result[A, U] {
	e.metrics.AddEvaluation()
	return Result[A, U]{Utility: e.evaluate(state)}
}
