package searcher

import (
	"fmt"

	"multiagent/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches for the best action of the agent to move in state, using alpha-beta
// pruning. Agents classified as Maximizer pick the highest utility and agents classified as
// Minimizer the lowest; Chance is not supported and panics.
//
// Only actions produced by actions that are legal in state are explored, in enumeration
// order; ties keep the first action seen. Finished states, states reached with depth 0 and
// states without a legal action are scored with evaluate and carry no action. A negative
// depth (Unlimited) searches until the game ends.
func Minimax[S game.State[S, A, G], A, G any, U game.Ordered[U]](
	state S,
	depth int,
	actions game.Enumerator[A],
	evaluate game.Evaluate[S, U],
	classify Classifier[G],
	options ...Option,
) Result[A, U] {
	s := newSettings(options)
	m := &minimax[S, A, G, U]{
		actions:  actions,
		evaluate: evaluate,
		classify: classify,
		metrics:  s.metrics,
	}

	m.metrics.Start(string(AlgorithmMinimax), depth)
	result := m.search(state, depth, bound[U]{}, bound[U]{})
	metric := m.metrics.Complete()

	event := log.Debug().
		Str("algorithm", string(AlgorithmMinimax)).
		Int("depth", depth).
		Bool("decided", result.Decided).
		Interface("utility", result.Utility)
	if s.collecting {
		event = event.Int64("nodes", metric.Nodes).Int64("cutoffs", metric.Cutoffs)
	}
	event.Msg("search complete")
	return result
}

type minimax[S game.State[S, A, G], A, G any, U game.Ordered[U]] struct {
	actions  game.Enumerator[A]
	evaluate game.Evaluate[S, U]
	classify Classifier[G]
	metrics  Collector
}

// search returns the value of state bounded by alpha (best guaranteed to the maximizer on the
// current path) and beta (best guaranteed to the minimizer). Absent bounds are unbounded.
func (m *minimax[S, A, G, U]) search(state S, depth int, alpha, beta bound[U]) Result[A, U] {
	m.metrics.AddNode()

	agent, ok := state.NextAgent()
	if !ok || depth == 0 {
		return m.leaf(state)
	}

	role := m.classify(agent)
	if role != Maximizer && role != Minimizer {
		panic(fmt.Sprintf("minimax: unsupported role %v for agent %v", role, agent))
	}

	var best Result[A, U]
	for action, next := range game.Successors[S, A, G](state, m.actions) {
		child := m.search(next, deeper(depth), alpha, beta)

		if role == Maximizer {
			if best.Decided && child.Utility.Compare(best.Utility) <= 0 {
				continue
			}
			best = Result[A, U]{Action: action, Decided: true, Utility: child.Utility}
			// The minimizing ancestor already has something better than this branch
			if beta.set && best.Utility.Compare(beta.value) > 0 {
				m.metrics.AddCutoff()
				return best
			}
			if !alpha.set || best.Utility.Compare(alpha.value) > 0 {
				alpha = bound[U]{value: best.Utility, set: true}
			}
		} else {
			if best.Decided && child.Utility.Compare(best.Utility) >= 0 {
				continue
			}
			best = Result[A, U]{Action: action, Decided: true, Utility: child.Utility}
			if alpha.set && best.Utility.Compare(alpha.value) < 0 {
				m.metrics.AddCutoff()
				return best
			}
			if !beta.set || best.Utility.Compare(beta.value) < 0 {
				beta = bound[U]{value: best.Utility, set: true}
			}
		}
	}

	if !best.Decided { // No legal action
		return m.leaf(state)
	}
	return best
}

func (m *minimax[S, A, G, U]) leaf(state S) Result[A, U] {
	m.metrics.AddEvaluation()
	return Result[A, U]{Utility: m.evaluate(state)}
}
