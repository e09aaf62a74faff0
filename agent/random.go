package agent

import (
	"multiagent/game"

	"golang.org/x/exp/rand"
)

type RandomAgent[S game.State[S, A, G], A, G any] struct {
	actions game.Enumerator[A]
	rng     *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among legal actions. The same seed
// replays the same choices.
func NewRandomAgent[S game.State[S, A, G], A, G any](actions game.Enumerator[A], seed uint64) *RandomAgent[S, A, G] {
	return &RandomAgent[S, A, G]{
		actions: actions,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent[S, A, G]) FindMove(state S) (A, error) {
	var legal []A
	for action := range game.LegalActions[S, A, G](state, a.actions) {
		legal = append(legal, action)
	}
	if len(legal) == 0 {
		var none A
		return none, ErrNoMove
	}
	return legal[a.rng.Intn(len(legal))], nil
}
