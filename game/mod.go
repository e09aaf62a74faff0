package game

import (
	"cmp"
	"iter"
)

// State is a complete game position. Implementations must be immutable: Successor always
// returns a new value and never modifies the receiver.
//
// S is the concrete state type, A the action type and G the agent type.
type State[S, A, G any] interface {
	// NextAgent returns the agent to move, or false once the game has concluded
	NextAgent() (G, bool)
	// Successor returns the state that results from action, or false if action is illegal in
	// this state (including on a finished game)
	Successor(action A) (S, bool)
}

// IsFinished reports whether no agent remains to move.
func IsFinished[S State[S, A, G], A, G any](state S) bool {
	_, ok := state.NextAgent()
	return !ok
}

// IsLegal reports whether action can be played in state.
func IsLegal[S State[S, A, G], A, G any](state S, action A) bool {
	_, ok := state.Successor(action)
	return ok
}

// Enumerator yields every syntactically possible value of an action type in a fixed order.
// It has the shape of iter.Seq, so it can be ranged over and restarted.
type Enumerator[A any] func(yield func(A) bool)

func (e Enumerator[A]) Seq() iter.Seq[A] {
	return iter.Seq[A](e)
}

// Successors yields each legal action of actions paired with the state it leads to, in
// enumeration order.
func Successors[S State[S, A, G], A, G any](state S, actions Enumerator[A]) func(yield func(A, S) bool) {
	return func(yield func(A, S) bool) {
		for action := range actions {
			next, ok := state.Successor(action)
			if !ok {
				continue
			}
			if !yield(action, next) {
				return
			}
		}
	}
}

// LegalActions filters actions down to those legal in state.
func LegalActions[S State[S, A, G], A, G any](state S, actions Enumerator[A]) Enumerator[A] {
	return func(yield func(A) bool) {
		for action := range Successors[S, A, G](state, actions) {
			if !yield(action) {
				return
			}
		}
	}
}

// Evaluate scores a terminal or cutoff state.
type Evaluate[S, U any] func(S) U

// Ordered is a utility with a total ordering.
type Ordered[U any] interface {
	// Compare returns a negative number, zero or a positive number when the receiver is less
	// than, equal to or greater than other
	Compare(other U) int
}

// Utility is an ordered value that can also be summed and weighted, as required to average
// chance outcomes. The zero value of the type is the additive identity.
type Utility[U any] interface {
	Ordered[U]
	Add(other U) U
	Scale(weight float64) U
}

// Score is the stock floating point utility.
type Score float64

func (s Score) Compare(other Score) int {
	return cmp.Compare(s, other)
}

func (s Score) Add(other Score) Score {
	return s + other
}

func (s Score) Scale(weight float64) Score {
	return Score(float64(s) * weight)
}
