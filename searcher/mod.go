package searcher

import (
	"fmt"

	"multiagent/game"
)

// Unlimited disables the depth cutoff: the search only stops at finished states.
const Unlimited = -1

// Role is the behaviour a search assigns to the agent acting at a node.
type Role int

const (
	Maximizer Role = iota
	Minimizer
	Chance // averages uniformly over legal actions, expectimax only
)

func (r Role) String() string {
	switch r {
	case Maximizer:
		return "max"
	case Minimizer:
		return "min"
	case Chance:
		return "random"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole accepts the names produced by Role.String.
func ParseRole(s string) (Role, error) {
	switch s {
	case "max":
		return Maximizer, nil
	case "min":
		return Minimizer, nil
	case "random":
		return Chance, nil
	}
	return 0, fmt.Errorf("unknown role %q: expected max, min or random", s)
}

// Classifier assigns a role to an agent. It is supplied per search call, so the same game can
// be searched under different role assignments.
type Classifier[G any] func(agent G) Role

// ByAgent classifies agents from a fixed table. Agents missing from the table panic.
func ByAgent[G comparable](roles map[G]Role) Classifier[G] {
	return func(agent G) Role {
		role, ok := roles[agent]
		if !ok {
			panic(fmt.Sprintf("no role assigned to agent %v", agent))
		}
		return role
	}
}

// Result is the outcome of a search. Decided is false when no action is recommended, which
// happens at finished states, at the depth cutoff, when no action is legal and at chance nodes.
type Result[A, U any] struct {
	Action  A
	Decided bool
	Utility U
}

type bound[U any] struct {
	value U
	set   bool
}

func deeper(depth int) int {
	if depth < 0 {
		return depth
	}
	return depth - 1
}

// Algorithm names a search entry point.
type Algorithm string

const (
	AlgorithmMinimax    Algorithm = "minimax"
	AlgorithmExpectimax Algorithm = "expectimax"
)

func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmMinimax, AlgorithmExpectimax:
		return a, nil
	}
	return "", fmt.Errorf("unknown algorithm %q: expected minimax or expectimax", s)
}

// Search dispatches to Minimax or Expectimax. Unknown algorithms panic.
func Search[S game.State[S, A, G], A, G any, U game.Utility[U]](
	algorithm Algorithm,
	state S,
	depth int,
	actions game.Enumerator[A],
	evaluate game.Evaluate[S, U],
	classify Classifier[G],
	options ...Option,
) Result[A, U] {
	switch algorithm {
	case AlgorithmMinimax:
		return Minimax(state, depth, actions, evaluate, classify, options...)
	case AlgorithmExpectimax:
		return Expectimax(state, depth, actions, evaluate, classify, options...)
	}
	panic(fmt.Sprintf("unknown algorithm %q", algorithm))
}
