package engine

import (
	"fmt"
	"time"

	"multiagent/agent"
	"multiagent/experiments/metrics"
	"multiagent/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Update is a single ply handed to the observer after it has been applied.
type Update[S, A, G any] struct {
	Step  int
	Agent G
	Move  A
	State S
}

type Local[S game.State[S, A, G], A any, G comparable] struct {
	State    S
	Agents   map[G]agent.Agent[S, A]
	MaxMoves int
	// Winner names the winner of a finished game, or returns "" for a draw. Optional.
	Winner func(final S) string
	// Observe is called after every ply. Optional.
	Observe func(update Update[S, A, G])
}

// LocalEngine plays state to the end in-process, asking the agent registered for the agent to
// move at each ply.
func LocalEngine[S game.State[S, A, G], A any, G comparable](state S, agents map[G]agent.Agent[S, A]) *Local[S, A, G] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Local[S, A, G]{
		State:    state,
		Agents:   agents,
		MaxMoves: MaxMoves,
	}
}

// Run executes the entire game loop. The engine state advances with every ply, so after an
// error it holds the position the failing agent was asked about.
func (e *Local[S, A, G]) Run() (S, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	if first, ok := e.State.NextAgent(); ok {
		gameMetric.StartingPlayer = fmt.Sprint(first)
		log.Info().Msgf("player %v is starting", first)
	}

	for step := 1; step <= e.MaxMoves; step++ {
		current, ok := e.State.NextAgent()
		if !ok {
			break
		}
		player, ok := e.Agents[current]
		if !ok {
			return e.State, gameMetric, moveMetrics, errors.Errorf("no agent registered for player %v", current)
		}

		move, err := player.FindMove(e.State)
		if err != nil {
			return e.State, gameMetric, moveMetrics, errors.Wrapf(err, "player %v failed to move at step %d", current, step)
		}
		next, ok := e.State.Successor(move)
		if !ok {
			return e.State, gameMetric, moveMetrics, errors.Errorf("player %v chose illegal move %v at step %d", current, move, step)
		}

		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: fmt.Sprint(current),
			Action: fmt.Sprint(move),
		}
		if reporter, ok := player.(agent.Reporter); ok {
			report := reporter.LastReport()
			moveMetric.Utility = report.Utility
			moveMetric.SearchMetric = report.Search
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Msgf("step %d: player %v played %v", step, current, move)

		e.State = next
		if e.Observe != nil {
			e.Observe(Update[S, A, G]{Step: step, Agent: current, Move: move, State: next})
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if !game.IsFinished[S, A, G](e.State) {
		log.Warn().Msgf("stopped after %d moves (no result yet)", e.MaxMoves)
		return e.State, gameMetric, moveMetrics, nil
	}
	if e.Winner != nil {
		gameMetric.Winner = e.Winner(e.State)
	}
	log.Info().Msgf("game over after %d moves, winner: %q", gameMetric.TotalMoves, gameMetric.Winner)
	return e.State, gameMetric, moveMetrics, nil
}
