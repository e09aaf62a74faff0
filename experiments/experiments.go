package experiments

import (
	"multiagent/engine"
	"multiagent/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Experiment plays a number of games and stores their records under
// <Output>/<Name>/<timestamp>/.
type Experiment[S any] struct {
	Name    string
	Games   int
	Output  string
	Configs []metrics.AgentConfig
	// NewGame returns a fresh engine for game id, counted from 1
	NewGame func(id int) (engine.Engine[S], error)
}

type Summary struct {
	Dir   string
	Games int
	Wins  map[string]int // Keyed by winner, "" counts draws and unfinished games
}

func (x Experiment[S]) Run() (Summary, error) {
	summary := Summary{Wins: map[string]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d games...", x.Name, x.Games)

	for id := 1; id <= x.Games; id++ {
		e, err := x.NewGame(id)
		if err != nil {
			return summary, err
		}
		_, gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return summary, err
		}

		gameRecords = append(gameRecords, metrics.GameRecord{ID: id, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}
		summary.Games++
		summary.Wins[gameMetric.Winner]++

		log.Info().Msgf("completed game %d of %d with winner: %q", id, x.Games, gameMetric.Winner)
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.Output, x.Name)
	if err != nil {
		return summary, err
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return summary, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")

	return summary, nil
}
