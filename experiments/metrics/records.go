package metrics

import (
	"time"

	"multiagent/searcher"
)

// AgentConfig describes how one side of a self-play match picks its moves.
type AgentConfig struct {
	Player    string
	Kind      string // search, random or human
	Role      string
	Algorithm string
	Depth     int
}

type MoveMetric struct {
	Step    int
	Player  string
	Action  string
	Utility string // Empty unless the move came from a search
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty for draws and unfinished games
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
