package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Depth       int
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
	ChanceNodes int64
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	AddChance()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
	chances     atomic.Int64
}

// NewCollector returns a collector that can be reused across searches; Start resets it.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	m.algorithm = algorithm
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.chances.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddChance() {
	m.chances.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Depth:       m.depth,
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Cutoffs:     m.cutoffs.Load(),
		ChanceNodes: m.chances.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) AddChance()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
