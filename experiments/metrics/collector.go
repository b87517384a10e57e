package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Nodes      int
	Shortcut   bool
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	Winner     game.Cell
	StonesA    int
	StonesB    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

// Collector gathers statistics of one search at a time. Start resets it.
type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	episodes   atomic.Int32
	nodes      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Nodes:      int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddNodes(n int)         {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
