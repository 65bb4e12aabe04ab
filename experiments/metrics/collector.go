package metrics

import (
	"time"
)

// SearchMetric summarizes the work done by one search.
type SearchMetric struct {
	MaxPlies    int
	Pruning     bool
	Duration    time.Duration
	Nodes       int // calls into max-node or min-node evaluation
	Evaluations int // calls into the evaluator
	Prunes      int // sibling enumerations stopped by a cutoff
}

type MoveMetric struct {
	Step   int
	Player string
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes an agent taking part in an experiment.
type AgentConfig struct {
	ID        int
	Strategy  string
	MaxPlies  int
	Evaluator string
	Seed      uint64
}

// Collector is the instrumentation hook a search reports to. It is not safe
// for concurrent use; each searcher owns its own collector.
type Collector interface {
	Start(maxPlies int, pruning bool)
	AddNode()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	maxPlies    int
	pruning     bool
	startTime   time.Time
	nodes       int
	evaluations int
	prunes      int
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(maxPlies int, pruning bool) {
	*m = collector{maxPlies: maxPlies, pruning: pruning, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddEvaluation() {
	m.evaluations++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxPlies:    m.maxPlies,
		Pruning:     m.pruning,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Evaluations: m.evaluations,
		Prunes:      m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxPlies int, pruning bool) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddEvaluation()                   {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
