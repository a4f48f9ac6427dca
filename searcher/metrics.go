package searcher

import "time"

type SearchMetric struct {
	Method    Method
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Recursive calls that passed the deadline check
	Cutoffs   int64 // Alpha-beta prunings
	Depth     int   // Deepest fully completed search depth
	Cancelled bool  // Whether the deadline interrupted a search
}

type Collector interface {
	Start(method Method)
	AddNode()
	AddCutoff()
	CompleteDepth(depth int)
	Cancel()
	Complete() SearchMetric
}

// Search is single-threaded, so the collector needs no synchronization.
type metricsCollector struct {
	method    Method
	startTime time.Time
	nodes     int64
	cutoffs   int64
	depth     int
	cancelled bool
}

func NewMetricsCollector() Collector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(method Method) {
	*m = metricsCollector{method: method, startTime: time.Now()}
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth = depth
}

func (m *metricsCollector) Cancel() {
	m.cancelled = true
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Method:    m.method,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Cutoffs:   m.cutoffs,
		Depth:     m.depth,
		Cancelled: m.cancelled,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() Collector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(Method)           {}
func (m *noMetricsCollector) AddNode()               {}
func (m *noMetricsCollector) AddCutoff()             {}
func (m *noMetricsCollector) CompleteDepth(int)      {}
func (m *noMetricsCollector) Cancel()                {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
