package metrics

import (
	"math"

	"github.com/atharvRsharma/Pendulums/internal/chain"
)

// TraceSpan tracks the bounding box of terminal-mass positions and reports
// its larger side. A chaotic chain fills a wide box quickly; a settled one
// stays small.
type TraceSpan struct {
	minX, maxX float64
	minY, maxY float64
	samples    int
}

func NewTraceSpan() *TraceSpan { return &TraceSpan{} }

func (s *TraceSpan) Name() string { return "trace_span" }

func (s *TraceSpan) Observe(c *chain.Chain, t float64) {
	p := chain.TipPosition(c)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	if s.samples == 0 {
		s.minX, s.maxX = p.X, p.X
		s.minY, s.maxY = p.Y, p.Y
	} else {
		s.minX = math.Min(s.minX, p.X)
		s.maxX = math.Max(s.maxX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxY = math.Max(s.maxY, p.Y)
	}
	s.samples++
}

func (s *TraceSpan) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return math.Max(s.maxX-s.minX, s.maxY-s.minY)
}

func (s *TraceSpan) Reset() {
	s.minX, s.maxX, s.minY, s.maxY = 0, 0, 0, 0
	s.samples = 0
}
