package sim

import "github.com/atharvRsharma/Pendulums/internal/chain"

// Observer is notified after every completed integration step.
type Observer interface {
	OnStep(c *chain.Chain, t float64)
}

// Metric accumulates a scalar over a headless run.
type Metric interface {
	Name() string
	Observe(c *chain.Chain, t float64)
	Value() float64
	Reset()
}

// Result collects the output of a headless run. Angles rows hold theta then
// omega for each link, pivot outward.
type Result struct {
	Times      []float64
	Angles     [][]float64
	Trace      []chain.Point
	Metrics    map[string]float64
	StepsTaken int
	Diverged   bool
	DivergedAt int
}
