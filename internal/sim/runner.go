package sim

import (
	"context"
	"fmt"

	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/motion"
)

// Runner drives a simulation headless for a fixed duration, feeding every
// step to the registered observers and metrics and collecting a Result.
type Runner struct {
	sim       *Simulation
	metrics   []Metric
	observers []Observer
}

func NewRunner(s *Simulation) *Runner {
	return &Runner{sim: s}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the simulation for the given duration of simulated seconds.
// Cancellation via ctx stops the run between steps; the partial Result is
// returned alongside the context error. Divergence never stops a run, it is
// only recorded.
func (r *Runner) Run(ctx context.Context, duration float64) (*Result, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", duration)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	steps := int(duration / r.sim.Dt())
	result := &Result{
		Times:      make([]float64, 0, steps),
		Angles:     make([][]float64, 0, steps),
		Metrics:    make(map[string]float64),
		DivergedAt: -1,
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		r.sim.Step()
		result.StepsTaken++

		c := r.sim.Chain()
		t := r.sim.Time()

		result.Times = append(result.Times, t)
		result.Angles = append(result.Angles, angleRow(c))

		if !result.Diverged && motion.Diverged(c) {
			result.Diverged = true
			result.DivergedAt = result.StepsTaken
		}

		for _, m := range r.metrics {
			m.Observe(c, t)
		}
		for _, o := range r.observers {
			o.OnStep(c, t)
		}
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	points := r.sim.Trace().Points()
	result.Trace = make([]chain.Point, len(points))
	copy(result.Trace, points)
}

// angleRow flattens the chain into theta,omega pairs, pivot outward.
func angleRow(c *chain.Chain) []float64 {
	row := make([]float64, 0, c.Len()*2)
	for _, l := range c.Links() {
		row = append(row, l.Theta, l.Omega)
	}
	return row
}
