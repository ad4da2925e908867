// Package sim owns the running system: the chain, its path trace, the
// editor applying user actions, and the integrator advancing them.
//
// Everything here runs on a single goroutine. The frame contract is
// step-then-render: callers advance with Step, apply edits between steps,
// and read state between steps. Nothing is locked; interleaving Step with
// reads from another goroutine is a caller bug.
package sim

import (
	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/motion"
)

// Simulation aggregates one chain, its trace, and the integrator that
// advances them with a fixed timestep.
type Simulation struct {
	chain      *chain.Chain
	trace      *chain.Trace
	editor     *chain.Editor
	integrator *motion.Integrator

	t     float64
	dt    float64
	steps int
}

// New returns a simulation in the bootstrap state with the default
// timestep.
func New() *Simulation { return NewWithDt(chain.Dt) }

// NewWithDt returns a bootstrap simulation stepping with the given
// timestep.
func NewWithDt(dt float64) *Simulation {
	c := chain.New()
	tr := chain.NewTrace()
	return &Simulation{
		chain:      c,
		trace:      tr,
		editor:     chain.NewEditor(c, tr),
		integrator: motion.New(),
		dt:         dt,
	}
}

// Step advances the system one timestep and records the terminal position.
func (s *Simulation) Step() {
	s.integrator.Step(s.chain, s.trace, s.dt)
	s.t += s.dt
	s.steps++
}

// AddLink appends a link to the free end.
func (s *Simulation) AddLink() { s.editor.AddLink() }

// RemoveLink removes the terminal link, or clears the trace when only the
// base link remains.
func (s *Simulation) RemoveLink() { s.editor.RemoveLink() }

// Reset returns the simulation to the bootstrap state: one link, empty
// trace, time zero. The timestep is kept.
func (s *Simulation) Reset() {
	s.chain = chain.New()
	s.trace = chain.NewTrace()
	s.editor = chain.NewEditor(s.chain, s.trace)
	s.t = 0
	s.steps = 0
}

// Chain exposes the chain for rendering and metrics. Read-only between
// steps.
func (s *Simulation) Chain() *chain.Chain { return s.chain }

// Trace exposes the path trace. Read-only between steps.
func (s *Simulation) Trace() *chain.Trace { return s.trace }

// TipPosition returns the current terminal-mass position.
func (s *Simulation) TipPosition() chain.Point { return chain.TipPosition(s.chain) }

// Time returns the accumulated simulated time.
func (s *Simulation) Time() float64 { return s.t }

// Dt returns the fixed timestep.
func (s *Simulation) Dt() float64 { return s.dt }

// Steps returns the number of steps taken since construction or Reset.
func (s *Simulation) Steps() int { return s.steps }
