package metrics

import (
	"math"

	"github.com/atharvRsharma/Pendulums/internal/chain"
)

// Total returns the instantaneous mechanical energy of the chain. Mass k
// moves with the vector sum of the tip velocities L_i·ω_i of every link up
// to and including k; heights are measured from the pivot.
func Total(c *chain.Chain) float64 {
	var ke, pe float64
	var vx, vy, y float64
	for _, l := range c.Links() {
		vx += l.Length * l.Omega * math.Cos(l.Theta)
		vy += l.Length * l.Omega * math.Sin(l.Theta)
		y -= l.Length * math.Cos(l.Theta)
		ke += 0.5 * l.Mass * (vx*vx + vy*vy)
		pe += l.Mass * chain.Gravity * y
	}
	return ke + pe
}

// Energy reports the mean total mechanical energy over a run.
type Energy struct {
	total   float64
	samples int
}

func NewEnergy() *Energy { return &Energy{} }

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(c *chain.Chain, t float64) {
	e.total += Total(c)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift reports the maximum relative deviation from the first observed
// energy. Explicit Euler does not conserve energy; the metric documents the
// drift, it never corrects it.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(c *chain.Chain, t float64) {
	energy := Total(c)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
