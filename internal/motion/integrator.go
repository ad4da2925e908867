package motion

import (
	"math"

	"github.com/atharvRsharma/Pendulums/internal/chain"
)

// Integrator advances a chain with fixed-step explicit Euler updates and
// records the terminal-mass position into the trace after every step.
//
// A single link gets exact simple-pendulum dynamics. Two or more links are
// processed as adjacent pairs in index order using the coupled
// double-pendulum accelerations; each pair is updated in place, so the
// shared link of the next pair already carries this step's update. The
// sequential coupling is part of the reference behavior for chains longer
// than two links and must not be replaced with a pre-step snapshot.
type Integrator struct{}

// New returns a ready integrator. It holds no state between steps.
func New() *Integrator { return &Integrator{} }

// Step advances every link by one timestep dt, then appends the terminal
// position to tr.
func (in *Integrator) Step(c *chain.Chain, tr *chain.Trace, dt float64) {
	if c.Len() == 1 {
		stepSingle(c.Link(0), dt)
	} else {
		stepPairs(c, dt)
	}
	tr.Append(chain.TipPosition(c))
}

func stepSingle(l *chain.Link, dt float64) {
	alpha := -(chain.Gravity / l.Length) * math.Sin(l.Theta)
	l.Omega += alpha * dt
	l.Theta += l.Omega * dt
}

func stepPairs(c *chain.Chain, dt float64) {
	for i := 0; i+1 < c.Len(); i++ {
		l1, l2 := c.Link(i), c.Link(i+1)
		m1, m2 := l1.Mass, l2.Mass
		len1, len2 := l1.Length, l2.Length

		delta := l2.Theta - l1.Theta
		sinD, cosD := math.Sin(delta), math.Cos(delta)

		// Unguarded: cos²Δ can reach (m1+m2)/m2 and the division yields
		// Inf/NaN that propagates into later angles. Surfaced visually as
		// divergent motion, never as a program fault.
		den1 := (m1+m2)*len1 - m2*len1*cosD*cosD
		den2 := (len2 / len1) * den1

		alpha1 := (m2*len1*l1.Omega*l1.Omega*sinD*cosD +
			m2*chain.Gravity*math.Sin(l2.Theta)*cosD +
			m2*len2*l2.Omega*l2.Omega*sinD -
			(m1+m2)*chain.Gravity*math.Sin(l1.Theta)) / den1

		alpha2 := (-(len1/len2)*l1.Omega*l1.Omega*sinD*cosD +
			chain.Gravity*math.Sin(l1.Theta)*cosD -
			chain.Gravity*math.Sin(l2.Theta)) / den2

		l1.Omega += alpha1 * dt
		l2.Omega += alpha2 * dt
		l1.Theta += l1.Omega * dt
		l2.Theta += l2.Omega * dt
	}
}

// Diverged reports whether any link carries a NaN or Inf angle or velocity.
// Display and reporting only; integration is never altered by it.
func Diverged(c *chain.Chain) bool {
	for _, l := range c.Links() {
		if math.IsNaN(l.Theta) || math.IsInf(l.Theta, 0) ||
			math.IsNaN(l.Omega) || math.IsInf(l.Omega, 0) {
			return true
		}
	}
	return false
}
