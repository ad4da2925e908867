package chain

import "math"

// Physics and buffer constants. These are deliberately compile-time; the
// simulation has no runtime tuning surface.
const (
	Gravity       = 9.81
	InitialLength = 0.7
	InitialMass   = 1.0
	PathLimit     = 2000
	Dt            = 0.01
	BaseY         = 0.5
)

// Initial conditions: the bootstrap link starts inverted with a small push,
// links added later hang at 45 degrees at rest.
const (
	BootstrapTheta = math.Pi
	BootstrapOmega = 0.5
	AddedTheta     = math.Pi / 4
)

// Link is one rigid rod plus point mass segment of the chain.
// Theta is measured in radians from vertical down, counter-clockwise
// positive, and is never wrapped to [0, 2π).
type Link struct {
	Length float64
	Mass   float64
	Theta  float64
	Omega  float64
}
