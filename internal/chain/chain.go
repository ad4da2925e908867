package chain

// Chain is the ordered sequence of links sharing the fixed pivot, in
// attachment order from the pivot outward. A chain constructed with New
// always holds at least one link; the base link is permanent.
//
// The chain is owned by the simulation core. Renderers get read access for
// the duration of one frame and must not retain the slice across frames.
type Chain struct {
	links []Link
}

// New returns a chain holding the bootstrap link.
func New() *Chain {
	return &Chain{links: []Link{{
		Length: InitialLength,
		Mass:   InitialMass,
		Theta:  BootstrapTheta,
		Omega:  BootstrapOmega,
	}}}
}

// Len reports the number of links.
func (c *Chain) Len() int { return len(c.links) }

// Links returns the backing slice, oldest attachment first. Read-only for
// callers outside the core.
func (c *Chain) Links() []Link { return c.links }

// Link returns link i for in-place mutation by the integrator.
func (c *Chain) Link(i int) *Link { return &c.links[i] }

func (c *Chain) push(l Link) { c.links = append(c.links, l) }

func (c *Chain) pop() { c.links = c.links[:len(c.links)-1] }
