package chain

// Editor applies user actions to a chain between integration steps. All
// mutation happens on the frame thread by contract, so there is no locking;
// angle and velocity state live inside Link, so structural edits can never
// leave them out of lockstep.
type Editor struct {
	chain *Chain
	trace *Trace
}

// NewEditor binds an editor to the chain and trace it mutates.
func NewEditor(c *Chain, t *Trace) *Editor {
	return &Editor{chain: c, trace: t}
}

// AddLink appends a fresh link hanging at AddedTheta with zero angular
// velocity. There is no upper bound on chain length.
func (e *Editor) AddLink() {
	e.chain.push(Link{
		Length: InitialLength,
		Mass:   InitialMass,
		Theta:  AddedTheta,
	})
}

// RemoveLink pops the most recently added link. The base link is never
// removed: on a single-link chain the action clears the trace instead and
// leaves the link's angle and velocity untouched. Safe to call repeatedly.
func (e *Editor) RemoveLink() {
	if e.chain.Len() > 1 {
		e.chain.pop()
		return
	}
	e.trace.Clear()
}
