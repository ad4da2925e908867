package chain

// Point is a 2D Cartesian position of the terminal mass at one step.
type Point struct {
	X float64
	Y float64
}

// Trace is the bounded FIFO history of terminal-mass positions, oldest
// first. Appending at capacity evicts exactly one point.
type Trace struct {
	points []Point
	limit  int
}

// NewTrace returns a trace with the default PathLimit capacity.
func NewTrace() *Trace { return NewTraceWithLimit(PathLimit) }

// NewTraceWithLimit returns a trace with an explicit capacity. Used by tests
// and kept small for custom views.
func NewTraceWithLimit(limit int) *Trace {
	return &Trace{points: make([]Point, 0, limit), limit: limit}
}

// Append adds p at the newest end, evicting the single oldest point first
// when the trace is full.
func (t *Trace) Append(p Point) {
	if len(t.points) >= t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Clear empties the trace unconditionally.
func (t *Trace) Clear() { t.points = t.points[:0] }

// Len reports the number of stored points.
func (t *Trace) Len() int { return len(t.points) }

// Cap reports the capacity.
func (t *Trace) Cap() int { return t.limit }

// Points returns the stored points oldest to newest. Read-only for callers
// outside the core; not retained across frames.
func (t *Trace) Points() []Point { return t.points }
