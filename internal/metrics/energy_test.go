package metrics

import (
	"math"
	"testing"

	"github.com/atharvRsharma/Pendulums/internal/chain"
)

func TestTotalAtRestAtBottom(t *testing.T) {
	c := chain.New()
	c.Link(0).Theta = 0
	c.Link(0).Omega = 0

	want := -chain.InitialMass * chain.Gravity * chain.InitialLength
	got := Total(c)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected energy %f at rest hanging down, got %f", want, got)
	}
}

func TestTotalKineticOnly(t *testing.T) {
	c := chain.New()
	c.Link(0).Theta = math.Pi / 2
	c.Link(0).Omega = 2.0

	v := chain.InitialLength * 2.0
	want := 0.5 * chain.InitialMass * v * v // tip at pivot height, pe = 0
	got := Total(c)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected energy %f horizontal, got %f", want, got)
	}
}

func TestEnergyMeanAndReset(t *testing.T) {
	c := chain.New()
	m := NewEnergy()

	m.Observe(c, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero mean energy")
	}

	first := m.Value()
	m.Observe(c, 0.01)
	if math.Abs(m.Value()-first) > 1e-9 {
		t.Errorf("mean over identical samples should stay %f, got %f", first, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDriftGrowsUnderEuler(t *testing.T) {
	c := chain.New()
	d := NewEnergyDrift()

	d.Observe(c, 0)
	if d.Value() != 0 {
		t.Errorf("first sample sets the baseline, drift should be 0, got %f", d.Value())
	}

	c.Link(0).Omega *= 1.5
	d.Observe(c, 0.01)
	if d.Value() <= 0 {
		t.Error("expected positive drift after energy change")
	}
}

func TestTraceSpan(t *testing.T) {
	c := chain.New()
	s := NewTraceSpan()

	c.Link(0).Theta = math.Pi / 2
	s.Observe(c, 0)
	c.Link(0).Theta = -math.Pi / 2
	s.Observe(c, 0.01)

	want := 2 * chain.InitialLength
	if math.Abs(s.Value()-want) > 1e-9 {
		t.Errorf("expected span %f between horizontal extremes, got %f", want, s.Value())
	}

	s.Reset()
	if s.Value() != 0 {
		t.Error("expected zero span after reset")
	}
}

func TestTraceSpanIgnoresNaN(t *testing.T) {
	c := chain.New()
	s := NewTraceSpan()

	s.Observe(c, 0)
	before := s.Value()

	c.Link(0).Theta = math.NaN()
	s.Observe(c, 0.01)
	if s.Value() != before {
		t.Errorf("NaN tip should not widen the span: %f vs %f", s.Value(), before)
	}
}
