package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/metrics"
	"github.com/atharvRsharma/Pendulums/internal/sim"
)

type stepCounter struct {
	calls int
	last  float64
}

func (s *stepCounter) OnStep(c *chain.Chain, t float64) {
	s.calls++
	s.last = t
}

var _ = Describe("Runner", func() {
	var s *sim.Simulation
	var r *sim.Runner

	BeforeEach(func() {
		s = sim.New()
		r = sim.NewRunner(s)
	})

	It("takes duration/dt steps", func() {
		result, err := r.Run(context.Background(), 1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(Equal(100))
		Expect(result.Times).To(HaveLen(100))
		Expect(result.Angles).To(HaveLen(100))
	})

	It("rejects a non-positive duration", func() {
		_, err := r.Run(context.Background(), 0)
		Expect(err).To(HaveOccurred())
	})

	It("records monotonically increasing times", func() {
		result, err := r.Run(context.Background(), 0.5)
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(result.Times); i++ {
			Expect(result.Times[i]).To(BeNumerically(">", result.Times[i-1]))
		}
	})

	It("records theta and omega per link", func() {
		s.AddLink()
		result, err := r.Run(context.Background(), 0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Angles[0]).To(HaveLen(4))
	})

	It("copies the trace into the result", func() {
		result, err := r.Run(context.Background(), 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Trace).To(HaveLen(50))
		Expect(result.Trace[len(result.Trace)-1]).To(Equal(s.TipPosition()))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := r.Run(ctx, 10.0)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.StepsTaken).To(Equal(0))
	})

	It("drives observers once per step", func() {
		counter := &stepCounter{}
		r.AddObserver(counter)
		result, err := r.Run(context.Background(), 0.25)
		Expect(err).NotTo(HaveOccurred())
		Expect(counter.calls).To(Equal(result.StepsTaken))
		Expect(counter.last).To(BeNumerically("~", s.Time(), 1e-12))
	})

	It("collects registered metrics", func() {
		r.AddMetric(metrics.NewEnergy())
		r.AddMetric(metrics.NewEnergyDrift())
		result, err := r.Run(context.Background(), 1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKey("energy"))
		Expect(result.Metrics).To(HaveKey("energy_drift"))
	})

	It("does not diverge on a plain single-link run", func() {
		result, err := r.Run(context.Background(), 5.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Diverged).To(BeFalse())
		Expect(result.DivergedAt).To(Equal(-1))
	})
})

var _ = Describe("Simulation", func() {
	It("steps the bootstrap link with explicit Euler", func() {
		s := sim.New()
		s.Step()
		l := s.Chain().Links()[0]
		Expect(l.Omega).To(BeNumerically("~", 0.5, 1e-9))
		Expect(l.Theta).To(BeNumerically("~", math.Pi+0.005, 1e-9))
		Expect(s.Trace().Len()).To(Equal(1))
	})

	It("applies editor actions between steps without inconsistency", func() {
		s := sim.New()
		s.Step()
		s.AddLink()
		Expect(s.Chain().Len()).To(Equal(2))
		s.Step()
		s.RemoveLink()
		Expect(s.Chain().Len()).To(Equal(1))
		s.Step()
		Expect(s.Trace().Len()).To(Equal(3))
	})

	It("resets to the bootstrap state", func() {
		s := sim.New()
		s.AddLink()
		s.Step()
		s.Reset()
		Expect(s.Chain().Len()).To(Equal(1))
		Expect(s.Trace().Len()).To(Equal(0))
		Expect(s.Time()).To(BeZero())
		Expect(s.Chain().Links()[0].Theta).To(Equal(math.Pi))
	})
})
