package export

import (
	"strings"
	"testing"

	"github.com/atharvRsharma/Pendulums/internal/chain"
)

func TestTraceToSVG(t *testing.T) {
	points := []chain.Point{
		{X: 0, Y: 0},
		{X: 0.5, Y: -0.5},
		{X: 1, Y: 0.2},
	}

	svg := TraceToSVG(points, 800, 800, "#ff0000")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("expected stroke color in path")
	}
	if strings.Count(svg, " L") != len(points)-1 {
		t.Errorf("expected %d line segments, got %d", len(points)-1, strings.Count(svg, " L"))
	}
}

func TestTraceToSVGTooFewPoints(t *testing.T) {
	if svg := TraceToSVG(nil, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for nil points")
	}
	if svg := TraceToSVG([]chain.Point{{X: 1, Y: 1}}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
}

func TestTraceToSVGDegenerateLine(t *testing.T) {
	// All points share one coordinate; bounds must not collapse.
	points := []chain.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	svg := TraceToSVG(points, 400, 400, "#00ff00")
	if svg == "" {
		t.Fatal("expected SVG output")
	}
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Error("degenerate bounds leaked into coordinates")
	}
}
