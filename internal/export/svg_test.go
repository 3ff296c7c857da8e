package export

import (
	"math"
	"strings"
	"testing"
)

func TestSeriesToSVG(t *testing.T) {
	svg := SeriesToSVG([]float64{0, 1, 2}, []float64{0, 1, 0}, 200, 100, "#00ff88")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a complete svg document:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if strings.Count(svg, "L") != 2 {
		t.Errorf("expected 2 line segments, got svg:\n%s", svg)
	}
	if !strings.Contains(svg, "M0.0,") || !strings.Contains(svg, "L200.0,") {
		t.Errorf("expected path to span the full width:\n%s", svg)
	}
}

func TestPanelsToSVG(t *testing.T) {
	times := []float64{0, 10, 20, 30}
	svg := PanelsToSVG(times, []Panel{
		{Label: "rate", Values: []float64{1, 2, math.NaN(), 4}, Stroke: "#fff"},
		{Label: "stress", Values: []float64{0, 0.1, 0.2}, Stroke: "#0ff"},
	}, 300, 200)

	if strings.Count(svg, "<path") != 2 {
		t.Fatalf("expected one path per panel:\n%s", svg)
	}
	for _, label := range []string{">rate<", ">stress<"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing label %s", label)
		}
	}
	if strings.Contains(svg, "NaN") {
		t.Error("non-finite samples should be skipped")
	}
}

func TestSVGTooShort(t *testing.T) {
	if SeriesToSVG([]float64{0}, []float64{1}, 10, 10, "#fff") != "" {
		t.Error("expected empty output for a single sample")
	}
	if PanelsToSVG([]float64{0, 1}, nil, 10, 10) != "" {
		t.Error("expected empty output without panels")
	}
}
