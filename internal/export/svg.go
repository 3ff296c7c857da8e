package export

import (
	"fmt"
	"math"
	"strings"
)

// Panel is one series drawn in its own horizontal band.
type Panel struct {
	Label  string
	Values []float64
	Stroke string
}

// SeriesToSVG draws values against times as a single polyline.
func SeriesToSVG(times, values []float64, width, height int, strokeColor string) string {
	return PanelsToSVG(times, []Panel{{Values: values, Stroke: strokeColor}}, width, height)
}

// PanelsToSVG stacks one band per panel, sharing the time axis. Each band is
// scaled to its own range; samples beyond len(times) and non-finite samples
// are skipped.
func PanelsToSVG(times []float64, panels []Panel, width, height int) string {
	if len(times) < 2 || len(panels) == 0 {
		return ""
	}

	minT, maxT := times[0], times[len(times)-1]
	rangeT := maxT - minT
	if rangeT == 0 {
		rangeT = 1
	}
	band := float64(height) / float64(len(panels))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for p, panel := range panels {
		top := float64(p) * band
		minY, maxY := bounds(panel.Values)
		rangeY := maxY - minY
		if rangeY == 0 {
			rangeY = 1
		}
		// 10% padding inside the band
		minY -= rangeY * 0.1
		rangeY *= 1.2

		if panel.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="6" y="%.1f" fill="#888899" font-family="monospace" font-size="12">%s</text>
`, top+14, panel.Label))
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, panel.Stroke))
		pen := "M"
		for i, v := range panel.Values {
			if i >= len(times) {
				break
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				pen = "M"
				continue
			}
			x := (times[i] - minT) / rangeT * float64(width)
			y := top + band - (v-minY)/rangeY*band
			sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", pen, x, y))
			pen = "L"
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}
