package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/storage"
)

type seriesKind int

const (
	showRate seriesKind = iota
	showStress
	showCount
	numSeries
)

func (k seriesKind) String() string {
	switch k {
	case showStress:
		return "stress"
	case showCount:
		return "count"
	default:
		return "rate"
	}
}

// Viewer is the Bubble Tea model for one stored run.
type Viewer struct {
	meta   *storage.RunMetadata
	series storage.Series
	state  field.State

	kind   seriesKind
	lo, hi int // visible sample window, hi exclusive
	theme  int
	width  int
	height int
}

func NewViewer(meta *storage.RunMetadata, series storage.Series, state field.State) Viewer {
	return Viewer{
		meta:   meta,
		series: series,
		state:  state,
		hi:     len(series.Times),
		width:  100,
		height: 30,
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	n := len(v.series.Times)
	span := v.hi - v.lo
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "tab":
		v.kind = (v.kind + 1) % numSeries
	case "t":
		v.theme = (v.theme + 1) % len(Themes)
	case "+", "=":
		if span > 4 {
			mid := v.lo + span/2
			v.lo, v.hi = mid-span/4, mid-span/4+span/2
		}
	case "-":
		v.lo, v.hi = max(v.lo-span/2, 0), min(v.hi+span/2, n)
	case "h", "left":
		shift := min(max(span/4, 1), v.lo)
		v.lo, v.hi = v.lo-shift, v.hi-shift
	case "l", "right":
		shift := min(max(span/4, 1), n-v.hi)
		v.lo, v.hi = v.lo+shift, v.hi+shift
	}
	return v, nil
}

func (v Viewer) data() []float64 {
	var s []float64
	switch v.kind {
	case showStress:
		s = v.series.Stress
	case showCount:
		s = v.series.Count
	default:
		s = v.series.Rate
	}
	lo, hi := min(v.lo, len(s)), min(v.hi, len(s))
	return s[lo:hi]
}

func (v Viewer) View() string {
	st := newStyles(Themes[v.theme])
	var b strings.Builder

	title := "run"
	if v.meta != nil {
		title = fmt.Sprintf("%s  %s", strings.ToUpper(v.meta.Model), v.meta.ID)
	}
	b.WriteString(st.title.Render(title) + "\n\n")

	tabs := make([]string, 0, numSeries)
	for k := seriesKind(0); k < numSeries; k++ {
		if k == v.kind {
			tabs = append(tabs, st.active.Render("["+k.String()+"]"))
		} else {
			tabs = append(tabs, st.label.Render(" "+k.String()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	data := v.data()
	if len(data) == 0 {
		b.WriteString(st.hint.Render("no samples") + "\n")
	} else {
		caption := v.kind.String()
		if v.lo < len(v.series.Times) && v.hi > 0 {
			caption = fmt.Sprintf("%s  t=%.0f..%.0f s", v.kind, v.series.Times[v.lo], v.series.Times[v.hi-1])
		}
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(max(v.width-16, 20)),
			asciigraph.Caption(caption),
		))
		b.WriteString("\n\n")
	}

	var panels []string
	if len(v.state) > 0 {
		c := NewCanvas(40, 6)
		c.Profile(v.state)
		panels = append(panels, st.panel.Render(st.label.Render("state field")+"\n"+strings.TrimRight(c.String(), "\n")))
	}
	if v.meta != nil && len(v.meta.Metrics) > 0 {
		panels = append(panels, st.panel.Render(metricLines(st, v.meta.Metrics)))
	}
	if len(panels) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")
	}
	if len(v.series.Count) > 0 {
		b.WriteString(st.label.Render("count ") + SparklineChart(v.series.Count, 60) + "\n")
	}

	b.WriteString("\n" + st.hint.Render("tab series  +/- zoom  h/l pan  t theme  q quit") + "\n")
	return b.String()
}

// RunViewer opens the viewer full-screen until the user quits.
func RunViewer(meta *storage.RunMetadata, series storage.Series, state field.State) error {
	_, err := tea.NewProgram(NewViewer(meta, series, state), tea.WithAltScreen()).Run()
	return err
}
