package viz

import (
	"math"
	"strings"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// offset from U+2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in sub-pixel coordinates; the canvas spans
// (Width*2) x (Height*4) dots.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Column lights every dot in column x between rows y0 and y1 inclusive.
func (c *Canvas) Column(x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y)
	}
}

// Profile clears the canvas and draws values as a connected trace, scaled to
// fill it. Neighbouring columns are joined by a vertical run. Long series are
// reduced to one sample per dot column; non-finite samples are skipped.
func (c *Canvas) Profile(values []float64) {
	c.Clear()
	cols, rows := c.Width*2, c.Height*4
	if len(values) == 0 || cols == 0 || rows == 0 {
		return
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	prevY := -1
	for x := 0; x < cols; x++ {
		idx := x * (len(values) - 1) / max(cols-1, 1)
		v := values[idx]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			prevY = -1
			continue
		}
		y := rows - 1 - int(math.Round((v-lo)/span*float64(rows-1)))
		if prevY < 0 {
			prevY = y
		}
		c.Column(x, prevY, y)
		prevY = y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1))
	for _, row := range c.Grid {
		for _, r := range row {
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
