package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/vtable"
)

// cellKey is the style of one terminal cell. Runs of equal keys are
// rendered with a single lipgloss style.
type cellKey struct {
	fg, bg uint32
	bold   bool
}

type cell struct {
	r   rune // 0 marks the second column of a wide rune
	key cellKey
}

// canvas is a grid of styled terminal cells.
type canvas struct {
	w, h  int
	cells []cell

	styles map[cellKey]lipgloss.Style
	line   strings.Builder
	run    []rune
}

func (c *canvas) reset(w, h int, key cellKey) {
	c.w, c.h = w, h
	n := w * h
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', key: key}
	}
}

// fill paints [x0, x1) of line y blank with key.
func (c *canvas) fill(x0, x1, y int, key cellKey) {
	if y < 0 || y >= c.h {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.w)
	for x := x0; x < x1; x++ {
		c.cells[y*c.w+x] = cell{r: ' ', key: key}
	}
}

func (c *canvas) set(x, y int, r rune, key cellKey) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, key: key}
}

// text writes s from column x, truncated with an ellipsis to maxWidth
// columns. Only columns inside [clipX0, clipX1) are written.
func (c *canvas) text(x, y, maxWidth, clipX0, clipX1 int, s string, key cellKey) {
	if maxWidth <= 0 || y < 0 || y >= c.h || s == "" {
		return
	}
	clipX0, clipX1 = max(clipX0, 0), min(clipX1, c.w)
	s = runewidth.Truncate(s, maxWidth, "…")
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= clipX0 && x+rw <= clipX1 {
			c.cells[y*c.w+x] = cell{r: r, key: key}
			if rw == 2 {
				c.cells[y*c.w+x+1] = cell{key: key}
			}
		}
		x += rw
	}
}

// String renders the grid, one line per row.
func (c *canvas) String() string {
	if c.styles == nil {
		c.styles = make(map[cellKey]lipgloss.Style)
	}
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for start := 0; start < len(row); {
			key := row[start].key
			end := start
			c.run = c.run[:0]
			for end < len(row) && row[end].key == key {
				if row[end].r != 0 {
					c.run = append(c.run, row[end].r)
				}
				end++
			}
			out.WriteString(c.style(key).Render(string(c.run)))
			start = end
		}
	}
	return out.String()
}

func (c *canvas) style(key cellKey) lipgloss.Style {
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(hexColor(key.fg)).
		Background(hexColor(key.bg)).
		Bold(key.bold)
	c.styles[key] = s
	return s
}

func hexColor(c uint32) lipgloss.Color {
	r, g, b, _ := vtable.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// blend mixes fg over bg at fg's alpha scaled by opacity. Terminals have no
// alpha channel, so faded scrollbars are flattened onto the body color.
func blend(fg, bg uint32, opacity float32) uint32 {
	fr, fgG, fb, fa := vtable.UnpackRGBA(fg)
	br, bgG, bb, _ := vtable.UnpackRGBA(bg)
	a := float32(fa) / 255 * opacity
	mix := func(f, b uint8) uint8 {
		return uint8(float32(f)*a + float32(b)*(1-a) + 0.5)
	}
	return vtable.RGBA(mix(fr, br), mix(fgG, bgG), mix(fb, bb), 255)
}
