// Package term hosts a vtable.Engine in a terminal as a bubbletea model.
//
// One terminal cell is one unit: rows are one line tall and column widths
// are counted in cells. The terminal window is the table's parent, so the
// table fills it and follows resizes.
//
//	m := term.New(rows, columns, vtable.WithHeaders(nil))
//	defer m.Close()
//	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
package term

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/vtable"
)

// Scrolling steps in cells.
const (
	WheelRows    = 3
	ScrollColumn = 4
)

// frameMsg drives the engine's scheduler.
type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(vtable.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is a bubbletea model that renders one table filling the terminal.
type Model struct {
	engine *vtable.Engine
	body   *vtable.MemorySurface
	parent *vtable.MemoryBox
	input  *vtable.InputState
	canvas canvas
}

// New creates a terminal table over rows. The terminal style and parent
// tracking are applied first so opts can override them.
func New(rows []vtable.Row, columns []vtable.Column, opts ...vtable.Option) *Model {
	base := []vtable.Option{
		vtable.WithStyle(vtable.TerminalStyle()),
		vtable.WithAutoHeight(),
	}
	m := &Model{
		engine: vtable.New(rows, 1, columns, append(base, opts...)...),
		body:   vtable.NewMemorySurface(0, 0),
		parent: vtable.NewMemoryBox(0, 0),
		input:  vtable.NewInputState(),
	}
	m.engine.Attach(vtable.Surfaces{Body: m.body, Parent: m.parent})
	return m
}

// Engine returns the table engine, for SetRows and friends.
func (m *Model) Engine() *vtable.Engine {
	return m.engine
}

// Close detaches the engine from its surfaces.
func (m *Model) Close() {
	m.engine.Close()
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.parent.SetSize(float32(msg.Width), float32(msg.Height))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		m.key(msg)

	case tea.MouseMsg:
		m.mouse(msg)

	case frameMsg:
		m.engine.Frame(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) key(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyLeft:
		m.scrollBy(vtable.AxisHorizontal, -ScrollColumn)
		return
	case tea.KeyRight:
		m.scrollBy(vtable.AxisHorizontal, ScrollColumn)
		return
	}
	k := teaKeyToTableKey(msg)
	if k == vtable.KeyNone {
		return
	}
	m.input.PressKey(k)
	m.apply()
}

func (m *Model) mouse(msg tea.MouseMsg) {
	m.input.SetMousePos(float32(msg.X), float32(msg.Y))
	m.input.ModShift = msg.Shift

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Shift,
		msg.Button == tea.MouseButtonWheelLeft:
		m.scrollBy(vtable.AxisHorizontal, -ScrollColumn)
	case msg.Button == tea.MouseButtonWheelDown && msg.Shift,
		msg.Button == tea.MouseButtonWheelRight:
		m.scrollBy(vtable.AxisHorizontal, ScrollColumn)
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(vtable.AxisVertical, -WheelRows)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(vtable.AxisVertical, WheelRows)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input.SetMouseButton(vtable.MouseButtonLeft, true)
	case msg.Action == tea.MouseActionRelease:
		m.input.SetMouseButton(vtable.MouseButtonLeft, false)
	}
	m.apply()
}

// apply feeds one event's worth of input to the engine. Terminals deliver
// input as discrete events, so every event is its own input frame.
func (m *Model) apply() {
	m.engine.HandleInput(m.input, vtable.Vec2{})
	m.input.Reset()
}

func (m *Model) scrollBy(axis vtable.Axis, delta float32) {
	top, left := m.engine.ScrollOffset()
	if axis == vtable.AxisHorizontal {
		m.engine.HandleHorizontalScroll(left+delta, vtable.ScrollAuto)
		return
	}
	m.engine.HandleVirtualScroll(top+delta, vtable.ScrollAuto)
}

func teaKeyToTableKey(msg tea.KeyMsg) vtable.Key {
	switch msg.Type {
	case tea.KeyUp:
		return vtable.KeyUp
	case tea.KeyDown:
		return vtable.KeyDown
	case tea.KeyPgUp:
		return vtable.KeyPageUp
	case tea.KeyPgDown:
		return vtable.KeyPageDown
	case tea.KeyHome:
		return vtable.KeyHome
	case tea.KeyEnd:
		return vtable.KeyEnd
	}
	switch msg.String() {
	case "k":
		return vtable.KeyUp
	case "j":
		return vtable.KeyDown
	case "g":
		return vtable.KeyHome
	case "G":
		return vtable.KeyEnd
	}
	return vtable.KeyNone
}

func (m *Model) View() string {
	d := m.engine.Render()
	w, h := int(d.Width), int(d.EffectiveHeight)
	if w <= 0 || h <= 0 {
		return ""
	}
	s := &d.Style
	bodyKey := cellKey{fg: s.Body.TextColor, bg: s.Body.Background}
	c := &m.canvas
	c.reset(w, h, bodyKey)
	pad := int(s.CellPadding)

	m.band(d.Header, d.HeaderCells, cellKey{fg: s.Header.TextColor, bg: s.Header.Background, bold: true}, pad)
	m.band(d.Footer, d.FooterCells, cellKey{fg: s.Footer.TextColor, bg: s.Footer.Background}, pad)

	top, bottom := cellRound(d.Body.Y), cellRound(d.Body.Y+d.Body.H)
	for i := range d.Rows {
		row := &d.Rows[i]
		y := cellRound(row.Rect.Y)
		if y < top || y >= bottom {
			continue
		}
		key := bodyKey
		switch {
		case row.Hovered:
			key.bg = s.RowHoveredColor
		case row.Alt && s.RowAltColor != 0:
			key.bg = s.RowAltColor
		}
		c.fill(0, w, y, key)
		for j := range row.Cells {
			cell := &row.Cells[j]
			x := cellRound(cell.Rect.X)
			c.text(x+pad, y, cellRound(cell.Rect.W)-2*pad, x, x+cellRound(cell.Rect.W), cell.Text, key)
		}
	}

	m.scrollbar(&d.Vertical, bodyKey.bg, d.ScrollbarOpacity, '│', '█')
	m.scrollbar(&d.Horizontal, bodyKey.bg, d.ScrollbarOpacity, '─', '█')
	return c.String()
}

func (m *Model) band(r vtable.Rect, cells []vtable.BandCell, key cellKey, pad int) {
	if r.Empty() {
		return
	}
	c := &m.canvas
	y0, y1 := cellRound(r.Y), cellRound(r.Y+r.H)
	for y := y0; y < y1; y++ {
		c.fill(0, c.w, y, key)
	}
	y := y0 + (y1-y0-1)/2
	for i := range cells {
		x := cellRound(cells[i].Rect.X)
		w := cellRound(cells[i].Rect.W)
		c.text(x+pad, y, w-2*pad, x, x+w, cells[i].Text, key)
	}
}

func (m *Model) scrollbar(v *vtable.ScrollbarView, bg uint32, opacity float32, trackRune, thumbRune rune) {
	if !v.Visible {
		return
	}
	c := &m.canvas
	trackKey := cellKey{fg: blend(v.TrackColor, bg, opacity), bg: bg}
	thumbKey := cellKey{fg: blend(v.ThumbColor, bg, opacity), bg: bg}

	t, th := v.Track, v.Thumb
	for y := cellRound(t.Y); y < cellRound(t.Y+t.H); y++ {
		for x := cellRound(t.X); x < cellRound(t.X+t.W); x++ {
			if x >= cellRound(th.X) && x < cellRound(th.X+th.W) && y >= cellRound(th.Y) && y < cellRound(th.Y+th.H) {
				c.set(x, y, thumbRune, thumbKey)
			} else {
				c.set(x, y, trackRune, trackKey)
			}
		}
	}
}

func cellRound(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}
