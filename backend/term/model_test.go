package term

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/go-theft-auto/vtable"
)

type harness struct {
	t   *testing.T
	m   *Model
	now time.Time
}

func newHarness(t *testing.T, rowCount int, opts ...vtable.Option) *harness {
	t.Helper()
	rows := make([]vtable.Row, rowCount)
	for i := range rows {
		rows[i] = vtable.MapRow{"id": i, "name": fmt.Sprintf("row-%d", i)}
	}
	columns := []vtable.Column{
		{Key: "id", Width: 6},
		{Key: "name", Width: 12},
	}
	opts = append([]vtable.Option{vtable.WithHeaders(nil)}, opts...)
	h := &harness{t: t, m: New(rows, columns, opts...), now: time.Now()}
	t.Cleanup(h.m.Close)
	h.m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	h.frames(5)
	return h
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.now = h.now.Add(20 * time.Millisecond)
		h.m.Update(frameMsg(h.now))
	}
}

func (h *harness) lines() []string {
	return strings.Split(ansi.Strip(h.m.View()), "\n")
}

func TestModelRendersVisibleRows(t *testing.T) {
	h := newHarness(t, 100)
	lines := h.lines()

	if len(lines) != 10 {
		t.Fatalf("Expected 10 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], "Id") || !strings.Contains(lines[0], "Name") {
		t.Errorf("Expected header labels on line 0, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "row-0") {
		t.Errorf("Expected first row on line 1, got %q", lines[1])
	}
	if !strings.Contains(lines[9], "row-8") {
		t.Errorf("Expected row 8 on the last line, got %q", lines[9])
	}
	for i, l := range lines {
		if strings.Contains(l, "row-50") {
			t.Errorf("Row 50 should not be materialized, found on line %d", i)
		}
	}
}

func TestModelDrawsVerticalScrollbar(t *testing.T) {
	h := newHarness(t, 100)
	lines := h.lines()

	if !strings.HasSuffix(lines[1], "█") {
		t.Errorf("Expected thumb at the top of the track, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[9], "│") {
		t.Errorf("Expected bare track at the bottom, got %q", lines[9])
	}
	if strings.HasSuffix(lines[0], "█") || strings.HasSuffix(lines[0], "│") {
		t.Errorf("Scrollbar must not overlap the header, got %q", lines[0])
	}
}

func TestModelNoScrollbarWhenRowsFit(t *testing.T) {
	h := newHarness(t, 3)
	for i, l := range h.lines() {
		if strings.ContainsAny(l, "█│") {
			t.Errorf("Line %d has a scrollbar but nothing overflows: %q", i, l)
		}
	}
}

func TestModelWheelScrolls(t *testing.T) {
	h := newHarness(t, 100)

	h.m.Update(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	h.frames(3)

	top, _ := h.m.Engine().ScrollOffset()
	if top != WheelRows {
		t.Fatalf("Expected scrollTop %d after one notch, got %f", WheelRows, top)
	}
	if lines := h.lines(); !strings.Contains(lines[1], fmt.Sprintf("row-%d", WheelRows)) {
		t.Errorf("Expected row %d at the top of the body, got %q", WheelRows, lines[1])
	}

	h.m.Update(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	h.m.Update(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	h.frames(3)
	if top, _ := h.m.Engine().ScrollOffset(); top != 0 {
		t.Errorf("Expected scrolling up past the top to clamp at 0, got %f", top)
	}
}

func TestModelEndKey(t *testing.T) {
	h := newHarness(t, 100)

	h.m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	h.frames(60)

	top, _ := h.m.Engine().ScrollOffset()
	if top < 90 || top > 91 {
		t.Fatalf("Expected scrollTop near 91 after End, got %f", top)
	}
	if lines := h.lines(); !strings.Contains(lines[9], "row-99") {
		t.Errorf("Expected the last row on the last line, got %q", lines[9])
	}
}

func TestModelRowClick(t *testing.T) {
	var clicked []int
	h := newHarness(t, 100, vtable.OnRowClick(func(row vtable.Row, index int) {
		clicked = append(clicked, index)
	}))

	h.m.Update(tea.MouseMsg{X: 10, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.m.Update(tea.MouseMsg{X: 10, Y: 3, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})

	if len(clicked) != 1 || clicked[0] != 2 {
		t.Errorf("Expected one click on row 2, got %v", clicked)
	}
}

func TestModelQuitKeys(t *testing.T) {
	h := newHarness(t, 10)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := h.m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestModelCloseDetaches(t *testing.T) {
	h := newHarness(t, 10)
	h.m.Close()

	if n := h.m.body.ListenerCount(); n != 0 {
		t.Errorf("Expected no body listeners after Close, got %d", n)
	}
	if n := h.m.parent.ListenerCount(); n != 0 {
		t.Errorf("Expected no parent listeners after Close, got %d", n)
	}
}

func TestCanvasTruncatesWideRunes(t *testing.T) {
	var c canvas
	key := cellKey{}
	c.reset(6, 1, key)
	c.text(0, 0, 4, 0, 6, "日本語", key)

	if got := ansi.Strip(c.String()); got != "日…   " {
		t.Errorf("Expected %q, got %q", "日…   ", got)
	}
}

func TestCanvasClipsText(t *testing.T) {
	var c canvas
	key := cellKey{}
	c.reset(8, 1, key)
	c.text(-2, 0, 8, 0, 4, "abcdef", key)

	if got := ansi.Strip(c.String()); got != "cdef    " {
		t.Errorf("Expected %q, got %q", "cdef    ", got)
	}
}

func TestBlend(t *testing.T) {
	white := vtable.RGBA(255, 255, 255, 255)
	black := vtable.RGBA(0, 0, 0, 255)

	r, g, b, a := vtable.UnpackRGBA(blend(white, black, 0.5))
	if r != 128 || g != 128 || b != 128 || a != 255 {
		t.Errorf("Expected mid gray, got %d,%d,%d,%d", r, g, b, a)
	}
	if got := blend(white, black, 1); got != white {
		t.Errorf("Expected full opacity to keep the color, got %08x", got)
	}
}
