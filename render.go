package vtable

// Cursor is the pointer cursor the host should show over the table.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrabbing
)

func (c Cursor) String() string {
	if c == CursorGrabbing {
		return "grabbing"
	}
	return "default"
}

// RenderDescription is everything a passive rendering layer needs to draw
// one frame of a table. Coordinates are relative to the table's top-left
// corner. The engine rebuilds it in place on the frame after a change, so
// hosts must not keep references to its slices across frames.
type RenderDescription struct {
	Width           float32
	EffectiveHeight float32
	HeaderHeight    float32
	BodyHeight      float32
	FooterHeight    float32
	TotalHeight     float32 // Virtual height of all rows
	ContentWidth    float32 // Sum of column widths

	Range      VisibleRange
	TranslateY float32 // Range.Start * rowHeight
	ScrollTop  float32
	ScrollLeft float32

	Header Rect
	Body   Rect
	Footer Rect
	Style  Style

	HeaderCells []BandCell
	FooterCells []BandCell
	Rows        []RenderedRow

	Vertical         ScrollbarView
	Horizontal       ScrollbarView
	ScrollbarOpacity float32

	Cursor            Cursor
	SelectionDisabled bool // True while a thumb drag is in progress
}

// BandCell is one header or footer cell.
type BandCell struct {
	Key  string
	Text string
	Rect Rect

	engine *Engine
	footer bool
}

// Click dispatches the header or footer cell click callback.
func (c *BandCell) Click() {
	if c.engine == nil {
		return
	}
	if c.footer {
		c.engine.clickFooter(c.Key)
	} else {
		c.engine.clickHeader(c.Key)
	}
}

// RenderedRow is one materialized row. Index is the row's position in the
// full array, not in the rendered slice, so click context never needs a
// reverse lookup.
type RenderedRow struct {
	Index   int
	Row     Row
	Rect    Rect
	Alt     bool
	Hovered bool
	Cells   []RenderedCell

	engine *Engine
}

// Click dispatches the row click callback for this row.
func (r *RenderedRow) Click() {
	if r.engine != nil {
		r.engine.clickRow(r.Row, r.Index)
	}
}

// RenderedCell is one materialized cell with its full click context.
type RenderedCell struct {
	Context CellContext
	Text    string
	Rect    Rect

	engine *Engine
}

// Click dispatches the cell click callback for this cell.
func (c *RenderedCell) Click() {
	if c.engine != nil {
		c.engine.clickCell(c.Context)
	}
}

// ScrollbarView is the drawable state of one synthetic scrollbar.
type ScrollbarView struct {
	Visible    bool
	Track      Rect
	Thumb      Rect
	Geometry   ThumbGeometry
	TrackColor uint32
	ThumbColor uint32
}

// HitKind classifies what lies under a point.
type HitKind int

const (
	HitNone HitKind = iota
	HitHeaderCell
	HitFooterCell
	HitCell
	HitRow // Row area right of the last column
	HitVerticalTrack
	HitVerticalThumb
	HitHorizontalTrack
	HitHorizontalThumb
)

// Hit is the result of a hit test. Row indexes Rows and Cell indexes the
// row's Cells, HeaderCells or FooterCells depending on Kind; both are -1
// when not applicable.
type Hit struct {
	Kind HitKind
	Row  int
	Cell int
}

// HitTest finds what is under p (table-relative). Scrollbars overlay the
// body and win over rows.
func (d *RenderDescription) HitTest(p Vec2) Hit {
	miss := Hit{Kind: HitNone, Row: -1, Cell: -1}
	if p.X < 0 || p.X >= d.Width || p.Y < 0 || p.Y >= d.EffectiveHeight {
		return miss
	}

	for _, sb := range [...]struct {
		view         *ScrollbarView
		thumb, track HitKind
	}{
		{&d.Vertical, HitVerticalThumb, HitVerticalTrack},
		{&d.Horizontal, HitHorizontalThumb, HitHorizontalTrack},
	} {
		if !sb.view.Visible {
			continue
		}
		if sb.view.Thumb.Contains(p) {
			return Hit{Kind: sb.thumb, Row: -1, Cell: -1}
		}
		if sb.view.Track.Contains(p) {
			return Hit{Kind: sb.track, Row: -1, Cell: -1}
		}
	}

	switch {
	case d.Header.Contains(p):
		if i := cellAt(d.HeaderCells, p.X); i >= 0 {
			return Hit{Kind: HitHeaderCell, Row: -1, Cell: i}
		}
	case d.Footer.Contains(p):
		if i := cellAt(d.FooterCells, p.X); i >= 0 {
			return Hit{Kind: HitFooterCell, Row: -1, Cell: i}
		}
	case d.Body.Contains(p):
		for ri := range d.Rows {
			row := &d.Rows[ri]
			if p.Y < row.Rect.Y || p.Y >= row.Rect.Y+row.Rect.H {
				continue
			}
			for ci := range row.Cells {
				if row.Cells[ci].Rect.Contains(p) {
					return Hit{Kind: HitCell, Row: ri, Cell: ci}
				}
			}
			return Hit{Kind: HitRow, Row: ri, Cell: -1}
		}
	}
	return miss
}

func cellAt(cells []BandCell, x float32) int {
	for i := range cells {
		if x >= cells[i].Rect.X && x < cells[i].Rect.X+cells[i].Rect.W {
			return i
		}
	}
	return -1
}

// commit rebuilds the render description in place. Slices keep their
// backing arrays between commits so steady-state scrolling does not
// allocate.
func (e *Engine) commit() {
	d := &e.desc
	hh, bh, fh := e.heights.HeaderHeight, e.heights.BodyHeight, e.heights.FooterHeight
	w := e.tableWidth

	d.Width = w
	d.EffectiveHeight = e.heights.EffectiveHeight
	d.HeaderHeight = hh
	d.BodyHeight = bh
	d.FooterHeight = fh
	d.TotalHeight = ContentHeight(len(e.rows), e.rowHeight)
	d.ContentWidth = e.contentWidth
	d.Range = e.window
	d.TranslateY = e.window.TranslateY(e.rowHeight)
	d.ScrollTop = e.scrollTop
	d.ScrollLeft = e.scrollLeft
	d.Header = Rect{X: 0, Y: 0, W: w, H: hh}
	d.Body = Rect{X: 0, Y: hh, W: w, H: bh}
	d.Footer = Rect{X: 0, Y: hh + bh, W: w, H: fh}
	d.Style = e.style

	entries := e.plan.Entries()

	d.HeaderCells = d.HeaderCells[:0]
	if e.headers != nil {
		x := -e.scrollLeft
		for i, entry := range entries {
			d.HeaderCells = append(d.HeaderCells, BandCell{
				Key: entry.Key, Text: e.headerLabels[i],
				Rect:   Rect{X: x, Y: 0, W: e.widths[i], H: hh},
				engine: e,
			})
			x += e.widths[i]
		}
	}

	d.FooterCells = d.FooterCells[:0]
	if e.footers != nil {
		x := -e.scrollLeft
		for i, entry := range entries {
			d.FooterCells = append(d.FooterCells, BandCell{
				Key: entry.Key, Text: e.footerLabels[i],
				Rect:   Rect{X: x, Y: hh + bh, W: e.widths[i], H: fh},
				engine: e,
				footer: true,
			})
			x += e.widths[i]
		}
	}

	n := e.window.Len()
	if cap(d.Rows) < n {
		grown := make([]RenderedRow, n)
		copy(grown, d.Rows[:cap(d.Rows)])
		d.Rows = grown
	}
	d.Rows = d.Rows[:n]
	rowWidth := maxf(w, e.contentWidth)
	for slot := 0; slot < n; slot++ {
		i := e.window.Start + slot
		row := e.rows[i]
		y := hh + d.TranslateY + float32(slot)*e.rowHeight - e.scrollTop

		r := &d.Rows[slot]
		r.Index = i
		r.Row = row
		r.Rect = Rect{X: -e.scrollLeft, Y: y, W: rowWidth, H: e.rowHeight}
		r.Alt = i%2 == 1
		r.Hovered = i == e.hoverRow
		r.engine = e

		r.Cells = r.Cells[:0]
		x := -e.scrollLeft
		for ci, entry := range entries {
			ctx := CellContext{Row: row, RowIndex: i, Key: entry.Key, Value: CellValue(row, entry.Key)}
			r.Cells = append(r.Cells, RenderedCell{
				Context: ctx,
				Text:    entry.Render(ctx),
				Rect:    Rect{X: x, Y: y, W: e.widths[ci], H: e.rowHeight},
				engine:  e,
			})
			x += e.widths[ci]
		}
	}

	d.Vertical = e.scrollbarView(e.vbar, hh, bh, w)
	d.Horizontal = e.scrollbarView(e.hbar, hh, bh, w)
	d.ScrollbarOpacity = e.fader.Opacity()

	dragging := e.vbar.Dragging() || e.hbar.Dragging()
	d.SelectionDisabled = dragging
	d.Cursor = CursorDefault
	if dragging {
		d.Cursor = CursorGrabbing
	}
}

func (e *Engine) scrollbarView(b *AxisScrollbar, hh, bh, w float32) ScrollbarView {
	style := b.Style()
	t := b.Thumb()
	v := ScrollbarView{
		Visible:    b.Visible() && e.visibility != ScrollbarNever,
		Geometry:   t,
		TrackColor: style.Colors.Track,
		ThumbColor: b.ThumbColor(),
	}
	th := style.Thickness
	if b.Axis() == AxisVertical {
		v.Track = Rect{X: w - th, Y: hh, W: th, H: t.TrackLength}
		v.Thumb = Rect{X: v.Track.X, Y: v.Track.Y + t.Offset, W: th, H: t.Size}
	} else {
		v.Track = Rect{X: 0, Y: hh + bh - th, W: t.TrackLength, H: th}
		v.Thumb = Rect{X: t.Offset, Y: v.Track.Y, W: t.Size, H: th}
	}
	return v
}
