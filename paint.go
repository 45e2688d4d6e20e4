package vtable

// Painter draws render descriptions into a DrawList. It keeps a glyph
// scratch buffer so painting does not allocate once warmed up.
type Painter struct {
	Atlas *GlyphAtlas
	quads []GlyphQuad
}

// NewPainter creates a painter that draws text from atlas. A nil atlas
// paints everything but text.
func NewPainter(atlas *GlyphAtlas) *Painter {
	return &Painter{Atlas: atlas}
}

// Paint draws d with its top-left corner at origin. Rows are clipped to
// the body band; scrollbars are drawn last with the auto-hide opacity
// applied to their alpha.
func (p *Painter) Paint(dl *DrawList, d *RenderDescription, origin Vec2) {
	if d == nil || d.Width <= 0 || d.EffectiveHeight <= 0 {
		return
	}
	s := &d.Style
	ox, oy := origin.X, origin.Y

	// Body
	body := d.Body.Offset(origin)
	dl.AddRect(body.X, body.Y, body.W, body.H, s.Body.Background)
	dl.PushClipRect(body.X, body.Y, body.X+body.W, body.Y+body.H)
	for i := range d.Rows {
		row := &d.Rows[i]
		r := row.Rect.Offset(origin)
		switch {
		case row.Hovered:
			dl.AddRect(r.X, r.Y, r.W, r.H, s.RowHoveredColor)
		case row.Alt && s.RowAltColor != 0:
			dl.AddRect(r.X, r.Y, r.W, r.H, s.RowAltColor)
		}
	}
	if len(d.Rows) > 0 {
		p.dividers(dl, d.Rows[0].Cells, origin, body.Y, body.H, s.ColumnDivider)
	}
	p.beginText(dl)
	for i := range d.Rows {
		for j := range d.Rows[i].Cells {
			c := &d.Rows[i].Cells[j]
			p.text(c.Text, c.Rect.Offset(origin), s.CellPadding)
		}
	}
	p.endText(dl, s.Body.TextColor)
	dl.PopClipRect()

	p.band(dl, d.Header, d.HeaderCells, s.Header, origin, s.CellPadding, s.ColumnDivider, true)
	p.band(dl, d.Footer, d.FooterCells, s.Footer, origin, s.CellPadding, s.ColumnDivider, false)

	if bw := s.Body.BorderWidth; bw > 0 {
		dl.AddRectOutline(ox, oy, d.Width, d.EffectiveHeight, s.Body.BorderColor, bw)
	}

	p.scrollbar(dl, &d.Vertical, origin, d.ScrollbarOpacity)
	p.scrollbar(dl, &d.Horizontal, origin, d.ScrollbarOpacity)
}

func (p *Painter) band(dl *DrawList, rect Rect, cells []BandCell, style BandStyle, origin Vec2, padding float32, divider uint32, header bool) {
	if rect.Empty() {
		return
	}
	r := rect.Offset(origin)
	dl.AddRect(r.X, r.Y, r.W, r.H, style.Background)
	dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	for i := 1; i < len(cells); i++ {
		c := cells[i].Rect.Offset(origin)
		dl.AddRect(c.X, r.Y, 1, r.H, divider)
	}
	p.beginText(dl)
	for i := range cells {
		p.text(cells[i].Text, cells[i].Rect.Offset(origin), padding)
	}
	p.endText(dl, style.TextColor)
	dl.PopClipRect()

	if style.BorderWidth > 0 {
		y := r.Y + r.H - style.BorderWidth // header: bottom edge
		if !header {
			y = r.Y // footer: top edge
		}
		dl.AddRect(r.X, y, r.W, style.BorderWidth, style.BorderColor)
	}
}

func (p *Painter) dividers(dl *DrawList, cells []RenderedCell, origin Vec2, y, h float32, color uint32) {
	for i := 1; i < len(cells); i++ {
		dl.AddRect(cells[i].Rect.X+origin.X, y, 1, h, color)
	}
}

func (p *Painter) scrollbar(dl *DrawList, v *ScrollbarView, origin Vec2, opacity float32) {
	if !v.Visible {
		return
	}
	t := v.Track.Offset(origin)
	dl.AddRect(t.X, t.Y, t.W, t.H, FadeColor(v.TrackColor, opacity))
	th := v.Thumb.Offset(origin)
	dl.AddRect(th.X, th.Y, th.W, th.H, FadeColor(v.ThumbColor, opacity))
}

func (p *Painter) beginText(dl *DrawList) {
	p.quads = p.quads[:0]
}

// text lays out one cell's text, vertically centered and truncated to the
// cell's inner width.
func (p *Painter) text(s string, cell Rect, padding float32) {
	inner := cell.W - 2*padding
	if p.Atlas == nil || s == "" || inner <= 0 {
		return
	}
	y := cell.Y + floorf((cell.H-p.Atlas.LineHeight)/2)
	p.quads = p.Atlas.AppendQuads(p.quads, s, cell.X+padding, y, inner)
}

func (p *Painter) endText(dl *DrawList, color uint32) {
	if p.Atlas == nil || len(p.quads) == 0 {
		return
	}
	dl.SetTexture(p.Atlas.TextureID)
	dl.AddGlyphQuads(p.quads, color)
	dl.SetTexture(0)
}
