package vtable

import "time"

// Scrolling steps.
const (
	WheelStep    = 30  // Pixels per wheel notch
	PageFraction = 0.8 // Page up/down scrolls 80% of the body
)

// Engine is a virtualized table. It decides which rows are materialized,
// negotiates the table height against the header, footer and parent, and
// keeps two synthetic scrollbars consistent with the body surface.
//
// All methods must be called from the goroutine that drives the engine's
// Scheduler.
//
// Usage:
//
//	e := vtable.New(rows, 24, columns, vtable.WithVisibleRows(20), vtable.WithHeaders(nil))
//	e.Attach(vtable.Surfaces{Body: body, Header: header})
//	defer e.Close()
//	painter := vtable.NewPainter(atlas)
//	for running {
//	    e.HandleInput(input, origin)
//	    e.Frame(time.Now())
//	    painter.Paint(dl, e.Render(), origin)
//	}
type Engine struct {
	rows      []Row
	rowHeight float32
	columns   []Column

	overscan    int
	mode        SizingMode
	autoDetect  bool
	width       float32
	style       Style
	visibility  ScrollbarVisibility
	measure     TextMeasure
	order       []string
	visibleKeys []string
	headers     map[string]HeaderRenderer // nil = no header band
	footers     map[string]FooterRenderer // nil = no footer band

	onRowClick        RowClickFunc
	onCellClick       CellClickFunc
	onHeaderCellClick HeaderCellClickFunc
	onFooterCellClick FooterCellClickFunc

	sched *Scheduler
	plan  *CellPlan
	vbar  *AxisScrollbar
	hbar  *AxisScrollbar
	fader *ActivityFader

	surfaces       Surfaces
	detector       *ScrollbarDetector
	scrollThrottle *frameThrottle
	cancels        []func()

	headerHeight float32
	footerHeight float32
	parentWidth  float32
	parentHeight float32
	heights      HeightResult
	tableWidth   float32
	contentWidth float32
	scrollTop    float32
	scrollLeft   float32
	window       VisibleRange
	scroll       ScrollState

	synced       bool
	syncedSizes  [4]float32 // viewport w/h, content w/h last pushed to the body
	headerLabels []string
	footerLabels []string
	widths       []float32
	hoverRow     int

	desc        RenderDescription
	frameCancel func()
	lastFrame   time.Time
}

// New creates an engine for rows of uniform rowHeight. The engine holds
// rows by reference and never mutates it; call SetRows after the caller's
// array changes.
func New(rows []Row, rowHeight float32, columns []Column, opts ...Option) *Engine {
	o := applyOptions(opts)

	if rowHeight <= 0 {
		tableLogger.Warn("row height must be positive, no rows will render", "rowHeight", rowHeight)
		rowHeight = 0
	}
	overscan := GetOpt(o, OptOverscan)
	if overscan < 0 {
		tableLogger.Warn("negative overscan clamped to 0", "overscan", overscan)
		overscan = 0
	}

	e := &Engine{
		rows:        rows,
		rowHeight:   rowHeight,
		columns:     columns,
		overscan:    overscan,
		width:       maxf(0, GetOpt(o, OptWidth)),
		style:       GetOpt(o, OptStyle),
		visibility:  GetOpt(o, OptScrollbarVisibility),
		measure:     GetOpt(o, OptTextMeasure),
		order:       GetOpt(o, OptCellOrder),
		visibleKeys: GetOpt(o, OptVisibleCells),
		headers:     GetOpt(o, OptHeaders),
		footers:     GetOpt(o, OptFooters),

		onRowClick:        GetOpt(o, OptOnRowClick),
		onCellClick:       GetOpt(o, OptOnCellClick),
		onHeaderCellClick: GetOpt(o, OptOnHeaderCellClick),
		onFooterCellClick: GetOpt(o, OptOnFooterCellClick),

		sched:    GetOpt(o, OptScheduler),
		hoverRow: -1,
	}
	e.mode = SelectSizingMode(SizingParams{
		VisibleRows:    GetOpt(o, OptVisibleRows),
		MinVisibleRows: GetOpt(o, OptMinVisibleRows),
		MaxVisibleRows: GetOpt(o, OptMaxVisibleRows),
		Height:         GetOpt(o, OptHeight),
		AutoHeight:     GetOpt(o, OptAutoHeight),
	})
	e.autoDetect = e.mode.Kind == SizingAuto || GetOpt(o, OptAutoHeight)
	if n := countSet(HasOpt(o, OptVisibleRows),
		HasOpt(o, OptMinVisibleRows) || HasOpt(o, OptMaxVisibleRows),
		HasOpt(o, OptHeight)); n > 1 {
		tableLogger.Debug("sizing options overlap", "selected", e.mode)
	}
	if e.measure == nil {
		e.measure = MonospaceMeasure(e.style.CharWidth)
	}
	if e.sched == nil {
		e.sched = NewScheduler(time.Now())
	}

	e.fader = NewActivityFader(e.sched, GetOpt(o, OptAutoHide), GetOpt(o, OptFadeDelay),
		e.style.VisibleOpacity, e.style.DimmedOpacity, func(bool) { e.invalidate() })
	e.vbar = NewAxisScrollbar(AxisVertical, e.style.Vertical, func(off float32, b ScrollBehavior) {
		e.scrollTo(AxisVertical, off, b)
	})
	e.hbar = NewAxisScrollbar(AxisHorizontal, e.style.Horizontal, func(off float32, b ScrollBehavior) {
		e.scrollTo(AxisHorizontal, off, b)
	})

	e.headerHeight = e.defaultBandHeight(e.headers != nil, e.style.Header.Height)
	e.footerHeight = e.defaultBandHeight(e.footers != nil, e.style.Footer.Height)
	e.rebuildPlan()
	e.relayout()
	e.updateWindow()
	e.commit()

	tableLogger.Debug("table created", "mode", e.mode, "rows", len(rows), "rowHeight", rowHeight,
		"columns", e.plan.Len(), "overscan", overscan)
	return e
}

// Attach starts observing the table's surfaces. Only Body is required.
// Attaching again first detaches the previous surfaces.
func (e *Engine) Attach(s Surfaces) {
	e.Close()
	if s.Body == nil {
		tableLogger.Warn("attach without a body surface ignored")
		return
	}
	e.surfaces = s
	e.synced = false

	e.scrollThrottle = newFrameThrottle(e.sched, FrameInterval, e.HandleScroll)
	e.cancels = append(e.cancels, s.Body.OnScroll(e.scrollThrottle.Trigger))
	if s.Header != nil {
		e.cancels = append(e.cancels, s.Header.OnResize(e.handleBandResize))
	}
	if s.Footer != nil {
		e.cancels = append(e.cancels, s.Footer.OnResize(e.handleBandResize))
	}
	if s.Parent != nil {
		e.cancels = append(e.cancels, s.Parent.OnResize(e.handleParentResize))
	}
	e.detector = NewScrollbarDetector(s.Body, e.sched)
	e.cancels = append(e.cancels, e.detector.Subscribe(e.onScrollState))

	e.measureParent()
	e.measureBands()
	e.relayout()
	e.HandleScroll()
	// Content size was just pushed; sample now instead of waiting for the
	// content-change debounce.
	e.detector.Sample()
	// Close stopped the fade countdown; mounting starts a new one.
	e.fader.Arm()

	tableLogger.Debug("table attached", "mode", e.mode, "effectiveHeight", e.heights.EffectiveHeight,
		"bodyHeight", e.heights.BodyHeight, "header", e.headerHeight, "footer", e.footerHeight)
}

// Close detaches every observer and cancels pending timers, frame callbacks
// and drags. The engine can be attached again afterwards.
func (e *Engine) Close() {
	for _, cancel := range e.cancels {
		cancel()
	}
	e.cancels = nil
	if e.detector != nil {
		e.detector.Close()
		e.detector = nil
	}
	if e.scrollThrottle != nil {
		e.scrollThrottle.Stop()
		e.scrollThrottle = nil
	}
	e.fader.Stop()
	e.vbar.CancelDrag()
	e.hbar.CancelDrag()
	if e.frameCancel != nil {
		e.frameCancel()
		e.frameCancel = nil
	}
	e.surfaces = Surfaces{}
}

// SetRows replaces the row array. A shrinking array re-clamps the visible
// range immediately; the body's scroll offset follows when the surface
// clamps it, or right away when detached.
func (e *Engine) SetRows(rows []Row) {
	e.rows = rows
	e.renderFooterLabels()
	e.relayout()
	e.updateWindow()
	e.invalidate()
}

// SetColumns replaces the column configuration and rebuilds the cell plan.
func (e *Engine) SetColumns(columns []Column) {
	e.columns = columns
	e.rebuildPlan()
	e.relayout()
	e.invalidate()
}

// SetCellOrder changes the column display order (nil = column order).
func (e *Engine) SetCellOrder(keys ...string) {
	e.order = keys
	e.rebuildPlan()
	e.relayout()
	e.invalidate()
}

// SetVisibleCells restricts which columns are shown (nil = all).
func (e *Engine) SetVisibleCells(keys ...string) {
	e.visibleKeys = keys
	e.rebuildPlan()
	e.relayout()
	e.invalidate()
}

// Frame advances any smooth scroll on the body and runs the scheduler.
// Hosts call it once per displayed frame.
func (e *Engine) Frame(now time.Time) {
	if a, ok := e.surfaces.Body.(interface{ Advance(time.Duration) }); ok && !e.lastFrame.IsZero() {
		a.Advance(now.Sub(e.lastFrame))
	}
	e.lastFrame = now
	e.sched.RunFrame(now)
}

// Render returns the last committed render description.
func (e *Engine) Render() *RenderDescription {
	return &e.desc
}

// VisibleRange returns the current row window.
func (e *Engine) VisibleRange() VisibleRange {
	return e.window
}

// Heights returns the resolved effective and body heights.
func (e *Engine) Heights() HeightResult {
	return e.heights
}

// BandHeights returns the header and footer heights used for layout.
func (e *Engine) BandHeights() (header, footer float32) {
	return e.heights.HeaderHeight, e.heights.FooterHeight
}

// Mode returns the active sizing mode.
func (e *Engine) Mode() SizingMode {
	return e.mode
}

// Plan returns the resolved cell plan.
func (e *Engine) Plan() *CellPlan {
	return e.plan
}

// Scheduler returns the scheduler driving the engine.
func (e *Engine) Scheduler() *Scheduler {
	return e.sched
}

// Scrollbar returns the controller for axis.
func (e *Engine) Scrollbar(axis Axis) *AxisScrollbar {
	if axis == AxisHorizontal {
		return e.hbar
	}
	return e.vbar
}

// ScrollbarOpacity returns the current auto-hide opacity.
func (e *Engine) ScrollbarOpacity() float32 {
	return e.fader.Opacity()
}

// ScrollOffset returns the body scroll offsets last observed.
func (e *Engine) ScrollOffset() (top, left float32) {
	return e.scrollTop, e.scrollLeft
}

// HandleScroll reads the body's scroll offsets. It drives the row window
// from scrollTop and mirrors scrollLeft onto the header and footer bands.
// The body's scroll notifications reach it through a frame throttle.
func (e *Engine) HandleScroll() {
	if e.surfaces.Body == nil {
		return
	}
	g, ok := e.surfaces.Body.Measure()
	if !ok {
		return
	}
	e.applyScroll(g.ScrollTop, g.ScrollLeft)
}

// HandleVirtualScroll requests a vertical scroll of the body.
func (e *Engine) HandleVirtualScroll(offset float32, behavior ScrollBehavior) {
	e.scrollTo(AxisVertical, offset, behavior)
}

// HandleHorizontalScroll requests a horizontal scroll of the body.
func (e *Engine) HandleHorizontalScroll(offset float32, behavior ScrollBehavior) {
	e.scrollTo(AxisHorizontal, offset, behavior)
}

// HandleWheel scrolls by wheel notches. Positive dy scrolls up.
func (e *Engine) HandleWheel(dx, dy float32) {
	if dy != 0 {
		e.scrollTo(AxisVertical, e.scrollTop-dy*WheelStep, ScrollAuto)
	}
	if dx != 0 {
		e.scrollTo(AxisHorizontal, e.scrollLeft-dx*WheelStep, ScrollAuto)
	}
}

// ScrollToRow scrolls the minimum distance that makes row idx fully
// visible.
func (e *Engine) ScrollToRow(idx int, behavior ScrollBehavior) {
	target := ScrollToRow(idx, len(e.rows), e.rowHeight, e.scrollTop, e.heights.BodyHeight)
	if target != e.scrollTop {
		e.scrollTo(AxisVertical, target, behavior)
	}
}

func (e *Engine) scrollTo(axis Axis, offset float32, behavior ScrollBehavior) {
	if e.surfaces.Body != nil {
		e.surfaces.Body.ScrollTo(axis, offset, behavior)
		return
	}
	// Detached: there is no surface to animate, apply directly.
	top, left := e.scrollTop, e.scrollLeft
	if axis == AxisHorizontal {
		left = offset
	} else {
		top = offset
	}
	e.applyScroll(e.clampScroll(top, left))
}

// clampScroll bounds offsets to the current content and viewport extents.
func (e *Engine) clampScroll(top, left float32) (float32, float32) {
	return clampf(top, 0, MaxScroll(ContentHeight(len(e.rows), e.rowHeight), e.heights.BodyHeight)),
		clampf(left, 0, MaxScroll(e.contentWidth, e.tableWidth))
}

func (e *Engine) applyScroll(top, left float32) {
	topChanged := top != e.scrollTop
	leftChanged := left != e.scrollLeft
	if !topChanged && !leftChanged {
		return
	}
	e.scrollTop, e.scrollLeft = top, left
	if leftChanged {
		for _, band := range [...]Box{e.surfaces.Header, e.surfaces.Footer} {
			if m, ok := band.(ScrollMirror); ok {
				m.SetScrollLeft(left)
			}
		}
	}
	if topChanged {
		e.updateWindow()
	}
	e.fader.Activity()
	e.invalidate()
}

func (e *Engine) onScrollState(st ScrollState) {
	e.scroll = st
	show := e.visibility != ScrollbarNever
	e.vbar.Update(st.Geometry, show && st.Horizontal, e.style.Horizontal.Thickness)
	e.hbar.Update(st.Geometry, show && st.Vertical, e.style.Vertical.Thickness)
	e.invalidate()
}

func (e *Engine) handleBandResize() {
	e.measureBands()
	e.relayout()
}

func (e *Engine) handleParentResize() {
	e.measureParent()
	e.relayout()
}

func (e *Engine) measureBands() {
	e.headerHeight = e.measureBand(e.headers != nil, e.surfaces.Header, e.headerHeight)
	e.footerHeight = e.measureBand(e.footers != nil, e.surfaces.Footer, e.footerHeight)
}

// measureBand returns the live height of a band, 0 when the band has no
// cells configured, or current when the band is not mounted yet.
func (e *Engine) measureBand(enabled bool, box Box, current float32) float32 {
	if !enabled {
		return 0
	}
	if box == nil {
		return current
	}
	r, ok := box.Measure()
	if !ok {
		return current
	}
	return maxf(0, r.H)
}

func (e *Engine) defaultBandHeight(enabled bool, styled float32) float32 {
	switch {
	case !enabled:
		return 0
	case styled > 0:
		return styled
	default:
		return e.rowHeight
	}
}

func (e *Engine) measureParent() {
	if e.surfaces.Parent == nil {
		return
	}
	r, ok := e.surfaces.Parent.Measure()
	if !ok {
		return
	}
	e.parentWidth, e.parentHeight = r.W, r.H
}

// relayout re-resolves heights and column widths. The row window is only
// recomputed when the body height changed.
func (e *Engine) relayout() {
	prev := e.heights
	e.heights = ResolveHeight(HeightInput{
		Mode:         e.mode,
		RowHeight:    e.rowHeight,
		RowCount:     len(e.rows),
		HeaderHeight: e.headerHeight,
		FooterHeight: e.footerHeight,
		AutoDetect:   e.autoDetect,
		ParentHeight: e.parentHeight,
	})
	if e.heights != prev && verbose() {
		tableLogger.Debug("table heights resolved", "mode", e.mode,
			"effectiveHeight", e.heights.EffectiveHeight, "bodyHeight", e.heights.BodyHeight,
			"header", e.headerHeight, "footer", e.footerHeight, "parent", e.parentHeight)
	}
	e.layoutColumns()
	if e.heights.BodyHeight != prev.BodyHeight {
		e.updateWindow()
	}
	if e.surfaces.Body == nil {
		// Detached: no surface clamps the offsets when the extents shrink.
		e.applyScroll(e.clampScroll(e.scrollTop, e.scrollLeft))
	}
	e.syncSurface()
	e.invalidate()
}

func (e *Engine) layoutColumns() {
	entries := e.plan.Entries()
	padding := e.style.CellPadding

	// Natural width first; it is the table width when nothing else sizes it.
	e.widths = LayoutColumns(e.widths, entries, e.headerLabels, 0, e.measure, padding)
	natural := sumWidths(e.widths)

	switch {
	case e.width > 0:
		e.tableWidth = e.width
	case e.parentWidth > 0:
		e.tableWidth = e.parentWidth
	default:
		e.tableWidth = natural
	}
	e.widths = LayoutColumns(e.widths, entries, e.headerLabels, e.tableWidth, e.measure, padding)
	e.contentWidth = sumWidths(e.widths)
}

// syncSurface pushes the viewport and virtual content sizes to a body that
// lets the host size it.
func (e *Engine) syncSurface() {
	body := e.surfaces.Body
	if body == nil {
		return
	}
	sizes := [4]float32{e.tableWidth, e.heights.BodyHeight, e.contentWidth, ContentHeight(len(e.rows), e.rowHeight)}
	if e.synced && sizes == e.syncedSizes {
		return
	}
	e.synced = true
	e.syncedSizes = sizes
	if v, ok := body.(ViewportSizer); ok {
		v.SetViewportSize(sizes[0], sizes[1])
	}
	if c, ok := body.(ContentSizer); ok {
		c.SetContentSize(sizes[2], sizes[3])
	}
}

func (e *Engine) updateWindow() {
	next := ComputeVisibleRange(e.scrollTop, e.heights.BodyHeight, e.rowHeight, len(e.rows), e.overscan)
	if next == e.window {
		return
	}
	e.window = next
	e.invalidate()
}

func (e *Engine) rebuildPlan() {
	e.plan = NewCellPlan(e.columns, e.order, e.visibleKeys)
	entries := e.plan.Entries()
	e.headerLabels = e.headerLabels[:0]
	for _, entry := range entries {
		label := DefaultLabel(entry.Key)
		if r, ok := e.headers[entry.Key]; ok && r != nil {
			label = r(entry.Key)
		}
		e.headerLabels = append(e.headerLabels, label)
	}
	e.renderFooterLabels()
}

func (e *Engine) renderFooterLabels() {
	e.footerLabels = e.footerLabels[:0]
	for _, entry := range e.plan.Entries() {
		text := ""
		if r, ok := e.footers[entry.Key]; ok && r != nil {
			text = r(entry.Key, e.rows)
		}
		e.footerLabels = append(e.footerLabels, text)
	}
}

// invalidate schedules a commit of the render description on the next
// frame, so it is built from post-layout measurements.
func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func (e *Engine) invalidate() {
	if e.frameCancel != nil {
		return
	}
	e.frameCancel = e.sched.RequestFrame(func() {
		e.frameCancel = nil
		e.commit()
	})
}

func (e *Engine) clickRow(row Row, index int) {
	if e.onRowClick != nil {
		e.onRowClick(row, index)
	}
}

func (e *Engine) clickCell(c CellContext) {
	if e.onCellClick != nil {
		e.onCellClick(c)
	}
}

func (e *Engine) clickHeader(key string) {
	if e.onHeaderCellClick != nil {
		e.onHeaderCellClick(key)
	}
}

func (e *Engine) clickFooter(key string) {
	if e.onFooterCellClick != nil {
		e.onFooterCellClick(key)
	}
}
