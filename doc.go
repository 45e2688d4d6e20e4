/*
Package vtable is a virtualized table engine: it renders only the rows that
intersect the viewport (plus an overscan margin) out of arrays of any size,
negotiates the table height against its header, footer and parent, and
draws its own synthetic scrollbars so the table looks the same on every
host.

# Overview

The engine never touches a real layout system. It observes a scrollable
body Surface and optional header, footer and parent Boxes, and publishes a
RenderDescription: the bands, the materialized rows and cells, and the
scrollbar geometry. Hosts draw the description however they like.
Painter draws it into a DrawList for the OpenGL backend in backend/opengl;
backend/term draws it into a terminal through bubbletea.

# Quick Start

	rows := []vtable.Row{vtable.MapRow{"id": 1, "name": "Banshee"}, ...}
	columns := []vtable.Column{{Key: "id", Width: 60}, {Key: "name", Stretch: 1}}

	table := vtable.New(rows, 22, columns,
	    vtable.WithVisibleRows(20),
	    vtable.WithHeaders(nil),
	    vtable.OnRowClick(func(row vtable.Row, index int) { ... }),
	)
	table.Attach(vtable.Surfaces{Body: vtable.NewMemorySurface(0, 0)})
	defer table.Close()

	painter := vtable.NewPainter(atlas)
	for !window.ShouldClose() {
	    table.HandleInput(input, origin)
	    table.Frame(time.Now())
	    dl.Clear()
	    painter.Paint(dl, table.Render(), origin)
	    renderer.Render(dl)
	}

# Sizing

Exactly one sizing mode is active. When several are configured the first
match wins:

	WithVisibleRows(n)            body is exactly n rows
	WithVisibleRowRange(lo, hi)   body fits the row count within [lo, hi]; hi 0 = open
	WithHeight(px)                total height is px; body is what the bands leave
	(none)                        total height follows the parent box

WithAutoHeight makes the engine observe its parent. Combined with a row
range, the parent height also caps the body.

The header and footer bands are sized by their Boxes when attached, or by
BandStyle.Height, or by the row height. A band with no cells configured is
zero height.

# Virtualization

The visible range is the half-open interval of rows that intersect
[scrollTop, scrollTop+bodyHeight), widened by the overscan on both sides
and clamped to the row array. A spacer of rowCount*rowHeight gives the
body its full scroll height; materialized rows are offset by
Range.Start*rowHeight. Growing or shrinking the row array never produces an
inverted range.

# Scrollbars

Each axis has an AxisScrollbar. The thumb size is proportional to the
visible fraction of the content, never smaller than ThumbMin and never
larger than the track. Dragging a thumb maps pointer travel back to a
scroll offset and clamps it to the scrollable range. Clicking a track
centers the thumb on the click with a smooth scroll. When both bars show,
each track is shortened by the other's thickness so they do not overlap in
the corner.

Resize and scroll samples are throttled to one per frame (~16ms) with one
trailing sample, and content changes are debounced by 10ms. WithAutoHide
dims the bars after a period without scroll or pointer activity.

# Keyboard and Mouse

While the pointer is over the table:

	Wheel            scroll 30px per notch (Shift: horizontal)
	Up / Down        scroll one row
	Left / Right     scroll 30px horizontally
	PageUp/PageDown  scroll 80% of the body, smoothly
	Home / End       scroll to the first / last row, smoothly

A thumb drag follows the pointer anywhere in the window and ends on
release.

# Configuration

Options use typed keys (OptKey). Config loads the same options from YAML:

	overscan: 4
	theme: gta
	sizing:
	  min_visible_rows: 3
	  max_visible_rows: 20
	scrollbars:
	  auto_hide: true
	  fade_delay: 2s

# Logging

The package logs through log/slog. SetVerbose(true) enables debug logs for
attach, sizing, scroll state and drag transitions; SetLogOutput redirects
them (terminal hosts should, since stderr shares the screen).

# Threading

The engine is single-threaded. Every method must be called from the
goroutine that calls Frame; timers and throttles run inside Frame.
*/
package vtable
