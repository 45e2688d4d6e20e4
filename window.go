package vtable

// DefaultOverscan is the number of extra rows rendered above and below the
// viewport when no overscan option is given.
const DefaultOverscan = 2

// VisibleRange is the half-open index range [Start, End) of rows that must
// be materialized for the current scroll position.
//
// Usage:
//
//	r := vtable.ComputeVisibleRange(scrollTop, bodyHeight, rowHeight, len(rows), 2)
//	for i := r.Start; i < r.End; i++ {
//	    y := r.TranslateY(rowHeight) + float32(i-r.Start)*rowHeight
//	    // draw rows[i] at y
//	}
type VisibleRange struct {
	Start int // First materialized row (inclusive)
	End   int // Last materialized row (exclusive)
}

// ComputeVisibleRange calculates which rows intersect the viewport
// [scrollTop, scrollTop+bodyHeight), expanded by overscan rows on each side
// and clamped to [0, rowCount].
//
// Both bounds are non-decreasing in scrollTop for fixed other inputs, and a
// scrollTop left over from a longer row array clamps to the tail rather than
// producing an inverted range.
func ComputeVisibleRange(scrollTop, bodyHeight, rowHeight float32, rowCount, overscan int) VisibleRange {
	if rowCount <= 0 || rowHeight <= 0 {
		return VisibleRange{}
	}
	overscan = max(0, overscan)
	scrollTop = maxf(0, scrollTop)
	bodyHeight = maxf(0, bodyHeight)

	rawStart := int(floorf(scrollTop / rowHeight))
	// Last row whose top lies strictly above the viewport bottom. Equal to
	// rawStart+ceil(bodyHeight/rowHeight) when scrollTop is row-aligned and
	// one more when the bottom row is cut.
	rawEnd := int(ceilf((scrollTop + bodyHeight) / rowHeight))

	start := max(0, rawStart-overscan)
	start = min(start, max(0, rowCount-overscan))
	end := min(rowCount, rawEnd+overscan)
	end = max(end, start)

	return VisibleRange{Start: start, End: end}
}

// Len returns the number of rows in the range.
func (r VisibleRange) Len() int {
	return r.End - r.Start
}

// Contains returns true if the row at idx is materialized.
func (r VisibleRange) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// TranslateY is the offset applied to the rendered row block so every row
// keeps its absolute position regardless of which slice is materialized.
func (r VisibleRange) TranslateY(rowHeight float32) float32 {
	return float32(r.Start) * rowHeight
}

// ContentHeight returns the full virtual height of rowCount rows.
func ContentHeight(rowCount int, rowHeight float32) float32 {
	return float32(max(0, rowCount)) * maxf(0, rowHeight)
}

// MaxScroll returns the maximum valid scroll offset for the given extents.
func MaxScroll(contentExtent, viewportExtent float32) float32 {
	return maxf(0, contentExtent-viewportExtent)
}

// ScrollToRow returns the scroll offset needed to make a row fully visible.
// If the row is already visible, returns the current scroll unchanged.
func ScrollToRow(idx, rowCount int, rowHeight, currentScroll, viewportHeight float32) float32 {
	if idx < 0 || idx >= rowCount {
		return currentScroll
	}

	rowTop := float32(idx) * rowHeight
	rowBottom := rowTop + rowHeight

	if rowTop < currentScroll {
		return rowTop
	}
	if rowBottom > currentScroll+viewportHeight {
		return rowBottom - viewportHeight
	}
	return currentScroll
}
