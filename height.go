package vtable

import (
	"fmt"
	"math"
)

// BandGrid is the resolution band heights are snapped to. It is coarser
// than a float32 ulp for any table below 2^17 px, so body+header+footer
// sums to the effective height exactly in any order.
const BandGrid = 64

// SizingKind identifies which sizing mode decides the table height.
type SizingKind int

const (
	SizingAuto SizingKind = iota
	SizingExplicit
	SizingRowRange
	SizingFixedRows
)

// String returns the mode name used in logs.
func (k SizingKind) String() string {
	switch k {
	case SizingFixedRows:
		return "fixedVisibleRows"
	case SizingRowRange:
		return "rangeVisibleRows"
	case SizingExplicit:
		return "explicitHeight"
	default:
		return "autoDetect"
	}
}

// SizingMode is a tagged union of the four height modes. Only the fields
// belonging to Kind are meaningful.
type SizingMode struct {
	Kind    SizingKind
	Rows    int     // SizingFixedRows
	MinRows int     // SizingRowRange
	MaxRows int     // SizingRowRange
	Height  float32 // SizingExplicit
}

// SizeFixedRows shows exactly n rows.
func SizeFixedRows(n int) SizingMode {
	return SizingMode{Kind: SizingFixedRows, Rows: n}
}

// SizeRowRange grows with the row count between min and max rows.
func SizeRowRange(minRows, maxRows int) SizingMode {
	return SizingMode{Kind: SizingRowRange, MinRows: minRows, MaxRows: maxRows}
}

// SizeExplicit fixes the total table height in pixels.
func SizeExplicit(px float32) SizingMode {
	return SizingMode{Kind: SizingExplicit, Height: px}
}

// SizeAuto tracks the nearest sized ancestor.
func SizeAuto() SizingMode {
	return SizingMode{Kind: SizingAuto}
}

func (m SizingMode) String() string {
	switch m.Kind {
	case SizingFixedRows:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Rows)
	case SizingRowRange:
		return fmt.Sprintf("%s(%d,%d)", m.Kind, m.MinRows, m.MaxRows)
	case SizingExplicit:
		return fmt.Sprintf("%s(%g)", m.Kind, m.Height)
	default:
		return m.Kind.String()
	}
}

// SizingParams holds the raw, possibly overlapping sizing parameters a
// caller configured. Zero values mean "not set".
type SizingParams struct {
	VisibleRows    int
	MinVisibleRows int
	MaxVisibleRows int
	Height         float32
	AutoHeight     bool
}

// SelectSizingMode picks the active mode by precedence:
// fixed rows, row range, explicit height, auto-detect.
func SelectSizingMode(p SizingParams) SizingMode {
	switch {
	case p.VisibleRows > 0:
		return SizeFixedRows(p.VisibleRows)
	case p.MinVisibleRows > 0 || p.MaxVisibleRows > 0:
		return SizeRowRange(p.MinVisibleRows, p.MaxVisibleRows)
	case p.Height > 0:
		return SizeExplicit(p.Height)
	default:
		return SizeAuto()
	}
}

// HeightInput carries everything ResolveHeight needs.
type HeightInput struct {
	Mode         SizingMode
	RowHeight    float32
	RowCount     int
	HeaderHeight float32
	FooterHeight float32

	// AutoDetect is set when the table observes its parent. It selects
	// SizingAuto's behavior and caps SizingRowRange.
	AutoDetect   bool
	ParentHeight float32
}

// HeightResult is the resolved geometry of the table bands. BodyHeight +
// HeaderHeight + FooterHeight equals EffectiveHeight exactly.
type HeightResult struct {
	EffectiveHeight float32
	BodyHeight      float32
	HeaderHeight    float32 // Snapped to 1/BandGrid px
	FooterHeight    float32
}

// ResolveHeight computes the effective table height and the height left
// for the scrollable body. It is a pure function: inputs are clamped
// rather than rejected.
func ResolveHeight(in HeightInput) HeightResult {
	header := snapBand(in.HeaderHeight)
	footer := snapBand(in.FooterHeight)
	rowHeight := maxf(0, in.RowHeight)
	rowCount := max(0, in.RowCount)

	switch in.Mode.Kind {
	case SizingFixedRows:
		body := float32(max(0, in.Mode.Rows)) * rowHeight
		return HeightResult{EffectiveHeight: body + header + footer, BodyHeight: body, HeaderHeight: header, FooterHeight: footer}

	case SizingRowRange:
		lo := max(0, in.Mode.MinRows)
		hi := in.Mode.MaxRows
		if hi <= 0 {
			hi = rowCount // open upper bound
		}
		hi = max(hi, lo)
		rows := min(max(rowCount, lo), hi)
		body := float32(rows) * rowHeight
		if in.AutoDetect && in.ParentHeight > 0 {
			body = minf(body, maxf(0, in.ParentHeight-header-footer))
		}
		return HeightResult{EffectiveHeight: body + header + footer, BodyHeight: body, HeaderHeight: header, FooterHeight: footer}

	case SizingExplicit:
		effective := maxf(0, in.Mode.Height)
		return HeightResult{EffectiveHeight: effective, BodyHeight: maxf(0, effective-header-footer), HeaderHeight: header, FooterHeight: footer}

	default:
		effective := maxf(0, in.ParentHeight)
		return HeightResult{EffectiveHeight: effective, BodyHeight: maxf(0, effective-header-footer), HeaderHeight: header, FooterHeight: footer}
	}
}

func snapBand(h float32) float32 {
	if h <= 0 {
		return 0
	}
	return float32(math.Round(float64(h)*BandGrid) / BandGrid)
}
