package vtable

// ScrollbarColors are the colors of one synthetic scrollbar.
type ScrollbarColors struct {
	Track        uint32
	Thumb        uint32
	ThumbHovered uint32
	ThumbActive  uint32 // While dragging
}

// AxisStyle configures one synthetic scrollbar.
type AxisStyle struct {
	Thickness float32 // Track width (vertical) or height (horizontal)
	ThumbMin  float32 // Minimum thumb length along the axis
	Colors    ScrollbarColors
}

// BandStyle configures the header, body or footer band.
type BandStyle struct {
	Background  uint32
	TextColor   uint32
	BorderWidth float32 // Bottom border for header, top border for footer, outline for body
	BorderColor uint32
	Height      float32 // Header/footer height when no Box measures it (0 = row height)
}

// Style defines the visual appearance of a table.
type Style struct {
	Header BandStyle
	Body   BandStyle
	Footer BandStyle

	RowAltColor     uint32 // Alternate row background (0 = none)
	RowHoveredColor uint32
	ColumnDivider   uint32 // Vertical line between columns (0 = none)
	CellPadding     float32

	// Monospace text metrics used for column auto-width and the paint path.
	CharWidth  float32
	CharHeight float32

	Vertical   AxisStyle
	Horizontal AxisStyle

	// Auto-hide opacities
	VisibleOpacity float32
	DimmedOpacity  float32
}

// DefaultStyle returns the default dark table style.
func DefaultStyle() Style {
	return Style{
		Header: BandStyle{
			Background:  RGBA(40, 40, 45, 255),
			TextColor:   RGBA(230, 230, 230, 255),
			BorderWidth: 1,
			BorderColor: RGBA(80, 80, 80, 255),
		},
		Body: BandStyle{
			Background:  RGBA(25, 25, 28, 255),
			TextColor:   RGBA(220, 220, 220, 255),
			BorderWidth: 1,
			BorderColor: RGBA(80, 80, 80, 255),
		},
		Footer: BandStyle{
			Background:  RGBA(40, 40, 45, 255),
			TextColor:   RGBA(200, 200, 200, 255),
			BorderWidth: 1,
			BorderColor: RGBA(80, 80, 80, 255),
		},
		RowAltColor:     RGBA(32, 32, 36, 255),
		RowHoveredColor: RGBA(50, 60, 75, 255),
		ColumnDivider:   RGBA(55, 55, 60, 255),
		CellPadding:     SpaceSM,

		CharWidth:  7,
		CharHeight: 13,

		Vertical: AxisStyle{
			Thickness: 12,
			ThumbMin:  20,
			Colors:    defaultScrollbarColors(),
		},
		Horizontal: AxisStyle{
			Thickness: 12,
			ThumbMin:  20,
			Colors:    defaultScrollbarColors(),
		},

		VisibleOpacity: 1,
		DimmedOpacity:  0.25,
	}
}

// GTAStyle returns a high-contrast cyan/yellow table style.
func GTAStyle() Style {
	s := DefaultStyle()
	s.Header.Background = RGBA(0, 80, 120, 255)
	s.Header.TextColor = RGBA(255, 200, 0, 255)
	s.Header.BorderColor = RGBA(0, 100, 150, 255)
	s.Body.BorderColor = RGBA(0, 100, 150, 255)
	s.Footer.Background = RGBA(0, 60, 90, 255)
	s.Footer.BorderColor = RGBA(0, 100, 150, 255)
	s.RowAltColor = RGBA(20, 30, 40, 255)
	s.RowHoveredColor = RGBA(0, 70, 100, 255)
	colors := ScrollbarColors{
		Track:        RGBA(20, 20, 20, 255),
		Thumb:        RGBA(0, 100, 150, 255),
		ThumbHovered: RGBA(0, 150, 200, 255),
		ThumbActive:  RGBA(255, 200, 0, 255),
	}
	s.Vertical.Colors = colors
	s.Horizontal.Colors = colors
	return s
}

// TerminalStyle returns a style measured in character cells, for hosts
// where one pixel is one terminal cell.
func TerminalStyle() Style {
	s := DefaultStyle()
	s.CharWidth = 1
	s.CharHeight = 1
	s.CellPadding = 1
	s.Header.BorderWidth = 0
	s.Body.BorderWidth = 0
	s.Footer.BorderWidth = 0
	s.Vertical.Thickness = 1
	s.Vertical.ThumbMin = 1
	s.Horizontal.Thickness = 1
	s.Horizontal.ThumbMin = 2
	return s
}

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
)

func defaultScrollbarColors() ScrollbarColors {
	return ScrollbarColors{
		Track:        RGBA(30, 30, 30, 255),
		Thumb:        RGBA(80, 80, 80, 255),
		ThumbHovered: RGBA(100, 100, 100, 255),
		ThumbActive:  RGBA(130, 130, 130, 255),
	}
}
