package vtable

import "github.com/mattn/go-runewidth"

// TextMeasure returns the rendered width of s in pixels.
type TextMeasure func(s string) float32

// MonospaceMeasure measures text on a fixed-advance grid. Wide runes (CJK,
// emoji) take two cells.
func MonospaceMeasure(advance float32) TextMeasure {
	return func(s string) float32 {
		return float32(runewidth.StringWidth(s)) * advance
	}
}

// LayoutColumns calculates column widths for the visible plan entries.
// labels holds the header label of each entry (used to size auto columns)
// and must have the same length as entries. The result is written into dst
// when it has room.
//
// Fixed columns take their Width, auto columns take their measured label
// plus padding, and stretch columns share what is left by weight.
func LayoutColumns(dst []float32, entries []PlanEntry, labels []string, totalWidth float32, measure TextMeasure, padding float32) []float32 {
	if cap(dst) < len(entries) {
		dst = make([]float32, len(entries))
	}
	dst = dst[:len(entries)]

	// First pass: fixed and auto-sized columns
	usedWidth := float32(0)
	stretchWeight := float32(0)
	for i, e := range entries {
		switch {
		case e.Stretch > 0:
			dst[i] = 0
			stretchWeight += e.Stretch
			continue
		case e.Width > 0:
			dst[i] = e.Width
		default:
			label := e.Key
			if i < len(labels) {
				label = labels[i]
			}
			w := padding * 2
			if measure != nil {
				w += measure(label)
			}
			dst[i] = w
		}
		dst[i] = constrainWidth(dst[i], e.MinWidth, e.MaxWidth)
		usedWidth += dst[i]
	}

	// Second pass: distribute remaining width to stretch columns
	if stretchWeight > 0 {
		remaining := maxf(0, totalWidth-usedWidth)
		for i, e := range entries {
			if e.Stretch <= 0 {
				continue
			}
			dst[i] = constrainWidth(remaining*(e.Stretch/stretchWeight), e.MinWidth, e.MaxWidth)
		}
	}
	return dst
}

func constrainWidth(w, minW, maxW float32) float32 {
	if minW > 0 && w < minW {
		w = minW
	}
	if maxW > 0 && w > maxW {
		w = maxW
	}
	return w
}

// sumWidths returns the total content width of a column layout.
func sumWidths(widths []float32) float32 {
	total := float32(0)
	for _, w := range widths {
		total += w
	}
	return total
}
