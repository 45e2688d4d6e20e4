package vtable

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// atlasColumns is the number of glyph cells per atlas row.
const atlasColumns = 16

// GlyphAtlas is a single-channel texture of monospace glyphs plus the UV
// lookup to draw them. Pixels hold coverage in the alpha channel; the GL
// backend uploads them as an alpha-only texture and stores the resulting
// name in TextureID.
type GlyphAtlas struct {
	Pixels    *image.Alpha
	TextureID uint32

	Advance    float32 // Horizontal advance of every glyph
	LineHeight float32
	cellW      float32
	cellH      float32
	glyphs     map[rune]atlasGlyph
}

type atlasGlyph struct {
	u0, v0, u1, v1 float32
}

// LatinRunes returns printable ASCII and Latin-1.
func LatinRunes() []rune {
	runes := make([]rune, 0, 95+96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r < 256; r++ {
		runes = append(runes, r)
	}
	return runes
}

// DefaultAtlas rasterizes the 7x13 basic font.
func DefaultAtlas() (*GlyphAtlas, error) {
	return NewGlyphAtlas(basicfont.Face7x13, LatinRunes())
}

// NewGlyphAtlas rasterizes runes from a monospace face into a grid of
// cells. Runes the face cannot draw are skipped and later render as '?'.
func NewGlyphAtlas(face font.Face, runes []rune) (*GlyphAtlas, error) {
	if face == nil {
		return nil, errors.New("glyph atlas: nil font face")
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := max(m.Height.Ceil(), ascent+m.Descent.Ceil())
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, errors.New("glyph atlas: face has no advance for 'M'")
	}
	cellW := adv.Ceil()
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("glyph atlas: invalid cell size %dx%d", cellW, cellH)
	}

	supported := make([]rune, 0, len(runes))
	for _, r := range runes {
		if _, ok := face.GlyphAdvance(r); ok {
			supported = append(supported, r)
		}
	}
	if len(supported) == 0 {
		return nil, errors.New("glyph atlas: face has none of the requested glyphs")
	}

	rows := (len(supported) + atlasColumns - 1) / atlasColumns
	texW, texH := atlasColumns*cellW, rows*cellH
	img := image.NewAlpha(image.Rect(0, 0, texW, texH))

	a := &GlyphAtlas{
		Pixels:     img,
		Advance:    float32(cellW),
		LineHeight: float32(cellH),
		cellW:      float32(cellW),
		cellH:      float32(cellH),
		glyphs:     make(map[rune]atlasGlyph, len(supported)),
	}
	for i, r := range supported {
		cx, cy := (i%atlasColumns)*cellW, (i/atlasColumns)*cellH
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(cx, cy+ascent), r)
		if !ok {
			continue
		}
		cell := image.Rect(cx, cy, cx+cellW, cy+cellH)
		clipped := dr.Intersect(cell)
		draw.DrawMask(img, clipped, image.Opaque, image.Point{}, mask, maskp.Add(clipped.Min.Sub(dr.Min)), draw.Over)
		a.glyphs[r] = atlasGlyph{
			u0: float32(cx) / float32(texW),
			v0: float32(cy) / float32(texH),
			u1: float32(cx+cellW) / float32(texW),
			v1: float32(cy+cellH) / float32(texH),
		}
	}
	return a, nil
}

// Has reports whether r has its own glyph in the atlas.
func (a *GlyphAtlas) Has(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// Measure returns the width of s. It satisfies TextMeasure.
func (a *GlyphAtlas) Measure(s string) float32 {
	return float32(utf8.RuneCountInString(s)) * a.Advance
}

// AppendQuads lays text out from (x, y), the top-left of the line, and
// appends one quad per visible glyph. Glyphs that would end past maxWidth
// are dropped; maxWidth <= 0 means unlimited.
func (a *GlyphAtlas) AppendQuads(dst []GlyphQuad, text string, x, y, maxWidth float32) []GlyphQuad {
	pen := x
	for _, r := range text {
		if maxWidth > 0 && pen+a.Advance-x > maxWidth {
			break
		}
		if r != ' ' {
			if g, ok := a.lookup(r); ok {
				dst = append(dst, GlyphQuad{
					X0: pen, Y0: y, X1: pen + a.cellW, Y1: y + a.cellH,
					U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
				})
			}
		}
		pen += a.Advance
	}
	return dst
}

func (a *GlyphAtlas) lookup(r rune) (atlasGlyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	if g, ok := a.glyphs[unicodeFallback(r)]; ok {
		return g, true
	}
	g, ok := a.glyphs['?']
	return g, ok
}

// unicodeFallback maps common symbols to ASCII equivalents for fonts that
// only cover Latin.
func unicodeFallback(r rune) rune {
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	case '…':
		return '.'
	default:
		return r
	}
}
