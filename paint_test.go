package vtable_test

import (
	"testing"

	"github.com/go-theft-auto/vtable"
)

func defaultAtlas(t *testing.T) *vtable.GlyphAtlas {
	t.Helper()
	atlas, err := vtable.DefaultAtlas()
	if err != nil {
		t.Fatalf("DefaultAtlas failed: %v", err)
	}
	return atlas
}

func TestDefaultAtlas(t *testing.T) {
	atlas := defaultAtlas(t)
	if atlas.Advance != 7 || atlas.LineHeight != 13 {
		t.Errorf("Expected 7x13 cells, got %vx%v", atlas.Advance, atlas.LineHeight)
	}
	if !atlas.Has('A') || !atlas.Has('é') {
		t.Error("Expected Latin glyphs in the atlas")
	}
	if atlas.Has('日') {
		t.Error("Did not expect CJK glyphs in the basic font atlas")
	}
	if got := atlas.Measure("abc"); got != 21 {
		t.Errorf("Expected width 21, got %v", got)
	}
	if atlas.Pixels.Bounds().Dx() != 16*7 {
		t.Errorf("Expected 16 glyph columns, got width %d", atlas.Pixels.Bounds().Dx())
	}
}

func TestNewGlyphAtlasNilFace(t *testing.T) {
	if _, err := vtable.NewGlyphAtlas(nil, vtable.LatinRunes()); err == nil {
		t.Error("Expected an error for a nil face")
	}
}

func TestAppendQuads(t *testing.T) {
	atlas := defaultAtlas(t)

	quads := atlas.AppendQuads(nil, "ab c", 0, 0, 0)
	if len(quads) != 3 {
		t.Fatalf("Expected spaces to be skipped (3 quads), got %d", len(quads))
	}
	if quads[2].X0 != 21 {
		t.Errorf("Expected third glyph at x=21, got %v", quads[2].X0)
	}

	quads = atlas.AppendQuads(quads[:0], "abcdef", 10, 0, 20)
	if len(quads) != 2 {
		t.Errorf("Expected truncation to 2 glyphs in 20px, got %d", len(quads))
	}

	quads = atlas.AppendQuads(quads[:0], "→日", 0, 0, 0)
	if len(quads) != 2 {
		t.Errorf("Expected fallback glyphs for unsupported runes, got %d", len(quads))
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.PushClipRect(50, -10, 200, 50)
	if got := dl.ClipRect(); got != [4]float32{50, 0, 100, 50} {
		t.Errorf("Expected nested clip to intersect, got %v", got)
	}
	dl.PopClipRect()
	if got := dl.ClipRect(); got != [4]float32{0, 0, 100, 100} {
		t.Errorf("Expected pop to restore the outer clip, got %v", got)
	}
}

func TestDrawListSkipsInvisible(t *testing.T) {
	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, vtable.RGBA(255, 255, 255, 0))
	dl.AddRect(0, 0, 0, 10, vtable.RGBA(255, 255, 255, 255))
	dl.AddRect(0, 0, 10, 10, vtable.RGBA(255, 255, 255, 255))
	dl.PushClipRect(0, 0, 5, 5)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("Expected one quad, got %d vertices", len(dl.VtxBuffer))
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("Expected empty commands removed, got %+v", dl.CmdBuffer)
	}
}

func TestFadeColor(t *testing.T) {
	c := vtable.FadeColor(vtable.RGBA(10, 20, 30, 200), 0.5)
	r, g, b, a := vtable.UnpackRGBA(c)
	if r != 10 || g != 20 || b != 30 || a != 100 {
		t.Errorf("Expected (10,20,30,100), got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestPainterPaint(t *testing.T) {
	h := newHarness(t, 100, vtable.Surfaces{}, vtable.WithVisibleRows(10), vtable.WithHeaders(nil))
	atlas := defaultAtlas(t)
	atlas.TextureID = 7

	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)
	vtable.NewPainter(atlas).Paint(dl, h.e.Render(), vtable.Vec2{X: 10, Y: 20})
	dl.Finalize()

	var bodyText, headerText bool
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID != 7 {
			continue
		}
		switch cmd.ClipRect {
		case [4]float32{10, 60, 310, 460}:
			bodyText = true
		case [4]float32{10, 20, 310, 60}:
			headerText = true
		}
	}
	if !bodyText || !headerText {
		t.Errorf("Expected text clipped to the body and header bands (body=%v header=%v)", bodyText, headerText)
	}
}

func TestPainterScrollbarOpacity(t *testing.T) {
	style := vtable.DefaultStyle()
	style.Vertical.Colors.Thumb = vtable.RGBA(1, 2, 3, 255)
	h := newHarness(t, 100, vtable.Surfaces{}, vtable.WithVisibleRows(10), vtable.WithStyle(style))
	d := *h.e.Render()
	d.ScrollbarOpacity = 0.5
	thumb := d.Vertical.ThumbColor

	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)
	vtable.NewPainter(nil).Paint(dl, &d, vtable.Vec2{})
	dl.Finalize()

	var faded, opaque bool
	for _, v := range dl.VtxBuffer {
		switch v.Color {
		case vtable.FadeColor(thumb, 0.5):
			faded = true
		case thumb:
			opaque = true
		}
		if v.TexCoord != [2]float32{} {
			t.Fatal("Painter without an atlas must not emit text")
		}
	}
	if !faded || opaque {
		t.Errorf("Expected only the faded thumb color (faded=%v opaque=%v)", faded, opaque)
	}
}

func TestPainterSkipsEmptyDescription(t *testing.T) {
	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)
	p := vtable.NewPainter(nil)
	p.Paint(dl, nil, vtable.Vec2{})
	p.Paint(dl, &vtable.RenderDescription{}, vtable.Vec2{})
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected nothing drawn, got %d vertices", len(dl.VtxBuffer))
	}
}
