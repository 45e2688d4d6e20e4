// Command gen renders tables in a handful of states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
	"github.com/go-theft-auto/vtable/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single table screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	rows   int
	opts   []vtable.Option
	// setup drives the table into the state to capture.
	setup func(e *vtable.Engine, in *vtable.InputState)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	atlas, err := vtable.DefaultAtlas()
	if err != nil {
		return err
	}
	if err := renderer.UploadAtlas(atlas); err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *vtable.GlyphAtlas, s screenshot, outDir string) error {
	// Only update the renderer projection; GLFW resizes the hidden window
	// asynchronously, which would cause framebuffer/scissor mismatches.
	renderer.Resize(s.width, s.height)

	// Fresh engine and clock per screenshot so no state leaks between captures.
	now := time.Unix(0, 0)
	sched := vtable.NewScheduler(now)
	opts := append([]vtable.Option{
		vtable.WithScheduler(sched),
		vtable.WithTextMeasure(atlas.Measure),
		vtable.WithWidth(float32(s.width)),
		vtable.WithHeight(float32(s.height)),
		vtable.WithHeaders(nil),
	}, s.opts...)
	e := vtable.New(sampleRows(s.rows), 22, sampleColumns(), opts...)
	defer e.Close()
	e.Attach(vtable.Surfaces{Body: vtable.NewMemorySurface(0, 0)})

	in := vtable.NewInputState()
	step := func() {
		now = now.Add(vtable.FrameInterval)
		e.Frame(now)
	}
	step()
	if s.setup != nil {
		s.setup(e, in)
	}
	// Let smooth scrolls settle and throttled updates land.
	for i := 0; i < 60; i++ {
		step()
	}

	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)
	vtable.NewPainter(atlas).Paint(dl, e.Render(), vtable.Vec2{})

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := renderer.Render(dl); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func sampleRows(n int) []vtable.Row {
	names := []string{"Banshee", "Infernus", "Cheetah", "Stallion", "Comet"}
	rows := make([]vtable.Row, n)
	for i := range rows {
		rows[i] = vtable.MapRow{
			"id":    i + 1,
			"model": names[i%len(names)],
			"speed": 120 + (i*37)%140,
			"color": fmt.Sprintf("#%06x", (uint32(i)*2654435761)&0xffffff),
		}
	}
	return rows
}

func sampleColumns() []vtable.Column {
	return []vtable.Column{
		{Key: "id", Width: 60},
		{Key: "model", Stretch: 1},
		{Key: "speed", Width: 90},
		{Key: "color", Width: 100},
	}
}

// buildScreenshots returns the list of all table screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "table_default", width: 420, height: 260, rows: 1000},
		{
			name: "table_gta", width: 420, height: 260, rows: 1000,
			opts: []vtable.Option{vtable.WithStyle(vtable.GTAStyle())},
		},
		{
			name: "table_footer", width: 420, height: 260, rows: 50,
			opts: []vtable.Option{vtable.WithFooters(map[string]vtable.FooterRenderer{
				"id": func(_ string, rows []vtable.Row) string { return fmt.Sprintf("%d rows", len(rows)) },
			})},
		},
		{
			name: "table_scrolled", width: 420, height: 260, rows: 1000,
			setup: func(e *vtable.Engine, _ *vtable.InputState) {
				e.ScrollToRow(500, vtable.ScrollSmooth)
			},
		},
		{
			name: "table_hover", width: 420, height: 260, rows: 1000,
			setup: func(e *vtable.Engine, in *vtable.InputState) {
				in.SetMousePos(200, 90)
				e.HandleInput(in, vtable.Vec2{})
			},
		},
		{
			name: "table_horizontal", width: 260, height: 200, rows: 1000,
			opts: []vtable.Option{vtable.WithWidth(260)},
			setup: func(e *vtable.Engine, _ *vtable.InputState) {
				e.HandleHorizontalScroll(80, vtable.ScrollAuto)
			},
		},
		{
			name: "table_autohide_dimmed", width: 420, height: 260, rows: 1000,
			opts: []vtable.Option{vtable.WithAutoHide(500 * time.Millisecond)},
		},
	}
}
